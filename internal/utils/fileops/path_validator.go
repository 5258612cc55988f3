package fileops

import (
	"os"
	"path/filepath"

	"github.com/toyz/compat-migrate/internal/errors"
)

// PathValidator provides centralized path validation and cleaning functionality
type PathValidator struct{}

// NewPathValidator creates a new PathValidator instance
func NewPathValidator() *PathValidator {
	return &PathValidator{}
}

// ValidateAndClean cleans a path and ensures it exists
func (pv *PathValidator) ValidateAndClean(path string) (string, error) {
	cleanPath, err := pv.ValidateAndCleanOptional(path)
	if err != nil {
		return "", err
	}

	if _, err := os.Stat(cleanPath); os.IsNotExist(err) {
		return "", errors.NotFound("file", cleanPath)
	}

	return cleanPath, nil
}

// ValidateAndCleanOptional cleans a path but doesn't require it to exist
func (pv *PathValidator) ValidateAndCleanOptional(path string) (string, error) {
	if path == "" {
		return "", errors.InvalidArgument("path", `""`, "cannot be empty")
	}
	return filepath.Clean(path), nil
}

// IsDir checks if a path exists and is a directory
func (pv *PathValidator) IsDir(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}
