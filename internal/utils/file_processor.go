package utils

import (
	"io/fs"
	"path/filepath"
	"strings"

	"github.com/toyz/compat-migrate/internal/errors"
)

// FileFilter defines a function that determines whether a file should be processed
type FileFilter func(path string, info fs.DirEntry) bool

// FileWalkOptions configures file walking behavior
type FileWalkOptions struct {
	FileFilter FileFilter
}

// SuffixFileFilter matches regular files whose name ends in one of the suffixes
func SuffixFileFilter(suffixes ...string) FileFilter {
	return func(path string, info fs.DirEntry) bool {
		if info.IsDir() {
			return false
		}

		name := info.Name()
		for _, suffix := range suffixes {
			if strings.HasSuffix(name, suffix) {
				return true
			}
		}
		return false
	}
}

// FileProcessor provides utilities for common file processing operations
type FileProcessor struct{}

// NewFileProcessor creates a new file processor
func NewFileProcessor() *FileProcessor {
	return &FileProcessor{}
}

// Walk calls fn for every file below rootDir accepted by the options, in
// lexical order. Every subdirectory is entered, hidden ones included.
func (fp *FileProcessor) Walk(rootDir string, options FileWalkOptions, fn func(path string) error) error {
	return filepath.WalkDir(rootDir, func(path string, entry fs.DirEntry, err error) error {
		if err != nil {
			return errors.WrapFileSystemError("walk", path, err)
		}

		if entry.IsDir() {
			return nil
		}

		if options.FileFilter != nil && !options.FileFilter(path, entry) {
			return nil
		}

		return fn(path)
	})
}
