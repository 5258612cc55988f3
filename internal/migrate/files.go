package migrate

import (
	"os"

	"github.com/toyz/compat-migrate/internal/errors"
	"github.com/toyz/compat-migrate/internal/utils"
	"github.com/toyz/compat-migrate/internal/utils/fileops"
)

// Files is the file system a migration reads from and writes to
type Files interface {
	// Walk calls fn for every source and markup file below root
	Walk(root string, fn func(path string) error) error
	ReadFile(path string) ([]byte, error)
	WriteFile(path string, data []byte) error
}

// OSFiles is the local file system
type OSFiles struct {
	ops       *fileops.FileOps
	processor *utils.FileProcessor
}

// NewOSFiles creates the local file system
func NewOSFiles() *OSFiles {
	return &OSFiles{
		ops:       fileops.NewFileOps(),
		processor: utils.NewFileProcessor(),
	}
}

// Walk visits the source and markup files below root in lexical order,
// recursing into every subdirectory
func (f *OSFiles) Walk(root string, fn func(path string) error) error {
	if !f.ops.IsDir(root) {
		return errors.NotFound("project directory", root)
	}

	return f.processor.Walk(root, utils.FileWalkOptions{
		FileFilter: utils.SuffixFileFilter(SourceSuffix, MarkupSuffix),
	}, fn)
}

// ReadFile reads a whole file
func (f *OSFiles) ReadFile(path string) ([]byte, error) {
	return f.ops.ReadFile(path)
}

// WriteFile replaces a file's content, keeping its permissions
func (f *OSFiles) WriteFile(path string, data []byte) error {
	return f.ops.WriteFile(path, data, os.FileMode(0644))
}
