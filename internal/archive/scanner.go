// Package archive enumerates the compiled classes packed in jar archives.
package archive

import (
	"os"
	"strings"

	"github.com/klauspost/compress/zip"
	"github.com/toyz/compat-migrate/internal/errors"
	"github.com/toyz/compat-migrate/internal/models"
)

// ClassSuffix is the file suffix of a compiled class entry
const ClassSuffix = ".class"

// Scanner lists the classes of a namespace found in an archive
type Scanner interface {
	ScanNamespace(archivePath, namespacePrefix string) (models.ClassSet, error)
}

// JarScanner reads zip based archives from the local file system
type JarScanner struct{}

// NewJarScanner creates a new jar scanner
func NewJarScanner() *JarScanner {
	return &JarScanner{}
}

// ScanNamespace returns the fully-qualified names of all classes below
// namespacePrefix, e.g. "com/vaadin/v7/ui/Grid$Column.class" becomes
// "com.vaadin.v7.ui.Grid.Column" for the prefix "com.vaadin.v7".
func (s *JarScanner) ScanNamespace(archivePath, namespacePrefix string) (models.ClassSet, error) {
	info, err := os.Stat(archivePath)
	if os.IsNotExist(err) {
		return nil, errors.NotFound("archive", archivePath).
			WithSuggestion("Check the archive path or the local repository location")
	}
	if err != nil {
		return nil, errors.WrapArchiveReadError(archivePath, err)
	}
	if info.IsDir() {
		return nil, errors.NotFound("archive file", archivePath)
	}

	reader, err := zip.OpenReader(archivePath)
	if err != nil {
		return nil, errors.WrapArchiveReadError(archivePath, err)
	}
	defer reader.Close()

	classes := make(models.ClassSet)
	for _, entry := range reader.File {
		if entry.FileInfo().IsDir() {
			continue
		}
		if name, ok := ClassName(entry.Name, namespacePrefix); ok {
			classes.Add(name)
		}
	}

	return classes, nil
}

// ClassName converts an archive entry path to a dotted class name. It
// reports false for entries that are not classes of the given namespace.
func ClassName(entryName, namespacePrefix string) (string, bool) {
	if !strings.HasSuffix(entryName, ClassSuffix) {
		return "", false
	}

	dotted := strings.ReplaceAll(entryName, "/", ".")
	if !strings.HasPrefix(dotted, namespacePrefix+".") {
		return "", false
	}

	dotted = strings.TrimSuffix(dotted, ClassSuffix)
	return strings.ReplaceAll(dotted, "$", "."), true
}
