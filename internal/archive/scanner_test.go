package archive

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/klauspost/compress/zip"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/toyz/compat-migrate/internal/errors"
)

func writeJar(t *testing.T, path string, entries ...string) {
	t.Helper()

	f, err := os.Create(path)
	require.NoError(t, err)
	defer f.Close()

	w := zip.NewWriter(f)
	for _, entry := range entries {
		_, err := w.Create(entry)
		require.NoError(t, err)
	}
	require.NoError(t, w.Close())
}

func TestClassName(t *testing.T) {
	tests := []struct {
		name     string
		entry    string
		expected string
		ok       bool
	}{
		{"top level class", "com/vaadin/v7/ui/Button.class", "com.vaadin.v7.ui.Button", true},
		{"nested class", "com/vaadin/v7/ui/Grid$Column.class", "com.vaadin.v7.ui.Grid.Column", true},
		{"other namespace", "com/vaadin/ui/Button.class", "", false},
		{"sibling prefix", "com/vaadin/v7extra/Foo.class", "", false},
		{"resource", "com/vaadin/v7/ui/styles.css", "", false},
		{"manifest", "META-INF/MANIFEST.MF", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			name, ok := ClassName(tt.entry, "com.vaadin.v7")
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.expected, name)
		})
	}
}

func TestScanNamespace(t *testing.T) {
	jar := filepath.Join(t.TempDir(), "vaadin-compatibility-server-8.5.2.jar")
	writeJar(t, jar,
		"META-INF/MANIFEST.MF",
		"com/",
		"com/vaadin/",
		"com/vaadin/v7/ui/",
		"com/vaadin/v7/ui/Field.class",
		"com/vaadin/v7/ui/Grid.class",
		"com/vaadin/v7/ui/Grid$Column.class",
		"com/vaadin/v7/ui/renderers/ClickableRenderer.class",
		"com/vaadin/server/VaadinServlet.class",
		"VAADIN/widgetsets/compat.js",
	)

	classes, err := NewJarScanner().ScanNamespace(jar, "com.vaadin.v7")
	require.NoError(t, err)

	assert.Equal(t, []string{
		"com.vaadin.v7.ui.Field",
		"com.vaadin.v7.ui.Grid",
		"com.vaadin.v7.ui.Grid.Column",
		"com.vaadin.v7.ui.renderers.ClickableRenderer",
	}, classes.Sorted())
}

func TestScanNamespaceMissingArchive(t *testing.T) {
	_, err := NewJarScanner().ScanNamespace(filepath.Join(t.TempDir(), "missing.jar"), "com.vaadin.v7")
	require.Error(t, err)
	assert.True(t, errors.HasCode(err, errors.NotFoundErrorCode))
}

func TestScanNamespaceDirectory(t *testing.T) {
	_, err := NewJarScanner().ScanNamespace(t.TempDir(), "com.vaadin.v7")
	require.Error(t, err)
	assert.True(t, errors.HasCode(err, errors.NotFoundErrorCode))
}

func TestScanNamespaceCorruptArchive(t *testing.T) {
	jar := filepath.Join(t.TempDir(), "broken.jar")
	require.NoError(t, os.WriteFile(jar, []byte("this is not a zip file"), 0644))

	_, err := NewJarScanner().ScanNamespace(jar, "com.vaadin.v7")
	require.Error(t, err)
	assert.True(t, errors.HasCode(err, errors.ArchiveReadErrorCode))
}
