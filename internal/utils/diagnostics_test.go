package utils

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func newTestDiagnostics(level DiagnosticLevel) (*DiagnosticSystem, *bytes.Buffer, *bytes.Buffer) {
	var out, errOut bytes.Buffer
	return NewDiagnosticSystem(level).WithWriters(&out, &errOut), &out, &errOut
}

func TestDiagnosticLevels(t *testing.T) {
	tests := []struct {
		name        string
		level       DiagnosticLevel
		expectOut   string
		expectError string
	}{
		{
			name:        "quiet shows only errors",
			level:       DiagnosticError,
			expectOut:   "",
			expectError: "[ERROR] broken\n",
		},
		{
			name:        "info",
			level:       DiagnosticInfo,
			expectOut:   "[WARN] careful\n[INFO] scanning\n",
			expectError: "[ERROR] broken\n",
		},
		{
			name:        "verbose",
			level:       DiagnosticVerbose,
			expectOut:   "[WARN] careful\n[INFO] scanning\n[VERBOSE] details\n",
			expectError: "[ERROR] broken\n",
		},
		{
			name:        "silent",
			level:       DiagnosticSilent,
			expectOut:   "",
			expectError: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, out, errOut := newTestDiagnostics(tt.level)

			d.Error("broken")
			d.Warn("careful")
			d.Info("scanning")
			d.Verbose("details")
			d.Debug("internals")

			assert.Equal(t, tt.expectOut, out.String())
			assert.Equal(t, tt.expectError, errOut.String())
		})
	}
}

func TestDiagnosticSummaryKeepsOrder(t *testing.T) {
	d, out, _ := newTestDiagnostics(DiagnosticInfo)

	d.Summary("Migration complete", []Stat{
		{Label: "Scanned Java files", Value: 12},
		{Label: "Scanned HTML files", Value: 3},
	})

	assert.Equal(t, "\nMigration complete\n   Scanned Java files: 12\n   Scanned HTML files: 3\n\n", out.String())
}

func TestDiagnosticIndentAndFileChanged(t *testing.T) {
	d, out, _ := newTestDiagnostics(DiagnosticVerbose)

	d.Indent()
	d.List("item")
	d.FileChanged("src/A.java", false)
	d.FileChanged("src/B.java", true)
	d.Unindent()
	d.Unindent()
	d.List("top")

	assert.Equal(t, "  - item\n  ✏ src/A.java\n  ~ src/B.java\n- top\n", out.String())
}

func TestShouldUseColors(t *testing.T) {
	t.Setenv("NO_COLOR", "1")
	assert.False(t, shouldUseColors())

	t.Setenv("NO_COLOR", "")
	t.Setenv("FORCE_COLOR", "1")
	assert.True(t, shouldUseColors())

	t.Setenv("FORCE_COLOR", "")
	t.Setenv("TERM", "dumb")
	assert.False(t, shouldUseColors())
}
