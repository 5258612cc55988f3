package javasrc

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseImport(t *testing.T) {
	tests := []struct {
		name     string
		line     string
		expected Import
		ok       bool
	}{
		{"single type", "import com.vaadin.ui.Button;", Import{Name: "com.vaadin.ui.Button"}, true},
		{"wildcard", "import com.vaadin.ui.*;", Import{Name: "com.vaadin.ui.*"}, true},
		{"static", "import static com.vaadin.ui.Alignment.MIDDLE_CENTER;", Import{Static: true, Name: "com.vaadin.ui.Alignment.MIDDLE_CENTER"}, true},
		{"static wildcard", "import static org.junit.Assert.*;", Import{Static: true, Name: "org.junit.Assert.*"}, true},
		{"extra spaces", "import   com.vaadin.ui.Label ;", Import{Name: "com.vaadin.ui.Label"}, true},
		{"windows line ending", "import com.vaadin.ui.Label;\r", Import{Name: "com.vaadin.ui.Label"}, true},
		{"package named like keyword prefix", "import importer.Tool;", Import{Name: "importer.Tool"}, true},
		{"indented", "    import com.vaadin.ui.Label;", Import{}, false},
		{"trailing comment", "import com.vaadin.ui.Label; // label", Import{}, false},
		{"package declaration", "package com.example;", Import{}, false},
		{"not a name", "import 1.2;", Import{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			imp, ok := ParseImport(tt.line)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.expected, imp)
		})
	}
}

func TestImportStatement(t *testing.T) {
	assert.Equal(t, "import com.vaadin.ui.*;", Import{Name: "com.vaadin.ui.*"}.Statement())
	assert.Equal(t, "import static a.B.c;", Import{Static: true, Name: "a.B.c"}.Statement())
	assert.True(t, Import{Name: "com.vaadin.ui.*"}.IsWildcard())
	assert.False(t, Import{Name: "com.vaadin.ui.Label"}.IsWildcard())
}
