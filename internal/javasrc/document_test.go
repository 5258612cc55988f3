package javasrc

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

const sampleSource = `package com.example;

import com.vaadin.ui.*;
import com.vaadin.data.*;
import com.vaadin.server.VaadinRequest;
import static com.vaadin.ui.Alignment.*;
import java.util.*;

public class MyUI extends UI {
}
`

func TestDocumentImports(t *testing.T) {
	doc := NewDocument(sampleSource)

	names := make([]string, 0)
	for _, imp := range doc.Imports() {
		names = append(names, imp.Name)
	}
	assert.Equal(t, []string{
		"com.vaadin.ui.*",
		"com.vaadin.data.*",
		"com.vaadin.server.VaadinRequest",
		"com.vaadin.ui.Alignment.*",
		"java.util.*",
	}, names)
}

func TestDocumentWildcardImports(t *testing.T) {
	doc := NewDocument(sampleSource)

	assert.Equal(t, []string{"com.vaadin.ui.*", "com.vaadin.data.*"}, doc.WildcardImports("com.vaadin."))
	assert.Equal(t, []string{"java.util.*"}, doc.WildcardImports("java."))
	assert.Empty(t, doc.WildcardImports("org."))
}

func TestDocumentHasImport(t *testing.T) {
	doc := NewDocument(sampleSource)

	assert.True(t, doc.HasImport("com.vaadin.server.VaadinRequest"))
	assert.True(t, doc.HasImport("com.vaadin.ui.*"))
	assert.False(t, doc.HasImport("com.vaadin.ui.Alignment.*"))
	assert.False(t, doc.HasImport("com.vaadin.ui.Button"))
}

func TestDocumentWithImportAbove(t *testing.T) {
	doc := NewDocument("import a.*;\nclass X {}\n")

	doc = doc.WithImportAbove("a.*", "a.First")
	doc = doc.WithImportAbove("a.*", "a.Second")

	assert.Equal(t, "import a.First;\nimport a.Second;\nimport a.*;\nclass X {}\n", doc.String())
}

func TestDocumentWithImportAboveKeepsLineEndings(t *testing.T) {
	doc := NewDocument("import a.*;\r\nclass X {}\r\n")

	doc = doc.WithImportAbove("a.*", "a.First")

	assert.Equal(t, "import a.First;\r\nimport a.*;\r\nclass X {}\r\n", doc.String())
}

func TestDocumentWithImportAboveLastLine(t *testing.T) {
	doc := NewDocument("package p;\nimport a.*;")

	doc = doc.WithImportAbove("a.*", "a.First")

	assert.Equal(t, "package p;\nimport a.First;\nimport a.*;", doc.String())
}

func TestDocumentWithoutImport(t *testing.T) {
	doc := NewDocument(sampleSource).WithoutImport("com.vaadin.ui.*")

	assert.NotContains(t, doc.String(), "import com.vaadin.ui.*;")
	assert.Contains(t, doc.String(), "import static com.vaadin.ui.Alignment.*;")
	assert.Contains(t, doc.String(), "import com.vaadin.data.*;\nimport com.vaadin.server.VaadinRequest;")
}

func TestDocumentWithoutImportLastLine(t *testing.T) {
	tests := []struct {
		name     string
		src      string
		expected string
	}{
		{"unterminated", "package p;\nimport a.*;", "package p;"},
		{"unterminated crlf", "package p;\r\nimport a.*;", "package p;"},
		{"terminated", "package p;\nimport a.*;\n", "package p;\n"},
		{"only line", "import a.*;", ""},
		{"other last line", "import a.*;\nclass X {}", "class X {}"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, NewDocument(tt.src).WithoutImport("a.*").String())
		})
	}
}

func TestDocumentIsImmutable(t *testing.T) {
	original := NewDocument(sampleSource)

	changed := original.WithoutImport("java.util.*")
	changed = changed.WithReplacer(strings.NewReplacer("MyUI", "YourUI"))

	assert.Equal(t, sampleSource, original.String())
	assert.Contains(t, changed.String(), "class YourUI")
}

func TestDocumentLines(t *testing.T) {
	doc := NewDocument("a\r\nb\nc")

	assert.Equal(t, []string{"a", "b", "c"}, doc.Lines())
}
