// Package javasrc rewrites the imports and qualified type references of Java
// source files.
package javasrc

import (
	"strings"
)

// Document is an immutable source file. Every mutation returns a new Document
// and leaves the order of untouched text intact.
type Document struct {
	text string
}

// NewDocument wraps source text
func NewDocument(text string) Document {
	return Document{text: text}
}

// String returns the document text
func (d Document) String() string {
	return d.text
}

// Lines returns the document split on line breaks, without terminators
func (d Document) Lines() []string {
	lines := strings.Split(d.text, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSuffix(line, "\r")
	}
	return lines
}

// Imports returns all import declarations in document order
func (d Document) Imports() []Import {
	var imports []Import
	for _, line := range d.Lines() {
		if imp, ok := ParseImport(line); ok {
			imports = append(imports, imp)
		}
	}
	return imports
}

// WildcardImports returns the non-static imports ending in ".*" whose name
// starts with prefix, e.g. ["com.vaadin.ui.*", "com.vaadin.data.*"].
func (d Document) WildcardImports(prefix string) []string {
	var wildcards []string
	seen := make(map[string]bool)
	for _, imp := range d.Imports() {
		if imp.Static || !imp.IsWildcard() || !strings.HasPrefix(imp.Name, prefix) {
			continue
		}
		if !seen[imp.Name] {
			seen[imp.Name] = true
			wildcards = append(wildcards, imp.Name)
		}
	}
	return wildcards
}

// HasImport reports whether the document imports name with a non-static import
func (d Document) HasImport(name string) bool {
	for _, imp := range d.Imports() {
		if !imp.Static && imp.Name == name {
			return true
		}
	}
	return false
}

// Contains reports whether s occurs anywhere in the document
func (d Document) Contains(s string) bool {
	return strings.Contains(d.text, s)
}

// WithImportAbove inserts "import added;" directly above every import of existing
func (d Document) WithImportAbove(existing, added string) Document {
	return d.editImportLines(existing, func(line, eol string) string {
		if eol == "" {
			eol = "\n"
		}
		return "import " + added + ";" + eol + line
	})
}

// WithoutImport removes every line importing name. Removing an unterminated
// last line also removes the terminator before it, so the document does not
// gain a trailing line break.
func (d Document) WithoutImport(name string) Document {
	result := d.editImportLines(name, func(line, eol string) string {
		return ""
	})

	if !strings.HasSuffix(d.text, "\n") && strings.HasSuffix(result.text, "\n") {
		text := strings.TrimSuffix(result.text, "\n")
		result.text = strings.TrimSuffix(text, "\r")
	}
	return result
}

// WithReplacer applies a replacer to the whole text
func (d Document) WithReplacer(r *strings.Replacer) Document {
	return Document{text: r.Replace(d.text)}
}

// editImportLines rewrites each line that is a non-static import of name.
// edit receives the full line including its terminator and the terminator alone.
func (d Document) editImportLines(name string, edit func(line, eol string) string) Document {
	var out strings.Builder
	out.Grow(len(d.text))

	for _, line := range strings.SplitAfter(d.text, "\n") {
		content := strings.TrimSuffix(line, "\n")
		content = strings.TrimSuffix(content, "\r")
		eol := line[len(content):]

		if imp, ok := ParseImport(content); ok && !imp.Static && imp.Name == name {
			out.WriteString(edit(line, eol))
			continue
		}
		out.WriteString(line)
	}

	return Document{text: out.String()}
}
