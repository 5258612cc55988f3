// Package markup migrates declarative UI (html) files to the compatibility
// element names.
package markup

import (
	"regexp"
	"strings"
	"unicode"

	"github.com/toyz/compat-migrate/internal/models"
)

// Document is an immutable declarative UI file
type Document struct {
	text string
}

// NewDocument wraps markup text
func NewDocument(text string) Document {
	return Document{text: text}
}

// String returns the document text
func (d Document) String() string {
	return d.text
}

var versionMeta = regexp.MustCompile(`<meta(.*?)name="vaadin-version"(.*?)content="7.*?"(.*?)>`)

// Rewriter renames component tags of moved UI classes and updates the
// framework version meta tag
type Rewriter struct {
	tags    *strings.Replacer
	version string
}

// NewRewriter builds the tag replacements for the given UI classes
func NewRewriter(uiClasses models.ClassSet, targetVersion string) *Rewriter {
	var pairs []string
	for _, class := range uiClasses.Sorted() {
		pairs = append(pairs, tagPairs(ElementName(models.SimpleName(class)))...)
	}

	return &Rewriter{
		tags:    strings.NewReplacer(pairs...),
		version: targetVersion,
	}
}

// Rewrite renames the tags and then updates the version meta tag
func (r *Rewriter) Rewrite(doc Document) Document {
	return r.RewriteVersion(r.RewriteTags(doc))
}

// RewriteTags turns "v-" and "vaadin-" prefixed tags of UI classes into
// "vaadin7-" tags
func (r *Rewriter) RewriteTags(doc Document) Document {
	return Document{text: r.tags.Replace(doc.text)}
}

// RewriteVersion replaces any vaadin-version meta tag whose content starts
// with 7 by one carrying the target version
func (r *Rewriter) RewriteVersion(doc Document) Document {
	replacement := `<meta name="vaadin-version" content="` + r.version + `">`
	return Document{text: versionMeta.ReplaceAllLiteralString(doc.text, replacement)}
}

// ElementName converts a class name to its element name, e.g.
// "DateField" becomes "date-field"
func ElementName(className string) string {
	var result strings.Builder
	for i, c := range className {
		if unicode.IsUpper(c) {
			if i > 0 {
				result.WriteByte('-')
			}
			result.WriteRune(unicode.ToLower(c))
		} else {
			result.WriteRune(c)
		}
	}
	return result.String()
}

func tagPairs(tag string) []string {
	newStart := "<vaadin7-" + tag
	newEnd := "</vaadin7-" + tag + ">"

	return []string{
		"<v-" + tag + ">", newStart + ">",
		"<vaadin-" + tag + ">", newStart + ">",
		"<v-" + tag + " ", newStart + " ",
		"<vaadin-" + tag + " ", newStart + " ",
		"</v-" + tag + ">", newEnd,
		"</vaadin-" + tag + ">", newEnd,
	}
}
