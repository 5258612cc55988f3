package javasrc

import (
	"strings"

	"github.com/toyz/compat-migrate/internal/catalog"
	"github.com/toyz/compat-migrate/internal/models"
)

// Rewriter migrates source documents from the old namespace to the new one.
// It is read-only after construction and may be shared between goroutines.
type Rewriter struct {
	catalog   *catalog.Catalog
	namespace models.Namespace
	qualified *strings.Replacer
	special   *strings.Replacer
}

// NewRewriter prepares the qualified-name replacements for every catalog
// class and every special rename
func NewRewriter(c *catalog.Catalog, special models.SpecialRenames) *Rewriter {
	namespace := c.Namespace()

	var qualified []string
	for _, newName := range c.AllClasses().Sorted() {
		qualified = append(qualified, renamePairs(namespace.ToOld(newName), newName)...)
	}

	var renames []string
	for _, from := range special.Keys() {
		renames = append(renames, renamePairs(from, special[from])...)
	}

	return &Rewriter{
		catalog:   c,
		namespace: namespace,
		qualified: strings.NewReplacer(qualified...),
		special:   strings.NewReplacer(renames...),
	}
}

// Rewrite runs wildcard expansion, the bulk rename and the special renames,
// in that order. Running it on its own output changes nothing.
func (r *Rewriter) Rewrite(doc Document) Document {
	doc = r.ExpandWildcards(doc)
	doc = r.RenameQualified(doc)
	return r.RenameSpecial(doc)
}

// ExpandWildcards replaces old-namespace wildcard imports whose package moved
// with explicit imports of the moved classes the document refers to. A class
// counts as referenced when its simple name occurs anywhere outside the
// wildcard import itself.
func (r *Rewriter) ExpandWildcards(doc Document) Document {
	for _, wildcard := range doc.WildcardImports(r.namespace.OldPrefix()) {
		if r.namespace.IsNew(wildcard) {
			continue
		}

		matches, err := r.catalog.MatchingWildcard(r.namespace.ToNew(wildcard))
		if err != nil || matches.Len() == 0 {
			continue
		}

		rest := doc.WithoutImport(wildcard)
		for _, class := range matches.Sorted() {
			if !rest.Contains(models.SimpleName(class)) {
				continue
			}
			if doc.HasImport(class) || doc.HasImport(r.namespace.ToOld(class)) {
				continue
			}
			doc = doc.WithImportAbove(wildcard, class)
		}

		doc = doc.WithoutImport(wildcard)
	}

	return doc
}

// RenameQualified rewrites import, extends, implements and throws references
// of catalog classes from their old names to their new names
func (r *Rewriter) RenameQualified(doc Document) Document {
	return doc.WithReplacer(r.qualified)
}

// RenameSpecial applies the hand-curated renames
func (r *Rewriter) RenameSpecial(doc Document) Document {
	return doc.WithReplacer(r.special)
}

// renamePairs returns the old/new replacement pairs for one class. The
// trailing space keeps "Foo" from matching the start of "FooBar".
func renamePairs(from, to string) []string {
	return []string{
		"import " + from + ";", "import " + to + ";",
		"extends " + from + " ", "extends " + to + " ",
		"implements " + from + " ", "implements " + to + " ",
		"throws " + from + " ", "throws " + to + " ",
	}
}
