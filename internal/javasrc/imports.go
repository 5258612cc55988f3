package javasrc

import (
	"strings"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
)

// Import is a single import declaration of a source file
type Import struct {
	Static bool   `parser:"'import' @'static'?"`
	Name   string `parser:"@Name ';'"`
}

// IsWildcard reports whether the import ends in ".*"
func (i Import) IsWildcard() bool {
	return strings.HasSuffix(i.Name, ".*")
}

// Statement renders the import back to source form
func (i Import) Statement() string {
	if i.Static {
		return "import static " + i.Name + ";"
	}
	return "import " + i.Name + ";"
}

var importLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Keyword", Pattern: `\b(?:import|static)\b`},
	{Name: "Name", Pattern: `[\p{L}_$][\p{L}\p{N}_$]*(?:\.[\p{L}_$][\p{L}\p{N}_$]*)*(?:\.\*)?`},
	{Name: "Semi", Pattern: `;`},
	{Name: "Whitespace", Pattern: `\s+`},
})

var importParser = participle.MustBuild[Import](
	participle.Lexer(importLexer),
	participle.Elide("Whitespace"),
)

// ParseImport parses one source line as an import declaration. Only lines
// starting with "import " and ending with ";" are considered.
func ParseImport(line string) (Import, bool) {
	line = strings.TrimSuffix(line, "\r")
	if !strings.HasPrefix(line, "import ") || !strings.HasSuffix(line, ";") {
		return Import{}, false
	}

	decl, err := importParser.ParseString("", line)
	if err != nil {
		return Import{}, false
	}
	return *decl, true
}
