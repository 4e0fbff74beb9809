// Package parsing reads robot source text into the document model.
//
// Robot files are whitespace-significant tables: cells are separated by two
// or more spaces (or any run containing a tab). The participle lexer splits
// the raw text into separator, word, and newline tokens; the parser assembles
// them into cells, lines, statements and blocks without discarding a single
// byte, so an untouched document renders back to its exact input.
package parsing

import (
	"io"

	"github.com/alecthomas/participle/v2/lexer"
)

// RobotLexer defines the token types for robot source files. Order matters:
// multi-space separators must win over single spaces.
var RobotLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Newline", Pattern: `\r?\n`},
	{Name: "Separator", Pattern: `[ \t]*\t[ \t]*| {2,}`},
	{Name: "Space", Pattern: ` `},
	{Name: "Word", Pattern: `[^ \t\r\n]+`},
})

var symbols = RobotLexer.Symbols()

// Token type IDs resolved once from the lexer definition.
var (
	tokNewline   = symbols["Newline"]
	tokSeparator = symbols["Separator"]
	tokSpace     = symbols["Space"]
	tokWord      = symbols["Word"]
)

// token is a lexer token with its byte offset in the source.
type token struct {
	typ    lexer.TokenType
	value  string
	offset int
}

// lexAll tokenizes the whole input. The lexer definition has no failure
// modes: every byte matches one of the four rules.
func lexAll(filename string, r io.Reader) ([]token, error) {
	lx, err := RobotLexer.Lex(filename, r)
	if err != nil {
		return nil, err
	}
	var tokens []token
	for {
		t, err := lx.Next()
		if err != nil {
			return nil, err
		}
		if t.EOF() {
			return tokens, nil
		}
		tokens = append(tokens, token{typ: t.Type, value: t.Value, offset: t.Pos.Offset})
	}
}
