package lexer

import (
	"io"
	"strings"

	plexer "github.com/alecthomas/participle/v2/lexer"

	"github.com/tokscan/tokscan/lib/token"
)

// Definition exposes the scanner as a participle lexer definition so a
// downstream parser can consume its token stream directly.
var Definition plexer.Definition = &scannerDefinition{}

// NewDefinition returns a Definition whose scanners are built with opts.
func NewDefinition(opts ...Option) plexer.Definition {
	return &scannerDefinition{opts: opts}
}

type scannerDefinition struct {
	opts []Option
}

func (d *scannerDefinition) Symbols() map[string]plexer.TokenType {
	return map[string]plexer.TokenType{
		"EOF":       plexer.EOF,
		"Ident":     plexer.TokenType(token.Identifier),
		"Keyword":   plexer.TokenType(token.Keyword),
		"Literal":   plexer.TokenType(token.Literal),
		"Operator":  plexer.TokenType(token.Operator),
		"Separator": plexer.TokenType(token.Separator),
		"Comment":   plexer.TokenType(token.Comment),
		"Invalid":   plexer.TokenType(token.Invalid),
		"Directive": plexer.TokenType(token.PreprocessorDirective),
	}
}

func (d *scannerDefinition) Lex(filename string, r io.Reader) (plexer.Lexer, error) {
	toks, err := New(r, d.opts...).Scan()
	if err != nil {
		return nil, err
	}
	return &tokenLexer{filename: filename, tokens: toks}, nil
}

// LexString lexes s under the default definition.
func LexString(filename, s string, opts ...Option) (plexer.Lexer, error) {
	return NewDefinition(opts...).Lex(filename, strings.NewReader(s))
}

// tokenLexer replays an already scanned token stream and terminates with
// an EOF token.
type tokenLexer struct {
	filename string
	tokens   []token.Token
	pos      int
}

func (t *tokenLexer) Next() (plexer.Token, error) {
	if t.pos >= len(t.tokens) {
		return plexer.Token{Type: plexer.EOF, Pos: t.endPos()}, nil
	}
	tok := t.tokens[t.pos]
	t.pos++
	return plexer.Token{
		Type:  plexer.TokenType(tok.Kind),
		Value: tok.Text,
		Pos: plexer.Position{
			Filename: t.filename,
			Line:     tok.Line,
			Column:   tok.Col,
		},
	}, nil
}

func (t *tokenLexer) endPos() plexer.Position {
	if len(t.tokens) == 0 {
		return plexer.Position{Filename: t.filename, Line: 1, Column: 1}
	}
	last := t.tokens[len(t.tokens)-1]
	return plexer.Position{Filename: t.filename, Line: last.Line, Column: last.Col + len(last.Text)}
}
