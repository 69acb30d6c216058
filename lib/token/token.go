package token

import "fmt"

// Kind classifies a lexeme.
type Kind int

const (
	None Kind = iota
	Identifier
	Keyword
	Literal
	Operator
	Separator
	Comment
	Invalid
	PreprocessorDirective
)

var names = map[Kind]string{
	Identifier:            "identifier",
	Keyword:               "keyword",
	Literal:               "literal",
	Operator:              "operator",
	Separator:             "separator",
	Comment:               "comment",
	Invalid:               "invalid",
	PreprocessorDirective: "preprocessor directive",
}

// Name returns the display name of the kind, or "unknown" for kinds
// outside the known set.
func (k Kind) Name() string {
	if n, ok := names[k]; ok {
		return n
	}
	return "unknown"
}

// Token is one classified lexeme. Line and Col are 1-based and point at
// the first character of the lexeme.
type Token struct {
	Kind Kind
	Text string
	Line int
	Col  int
}

func (t Token) String() string {
	return fmt.Sprintf("(%s, %s)", t.Kind.Name(), t.Text)
}
