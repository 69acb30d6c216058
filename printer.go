package main

import (
	"fmt"
	"io"

	"github.com/fatih/color"

	"github.com/tokscan/tokscan/lib/token"
)

var kindColors = map[token.Kind]*color.Color{
	token.Identifier:            color.New(color.FgCyan),
	token.Keyword:               color.New(color.FgMagenta),
	token.Literal:               color.New(color.FgGreen),
	token.Operator:              color.New(color.FgYellow),
	token.Separator:             color.New(color.FgWhite),
	token.Comment:               color.New(color.FgHiBlack),
	token.Invalid:               color.New(color.FgRed),
	token.PreprocessorDirective: color.New(color.FgBlue),
}

// printer renders tokens one per line in the order they complete, in the
// form (<category>, <lexeme>).
type printer struct {
	out       io.Writer
	plain     bool
	positions bool
}

func (p *printer) print(t token.Token) {
	if p.positions {
		fmt.Fprintf(p.out, "%d:%d ", t.Line, t.Col)
	}
	if p.plain {
		fmt.Fprintln(p.out, t.String())
		return
	}
	name := t.Kind.Name()
	if c, ok := kindColors[t.Kind]; ok {
		name = c.Sprint(name)
	}
	fmt.Fprintf(p.out, "(%s, %s)\n", name, t.Text)
}
