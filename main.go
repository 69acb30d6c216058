package main

import (
	"os"

	"github.com/urfave/cli/v2"
)

var commands []*cli.Command

func newApp() *cli.App {
	return &cli.App{
		Name:                   "tokscan",
		Usage:                  "A single-pass lexical scanner for C-like source files",
		EnableBashCompletion:   true,
		UseShortOptionHandling: true,
		Commands:               commands,
	}
}

func main() {
	err := newApp().Run(os.Args)
	if err != nil {
		panic(err)
	}
}
