package main

import (
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/urfave/cli/v2"

	"github.com/tokscan/tokscan/lib/lexer"
	"github.com/tokscan/tokscan/lib/project"
)

func init() {
	commands = append(commands, &cli.Command{
		Name:      "scan",
		Usage:     "Scan a source file and print its tokens",
		Category:  "scan",
		ArgsUsage: "[file]",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "The directory containing " + project.ConfFileName + ". ",
			},
			&cli.StringFlag{
				Name:    "input-str",
				Aliases: []string{"s"},
				Usage:   "Scan a string instead of a file",
			},
			&cli.StringFlag{
				Name:    "output",
				Aliases: []string{"o"},
				Usage:   "Write tokens to a file instead of stdout",
			},
			&cli.BoolFlag{
				Name:    "plain",
				Aliases: []string{"p"},
				Usage:   "Disable colored output",
			},
			&cli.BoolFlag{
				Name:  "positions",
				Usage: "Prefix each token with its line:column",
			},
		},
		Action: scan,
	})
}

func scan(c *cli.Context) error {
	var src io.Reader
	if s := c.String("input-str"); s != "" {
		src = strings.NewReader(s)
	} else {
		if c.Args().Len() < 1 {
			return cli.Exit(color.RedString("Error: No file specified"), 1)
		}
		file, err := os.Open(c.Args().First())
		if err != nil {
			return cli.Exit(color.RedString("Error opening file: %s", err), 1)
		}
		defer file.Close()
		src = file
	}

	var opts []lexer.Option
	plain := c.Bool("plain")
	if dir := c.String("config"); dir != "" {
		conf, err := project.GetScanConf(dir)
		if err != nil {
			return cli.Exit(color.RedString("Error reading config: %s", err), 1)
		}
		if len(conf.Atomics) > 0 {
			opts = append(opts, lexer.WithAtomicIdents(conf.Atomics))
		}
		if len(conf.Keywords) > 0 {
			opts = append(opts, lexer.WithKeywords(conf.Keywords))
		}
		if conf.Plain {
			plain = true
		}
	}

	out := io.Writer(os.Stdout)
	if o := c.String("output"); o != "" {
		file, err := os.Create(o)
		if err != nil {
			return cli.Exit(color.RedString("Error creating output file: %s", err), 1)
		}
		defer file.Close()
		out = file
		plain = true
	}

	p := &printer{out: out, plain: plain, positions: c.Bool("positions")}
	if err := lexer.New(src, opts...).Run(p.print); err != nil {
		return cli.Exit(color.RedString("Error scanning: %s", err), 1)
	}
	return nil
}
