package main

import (
	"os"
	"path"

	"github.com/fatih/color"
	"github.com/urfave/cli/v2"

	"github.com/tokscan/tokscan/lib/project"
)

func init() {
	commands = append(commands, &cli.Command{
		Name:      "init",
		Usage:     "Create a default " + project.ConfFileName,
		Category:  "project",
		ArgsUsage: "[dir]",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:    "overwrite",
				Aliases: []string{"f"},
				Usage:   "Overwrite an existing config without asking",
			},
		},
		Action: initConf,
	})
}

func initConf(c *cli.Context) error {
	dir := "."
	if c.Args().Len() > 0 {
		dir = c.Args().First()
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		return cli.Exit(color.RedString("Error creating directory: %s", err), 1)
	}

	var conf project.ScanConf
	conf.CreateDefault()

	confPath := path.Join(dir, project.ConfFileName)
	if err := conf.Save(confPath, c.Bool("overwrite")); err != nil {
		return cli.Exit(color.RedString("Error saving config: %s", err), 1)
	}

	color.Green("Created %s", confPath)
	return nil
}
