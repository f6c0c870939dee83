// Package main provides the CLI entrypoint for reflex-remapper.
//
// reflex-remapper resolves field and method names written against the
// intermediate or canonical naming scheme to the names used at runtime:
//   - field:  resolve a field name of a class
//   - method: resolve a method name for a list of argument classes
//   - class:  translate and disambiguate a class name
//   - check:  validate mapping files
package main

import (
	"fmt"
	"os"

	"github.com/urfave/cli/v2"

	"reflex-remapper/internal/config"
)

// Version is set at build time.
var Version = "dev"

func main() {
	if err := newApp().Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newApp() *cli.App {
	return &cli.App{
		Name:    "reflex-remapper",
		Usage:   "Resolve member names across intermediate, canonical and runtime schemes",
		Version: Version,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "Config file path",
				Value:   config.DefaultFile,
			},
			&cli.StringSliceFlag{
				Name:    "mapping",
				Aliases: []string{"m"},
				Usage:   "Mapping file glob, repeatable (overrides [mapping] files)",
			},
			&cli.StringFlag{
				Name:  "classes",
				Usage: "Class hierarchy file (overrides [mapping] classes)",
			},
			&cli.StringSliceFlag{
				Name:  "packages",
				Usage: "Go package patterns whose named types are loaded as classes",
			},
			&cli.StringFlag{
				Name:  "log-level",
				Usage: "Log level (overrides [log] level)",
			},
		},
		Commands: []*cli.Command{
			{
				Name:      "field",
				Aliases:   []string{"f"},
				Usage:     "Resolve a field name",
				ArgsUsage: "OWNER NAME",
				Flags:     []cli.Flag{explainFlag},
				Action:    fieldCommand,
			},
			{
				Name:      "method",
				Usage:     "Resolve a method name for the given argument classes (\"null\" for an absent value)",
				ArgsUsage: "OWNER NAME [ARG_CLASS...]",
				Flags:     []cli.Flag{explainFlag},
				Action:    methodCommand,
			},
			{
				Name:      "class",
				Usage:     "Translate a class name and show both schemes",
				ArgsUsage: "NAME",
				Action:    classCommand,
			},
			{
				Name:   "check",
				Usage:  "Validate mapping files",
				Action: checkCommand,
			},
		},
	}
}

var explainFlag = &cli.BoolFlag{
	Name:    "explain",
	Aliases: []string{"e"},
	Usage:   "Show how the name was resolved",
}
