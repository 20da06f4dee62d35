// Package main provides the CLI entrypoint for the kw keyboard-layout
// analysis and optimization tool.
//
// optimise.go implements the "optimise" command, dispatching to one of
// the engine's five search strategies.
//
// stats.go implements the "stats" command, comparing named layouts'
// metric stats side by side.
//
// collect.go implements the "collect" command, a Monte-Carlo sampler of
// the random-assignment metric distribution.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/urfave/cli/v3"
)

func main() {
	app := &cli.Command{
		Name:  "kw",
		Usage: "Analyze and optimize keyboard layouts against a corpus",
		Commands: []*cli.Command{
			optimiseCommand,
			statsCommand,
			collectCommand,
		},
	}

	if err := app.Run(context.Background(), os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
