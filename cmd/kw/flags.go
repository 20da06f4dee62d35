package main

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"
)

// appFlagsMap centralizes flag definitions so each command can pick only
// the subset it needs, following the teacher's own flagsSlice convention.
var appFlagsMap = map[string]cli.Flag{
	"corpus": &cli.StringFlag{
		Name:     "corpus",
		Aliases:  []string{"c"},
		Usage:    "corpus JSON file to score layouts against",
		Required: true,
	},
	"metrics": &cli.StringFlag{
		Name:     "metrics",
		Aliases:  []string{"m"},
		Usage:    "metric data JSON file describing nstrokes and their contributions",
		Required: true,
	},
	"keyboard": &cli.StringFlag{
		Name:     "keyboard",
		Aliases:  []string{"k"},
		Usage:    "keyboard description JSON file (key map + combo count)",
		Required: true,
	},
	"charset": &cli.StringFlag{
		Name:    "charset",
		Aliases: []string{"s"},
		Usage:   "characters to seed the layout with, assigned in order to the keyboard's key positions",
	},
	"layout": &cli.StringSliceFlag{
		Name:    "layout",
		Aliases: []string{"l"},
		Usage:   "a named layout JSON file to include; repeatable",
	},
	"weights-file": &cli.StringFlag{
		Name:    "weights-file",
		Aliases: []string{"wf"},
		Usage:   "file of metric=weight lines, one per line",
	},
	"weights": &cli.StringFlag{
		Name:    "weights",
		Aliases: []string{"w"},
		Usage:   "comma-separated metric=weight pairs, overriding --weights-file entries",
	},
	"pin": &cli.StringFlag{
		Name:  "pin",
		Usage: "number of leading layout positions the search must never move",
		Value: "0",
	},
	"strategy": &cli.StringFlag{
		Name:    "strategy",
		Aliases: []string{"t"},
		Usage:   "search strategy: steepest, random-greedy, anneal, ddako, or genetic",
		Value:   "steepest",
		Action: func(ctx context.Context, c *cli.Command, value string) error {
			switch value {
			case "steepest", "random-greedy", "anneal", "ddako", "genetic":
				return nil
			default:
				return fmt.Errorf("--strategy must be one of steepest, random-greedy, anneal, ddako, genetic (got %q)", value)
			}
		},
	},
	"accept-worse": &cli.StringFlag{
		Name:  "accept-worse",
		Usage: "genetic strategy's acceptance policy: always, never, drop-slow, linear, or drop-fast",
		Value: "drop-slow",
	},
	"generations": &cli.UintFlag{
		Name:  "generations",
		Usage: "genetic strategy's generation budget",
		Value: 250,
	},
	"seed": &cli.Int64Flag{
		Name:  "seed",
		Usage: "RNG seed; 0 picks one from the current time",
	},
	"samples": &cli.IntFlag{
		Name:    "samples",
		Aliases: []string{"n"},
		Usage:   "number of random layouts to sample",
		Value:   10000,
	},
	"workers": &cli.IntFlag{
		Name:  "workers",
		Usage: "number of concurrent sampling workers (0 picks the default)",
	},
	"out-dir": &cli.StringFlag{
		Name:  "out-dir",
		Usage: "directory to write the sample output file into",
		Value: ".",
	},
}

// flagsSlice converts selected appFlagsMap keys to a []cli.Flag, in the
// order requested.
func flagsSlice(keys ...string) []cli.Flag {
	flags := make([]cli.Flag, 0, len(keys))
	for _, k := range keys {
		if f, ok := appFlagsMap[k]; ok {
			flags = append(flags, f)
		}
	}
	return flags
}
