package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/rbscholtus/keywhisker/internal/kwengine"
	"github.com/urfave/cli/v3"
)

// statsCommand prints a side-by-side metric comparison of one or more
// named layouts, each metric shown as a percentage of its ngram kind's
// total for that layout, the original's stats() function surfaced as a
// command.
var statsCommand = &cli.Command{
	Name:      "stats",
	Aliases:   []string{"st"},
	Usage:     "Compare named layouts' metric stats side by side",
	Flags:     flagsSlice("corpus", "metrics", "layout"),
	ArgsUsage: "",
	Action:    statsAction,
}

func statsAction(ctx context.Context, c *cli.Command) error {
	corpus, err := loadCorpus(c)
	if err != nil {
		return err
	}
	md, err := loadMetricData(c)
	if err != nil {
		return err
	}
	analyzer := kwengine.NewAnalyzer(md, corpus)

	files := c.StringSlice("layout")
	if len(files) == 0 {
		return fmt.Errorf("at least one --layout is required")
	}

	names := make([]string, len(files))
	stats := make([][]float64, len(files))
	for i, f := range files {
		layout, err := loadLayoutFile(f)
		if err != nil {
			return err
		}
		names[i] = strings.TrimSuffix(filepath.Base(f), filepath.Ext(f))
		stats[i] = analyzer.CalcStats(layout)
		totals := kwengine.ComputeLayoutTotals(layout, corpus)
		for m, desc := range md.Metrics {
			stats[i][m] = totals.Percentage(stats[i][m], desc.Kind)
		}
	}

	renderComparison(os.Stdout, md, names, stats)
	return nil
}
