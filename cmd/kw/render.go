package main

import (
	"fmt"
	"io"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/rbscholtus/keywhisker/internal/kwengine"
)

// renderResult prints a single search result as a two-column table under a
// metric/value header: strategy, iterations and score rows, then one row
// per metric of md.
func renderResult(w io.Writer, strategy string, md kwengine.MetricData, result kwengine.SearchResult) {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.AppendHeader(table.Row{"metric", "value"})
	t.AppendRow(table.Row{"strategy", strategy})
	t.AppendRow(table.Row{"iterations", result.Iterations})
	t.AppendRow(table.Row{"score", fmt.Sprintf("%.6f", result.Score)})
	t.AppendSeparator()
	for i, m := range md.Metrics {
		t.AppendRow(table.Row{m.Name, fmt.Sprintf("%.4f", result.Stats[i])})
	}
	t.Render()
}

// renderComparison prints several named layouts' stats side by side,
// mirroring the original's column-aligned layout comparison table.
func renderComparison(w io.Writer, md kwengine.MetricData, names []string, stats [][]float64) {
	t := table.NewWriter()
	t.SetOutputMirror(w)

	header := table.Row{"metric"}
	for _, n := range names {
		header = append(header, n)
	}
	t.AppendHeader(header)

	for i, m := range md.Metrics {
		row := table.Row{m.Name}
		for _, s := range stats {
			row = append(row, fmt.Sprintf("%.4f", s[i]))
		}
		t.AppendRow(row)
	}
	t.Render()
}
