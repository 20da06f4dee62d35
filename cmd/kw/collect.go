package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/rbscholtus/keywhisker/internal/config"
	"github.com/rbscholtus/keywhisker/internal/kwengine"
	"github.com/urfave/cli/v3"
)

// collectCommand draws random-assignment layout samples and writes their
// scores and stats to a generated TSV file, the original's output_table
// Monte-Carlo sampler surfaced as a command.
var collectCommand = &cli.Command{
	Name:      "collect",
	Aliases:   []string{"c"},
	Usage:     "Sample random layouts and record their metric distribution",
	Flags:     flagsSlice("corpus", "metrics", "keyboard", "charset", "weights-file", "weights", "pin", "samples", "workers", "out-dir"),
	ArgsUsage: "",
	Action:    collectAction,
}

func collectAction(ctx context.Context, c *cli.Command) error {
	corpus, err := loadCorpus(c)
	if err != nil {
		return err
	}
	md, err := loadMetricData(c)
	if err != nil {
		return err
	}
	evaluator, err := loadEvaluator(c, md)
	if err != nil {
		return err
	}
	seed, err := loadSeedLayout(c, corpus)
	if err != nil {
		return err
	}
	pin, err := config.ParsePin(c.String("pin"))
	if err != nil {
		return err
	}

	analyzer := kwengine.NewAnalyzer(md, corpus)

	outPath := filepath.Join(c.String("out-dir"), fmt.Sprintf("collect_%s.tsv", uuid.NewString()))
	f, err := os.Create(outPath)
	if err != nil {
		return fmt.Errorf("could not create sample output file %q: %w", outPath, err)
	}
	defer f.Close()

	cfg := kwengine.SamplerConfig{
		Seed:      seed,
		Analyzer:  analyzer,
		Evaluator: evaluator,
		Pin:       pin,
		Samples:   c.Int("samples"),
		Workers:   c.Int("workers"),
		Writer:    f,
	}
	if err := kwengine.Collect(ctx, cfg); err != nil {
		return fmt.Errorf("collect: %w", err)
	}

	fmt.Printf("wrote %d samples to %s\n", cfg.Samples, outPath)
	return nil
}
