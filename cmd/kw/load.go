package main

import (
	"encoding/json"
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/rbscholtus/keywhisker/internal/config"
	"github.com/rbscholtus/keywhisker/internal/kwengine"
	"github.com/urfave/cli/v3"
)

// loadCorpus loads the --corpus flag's JSON file.
func loadCorpus(c *cli.Command) (*kwengine.Corpus, error) {
	path := c.String("corpus")
	if path == "" {
		return nil, fmt.Errorf("--corpus is required")
	}
	return kwengine.LoadCorpusJSON(path)
}

// loadMetricData loads the --metrics flag's JSON file.
func loadMetricData(c *cli.Command) (kwengine.MetricData, error) {
	path := c.String("metrics")
	if path == "" {
		return kwengine.MetricData{}, fmt.Errorf("--metrics is required")
	}
	return config.LoadMetricData(path)
}

// loadEvaluator builds an Evaluator from the --weights-file and --weights
// flags, file entries applied first so --weights can override them.
func loadEvaluator(c *cli.Command, md kwengine.MetricData) (*kwengine.Evaluator, error) {
	var pairs []kwengine.WeightedMetric

	if path := c.String("weights-file"); path != "" {
		fromFile, err := config.ParseWeightsFile(md, path)
		if err != nil {
			return nil, err
		}
		pairs = append(pairs, fromFile...)
	}

	if s := c.String("weights"); s != "" {
		fromFlag, err := config.ParseWeights(md, s)
		if err != nil {
			return nil, err
		}
		for _, fp := range fromFlag {
			replaced := false
			for i := range pairs {
				if pairs[i].Metric == fp.Metric {
					pairs[i].Weight = fp.Weight
					replaced = true
				}
			}
			if !replaced {
				pairs = append(pairs, fp)
			}
		}
	}

	return kwengine.NewEvaluator(pairs)
}

// loadSeedLayout loads the --keyboard description and builds a seed
// Layout from the --charset flag.
func loadSeedLayout(c *cli.Command, corpus *kwengine.Corpus) (kwengine.Layout, error) {
	kbPath := c.String("keyboard")
	if kbPath == "" {
		return nil, fmt.Errorf("--keyboard is required")
	}
	kb, err := config.LoadKeyboardDescription(kbPath)
	if err != nil {
		return nil, err
	}
	return kb.SeedLayout(corpus, []rune(c.String("charset")))
}

// loadLayoutFile reads a Layout previously written by saveLayout.
func loadLayoutFile(path string) (kwengine.Layout, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("could not read layout file %q: %w", path, err)
	}
	var codes []kwengine.CharCode
	if err := json.Unmarshal(data, &codes); err != nil {
		return nil, fmt.Errorf("could not unmarshal layout file %q: %w", path, err)
	}
	return kwengine.Layout(codes), nil
}

// saveLayout writes layout to path as JSON.
func saveLayout(path string, layout kwengine.Layout) error {
	data, err := json.MarshalIndent(layout, "", "  ")
	if err != nil {
		return fmt.Errorf("could not marshal layout: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("could not write layout file %q: %w", path, err)
	}
	return nil
}

// newSeededRand builds the driver RNG: the --seed flag's value if
// nonzero, otherwise one derived from the current time, matching the
// teacher's own "Seed: time.Now().UnixNano()" default (DefaultBLSParams).
func newSeededRand(c *cli.Command) *rand.Rand {
	seed := c.Int64("seed")
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed))
}
