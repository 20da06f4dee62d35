package main

import (
	"context"
	"fmt"
	"os"

	"github.com/rbscholtus/keywhisker/internal/config"
	"github.com/rbscholtus/keywhisker/internal/kwengine"
	"github.com/urfave/cli/v3"
)

// optimiseCommand runs one of the five search strategies against a seed
// layout and reports the resulting score and stats.
var optimiseCommand = &cli.Command{
	Name:      "optimise",
	Aliases:   []string{"o"},
	Usage:     "Search for a better keyboard layout",
	Flags:     flagsSlice("corpus", "metrics", "keyboard", "charset", "weights-file", "weights", "pin", "strategy", "accept-worse", "generations", "seed"),
	ArgsUsage: "",
	Action:    optimiseAction,
}

func optimiseAction(ctx context.Context, c *cli.Command) error {
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
	sc := kwengine.NewSearchContext(seed, analyzer, evaluator, pin)
	rng := newSeededRand(c)

	strategy := c.String("strategy")
	var result kwengine.SearchResult
	switch strategy {
	case "steepest":
		result = kwengine.RunSteepestDescent(&sc, rng)
	case "random-greedy":
		result = kwengine.RunRandomGreedy(&sc, rng)
	case "anneal":
		result = kwengine.RunSimulatedAnnealing(&sc, rng)
	case "ddako":
		result = kwengine.RunAdaptiveAnnealing(&sc, rng)
	case "genetic":
		policy := kwengine.AcceptWorsePolicy(c.String("accept-worse"))
		generations := uint(c.Uint("generations"))
		result, err = kwengine.GeneticAnnealing(&sc, generations, policy)
		if err != nil {
			return err
		}
	default:
		return fmt.Errorf("unknown --strategy %q", strategy)
	}

	renderResult(os.Stdout, strategy, md, result)
	return nil
}
