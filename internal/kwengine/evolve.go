package kwengine

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/MaxHalford/eaopt"
)

// AcceptWorsePolicy names one of the simulated-annealing acceptance
// schedules GeneticAnnealing can run under.
type AcceptWorsePolicy string

const (
	AcceptAlways   AcceptWorsePolicy = "always"
	AcceptNever    AcceptWorsePolicy = "never"
	AcceptDropSlow AcceptWorsePolicy = "drop-slow"
	AcceptLinear   AcceptWorsePolicy = "linear"
	AcceptDropFast AcceptWorsePolicy = "drop-fast"
)

// acceptFunc returns eaopt's generation-progress-dependent acceptance
// probability for a worsening move under the named policy.
func acceptFunc(policy AcceptWorsePolicy) (func(gen, maxGen uint, e0, e1 float64) float64, error) {
	switch policy {
	case AcceptAlways:
		return func(uint, uint, float64, float64) float64 { return 1.0 }, nil
	case AcceptNever:
		return func(uint, uint, float64, float64) float64 { return 0.0 }, nil
	case AcceptDropSlow:
		return func(gen, maxGen uint, e0, e1 float64) float64 {
			t := float64(gen) / float64(maxGen)
			return (math.Cos(t*math.Pi) + 1.0) / 2.0
		}, nil
	case AcceptLinear:
		return func(gen, maxGen uint, e0, e1 float64) float64 {
			return 1.0 - float64(gen)/float64(maxGen)
		}, nil
	case AcceptDropFast:
		return func(gen, maxGen uint, e0, e1 float64) float64 {
			t := 1.0 - float64(gen)/float64(maxGen)
			return math.Exp(-3.0 * (1 - t))
		}, nil
	default:
		return nil, fmt.Errorf("evolve: unknown accept-worse policy %q", policy)
	}
}

// layoutGenome adapts a Layout, pinned-prefix length, Analyzer and
// Evaluator to eaopt's Genome interface, so the search space this engine
// already knows how to score can be explored by eaopt's genetic/annealing
// machinery as an alternative to the four dedicated §4.5 drivers. This
// strategy is explicitly experimental: it does not share the incremental
// swap-diff fast path, recomputing full stats on every Evaluate call.
type layoutGenome struct {
	layout    Layout
	pin       int
	analyzer  *Analyzer
	evaluator *Evaluator
}

// Evaluate scores the genome by fully recomputing its stats vector — the
// slow path is unavoidable here since eaopt's Genome interface has no
// concept of an incremental swap delta.
func (g *layoutGenome) Evaluate() (float64, error) {
	stats := g.analyzer.CalcStats(g.layout)
	return g.evaluator.Eval(stats), nil
}

// Mutate swaps two uniformly random non-pinned positions.
func (g *layoutGenome) Mutate(rng *rand.Rand) {
	free := len(g.layout) - g.pin
	if free < 2 {
		panic(fmt.Sprintf("evolve: not enough free positions to mutate: %d", free))
	}
	i := g.pin + rng.Intn(free)
	j := g.pin + rng.Intn(free)
	for j == i {
		j = g.pin + rng.Intn(free)
	}
	g.layout.Apply(Swap{A: i, B: j})
}

// Crossover is a no-op: GeneticAnnealing only ever runs eaopt's
// simulated-annealing model, which mutates a single lineage and never
// recombines two genomes. It exists only to satisfy eaopt.Genome.
func (g *layoutGenome) Crossover(eaopt.Genome, *rand.Rand) {}

// Clone returns an independent copy of the genome.
func (g *layoutGenome) Clone() eaopt.Genome {
	return &layoutGenome{
		layout:    g.layout.Clone(),
		pin:       g.pin,
		analyzer:  g.analyzer,
		evaluator: g.evaluator,
	}
}

// GeneticAnnealing runs eaopt's simulated-annealing model over sc's search
// space for the given number of generations under the named acceptance
// policy, and returns the best layout eaopt's hall of fame ever recorded.
func GeneticAnnealing(sc *SearchContext, generations uint, policy AcceptWorsePolicy) (SearchResult, error) {
	accept, err := acceptFunc(policy)
	if err != nil {
		return SearchResult{}, err
	}

	cfg := eaopt.NewDefaultGAConfig()
	cfg.NGenerations = generations
	cfg.Model = eaopt.ModSimulatedAnnealing{Accept: accept}

	ga, err := cfg.NewGA()
	if err != nil {
		return SearchResult{}, fmt.Errorf("evolve: configuring GA: %w", err)
	}

	seed := &layoutGenome{
		layout:    sc.Seed.Clone(),
		pin:       sc.Pin,
		analyzer:  sc.Analyzer,
		evaluator: sc.Evaluator,
	}
	newGenome := func(rng *rand.Rand) eaopt.Genome {
		g := seed.Clone().(*layoutGenome)
		g.layout.ShufflePinned(g.pin, rng)
		return g
	}
	if err := ga.Minimize(newGenome); err != nil {
		return SearchResult{}, fmt.Errorf("evolve: running GA: %w", err)
	}

	best := ga.HallOfFame[0].Genome.(*layoutGenome)
	return sc.finalize(best.layout, int(ga.Generations)), nil
}
