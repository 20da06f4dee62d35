package kwengine

import "math/rand"

// SearchContext bundles everything the C5 drivers share: a seed layout, the
// analyzer and evaluator to score it with, the full swap neighborhood, and
// the pinned-prefix length every driver must respect.
type SearchContext struct {
	Seed          Layout
	Analyzer      *Analyzer
	PossibleSwaps []Swap
	Evaluator     *Evaluator
	Pin           int
}

// SearchResult is what every C5 driver returns: a driver-specific iteration
// count, the resulting scalar score, the full per-metric stats vector, and
// the final layout. Iterations is the number of accepted swaps for steepest
// descent, the trial index of the last accepted swap for the random greedy
// walk, the fixed iteration budget for simulated annealing, the number of
// outer iterations for DDAKO, and the generation count for GeneticAnnealing.
type SearchResult struct {
	Iterations int
	Score      float64
	Stats      []float64
	Layout     Layout
}

// NewSearchContext precomputes the swap neighborhood for a keyboard of
// size n with a pinned prefix of length pin, as every driver needs it.
func NewSearchContext(seed Layout, analyzer *Analyzer, evaluator *Evaluator, pin int) SearchContext {
	return SearchContext{
		Seed:          seed,
		Analyzer:      analyzer,
		PossibleSwaps: PossibleSwaps(len(seed), pin),
		Evaluator:     evaluator,
		Pin:           pin,
	}
}

// startingLayout clones the seed and shuffles its free (non-pinned)
// positions, the common first step of every driver.
func (sc *SearchContext) startingLayout(rng *rand.Rand) Layout {
	layout := sc.Seed.Clone()
	layout.ShufflePinned(sc.Pin, rng)
	return layout
}

// finalize recomputes stats and score from scratch at the driver's
// stopping point, avoiding any drift accumulated through a long sequence
// of incremental swap-diff applications.
func (sc *SearchContext) finalize(layout Layout, iterations int) SearchResult {
	stats := sc.Analyzer.CalcStats(layout)
	return SearchResult{
		Iterations: iterations,
		Score:      sc.Evaluator.Eval(stats),
		Stats:      stats,
		Layout:     layout,
	}
}
