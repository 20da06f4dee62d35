package kwengine

import "math/rand"

// randomGreedyTrials is the fixed trial budget §4.5.2 specifies.
const randomGreedyTrials = 5000

// RunRandomGreedy is the GreedyNaive driver: a first-improvement random
// walk over a fixed budget of trials. Each trial picks a uniformly random
// swap and applies it only if doing so strictly improves the score; no
// worsening move is ever accepted.
func RunRandomGreedy(sc *SearchContext, rng *rand.Rand) SearchResult {
	layout := sc.startingLayout(rng)
	diff := make([]float64, len(sc.Analyzer.Data.Metrics))

	lastAccepted := 0
	for trial := 0; trial < randomGreedyTrials; trial++ {
		swap := sc.PossibleSwaps[rng.Intn(len(sc.PossibleSwaps))]
		clearFloats(diff)
		sc.Analyzer.SwapDiff(diff, layout, swap)
		if sc.Evaluator.Eval(diff) < 0 {
			layout.Apply(swap)
			lastAccepted = trial
		}
	}

	return sc.finalize(layout, lastAccepted)
}
