package kwengine

import "math/rand"

// steepestDescentEpsilon is the tolerance steepest descent uses to decide a
// swap is worth accepting, avoiding oscillation on near-zero-improvement
// swaps caused by floating-point noise.
const steepestDescentEpsilon = 1e-6

// RunSteepestDescent is the GreedyDeterministic driver: at each step it
// evaluates every possible swap's delta and takes the single best one, so
// long as that best delta improves the score by more than
// steepestDescentEpsilon. It terminates because each accepted swap strictly
// decreases eval(stats) in a finite discrete space.
func RunSteepestDescent(sc *SearchContext, rng *rand.Rand) SearchResult {
	layout := sc.startingLayout(rng)
	diff := make([]float64, len(sc.Analyzer.Data.Metrics))

	iterations := 0
	for {
		bestDiff := 0.0
		bestSwap := sc.PossibleSwaps[0]
		for _, swap := range sc.PossibleSwaps {
			clearFloats(diff)
			sc.Analyzer.SwapDiff(diff, layout, swap)
			score := sc.Evaluator.Eval(diff)
			if score < bestDiff {
				bestDiff = score
				bestSwap = swap
			}
		}
		if bestDiff+steepestDescentEpsilon >= 0 {
			break
		}
		layout.Apply(bestSwap)
		iterations++
	}

	return sc.finalize(layout, iterations)
}

// clearFloats zeros every element of v in place.
func clearFloats(v []float64) {
	for i := range v {
		v[i] = 0
	}
}
