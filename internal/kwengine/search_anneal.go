package kwengine

import "math/rand"

// Fixed-schedule simulated annealing parameters (§4.5.3).
const (
	annealInitialTemp = 0.5
	annealIterations  = 1_000_000
)

// RunSimulatedAnnealing is the fixed-schedule SA driver. Temperature cools
// linearly from annealInitialTemp to 0 over annealIterations steps. Unlike
// classic Metropolis acceptance, the temperature itself — not
// exp(-delta/T) — is used as the acceptance probability for a non-improving
// move; this atypical rule is preserved exactly for behavioral
// compatibility with the reference implementation.
func RunSimulatedAnnealing(sc *SearchContext, rng *rand.Rand) SearchResult {
	layout := sc.startingLayout(rng)
	diff := make([]float64, len(sc.Analyzer.Data.Metrics))

	temp := float32(annealInitialTemp)
	dec := temp / float32(annealIterations)

	for i := 0; i < annealIterations; i++ {
		temp -= dec
		swap := sc.PossibleSwaps[rng.Intn(len(sc.PossibleSwaps))]
		clearFloats(diff)
		sc.Analyzer.SwapDiff(diff, layout, swap)
		score := sc.Evaluator.Eval(diff)
		if score < 0 || rng.Float32() < temp {
			layout.Apply(swap)
		}
	}

	return sc.finalize(layout, annealIterations)
}
