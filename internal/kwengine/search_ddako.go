package kwengine

import (
	"math"
	"math/rand"
)

// DDAKO tuning constants, matching the reference implementation's call-site
// defaults rather than reused one-letter symbols.
const (
	ddakoTargetAcceptance = 0.8
	ddakoTempEpsilon      = 0.01

	ddakoWindowCap           = 20
	ddakoCoolingRate         = 0.9
	ddakoCoolingIntervalInit = 5.0
	ddakoCoolingIntervalMin  = 1.0
	ddakoCoolingIntervalMax  = 10.0

	// eulerMascheroni is used in the coupon-collector stopping-point
	// formula: a random walk over N items needs on the order of
	// N*(ln N + gamma) draws to have visited all of them at least once.
	eulerMascheroni = 0.5772156649015329
)

// ddakoWindow is a fixed-capacity ring buffer of recent accept/reject
// outcomes, used to track a running acceptance ratio without rescanning
// history on every iteration. Only the delta<0 accept and the reject
// branches of RunAdaptiveAnnealing push into it — a probabilistic uphill
// accept is deliberately left out of the window, a reference-implementation
// asymmetry preserved here rather than "fixed".
type ddakoWindow struct {
	accepted [ddakoWindowCap]bool
	filled   int
	next     int
	accepts  int
}

func (w *ddakoWindow) push(accept bool) {
	if w.filled == ddakoWindowCap {
		if w.accepted[w.next] {
			w.accepts--
		}
	} else {
		w.filled++
	}
	w.accepted[w.next] = accept
	if accept {
		w.accepts++
	}
	w.next = (w.next + 1) % ddakoWindowCap
}

func (w *ddakoWindow) ratio() float64 {
	if w.filled == 0 {
		return 0
	}
	return float64(w.accepts) / float64(w.filled)
}

// ddakoStoppingPoint is the coupon-collector-derived iteration count a
// sampler needs to have a fair chance of having exercised every swap at
// least once: S = ceil(n*(ln(n)+gamma) + 0.5).
func ddakoStoppingPoint(n int) int {
	f := float64(n)
	return int(math.Ceil(f*(math.Log(f)+eulerMascheroni) + 0.5))
}

// evaluateSwapSlowly scores swap by actually applying it, recomputing the
// full stats vector, and reverting — the "slow path". DDAKO uses this
// instead of Analyzer.SwapDiff because its long, temperature-driven walk
// runs for many more iterations than the other drivers and cannot tolerate
// the accumulated floating-point drift that chaining SwapDiff calls over
// millions of accepted swaps would introduce.
func evaluateSwapSlowly(a *Analyzer, statsBuf []float64, layout Layout, swap Swap) []float64 {
	layout.Apply(swap)
	next := make([]float64, len(statsBuf))
	a.RecalcStats(next, layout)
	layout.Apply(swap) // undo
	return next
}

// ddakoInitialTemperature calibrates a starting temperature by the
// Ben-Ameur acceptance-ratio method: repeatedly evaluate every swap in the
// neighborhood (a full, deterministic sweep — no sampling, no randomness)
// and rescale the temperature until the fraction of worsening moves that
// would be accepted at that temperature converges to ddakoTargetAcceptance
// within ddakoTempEpsilon.
//
//	p = sum(exp(-e/T) for e in worsening fitnesses) / (|worsening| * exp(-F/T))
//	T <- T * ln(p) / ln(targetAcceptance)
//
// If a sweep finds no worsening move at all, p is undefined (0/0) and the
// loop exits after doubling T once, matching the reference implementation's
// NaN-comparison short-circuit.
func ddakoInitialTemperature(sc *SearchContext) float64 {
	stats := sc.Analyzer.CalcStats(sc.Seed)
	fitness := sc.Evaluator.Eval(stats)
	layout := sc.Seed.Clone()

	temp := fitness
	acceptance := 0.0

	for math.Abs(acceptance-ddakoTargetAcceptance) > ddakoTempEpsilon {
		var worsening []float64
		for _, swap := range sc.PossibleSwaps {
			next := evaluateSwapSlowly(sc.Analyzer, stats, layout, swap)
			newFitness := sc.Evaluator.Eval(next)
			if newFitness-fitness > 0.001 {
				worsening = append(worsening, newFitness)
			}
		}

		sumExp := 0.0
		for _, e := range worsening {
			sumExp += math.Exp(-e / temp)
		}
		acceptance = sumExp / (float64(len(worsening)) * math.Exp(-fitness/temp))

		if len(worsening) > 0 {
			temp *= math.Log(acceptance) / math.Log(ddakoTargetAcceptance)
		} else {
			temp *= 2.0
		}
	}

	return temp
}

// ddakoClassifyMove decides whether a candidate move with fitness delta
// (new minus current) is accepted at the given temperature, and whether
// the outcome should be pushed into the acceptance window. A downhill
// move is always accepted and pushed; a rejected move is always pushed;
// a probabilistic uphill accept (the Metropolis criterion) is accepted
// but deliberately NOT pushed — preserving the reference implementation's
// asymmetry rather than "fixing" it.
func ddakoClassifyMove(delta, temp float64, rng *rand.Rand) (accept, push bool) {
	switch {
	case delta < 0:
		return true, true
	case rng.Float64() < math.Exp(-delta/temp):
		return true, false
	default:
		return false, true
	}
}

// ddakoNextStays applies the per-move stays-counter update: a downhill
// accept resets it to zero, a probabilistic uphill accept decrements it
// (saturating at zero), and a reject increments it.
func ddakoNextStays(stays int, delta float64, accept bool) int {
	switch {
	case delta < 0:
		return 0
	case accept:
		if stays > 0 {
			return stays - 1
		}
		return 0
	default:
		return stays + 1
	}
}

// ddakoTrackBest snapshots layout as the new all-time best only when score
// improves on bestScore, leaving bestLayout (and its reference) untouched
// otherwise. The walk's current layout can worsen after an accepted uphill
// move without disturbing this snapshot, which is what lets
// RunAdaptiveAnnealing finalize on the best layout ever seen instead of
// wherever the walk happens to end up.
func ddakoTrackBest(layout Layout, score float64, bestLayout Layout, bestScore float64) (Layout, float64, bool) {
	if score < bestScore {
		return layout.Clone(), score, true
	}
	return bestLayout, bestScore, false
}

// RunAdaptiveAnnealing is the DDAKO driver: a simulated annealing walk
// whose temperature schedule adapts to the observed acceptance rate
// instead of following a fixed cooling curve. The outer loop's move
// budget N is the size of the swap neighborhood (matching how the
// reference implementation actually wires its "layout size" parameter,
// which is the possible-swap count, not the number of keyboard
// positions). A stays counter is reset by every downhill move, decremented
// by every accepted uphill move and incremented by every rejected move; the
// driver stops at the end of the first outer iteration after which stays
// has reached ddakoStoppingPoint(N).
//
// Every accepted move that beats the all-time best score snapshots the
// layout into bestLayout; the driver finalizes on that snapshot, not on
// wherever the walk happens to end up, since an accepted uphill move can
// leave the walk's current layout worse than one it passed through earlier.
func RunAdaptiveAnnealing(sc *SearchContext, rng *rand.Rand) SearchResult {
	n := len(sc.PossibleSwaps)
	stopAfter := ddakoStoppingPoint(n)

	layout := sc.startingLayout(rng)
	stats := sc.Analyzer.CalcStats(layout)
	fitness := sc.Evaluator.Eval(stats)

	bestLayout := layout.Clone()
	bestScore := fitness

	temp := ddakoInitialTemperature(sc)
	coolingInterval := float64(ddakoCoolingIntervalInit)
	window := &ddakoWindow{}

	stays := 0
	iteration := 0
	lastAdjustment := 0
	lastImprovement := 0

	for stays < stopAfter {
		for i := 0; i < n; i++ {
			swap := sc.PossibleSwaps[rng.Intn(n)]
			next := evaluateSwapSlowly(sc.Analyzer, stats, layout, swap)
			newFitness := sc.Evaluator.Eval(next)
			delta := newFitness - fitness

			accept, push := ddakoClassifyMove(delta, temp, rng)
			if push {
				window.push(accept)
			}
			stays = ddakoNextStays(stays, delta, accept)

			if accept {
				layout.Apply(swap)
				stats = next
				fitness = newFitness
				var improved bool
				bestLayout, bestScore, improved = ddakoTrackBest(layout, fitness, bestLayout, bestScore)
				if improved {
					lastImprovement = iteration
				}
			}
		}

		acceptanceRate := window.ratio()
		timeSinceImprovement := iteration - lastImprovement

		if iteration > 0 && (iteration-lastAdjustment)%int(coolingInterval) == 0 {
			lastAdjustment = iteration
			temp *= ddakoCoolingRate
			if acceptanceRate > 0.1 || coolingInterval > float64(timeSinceImprovement) {
				coolingInterval = math.Min(coolingInterval*1.1, ddakoCoolingIntervalMax)
			} else {
				coolingInterval = math.Max(coolingInterval*0.9, ddakoCoolingIntervalMin)
			}
		}
		iteration++
	}

	return sc.finalize(bestLayout, iteration)
}
