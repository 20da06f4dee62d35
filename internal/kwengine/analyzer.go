package kwengine

// Analyzer owns a MetricData and a reference to the Corpus it was built
// against. Its two operations — CalcStats and SwapDiff — dominate a search
// run's cost and are written to allow millions of per-swap evaluations.
// An Analyzer never mutates a Layout; callers own the sequence of accepted
// swaps.
type Analyzer struct {
	Data   MetricData
	Corpus *Corpus
}

// NewAnalyzer builds an Analyzer from a (typically already-filtered)
// MetricData and the Corpus it was built against.
func NewAnalyzer(data MetricData, corpus *Corpus) *Analyzer {
	return &Analyzer{Data: data, Corpus: corpus}
}

// ngramPositions resolves which of an nstroke's positions make up the
// ngram for a contribution of the given kind. Monogram/Bigram/Trigram read
// the nstroke's positions directly (in order); Skipgram reads the first
// and last position of a 3-position nstroke (skipping the middle key),
// falling back to the raw 2-position nstroke when that is all it has.
func ngramPositions(ns Nstroke, kind NgramKind) []int {
	switch kind {
	case Monogram:
		return ns[:1]
	case Bigram:
		return ns[:2]
	case Trigram:
		return ns[:3]
	case Skipgram:
		if len(ns) == 3 {
			return []int{ns[0], ns[2]}
		}
		return ns[:2]
	default:
		return nil
	}
}

// strokeFreq computes the corpus frequency of the ngram a contribution of
// the given kind reads out of nstroke at the current layout. A position
// holding CharCode 0 ("no character") makes the ngram's frequency 0
// without touching the corpus.
func (a *Analyzer) strokeFreq(layout Layout, ns Nstroke, kind NgramKind) float64 {
	positions := ngramPositions(ns, kind)
	codes := make([]CharCode, len(positions))
	for i, p := range positions {
		codes[i] = layout[p]
	}
	code, ok := a.Corpus.Pack(codes...)
	if !ok {
		return 0
	}
	return float64(a.Corpus.Freq(code, kind))
}

// CalcStats fully recomputes the stats vector for layout from scratch: for
// every NstrokeData, it reads the ngram frequency implied by each
// contribution's metric and accumulates amount*frequency into that
// metric's slot.
func (a *Analyzer) CalcStats(layout Layout) []float64 {
	stats := make([]float64, len(a.Data.Metrics))
	a.RecalcStats(stats, layout)
	return stats
}

// RecalcStats is CalcStats writing into a caller-provided buffer. The
// buffer must already be zeroed; this lets callers reuse one allocation
// across many recomputations (e.g. the Collect sampler, and the DDAKO
// driver's commit-recompute-rollback slow path).
func (a *Analyzer) RecalcStats(statsOut []float64, layout Layout) {
	for _, s := range a.Data.Strokes {
		for _, amt := range s.Amounts {
			kind := a.Data.Metrics[amt.Metric].Kind
			f := a.strokeFreq(layout, s.Nstroke, kind)
			statsOut[amt.Metric] += amt.Amount * f
		}
	}
}

// SwapDiff computes, into diffOut (which the caller must zero before each
// call), the change in every metric's total that applying swap to layout
// would produce, without mutating layout. Only the strokes touching
// swap.A or swap.B are visited — each exactly once, even when a stroke
// touches both positions — via the position-stroke index, making the cost
// proportional to the strokes actually affected rather than to the full
// stroke list.
//
// For the stats vector of the current layout, stats+diffOut equals
// CalcStats(layout-after-swap) to within floating-point rounding. If
// layout[swap.A] == layout[swap.B], the swap is a no-op and diffOut stays
// the zero vector.
func (a *Analyzer) SwapDiff(diffOut []float64, layout Layout, swap Swap) {
	if layout[swap.A] == layout[swap.B] {
		return
	}

	touched := unionStrokes(a.Data.PositionStrokes[swap.A], a.Data.PositionStrokes[swap.B])

	layout.Apply(swap)
	for _, idx := range touched {
		s := a.Data.Strokes[idx]
		for _, amt := range s.Amounts {
			kind := a.Data.Metrics[amt.Metric].Kind
			before := a.strokeFreqSwapped(layout, s.Nstroke, kind, swap)
			after := a.strokeFreq(layout, s.Nstroke, kind)
			diffOut[amt.Metric] += amt.Amount * (after - before)
		}
	}
	layout.Apply(swap) // undo: Apply is its own inverse
}

// strokeFreqSwapped computes strokeFreq as it was *before* swap, given that
// layout currently reflects the state *after* swap — i.e. it un-applies the
// swap only for the purpose of reading the two positions involved, without
// a second full Apply/un-apply round trip.
func (a *Analyzer) strokeFreqSwapped(layout Layout, ns Nstroke, kind NgramKind, swap Swap) float64 {
	positions := ngramPositions(ns, kind)
	codes := make([]CharCode, len(positions))
	for i, p := range positions {
		switch p {
		case swap.A:
			codes[i] = layout[swap.B]
		case swap.B:
			codes[i] = layout[swap.A]
		default:
			codes[i] = layout[p]
		}
	}
	code, ok := a.Corpus.Pack(codes...)
	if !ok {
		return 0
	}
	return float64(a.Corpus.Freq(code, kind))
}

// unionStrokes merges two sorted-by-construction-order index slices,
// de-duplicating entries common to both (a stroke touching both swapped
// positions appears in both position-stroke lists but must be visited only
// once).
func unionStrokes(a, b []int) []int {
	seen := make(map[int]bool, len(a)+len(b))
	out := make([]int, 0, len(a)+len(b))
	for _, idx := range a {
		if !seen[idx] {
			seen[idx] = true
			out = append(out, idx)
		}
	}
	for _, idx := range b {
		if !seen[idx] {
			seen[idx] = true
			out = append(out, idx)
		}
	}
	return out
}
