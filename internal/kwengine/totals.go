package kwengine

// LayoutTotals holds the four ngram-kind totals (summed once at
// construction) against which raw stat values are converted to
// percentages. Totals are restricted to the corpus's counts for the
// characters actually populated in a layout, so Percentage answers "what
// fraction of all typed keystrokes of this kind".
type LayoutTotals struct {
	Chars, Bigrams, Skipgrams, Trigrams uint64
}

// ComputeLayoutTotals sums the corpus's per-kind ngram counts restricted to
// ngrams whose every character is present somewhere in layout.
func ComputeLayoutTotals(layout Layout, corpus *Corpus) LayoutTotals {
	present := make(map[CharCode]bool, len(layout))
	for _, cc := range layout {
		if cc != 0 {
			present[cc] = true
		}
	}

	var totals LayoutTotals
	for code := 1; code < len(corpus.monograms); code++ {
		if present[CharCode(code)] {
			totals.Chars += uint64(corpus.monograms[code])
		}
	}
	base := corpus.base
	for code, n := range corpus.bigrams {
		c0, c1 := CharCode(code%base), CharCode(code/base)
		if present[c0] && present[c1] {
			totals.Bigrams += uint64(n)
		}
	}
	for code, n := range corpus.skipgrams {
		c0, c1 := CharCode(code%base), CharCode(code/base)
		if present[c0] && present[c1] {
			totals.Skipgrams += uint64(n)
		}
	}
	for code, n := range corpus.trigrams {
		c0 := CharCode(code % base)
		c1 := CharCode((code / base) % base)
		c2 := CharCode(code / (base * base))
		if present[c0] && present[c1] && present[c2] {
			totals.Trigrams += uint64(n)
		}
	}
	return totals
}

// Percentage converts a raw stat value for a metric of the given kind into
// a percentage of that kind's total. If the relevant total is 0 — meaning
// the layout populates no ngrams of that kind — it returns 0 rather than
// NaN.
func (t LayoutTotals) Percentage(freq float64, kind NgramKind) float64 {
	var total uint64
	switch kind {
	case Monogram:
		total = t.Chars
	case Bigram:
		total = t.Bigrams
	case Skipgram:
		total = t.Skipgrams
	case Trigram:
		total = t.Trigrams
	}
	if total == 0 {
		return 0
	}
	return 100 * freq / float64(total)
}
