package kwengine

import "testing"

func TestComputeLayoutTotalsRestrictsToPresentChars(t *testing.T) {
	cb := NewCorpusBuilder("totals")
	cb.AddMonogram('a')
	cb.AddMonogram('a')
	cb.AddMonogram('z') // not on the layout below
	cb.AddBigram('a', 'b')
	cb.AddBigram('z', 'a') // touches an absent char, excluded
	corpus := cb.Build()

	layout := Layout{corpus.CharCode('a'), corpus.CharCode('b')}
	totals := ComputeLayoutTotals(layout, corpus)

	if totals.Chars != 2 {
		t.Errorf("Chars = %d, want 2 (z excluded)", totals.Chars)
	}
	if totals.Bigrams != 1 {
		t.Errorf("Bigrams = %d, want 1 (z-containing bigram excluded)", totals.Bigrams)
	}
}

func TestPercentageHandlesZeroTotal(t *testing.T) {
	var totals LayoutTotals
	if got := totals.Percentage(5, Bigram); got != 0 {
		t.Errorf("Percentage with zero total = %v, want 0", got)
	}
}

func TestPercentageComputesFraction(t *testing.T) {
	totals := LayoutTotals{Bigrams: 200}
	if got, want := totals.Percentage(50, Bigram), 25.0; got != want {
		t.Errorf("Percentage() = %v, want %v", got, want)
	}
}
