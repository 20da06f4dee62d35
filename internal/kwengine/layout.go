package kwengine

import "math/rand"

// Layout is an ordered sequence of character codes indexed by position.
// Its length equals the keyboard's total position count (plain keys plus
// combo slots, if any). Exactly one slot holds each character of the
// configured charset; the remaining slots hold CharCode 0.
type Layout []CharCode

// Clone returns an independent copy of the layout.
func (l Layout) Clone() Layout {
	out := make(Layout, len(l))
	copy(out, l)
	return out
}

// Swap is an unordered pair of distinct position indices. Applying it
// exchanges the character codes held at those positions.
type Swap struct {
	A, B int
}

// Apply exchanges the characters at the swap's two positions.
func (l Layout) Apply(s Swap) {
	l[s.A], l[s.B] = l[s.B], l[s.A]
}

// ShufflePinned randomly permutes the positions [pin, len(l)) of the
// layout using rng, leaving the pinned prefix [0, pin) untouched. Every
// search driver calls this once on a clone of its seed layout before
// starting.
func (l Layout) ShufflePinned(pin int, rng *rand.Rand) {
	free := l[pin:]
	rng.Shuffle(len(free), func(i, j int) {
		free[i], free[j] = free[j], free[i]
	})
}

// PossibleSwaps returns every ordered-as-unordered pair of positions (a, b)
// with a != b and both a >= pin and b >= pin — the full neighborhood a
// search driver explores on a layout of size n with pinned prefix pin.
func PossibleSwaps(n, pin int) []Swap {
	swaps := make([]Swap, 0, (n-pin)*(n-pin-1))
	for a := pin; a < n; a++ {
		for b := pin; b < n; b++ {
			if a != b {
				swaps = append(swaps, Swap{A: a, B: b})
			}
		}
	}
	return swaps
}
