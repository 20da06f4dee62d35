package kwengine

import (
	"math/rand"
	"testing"
)

func TestApplyIsItsOwnInverse(t *testing.T) {
	layout := Layout{1, 2, 3, 4}
	original := layout.Clone()
	swap := Swap{A: 0, B: 3}

	layout.Apply(swap)
	layout.Apply(swap)

	for i := range layout {
		if layout[i] != original[i] {
			t.Fatalf("position %d = %v after double-apply, want %v", i, layout[i], original[i])
		}
	}
}

func TestShufflePinnedLeavesPrefixUntouched(t *testing.T) {
	layout := Layout{10, 20, 30, 40, 50}
	rng := rand.New(rand.NewSource(1))
	layout.ShufflePinned(2, rng)

	if layout[0] != 10 || layout[1] != 20 {
		t.Errorf("pinned prefix changed: got %v", layout[:2])
	}
}

func TestPossibleSwapsRespectsPin(t *testing.T) {
	swaps := PossibleSwaps(4, 2)
	for _, s := range swaps {
		if s.A < 2 || s.B < 2 {
			t.Errorf("swap %+v touches a pinned position (pin=2)", s)
		}
		if s.A == s.B {
			t.Errorf("swap %+v is a no-op pair", s)
		}
	}
	// positions {2,3}: (2,3) and (3,2) are both present, per the ordered-pair contract.
	if len(swaps) != 2 {
		t.Errorf("len(swaps) = %d, want 2", len(swaps))
	}
}
