package kwengine

import "testing"

func TestGeneticAnnealingReturnsScoredLayout(t *testing.T) {
	sc := buildSearchFixture(t)

	result, err := GeneticAnnealing(&sc, 5, AcceptDropSlow)
	if err != nil {
		t.Fatalf("GeneticAnnealing: %v", err)
	}
	if len(result.Layout) != len(sc.Seed) {
		t.Errorf("result layout has length %d, want %d", len(result.Layout), len(sc.Seed))
	}
	want := sc.Evaluator.Eval(sc.Analyzer.CalcStats(result.Layout))
	if result.Score != want {
		t.Errorf("result.Score = %v, want freshly recomputed %v", result.Score, want)
	}
}

func TestGeneticAnnealingRejectsUnknownPolicy(t *testing.T) {
	sc := buildSearchFixture(t)
	if _, err := GeneticAnnealing(&sc, 5, "not-a-policy"); err == nil {
		t.Error("GeneticAnnealing with an unknown policy should return an error")
	}
}
