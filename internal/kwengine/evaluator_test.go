package kwengine

import (
	"errors"
	"math"
	"testing"
)

func TestNewEvaluator(t *testing.T) {
	t.Run("empty pairs", func(t *testing.T) {
		if _, err := NewEvaluator(nil); !errors.Is(err, ErrEmptyMetricSet) {
			t.Errorf("err = %v, want ErrEmptyMetricSet", err)
		}
	})

	t.Run("degenerate sum", func(t *testing.T) {
		pairs := []WeightedMetric{{Metric: 0, Weight: 3}, {Metric: 1, Weight: -3}}
		if _, err := NewEvaluator(pairs); !errors.Is(err, ErrDegenerateWeights) {
			t.Errorf("err = %v, want ErrDegenerateWeights", err)
		}
	})

	t.Run("normalizes weights", func(t *testing.T) {
		pairs := []WeightedMetric{{Metric: 0, Weight: 3}, {Metric: 1, Weight: 1}}
		ev, err := NewEvaluator(pairs)
		if err != nil {
			t.Fatalf("NewEvaluator: %v", err)
		}
		score := ev.Eval([]float64{1, 1})
		want := 0.75 + 0.25
		if math.Abs(score-want) > 1e-9 {
			t.Errorf("Eval() = %v, want %v", score, want)
		}
	})
}

func TestEvaluatorMetricsOrder(t *testing.T) {
	pairs := []WeightedMetric{{Metric: 2, Weight: 2}, {Metric: 0, Weight: -1}}
	ev, err := NewEvaluator(pairs)
	if err != nil {
		t.Fatalf("NewEvaluator: %v", err)
	}
	got := ev.Metrics()
	want := []int{2, 0}
	if len(got) != len(want) || got[0] != want[0] || got[1] != want[1] {
		t.Errorf("Metrics() = %v, want %v", got, want)
	}
}
