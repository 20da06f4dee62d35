package kwengine

import "fmt"

// WeightedMetric pairs a metric index with a signed integer weight, as
// selected by a caller (e.g. "sfb=-3,lsb=-2" on a command line). Negative
// weights express "maximize this metric".
type WeightedMetric struct {
	Metric int
	Weight int
}

// Evaluator collapses a per-metric stats vector into a single scalar score
// via a fixed set of normalized weights.
type Evaluator struct {
	pairs []weightedFraction
}

type weightedFraction struct {
	metric int
	weight float64
}

// NewEvaluator builds an Evaluator from pairs, normalizing each raw integer
// weight to a float that sums to 1 (dividing by the arithmetic sum of raw
// weights; individual weights may be negative). It returns
// ErrEmptyMetricSet if pairs is empty and ErrDegenerateWeights if the raw
// weights sum to zero or less.
func NewEvaluator(pairs []WeightedMetric) (*Evaluator, error) {
	if len(pairs) == 0 {
		return nil, ErrEmptyMetricSet
	}

	sum := 0
	for _, p := range pairs {
		sum += p.Weight
	}
	if sum <= 0 {
		return nil, fmt.Errorf("%w: raw weights %v", ErrDegenerateWeights, pairs)
	}

	fractions := make([]weightedFraction, len(pairs))
	for i, p := range pairs {
		fractions[i] = weightedFraction{metric: p.Metric, weight: float64(p.Weight) / float64(sum)}
	}
	return &Evaluator{pairs: fractions}, nil
}

// Eval computes the weighted sum of stats over the evaluator's stored
// metric indices only; any stats[m] for a metric outside that set is
// ignored.
func (e *Evaluator) Eval(stats []float64) float64 {
	var score float64
	for _, p := range e.pairs {
		score += p.weight * stats[p.metric]
	}
	return score
}

// Metrics returns the metric indices the evaluator reads, in order.
func (e *Evaluator) Metrics() []int {
	out := make([]int, len(e.pairs))
	for i, p := range e.pairs {
		out[i] = p.metric
	}
	return out
}
