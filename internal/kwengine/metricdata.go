package kwengine

import "fmt"

// MetricDescriptor names a single metric: its full name, a short alias
// (either may be used as a selector), and the ngram kind its totals are
// expressed relative to.
type MetricDescriptor struct {
	Name  string
	Short string
	Kind  NgramKind
}

// matches reports whether selector names this descriptor by either its
// Name or Short field.
func (m MetricDescriptor) matches(selector string) bool {
	return m.Name == selector || m.Short == selector
}

// Nstroke is an ordered tuple of 1-3 physical key positions identifying a
// possible key-press sequence.
type Nstroke []int

// ContributionRecord credits a metric with amount times the corpus
// frequency of its enclosing nstroke's ngram.
type ContributionRecord struct {
	Metric int
	Amount float64
}

// NstrokeData pairs an Nstroke with the contributions it makes when its
// positions spell an ngram present in the corpus.
type NstrokeData struct {
	Nstroke Nstroke
	Amounts []ContributionRecord
}

// MetricData is a compact, cache-friendly index of contribution records.
// Strokes is a contiguous slice; PositionStrokes maps each position to the
// indices (not pointers) of the Strokes entries that touch it — the exact
// transpose of Strokes, used by Analyzer.SwapDiff to avoid scanning every
// stroke on each swap.
type MetricData struct {
	Metrics         []MetricDescriptor
	Strokes         []NstrokeData
	PositionStrokes [][]int
}

// RawMetricData is the unvalidated shape a metric-data file loader (such as
// config.LoadMetricData) produces; NewMetricData checks and indexes it into
// a MetricData.
type RawMetricData struct {
	Metrics       []MetricDescriptor
	Strokes       []NstrokeData
	PositionCount int
}

// NewMetricData validates raw and builds its position-stroke index. Every
// nstroke position must be in [0, raw.PositionCount), every contribution
// list must be non-empty, and every contribution's metric index must be in
// range for raw.Metrics; any violation is rejected with ErrInvalidNstroke
// rather than left to panic deep in a search loop.
func NewMetricData(raw RawMetricData) (MetricData, error) {
	for i, s := range raw.Strokes {
		if len(s.Nstroke) < 1 || len(s.Nstroke) > 3 {
			return MetricData{}, fmt.Errorf("stroke %d: %w: nstroke length %d out of range [1,3]", i, ErrInvalidNstroke, len(s.Nstroke))
		}
		if len(s.Amounts) == 0 {
			return MetricData{}, fmt.Errorf("stroke %d: %w: empty contribution list", i, ErrInvalidNstroke)
		}
		for _, p := range s.Nstroke {
			if p < 0 || p >= raw.PositionCount {
				return MetricData{}, fmt.Errorf("stroke %d: %w: position %d out of range [0,%d)", i, ErrInvalidNstroke, p, raw.PositionCount)
			}
		}
		for _, a := range s.Amounts {
			if a.Metric < 0 || a.Metric >= len(raw.Metrics) {
				return MetricData{}, fmt.Errorf("stroke %d: %w: metric index %d out of range [0,%d)", i, ErrInvalidNstroke, a.Metric, len(raw.Metrics))
			}
		}
	}

	md := MetricData{
		Metrics: raw.Metrics,
		Strokes: raw.Strokes,
	}
	md.PositionStrokes = buildPositionStrokes(md.Strokes, raw.PositionCount)
	return md, nil
}

// buildPositionStrokes computes the transpose of strokes: for each
// position, the indices of the strokes that touch it.
func buildPositionStrokes(strokes []NstrokeData, positionCount int) [][]int {
	positionStrokes := make([][]int, positionCount)
	for i, s := range strokes {
		for _, p := range s.Nstroke {
			positionStrokes[p] = append(positionStrokes[p], i)
		}
	}
	return positionStrokes
}

// GetMetric resolves a metric selector (its Name or Short) to an index,
// returning ErrMetricNotFound if no descriptor matches.
func (md MetricData) GetMetric(selector string) (int, error) {
	for i, m := range md.Metrics {
		if m.matches(selector) {
			return i, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrMetricNotFound, selector)
}

// Filter returns a new MetricData retaining only the strokes that
// contribute to at least one metric index in keep. Contributions to
// non-kept metrics inside a retained stroke are preserved unchanged — no
// search strategy reads them, so leaving them in place is harmless and
// avoids rebuilding each NstrokeData. The position-stroke index is rebuilt
// from scratch against the filtered stroke list.
func (md MetricData) Filter(keep map[int]bool) MetricData {
	strokes := make([]NstrokeData, 0, len(md.Strokes))
	for _, s := range md.Strokes {
		if strokeKept(s, keep) {
			strokes = append(strokes, s)
		}
	}

	positionCount := len(md.PositionStrokes)
	return MetricData{
		Metrics:         md.Metrics,
		Strokes:         strokes,
		PositionStrokes: buildPositionStrokes(strokes, positionCount),
	}
}

// strokeKept reports whether s contributes to any metric in keep.
func strokeKept(s NstrokeData, keep map[int]bool) bool {
	for _, a := range s.Amounts {
		if keep[a.Metric] {
			return true
		}
	}
	return false
}
