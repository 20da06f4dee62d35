package kwengine

import "errors"

// Sentinel errors surfaced by the engine. All of them arise at setup time;
// none of them can be produced from inside a search loop (see analyzer.go
// and the search_*.go drivers).
var (
	// ErrMetricNotFound is returned when a metric selector string matches
	// neither a metric's Name nor its Short field.
	ErrMetricNotFound = errors.New("metric not found")

	// ErrIncompatibleLayout is returned when a charset has more characters
	// than a keyboard has key positions. A layout whose length differs from
	// a keyboard's total position count is not checked and does not
	// produce this error.
	ErrIncompatibleLayout = errors.New("layout incompatible with keyboard")

	// ErrDegenerateWeights is returned when an evaluator's raw weights sum
	// to zero or less, making the normalized weights undefined or flipping
	// their signs.
	ErrDegenerateWeights = errors.New("evaluator weights do not sum to a positive value")

	// ErrEmptyMetricSet is returned when an evaluator is constructed with
	// no metric/weight pairs at all.
	ErrEmptyMetricSet = errors.New("evaluator has no metrics")

	// ErrInvalidNstroke is returned when raw metric data contains an
	// nstroke referencing an out-of-range position, or a contribution
	// list that is empty.
	ErrInvalidNstroke = errors.New("invalid nstroke data")
)
