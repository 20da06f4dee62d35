// Package config loads the flat-file and JSON inputs cmd/kw's commands
// accept — metric data, weight strings, pin strings, and keyboard
// descriptions — and turns them into the internal/kwengine types the
// engine operates on. Corpus files are not handled here: they are read by
// kwengine.LoadCorpusJSON.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/rbscholtus/keywhisker/internal/kwengine"
)

// LoadMetricData reads a RawMetricData JSON document from path and builds
// the validated, position-indexed kwengine.MetricData the Analyzer needs.
func LoadMetricData(path string) (kwengine.MetricData, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return kwengine.MetricData{}, fmt.Errorf("could not read metric data file %q: %w", path, err)
	}
	var raw kwengine.RawMetricData
	if err := json.Unmarshal(data, &raw); err != nil {
		return kwengine.MetricData{}, fmt.Errorf("could not unmarshal metric data file %q: %w", path, err)
	}
	md, err := kwengine.NewMetricData(raw)
	if err != nil {
		return kwengine.MetricData{}, fmt.Errorf("could not build metric data from %q: %w", path, err)
	}
	return md, nil
}

// ParseWeights parses a comma-separated "metric=weight" string (metric
// names resolved against md, matching the teacher's AddWeightsFromString
// convention) into the []WeightedMetric form NewEvaluator accepts.
func ParseWeights(md kwengine.MetricData, weightsStr string) ([]kwengine.WeightedMetric, error) {
	weightsStr = strings.TrimSpace(weightsStr)
	if weightsStr == "" {
		return nil, nil
	}

	var out []kwengine.WeightedMetric
	for _, pair := range strings.Split(weightsStr, ",") {
		pair = strings.TrimSpace(pair)
		if pair == "" {
			continue
		}
		parts := strings.SplitN(pair, "=", 2)
		if len(parts) != 2 {
			return nil, fmt.Errorf("invalid weights format: %q", pair)
		}
		name := strings.TrimSpace(parts[0])
		metric, err := md.GetMetric(name)
		if err != nil {
			return nil, fmt.Errorf("invalid weights format %q: %w", pair, err)
		}
		weight, err := strconv.Atoi(strings.TrimSpace(parts[1]))
		if err != nil {
			return nil, fmt.Errorf("invalid weight value for metric %q: %w", name, err)
		}
		out = append(out, kwengine.WeightedMetric{Metric: metric, Weight: weight})
	}
	return out, nil
}

// ParseWeightsFile reads weights from a file, one "metric=weight" entry
// per line, blank lines and "#"-prefixed comments ignored — the file
// form of ParseWeights, mirroring the teacher's AddWeightsFromFile.
func ParseWeightsFile(md kwengine.MetricData, path string) ([]kwengine.WeightedMetric, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("could not read weights file %q: %w", path, err)
	}

	var out []kwengine.WeightedMetric
	for _, line := range strings.Split(string(data), "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		parsed, err := ParseWeights(md, line)
		if err != nil {
			return nil, fmt.Errorf("could not parse weights file %q: %w", path, err)
		}
		out = append(out, parsed...)
	}
	return out, nil
}

// ParsePin parses the --pin flag: the number of leading layout positions
// (by convention, the ones already assigned in the seed) that every
// search driver must leave untouched.
func ParsePin(pinStr string) (int, error) {
	if pinStr == "" {
		return 0, nil
	}
	pin, err := strconv.Atoi(pinStr)
	if err != nil {
		return 0, fmt.Errorf("invalid --pin value %q: %w", pinStr, err)
	}
	if pin < 0 {
		return 0, fmt.Errorf("invalid --pin value %q: must not be negative", pinStr)
	}
	return pin, nil
}

// KeyboardDescription is the JSON shape of a keyboard's physical layout:
// a flat list of key names (whose count fixes the number of ordinary
// positions) plus a combo count, matching the original's distinction
// between "flattened key map size" and additional combo slots.
type KeyboardDescription struct {
	Name     string   `json:"name"`
	Keys     []string `json:"keys"`
	NumCombo int      `json:"num_combos"`
}

// LoadKeyboardDescription reads a keyboard description from path.
func LoadKeyboardDescription(path string) (KeyboardDescription, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return KeyboardDescription{}, fmt.Errorf("could not read keyboard file %q: %w", path, err)
	}
	var kb KeyboardDescription
	if err := json.Unmarshal(data, &kb); err != nil {
		return KeyboardDescription{}, fmt.Errorf("could not unmarshal keyboard file %q: %w", path, err)
	}
	return kb, nil
}

// PositionCount returns the keyboard's total number of layout positions:
// one per physical key plus one per combo slot.
func (kb KeyboardDescription) PositionCount() int {
	return len(kb.Keys) + kb.NumCombo
}

// SeedLayout builds a seed Layout by assigning charset (in order) to the
// keyboard's ordinary key positions and leaving every combo slot (and any
// key position beyond len(charset)) as CharCode 0 — the "no character"
// placeholder — reproducing the original's charset-to-layout padding up
// to flattened_key_map_size+combo_count.
func (kb KeyboardDescription) SeedLayout(corpus *kwengine.Corpus, charset []rune) (kwengine.Layout, error) {
	total := kb.PositionCount()
	if len(charset) > len(kb.Keys) {
		return nil, fmt.Errorf("charset has %d characters but keyboard %q only has %d key positions: %w", len(charset), kb.Name, len(kb.Keys), kwengine.ErrIncompatibleLayout)
	}

	layout := make(kwengine.Layout, total)
	for i, r := range charset {
		layout[i] = corpus.CharCode(r)
	}
	return layout, nil
}
