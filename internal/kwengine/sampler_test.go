package kwengine

import (
	"bytes"
	"context"
	"strings"
	"sync"
	"testing"
)

func TestCollectWritesOneLinePerSample(t *testing.T) {
	a, layout := buildAnalyzerFixture(t)
	ev, err := NewEvaluator([]WeightedMetric{{Metric: 0, Weight: 1}})
	if err != nil {
		t.Fatalf("NewEvaluator: %v", err)
	}

	var buf syncBuffer
	cfg := SamplerConfig{
		Seed:      layout,
		Analyzer:  a,
		Evaluator: ev,
		Pin:       0,
		Samples:   37,
		Workers:   4,
		Writer:    &buf,
	}

	if err := Collect(context.Background(), cfg); err != nil {
		t.Fatalf("Collect: %v", err)
	}

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	if len(lines) != cfg.Samples {
		t.Errorf("wrote %d lines, want %d", len(lines), cfg.Samples)
	}
}

func TestCollectHonorsCancellation(t *testing.T) {
	a, layout := buildAnalyzerFixture(t)
	ev, err := NewEvaluator([]WeightedMetric{{Metric: 0, Weight: 1}})
	if err != nil {
		t.Fatalf("NewEvaluator: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var buf syncBuffer
	cfg := SamplerConfig{
		Seed:      layout,
		Analyzer:  a,
		Evaluator: ev,
		Samples:   1_000_000,
		Workers:   4,
		Writer:    &buf,
	}

	if err := Collect(ctx, cfg); err == nil {
		t.Error("Collect with a pre-canceled context should return an error")
	}
}

// syncBuffer is a mutex-guarded bytes.Buffer, standing in for a real file
// so concurrent workers' writes can be asserted on safely.
type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *syncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}
