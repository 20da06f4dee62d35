package kwengine

import (
	"errors"
	"testing"
)

func sampleRawMetricData() RawMetricData {
	return RawMetricData{
		Metrics: []MetricDescriptor{
			{Name: "SFB", Short: "sfb", Kind: Bigram},
			{Name: "ALT", Short: "alt", Kind: Trigram},
		},
		Strokes: []NstrokeData{
			{Nstroke: Nstroke{0, 1}, Amounts: []ContributionRecord{{Metric: 0, Amount: 1}}},
			{Nstroke: Nstroke{0, 1, 2}, Amounts: []ContributionRecord{{Metric: 1, Amount: 1}}},
		},
		PositionCount: 3,
	}
}

func TestNewMetricData(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		md, err := NewMetricData(sampleRawMetricData())
		if err != nil {
			t.Fatalf("NewMetricData: %v", err)
		}
		if len(md.PositionStrokes) != 3 {
			t.Fatalf("PositionStrokes has %d entries, want 3", len(md.PositionStrokes))
		}
		if len(md.PositionStrokes[0]) != 2 {
			t.Errorf("position 0 touches %d strokes, want 2", len(md.PositionStrokes[0]))
		}
	})

	t.Run("rejects empty nstroke", func(t *testing.T) {
		raw := sampleRawMetricData()
		raw.Strokes[0].Nstroke = Nstroke{}
		_, err := NewMetricData(raw)
		if !errors.Is(err, ErrInvalidNstroke) {
			t.Fatalf("got err=%v, want ErrInvalidNstroke", err)
		}
	})

	t.Run("rejects out-of-range position", func(t *testing.T) {
		raw := sampleRawMetricData()
		raw.Strokes[0].Nstroke = Nstroke{0, 5}
		_, err := NewMetricData(raw)
		if !errors.Is(err, ErrInvalidNstroke) {
			t.Fatalf("got err=%v, want ErrInvalidNstroke", err)
		}
	})

	t.Run("rejects empty amounts", func(t *testing.T) {
		raw := sampleRawMetricData()
		raw.Strokes[0].Amounts = nil
		_, err := NewMetricData(raw)
		if !errors.Is(err, ErrInvalidNstroke) {
			t.Fatalf("got err=%v, want ErrInvalidNstroke", err)
		}
	})
}

func TestGetMetric(t *testing.T) {
	md, err := NewMetricData(sampleRawMetricData())
	if err != nil {
		t.Fatalf("NewMetricData: %v", err)
	}

	idx, err := md.GetMetric("SFB")
	if err != nil || idx != 0 {
		t.Errorf("GetMetric(SFB) = (%d, %v), want (0, nil)", idx, err)
	}
	if _, err := md.GetMetric("NOPE"); !errors.Is(err, ErrMetricNotFound) {
		t.Errorf("GetMetric(NOPE) err = %v, want ErrMetricNotFound", err)
	}
}

func TestFilterKeepsOnlyRequestedMetricContributions(t *testing.T) {
	md, err := NewMetricData(sampleRawMetricData())
	if err != nil {
		t.Fatalf("NewMetricData: %v", err)
	}

	filtered := md.Filter(map[int]bool{0: true})
	if len(filtered.Strokes) != 1 {
		t.Fatalf("Filter kept %d strokes, want 1 (only the SFB-contributing one)", len(filtered.Strokes))
	}
	if len(filtered.Strokes[0].Amounts) != 1 || filtered.Strokes[0].Amounts[0].Metric != 0 {
		t.Errorf("Filter did not preserve the SFB contribution correctly")
	}
}
