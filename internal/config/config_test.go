package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/rbscholtus/keywhisker/internal/kwengine"
)

func writeTempFile(t *testing.T, name, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatalf("writing %s: %v", name, err)
	}
	return path
}

func sampleMetricData(t *testing.T) kwengine.MetricData {
	t.Helper()
	md, err := kwengine.NewMetricData(kwengine.RawMetricData{
		Metrics: []kwengine.MetricDescriptor{
			{Name: "SFB", Short: "sfb", Kind: kwengine.Bigram},
			{Name: "ALT", Short: "alt", Kind: kwengine.Trigram},
		},
		Strokes: []kwengine.NstrokeData{
			{Nstroke: kwengine.Nstroke{0, 1}, Amounts: []kwengine.ContributionRecord{{Metric: 0, Amount: 1}}},
		},
		PositionCount: 2,
	})
	if err != nil {
		t.Fatalf("NewMetricData: %v", err)
	}
	return md
}

func TestParseWeights(t *testing.T) {
	md := sampleMetricData(t)

	t.Run("valid", func(t *testing.T) {
		got, err := ParseWeights(md, "sfb=-3, ALT=2")
		if err != nil {
			t.Fatalf("ParseWeights: %v", err)
		}
		if len(got) != 2 || got[0].Weight != -3 || got[1].Weight != 2 {
			t.Errorf("ParseWeights() = %+v", got)
		}
	})

	t.Run("unknown metric", func(t *testing.T) {
		if _, err := ParseWeights(md, "nope=1"); err == nil {
			t.Error("expected an error for an unknown metric name")
		}
	})

	t.Run("malformed pair", func(t *testing.T) {
		if _, err := ParseWeights(md, "sfb"); err == nil {
			t.Error("expected an error for a pair missing '='")
		}
	})

	t.Run("empty string", func(t *testing.T) {
		got, err := ParseWeights(md, "")
		if err != nil || got != nil {
			t.Errorf("ParseWeights(\"\") = (%v, %v), want (nil, nil)", got, err)
		}
	})
}

func TestParseWeightsFileSkipsCommentsAndBlanks(t *testing.T) {
	md := sampleMetricData(t)
	path := writeTempFile(t, "weights.txt", "# a comment\nsfb=-1\n\nALT=1\n")

	got, err := ParseWeightsFile(md, path)
	if err != nil {
		t.Fatalf("ParseWeightsFile: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("ParseWeightsFile() = %+v, want 2 entries", got)
	}
}

func TestParsePin(t *testing.T) {
	tests := []struct {
		in      string
		want    int
		wantErr bool
	}{
		{"", 0, false},
		{"3", 3, false},
		{"-1", 0, true},
		{"abc", 0, true},
	}
	for _, tt := range tests {
		got, err := ParsePin(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParsePin(%q) err = %v, wantErr %v", tt.in, err, tt.wantErr)
		}
		if err == nil && got != tt.want {
			t.Errorf("ParsePin(%q) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestSeedLayoutPadsComboSlots(t *testing.T) {
	cb := kwengine.NewCorpusBuilder("kb")
	cb.AddMonogram('a')
	cb.AddMonogram('b')
	corpus := cb.Build()

	kb := KeyboardDescription{Name: "test", Keys: []string{"k0", "k1", "k2"}, NumCombo: 2}
	layout, err := kb.SeedLayout(corpus, []rune{'a', 'b'})
	if err != nil {
		t.Fatalf("SeedLayout: %v", err)
	}
	if len(layout) != 5 {
		t.Fatalf("len(layout) = %d, want 5 (3 keys + 2 combos)", len(layout))
	}
	if layout[0] != corpus.CharCode('a') || layout[1] != corpus.CharCode('b') {
		t.Errorf("charset not assigned in order: %v", layout)
	}
	for i := 2; i < 5; i++ {
		if layout[i] != 0 {
			t.Errorf("position %d = %v, want 0 (unused/combo slot)", i, layout[i])
		}
	}
}

func TestSeedLayoutRejectsOversizedCharset(t *testing.T) {
	corpus := kwengine.NewCorpusBuilder("kb").Build()
	kb := KeyboardDescription{Name: "tiny", Keys: []string{"k0"}}
	if _, err := kb.SeedLayout(corpus, []rune{'a', 'b'}); !errors.Is(err, kwengine.ErrIncompatibleLayout) {
		t.Errorf("err = %v, want ErrIncompatibleLayout", err)
	}
}

func TestLoadMetricData(t *testing.T) {
	path := writeTempFile(t, "metrics.json", `{
		"Metrics": [{"Name":"SFB","Short":"sfb","Kind":1}],
		"Strokes": [{"Nstroke":[0,1],"Amounts":[{"Metric":0,"Amount":1}]}],
		"PositionCount": 2
	}`)
	md, err := LoadMetricData(path)
	if err != nil {
		t.Fatalf("LoadMetricData: %v", err)
	}
	if len(md.Metrics) != 1 {
		t.Errorf("len(md.Metrics) = %d, want 1", len(md.Metrics))
	}
}
