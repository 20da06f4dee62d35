package kwengine

import "testing"

func buildTestCorpus() *Corpus {
	b := NewCorpusBuilder("test")
	b.AddMonogram('e')
	b.AddMonogram('e')
	b.AddMonogram('t')
	b.AddBigram('e', 't')
	b.AddBigram('e', 't')
	b.AddSkipgram('e', 'h')
	b.AddTrigram('t', 'h', 'e')
	return b.Build()
}

func TestCorpusPackAndFreq(t *testing.T) {
	c := buildTestCorpus()

	tests := []struct {
		name string
		kind NgramKind
		rs   []rune
		want uint32
	}{
		{"monogram e", Monogram, []rune{'e'}, 2},
		{"monogram t", Monogram, []rune{'t'}, 1},
		{"monogram unseen", Monogram, []rune{'z'}, 0},
		{"bigram et", Bigram, []rune{'e', 't'}, 2},
		{"bigram te", Bigram, []rune{'t', 'e'}, 0},
		{"skipgram eh", Skipgram, []rune{'e', 'h'}, 1},
		{"trigram the", Trigram, []rune{'t', 'h', 'e'}, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			codes := make([]CharCode, len(tt.rs))
			for i, r := range tt.rs {
				codes[i] = c.CharCode(r)
			}
			code, ok := c.Pack(codes...)
			if !ok {
				if tt.want != 0 {
					t.Fatalf("Pack returned ok=false, want frequency %d", tt.want)
				}
				return
			}
			if got := c.Freq(code, tt.kind); got != tt.want {
				t.Errorf("Freq() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestCorpusPackRejectsUnassignedChar(t *testing.T) {
	c := buildTestCorpus()
	if _, ok := c.Pack(0, c.CharCode('e')); ok {
		t.Error("Pack with a zero CharCode should return ok=false")
	}
}

func TestCorpusSaveLoadRoundTrip(t *testing.T) {
	c := buildTestCorpus()
	path := t.TempDir() + "/corpus.json"

	if err := c.SaveJSON(path); err != nil {
		t.Fatalf("SaveJSON: %v", err)
	}
	loaded, err := LoadCorpusJSON(path)
	if err != nil {
		t.Fatalf("LoadCorpusJSON: %v", err)
	}

	if loaded.NumChars() != c.NumChars() {
		t.Errorf("NumChars() = %d, want %d", loaded.NumChars(), c.NumChars())
	}
	code, ok := loaded.Pack(loaded.CharCode('e'), loaded.CharCode('t'))
	if !ok {
		t.Fatal("Pack failed on round-tripped corpus")
	}
	if got := loaded.Freq(code, Bigram); got != 2 {
		t.Errorf("round-tripped bigram freq = %d, want 2", got)
	}
}
