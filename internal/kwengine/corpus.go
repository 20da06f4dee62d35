package kwengine

import (
	"encoding/json"
	"fmt"
	"os"
)

// CharCode identifies a character within a Corpus. Code 0 is reserved for
// "no character" (a pinned or unused layout slot) and always has frequency
// 0 in every ngram kind.
type CharCode uint16

// NgramKind identifies the arity and shape of an ngram.
type NgramKind uint8

const (
	// Monogram is a single-character (1-gram) ngram.
	Monogram NgramKind = iota
	// Bigram is a two consecutive-character (2-gram) ngram.
	Bigram
	// Skipgram is a 1-skip-2-gram: the first and last characters of a
	// three-character window, skipping the middle one.
	Skipgram
	// Trigram is a three consecutive-character (3-gram) ngram.
	Trigram
)

// String returns a short label for the ngram kind.
func (k NgramKind) String() string {
	switch k {
	case Monogram:
		return "monogram"
	case Bigram:
		return "bigram"
	case Skipgram:
		return "skipgram"
	case Trigram:
		return "trigram"
	default:
		return "unknown"
	}
}

// Arity returns the number of character codes that make up an ngram of
// this kind.
func (k NgramKind) Arity() int {
	switch k {
	case Monogram:
		return 1
	case Bigram, Skipgram:
		return 2
	case Trigram:
		return 3
	default:
		return 0
	}
}

// corpusJSON is the on-disk representation of a Corpus. Count vectors are
// stored in the same packed-index form used in memory, so loading requires
// no recomputation.
type corpusJSON struct {
	Name      string   `json:"name"`
	Chars     []rune   `json:"chars"`
	Monograms []uint32 `json:"monograms"`
	Bigrams   []uint32 `json:"bigrams"`
	Skipgrams []uint32 `json:"skipgrams"`
	Trigrams  []uint32 `json:"trigrams"`
}

// Corpus is an immutable snapshot of character-frequency statistics over
// some text. It provides the character<->code mapping and the four
// ngram-kind count vectors the analyzer reads from; it never changes after
// construction.
type Corpus struct {
	Name  string
	chars []rune // chars[code] is the rune for CharCode(code); chars[0] is unused
	codes map[rune]CharCode

	base      int // len(chars), used to pack multi-char ngram codes
	monograms []uint32
	bigrams   []uint32
	skipgrams []uint32
	trigrams  []uint32
}

// CharCode returns the code assigned to r, or 0 ("no character") if r was
// never observed while the corpus was built.
func (c *Corpus) CharCode(r rune) CharCode {
	return c.codes[r]
}

// Rune returns the character assigned to code, or the NUL rune if code is
// 0 or otherwise unassigned.
func (c *Corpus) Rune(code CharCode) rune {
	if int(code) >= len(c.chars) {
		return 0
	}
	return c.chars[code]
}

// NumChars returns the number of distinct characters in the corpus
// (excluding the reserved "no character" code).
func (c *Corpus) NumChars() int {
	return len(c.chars) - 1
}

// Pack combines 1-3 character codes into a single ngram code suitable for
// indexing the count vector of the matching NgramKind. ok is false if any
// code is 0 ("no character"), in which case the ngram is defined to have
// frequency 0 without needing a lookup.
func (c *Corpus) Pack(codes ...CharCode) (code int, ok bool) {
	acc := 0
	mul := 1
	for _, cc := range codes {
		if cc == 0 {
			return 0, false
		}
		acc += int(cc) * mul
		mul *= c.base
	}
	return acc, true
}

// Freq returns the corpus frequency of the ngram identified by a packed
// code of the given kind. An out-of-range code (which cannot occur for a
// code produced by Pack against this same corpus) yields 0.
func (c *Corpus) Freq(code int, kind NgramKind) uint32 {
	var vec []uint32
	switch kind {
	case Monogram:
		vec = c.monograms
	case Bigram:
		vec = c.bigrams
	case Skipgram:
		vec = c.skipgrams
	case Trigram:
		vec = c.trigrams
	}
	if code < 0 || code >= len(vec) {
		return 0
	}
	return vec[code]
}

// CorpusBuilder accumulates ngram counts and finalizes them into an
// immutable Corpus. Building a Corpus from raw text is outside the
// engine's responsibility (spec Non-goal (a)); the builder only exposes
// the increment operations a collaborator needs to do that work itself.
type CorpusBuilder struct {
	name  string
	codes map[rune]CharCode
	chars []rune // chars[0] is the unused "no character" slot

	monograms map[CharCode]uint32
	bigrams   map[[2]CharCode]uint32
	skipgrams map[[2]CharCode]uint32
	trigrams  map[[3]CharCode]uint32
}

// NewCorpusBuilder returns an empty builder for a corpus with the given
// name.
func NewCorpusBuilder(name string) *CorpusBuilder {
	return &CorpusBuilder{
		name:      name,
		codes:     make(map[rune]CharCode),
		chars:     []rune{0},
		monograms: make(map[CharCode]uint32),
		bigrams:   make(map[[2]CharCode]uint32),
		skipgrams: make(map[[2]CharCode]uint32),
		trigrams:  make(map[[3]CharCode]uint32),
	}
}

// codeFor returns the code for r, assigning a new one the first time r is
// seen.
func (b *CorpusBuilder) codeFor(r rune) CharCode {
	if code, ok := b.codes[r]; ok {
		return code
	}
	code := CharCode(len(b.chars))
	b.chars = append(b.chars, r)
	b.codes[r] = code
	return code
}

// AddMonogram increments the count of a single character.
func (b *CorpusBuilder) AddMonogram(r rune) {
	b.monograms[b.codeFor(r)]++
}

// AddBigram increments the count of a two-character sequence.
func (b *CorpusBuilder) AddBigram(r1, r2 rune) {
	b.bigrams[[2]CharCode{b.codeFor(r1), b.codeFor(r2)}]++
}

// AddSkipgram increments the count of a skip-2-gram (first and third
// characters of a three-character window).
func (b *CorpusBuilder) AddSkipgram(r1, r2 rune) {
	b.skipgrams[[2]CharCode{b.codeFor(r1), b.codeFor(r2)}]++
}

// AddTrigram increments the count of a three-character sequence.
func (b *CorpusBuilder) AddTrigram(r1, r2, r3 rune) {
	b.trigrams[[3]CharCode{b.codeFor(r1), b.codeFor(r2), b.codeFor(r3)}]++
}

// Build finalizes the accumulated counts into an immutable Corpus, packing
// each ngram kind's counts into a dense vector indexed by Pack's scheme.
func (b *CorpusBuilder) Build() *Corpus {
	base := len(b.chars)
	c := &Corpus{
		Name:      b.name,
		chars:     b.chars,
		codes:     b.codes,
		base:      base,
		monograms: make([]uint32, base),
		bigrams:   make([]uint32, base*base),
		skipgrams: make([]uint32, base*base),
		trigrams:  make([]uint32, base*base*base),
	}
	for code, n := range b.monograms {
		c.monograms[code] = n
	}
	for pair, n := range b.bigrams {
		c.bigrams[int(pair[0])+int(pair[1])*base] = n
	}
	for pair, n := range b.skipgrams {
		c.skipgrams[int(pair[0])+int(pair[1])*base] = n
	}
	for tri, n := range b.trigrams {
		c.trigrams[int(tri[0])+int(tri[1])*base+int(tri[2])*base*base] = n
	}
	return c
}

// SaveJSON writes the corpus to path in its packed-index form.
func (c *Corpus) SaveJSON(path string) error {
	data, err := json.MarshalIndent(corpusJSON{
		Name:      c.Name,
		Chars:     c.chars,
		Monograms: c.monograms,
		Bigrams:   c.bigrams,
		Skipgrams: c.skipgrams,
		Trigrams:  c.trigrams,
	}, "", "  ")
	if err != nil {
		return fmt.Errorf("could not marshal corpus %q: %w", c.Name, err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("could not write corpus file %q: %w", path, err)
	}
	return nil
}

// LoadCorpusJSON reads a corpus previously written by SaveJSON.
func LoadCorpusJSON(path string) (*Corpus, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("could not read corpus file %q: %w", path, err)
	}
	var cj corpusJSON
	if err := json.Unmarshal(data, &cj); err != nil {
		return nil, fmt.Errorf("could not unmarshal corpus file %q: %w", path, err)
	}
	codes := make(map[rune]CharCode, len(cj.Chars))
	for i, r := range cj.Chars {
		if i == 0 {
			continue
		}
		codes[r] = CharCode(i)
	}
	return &Corpus{
		Name:      cj.Name,
		chars:     cj.Chars,
		codes:     codes,
		base:      len(cj.Chars),
		monograms: cj.Monograms,
		bigrams:   cj.Bigrams,
		skipgrams: cj.Skipgrams,
		trigrams:  cj.Trigrams,
	}, nil
}
