package textstat

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"collapses runs", "a  b\t\tc", "a b c"},
		{"trims", "  hello world \n", "hello world"},
		{"newlines inside", "one\ntwo\n\nthree", "one two three"},
		{"empty", "", ""},
		{"whitespace only", " \t\n ", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Normalize(tt.in))
		})
	}
}

func TestTokenize(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want []string
	}{
		{"plain words", "get started today", []string{"get", "started", "today"}},
		{"punctuation never tokenizes", "wait... what?!", []string{"wait", "what"}},
		{"apostrophes and hyphens", "don't over-think it", []string{"don't", "over-think", "it"}},
		{"accented latin", "Pyydä tarjous", []string{"Pyydä", "tarjous"}},
		{"digits", "24 hours", []string{"24", "hours"}},
		{"empty", "", nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Tokenize(tt.in))
		})
	}
}

func TestAvgSentenceLength(t *testing.T) {
	assert.Equal(t, 0.0, AvgSentenceLength(""))
	assert.Equal(t, 0.0, AvgSentenceLength("   "))
	assert.Equal(t, 3.0, AvgSentenceLength("one two three."))
	// Two sentences, six words.
	assert.Equal(t, 3.0, AvgSentenceLength("one two three. four five six!"))
	// Runs of terminators count as one boundary.
	assert.Equal(t, 2.0, AvgSentenceLength("really now?! yes indeed..."))
	// No terminator at all still counts one sentence.
	assert.Equal(t, 4.0, AvgSentenceLength("no terminator in sight"))
}

func TestComplexWordRatio(t *testing.T) {
	assert.Equal(t, 0.0, ComplexWordRatio(""))
	assert.Equal(t, 0.0, ComplexWordRatio("all short words here"))
	// "extraordinarily" has 15 chars, 1 of 4 tokens.
	assert.InDelta(t, 0.25, ComplexWordRatio("an extraordinarily long word"), 1e-9)
	// Exactly 12 chars counts as complex.
	assert.InDelta(t, 0.5, ComplexWordRatio(strings.Repeat("x", 12)+" ok"), 1e-9)
	// 11 chars does not.
	assert.Equal(t, 0.0, ComplexWordRatio(strings.Repeat("x", 11)+" ok"))
}

func TestComplexWordRatioBounded(t *testing.T) {
	for _, text := range []string{"", "short", strings.Repeat("incomprehensibilities ", 50), "mixed incomprehensibilities bag"} {
		r := ComplexWordRatio(text)
		assert.GreaterOrEqual(t, r, 0.0)
		assert.LessOrEqual(t, r, 1.0)
	}
}

func TestDictionaryHits(t *testing.T) {
	dict := Dictionary{"get started", "sign up", "demo"}

	// Presence per phrase, not frequency.
	assert.Equal(t, 1, dict.Hits("Sign up here. Then sign up again."))
	// Case-insensitive substring containment.
	assert.Equal(t, 2, dict.Hits("GET STARTED with a demo"))
	assert.Equal(t, 0, dict.Hits("nothing to see"))
	assert.Equal(t, 0, dict.Hits(""))
	// Substring semantics: "demos" contains "demo".
	assert.Equal(t, 1, dict.Hits("watch our demos"))
}
