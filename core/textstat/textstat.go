// Package textstat provides the stateless lexical measurements every
// scoring component is built on: whitespace normalization, word
// tokenization, sentence-length and complex-word statistics, and
// phrase-dictionary matching.
package textstat

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

// ComplexWordMinLen is the fixed length threshold above which a token
// counts as "complex". Policy constant, not configurable.
const ComplexWordMinLen = 12

var (
	// wordRegex matches word-like tokens: Latin letters (including the
	// accented ranges), digits, apostrophes and hyphens. Punctuation and
	// markup never tokenize.
	wordRegex = regexp.MustCompile(`[A-Za-zÀ-ÖØ-öø-ÿ0-9'-]+`)

	sentenceRegex   = regexp.MustCompile(`[.!?]+`)
	whitespaceRegex = regexp.MustCompile(`\s+`)
)

// Normalize collapses whitespace runs to single spaces and trims, so
// structural whitespace never inflates any count.
func Normalize(text string) string {
	return strings.TrimSpace(whitespaceRegex.ReplaceAllString(text, " "))
}

// NormalizeLower normalizes and lower-cases, the canonical form for
// label comparison and dictionary matching.
func NormalizeLower(text string) string {
	return strings.ToLower(Normalize(text))
}

// Tokenize extracts the word-like tokens of text.
func Tokenize(text string) []string {
	return wordRegex.FindAllString(text, -1)
}

// AvgSentenceLength returns tokens per sentence, splitting sentences on
// runs of '.', '!' and '?'. Empty input yields 0.
func AvgSentenceLength(text string) float64 {
	sentences := 0
	for _, frag := range sentenceRegex.Split(text, -1) {
		if strings.TrimSpace(frag) != "" {
			sentences++
		}
	}
	if sentences == 0 {
		return 0
	}
	return float64(len(Tokenize(text))) / float64(sentences)
}

// ComplexWordRatio returns the fraction of tokens with length >=
// ComplexWordMinLen. Empty input yields 0.
func ComplexWordRatio(text string) float64 {
	tokens := Tokenize(text)
	if len(tokens) == 0 {
		return 0
	}
	long := 0
	for _, tok := range tokens {
		if utf8.RuneCountInString(tok) >= ComplexWordMinLen {
			long++
		}
	}
	return float64(long) / float64(len(tokens))
}

// Dictionary is a fixed phrase list matched by case-insensitive
// substring containment.
type Dictionary []string

// Hits counts how many phrases of the dictionary appear in text.
// Each phrase contributes at most 1 (presence, not frequency).
func (d Dictionary) Hits(text string) int {
	low := strings.ToLower(text)
	hits := 0
	for _, phrase := range d {
		if strings.Contains(low, phrase) {
			hits++
		}
	}
	return hits
}
