package score

import (
	"math"

	"github.com/gaurav-prasanna/claritycompass/core"
	"github.com/gaurav-prasanna/claritycompass/core/dom"
	"github.com/gaurav-prasanna/claritycompass/core/textstat"
)

// Policy constants of the clarity formula. Changing any of these is a
// scoring behavior change, not a bug fix.
const (
	sentenceLenLimit  = 22.0
	complexRatioLimit = 0.06
	sentenceLenWeight = 2.0
	complexWeight     = 600.0
	headingBonusCap   = 10.0
	ctaBonusCap       = 15.0

	complexRatioSuggestLimit = 0.08

	snippetLen = 160
)

// Evaluator computes the clarity metrics and suggestions for one
// content block.
type Evaluator struct {
	cta    textstat.Dictionary
	jargon textstat.Dictionary
}

// NewEvaluator creates an Evaluator using the given phrase dictionaries.
func NewEvaluator(cta, jargon textstat.Dictionary) *Evaluator {
	return &Evaluator{cta: cta, jargon: jargon}
}

// Evaluate scores a single block and derives its suggestions.
// The returned snippet is a prefix of the block's normalized text.
func (e *Evaluator) Evaluate(root dom.Node) (snippet string, metrics core.SectionMetrics, suggestions []core.Suggestion) {
	text := textstat.Normalize(root.Text())
	asl := textstat.AvgSentenceLength(text)
	cwr := textstat.ComplexWordRatio(text)
	headings := len(root.Find(headingSelector))
	ctas := e.cta.Hits(text) + len(root.Find(buttonSelector))

	clarity := 100.0
	clarity -= max(0, (asl-sentenceLenLimit)*sentenceLenWeight)
	clarity -= max(0, (cwr-complexRatioLimit)*complexWeight)
	clarity += min(headingBonusCap, float64(headings)*2)
	clarity += min(ctaBonusCap, float64(ctas)*5)

	metrics = core.SectionMetrics{
		AvgSentenceLength: round2(asl),
		ComplexWordRatio:  round3(cwr),
		HeadingCount:      headings,
		CTASignals:        ctas,
		Clarity:           clampScore(int(math.Round(clarity))),
	}

	// Every applicable rule fires; order is fixed by declaration.
	if asl > sentenceLenLimit {
		suggestions = append(suggestions, core.Suggestion{
			Title: "Shorten long sentences",
			Why:   "Long sentences slow scanning and hide the point.",
			How:   "Split sentences to ≤20 words. Lead with the outcome, then add detail.",
		})
	}
	if cwr > complexRatioSuggestLimit {
		suggestions = append(suggestions, core.Suggestion{
			Title: "Replace complex words",
			Why:   "Multi-syllable words reduce comprehension.",
			How:   "Swap jargon/long words (≥12 chars) for simpler alternatives your users use.",
		})
	}
	if e.jargon.Hits(text) > 0 {
		suggestions = append(suggestions, core.Suggestion{
			Title: "Cut jargon",
			Why:   "Buzzwords feel vague and reduce trust.",
			How:   "Use concrete nouns and verbs with a quick example.",
		})
	}
	if ctas == 0 {
		suggestions = append(suggestions, core.Suggestion{
			Title: "Add a clear CTA",
			Why:   "Users need an obvious next step.",
			How:   "Add one primary CTA (e.g., \"Pyydä tarjous\") at the end of the section.",
		})
	}
	if headings == 0 {
		suggestions = append(suggestions, core.Suggestion{
			Title: "Introduce a heading",
			Why:   "Headings anchor scanning and hierarchy.",
			How:   "Add a short, descriptive H2 naming the section's purpose.",
		})
	}

	return firstRunes(text, snippetLen), metrics, suggestions
}

// firstRunes returns the first n runes of s.
func firstRunes(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}

func clampScore(v int) int {
	return min(100, max(0, v))
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

func round3(v float64) float64 {
	return math.Round(v*1000) / 1000
}
