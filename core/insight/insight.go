// Package insight turns the page-wide signals into one templated
// sentence per Compass dimension. Pure formatting: same signals in,
// same sentences out, no new measurement and no generation.
package insight

import (
	"fmt"
	"strings"

	"github.com/gaurav-prasanna/claritycompass/core"
	"github.com/gaurav-prasanna/claritycompass/core/score"
)

// Narrate builds the per-dimension insight sentences.
func Narrate(sig score.PageSignals) core.CompassInsights {
	return core.CompassInsights{
		MessageClarity:  messageClarity(sig),
		VisualHierarchy: visualHierarchy(sig),
		Consistency:     consistency(sig),
		ConversionFocus: conversionFocus(sig),
		BrandTone:       brandTone(sig),
	}
}

func messageClarity(sig score.PageSignals) string {
	var b strings.Builder
	if sig.FirstH1 != "" {
		b.WriteString("Top-line message exists. ")
	} else {
		b.WriteString("Top-line message is unclear. ")
	}
	if sig.JargonHits > 0 {
		b.WriteString("Contains jargon; prefer plain terms. ")
	}
	if sig.AvgSentenceLength > 22 {
		b.WriteString("Sentences are long; aim ≤20 words. ")
	} else {
		b.WriteString("Sentences read clearly. ")
	}
	b.WriteString("Lead the first screen with the outcome and one proof point.")
	return b.String()
}

func visualHierarchy(sig score.PageSignals) string {
	h1 := "Multiple/No"
	if sig.H1Count == 1 {
		h1 = "Single"
	}
	plural := "s"
	if sig.H2Count == 1 {
		plural = ""
	}
	return fmt.Sprintf("%s H1; %d H2%s. Keep one main focal area (headline + CTA) above the fold; reduce competing elements.",
		h1, sig.H2Count, plural)
}

func consistency(sig score.PageSignals) string {
	labels := "not detected"
	if len(sig.DistinctLabels) > 0 {
		shown := sig.DistinctLabels
		more := ""
		if len(shown) > 4 {
			shown = shown[:4]
			more = ", …"
		}
		labels = fmt.Sprintf("found (%s%s)", strings.Join(shown, ", "), more)
	}
	return fmt.Sprintf("CTA labels %s. Reuse 1–2 primary labels site-wide to reduce cognitive load.", labels)
}

func conversionFocus(sig score.PageSignals) string {
	cta := "Primary CTA weak/absent. "
	if len(sig.DistinctLabels) > 0 {
		cta = "Primary CTA present. "
	}
	return fmt.Sprintf("%d funnel elements detected. %sPlace one strong CTA high, repeat after proof.",
		sig.FunnelCount, cta)
}

func brandTone(sig score.PageSignals) string {
	tone := "Tone is plain and readable. "
	if sig.AvgSentenceLength > 22 || sig.ComplexWordRatio > 0.06 {
		tone = "Tone feels dense/technical. "
	}
	return tone + "Prefer short sentences, concrete verbs, and remove filler words."
}
