// Package score holds the heuristic scoring formulas: the per-section
// clarity composite and the five page-level Compass dimensions. All
// thresholds and weights are fixed policy constants taken from the
// published scoring model; every formula is total and clamps its result,
// so sparse or adversarial pages degrade to low scores instead of
// failing.
package score

import (
	"math"
	"unicode/utf8"

	"github.com/gaurav-prasanna/claritycompass/core"
	"github.com/gaurav-prasanna/claritycompass/core/dom"
	"github.com/gaurav-prasanna/claritycompass/core/textstat"
)

const (
	headingSelector = "h1,h2,h3"
	buttonSelector  = `button,[role="button"],a[role="button"]`
	funnelSelector  = `form,[type="submit"],a[href*="pricing"],a[href*="signup"],a[href*="demo"]`
)

// Title and meta-description length windows, inclusive on both ends.
const (
	titleMinLen = 12
	titleMaxLen = 85

	// MetaDescMinLen and MetaDescMaxLen bound the acceptable
	// meta-description length; shared with the quick-wins checklist.
	MetaDescMinLen = 40
	MetaDescMaxLen = 180

	distinctLabelAllowance = 4
)

// PageSignals are the document-wide measurements the Compass formulas,
// quick wins, and insight templates all read from. Collected once per
// analysis.
type PageSignals struct {
	Title           string
	MetaDescription string
	BodyText        string

	H1Count int
	FirstH1 string
	H2Count int
	H3Count int

	ButtonCount    int
	DistinctLabels []string // lower-cased, first-seen order

	FunnelCount int

	AvgSentenceLength float64
	ComplexWordRatio  float64
	CTAHits           int
	JargonHits        int
}

// Scorer computes the five Compass dimensions and the overall aggregate.
type Scorer struct {
	cta    textstat.Dictionary
	jargon textstat.Dictionary
}

// NewScorer creates a Scorer using the given phrase dictionaries.
func NewScorer(cta, jargon textstat.Dictionary) *Scorer {
	return &Scorer{cta: cta, jargon: jargon}
}

// Signals collects the page-wide measurements from the document.
func (s *Scorer) Signals(doc dom.Document) PageSignals {
	sig := PageSignals{
		Title:           textstat.Normalize(firstText(doc, "title")),
		MetaDescription: textstat.Normalize(firstAttr(doc, `meta[name="description"]`, "content")),
		BodyText:        textstat.Normalize(doc.Body().Text()),
		H1Count:         len(doc.Find("h1")),
		FirstH1:         textstat.Normalize(firstText(doc, "h1")),
		H2Count:         len(doc.Find("h2")),
		H3Count:         len(doc.Find("h3")),
		FunnelCount:     len(doc.Find(funnelSelector)),
	}

	buttons := doc.Find(buttonSelector)
	sig.ButtonCount = len(buttons)
	sig.DistinctLabels = distinctLabels(buttons)

	sig.AvgSentenceLength = textstat.AvgSentenceLength(sig.BodyText)
	sig.ComplexWordRatio = textstat.ComplexWordRatio(sig.BodyText)
	sig.CTAHits = s.cta.Hits(sig.BodyText)
	sig.JargonHits = s.jargon.Hits(sig.BodyText)

	return sig
}

// Score maps the page signals and per-section clarity scores onto the
// Compass. Overall is the rounded six-way mean of the five dimensions
// and the rounded mean section clarity; a page with zero sections
// contributes 0 as the sixth term, which pulls the aggregate down for
// section-less pages (documented behavior, kept as is).
func (s *Scorer) Score(sig PageSignals, sections []core.Section) core.Compass {
	titleLen := utf8.RuneCountInString(sig.Title)
	descLen := utf8.RuneCountInString(sig.MetaDescription)
	titleOk := titleLen >= titleMinLen && titleLen <= titleMaxLen
	descOk := descLen >= MetaDescMinLen && descLen <= MetaDescMaxLen

	messageClarity := pick(titleOk, 45, 30) + pick(descOk, 35, 20) - sig.JargonHits*3
	messageClarity = clampScore(messageClarity)

	visualHierarchy := min(100,
		pick(sig.H1Count == 1, 40, 20)+min(30, sig.H2Count*5)+min(30, sig.H3Count*3))

	consistency := max(30, 100-max(0, len(sig.DistinctLabels)-distinctLabelAllowance)*8)

	conversionFocus := min(100,
		pick(sig.CTAHits > 0, 60, 35)+min(40, sig.FunnelCount*6))

	// Brand tone reuses the clarity decay terms with no bonus terms:
	// tone is purely a readability measure.
	tone := 100.0
	tone -= max(0, (sig.AvgSentenceLength-sentenceLenLimit)*sentenceLenWeight)
	tone -= max(0, (sig.ComplexWordRatio-complexRatioLimit)*complexWeight)
	brandTone := clampScore(int(math.Round(tone)))

	sectionAvg := 0
	if len(sections) > 0 {
		sum := 0
		for _, sec := range sections {
			sum += sec.Metrics.Clarity
		}
		sectionAvg = int(math.Round(float64(sum) / float64(len(sections))))
	}

	overall := int(math.Round(float64(messageClarity+visualHierarchy+consistency+conversionFocus+brandTone+sectionAvg) / 6))

	return core.Compass{
		MessageClarity:  messageClarity,
		VisualHierarchy: visualHierarchy,
		Consistency:     consistency,
		ConversionFocus: conversionFocus,
		BrandTone:       brandTone,
		Overall:         overall,
	}
}

// distinctLabels lower-cases and normalizes interactive-label texts,
// keeping one entry per distinct label in first-seen order. Duplicates
// of the same label never penalize consistency.
func distinctLabels(buttons []dom.Node) []string {
	seen := make(map[string]bool, len(buttons))
	var labels []string
	for _, btn := range buttons {
		label := textstat.NormalizeLower(btn.Text())
		if label == "" || seen[label] {
			continue
		}
		seen[label] = true
		labels = append(labels, label)
	}
	return labels
}

func firstText(doc dom.Document, selector string) string {
	nodes := doc.Find(selector)
	if len(nodes) == 0 {
		return ""
	}
	return nodes[0].Text()
}

func firstAttr(doc dom.Document, selector, name string) string {
	nodes := doc.Find(selector)
	if len(nodes) == 0 {
		return ""
	}
	return nodes[0].Attr(name)
}

func pick(cond bool, yes, no int) int {
	if cond {
		return yes
	}
	return no
}
