// Package audit wires the scoring engine together: segment the body,
// evaluate each section, collect page signals once, then derive the
// Compass, quick wins, and insights from them. One analysis is a pure
// function of the document: no state survives a request and identical
// input yields byte-identical output.
package audit

import (
	"fmt"

	"github.com/gaurav-prasanna/claritycompass/core"
	"github.com/gaurav-prasanna/claritycompass/core/dom"
	"github.com/gaurav-prasanna/claritycompass/core/insight"
	"github.com/gaurav-prasanna/claritycompass/core/quickwins"
	"github.com/gaurav-prasanna/claritycompass/core/score"
	"github.com/gaurav-prasanna/claritycompass/core/segment"
	"github.com/gaurav-prasanna/claritycompass/core/textstat"
)

// DefaultCTAPhrases is the stock call-to-action dictionary.
var DefaultCTAPhrases = textstat.Dictionary{
	"get started", "start now", "try free", "buy", "subscribe", "sign up",
	"contact", "book", "demo", "learn more", "see pricing", "join", "order", "add to cart",
}

// DefaultJargonPhrases is the stock jargon/buzzword dictionary.
var DefaultJargonPhrases = textstat.Dictionary{
	"synergy", "leverage", "solutionizing", "paradigm", "framework-agnostic",
	"best-in-class", "world-class", "cutting-edge", "ecosystem", "hypergrowth",
	"enablement", "omnichannel", "seamless experience", "digital transformation",
}

// Config carries the phrase dictionaries injected into the engine.
// Zero-value fields fall back to the stock dictionaries.
type Config struct {
	CTAPhrases    textstat.Dictionary
	JargonPhrases textstat.Dictionary
}

// Analyzer runs the full clarity audit over a parsed document.
type Analyzer struct {
	evaluator *score.Evaluator
	scorer    *score.Scorer
}

// New creates an Analyzer with the given configuration.
func New(cfg Config) *Analyzer {
	cta := cfg.CTAPhrases
	if cta == nil {
		cta = DefaultCTAPhrases
	}
	jargon := cfg.JargonPhrases
	if jargon == nil {
		jargon = DefaultJargonPhrases
	}
	return &Analyzer{
		evaluator: score.NewEvaluator(cta, jargon),
		scorer:    score.NewScorer(cta, jargon),
	}
}

// Analyze audits the document and assembles the full report.
func (a *Analyzer) Analyze(url string, doc dom.Document) (*core.AuditReport, error) {
	blocks, err := segment.Split(doc)
	if err != nil {
		return nil, fmt.Errorf("segmenting body: %w", err)
	}

	sections := make([]core.Section, 0, len(blocks))
	for i, block := range blocks {
		snippet, metrics, suggestions := a.evaluator.Evaluate(block.Root)
		sections = append(sections, core.Section{
			ID:          i + 1,
			Label:       block.Label,
			Snippet:     snippet,
			Metrics:     metrics,
			Suggestions: suggestions,
		})
	}

	sig := a.scorer.Signals(doc)

	return &core.AuditReport{
		URL:             url,
		Compass:         a.scorer.Score(sig, sections),
		CompassInsights: insight.Narrate(sig),
		QuickWins:       quickwins.Build(sig),
		Sections:        sections,
	}, nil
}

// AnalyzeHTML parses raw HTML and audits it.
func (a *Analyzer) AnalyzeHTML(url, html string) (*core.AuditReport, error) {
	doc, err := dom.ParseString(html)
	if err != nil {
		return nil, fmt.Errorf("parsing document: %w", err)
	}
	return a.Analyze(url, doc)
}
