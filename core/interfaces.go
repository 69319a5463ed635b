// Package core defines the pipeline interfaces and report types for
// ClarityCompass. Each stage of the audit pipeline is a clean, testable
// interface; the report types mirror the JSON consumed by presentation
// layers.
package core

import "context"

// FetchResult holds the raw HTML and response metadata from a fetch.
type FetchResult struct {
	URL        string
	StatusCode int
	HTML       string
}

// SectionMetrics holds the quantitative signals computed for one section
// (or, reused page-wide, for the whole body).
type SectionMetrics struct {
	AvgSentenceLength float64 `json:"avgSentenceLength"`
	ComplexWordRatio  float64 `json:"complexWordRatio"`
	HeadingCount      int     `json:"headingCount"`
	CTASignals        int     `json:"ctaSignals"`
	Clarity           int     `json:"clarity"`
}

// Suggestion is a section-scoped fix emitted by the rule checks.
type Suggestion struct {
	Title string `json:"title"`
	Why   string `json:"why"`
	How   string `json:"how"`
}

// Section is one labeled content block of the page body.
type Section struct {
	ID          int            `json:"id"`
	Label       string         `json:"label"`
	Snippet     string         `json:"snippet"`
	Metrics     SectionMetrics `json:"metrics"`
	Suggestions []Suggestion   `json:"suggestions"`
}

// Compass holds the five page-level dimension scores plus the overall
// aggregate, each an integer in [0,100].
type Compass struct {
	MessageClarity  int `json:"messageClarity"`
	VisualHierarchy int `json:"visualHierarchy"`
	Consistency     int `json:"consistency"`
	ConversionFocus int `json:"conversionFocus"`
	BrandTone       int `json:"brandTone"`
	Overall         int `json:"overall"`
}

// CompassInsights carries one templated sentence per Compass dimension.
type CompassInsights struct {
	MessageClarity  string `json:"messageClarity"`
	VisualHierarchy string `json:"visualHierarchy"`
	Consistency     string `json:"consistency"`
	ConversionFocus string `json:"conversionFocus"`
	BrandTone       string `json:"brandTone"`
}

// QuickWin is a page-scoped actionable fix from the checklist scan.
type QuickWin struct {
	Title  string `json:"title"`
	Why    string `json:"why"`
	Action string `json:"action"`
	Impact string `json:"impact"` // Low | Medium | High
	Effort string `json:"effort"` // Low | Medium | High
}

// AuditReport is the complete analysis output for a single page.
type AuditReport struct {
	URL             string          `json:"url"`
	Compass         Compass         `json:"compass"`
	CompassInsights CompassInsights `json:"compassInsights"`
	QuickWins       []QuickWin      `json:"quickWins"`
	Sections        []Section       `json:"sections"`
}

// Fetcher retrieves raw HTML from a URL.
type Fetcher interface {
	Fetch(ctx context.Context, url string) (*FetchResult, error)
}

// Renderer converts an audit report into a final output format.
type Renderer interface {
	Render(report *AuditReport) ([]byte, error)
	// Extension returns the file extension for this renderer (e.g. ".json", ".pdf").
	Extension() string
}
