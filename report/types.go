// Package report implements the optional full-page audit: page text is
// extracted and handed to an OpenAI-compatible chat model with a strict
// JSON schema prompt. The audit is best effort: a page that cannot be
// fetched still gets a cautious audit, and malformed model output
// degrades to text mode instead of failing the request.
package report

// LensScores are the four 0–5 audit lens scores.
type LensScores struct {
	ValueClarity         float64 `json:"valueClarity"`
	HierarchyReadability float64 `json:"hierarchyReadability"`
	BrandTrust           float64 `json:"brandTrust"`
	ConversionFriction   float64 `json:"conversionFriction"`
}

// Finding is one issue the model surfaced under a lens.
type Finding struct {
	Lens           string `json:"lens"`
	Title          string `json:"title"`
	Severity       string `json:"severity"`
	Impact         string `json:"impact"`
	Effort         string `json:"effort"`
	Evidence       string `json:"evidence"`
	Recommendation string `json:"recommendation"`
}

// CopyImprovement is a before/after rewrite suggestion.
type CopyImprovement struct {
	Before string `json:"before"`
	After  string `json:"after"`
	Reason string `json:"reason"`
}

// FullReport is the normalized model output.
type FullReport struct {
	Language           string            `json:"language"`
	Summary            string            `json:"summary"`
	OverallScore       float64           `json:"overallScore"`
	Scores             LensScores        `json:"scores"`
	Findings           []Finding         `json:"findings"`
	PrioritizedActions []string          `json:"prioritizedActions"`
	SuggestedCTAs      []string          `json:"suggestedCTAs"`
	CopyImprovements   []CopyImprovement `json:"copyImprovements"`
}

// Result wraps the audit outcome. Mode is "json" when the model returned
// parseable JSON (Result holds a *FullReport) and "text" when it did not
// (Result holds the raw string).
type Result struct {
	OK     bool   `json:"ok"`
	Mode   string `json:"mode"`
	Result any    `json:"result"`
}
