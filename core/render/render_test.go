package render

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gaurav-prasanna/claritycompass/core"
)

func sampleReport() *core.AuditReport {
	return &core.AuditReport{
		URL: "https://example.com",
		Compass: core.Compass{
			MessageClarity: 80, VisualHierarchy: 53, Consistency: 100,
			ConversionFocus: 72, BrandTone: 95, Overall: 78,
		},
		CompassInsights: core.CompassInsights{
			MessageClarity:  "Top-line message exists.",
			VisualHierarchy: "Single H1; 2 H2s.",
			Consistency:     "CTA labels found (sign up).",
			ConversionFocus: "2 funnel elements detected.",
			BrandTone:       "Tone is plain and readable.",
		},
		QuickWins: []core.QuickWin{
			{Title: "Fix meta description", Why: "Clear previews increase click-through.",
				Action: "Write a 120–160 character summary.", Impact: "Medium", Effort: "Low"},
		},
		Sections: []core.Section{
			{ID: 1, Label: "Section 1", Snippet: "Keep every project on track",
				Metrics: core.SectionMetrics{AvgSentenceLength: 9.5, ComplexWordRatio: 0.021, HeadingCount: 1, CTASignals: 2, Clarity: 100}},
			{ID: 2, Label: "Section 2", Snippet: "Plans start free",
				Metrics:     core.SectionMetrics{Clarity: 70},
				Suggestions: []core.Suggestion{{Title: "Add a clear CTA", Why: "Users need an obvious next step.", How: "Add one primary CTA."}}},
		},
	}
}

func TestJSONRendererRoundTrip(t *testing.T) {
	r := NewJSONRenderer()
	data, err := r.Render(sampleReport())
	require.NoError(t, err)

	var decoded core.AuditReport
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, *sampleReport(), decoded)
	assert.Equal(t, ".json", r.Extension())
}

func TestMarkdownRenderer(t *testing.T) {
	r := NewMarkdownRenderer()
	data, err := r.Render(sampleReport())
	require.NoError(t, err)

	md := string(data)
	assert.Contains(t, md, "# Clarity audit")
	assert.Contains(t, md, "Source: https://example.com")
	assert.Contains(t, md, "| Message clarity | 80 |")
	assert.Contains(t, md, "| **Overall** | **78** |")
	assert.Contains(t, md, "## Quick wins")
	assert.Contains(t, md, "**Fix meta description** (Medium impact / Low effort)")
	assert.Contains(t, md, "### Section 1 — clarity 100")
	assert.Contains(t, md, "> Keep every project on track")
	assert.Contains(t, md, "**Add a clear CTA**")
	assert.Equal(t, ".md", r.Extension())
}

func TestMarkdownRendererEmptyReport(t *testing.T) {
	r := NewMarkdownRenderer()
	data, err := r.Render(&core.AuditReport{URL: "https://empty.test"})
	require.NoError(t, err)

	md := string(data)
	assert.Contains(t, md, "No page-level fixes detected.")
	assert.Contains(t, md, "No content sections detected.")
}

func TestPDFRenderer(t *testing.T) {
	r := NewPDFRenderer()
	data, err := r.Render(sampleReport())
	require.NoError(t, err)

	require.NotEmpty(t, data)
	assert.Equal(t, "%PDF", string(data[:4]))
	assert.Equal(t, ".pdf", r.Extension())
}
