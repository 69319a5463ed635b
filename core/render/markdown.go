package render

import (
	"fmt"
	"strings"

	"github.com/gaurav-prasanna/claritycompass/core"
)

// MarkdownRenderer lays the audit report out as a readable Markdown
// document. It is also the source layout for the PDF renderer.
type MarkdownRenderer struct{}

// NewMarkdownRenderer creates a MarkdownRenderer.
func NewMarkdownRenderer() *MarkdownRenderer {
	return &MarkdownRenderer{}
}

// Render builds the Markdown report.
func (r *MarkdownRenderer) Render(report *core.AuditReport) ([]byte, error) {
	return []byte(buildMarkdown(report)), nil
}

// Extension returns the file extension for Markdown output.
func (r *MarkdownRenderer) Extension() string {
	return ".md"
}

func buildMarkdown(report *core.AuditReport) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# Clarity audit\n\n")
	fmt.Fprintf(&b, "Source: %s\n\n", report.URL)

	b.WriteString("## Compass\n\n")
	b.WriteString("| Dimension | Score |\n|---|---|\n")
	fmt.Fprintf(&b, "| Message clarity | %d |\n", report.Compass.MessageClarity)
	fmt.Fprintf(&b, "| Visual hierarchy | %d |\n", report.Compass.VisualHierarchy)
	fmt.Fprintf(&b, "| Consistency | %d |\n", report.Compass.Consistency)
	fmt.Fprintf(&b, "| Conversion focus | %d |\n", report.Compass.ConversionFocus)
	fmt.Fprintf(&b, "| Brand tone | %d |\n", report.Compass.BrandTone)
	fmt.Fprintf(&b, "| **Overall** | **%d** |\n\n", report.Compass.Overall)

	b.WriteString("## Insights\n\n")
	fmt.Fprintf(&b, "- **Message clarity** — %s\n", report.CompassInsights.MessageClarity)
	fmt.Fprintf(&b, "- **Visual hierarchy** — %s\n", report.CompassInsights.VisualHierarchy)
	fmt.Fprintf(&b, "- **Consistency** — %s\n", report.CompassInsights.Consistency)
	fmt.Fprintf(&b, "- **Conversion focus** — %s\n", report.CompassInsights.ConversionFocus)
	fmt.Fprintf(&b, "- **Brand tone** — %s\n\n", report.CompassInsights.BrandTone)

	b.WriteString("## Quick wins\n\n")
	if len(report.QuickWins) == 0 {
		b.WriteString("No page-level fixes detected.\n\n")
	}
	for i, win := range report.QuickWins {
		fmt.Fprintf(&b, "%d. **%s** (%s impact / %s effort)\n", i+1, win.Title, win.Impact, win.Effort)
		fmt.Fprintf(&b, "   - Why: %s\n", win.Why)
		fmt.Fprintf(&b, "   - Action: %s\n", win.Action)
	}
	if len(report.QuickWins) > 0 {
		b.WriteString("\n")
	}

	b.WriteString("## Sections\n")
	if len(report.Sections) == 0 {
		b.WriteString("\nNo content sections detected.\n")
	}
	for _, sec := range report.Sections {
		fmt.Fprintf(&b, "\n### %s — clarity %d\n\n", sec.Label, sec.Metrics.Clarity)
		if sec.Snippet != "" {
			fmt.Fprintf(&b, "> %s\n\n", sec.Snippet)
		}
		fmt.Fprintf(&b, "- Avg sentence length: %.2f\n", sec.Metrics.AvgSentenceLength)
		fmt.Fprintf(&b, "- Complex word ratio: %.3f\n", sec.Metrics.ComplexWordRatio)
		fmt.Fprintf(&b, "- Headings: %d\n", sec.Metrics.HeadingCount)
		fmt.Fprintf(&b, "- CTA signals: %d\n", sec.Metrics.CTASignals)
		for _, s := range sec.Suggestions {
			fmt.Fprintf(&b, "- **%s** — %s %s\n", s.Title, s.Why, s.How)
		}
	}

	return b.String()
}
