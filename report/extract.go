package report

import (
	"fmt"
	"strings"

	htmltomarkdown "github.com/JohannesKaufmann/html-to-markdown/v2"
	"github.com/PuerkitoBio/goquery"

	"github.com/gaurav-prasanna/claritycompass/core/textstat"
)

// maxPromptChars bounds the page text handed to the model.
const maxPromptChars = 14000

// noiseSelector lists the elements stripped before extraction; they
// carry no copy worth auditing.
const noiseSelector = "script, style, noscript, svg"

// ExtractPageText condenses a page into the text block the audit prompt
// consumes: title and meta description first, then the body converted to
// Markdown, truncated to the prompt budget.
func ExtractPageText(html string) (string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return "", fmt.Errorf("parsing HTML: %w", err)
	}
	doc.Find(noiseSelector).Remove()

	title := textstat.Normalize(doc.Find("title").First().Text())
	desc := textstat.Normalize(doc.Find(`meta[name="description"]`).AttrOr("content", ""))

	bodyHTML, err := goquery.OuterHtml(doc.Find("body").First())
	if err != nil {
		return "", fmt.Errorf("serializing body: %w", err)
	}
	markdown, err := htmltomarkdown.ConvertString(bodyHTML)
	if err != nil {
		return "", fmt.Errorf("converting body to markdown: %w", err)
	}

	var parts []string
	if title != "" {
		parts = append(parts, title)
	}
	if desc != "" {
		parts = append(parts, desc)
	}
	if md := strings.TrimSpace(markdown); md != "" {
		parts = append(parts, md)
	}

	text := strings.Join(parts, "\n\n")
	runes := []rune(text)
	if len(runes) > maxPromptChars {
		text = string(runes[:maxPromptChars])
	}
	return text, nil
}
