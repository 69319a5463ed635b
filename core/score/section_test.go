package score

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gaurav-prasanna/claritycompass/core/dom"
	"github.com/gaurav-prasanna/claritycompass/core/textstat"
)

var (
	testCTA    = textstat.Dictionary{"get started", "sign up", "demo", "see pricing"}
	testJargon = textstat.Dictionary{"synergy", "leverage", "seamless experience"}
)

func bodyNode(t *testing.T, inner string) dom.Node {
	t.Helper()
	doc, err := dom.ParseString("<html><body>" + inner + "</body></html>")
	require.NoError(t, err)
	return doc.Body()
}

func TestEvaluateLongSentenceWithJargon(t *testing.T) {
	// 40-word single sentence containing "synergy" once.
	text := strings.Repeat("word ", 39) + "synergy."
	e := NewEvaluator(testCTA, testJargon)

	_, metrics, suggestions := e.Evaluate(bodyNode(t, "<p>"+text+"</p>"))

	assert.Equal(t, 40.0, metrics.AvgSentenceLength)
	// "synergy" is 7 letters: it hits the jargon dictionary but never
	// counts as a complex word.
	assert.Equal(t, 0.0, metrics.ComplexWordRatio)
	assert.Equal(t, 0, metrics.HeadingCount)
	assert.Equal(t, 0, metrics.CTASignals)
	// 100 - (40-22)*2 = 64, no bonuses.
	assert.Equal(t, 64, metrics.Clarity)

	titles := make([]string, 0, len(suggestions))
	for _, s := range suggestions {
		titles = append(titles, s.Title)
	}
	assert.Equal(t, []string{
		"Shorten long sentences",
		"Cut jargon",
		"Add a clear CTA",
		"Introduce a heading",
	}, titles)
}

func TestEvaluateClampsExtremeInput(t *testing.T) {
	// A 10,000-word single sentence must clamp, not underflow.
	text := strings.Repeat("word ", 9999) + "end."
	e := NewEvaluator(testCTA, testJargon)

	_, metrics, _ := e.Evaluate(bodyNode(t, "<p>"+text+"</p>"))

	assert.Equal(t, 0, metrics.Clarity)
	assert.Equal(t, 10000.0, metrics.AvgSentenceLength)
}

func TestEvaluateBonusesAndCaps(t *testing.T) {
	e := NewEvaluator(testCTA, testJargon)

	_, metrics, suggestions := e.Evaluate(bodyNode(t, `
		<section>
			<h2>Go</h2>
			<p>Get started now. It is easy.</p>
			<button>Get started</button>
		</section>`))

	assert.Equal(t, 1, metrics.HeadingCount)
	// One dictionary hit plus one button element.
	assert.Equal(t, 2, metrics.CTASignals)
	assert.Equal(t, 100, metrics.Clarity)
	assert.Empty(t, suggestions)
}

func TestEvaluateComplexWordSuggestion(t *testing.T) {
	// 1 of 10 tokens is >=12 chars: ratio 0.1 > 0.08.
	text := "incomprehensibilities one two three four five six seven eight nine."
	e := NewEvaluator(testCTA, testJargon)

	_, metrics, suggestions := e.Evaluate(bodyNode(t, "<p>"+text+"</p>"))

	assert.InDelta(t, 0.1, metrics.ComplexWordRatio, 1e-9)
	found := false
	for _, s := range suggestions {
		if s.Title == "Replace complex words" {
			found = true
		}
	}
	assert.True(t, found)
}

func TestEvaluateEmptyBlock(t *testing.T) {
	e := NewEvaluator(testCTA, testJargon)

	snippet, metrics, suggestions := e.Evaluate(bodyNode(t, "<div></div>"))

	assert.Equal(t, "", snippet)
	assert.Equal(t, 0.0, metrics.AvgSentenceLength)
	assert.Equal(t, 0.0, metrics.ComplexWordRatio)
	// Empty blocks still get the CTA and heading suggestions.
	require.Len(t, suggestions, 2)
	assert.Equal(t, "Add a clear CTA", suggestions[0].Title)
	assert.Equal(t, "Introduce a heading", suggestions[1].Title)
}

func TestEvaluateSnippetIsPrefix(t *testing.T) {
	text := strings.Repeat("lorem ipsum dolor ", 30)
	e := NewEvaluator(testCTA, testJargon)

	snippet, _, _ := e.Evaluate(bodyNode(t, "<p>"+text+"</p>"))

	assert.Len(t, []rune(snippet), 160)
	assert.True(t, strings.HasPrefix(strings.TrimSpace(text), snippet))
}
