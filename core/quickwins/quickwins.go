// Package quickwins scans the page-wide signals through a fixed,
// ordered checklist and emits at most six actionable fixes. The
// checklist runs independently of the Compass formulas; rules share
// signals, never scores.
package quickwins

import (
	"unicode/utf8"

	"github.com/gaurav-prasanna/claritycompass/core"
	"github.com/gaurav-prasanna/claritycompass/core/score"
)

// maxWins caps the returned list.
const maxWins = 6

// Build evaluates the checklist against the collected page signals.
// The headline-outcome reminder, when an H1 with text exists, is always
// first; the rest keep rule-evaluation order.
func Build(sig score.PageSignals) []core.QuickWin {
	var wins []core.QuickWin

	if sig.H1Count != 1 {
		wins = append(wins, core.QuickWin{
			Title:  "Use one clear H1",
			Why:    "A single page title clarifies message hierarchy.",
			Action: "Pick the main promise as H1; demote others to H2.",
			Impact: "High", Effort: "Low",
		})
	}

	descLen := utf8.RuneCountInString(sig.MetaDescription)
	if descLen < score.MetaDescMinLen || descLen > score.MetaDescMaxLen {
		wins = append(wins, core.QuickWin{
			Title:  "Fix meta description",
			Why:    "Clear previews increase click-through.",
			Action: "Write a 120–160 character summary with outcome + proof.",
			Impact: "Medium", Effort: "Low",
		})
	}

	if sig.AvgSentenceLength > 22 {
		wins = append(wins, core.QuickWin{
			Title:  "Shorten sentences",
			Why:    "Short sentences scan faster; bounce rate drops.",
			Action: "Edit to ≤20 words; lead each paragraph with the key outcome.",
			Impact: "High", Effort: "Medium",
		})
	}

	if sig.JargonHits > 0 {
		wins = append(wins, core.QuickWin{
			Title:  "Remove jargon",
			Why:    "Concrete language builds trust and comprehension.",
			Action: "Replace buzzwords with specific benefits and examples.",
			Impact: "High", Effort: "Low",
		})
	}

	if sig.ButtonCount == 0 {
		wins = append(wins, core.QuickWin{
			Title:  "Add a primary CTA above the fold",
			Why:    "A single obvious next step increases conversions.",
			Action: "Use one clear label (e.g., \"Pyydä demo\" / \"Katso hinnat\").",
			Impact: "High", Effort: "Low",
		})
	} else if len(sig.DistinctLabels) > 4 {
		wins = append(wins, core.QuickWin{
			Title:  "Standardize CTA labels",
			Why:    "Too many different buttons create friction.",
			Action: "Keep 1 primary and 1 secondary label across the site.",
			Impact: "Medium", Effort: "Low",
		})
	}

	if sig.FirstH1 != "" {
		wins = append([]core.QuickWin{{
			Title:  "Make the outcome explicit in the headline",
			Why:    "Users decide in ~3–5 seconds based on the top message.",
			Action: "Pattern: \"Saat [tulos] ilman [iso este]\". Pidä pituus ≤70–80 merkkiä.",
			Impact: "High", Effort: "Low",
		}}, wins...)
	}

	if len(wins) > maxWins {
		wins = wins[:maxWins]
	}
	return wins
}
