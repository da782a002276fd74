// Package curiosity computes the keyword-tally curiosity score attached to
// served articles.
package curiosity

import (
	"strings"

	"wikiweird/internal/domain"
)

const (
	baseScore = 5
	maxScore  = 10

	highConfidence = 0.8
)

// keywords each add one point when present anywhere in the article's
// combined title, description, and category text.
var keywords = []string{
	"unusual", "strange", "bizarre", "odd", "weird", "peculiar",
	"mysterious", "unexplained", "controversial", "banned", "illegal",
	"cult", "conspiracy", "hoax", "urban legend", "phenomenon",
	"extinct", "abandoned", "secret", "hidden", "lost", "ancient",
}

// Score rates how curious an article looks on a 1–10 scale: a keyword tally
// over its text plus small boosts for reliable attribution and rich
// categorization, capped at maxScore.
func Score(article domain.Article) int {
	text := strings.ToLower(article.Title + " " + article.Description + " " + strings.Join(article.Categories, " "))

	score := baseScore
	for _, keyword := range keywords {
		if strings.Contains(text, keyword) {
			score++
		}
	}

	if article.CountryConfidence > highConfidence {
		score++
	}

	switch n := len(article.Categories); {
	case n > 10:
		score += 2
	case n > 5:
		score++
	}

	if score > maxScore {
		return maxScore
	}
	return score
}
