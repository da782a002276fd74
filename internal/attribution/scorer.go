// Package attribution implements the geographic attribution engine: a
// multi-signal scorer that assigns each article a best-guess country with a
// normalized confidence, and an aggregator that buckets scored articles by
// winning country.
package attribution

import (
	"fmt"
	"strings"

	"wikiweird/internal/domain"
	"wikiweird/internal/gazetteer"
)

// Signal weights. Scores are additive across signals; confidence is the best
// score normalized against confidenceScale and capped at 1.
const (
	mentionWeight  = 10.0
	categoryWeight = 20.0
	locativeWeight = 30.0
	titleWeight    = 15.0
	extractWeight  = 5.0
	synonymWeight  = 8.0

	territoryRuleWeight   = 50.0
	chinaRuleWeight       = 40.0
	ukConstituentWeight   = 30.0
	northAmericaWeight    = 25.0

	confidenceScale = 50.0
)

// Scorer computes per-country attribution scores. It is a pure function over
// its inputs and the immutable gazetteer, so a single Scorer is safe to share
// across goroutines.
type Scorer struct {
	gaz *gazetteer.Gazetteer
}

// NewScorer builds a scorer over the given gazetteer.
func NewScorer(gaz *gazetteer.Gazetteer) *Scorer {
	return &Scorer{gaz: gaz}
}

// Score attributes one article to a country from its source region's
// candidate set. Missing extract or categories contribute zero signal and are
// never an error; an unknown region is a caller bug and returns an error.
//
// Ties between equal top scores resolve to the first candidate in the
// region's lexically ordered country list.
func (s *Scorer) Score(in domain.AttributionInput) (domain.Attribution, error) {
	candidates, ok := s.gaz.Countries(in.Region)
	if !ok {
		return domain.Attribution{}, fmt.Errorf("region %q is not in the gazetteer", in.Region)
	}

	analysis := strings.ToLower(in.Title + " " + in.Extract + " " + strings.Join(in.Categories, " "))
	titleLower := strings.ToLower(in.Title)
	extractLower := strings.ToLower(in.Extract)

	scores := make(map[string]float64, len(candidates))
	for _, country := range candidates {
		countryLower := strings.ToLower(country)
		score := 0.0

		mentions := len(s.gaz.WordPattern(country).FindAllStringIndex(analysis, -1))
		score += float64(mentions) * mentionWeight

		for _, category := range in.Categories {
			catLower := strings.ToLower(category)
			if !strings.Contains(catLower, countryLower) {
				continue
			}
			score += categoryWeight
			if containsAny(catLower, "in "+countryLower, countryLower+" ", "of "+countryLower) {
				score += locativeWeight
			}
		}

		if strings.Contains(titleLower, countryLower) {
			score += titleWeight
		}
		if strings.Contains(extractLower, countryLower) {
			score += extractWeight
		}

		if score > 0 {
			scores[country] = score
		}
	}

	for synonym, canonical := range s.gaz.Synonyms() {
		if !s.gaz.Has(in.Region, canonical) {
			continue
		}
		if strings.Contains(analysis, strings.ToLower(synonym)) {
			scores[canonical] += synonymWeight
		}
	}

	s.applySpecialRules(analysis, in.Region, scores)

	best, bestScore := "", 0.0
	for _, country := range candidates {
		if score := scores[country]; score > bestScore {
			best, bestScore = country, score
		}
	}
	if best == "" {
		return domain.Attribution{}, nil
	}

	confidence := bestScore / confidenceScale
	if confidence > 1 {
		confidence = 1
	}
	return domain.Attribution{Country: best, Confidence: confidence}, nil
}

// applySpecialRules adds fixed disambiguation bonuses for locations the
// generic signals routinely confuse. A bonus only ever credits a country that
// is a candidate for the source region, so an out-of-region mention cannot
// leak into the result.
func (s *Scorer) applySpecialRules(analysis string, region domain.Region, scores map[string]float64) {
	add := func(country string, weight float64) {
		if s.gaz.Has(region, country) {
			scores[country] += weight
		}
	}

	if strings.Contains(analysis, "hong kong") {
		add("Hong Kong", territoryRuleWeight)
	}
	if containsAny(analysis, "macau", "macao") {
		add("Macau", territoryRuleWeight)
	}

	if containsAny(analysis, "taiwan", "republic of china") {
		add("Taiwan", chinaRuleWeight)
	} else if containsAny(analysis, "mainland china", "people's republic") {
		add("China", chinaRuleWeight)
	}

	// The four UK constituent checks are independent and stack.
	if containsAny(analysis, "england", "english", "london") {
		add("United Kingdom", ukConstituentWeight)
	}
	if containsAny(analysis, "scotland", "scottish", "edinburgh") {
		add("United Kingdom", ukConstituentWeight)
	}
	if containsAny(analysis, "wales", "welsh", "cardiff") {
		add("United Kingdom", ukConstituentWeight)
	}
	if strings.Contains(analysis, "northern ireland") {
		add("United Kingdom", ukConstituentWeight)
	}

	if region == domain.RegionNorthAmerica {
		if containsAny(analysis, "united states", " usa ", " us ", "american") {
			add("United States", northAmericaWeight)
		} else if containsAny(analysis, "canada", "canadian") {
			add("Canada", northAmericaWeight)
		}
	}
}

func containsAny(text string, terms ...string) bool {
	for _, term := range terms {
		if strings.Contains(text, term) {
			return true
		}
	}
	return false
}
