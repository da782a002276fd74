// Package gazetteer holds the static region/country/synonym knowledge base
// the attribution engine scores against. A Gazetteer is immutable after
// construction and safe for concurrent use.
package gazetteer

import (
	"regexp"
	"sort"
	"strings"

	"wikiweird/internal/domain"
)

// Gazetteer is the read-only lookup structure shared by the parser and the
// scorer. Build one with New or Default and pass it by reference; there is no
// ambient global instance.
type Gazetteer struct {
	countries    map[domain.Region][]string
	members      map[domain.Region]map[string]struct{}
	synonyms     map[string]string
	skipPrefixes []string
	wordPatterns map[string]*regexp.Regexp
}

// Tables is the raw input to New. Callers keep ownership of the maps; New
// copies what it needs.
type Tables struct {
	RegionCountries map[domain.Region][]string
	Synonyms        map[string]string
	SkipPrefixes    []string
}

// New builds an immutable gazetteer. Country lists are sorted lexically; this
// order is the scorer's documented tie-break order. A whole-word pattern is
// compiled per country up front so scoring stays allocation-free.
func New(tables Tables) *Gazetteer {
	g := &Gazetteer{
		countries:    make(map[domain.Region][]string, len(tables.RegionCountries)),
		members:      make(map[domain.Region]map[string]struct{}, len(tables.RegionCountries)),
		synonyms:     make(map[string]string, len(tables.Synonyms)),
		skipPrefixes: append([]string(nil), tables.SkipPrefixes...),
		wordPatterns: make(map[string]*regexp.Regexp),
	}

	for region, countries := range tables.RegionCountries {
		sorted := append([]string(nil), countries...)
		sort.Strings(sorted)
		g.countries[region] = sorted

		set := make(map[string]struct{}, len(sorted))
		for _, country := range sorted {
			set[country] = struct{}{}
			if _, ok := g.wordPatterns[country]; !ok {
				word := regexp.QuoteMeta(strings.ToLower(country))
				g.wordPatterns[country] = regexp.MustCompile(`\b` + word + `\b`)
			}
		}
		g.members[region] = set
	}

	for synonym, canonical := range tables.Synonyms {
		g.synonyms[synonym] = canonical
	}

	return g
}

// Countries returns the region's candidate country list in tie-break order.
// The second result is false for regions absent from the gazetteer.
func (g *Gazetteer) Countries(region domain.Region) ([]string, bool) {
	countries, ok := g.countries[region]
	return countries, ok
}

// Has reports whether country is a registered candidate for region.
func (g *Gazetteer) Has(region domain.Region, country string) bool {
	_, ok := g.members[region][country]
	return ok
}

// Synonyms returns a copy of the synonym → canonical country mapping, so
// callers cannot mutate the gazetteer through it.
func (g *Gazetteer) Synonyms() map[string]string {
	synonyms := make(map[string]string, len(g.synonyms))
	for synonym, canonical := range g.synonyms {
		synonyms[synonym] = canonical
	}
	return synonyms
}

// SkipPrefixes returns the lower-case prefixes marking non-article links.
func (g *Gazetteer) SkipPrefixes() []string {
	return g.skipPrefixes
}

// WordPattern returns the pre-compiled whole-word pattern for a country's
// lower-cased name, or nil for unknown countries.
func (g *Gazetteer) WordPattern(country string) *regexp.Regexp {
	return g.wordPatterns[country]
}
