package domain

import "strings"

// Region is one of the fixed top-level geographic groupings the source page
// organizes articles under.
type Region string

const (
	RegionAfrica       Region = "Africa"
	RegionAntarctica   Region = "Antarctica"
	RegionAsia         Region = "Asia"
	RegionEurope       Region = "Europe"
	RegionLatinAmerica Region = "Latin America and the Caribbean"
	RegionNorthAmerica Region = "North America"
	RegionOceania      Region = "Oceania"
)

// Regions returns the fixed region list in source-page order.
func Regions() []Region {
	return []Region{
		RegionAfrica,
		RegionAntarctica,
		RegionAsia,
		RegionEurope,
		RegionLatinAmerica,
		RegionNorthAmerica,
		RegionOceania,
	}
}

// Unidentified is the synthetic bucket for articles whose attribution did not
// clear the identification threshold.
const Unidentified = "Unidentified"

// IdentificationThreshold is the confidence an attribution must strictly
// exceed to be assigned to its country bucket.
const IdentificationThreshold = 0.1

// AttributionInput carries the per-article signals the scorer reads.
// Extract and Categories may be empty; absent signals contribute zero.
type AttributionInput struct {
	Title      string
	Extract    string
	Categories []string
	Region     Region
}

// Attribution is the scorer's verdict. An empty Country with zero Confidence
// means no signal was found at all, which is distinct from a low-but-nonzero
// confidence that merely fails the threshold.
type Attribution struct {
	Country    string
	Confidence float64
}

// Identified reports whether the attribution clears the threshold and should
// be bucketed under its country rather than Unidentified.
func (a Attribution) Identified() bool {
	return a.Country != "" && a.Confidence > IdentificationThreshold
}

// LocationSignals summarizes category-derived location evidence kept with
// each record for downstream consumers.
type LocationSignals struct {
	HasGeographicCategories bool `json:"has_geographic_categories"`
	CategoryCount           int  `json:"category_count"`
}

// Article is one enriched record as persisted in the snapshot. Field names
// follow the historical data.json layout.
type Article struct {
	ID                 string          `json:"id"`
	Title              string          `json:"title"`
	Description        string          `json:"description"`
	Extract            string          `json:"extract"`
	URL                string          `json:"url"`
	Thumbnail          string          `json:"thumbnail,omitempty"`
	SourceRegion       Region          `json:"source_region"`
	IdentifiedCountry  string          `json:"identified_country,omitempty"`
	CountryConfidence  float64         `json:"country_confidence"`
	Categories         []string        `json:"categories"`
	LocationSignals    LocationSignals `json:"location_signals"`
	CuriosityScore     int             `json:"curiosity_score,omitempty"`
	LastProcessed      string          `json:"last_processed,omitempty"`
	DescriptionUpdated string          `json:"description_updated,omitempty"`
}

// ArticleID derives the stable record identifier from a title.
func ArticleID(title string) string {
	return strings.ReplaceAll(strings.ToLower(title), " ", "_")
}

// Snapshot maps a country name (or Unidentified) to its ordered article list.
// It is rebuilt from scratch on every extraction run.
type Snapshot map[string][]Article

// TotalArticles counts records across all buckets.
func (s Snapshot) TotalArticles() int {
	total := 0
	for _, articles := range s {
		total += len(articles)
	}
	return total
}

// IdentifiedArticles counts records outside the Unidentified bucket.
func (s Snapshot) IdentifiedArticles() int {
	return s.TotalArticles() - len(s[Unidentified])
}
