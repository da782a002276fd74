package attribution

import "wikiweird/internal/domain"

// Aggregator routes scored articles into country buckets. Articles arrive in
// caller order and keep that order inside each bucket; attributions that do
// not clear the identification threshold land in the Unidentified bucket.
type Aggregator struct {
	buckets domain.Snapshot
}

// NewAggregator starts an empty run. A fresh aggregator is used per
// extraction; buckets are never updated incrementally across runs.
func NewAggregator() *Aggregator {
	return &Aggregator{buckets: domain.Snapshot{}}
}

// Add routes one enriched record by its recorded attribution.
func (a *Aggregator) Add(article domain.Article) {
	verdict := domain.Attribution{
		Country:    article.IdentifiedCountry,
		Confidence: article.CountryConfidence,
	}

	bucket := domain.Unidentified
	if verdict.Identified() {
		bucket = verdict.Country
	}
	a.buckets[bucket] = append(a.buckets[bucket], article)
}

// Snapshot returns the accumulated buckets. An empty run yields an empty map
// with no synthetic Unidentified key.
func (a *Aggregator) Snapshot() domain.Snapshot {
	return a.buckets
}
