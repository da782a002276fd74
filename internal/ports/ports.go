// Package ports declares the boundaries between the attribution engine and
// its collaborators. The engine only ever sees plain values; fetching,
// pacing, and persistence live behind these interfaces.
package ports

import (
	"context"
	"time"

	"wikiweird/internal/domain"
)

// SectionSource produces the ordered unique article titles found under each
// region of the source page.
type SectionSource interface {
	Name() string
	RegionTitles(ctx context.Context) (map[domain.Region][]string, error)
}

// Summary is the subset of a page-summary response the pipeline consumes.
type Summary struct {
	Title       string
	Description string
	Extract     string
	URL         string
	Thumbnail   string
}

// Enricher fetches per-title summary and category data. Failures surface as
// errors here but degrade to zero-signal inputs in the pipeline.
type Enricher interface {
	Summary(ctx context.Context, title string) (Summary, error)
	Categories(ctx context.Context, title string) ([]string, error)
}

// DescriptionProvider serves fresh descriptions for the read API's optional
// refresh path.
type DescriptionProvider interface {
	Description(ctx context.Context, title string) (string, error)
}

// SnapshotStore persists and serves the country-keyed snapshot.
type SnapshotStore interface {
	Save(ctx context.Context, snapshot domain.Snapshot) error
	Load(ctx context.Context) (domain.Snapshot, error)
	LastUpdated(ctx context.Context) (time.Time, error)
	Describe() string
}

// Scheduler drives periodic re-extraction while serving.
type Scheduler interface {
	Start(ctx context.Context, job func(time.Time)) error
	Stop(ctx context.Context) error
}
