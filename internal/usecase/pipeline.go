// Package usecase orchestrates the extraction workflow: source page →
// per-region titles → per-title enrichment → attribution → persisted
// snapshot.
package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"strings"
	"time"

	"wikiweird/internal/attribution"
	"wikiweird/internal/domain"
	"wikiweird/internal/ports"
)

const (
	// fallbackDescription matches the historical default for articles whose
	// summary fetch fails or carries no description.
	fallbackDescription = "Unusual Wikipedia article"

	// extractLimit truncates stored extracts to keep records compact.
	extractLimit = 300

	// maxStoredCategories caps the category list kept on each record.
	maxStoredCategories = 10
)

// PipelineDeps wires the collaborators into the extraction pipeline.
type PipelineDeps struct {
	Source   ports.SectionSource
	Enricher ports.Enricher
	Scorer   *attribution.Scorer
	Store    ports.SnapshotStore
	Logger   *slog.Logger

	// FetchDelay is the pause between successive per-title fetches; pacing
	// is a policy of this collaborator, never of the attribution engine.
	FetchDelay time.Duration

	// MaxPerRegion caps titles taken from each region; zero means no cap.
	MaxPerRegion int
}

// Pipeline implements one full extraction run.
type Pipeline struct {
	source       ports.SectionSource
	enricher     ports.Enricher
	scorer       *attribution.Scorer
	store        ports.SnapshotStore
	logger       *slog.Logger
	fetchDelay   time.Duration
	maxPerRegion int
}

// NewPipeline constructs the orchestration component.
func NewPipeline(deps PipelineDeps) *Pipeline {
	logger := deps.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &Pipeline{
		source:       deps.Source,
		enricher:     deps.Enricher,
		scorer:       deps.Scorer,
		store:        deps.Store,
		logger:       logger,
		fetchDelay:   deps.FetchDelay,
		maxPerRegion: deps.MaxPerRegion,
	}
}

// Run executes one extraction and persists the resulting snapshot.
func (p *Pipeline) Run(ctx context.Context) (domain.Snapshot, error) {
	regionTitles, err := p.source.RegionTitles(ctx)
	if err != nil {
		return nil, fmt.Errorf("collect region titles: %w", err)
	}
	if len(regionTitles) == 0 {
		return nil, fmt.Errorf("no region sections found on source page")
	}

	total := 0
	for region, titles := range regionTitles {
		if p.maxPerRegion > 0 && len(titles) > p.maxPerRegion {
			regionTitles[region] = titles[:p.maxPerRegion]
		}
		total += len(regionTitles[region])
	}
	p.logger.Info("extraction started", "regions", len(regionTitles), "articles", total)

	aggregator := attribution.NewAggregator()
	processed := 0
	for _, region := range domain.Regions() {
		titles, ok := regionTitles[region]
		if !ok {
			continue
		}

		for _, title := range titles {
			processed++
			article, err := p.processTitle(ctx, title, region)
			if err != nil {
				return nil, err
			}
			aggregator.Add(article)

			p.logger.Debug("article attributed",
				"progress", fmt.Sprintf("%d/%d", processed, total),
				"title", title,
				"country", bucketName(article),
				"confidence", article.CountryConfidence)

			if err := p.pace(ctx); err != nil {
				return nil, err
			}
		}
	}

	snapshot := aggregator.Snapshot()
	if p.store != nil {
		if err := p.store.Save(ctx, snapshot); err != nil {
			return nil, fmt.Errorf("persist snapshot: %w", err)
		}
	}

	p.logSummary(snapshot)
	return snapshot, nil
}

// processTitle enriches and scores one article. Enrichment failures degrade
// to zero-signal inputs; only a scorer contract violation aborts the run.
func (p *Pipeline) processTitle(ctx context.Context, title string, region domain.Region) (domain.Article, error) {
	summary, err := p.enricher.Summary(ctx, title)
	if err != nil {
		p.logger.Warn("summary fetch failed", "title", title, "error", err)
		summary = ports.Summary{}
	}

	categories, err := p.enricher.Categories(ctx, title)
	if err != nil {
		p.logger.Warn("categories fetch failed", "title", title, "error", err)
		categories = nil
	}

	verdict, err := p.scorer.Score(domain.AttributionInput{
		Title:      title,
		Extract:    summary.Extract,
		Categories: categories,
		Region:     region,
	})
	if err != nil {
		return domain.Article{}, fmt.Errorf("score %s: %w", title, err)
	}

	return buildArticle(title, region, summary, categories, verdict), nil
}

func buildArticle(title string, region domain.Region, summary ports.Summary, categories []string, verdict domain.Attribution) domain.Article {
	displayTitle := summary.Title
	if displayTitle == "" {
		displayTitle = title
	}

	description := summary.Description
	if description == "" {
		description = fallbackDescription
	}

	pageURL := summary.URL
	if pageURL == "" {
		pageURL = "https://en.wikipedia.org/wiki/" + strings.ReplaceAll(title, " ", "_")
	}

	kept := categories
	if len(kept) > maxStoredCategories {
		kept = kept[:maxStoredCategories]
	}

	return domain.Article{
		ID:                domain.ArticleID(title),
		Title:             displayTitle,
		Description:       description,
		Extract:           truncateExtract(summary.Extract),
		URL:               pageURL,
		Thumbnail:         summary.Thumbnail,
		SourceRegion:      region,
		IdentifiedCountry: verdict.Country,
		CountryConfidence: math.Round(verdict.Confidence*100) / 100,
		Categories:        append([]string{}, kept...),
		LocationSignals: domain.LocationSignals{
			HasGeographicCategories: hasGeographicCategories(categories),
			CategoryCount:           len(categories),
		},
	}
}

func truncateExtract(extract string) string {
	runes := []rune(extract)
	if len(runes) <= extractLimit {
		return extract
	}
	return string(runes[:extractLimit]) + "..."
}

func hasGeographicCategories(categories []string) bool {
	for _, category := range categories {
		lower := strings.ToLower(category)
		if strings.Contains(lower, "geography") || strings.Contains(lower, "location") {
			return true
		}
	}
	return false
}

// pace waits the configured fetch delay, honoring cancellation.
func (p *Pipeline) pace(ctx context.Context) error {
	if p.fetchDelay <= 0 {
		return nil
	}
	select {
	case <-time.After(p.fetchDelay):
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (p *Pipeline) logSummary(snapshot domain.Snapshot) {
	total := snapshot.TotalArticles()
	identified := snapshot.IdentifiedArticles()

	rate := 0.0
	if total > 0 {
		rate = float64(identified) / float64(total) * 100
	}

	p.logger.Info("extraction complete",
		"countries", len(snapshot),
		"articles", total,
		"identified", identified,
		"unidentified", len(snapshot[domain.Unidentified]),
		"identification_rate", fmt.Sprintf("%.1f%%", rate))
}

func bucketName(article domain.Article) string {
	verdict := domain.Attribution{Country: article.IdentifiedCountry, Confidence: article.CountryConfidence}
	if verdict.Identified() {
		return verdict.Country
	}
	return domain.Unidentified
}
