package source

import (
	"context"
	"fmt"
	"log/slog"

	"wikiweird/internal/domain"
	"wikiweird/internal/gazetteer"
	"wikiweird/internal/ports"
	"wikiweird/internal/wikitext"
)

// PageFetcher provides the two renderings of the source page.
type PageFetcher interface {
	PageWikitext(ctx context.Context, subpage string) (string, error)
	PageHTML(ctx context.Context, subpage string) (string, error)
}

// WikitextSource extracts region title lists from the page's raw markup via
// the section splitter and link parser.
type WikitextSource struct {
	fetcher PageFetcher
	gaz     *gazetteer.Gazetteer
	subpage string
	logger  *slog.Logger
}

var _ ports.SectionSource = (*WikitextSource)(nil)

// NewWikitextSource wires the markup-based strategy.
func NewWikitextSource(fetcher PageFetcher, gaz *gazetteer.Gazetteer, subpage string, logger *slog.Logger) *WikitextSource {
	return &WikitextSource{fetcher: fetcher, gaz: gaz, subpage: subpage, logger: logger}
}

// Name identifies the strategy inside the registry.
func (s *WikitextSource) Name() string {
	return "wikitext"
}

// RegionTitles fetches the page markup and parses every region section found
// in it. Regions without a section are simply absent from the result.
func (s *WikitextSource) RegionTitles(ctx context.Context) (map[domain.Region][]string, error) {
	markup, err := s.fetcher.PageWikitext(ctx, s.subpage)
	if err != nil {
		return nil, fmt.Errorf("fetch wikitext: %w", err)
	}

	sections := wikitext.SplitSections(markup, domain.Regions())
	titles := make(map[domain.Region][]string, len(sections))
	for region, body := range sections {
		extracted := wikitext.ExtractTitles(body, s.gaz.SkipPrefixes())
		if len(extracted) == 0 {
			continue
		}
		titles[region] = extracted
		if s.logger != nil {
			s.logger.Debug("section parsed", "region", region, "titles", len(extracted))
		}
	}

	return titles, nil
}
