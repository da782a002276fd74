package source

import (
	"context"
	"fmt"
	"log/slog"
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"wikiweird/internal/domain"
	"wikiweird/internal/gazetteer"
	"wikiweird/internal/ports"
	"wikiweird/internal/wikitext"
)

// HTMLSource extracts region title lists from the rendered page instead of
// its markup, walking heading/anchor structure with goquery. It applies the
// same title-filter rules as the wikitext strategy.
type HTMLSource struct {
	fetcher PageFetcher
	gaz     *gazetteer.Gazetteer
	subpage string
	logger  *slog.Logger
}

var _ ports.SectionSource = (*HTMLSource)(nil)

// NewHTMLSource wires the rendered-HTML strategy.
func NewHTMLSource(fetcher PageFetcher, gaz *gazetteer.Gazetteer, subpage string, logger *slog.Logger) *HTMLSource {
	return &HTMLSource{fetcher: fetcher, gaz: gaz, subpage: subpage, logger: logger}
}

// Name identifies the strategy inside the registry.
func (s *HTMLSource) Name() string {
	return "html"
}

// RegionTitles fetches the rendered page and, for each region heading found,
// collects wiki links up to the next heading of the same depth.
func (s *HTMLSource) RegionTitles(ctx context.Context) (map[domain.Region][]string, error) {
	html, err := s.fetcher.PageHTML(ctx, s.subpage)
	if err != nil {
		return nil, fmt.Errorf("fetch rendered page: %w", err)
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, fmt.Errorf("parse rendered page: %w", err)
	}

	byName := make(map[string]domain.Region, len(domain.Regions()))
	for _, region := range domain.Regions() {
		byName[strings.ToLower(string(region))] = region
	}

	titles := make(map[domain.Region][]string)
	doc.Find("h3").Each(func(_ int, heading *goquery.Selection) {
		region, ok := byName[strings.ToLower(headingText(heading))]
		if !ok {
			return
		}
		if _, dup := titles[region]; dup {
			// Later duplicate headings for the same region are ignored.
			return
		}

		extracted := s.sectionTitles(heading)
		if len(extracted) == 0 {
			return
		}
		titles[region] = extracted
		if s.logger != nil {
			s.logger.Debug("section parsed", "region", region, "titles", len(extracted))
		}
	})

	return titles, nil
}

// headingText returns the visible heading name, preferring the legacy
// .mw-headline span when present.
func headingText(heading *goquery.Selection) string {
	if span := heading.Find(".mw-headline").First(); span.Length() > 0 {
		return strings.TrimSpace(span.Text())
	}
	return strings.TrimSpace(heading.Text())
}

// sectionTitles walks the heading's following siblings up to the next h3
// (modern skins wrap headings in div.mw-heading, so traversal starts from
// that wrapper when present) and collects article links in order.
func (s *HTMLSource) sectionTitles(heading *goquery.Selection) []string {
	start := heading
	if parent := heading.Parent(); parent.HasClass("mw-heading") {
		start = parent
	}

	var ordered []string
	seen := map[string]struct{}{}
	start.NextUntil("h3, div.mw-heading").Find(`a[href^="/wiki/"]`).Each(func(_ int, link *goquery.Selection) {
		title := linkTitle(link)
		title = wikitext.CleanTitle(title)
		if !wikitext.KeepTitle(title, s.gaz.SkipPrefixes()) {
			return
		}
		if _, ok := seen[title]; ok {
			return
		}
		seen[title] = struct{}{}
		ordered = append(ordered, title)
	})

	return ordered
}

// linkTitle resolves an anchor to an article title, preferring the title
// attribute over the decoded href path.
func linkTitle(link *goquery.Selection) string {
	if title, ok := link.Attr("title"); ok && title != "" {
		return title
	}

	href, _ := link.Attr("href")
	path := strings.TrimPrefix(href, "/wiki/")
	if decoded, err := url.PathUnescape(path); err == nil {
		path = decoded
	}
	return strings.ReplaceAll(path, "_", " ")
}
