package server

import (
	"math"
	"net/http"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"wikiweird/internal/curiosity"
	"wikiweird/internal/domain"
)

// countryInfo is one row of the countries listing.
type countryInfo struct {
	Country        string   `json:"country"`
	ArticleCount   int      `json:"article_count"`
	AvgConfidence  float64  `json:"avg_confidence"`
	Regions        []string `json:"regions"`
	SampleArticles []string `json:"sample_articles"`
}

// Countries lists every country bucket with summary metadata, largest first.
func (h *Handlers) Countries(c *gin.Context) {
	snapshot, ok := h.loadSnapshot(c)
	if !ok {
		return
	}

	countries := make([]countryInfo, 0, len(snapshot))
	for country, articles := range snapshot {
		countries = append(countries, countryInfo{
			Country:        country,
			ArticleCount:   len(articles),
			AvgConfidence:  round2(avgConfidence(articles)),
			Regions:        regionNames(articles),
			SampleArticles: sampleTitles(articles, 3),
		})
	}

	sort.SliceStable(countries, func(i, j int) bool {
		return countries[i].ArticleCount > countries[j].ArticleCount
	})

	c.JSON(http.StatusOK, gin.H{"countries": countries})
}

// CountryArticles returns a country's articles with computed curiosity
// scores, optionally refreshing descriptions from Wikipedia.
func (h *Handlers) CountryArticles(c *gin.Context) {
	snapshot, ok := h.loadSnapshot(c)
	if !ok {
		return
	}

	requested := c.Param("country")
	refresh := strings.EqualFold(c.DefaultQuery("refresh", "false"), "true")
	limit, err := strconv.Atoi(c.DefaultQuery("limit", strconv.Itoa(h.defaultLimit)))
	if err != nil || limit <= 0 {
		limit = h.defaultLimit
	}

	_, articles := findCountry(snapshot, requested)
	if len(articles) > limit {
		articles = articles[:limit]
	}

	processed := make([]domain.Article, 0, len(articles))
	for i, article := range articles {
		if refresh {
			if i > 0 {
				// Pacing between live description fetches.
				time.Sleep(h.refreshDelay)
			}
			article = h.refreshDescription(c, article)
		}
		article.CuriosityScore = curiosity.Score(article)
		article.LastProcessed = time.Now().Format(time.RFC3339)
		processed = append(processed, article)
	}

	sort.SliceStable(processed, func(i, j int) bool {
		if processed[i].CuriosityScore != processed[j].CuriosityScore {
			return processed[i].CuriosityScore > processed[j].CuriosityScore
		}
		return processed[i].CountryConfidence > processed[j].CountryConfidence
	})

	c.JSON(http.StatusOK, gin.H{
		"country":                requested,
		"articles":               processed,
		"count":                  len(processed),
		"descriptions_refreshed": refresh,
		"limit_applied":          limit,
	})
}

// CountryDetails reports aggregate attribution data for one country.
func (h *Handlers) CountryDetails(c *gin.Context) {
	snapshot, ok := h.loadSnapshot(c)
	if !ok {
		return
	}

	name, articles := findCountry(snapshot, c.Param("country"))
	if len(articles) == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Country not found"})
		return
	}

	minConfidence, maxConfidence := articles[0].CountryConfidence, articles[0].CountryConfidence
	categorySet := map[string]struct{}{}
	categories := []string{}
	for _, article := range articles {
		if article.CountryConfidence < minConfidence {
			minConfidence = article.CountryConfidence
		}
		if article.CountryConfidence > maxConfidence {
			maxConfidence = article.CountryConfidence
		}
		for _, category := range article.Categories {
			if _, seen := categorySet[category]; seen {
				continue
			}
			categorySet[category] = struct{}{}
			categories = append(categories, category)
		}
	}
	if len(categories) > 20 {
		categories = categories[:20]
	}

	samples := make([]gin.H, 0, 5)
	for _, article := range articles[:min(5, len(articles))] {
		samples = append(samples, gin.H{
			"title":      article.Title,
			"confidence": article.CountryConfidence,
			"region":     article.SourceRegion,
		})
	}

	c.JSON(http.StatusOK, gin.H{
		"country":         name,
		"article_count":   len(articles),
		"regions":         regionNames(articles),
		"avg_confidence":  round2(avgConfidence(articles)),
		"min_confidence":  round2(minConfidence),
		"max_confidence":  round2(maxConfidence),
		"top_categories":  categories,
		"sample_articles": samples,
	})
}

// Stats reports dataset-wide totals.
func (h *Handlers) Stats(c *gin.Context) {
	snapshot, ok := h.loadSnapshot(c)
	if !ok {
		return
	}

	total := snapshot.TotalArticles()
	identified := snapshot.IdentifiedArticles()

	rate := 0.0
	var all []domain.Article
	for _, articles := range snapshot {
		all = append(all, articles...)
	}
	if total > 0 {
		rate = float64(identified) / float64(total) * 100
	}

	lastUpdated := "unknown"
	if updated, err := h.store.LastUpdated(c.Request.Context()); err == nil && !updated.IsZero() {
		lastUpdated = updated.Format(time.RFC3339)
	}

	c.JSON(http.StatusOK, gin.H{
		"total_countries":        len(snapshot),
		"total_articles":         total,
		"identified_articles":    identified,
		"unidentified_articles":  len(snapshot[domain.Unidentified]),
		"identification_rate":    math.Round(rate*10) / 10,
		"avg_confidence":         round2(avgConfidence(all)),
		"regions_covered":        regionNames(all),
		"last_updated":           lastUpdated,
		"description_cache_size": h.cache.Len(),
	})
}

// Health reports service liveness and snapshot availability.
func (h *Handlers) Health(c *gin.Context) {
	snapshot, err := h.store.Load(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":    "unhealthy",
			"error":     err.Error(),
			"timestamp": time.Now().Format(time.RFC3339),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":                 "healthy",
		"timestamp":              time.Now().Format(time.RFC3339),
		"countries_loaded":       len(snapshot),
		"description_cache_size": h.cache.Len(),
		"data_store":             h.store.Describe(),
	})
}

// ClearCache empties the description cache.
func (h *Handlers) ClearCache(c *gin.Context) {
	removed := h.cache.Clear()
	c.JSON(http.StatusOK, gin.H{
		"message":    "Description cache cleared! Removed " + strconv.Itoa(removed) + " items",
		"cache_size": h.cache.Len(),
	})
}

// refreshDescription replaces the stored description with a live one when
// available, consulting the TTL cache first. Failures keep the stored value.
func (h *Handlers) refreshDescription(c *gin.Context, article domain.Article) domain.Article {
	title := titleFromURL(article.URL)
	if title == "" {
		title = article.Title
	}
	if title == "" || h.descriptions == nil {
		return article
	}

	if cached, ok := h.cache.Get(title); ok {
		if cached != "" {
			article.Description = cached
			article.DescriptionUpdated = time.Now().Format(time.RFC3339)
		}
		return article
	}

	fresh, err := h.descriptions.Description(c.Request.Context(), title)
	if err != nil {
		h.logger.Warn("description refresh failed", "title", title, "error", err)
		return article
	}

	h.cache.Set(title, fresh)
	if fresh != "" {
		article.Description = fresh
		article.DescriptionUpdated = time.Now().Format(time.RFC3339)
	}
	return article
}

func (h *Handlers) loadSnapshot(c *gin.Context) (domain.Snapshot, bool) {
	snapshot, err := h.store.Load(c.Request.Context())
	if err != nil {
		h.logger.Error("snapshot load failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return nil, false
	}
	return snapshot, true
}

// findCountry matches a bucket name case-insensitively and returns the
// canonical key with its articles.
func findCountry(snapshot domain.Snapshot, requested string) (string, []domain.Article) {
	for country, articles := range snapshot {
		if strings.EqualFold(country, requested) {
			return country, articles
		}
	}
	return "", nil
}

// titleFromURL recovers the article title from a /wiki/ URL, dropping any
// fragment or query.
func titleFromURL(pageURL string) string {
	_, after, found := strings.Cut(pageURL, "/wiki/")
	if !found {
		return ""
	}
	title := strings.ReplaceAll(after, "_", " ")
	if i := strings.Index(title, "#"); i >= 0 {
		title = title[:i]
	}
	if i := strings.Index(title, "?"); i >= 0 {
		title = title[:i]
	}
	return strings.TrimSpace(title)
}

func avgConfidence(articles []domain.Article) float64 {
	if len(articles) == 0 {
		return 0
	}
	sum := 0.0
	for _, article := range articles {
		sum += article.CountryConfidence
	}
	return sum / float64(len(articles))
}

func regionNames(articles []domain.Article) []string {
	seen := map[string]struct{}{}
	// Non-nil so an empty result serializes as [] rather than null.
	regions := []string{}
	for _, article := range articles {
		name := string(article.SourceRegion)
		if _, ok := seen[name]; ok {
			continue
		}
		seen[name] = struct{}{}
		regions = append(regions, name)
	}
	sort.Strings(regions)
	return regions
}

func sampleTitles(articles []domain.Article, n int) []string {
	titles := make([]string, 0, n)
	for _, article := range articles[:min(n, len(articles))] {
		titles = append(titles, article.Title)
	}
	return titles
}

func round2(value float64) float64 {
	return math.Round(value*100) / 100
}
