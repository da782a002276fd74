// Package wiki talks to the MediaWiki action API and the Wikipedia REST API.
package wiki

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"wikiweird/internal/ports"
)

const unusualArticlesPrefix = "Wikipedia:Unusual_articles/"

// Client fetches page markup, summaries, and categories.
type Client struct {
	apiURL    string
	restURL   string
	userAgent string
	http      *http.Client
}

var _ ports.Enricher = (*Client)(nil)
var _ ports.DescriptionProvider = (*Client)(nil)

// NewClient builds a reusable client; a zero timeout defaults to 20s.
func NewClient(apiURL, restURL, userAgent string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = 20 * time.Second
	}
	return &Client{
		apiURL:    strings.TrimSuffix(apiURL, "/"),
		restURL:   strings.TrimSuffix(restURL, "/"),
		userAgent: userAgent,
		http:      &http.Client{Timeout: timeout},
	}
}

type parseResponse struct {
	Parse struct {
		Wikitext struct {
			Content string `json:"*"`
		} `json:"wikitext"`
		Text struct {
			Content string `json:"*"`
		} `json:"text"`
	} `json:"parse"`
}

// PageWikitext fetches the raw markup of an unusual-articles subpage.
func (c *Client) PageWikitext(ctx context.Context, subpage string) (string, error) {
	var parsed parseResponse
	if err := c.parsePage(ctx, subpage, "wikitext", &parsed); err != nil {
		return "", err
	}
	if parsed.Parse.Wikitext.Content == "" {
		return "", fmt.Errorf("no wikitext in response for %s", subpage)
	}
	return parsed.Parse.Wikitext.Content, nil
}

// PageHTML fetches the rendered HTML of an unusual-articles subpage.
func (c *Client) PageHTML(ctx context.Context, subpage string) (string, error) {
	var parsed parseResponse
	if err := c.parsePage(ctx, subpage, "text", &parsed); err != nil {
		return "", err
	}
	if parsed.Parse.Text.Content == "" {
		return "", fmt.Errorf("no rendered text in response for %s", subpage)
	}
	return parsed.Parse.Text.Content, nil
}

func (c *Client) parsePage(ctx context.Context, subpage, prop string, v any) error {
	params := url.Values{}
	params.Set("action", "parse")
	params.Set("page", unusualArticlesPrefix+strings.ReplaceAll(subpage, " ", "_"))
	params.Set("format", "json")
	params.Set("prop", prop)

	if err := c.getJSON(ctx, c.apiURL+"?"+params.Encode(), v); err != nil {
		return fmt.Errorf("parse page %s: %w", subpage, err)
	}
	return nil
}

type summaryResponse struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Extract     string `json:"extract"`
	Thumbnail   struct {
		Source string `json:"source"`
	} `json:"thumbnail"`
	ContentURLs struct {
		Desktop struct {
			Page string `json:"page"`
		} `json:"desktop"`
	} `json:"content_urls"`
}

// Summary fetches the REST page summary for an article title.
func (c *Client) Summary(ctx context.Context, title string) (ports.Summary, error) {
	clean := strings.ReplaceAll(title, " ", "_")
	endpoint := c.restURL + "/page/summary/" + url.PathEscape(clean)

	var parsed summaryResponse
	if err := c.getJSON(ctx, endpoint, &parsed); err != nil {
		return ports.Summary{}, fmt.Errorf("summary %s: %w", title, err)
	}

	return ports.Summary{
		Title:       parsed.Title,
		Description: parsed.Description,
		Extract:     parsed.Extract,
		URL:         parsed.ContentURLs.Desktop.Page,
		Thumbnail:   parsed.Thumbnail.Source,
	}, nil
}

// Description fetches only the short description, for the serve-time refresh
// path.
func (c *Client) Description(ctx context.Context, title string) (string, error) {
	summary, err := c.Summary(ctx, title)
	if err != nil {
		return "", err
	}
	return summary.Description, nil
}

type categoriesResponse struct {
	Query struct {
		Pages map[string]struct {
			Categories []struct {
				Title string `json:"title"`
			} `json:"categories"`
		} `json:"pages"`
	} `json:"query"`
}

// Categories fetches the article's category names with the Category: prefix
// stripped.
func (c *Client) Categories(ctx context.Context, title string) ([]string, error) {
	params := url.Values{}
	params.Set("action", "query")
	params.Set("format", "json")
	params.Set("titles", title)
	params.Set("prop", "categories")
	params.Set("cllimit", "max")

	var parsed categoriesResponse
	if err := c.getJSON(ctx, c.apiURL+"?"+params.Encode(), &parsed); err != nil {
		return nil, fmt.Errorf("categories %s: %w", title, err)
	}

	var categories []string
	for _, page := range parsed.Query.Pages {
		for _, cat := range page.Categories {
			categories = append(categories, strings.TrimPrefix(cat.Title, "Category:"))
		}
	}
	return categories, nil
}

func (c *Client) getJSON(ctx context.Context, endpoint string, v any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("do request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("wikipedia returned %s", resp.Status)
	}

	if err := json.NewDecoder(resp.Body).Decode(v); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}
