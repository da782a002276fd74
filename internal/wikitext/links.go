package wikitext

import (
	"regexp"
	"strings"
)

// wikilinkPattern captures the link target of [[target]] and
// [[target|display]] forms; the target never contains a pipe or bracket.
var wikilinkPattern = regexp.MustCompile(`\[\[([^|\]]+)(?:\|[^\]]+)?\]\]`)

// metaNamespacePattern rejects meta-page references by full prefix match.
var metaNamespacePattern = regexp.MustCompile(`(?i)^(Category|Template|Help|Wikipedia):`)

// ExtractTitles pulls every wikilink target out of one region's section
// block, cleans it, filters non-article links, and de-duplicates while
// preserving first-occurrence order.
func ExtractTitles(section string, skipPrefixes []string) []string {
	matches := wikilinkPattern.FindAllStringSubmatch(section, -1)

	titles := make([]string, 0, len(matches))
	seen := make(map[string]struct{}, len(matches))
	for _, match := range matches {
		title := CleanTitle(match[1])
		if !KeepTitle(title, skipPrefixes) {
			continue
		}
		if _, ok := seen[title]; ok {
			continue
		}
		seen[title] = struct{}{}
		titles = append(titles, title)
	}

	return titles
}

// CleanTitle trims whitespace and strips a trailing URL fragment or query
// from a link target.
func CleanTitle(target string) string {
	title := strings.TrimSpace(target)
	if i := strings.Index(title, "#"); i >= 0 {
		title = title[:i]
	}
	if i := strings.Index(title, "?"); i >= 0 {
		title = title[:i]
	}
	return strings.TrimSpace(title)
}

// KeepTitle reports whether a cleaned link target refers to an actual
// article: non-empty, not under a skip prefix (case-insensitive), and not a
// meta-namespace reference.
func KeepTitle(title string, skipPrefixes []string) bool {
	if title == "" {
		return false
	}

	lower := strings.ToLower(title)
	for _, prefix := range skipPrefixes {
		if strings.HasPrefix(lower, prefix) {
			return false
		}
	}

	return !metaNamespacePattern.MatchString(title)
}
