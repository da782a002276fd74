// Package wikitext turns raw wiki markup into per-region article title lists.
// Everything here is a pure text transform; no I/O, no shared state.
package wikitext

import (
	"regexp"
	"strings"

	"wikiweird/internal/domain"
)

// headerBoundary marks the start of the next header at section depth or
// deeper, which terminates the current section's capture.
const headerBoundary = "==="

// headerPattern matches a region's section header, case-insensitively and
// tolerant of whitespace inside the marker pair.
func headerPattern(region domain.Region) *regexp.Regexp {
	return regexp.MustCompile(`(?i)===\s*` + regexp.QuoteMeta(string(region)) + `\s*===`)
}

// SplitSections locates each region's markup block inside the full page body.
// Regions whose header is not found are absent from the result; if a region's
// header appears more than once, only the first occurrence is used. The
// captured block runs from the end of the header to the next "===" boundary
// or the end of the text.
func SplitSections(markup string, regions []domain.Region) map[domain.Region]string {
	sections := make(map[domain.Region]string, len(regions))
	if markup == "" {
		return sections
	}

	for _, region := range regions {
		loc := headerPattern(region).FindStringIndex(markup)
		if loc == nil {
			continue
		}

		body := markup[loc[1]:]
		if end := strings.Index(body, headerBoundary); end >= 0 {
			body = body[:end]
		}
		sections[region] = body
	}

	return sections
}
