package wikitext

import (
	"reflect"
	"testing"

	"wikiweird/internal/domain"
)

var testSkipPrefixes = []string{
	"file:", "image:", "category:", "wp:", "wikipedia:",
	"template:", ":category:", "commons:",
}

func TestExtractTitlesPreservesFirstSeenOrder(t *testing.T) {
	t.Parallel()

	got := ExtractTitles("[[A]] [[B]] [[A]]", testSkipPrefixes)
	want := []string{"A", "B"}

	if !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
}

func TestExtractTitlesDropsDisplayText(t *testing.T) {
	t.Parallel()

	got := ExtractTitles("[[Winchester Mystery House|a strange house]]", testSkipPrefixes)

	if len(got) != 1 || got[0] != "Winchester Mystery House" {
		t.Fatalf("expected link target only, got %v", got)
	}
}

func TestExtractTitlesSkipsNonArticleLinks(t *testing.T) {
	t.Parallel()

	section := "[[File:Foo.jpg]] [[file:bar.png]] [[Category:Bar]] [[Template:Infobox]] [[Help:Editing]] [[Wikipedia:About]] [[Real Article]]"

	got := ExtractTitles(section, testSkipPrefixes)

	if len(got) != 1 || got[0] != "Real Article" {
		t.Fatalf("expected only the real article, got %v", got)
	}
}

func TestExtractTitlesStripsFragmentAndQuery(t *testing.T) {
	t.Parallel()

	got := ExtractTitles("[[Some Place#History]] [[Other Place?action=edit]]", testSkipPrefixes)
	want := []string{"Some Place", "Other Place"}

	if !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
}

func TestExtractTitlesTrimsWhitespace(t *testing.T) {
	t.Parallel()

	got := ExtractTitles("[[  Padded Title ]]", testSkipPrefixes)

	if len(got) != 1 || got[0] != "Padded Title" {
		t.Fatalf("expected trimmed title, got %v", got)
	}
}

func TestExtractTitlesIsIdempotent(t *testing.T) {
	t.Parallel()

	section := "[[A]] [[File:x.jpg]] [[B#frag]] [[A]]"

	first := ExtractTitles(section, testSkipPrefixes)
	second := ExtractTitles(section, testSkipPrefixes)

	if !reflect.DeepEqual(first, second) {
		t.Fatalf("re-running the parser changed output: %v vs %v", first, second)
	}
}

func TestExtractTitlesEmptySection(t *testing.T) {
	t.Parallel()

	if got := ExtractTitles("no links here", testSkipPrefixes); len(got) != 0 {
		t.Fatalf("expected no titles, got %v", got)
	}
}

// End-to-end over splitter and parser: the Asia section keeps one unique
// article while the trailing Europe section is empty.
func TestSplitAndExtractScenario(t *testing.T) {
	t.Parallel()

	markup := "=== Asia ===\n[[Fictitious Temple]] [[File:pic.jpg]] [[Fictitious Temple]]\n=== Europe ==="

	sections := SplitSections(markup, []domain.Region{domain.RegionAsia, domain.RegionEurope})

	asia := ExtractTitles(sections[domain.RegionAsia], testSkipPrefixes)
	if !reflect.DeepEqual(asia, []string{"Fictitious Temple"}) {
		t.Fatalf("unexpected Asia titles: %v", asia)
	}

	europe := ExtractTitles(sections[domain.RegionEurope], testSkipPrefixes)
	if len(europe) != 0 {
		t.Fatalf("expected empty Europe section, got %v", europe)
	}
}
