package domain

import "testing"

func TestArticleID(t *testing.T) {
	t.Parallel()

	cases := []struct {
		title string
		want  string
	}{
		{"Odd Shrine", "odd_shrine"},
		{"Crooked House of Windsor", "crooked_house_of_windsor"},
		{"lowercase", "lowercase"},
	}
	for _, tc := range cases {
		if got := ArticleID(tc.title); got != tc.want {
			t.Fatalf("ArticleID(%q) = %q, want %q", tc.title, got, tc.want)
		}
	}
}

func TestAttributionIdentified(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		a    Attribution
		want bool
	}{
		{"above threshold", Attribution{Country: "Japan", Confidence: 0.11}, true},
		{"at threshold", Attribution{Country: "Japan", Confidence: 0.1}, false},
		{"no country", Attribution{Confidence: 0.9}, false},
		{"zero", Attribution{}, false},
	}
	for _, tc := range cases {
		if got := tc.a.Identified(); got != tc.want {
			t.Fatalf("%s: Identified() = %v, want %v", tc.name, got, tc.want)
		}
	}
}

func TestSnapshotCounts(t *testing.T) {
	t.Parallel()

	snap := Snapshot{
		"Japan":      {{Title: "a"}, {Title: "b"}},
		Unidentified: {{Title: "c"}},
	}
	if got := snap.TotalArticles(); got != 3 {
		t.Fatalf("TotalArticles = %d", got)
	}
	if got := snap.IdentifiedArticles(); got != 2 {
		t.Fatalf("IdentifiedArticles = %d", got)
	}
}
