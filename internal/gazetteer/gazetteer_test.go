package gazetteer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wikiweird/internal/domain"
)

func TestNewSortsCountriesLexically(t *testing.T) {
	t.Parallel()

	region := domain.Region("Testland")
	gaz := New(Tables{
		RegionCountries: map[domain.Region][]string{
			region: {"Borduria", "Avaria", "Zubrowka"},
		},
	})

	countries, ok := gaz.Countries(region)
	require.True(t, ok)
	assert.Equal(t, []string{"Avaria", "Borduria", "Zubrowka"}, countries)
}

func TestCountriesUnknownRegion(t *testing.T) {
	t.Parallel()

	_, ok := Default().Countries(domain.Region("Atlantis"))
	assert.False(t, ok)
}

func TestHasIsRegionScoped(t *testing.T) {
	t.Parallel()

	gaz := Default()
	assert.True(t, gaz.Has(domain.RegionAsia, "Japan"))
	assert.False(t, gaz.Has(domain.RegionEurope, "Japan"))
	assert.False(t, gaz.Has(domain.RegionAsia, "japan"), "membership is case-sensitive")
}

func TestWordPatternMatchesWholeWordsOnly(t *testing.T) {
	t.Parallel()

	pattern := Default().WordPattern("Iran")
	require.NotNil(t, pattern)

	assert.Len(t, pattern.FindAllString("a temple in iran, near iran's border", -1), 2)
	assert.Empty(t, pattern.FindAllString("an iranian temple", -1))
	assert.Nil(t, Default().WordPattern("Atlantis"))
}

func TestDefaultCoversEveryRegion(t *testing.T) {
	t.Parallel()

	gaz := Default()
	for _, region := range domain.Regions() {
		countries, ok := gaz.Countries(region)
		if !ok || len(countries) == 0 {
			t.Fatalf("region %s has no candidate countries", region)
		}
	}
}

func TestDefaultKeepsIdentitySynonyms(t *testing.T) {
	t.Parallel()

	// Identity entries back the substring pass for adjectival forms like
	// "South Korean"; dropping them silences the +8 bonus entirely.
	synonyms := Default().Synonyms()
	for _, country := range []string{"South Korea", "North Korea", "Czech Republic"} {
		if got := synonyms[country]; got != country {
			t.Fatalf("synonym %q maps to %q, want identity", country, got)
		}
	}
}

func TestSynonymsReturnsACopy(t *testing.T) {
	t.Parallel()

	gaz := Default()
	stolen := gaz.Synonyms()
	stolen["Britain"] = "France"
	delete(stolen, "UK")

	fresh := gaz.Synonyms()
	assert.Equal(t, "United Kingdom", fresh["Britain"])
	assert.Equal(t, "United Kingdom", fresh["UK"])
}

func TestDefaultSynonymsResolveToCandidates(t *testing.T) {
	t.Parallel()

	gaz := Default()
	for synonym, canonical := range gaz.Synonyms() {
		found := false
		for _, region := range domain.Regions() {
			if gaz.Has(region, canonical) {
				found = true
				break
			}
		}
		if !found {
			t.Fatalf("synonym %q maps to %q, which no region lists", synonym, canonical)
		}
	}
}
