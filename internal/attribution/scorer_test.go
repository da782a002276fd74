package attribution

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wikiweird/internal/domain"
	"wikiweird/internal/gazetteer"
)

func TestScoreHongKongScenario(t *testing.T) {
	t.Parallel()

	scorer := NewScorer(gazetteer.Default())

	got, err := scorer.Score(domain.AttributionInput{
		Title:      "X",
		Extract:    "Located in Hong Kong",
		Categories: []string{"Buildings in Hong Kong"},
		Region:     domain.RegionAsia,
	})
	require.NoError(t, err)

	assert.Equal(t, "Hong Kong", got.Country)
	assert.Greater(t, got.Confidence, domain.IdentificationThreshold)
}

func TestScoreNoSignalReturnsNone(t *testing.T) {
	t.Parallel()

	scorer := NewScorer(gazetteer.Default())

	got, err := scorer.Score(domain.AttributionInput{
		Title:  "Mysterious Object",
		Region: domain.RegionAsia,
	})
	require.NoError(t, err)

	assert.Empty(t, got.Country)
	assert.Zero(t, got.Confidence)
}

func TestScoreRegionIsolation(t *testing.T) {
	t.Parallel()

	scorer := NewScorer(gazetteer.Default())

	// France is mentioned prominently but is not an Asia candidate.
	got, err := scorer.Score(domain.AttributionInput{
		Title:   "Some Monument",
		Extract: "A monument in France, the pride of France.",
		Region:  domain.RegionAsia,
	})
	require.NoError(t, err)

	assert.Empty(t, got.Country, "out-of-region country must never win")
	assert.Zero(t, got.Confidence)
}

func TestScoreSpecialRuleDominatesGenericMention(t *testing.T) {
	t.Parallel()

	scorer := NewScorer(gazetteer.Default())

	got, err := scorer.Score(domain.AttributionInput{
		Title:   "Harbour Temple",
		Extract: "A temple in Hong Kong, close to mainland China.",
		Region:  domain.RegionAsia,
	})
	require.NoError(t, err)

	assert.Equal(t, "Hong Kong", got.Country)
}

func TestScoreTaiwanBeatsChinaOnRepublicOfChina(t *testing.T) {
	t.Parallel()

	scorer := NewScorer(gazetteer.Default())

	got, err := scorer.Score(domain.AttributionInput{
		Title:   "Grand Hotel",
		Extract: "A landmark of the Republic of China.",
		Region:  domain.RegionAsia,
	})
	require.NoError(t, err)

	assert.Equal(t, "Taiwan", got.Country)
}

func TestScoreUKConstituentChecksStack(t *testing.T) {
	t.Parallel()

	scorer := NewScorer(gazetteer.Default())

	got, err := scorer.Score(domain.AttributionInput{
		Title:   "Twin Bridge",
		Extract: "Spanning between London and Edinburgh.",
		Region:  domain.RegionEurope,
	})
	require.NoError(t, err)

	assert.Equal(t, "United Kingdom", got.Country)
	// Two constituent checks fired: 60/50 caps at 1.
	assert.InDelta(t, 1.0, got.Confidence, 1e-9)
}

func TestScoreNorthAmericaRuleIsRegionScoped(t *testing.T) {
	t.Parallel()

	scorer := NewScorer(gazetteer.Default())

	inNA, err := scorer.Score(domain.AttributionInput{
		Title:   "Roadside Attraction",
		Extract: "A quintessentially american roadside stop.",
		Region:  domain.RegionNorthAmerica,
	})
	require.NoError(t, err)
	assert.Equal(t, "United States", inNA.Country)

	// The same text sourced from Europe gets no US/Canada bonus and no
	// candidate match at all.
	inEU, err := scorer.Score(domain.AttributionInput{
		Title:   "Roadside Attraction",
		Extract: "A quintessentially american roadside stop.",
		Region:  domain.RegionEurope,
	})
	require.NoError(t, err)
	assert.Empty(t, inEU.Country)
}

func TestScoreCanadaIsExclusiveWithUS(t *testing.T) {
	t.Parallel()

	scorer := NewScorer(gazetteer.Default())

	got, err := scorer.Score(domain.AttributionInput{
		Title:   "Giant Nickel",
		Extract: "A canadian landmark.",
		Region:  domain.RegionNorthAmerica,
	})
	require.NoError(t, err)

	assert.Equal(t, "Canada", got.Country)
}

func TestScoreSynonymCreditsCanonicalCountry(t *testing.T) {
	t.Parallel()

	scorer := NewScorer(gazetteer.Default())

	got, err := scorer.Score(domain.AttributionInput{
		Title:   "Crooked House",
		Extract: "Built somewhere in Britain long ago.",
		Region:  domain.RegionEurope,
	})
	require.NoError(t, err)

	assert.Equal(t, "United Kingdom", got.Country)
	assert.Greater(t, got.Confidence, 0.0)
}

func TestScoreAdjectivalFormEarnsSynonymBonus(t *testing.T) {
	t.Parallel()

	scorer := NewScorer(gazetteer.Default())

	// "South Korean" carries no whole-word "South Korea" mention; the
	// identity synonym's substring match must still push the attribution
	// past the identification threshold.
	got, err := scorer.Score(domain.AttributionInput{
		Title:   "Mystery Museum",
		Extract: "A museum founded by a South Korean collector.",
		Region:  domain.RegionAsia,
	})
	require.NoError(t, err)

	assert.Equal(t, "South Korea", got.Country)
	// Extract containment (5) + synonym (8) = 13/50.
	assert.InDelta(t, 0.26, got.Confidence, 1e-9)
	verdict := domain.Attribution{Country: got.Country, Confidence: got.Confidence}
	assert.True(t, verdict.Identified())
}

func TestScoreCategoryLocativeBonus(t *testing.T) {
	t.Parallel()

	scorer := NewScorer(gazetteer.Default())

	got, err := scorer.Score(domain.AttributionInput{
		Title:      "Odd Shrine",
		Categories: []string{"Buildings and structures in Japan"},
		Region:     domain.RegionAsia,
	})
	require.NoError(t, err)

	assert.Equal(t, "Japan", got.Country)
	// One whole-word mention (10) + category (20) + locative (30) = 60.
	assert.InDelta(t, 1.0, got.Confidence, 1e-9)
}

func TestScoreWholeWordMentionsOnly(t *testing.T) {
	t.Parallel()

	scorer := NewScorer(gazetteer.Default())

	// "Iranian" must not count as a delimited "Iran" mention; the substring
	// title/extract signals still apply.
	got, err := scorer.Score(domain.AttributionInput{
		Title:   "Iranian Artefact",
		Extract: "",
		Region:  domain.RegionAsia,
	})
	require.NoError(t, err)

	require.Equal(t, "Iran", got.Country)
	// Title containment only: 15/50.
	assert.InDelta(t, 0.3, got.Confidence, 1e-9)
}

func TestScoreConfidenceMonotonicity(t *testing.T) {
	t.Parallel()

	scorer := NewScorer(gazetteer.Default())

	weak, err := scorer.Score(domain.AttributionInput{
		Title:  "Nowhere Shrine of Japan",
		Region: domain.RegionAsia,
	})
	require.NoError(t, err)

	strong, err := scorer.Score(domain.AttributionInput{
		Title:      "Nowhere Shrine of Japan",
		Categories: []string{"Shinto shrines in Japan"},
		Region:     domain.RegionAsia,
	})
	require.NoError(t, err)

	assert.Equal(t, "Japan", weak.Country)
	assert.Equal(t, "Japan", strong.Country)
	assert.GreaterOrEqual(t, strong.Confidence, weak.Confidence)
}

func TestScoreUnknownRegionFailsLoudly(t *testing.T) {
	t.Parallel()

	scorer := NewScorer(gazetteer.Default())

	_, err := scorer.Score(domain.AttributionInput{
		Title:  "Anything",
		Region: domain.Region("Atlantis"),
	})
	assert.Error(t, err)
}

func TestScoreTieBreaksToFirstOrderedCandidate(t *testing.T) {
	t.Parallel()

	region := domain.Region("Testland")
	gaz := gazetteer.New(gazetteer.Tables{
		RegionCountries: map[domain.Region][]string{
			// Registered out of order on purpose; candidate order is lexical.
			region: {"Borduria", "Avaria"},
		},
	})
	scorer := NewScorer(gaz)

	got, err := scorer.Score(domain.AttributionInput{
		Title:   "Border Post",
		Extract: "On the road between Avaria and Borduria.",
		Region:  region,
	})
	require.NoError(t, err)

	// Both candidates score identically; the lexically first one wins.
	assert.Equal(t, "Avaria", got.Country)
}

func TestScoreEmptySignalsAreNotAnError(t *testing.T) {
	t.Parallel()

	scorer := NewScorer(gazetteer.Default())

	got, err := scorer.Score(domain.AttributionInput{
		Title:      "Thing",
		Extract:    "",
		Categories: nil,
		Region:     domain.RegionAntarctica,
	})
	require.NoError(t, err)
	assert.Empty(t, got.Country)
}
