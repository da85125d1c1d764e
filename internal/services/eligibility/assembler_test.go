package eligibility_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"visa-eligibility-engine/internal/models"
	"visa-eligibility-engine/internal/services/eligibility"
)

func codes(recs []models.VisaRecommendation) []string {
	out := make([]string, len(recs))
	for i, r := range recs {
		out[i] = r.Code
	}
	return out
}

func TestRecommend_ScenarioA(t *testing.T) {
	cfg := eligibility.DefaultConfig()
	profile := eligibility.Derive(baseState(), cfg.Tables, nil)
	require.NotNil(t, profile)

	entries := []models.VisaProfile{lookup(t, "DTV"), lookup(t, "NON-OA"), lookup(t, "ED"), lookup(t, "NON-B")}
	recs := eligibility.Recommend(entries, profile, cfg)

	require.Len(t, recs, 4)
	assert.Equal(t, []string{"NON-OA", "DTV", "ED", "NON-B"}, codes(recs))

	assert.Equal(t, models.ConfidenceHigh, recs[0].Confidence)
	assert.Equal(t, models.ConfidenceMedium, recs[1].Confidence)
	assert.Equal(t, models.ConfidenceMedium, recs[2].Confidence)
	assert.Equal(t, models.ConfidenceLow, recs[3].Confidence)

	assert.Equal(t, models.BadgeRecommended, recs[0].Badge)
	assert.Equal(t, models.BadgeAlternative, recs[1].Badge)
	assert.Equal(t, models.BadgePremium, recs[2].Badge)
	assert.Empty(t, recs[3].Badge)

	for i, r := range recs {
		assert.Equal(t, i+1, r.Rank)
	}
}

func TestRecommend_TieBreaks(t *testing.T) {
	mk := func(code string, typ models.EntryType) models.VisaProfile {
		v := testVisa()
		v.Code = code
		v.Type = typ
		return v
	}

	entries := []models.VisaProfile{
		mk("ADD-1", models.EntryTypeAdditional),
		mk("PREM", models.EntryTypePremium),
		mk("MAIN-1", models.EntryTypeMain),
		mk("ALT", models.EntryTypeAlternative),
		mk("MAIN-2", models.EntryTypeMain),
		mk("ADD-2", models.EntryTypeAdditional),
	}

	recs := eligibility.Recommend(entries, testProfile(), eligibility.DefaultConfig())

	assert.Equal(t, []string{"MAIN-1", "MAIN-2", "ALT", "PREM", "ADD-1", "ADD-2"}, codes(recs))
	for _, r := range recs {
		assert.Equal(t, recs[0].Score, r.Score)
	}
}

func TestRecommend_HigherScoreBeatsType(t *testing.T) {
	main := testVisa()
	main.Code = "MAIN"
	extra := testVisa()
	extra.Code = "EXTRA"
	extra.Type = models.EntryTypeAdditional
	extra.BaseScore = main.BaseScore + 1

	recs := eligibility.Recommend([]models.VisaProfile{main, extra}, testProfile(), eligibility.DefaultConfig())
	assert.Equal(t, []string{"EXTRA", "MAIN"}, codes(recs))
}

func TestRecommend_CopiesDisplayFields(t *testing.T) {
	visa := testVisa()
	visa.Description = "desc"
	visa.Cost = "10,000 THB"
	visa.ProcessingTime = "2 weeks"
	visa.Fit.Reason = "reason"
	visa.Fit.Tradeoff = "tradeoff"

	recs := eligibility.Recommend([]models.VisaProfile{visa}, testProfile(), eligibility.DefaultConfig())
	require.Len(t, recs, 1)

	r := recs[0]
	assert.Equal(t, "TEST", r.Code)
	assert.Equal(t, "Test visa", r.Title)
	assert.Equal(t, "desc", r.Description)
	assert.Equal(t, "10,000 THB", r.Cost)
	assert.Equal(t, "2 weeks", r.ProcessingTime)
	assert.Equal(t, models.DifficultyModerate, r.Difficulty)
	assert.Equal(t, models.EntryTypeMain, r.Type)
	assert.Equal(t, "reason", r.Reason)
	assert.Equal(t, "tradeoff", r.Tradeoff)
}

func TestRecommend_NilProfile(t *testing.T) {
	recs := eligibility.Recommend([]models.VisaProfile{testVisa()}, nil, eligibility.DefaultConfig())
	assert.NotNil(t, recs)
	assert.Empty(t, recs)
}

func TestSplitPrimary(t *testing.T) {
	recs := make([]models.VisaRecommendation, 5)
	for i := range recs {
		recs[i] = models.VisaRecommendation{Rank: i + 1}
	}

	tests := []struct {
		name        string
		n           int
		primaryLen  int
		overflowLen int
	}{
		{"default cut", 3, 3, 2},
		{"zero", 0, 0, 5},
		{"negative", -1, 0, 5},
		{"larger than input", 10, 5, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			primary, overflow := eligibility.SplitPrimary(recs, tt.n)
			assert.Len(t, primary, tt.primaryLen)
			assert.Len(t, overflow, tt.overflowLen)
		})
	}
}

func TestSplitPrimary_AppendDoesNotClobberOverflow(t *testing.T) {
	recs := []models.VisaRecommendation{{Code: "A"}, {Code: "B"}, {Code: "C"}}

	primary, overflow := eligibility.SplitPrimary(recs, 2)
	primary = append(primary, models.VisaRecommendation{Code: "Z"})

	assert.Equal(t, "C", overflow[0].Code)
	assert.Equal(t, "Z", primary[2].Code)
}
