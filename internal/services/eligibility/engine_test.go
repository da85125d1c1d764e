package eligibility_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"visa-eligibility-engine/internal/catalog"
	"visa-eligibility-engine/internal/models"
	"visa-eligibility-engine/internal/services/eligibility"
)

func newEngine(opts ...eligibility.Option) *eligibility.Engine {
	return eligibility.NewEngine(catalog.Default(), eligibility.DefaultConfig(), opts...)
}

func visaCodes(visas []models.VisaProfile) []string {
	out := make([]string, len(visas))
	for i, v := range visas {
		out[i] = v.Code
	}
	return out
}

func TestEngine_ScenarioA(t *testing.T) {
	engine := newEngine()
	state := baseState()

	assert.Equal(t, 4, engine.CountEligibleVisas(state))
	assert.Equal(t, []string{"DTV", "NON-OA", "ED", "NON-B"}, visaCodes(engine.GetEligibleVisas(state)))

	recs := engine.GenerateRecommendations(state)
	require.Len(t, recs, 4)
	assert.Equal(t, []string{"NON-OA", "DTV", "ED", "NON-B"}, codes(recs))
	assert.Equal(t, []float64{112, 95, 80, 70.5}, []float64{recs[0].Score, recs[1].Score, recs[2].Score, recs[3].Score})
}

func TestEngine_ScenarioA_TopSavings(t *testing.T) {
	engine := newEngine()
	state := baseState()
	state.SavingsBand = "3M_plus"

	recs := engine.GenerateRecommendations(state)
	assert.Equal(t, []string{"PRIVILEGE", "NON-OA", "NON-OX", "DTV", "ED", "NON-B"}, codes(recs))
	assert.Equal(t, float64(120), recs[0].Score)
	assert.Equal(t, float64(100), recs[2].Score)
	assert.Equal(t, models.ConfidenceHigh, recs[2].Confidence)
}

func TestEngine_ExcludesHiddenEntries(t *testing.T) {
	engine := newEngine()
	state := models.EligibilityState{
		AgeBand:     "Under 30",
		Purpose:     "tourism",
		SavingsBand: "under_100k",
		IncomeType:  "No income",
		Location:    "Outside Thailand",
		Duration:    "under_60",
	}

	visas := engine.GetEligibleVisas(state)
	assert.Equal(t, []string{"ED", "NON-B"}, visaCodes(visas))

	recs := engine.GenerateRecommendations(state)
	for _, r := range recs {
		assert.NotContains(t, []string{"TR", "VISA-EXEMPT", "STV"}, r.Code)
	}
	assert.Equal(t, []string{"ED", "NON-B"}, codes(recs))
	assert.Equal(t, float64(80), recs[0].Score)
}

func TestEngine_LocationRules(t *testing.T) {
	engine := newEngine()

	t.Run("outside seeker misses in-country extension", func(t *testing.T) {
		state := baseState()
		state.Duration = "under_60"
		assert.NotContains(t, visaCodes(engine.GetEligibleVisas(state)), "RET-EXT")
	})

	t.Run("inside seeker gets extension and conversions", func(t *testing.T) {
		state := baseState()
		state.Location = "Inside Thailand"
		state.Duration = "under_60"

		recs := engine.GenerateRecommendations(state)
		require.NotEmpty(t, recs)
		assert.Equal(t, "RET-EXT", recs[0].Code)
		assert.Equal(t, 110.5, recs[0].Score)
		assert.Contains(t, codes(recs), "DTV")
		assert.NotContains(t, codes(recs), "NON-OA")
	})
}

func TestEngine_CountMatchesVisas(t *testing.T) {
	engine := newEngine()
	states := []models.EligibilityState{
		baseState(),
		{AgeBand: "30-49", Purpose: "remote_work", SavingsBand: "500k_800k", IncomeType: "Remote employment", Location: "Inside Thailand"},
		{AgeBand: "Under 30", SavingsBand: "under_100k", IncomeType: "No income", Location: "Outside Thailand"},
		{},
	}

	for _, state := range states {
		assert.Equal(t, len(engine.GetEligibleVisas(state)), engine.CountEligibleVisas(state))
		assert.Equal(t, len(engine.GenerateRecommendations(state)), engine.CountEligibleVisas(state))
	}
}

func TestEngine_RecommendationsAreDeterministic(t *testing.T) {
	engine := newEngine()
	states := []models.EligibilityState{
		baseState(),
		{AgeBand: "30-49", Purpose: "business", SavingsBand: "500k_800k", IncomeType: "Local employment", Location: "Inside Thailand", Duration: "180_365"},
		{AgeBand: "Under 30", Purpose: "tourism", SavingsBand: "under_100k", IncomeType: "No income", Location: "Outside Thailand", Duration: "under_60"},
	}

	for _, state := range states {
		first := engine.GenerateRecommendations(state)
		second := engine.GenerateRecommendations(state)

		require.Equal(t, len(first), len(second))
		for i := range first {
			assert.Equal(t, first[i].Code, second[i].Code)
			assert.Equal(t, first[i].Score, second[i].Score)
			assert.Equal(t, first[i].Rank, second[i].Rank)
		}
	}
}

func TestEngine_CountGrowsWithSavings(t *testing.T) {
	engine := newEngine()

	for _, location := range []string{"Outside Thailand", "Inside Thailand"} {
		t.Run(location, func(t *testing.T) {
			state := baseState()
			state.Location = location

			previous := -1
			for _, band := range models.ValidSavingsBands() {
				state.SavingsBand = string(band)
				count := engine.CountEligibleVisas(state)
				assert.GreaterOrEqual(t, count, previous, "savings band %q", band)
				previous = count
			}
		})
	}
}

func TestEngine_IncompleteIntake(t *testing.T) {
	engine := newEngine()
	state := baseState()
	state.IncomeType = ""

	assert.Zero(t, engine.CountEligibleVisas(state))
	assert.NotNil(t, engine.GetEligibleVisas(state))
	assert.Empty(t, engine.GetEligibleVisas(state))
	assert.NotNil(t, engine.GenerateRecommendations(state))
	assert.Empty(t, engine.GenerateRecommendations(state))
}

func TestEngine_ReturnsCopies(t *testing.T) {
	engine := newEngine()

	visas := engine.GetEligibleVisas(baseState())
	require.NotEmpty(t, visas)
	visas[0].BaseScore = -1
	visas[0].Fit.PrimaryPurposes[0] = models.PurposeTourism

	again := engine.GetEligibleVisas(baseState())
	assert.NotEqual(t, float64(-1), again[0].BaseScore)
	assert.NotEqual(t, models.PurposeTourism, again[0].Fit.PrimaryPurposes[0])
}

func TestEngine_IsPurposeDisabled(t *testing.T) {
	engine := newEngine()

	tests := []struct {
		purpose  string
		ageBand  string
		disabled bool
	}{
		{"retirement", "Under 50", true},
		{"retirement", "Under 30", true},
		{"retirement", "30-49", true},
		{"retirement", "50+", false},
		{"Retirement", "50 plus", false},
		{"tourism", "Under 30", false},
		{"sightseeing", "Under 30", false},
		{"retirement", "ancient", false},
		{"", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.purpose+"/"+tt.ageBand, func(t *testing.T) {
			got := engine.IsPurposeDisabled(tt.purpose, tt.ageBand)
			assert.Equal(t, tt.disabled, got.Disabled)
			if tt.disabled {
				assert.Equal(t, "Retirement visas require applicants aged 50 or older", got.Reason)
			} else {
				assert.Empty(t, got.Reason)
			}
		})
	}
}

func TestEngine_UnknownValueHook(t *testing.T) {
	var fields []string
	engine := newEngine(
		eligibility.WithLogger(zap.NewNop()),
		eligibility.WithUnknownValueHook(func(uv *models.UnknownValueError) {
			fields = append(fields, uv.Field)
		}),
	)

	state := baseState()
	state.Location = "the moon"
	engine.CountEligibleVisas(state)

	assert.Equal(t, []string{"location"}, fields)
}

func TestEngine_CustomConfig(t *testing.T) {
	cfg := eligibility.DefaultConfig()
	cfg.Weights = eligibility.Weights{}
	engine := eligibility.NewEngine(catalog.Default(), cfg)

	recs := engine.GenerateRecommendations(baseState())
	require.Len(t, recs, 4)
	// Base scores alone decide the order.
	assert.Equal(t, []string{"DTV", "NON-OA", "ED", "NON-B"}, codes(recs))
	assert.Equal(t, cfg, engine.Config())
	assert.Equal(t, catalog.Default().Len(), engine.Catalog().Len())
}

func TestEngine_ConcurrentUse(t *testing.T) {
	engine := newEngine()

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			recs := engine.GenerateRecommendations(baseState())
			assert.Len(t, recs, 4)
		}()
	}
	wg.Wait()
}
