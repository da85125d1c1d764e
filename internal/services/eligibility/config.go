// Package eligibility turns a seeker's intake answers into ranked visa recommendations.
//
// The pipeline is derive -> filter -> score -> assemble. Every stage is a pure
// function of its inputs; tunable numbers live in Config so that tests and
// operators can swap them without touching the rules.
package eligibility

import "visa-eligibility-engine/internal/models"

// Dimension names one additive component of the soft-fit score.
type Dimension string

const (
	DimensionPurposePrimary     Dimension = "purpose_primary"
	DimensionPurposeSecondary   Dimension = "purpose_secondary"
	DimensionBudget             Dimension = "budget"
	DimensionDuration           Dimension = "duration"
	DimensionLocationPayToStay  Dimension = "location_pay_to_stay"
	DimensionLocationConversion Dimension = "location_conversion"
	DimensionLocationStandard   Dimension = "location_standard"
	DimensionCreative           Dimension = "creative"
	DimensionEase               Dimension = "ease"
)

// AllDimensions returns every scoring dimension.
func AllDimensions() []Dimension {
	return []Dimension{
		DimensionPurposePrimary,
		DimensionPurposeSecondary,
		DimensionBudget,
		DimensionDuration,
		DimensionLocationPayToStay,
		DimensionLocationConversion,
		DimensionLocationStandard,
		DimensionCreative,
		DimensionEase,
	}
}

// Weights maps each dimension to its maximum bonus. A missing dimension weighs zero.
type Weights map[Dimension]float64

// Get returns the weight for d, or zero when it is not configured.
func (w Weights) Get(d Dimension) float64 {
	return w[d]
}

// Missing lists dimensions that have no configured weight.
func (w Weights) Missing() []Dimension {
	var missing []Dimension
	for _, d := range AllDimensions() {
		if _, ok := w[d]; !ok {
			missing = append(missing, d)
		}
	}
	return missing
}

// Clone returns an independent copy.
func (w Weights) Clone() Weights {
	out := make(Weights, len(w))
	for k, v := range w {
		out[k] = v
	}
	return out
}

// ConfidenceBands are the lower score bounds of the high and medium labels.
type ConfidenceBands struct {
	High   float64 `json:"high" mapstructure:"high"`
	Medium float64 `json:"medium" mapstructure:"medium"`
}

// AgeBandInfo is the numeric stand-in for an age band.
type AgeBandInfo struct {
	// Representative is compared against visa age limits.
	Representative int
	// UpperBound is the oldest age in the band, used for purpose gating.
	UpperBound int
}

// IncomeInfo is the numeric stand-in for an income type.
type IncomeInfo struct {
	Tier   models.IncomeTier
	Annual float64 // THB per year
}

// BudgetThresholds split savings plus one year of income into budget tiers.
type BudgetThresholds struct {
	Medium  float64
	High    float64
	Premium float64
}

// Tier returns the budget tier for the given spendable amount.
func (b BudgetThresholds) Tier(amount float64) models.BudgetTier {
	switch {
	case amount >= b.Premium:
		return models.BudgetTierPremium
	case amount >= b.High:
		return models.BudgetTierHigh
	case amount >= b.Medium:
		return models.BudgetTierMedium
	default:
		return models.BudgetTierLow
	}
}

// DerivationTables translate intake categories into numbers and tiers.
type DerivationTables struct {
	Ages      map[models.AgeBand]AgeBandInfo
	Savings   map[models.SavingsBand]float64
	Incomes   map[models.IncomeType]IncomeInfo
	Durations map[models.DurationBand]models.DurationTier
	Budget    BudgetThresholds
}

// Fallbacks used when intake text is present but unrecognised.
const (
	FallbackAgeBand      = models.AgeBand30To49
	FallbackSavingsBand  = models.SavingsUnder100k
	FallbackIncomeType   = models.IncomeTypeNone
	FallbackLocation     = models.LocationOutside
	FallbackDurationTier = models.DurationTierMedium
)

// PurposeRule blocks a purpose for seekers who cannot reach MinAge.
type PurposeRule struct {
	Purpose models.Purpose
	MinAge  int
	Reason  string
}

// Config is everything tunable about the engine.
type Config struct {
	Weights      Weights
	Bands        ConfidenceBands
	Tables       DerivationTables
	PurposeRules []PurposeRule
	// PrimaryResults is where callers cut the primary set from the overflow.
	PrimaryResults int
}

// DefaultWeights returns the stock weight table.
func DefaultWeights() Weights {
	return Weights{
		DimensionPurposePrimary:     25,
		DimensionPurposeSecondary:   10,
		DimensionBudget:             10,
		DimensionDuration:           10,
		DimensionLocationPayToStay:  15,
		DimensionLocationConversion: 8,
		DimensionLocationStandard:   5,
		DimensionCreative:           5,
		DimensionEase:               5,
	}
}

// DefaultTables returns the stock derivation tables. Money is in Thai baht.
func DefaultTables() DerivationTables {
	return DerivationTables{
		Ages: map[models.AgeBand]AgeBandInfo{
			models.AgeBandUnder30: {Representative: 25, UpperBound: 29},
			models.AgeBand30To49:  {Representative: 40, UpperBound: 49},
			models.AgeBandUnder50: {Representative: 35, UpperBound: 49},
			models.AgeBand50Plus:  {Representative: 55, UpperBound: 120},
		},
		// Lower bound of each band so a threshold is never met optimistically.
		Savings: map[models.SavingsBand]float64{
			models.SavingsUnder100k: 50000,
			models.Savings100kTo500: 100000,
			models.Savings500kTo800: 500000,
			models.Savings800kTo3M:  800000,
			models.Savings3MPlus:    3000000,
		},
		Incomes: map[models.IncomeType]IncomeInfo{
			models.IncomeTypePension:          {Tier: models.IncomeTierMedium, Annual: 600000},
			models.IncomeTypeRemoteEmployment: {Tier: models.IncomeTierHigh, Annual: 1800000},
			models.IncomeTypeBusinessOwner:    {Tier: models.IncomeTierHigh, Annual: 3000000},
			models.IncomeTypeInvestments:      {Tier: models.IncomeTierMedium, Annual: 1000000},
			models.IncomeTypeLocalEmployment:  {Tier: models.IncomeTierLow, Annual: 360000},
			models.IncomeTypeNone:             {Tier: models.IncomeTierLow, Annual: 0},
		},
		Durations: map[models.DurationBand]models.DurationTier{
			models.DurationUnder60:   models.DurationTierShort,
			models.Duration60To180:   models.DurationTierMedium,
			models.Duration180To365:  models.DurationTierLong,
			models.Duration365To5y:   models.DurationTierLong,
			models.Duration5YearPlus: models.DurationTierExtended,
		},
		Budget: BudgetThresholds{
			Medium:  500000,
			High:    1200000,
			Premium: 3500000,
		},
	}
}

// DefaultConfig returns the configuration the engine ships with.
func DefaultConfig() Config {
	return Config{
		Weights: DefaultWeights(),
		Bands:   ConfidenceBands{High: 100, Medium: 80},
		Tables:  DefaultTables(),
		PurposeRules: []PurposeRule{
			{
				Purpose: models.PurposeRetirement,
				MinAge:  50,
				Reason:  "Retirement visas require applicants aged 50 or older",
			},
		},
		PrimaryResults: 3,
	}
}
