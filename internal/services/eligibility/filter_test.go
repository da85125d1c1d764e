package eligibility_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"visa-eligibility-engine/internal/models"
	"visa-eligibility-engine/internal/services/eligibility"
)

func testVisa() models.VisaProfile {
	return models.VisaProfile{
		Code:         "TEST",
		Title:        "Test visa",
		Difficulty:   models.DifficultyModerate,
		Type:         models.EntryTypeMain,
		BaseScore:    50,
		BaseLocation: models.BaseLocationAny,
		Requirements: models.Requirements{MinAge: 20},
		Fit: models.Fit{
			PrimaryPurposes: []models.Purpose{models.PurposeLongStay},
			DurationTiers:   []models.DurationTier{models.DurationTierLong},
			BudgetTier:      models.BudgetTierMedium,
		},
	}
}

func testProfile() *models.DerivedProfile {
	return &models.DerivedProfile{
		Age:          40,
		AgeBand:      models.AgeBand30To49,
		Savings:      500000,
		AnnualIncome: 600000,
		IncomeTier:   models.IncomeTierMedium,
		Location:     models.LocationOutside,
		BudgetTier:   models.BudgetTierMedium,
		DurationTier: models.DurationTierLong,
		Purpose:      models.PurposeLongStay,
	}
}

func TestIsEligible(t *testing.T) {
	tests := []struct {
		name     string
		visa     func(*models.VisaProfile)
		profile  func(*models.DerivedProfile)
		expected bool
	}{
		{"baseline", nil, nil, true},
		{"tourist hidden", func(v *models.VisaProfile) { v.Tourist = true }, nil, false},
		{"excluded hidden", func(v *models.VisaProfile) { v.Excluded = true }, nil, false},
		{"too young", func(v *models.VisaProfile) { v.Requirements.MinAge = 50 }, nil, false},
		{"too old", func(v *models.VisaProfile) { v.Requirements.MaxAge = 35 }, nil, false},
		{"max age zero means none", func(v *models.VisaProfile) { v.Requirements.MaxAge = 0 }, func(p *models.DerivedProfile) { p.Age = 99 }, true},
		{"age equal to minimum", func(v *models.VisaProfile) { v.Requirements.MinAge = 40 }, nil, true},
		{"location mismatch without conversion", func(v *models.VisaProfile) {
			v.BaseLocation = models.BaseLocationInside
			v.Convertible = false
		}, nil, false},
		{"location mismatch with conversion", func(v *models.VisaProfile) {
			v.BaseLocation = models.BaseLocationInside
			v.Convertible = true
		}, nil, true},
		{"savings short", func(v *models.VisaProfile) { v.Requirements.MinSavings = 800000 }, nil, false},
		{"savings exact", func(v *models.VisaProfile) { v.Requirements.MinSavings = 500000 }, nil, true},
		{"income short", func(v *models.VisaProfile) { v.Requirements.MinIncome = 1000000 }, nil, false},
		{"spouse required", func(v *models.VisaProfile) { v.Requirements.RequiresLocalSpouse = true }, nil, false},
		{"spouse present", func(v *models.VisaProfile) { v.Requirements.RequiresLocalSpouse = true },
			func(p *models.DerivedProfile) { p.HasLocalSpouse = true }, true},
		{"child required", func(v *models.VisaProfile) { v.Requirements.RequiresLocalChild = true }, nil, false},
		{"child present", func(v *models.VisaProfile) { v.Requirements.RequiresLocalChild = true },
			func(p *models.DerivedProfile) { p.HasLocalChild = true }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			visa := testVisa()
			if tt.visa != nil {
				tt.visa(&visa)
			}
			profile := testProfile()
			if tt.profile != nil {
				tt.profile(profile)
			}
			assert.Equal(t, tt.expected, eligibility.IsEligible(&visa, profile))
		})
	}
}

func TestIsEligible_NilInputs(t *testing.T) {
	visa := testVisa()
	assert.False(t, eligibility.IsEligible(&visa, nil))
	assert.False(t, eligibility.IsEligible(nil, testProfile()))
}

func TestFilterEligible_KeepsInputOrder(t *testing.T) {
	a, b, c := testVisa(), testVisa(), testVisa()
	a.Code, b.Code, c.Code = "A", "B", "C"
	b.Requirements.MinSavings = 10000000

	got := eligibility.FilterEligible([]models.VisaProfile{c, b, a}, testProfile())

	assert.Len(t, got, 2)
	assert.Equal(t, "C", got[0].Code)
	assert.Equal(t, "A", got[1].Code)
}

func TestFilterEligible_NilProfile(t *testing.T) {
	got := eligibility.FilterEligible([]models.VisaProfile{testVisa()}, nil)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}
