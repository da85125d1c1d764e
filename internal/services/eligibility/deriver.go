package eligibility

import (
	"strings"

	"visa-eligibility-engine/internal/models"
)

// WarnFunc receives intake text that fell back to a default category.
type WarnFunc func(*models.UnknownValueError)

// Derive normalizes raw intake answers into a DerivedProfile.
// It returns nil when age band, location, savings band or income type is blank.
// Purpose and duration are optional here; scoring treats them as absent.
func Derive(state models.EligibilityState, tables DerivationTables, warn WarnFunc) *models.DerivedProfile {
	if isBlank(state.AgeBand) || isBlank(state.Location) || isBlank(state.SavingsBand) || isBlank(state.IncomeType) {
		return nil
	}

	report := func(field, value string, err error) {
		if warn != nil {
			warn(&models.UnknownValueError{Field: field, Value: value, Err: err})
		}
	}

	ageBand, ok := models.ParseAgeBand(state.AgeBand)
	if !ok {
		report("age_band", state.AgeBand, models.ErrUnknownAgeBand)
		ageBand = FallbackAgeBand
	}

	savingsBand, ok := models.ParseSavingsBand(state.SavingsBand)
	if !ok {
		report("savings_band", state.SavingsBand, models.ErrUnknownSavingsBand)
		savingsBand = FallbackSavingsBand
	}

	incomeType, ok := models.ParseIncomeType(state.IncomeType)
	if !ok {
		report("income_type", state.IncomeType, models.ErrUnknownIncomeType)
		incomeType = FallbackIncomeType
	}

	location, ok := models.ParseLocation(state.Location)
	if !ok {
		report("location", state.Location, models.ErrUnknownLocation)
		location = FallbackLocation
	}

	var durationTier models.DurationTier
	if !isBlank(state.Duration) {
		band, ok := models.ParseDurationBand(state.Duration)
		if ok {
			durationTier = tables.Durations[band]
		} else {
			report("duration", state.Duration, models.ErrUnknownDuration)
			durationTier = FallbackDurationTier
		}
	}

	var purpose models.Purpose
	if !isBlank(state.Purpose) {
		p, ok := models.ParsePurpose(state.Purpose)
		if ok {
			purpose = p
		} else {
			report("purpose", state.Purpose, models.ErrUnknownPurpose)
		}
	}

	flags := make([]models.Flag, 0, len(state.Flags))
	for _, raw := range state.Flags {
		flag, ok := models.ParseFlag(raw)
		if !ok {
			report("flags", raw, models.ErrUnknownFlag)
			continue
		}
		flags = append(flags, flag)
	}

	age := tables.Ages[ageBand]
	savings := tables.Savings[savingsBand]
	income := tables.Incomes[incomeType]
	if income.Tier == "" {
		income.Tier = models.IncomeTierLow
	}

	profile := &models.DerivedProfile{
		Age:          age.Representative,
		AgeBand:      ageBand,
		Savings:      savings,
		AnnualIncome: income.Annual,
		IncomeTier:   income.Tier,
		Location:     location,
		BudgetTier:   tables.Budget.Tier(savings + income.Annual),
		DurationTier: durationTier,
		Purpose:      purpose,
		Flags:        flags,
	}
	profile.HasLocalSpouse = profile.HasFlag(models.FlagSpouseFamilyPresent)
	profile.HasLocalChild = profile.HasFlag(models.FlagThaiChild)
	profile.HasDependents = profile.HasFlag(models.FlagHasDependents)

	return profile
}

func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}
