package eligibility

import "visa-eligibility-engine/internal/models"

// Score computes the soft-fit score of a visa that already passed IsEligible.
//
//	score = base + purpose + budget*closeness + duration + location + creative + ease*easeFactor
//
// Each term is independent; a weight missing from w contributes nothing.
func Score(visa *models.VisaProfile, profile *models.DerivedProfile, w Weights) float64 {
	score := visa.BaseScore

	// Purpose fit
	if profile.Purpose != "" {
		if visa.HasPrimaryPurpose(profile.Purpose) {
			score += w.Get(DimensionPurposePrimary)
		} else if visa.HasSecondaryPurpose(profile.Purpose) {
			score += w.Get(DimensionPurposeSecondary)
		}
	}

	// Budget fit
	score += w.Get(DimensionBudget) * budgetCloseness(profile.BudgetTier, visa.Fit.BudgetTier)

	// Duration fit
	if profile.DurationTier != "" && visa.SuitsDuration(profile.DurationTier) {
		score += w.Get(DimensionDuration)
	}

	// Location fit
	score += w.Get(locationDimension(visa, profile.Location))

	// Creative angle
	for _, angle := range visa.Fit.CreativeAngles {
		if profile.HasFlag(angle) {
			score += w.Get(DimensionCreative)
			break
		}
	}

	// Ease
	score += w.Get(DimensionEase) * easeFactor(visa.Difficulty)

	return score
}

// budgetCloseness is 1 for the same tier, 0.5 for a neighbouring tier and 0 otherwise.
func budgetCloseness(seeker, visa models.BudgetTier) float64 {
	a, b := seeker.Level(), visa.Level()
	if a < 0 || b < 0 {
		return 0
	}

	switch diff := a - b; {
	case diff == 0:
		return 1
	case diff == 1 || diff == -1:
		return 0.5
	default:
		return 0
	}
}

// locationDimension picks the location weight. A mismatch that needs a
// conversion never outranks a direct match of the same entry.
func locationDimension(visa *models.VisaProfile, loc models.Location) Dimension {
	if !visa.PayToStay {
		return DimensionLocationStandard
	}
	if !visa.BaseLocation.Matches(loc) {
		// Eligible despite the mismatch means a conversion path exists.
		return DimensionLocationConversion
	}
	return DimensionLocationPayToStay
}

func easeFactor(d models.Difficulty) float64 {
	switch d {
	case models.DifficultyEasy:
		return 1
	case models.DifficultyModerate:
		return 0.5
	default:
		return 0
	}
}

// ConfidenceFor maps a score onto its display band.
func ConfidenceFor(score float64, bands ConfidenceBands) models.Confidence {
	switch {
	case score >= bands.High:
		return models.ConfidenceHigh
	case score >= bands.Medium:
		return models.ConfidenceMedium
	default:
		return models.ConfidenceLow
	}
}
