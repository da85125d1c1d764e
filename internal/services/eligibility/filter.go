package eligibility

import "visa-eligibility-engine/internal/models"

// IsEligible applies the hard requirements of a visa in a fixed order.
// The first failing check rejects the visa.
func IsEligible(visa *models.VisaProfile, profile *models.DerivedProfile) bool {
	if visa == nil || profile == nil {
		return false
	}

	// Rule 1: hidden entries never surface
	if visa.Hidden() {
		return false
	}

	// Rule 2: age window
	req := visa.Requirements
	if profile.Age < req.MinAge {
		return false
	}
	if req.MaxAge > 0 && profile.Age > req.MaxAge {
		return false
	}

	// Rule 3: location only filters when there is no conversion path
	if !visa.BaseLocation.Matches(profile.Location) && !visa.Convertible {
		return false
	}

	// Rule 4: savings
	if profile.Savings < req.MinSavings {
		return false
	}

	// Rule 5: income
	if profile.AnnualIncome < req.MinIncome {
		return false
	}

	// Rule 6: relationships
	if req.RequiresLocalSpouse && !profile.HasLocalSpouse {
		return false
	}
	if req.RequiresLocalChild && !profile.HasLocalChild {
		return false
	}

	return true
}

// FilterEligible keeps the entries the profile qualifies for, in input order.
func FilterEligible(entries []models.VisaProfile, profile *models.DerivedProfile) []models.VisaProfile {
	eligible := make([]models.VisaProfile, 0, len(entries))
	if profile == nil {
		return eligible
	}

	for i := range entries {
		if IsEligible(&entries[i], profile) {
			eligible = append(eligible, entries[i])
		}
	}

	return eligible
}
