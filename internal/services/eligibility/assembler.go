package eligibility

import (
	"sort"

	"visa-eligibility-engine/internal/models"
)

// rankBadges are handed out by position after sorting.
var rankBadges = []string{models.BadgeRecommended, models.BadgeAlternative, models.BadgePremium}

type scoredVisa struct {
	visa  *models.VisaProfile
	score float64
}

// Recommend filters, scores and ranks entries for an already derived profile.
// Entries must be in catalog order; that order is the final tie-break.
func Recommend(entries []models.VisaProfile, profile *models.DerivedProfile, cfg Config) []models.VisaRecommendation {
	if profile == nil {
		return []models.VisaRecommendation{}
	}

	eligible := FilterEligible(entries, profile)

	scored := make([]scoredVisa, len(eligible))
	for i := range eligible {
		scored[i] = scoredVisa{
			visa:  &eligible[i],
			score: Score(&eligible[i], profile, cfg.Weights),
		}
	}

	// Stable: equal score and type keep catalog order.
	sort.SliceStable(scored, func(i, j int) bool {
		if scored[i].score != scored[j].score {
			return scored[i].score > scored[j].score
		}
		return scored[i].visa.Type.Priority() < scored[j].visa.Type.Priority()
	})

	recs := make([]models.VisaRecommendation, len(scored))
	for i, s := range scored {
		recs[i] = models.VisaRecommendation{
			Code:           s.visa.Code,
			Title:          s.visa.Title,
			Score:          s.score,
			Confidence:     ConfidenceFor(s.score, cfg.Bands),
			Rank:           i + 1,
			Type:           s.visa.Type,
			Description:    s.visa.Description,
			Cost:           s.visa.Cost,
			ProcessingTime: s.visa.ProcessingTime,
			Difficulty:     s.visa.Difficulty,
			Reason:         s.visa.Fit.Reason,
			Tradeoff:       s.visa.Fit.Tradeoff,
		}
		if i < len(rankBadges) {
			recs[i].Badge = rankBadges[i]
		}
	}

	return recs
}

// SplitPrimary cuts ranked recommendations into the first n and the rest.
func SplitPrimary(recs []models.VisaRecommendation, n int) (primary, overflow []models.VisaRecommendation) {
	if n < 0 {
		n = 0
	}
	if n > len(recs) {
		n = len(recs)
	}
	return recs[:n:n], recs[n:]
}
