// Package models defines the data structures for the visa eligibility engine.
package models

// Confidence is a display label derived from the score band.
type Confidence string

const (
	ConfidenceHigh   Confidence = "high"
	ConfidenceMedium Confidence = "medium"
	ConfidenceLow    Confidence = "low"
)

// Rank badges, assigned by position in the sorted list.
const (
	BadgeRecommended = "Recommended"
	BadgeAlternative = "Alternative"
	BadgePremium     = "Premium"
)

// VisaRecommendation is a scored, ranked catalog entry for one seeker.
type VisaRecommendation struct {
	Code           string     `json:"code"`
	Title          string     `json:"title"`
	Score          float64    `json:"score"`
	Confidence     Confidence `json:"confidence"`
	Rank           int        `json:"rank"`
	Badge          string     `json:"badge,omitempty"`
	Type           EntryType  `json:"type"`
	Description    string     `json:"description"`
	Cost           string     `json:"cost"`
	ProcessingTime string     `json:"processing_time"`
	Difficulty     Difficulty `json:"difficulty"`
	Reason         string     `json:"reason"`
	Tradeoff       string     `json:"tradeoff"`
}

// PurposeAvailability tells the wizard whether a purpose can be picked.
type PurposeAvailability struct {
	Disabled bool   `json:"disabled"`
	Reason   string `json:"reason,omitempty"`
}
