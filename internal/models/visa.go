// Package models defines the data structures for the visa eligibility engine.
package models

// EntryType is the authoring role of a catalog entry. It breaks score ties.
type EntryType string

const (
	EntryTypeMain        EntryType = "main"
	EntryTypeAlternative EntryType = "alternative"
	EntryTypePremium     EntryType = "premium"
	EntryTypeAdditional  EntryType = "additional"
)

// Priority returns the tie-break rank of the entry type; lower sorts first.
func (e EntryType) Priority() int {
	switch e {
	case EntryTypeMain:
		return 0
	case EntryTypeAlternative:
		return 1
	case EntryTypePremium:
		return 2
	case EntryTypeAdditional:
		return 3
	default:
		return 4
	}
}

// IsValid checks if the entry type is valid.
func (e EntryType) IsValid() bool {
	return e.Priority() < 4
}

// BaseLocation is where an applicant normally has to be to apply.
type BaseLocation string

const (
	BaseLocationInside  BaseLocation = "inside"
	BaseLocationOutside BaseLocation = "outside"
	BaseLocationAny     BaseLocation = "any"
)

// IsValid checks if the base location is valid.
func (b BaseLocation) IsValid() bool {
	return b == BaseLocationInside || b == BaseLocationOutside || b == BaseLocationAny
}

// Matches reports whether an applicant at loc can apply without converting.
func (b BaseLocation) Matches(loc Location) bool {
	switch b {
	case BaseLocationAny:
		return true
	case BaseLocationInside:
		return loc == LocationInside
	case BaseLocationOutside:
		return loc == LocationOutside
	default:
		return false
	}
}

// Difficulty is the declared processing friction of a visa.
type Difficulty string

const (
	DifficultyEasy     Difficulty = "Easy"
	DifficultyModerate Difficulty = "Moderate"
	DifficultyHard     Difficulty = "Hard"
)

// IsValid checks if the difficulty is valid.
func (d Difficulty) IsValid() bool {
	return d == DifficultyEasy || d == DifficultyModerate || d == DifficultyHard
}

// IncomeTier is the coarse income level of a seeker.
type IncomeTier string

const (
	IncomeTierLow    IncomeTier = "low"
	IncomeTierMedium IncomeTier = "medium"
	IncomeTierHigh   IncomeTier = "high"
)

// BudgetTier is what a seeker can spend, or what a visa costs to hold.
type BudgetTier string

const (
	BudgetTierLow     BudgetTier = "low"
	BudgetTierMedium  BudgetTier = "medium"
	BudgetTierHigh    BudgetTier = "high"
	BudgetTierPremium BudgetTier = "premium"
)

// Level returns the ordinal position of the tier, or -1 when unknown.
func (b BudgetTier) Level() int {
	switch b {
	case BudgetTierLow:
		return 0
	case BudgetTierMedium:
		return 1
	case BudgetTierHigh:
		return 2
	case BudgetTierPremium:
		return 3
	default:
		return -1
	}
}

// IsValid checks if the budget tier is valid.
func (b BudgetTier) IsValid() bool {
	return b.Level() >= 0
}

// DurationTier groups intended stay lengths.
type DurationTier string

const (
	DurationTierShort    DurationTier = "short"
	DurationTierMedium   DurationTier = "medium"
	DurationTierLong     DurationTier = "long"
	DurationTierExtended DurationTier = "extended"
)

// IsValid checks if the duration tier is valid.
func (d DurationTier) IsValid() bool {
	switch d {
	case DurationTierShort, DurationTierMedium, DurationTierLong, DurationTierExtended:
		return true
	default:
		return false
	}
}

// Requirements are the hard preconditions of a visa. Zero values mean no requirement.
type Requirements struct {
	MinAge              int     `json:"min_age"`
	MaxAge              int     `json:"max_age,omitempty"`
	MinSavings          float64 `json:"min_savings"`
	MinIncome           float64 `json:"min_income"`
	RequiresLocalSpouse bool    `json:"requires_local_spouse,omitempty"`
	RequiresLocalChild  bool    `json:"requires_local_child,omitempty"`
}

// Fit describes who a visa suits. It only feeds scoring.
type Fit struct {
	PrimaryPurposes   []Purpose      `json:"primary_purposes"`
	SecondaryPurposes []Purpose      `json:"secondary_purposes,omitempty"`
	DurationTiers     []DurationTier `json:"duration_tiers"`
	BudgetTier        BudgetTier     `json:"budget_tier"`
	CreativeAngles    []Flag         `json:"creative_angles,omitempty"`
	Reason            string         `json:"reason"`
	Tradeoff          string         `json:"tradeoff"`
}

// VisaProfile is a catalog entry. It is never mutated once the catalog is built.
type VisaProfile struct {
	Code           string       `json:"code"`
	Title          string       `json:"title"`
	Badge          string       `json:"badge,omitempty"`
	Description    string       `json:"description"`
	Cost           string       `json:"cost"`
	ProcessingTime string       `json:"processing_time"`
	Difficulty     Difficulty   `json:"difficulty"`
	Type           EntryType    `json:"type"`
	BaseScore      float64      `json:"base_score"`
	PayToStay      bool         `json:"pay_to_stay"`
	BaseLocation   BaseLocation `json:"base_location"`
	// Convertible means applicants in the other location class can still reach
	// this visa by an in-country conversion or a border run.
	Convertible  bool         `json:"convertible"`
	Tourist      bool         `json:"tourist,omitempty"`
	Excluded     bool         `json:"excluded,omitempty"`
	Requirements Requirements `json:"requirements"`
	Fit          Fit          `json:"fit"`
}

// Hidden reports whether the entry must never be offered.
func (v *VisaProfile) Hidden() bool {
	return v.Excluded || v.Tourist
}

// Clone returns a deep copy of the entry.
func (v VisaProfile) Clone() VisaProfile {
	c := v
	c.Fit.PrimaryPurposes = append([]Purpose(nil), v.Fit.PrimaryPurposes...)
	c.Fit.SecondaryPurposes = append([]Purpose(nil), v.Fit.SecondaryPurposes...)
	c.Fit.DurationTiers = append([]DurationTier(nil), v.Fit.DurationTiers...)
	c.Fit.CreativeAngles = append([]Flag(nil), v.Fit.CreativeAngles...)
	return c
}

// HasPrimaryPurpose checks the primary purposes list.
func (v *VisaProfile) HasPrimaryPurpose(p Purpose) bool {
	for _, purpose := range v.Fit.PrimaryPurposes {
		if purpose == p {
			return true
		}
	}
	return false
}

// HasSecondaryPurpose checks the secondary purposes list.
func (v *VisaProfile) HasSecondaryPurpose(p Purpose) bool {
	for _, purpose := range v.Fit.SecondaryPurposes {
		if purpose == p {
			return true
		}
	}
	return false
}

// SuitsDuration checks whether the visa covers the given stay length.
func (v *VisaProfile) SuitsDuration(d DurationTier) bool {
	for _, tier := range v.Fit.DurationTiers {
		if tier == d {
			return true
		}
	}
	return false
}

// DerivedProfile is the normalized form of an EligibilityState.
type DerivedProfile struct {
	Age            int          `json:"age"`
	AgeBand        AgeBand      `json:"age_band"`
	Savings        float64      `json:"savings"`
	AnnualIncome   float64      `json:"annual_income"`
	IncomeTier     IncomeTier   `json:"income_tier"`
	Location       Location     `json:"location"`
	HasLocalSpouse bool         `json:"has_local_spouse"`
	HasLocalChild  bool         `json:"has_local_child"`
	HasDependents  bool         `json:"has_dependents"`
	BudgetTier     BudgetTier   `json:"budget_tier"`
	DurationTier   DurationTier `json:"duration_tier"`
	// Purpose is empty when the seeker has not picked one yet.
	Purpose Purpose `json:"purpose,omitempty"`
	Flags   []Flag  `json:"flags,omitempty"`
}

// HasFlag checks whether the seeker set the given flag.
func (p *DerivedProfile) HasFlag(f Flag) bool {
	for _, flag := range p.Flags {
		if flag == f {
			return true
		}
	}
	return false
}
