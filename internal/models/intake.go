// Package models defines the data structures for the visa eligibility engine.
package models

// AgeBand is the self-reported age bracket of a seeker.
type AgeBand string

const (
	AgeBandUnder30 AgeBand = "Under 30"
	AgeBand30To49  AgeBand = "30-49"
	AgeBandUnder50 AgeBand = "Under 50"
	AgeBand50Plus  AgeBand = "50+"
)

// ValidAgeBands returns all valid age band values.
func ValidAgeBands() []AgeBand {
	return []AgeBand{AgeBandUnder30, AgeBand30To49, AgeBandUnder50, AgeBand50Plus}
}

// IsValid checks if the age band is valid.
func (a AgeBand) IsValid() bool {
	for _, valid := range ValidAgeBands() {
		if a == valid {
			return true
		}
	}
	return false
}

// Purpose is the main reason a seeker wants to stay in Thailand.
type Purpose string

const (
	PurposeRetirement Purpose = "retirement"
	PurposeRemoteWork Purpose = "remote_work"
	PurposeLongStay   Purpose = "long_stay"
	PurposeFamily     Purpose = "family"
	PurposeStudy      Purpose = "study"
	PurposeBusiness   Purpose = "business"
	PurposeInvestment Purpose = "investment"
	PurposeWellness   Purpose = "wellness"
	PurposeTourism    Purpose = "tourism"
)

// ValidPurposes returns all valid purpose values.
func ValidPurposes() []Purpose {
	return []Purpose{
		PurposeRetirement,
		PurposeRemoteWork,
		PurposeLongStay,
		PurposeFamily,
		PurposeStudy,
		PurposeBusiness,
		PurposeInvestment,
		PurposeWellness,
		PurposeTourism,
	}
}

// IsValid checks if the purpose is valid.
func (p Purpose) IsValid() bool {
	for _, valid := range ValidPurposes() {
		if p == valid {
			return true
		}
	}
	return false
}

// IncomeType is the seeker's main source of income.
type IncomeType string

const (
	IncomeTypePension          IncomeType = "Pension"
	IncomeTypeRemoteEmployment IncomeType = "Remote employment"
	IncomeTypeBusinessOwner    IncomeType = "Business owner"
	IncomeTypeInvestments      IncomeType = "Investments"
	IncomeTypeLocalEmployment  IncomeType = "Local employment"
	IncomeTypeNone             IncomeType = "No income"
)

// ValidIncomeTypes returns all valid income type values.
func ValidIncomeTypes() []IncomeType {
	return []IncomeType{
		IncomeTypePension,
		IncomeTypeRemoteEmployment,
		IncomeTypeBusinessOwner,
		IncomeTypeInvestments,
		IncomeTypeLocalEmployment,
		IncomeTypeNone,
	}
}

// IsValid checks if the income type is valid.
func (i IncomeType) IsValid() bool {
	for _, valid := range ValidIncomeTypes() {
		if i == valid {
			return true
		}
	}
	return false
}

// SavingsBand is the self-reported savings bracket, in Thai baht.
type SavingsBand string

const (
	SavingsUnder100k SavingsBand = "under_100k"
	Savings100kTo500 SavingsBand = "100k_500k"
	Savings500kTo800 SavingsBand = "500k_800k"
	Savings800kTo3M  SavingsBand = "800k_3M"
	Savings3MPlus    SavingsBand = "3M_plus"
)

// ValidSavingsBands returns all savings bands, lowest first.
func ValidSavingsBands() []SavingsBand {
	return []SavingsBand{SavingsUnder100k, Savings100kTo500, Savings500kTo800, Savings800kTo3M, Savings3MPlus}
}

// IsValid checks if the savings band is valid.
func (s SavingsBand) IsValid() bool {
	for _, valid := range ValidSavingsBands() {
		if s == valid {
			return true
		}
	}
	return false
}

// Location is where the seeker is right now relative to Thailand.
type Location string

const (
	LocationInside  Location = "Inside Thailand"
	LocationOutside Location = "Outside Thailand"
)

// ValidLocations returns all valid location values.
func ValidLocations() []Location {
	return []Location{LocationInside, LocationOutside}
}

// IsValid checks if the location is valid.
func (l Location) IsValid() bool {
	return l == LocationInside || l == LocationOutside
}

// Opposite returns the other location class.
func (l Location) Opposite() Location {
	if l == LocationInside {
		return LocationOutside
	}
	return LocationInside
}

// DurationBand is how long the seeker intends to stay.
type DurationBand string

const (
	DurationUnder60   DurationBand = "under_60"
	Duration60To180   DurationBand = "60_180"
	Duration180To365  DurationBand = "180_365"
	Duration365To5y   DurationBand = "365_5y"
	Duration5YearPlus DurationBand = "5y_plus"
)

// ValidDurationBands returns all duration bands, shortest first.
func ValidDurationBands() []DurationBand {
	return []DurationBand{DurationUnder60, Duration60To180, Duration180To365, Duration365To5y, Duration5YearPlus}
}

// IsValid checks if the duration band is valid.
func (d DurationBand) IsValid() bool {
	for _, valid := range ValidDurationBands() {
		if d == valid {
			return true
		}
	}
	return false
}

// Flag is an auxiliary yes/no answer from the intake wizard.
type Flag string

const (
	FlagSpouseFamilyPresent Flag = "spouse_family_present"
	FlagThaiChild           Flag = "thai_child"
	FlagHasDependents       Flag = "has_dependents"
	FlagMuayThai            Flag = "muay_thai"
	FlagThaiCooking         Flag = "thai_cooking"
	FlagWellnessRetreat     Flag = "wellness_retreat"
	FlagFreelance           Flag = "freelance"
)

// ValidFlags returns all valid flag values.
func ValidFlags() []Flag {
	return []Flag{
		FlagSpouseFamilyPresent,
		FlagThaiChild,
		FlagHasDependents,
		FlagMuayThai,
		FlagThaiCooking,
		FlagWellnessRetreat,
		FlagFreelance,
	}
}

// IsValid checks if the flag is valid.
func (f Flag) IsValid() bool {
	for _, valid := range ValidFlags() {
		if f == valid {
			return true
		}
	}
	return false
}

// CurrentVisa describes the visa a seeker already holds when resident.
type CurrentVisa struct {
	Type          string `json:"type"`
	ExpiresInDays int    `json:"expires_in_days,omitempty"`
}

// EligibilityState holds the raw intake answers exactly as the wizard sent them.
// Every field is free text until the deriver parses it.
type EligibilityState struct {
	AgeBand     string       `json:"age_band"`
	Purpose     string       `json:"purpose"`
	Nationality string       `json:"nationality,omitempty"`
	IncomeType  string       `json:"income_type"`
	SavingsBand string       `json:"savings_band"`
	Location    string       `json:"location"`
	Duration    string       `json:"duration"`
	Flags       []string     `json:"flags,omitempty"`
	CurrentVisa *CurrentVisa `json:"current_visa,omitempty"`
}
