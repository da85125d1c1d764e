// Package models defines the data structures for the visa eligibility engine.
package models

import (
	"errors"
	"fmt"
	"strings"
)

// Common errors
var (
	ErrUnknownAgeBand     = errors.New("unknown age band")
	ErrUnknownPurpose     = errors.New("unknown purpose")
	ErrUnknownIncomeType  = errors.New("unknown income type")
	ErrUnknownSavingsBand = errors.New("unknown savings band")
	ErrUnknownLocation    = errors.New("unknown location")
	ErrUnknownDuration    = errors.New("unknown duration band")
	ErrUnknownFlag        = errors.New("unknown flag")
)

// UnknownValueError reports intake text that matched no known category.
type UnknownValueError struct {
	Field string
	Value string
	Err   error
}

func (e *UnknownValueError) Error() string {
	return fmt.Sprintf("%s: %q", e.Err, e.Value)
}

func (e *UnknownValueError) Unwrap() error {
	return e.Err
}

// normalizeKey lowercases and folds separators so "Self-Employed" and "self employed" compare equal.
// Slashes fold too, so "spouse/family present" reads as spouse_family_present.
func normalizeKey(s string) string {
	normalized := strings.ToLower(strings.TrimSpace(s))
	normalized = strings.Join(strings.Fields(normalized), "_")
	normalized = strings.ReplaceAll(normalized, "-", "_")
	normalized = strings.ReplaceAll(normalized, "/", "_")
	return normalized
}

var ageBandAliases = map[string]AgeBand{
	"under_30": AgeBandUnder30,
	"<30":      AgeBandUnder30,
	"18_29":    AgeBandUnder30,
	"30_49":    AgeBand30To49,
	"under_50": AgeBandUnder50,
	"<50":      AgeBandUnder50,
	"50+":      AgeBand50Plus,
	"50_plus":  AgeBand50Plus,
	"over_50":  AgeBand50Plus,
}

// ParseAgeBand maps wizard text to an AgeBand.
func ParseAgeBand(s string) (AgeBand, bool) {
	band, ok := ageBandAliases[normalizeKey(s)]
	return band, ok
}

var purposeAliases = map[string]Purpose{
	"retirement":     PurposeRetirement,
	"retire":         PurposeRetirement,
	"remote_work":    PurposeRemoteWork,
	"digital_nomad":  PurposeRemoteWork,
	"remote":         PurposeRemoteWork,
	"long_stay":      PurposeLongStay,
	"lifestyle":      PurposeLongStay,
	"family":         PurposeFamily,
	"marriage":       PurposeFamily,
	"study":          PurposeStudy,
	"education":      PurposeStudy,
	"business":       PurposeBusiness,
	"work":           PurposeBusiness,
	"investment":     PurposeInvestment,
	"invest":         PurposeInvestment,
	"wellness":       PurposeWellness,
	"soft_power":     PurposeWellness,
	"tourism":        PurposeTourism,
	"tourist":        PurposeTourism,
	"holiday":        PurposeTourism,
	"vacation":       PurposeTourism,
	"medical":        PurposeWellness,
	"muay_thai":      PurposeWellness,
	"long_term_stay": PurposeLongStay,
}

// ParsePurpose maps wizard text to a Purpose.
func ParsePurpose(s string) (Purpose, bool) {
	purpose, ok := purposeAliases[normalizeKey(s)]
	return purpose, ok
}

var incomeTypeAliases = map[string]IncomeType{
	"pension":           IncomeTypePension,
	"pensioner":         IncomeTypePension,
	"retired":           IncomeTypePension,
	"remote_employment": IncomeTypeRemoteEmployment,
	"remote":            IncomeTypeRemoteEmployment,
	"remote_employee":   IncomeTypeRemoteEmployment,
	"freelance":         IncomeTypeRemoteEmployment,
	"business_owner":    IncomeTypeBusinessOwner,
	"business":          IncomeTypeBusinessOwner,
	"self_employed":     IncomeTypeBusinessOwner,
	"investments":       IncomeTypeInvestments,
	"investment":        IncomeTypeInvestments,
	"passive":           IncomeTypeInvestments,
	"local_employment":  IncomeTypeLocalEmployment,
	"local_job":         IncomeTypeLocalEmployment,
	"no_income":         IncomeTypeNone,
	"none":              IncomeTypeNone,
	"savings_only":      IncomeTypeNone,
}

// ParseIncomeType maps wizard text to an IncomeType.
func ParseIncomeType(s string) (IncomeType, bool) {
	income, ok := incomeTypeAliases[normalizeKey(s)]
	return income, ok
}

var savingsBandAliases = map[string]SavingsBand{
	"under_100k": SavingsUnder100k,
	"<100k":      SavingsUnder100k,
	"100k_500k":  Savings100kTo500,
	"500k_800k":  Savings500kTo800,
	"800k_3m":    Savings800kTo3M,
	"3m_plus":    Savings3MPlus,
	"3m+":        Savings3MPlus,
	"over_3m":    Savings3MPlus,
}

// ParseSavingsBand maps wizard text to a SavingsBand.
func ParseSavingsBand(s string) (SavingsBand, bool) {
	band, ok := savingsBandAliases[normalizeKey(s)]
	return band, ok
}

var locationAliases = map[string]Location{
	"inside_thailand":  LocationInside,
	"inside":           LocationInside,
	"in_thailand":      LocationInside,
	"outside_thailand": LocationOutside,
	"outside":          LocationOutside,
	"abroad":           LocationOutside,
}

// ParseLocation maps wizard text to a Location.
func ParseLocation(s string) (Location, bool) {
	loc, ok := locationAliases[normalizeKey(s)]
	return loc, ok
}

var durationAliases = map[string]DurationBand{
	"under_60":  DurationUnder60,
	"<60":       DurationUnder60,
	"60_180":    Duration60To180,
	"180_365":   Duration180To365,
	"365_5y":    Duration365To5y,
	"1y_5y":     Duration365To5y,
	"5y_plus":   Duration5YearPlus,
	"5y+":       Duration5YearPlus,
	"permanent": Duration5YearPlus,
}

// ParseDurationBand maps wizard text to a DurationBand.
func ParseDurationBand(s string) (DurationBand, bool) {
	band, ok := durationAliases[normalizeKey(s)]
	return band, ok
}

var flagAliases = map[string]Flag{
	"spouse_family_present": FlagSpouseFamilyPresent,
	"thai_spouse":           FlagSpouseFamilyPresent,
	"spouse":                FlagSpouseFamilyPresent,
	"thai_child":            FlagThaiChild,
	"child_thai":            FlagThaiChild,
	"has_dependents":        FlagHasDependents,
	"dependents":            FlagHasDependents,
	"muay_thai":             FlagMuayThai,
	"thai_cooking":          FlagThaiCooking,
	"cooking":               FlagThaiCooking,
	"wellness_retreat":      FlagWellnessRetreat,
	"wellness":              FlagWellnessRetreat,
	"freelance":             FlagFreelance,
	"freelancer":            FlagFreelance,
}

// ParseFlag maps wizard text to a Flag.
func ParseFlag(s string) (Flag, bool) {
	flag, ok := flagAliases[normalizeKey(s)]
	return flag, ok
}
