// Package catalog holds the read-only registry of visa products.
package catalog

import (
	"errors"
	"fmt"

	"visa-eligibility-engine/internal/models"
)

// Catalog errors
var (
	ErrInvalidCatalog = errors.New("invalid catalog")
	ErrEmptyCatalog   = errors.New("catalog has no entries")
	ErrDuplicateCode  = errors.New("duplicate visa code")
	ErrInvalidEntry   = errors.New("invalid catalog entry")
)

// Catalog is an immutable, ordered set of visa profiles.
// It is safe for concurrent use because nothing can modify it after New.
type Catalog struct {
	entries []models.VisaProfile
	index   map[string]int
}

// New validates entries and builds a catalog from private copies of them.
func New(entries []models.VisaProfile) (*Catalog, error) {
	if len(entries) == 0 {
		return nil, ErrEmptyCatalog
	}

	c := &Catalog{
		entries: make([]models.VisaProfile, 0, len(entries)),
		index:   make(map[string]int, len(entries)),
	}

	for i, entry := range entries {
		if err := validateEntry(&entry); err != nil {
			return nil, fmt.Errorf("entry %d (%s): %w", i, entry.Code, err)
		}
		if _, exists := c.index[entry.Code]; exists {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateCode, entry.Code)
		}
		c.index[entry.Code] = len(c.entries)
		c.entries = append(c.entries, entry.Clone())
	}

	return c, nil
}

// Len returns the number of entries, hidden ones included.
func (c *Catalog) Len() int {
	return len(c.entries)
}

// Entries returns deep copies of every entry in authoring order.
func (c *Catalog) Entries() []models.VisaProfile {
	out := make([]models.VisaProfile, len(c.entries))
	for i, entry := range c.entries {
		out[i] = entry.Clone()
	}
	return out
}

// Lookup returns a copy of the entry with the given code.
func (c *Catalog) Lookup(code string) (models.VisaProfile, bool) {
	i, ok := c.index[code]
	if !ok {
		return models.VisaProfile{}, false
	}
	return c.entries[i].Clone(), true
}

// validateEntry checks the fields the engine relies on.
func validateEntry(v *models.VisaProfile) error {
	if v.Code == "" {
		return fmt.Errorf("%w: code is required", ErrInvalidEntry)
	}
	if v.Title == "" {
		return fmt.Errorf("%w: title is required", ErrInvalidEntry)
	}
	if !v.Type.IsValid() {
		return fmt.Errorf("%w: unknown type %q", ErrInvalidEntry, v.Type)
	}
	if !v.Difficulty.IsValid() {
		return fmt.Errorf("%w: unknown difficulty %q", ErrInvalidEntry, v.Difficulty)
	}
	if !v.BaseLocation.IsValid() {
		return fmt.Errorf("%w: unknown base location %q", ErrInvalidEntry, v.BaseLocation)
	}
	if !v.Fit.BudgetTier.IsValid() {
		return fmt.Errorf("%w: unknown budget tier %q", ErrInvalidEntry, v.Fit.BudgetTier)
	}

	req := v.Requirements
	if req.MinAge < 0 || req.MaxAge < 0 {
		return fmt.Errorf("%w: ages cannot be negative", ErrInvalidEntry)
	}
	if req.MaxAge > 0 && req.MaxAge < req.MinAge {
		return fmt.Errorf("%w: max age %d below min age %d", ErrInvalidEntry, req.MaxAge, req.MinAge)
	}
	if req.MinSavings < 0 || req.MinIncome < 0 {
		return fmt.Errorf("%w: money thresholds cannot be negative", ErrInvalidEntry)
	}

	for _, p := range append(append([]models.Purpose{}, v.Fit.PrimaryPurposes...), v.Fit.SecondaryPurposes...) {
		if !p.IsValid() {
			return fmt.Errorf("%w: unknown purpose %q", ErrInvalidEntry, p)
		}
	}
	for _, d := range v.Fit.DurationTiers {
		if !d.IsValid() {
			return fmt.Errorf("%w: unknown duration tier %q", ErrInvalidEntry, d)
		}
	}
	for _, f := range v.Fit.CreativeAngles {
		if !f.IsValid() {
			return fmt.Errorf("%w: unknown creative angle %q", ErrInvalidEntry, f)
		}
	}

	return nil
}
