package config

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/spf13/viper"

	"visa-eligibility-engine/internal/services/eligibility"
)

// ErrUnknownDimension is returned when an overrides file names a weight the scorer does not know.
var ErrUnknownDimension = errors.New("unknown scoring dimension")

// ScoringOverrides is the shape of the optional scoring file (yaml or json).
//
//	replace_weights: false
//	weights:
//	  purpose_primary: 30
//	confidence_bands:
//	  high: 100
//	  medium: 80
//	primary_results: 3
type ScoringOverrides struct {
	ReplaceWeights bool                         `mapstructure:"replace_weights"`
	Weights        map[string]float64           `mapstructure:"weights"`
	Bands          *eligibility.ConfidenceBands `mapstructure:"confidence_bands"`
	PrimaryResults int                          `mapstructure:"primary_results"`
}

// LoadScoringOverrides reads the overrides file at path.
func LoadScoringOverrides(path string) (*ScoringOverrides, error) {
	v := viper.New()
	v.SetConfigFile(path)

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read scoring config: %w", err)
	}

	var overrides ScoringOverrides
	if err := v.Unmarshal(&overrides); err != nil {
		return nil, fmt.Errorf("failed to unmarshal scoring config: %w", err)
	}

	return &overrides, nil
}

// Apply layers the overrides on top of base and returns the result.
// With ReplaceWeights the file's weights are the whole table, so any
// dimension it leaves out scores zero.
func (o *ScoringOverrides) Apply(base eligibility.Config) (eligibility.Config, error) {
	out := base
	if o.ReplaceWeights {
		out.Weights = eligibility.Weights{}
	} else {
		out.Weights = base.Weights.Clone()
	}

	known := make(map[eligibility.Dimension]bool)
	for _, d := range eligibility.AllDimensions() {
		known[d] = true
	}

	var unknown []string
	for name, weight := range o.Weights {
		d := eligibility.Dimension(strings.ToLower(name))
		if !known[d] {
			unknown = append(unknown, name)
			continue
		}
		out.Weights[d] = weight
	}
	if len(unknown) > 0 {
		sort.Strings(unknown)
		return base, fmt.Errorf("%w: %s", ErrUnknownDimension, strings.Join(unknown, ", "))
	}

	if o.Bands != nil {
		if o.Bands.Medium > o.Bands.High {
			return base, fmt.Errorf("confidence bands: medium %.1f above high %.1f", o.Bands.Medium, o.Bands.High)
		}
		out.Bands = *o.Bands
	}
	if o.PrimaryResults > 0 {
		out.PrimaryResults = o.PrimaryResults
	}

	return out, nil
}

// EngineConfig builds the engine configuration from defaults, env and the optional overrides file.
func (c *Config) EngineConfig() (eligibility.Config, error) {
	cfg := eligibility.DefaultConfig()
	if c.PrimaryResults > 0 {
		cfg.PrimaryResults = c.PrimaryResults
	}

	if c.ScoringConfigFile == "" {
		return cfg, nil
	}

	overrides, err := LoadScoringOverrides(c.ScoringConfigFile)
	if err != nil {
		return cfg, err
	}

	return overrides.Apply(cfg)
}
