package eligibility

import (
	"go.uber.org/zap"

	"visa-eligibility-engine/internal/catalog"
	"visa-eligibility-engine/internal/models"
)

// Engine answers eligibility questions against one catalog.
// It holds no per-call state, so a single Engine serves concurrent requests.
type Engine struct {
	catalog   *catalog.Catalog
	entries   []models.VisaProfile
	config    Config
	logger    *zap.Logger
	onUnknown WarnFunc
}

// Option customizes an Engine.
type Option func(*Engine)

// WithLogger sets the logger used for data-integrity warnings.
func WithLogger(logger *zap.Logger) Option {
	return func(e *Engine) {
		if logger != nil {
			e.logger = logger
		}
	}
}

// WithUnknownValueHook registers a callback for intake text that fell back to a default.
func WithUnknownValueHook(fn WarnFunc) Option {
	return func(e *Engine) {
		e.onUnknown = fn
	}
}

// NewEngine creates an engine over the catalog with the given configuration.
func NewEngine(c *catalog.Catalog, cfg Config, opts ...Option) *Engine {
	e := &Engine{
		catalog: c,
		entries: c.Entries(),
		config:  cfg,
		logger:  zap.NewNop(),
	}
	for _, opt := range opts {
		opt(e)
	}

	for _, d := range cfg.Weights.Missing() {
		e.logger.Warn("Scoring weight not configured, dimension contributes zero",
			zap.String("dimension", string(d)),
		)
	}

	return e
}

// Catalog returns the catalog the engine evaluates.
func (e *Engine) Catalog() *catalog.Catalog {
	return e.catalog
}

// Config returns the engine configuration.
func (e *Engine) Config() Config {
	return e.config
}

// Derive normalizes the intake, reporting unknown categories.
func (e *Engine) Derive(state models.EligibilityState) *models.DerivedProfile {
	return Derive(state, e.config.Tables, e.warn)
}

func (e *Engine) warn(uv *models.UnknownValueError) {
	e.logger.Warn("Unknown intake category, using default",
		zap.String("field", uv.Field),
		zap.String("value", uv.Value),
		zap.Error(uv.Err),
	)
	if e.onUnknown != nil {
		e.onUnknown(uv)
	}
}

// CountEligibleVisas returns how many catalog entries the seeker qualifies for.
func (e *Engine) CountEligibleVisas(state models.EligibilityState) int {
	return len(e.GetEligibleVisas(state))
}

// GetEligibleVisas returns the unscored eligible entries in catalog order.
func (e *Engine) GetEligibleVisas(state models.EligibilityState) []models.VisaProfile {
	profile := e.Derive(state)
	if profile == nil {
		return []models.VisaProfile{}
	}

	eligible := FilterEligible(e.entries, profile)
	for i := range eligible {
		eligible[i] = eligible[i].Clone()
	}
	return eligible
}

// GenerateRecommendations returns the scored, ranked and badged recommendations.
func (e *Engine) GenerateRecommendations(state models.EligibilityState) []models.VisaRecommendation {
	profile := e.Derive(state)
	if profile == nil {
		return []models.VisaRecommendation{}
	}

	recs := Recommend(e.entries, profile, e.config)

	e.logger.Debug("Recommendations generated",
		zap.String("age_band", string(profile.AgeBand)),
		zap.String("purpose", string(profile.Purpose)),
		zap.Int("eligible", len(recs)),
	)

	return recs
}

// IsPurposeDisabled reports whether a purpose is impossible for an age band.
// Unknown purposes or bands are never disabled; the full pipeline decides later.
func (e *Engine) IsPurposeDisabled(purpose, ageBand string) models.PurposeAvailability {
	p, ok := models.ParsePurpose(purpose)
	if !ok {
		return models.PurposeAvailability{}
	}
	band, ok := models.ParseAgeBand(ageBand)
	if !ok {
		return models.PurposeAvailability{}
	}
	info, ok := e.config.Tables.Ages[band]
	if !ok {
		return models.PurposeAvailability{}
	}

	for _, rule := range e.config.PurposeRules {
		if rule.Purpose == p && info.UpperBound < rule.MinAge {
			return models.PurposeAvailability{Disabled: true, Reason: rule.Reason}
		}
	}

	return models.PurposeAvailability{}
}
