// Package handlers exposes the eligibility engine over HTTP, API Gateway and S3 events.
package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"visa-eligibility-engine/internal/metrics"
	"visa-eligibility-engine/internal/models"
	"visa-eligibility-engine/internal/services/eligibility"
	"visa-eligibility-engine/internal/utils"
)

// Operation names used in logs and metrics.
const (
	OpCount           = "count"
	OpVisas           = "visas"
	OpRecommendations = "recommendations"
	OpPurposes        = "purposes"
	OpCatalog         = "catalog"
)

// Request outcomes.
const (
	OutcomeOK      = "ok"
	OutcomeInvalid = "invalid"
)

var errEmptyBody = errors.New("request body is empty")

// Response represents a standard API response
type Response struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
}

// CountResponse carries the number of eligible visas.
type CountResponse struct {
	Count int `json:"count"`
}

// VisasResponse lists the eligible catalog entries, unscored, in catalog order.
type VisasResponse struct {
	Count int                  `json:"count"`
	Visas []models.VisaProfile `json:"visas"`
}

// RecommendationsResponse is the ranked list and its primary/overflow split.
type RecommendationsResponse struct {
	RequestID       string                      `json:"request_id"`
	Count           int                         `json:"count"`
	Recommendations []models.VisaRecommendation `json:"recommendations"`
	Primary         []models.VisaRecommendation `json:"primary"`
	Overflow        []models.VisaRecommendation `json:"overflow"`
}

// PurposeResponse reports whether a purpose is selectable for an age band.
type PurposeResponse struct {
	Purpose  string `json:"purpose"`
	AgeBand  string `json:"age_band"`
	Disabled bool   `json:"disabled"`
	Reason   string `json:"reason,omitempty"`
}

// CatalogResponse describes the loaded catalog.
type CatalogResponse struct {
	Source  string               `json:"source"`
	Size    int                  `json:"size"`
	Entries []models.VisaProfile `json:"entries"`
}

// ServiceInfo identifies the running deployment in health output.
type ServiceInfo struct {
	Source  string
	Version string
	Stage   string
}

// API implements every eligibility operation independent of transport.
type API struct {
	engine  *eligibility.Engine
	metrics *metrics.Metrics
	info    ServiceInfo
}

// NewAPI creates the transport-independent API. m may be nil.
func NewAPI(engine *eligibility.Engine, m *metrics.Metrics, info ServiceInfo) *API {
	return &API{engine: engine, metrics: m, info: info}
}

// Engine returns the engine the API evaluates with.
func (a *API) Engine() *eligibility.Engine {
	return a.engine
}

// decodeState parses an intake body. Unknown fields are ignored; the
// pipeline treats missing answers as an incomplete intake.
func decodeState(body []byte) (models.EligibilityState, error) {
	var state models.EligibilityState
	if len(strings.TrimSpace(string(body))) == 0 {
		return state, errEmptyBody
	}
	if err := json.Unmarshal(body, &state); err != nil {
		return state, err
	}
	return state, nil
}

func (a *API) invalid(op string, err error) (int, Response) {
	a.metrics.IncrementRequest(op, OutcomeInvalid)
	utils.GetLogger().Debug("Rejected request body",
		zap.String("operation", op),
		zap.Error(err),
	)
	return http.StatusBadRequest, Response{
		Success: false,
		Error:   "Invalid request body",
	}
}

func (a *API) observe(op string, start time.Time, eligible int) {
	a.metrics.IncrementRequest(op, OutcomeOK)
	a.metrics.ObserveEvaluateLatency(op, time.Since(start))
	a.metrics.ObserveEligible(eligible)
}

// Count handles the eligible-count operation.
func (a *API) Count(body []byte) (int, Response) {
	state, err := decodeState(body)
	if err != nil {
		return a.invalid(OpCount, err)
	}

	start := time.Now()
	count := a.engine.CountEligibleVisas(state)
	a.observe(OpCount, start, count)

	return http.StatusOK, Response{Success: true, Data: CountResponse{Count: count}}
}

// Visas handles the eligible-list operation.
func (a *API) Visas(body []byte) (int, Response) {
	state, err := decodeState(body)
	if err != nil {
		return a.invalid(OpVisas, err)
	}

	start := time.Now()
	visas := a.engine.GetEligibleVisas(state)
	a.observe(OpVisas, start, len(visas))

	return http.StatusOK, Response{Success: true, Data: VisasResponse{Count: len(visas), Visas: visas}}
}

// Recommendations handles the ranked-recommendation operation.
// requestID may be empty, in which case a new one is generated.
func (a *API) Recommendations(body []byte, requestID string) (int, Response) {
	state, err := decodeState(body)
	if err != nil {
		return a.invalid(OpRecommendations, err)
	}
	if requestID == "" {
		requestID = uuid.NewString()
	}

	start := time.Now()
	recs := a.engine.GenerateRecommendations(state)
	a.observe(OpRecommendations, start, len(recs))

	primary, overflow := eligibility.SplitPrimary(recs, a.engine.Config().PrimaryResults)

	utils.GetLogger().Info("Recommendations served",
		zap.String("request_id", requestID),
		zap.Int("eligible", len(recs)),
		zap.Duration("elapsed", time.Since(start)),
	)

	return http.StatusOK, Response{
		Success: true,
		Data: RecommendationsResponse{
			RequestID:       requestID,
			Count:           len(recs),
			Recommendations: recs,
			Primary:         primary,
			Overflow:        overflow,
		},
	}
}

// PurposeAvailability handles the purpose-gating query.
func (a *API) PurposeAvailability(purpose, ageBand string) (int, Response) {
	if purpose == "" || ageBand == "" {
		a.metrics.IncrementRequest(OpPurposes, OutcomeInvalid)
		return http.StatusBadRequest, Response{
			Success: false,
			Error:   "purpose and age_band are required",
		}
	}

	availability := a.engine.IsPurposeDisabled(purpose, ageBand)
	a.metrics.IncrementRequest(OpPurposes, OutcomeOK)

	return http.StatusOK, Response{
		Success: true,
		Data: PurposeResponse{
			Purpose:  purpose,
			AgeBand:  ageBand,
			Disabled: availability.Disabled,
			Reason:   availability.Reason,
		},
	}
}

// Catalog lists every catalog entry, hidden ones included.
func (a *API) Catalog() (int, Response) {
	c := a.engine.Catalog()
	a.metrics.IncrementRequest(OpCatalog, OutcomeOK)

	return http.StatusOK, Response{
		Success: true,
		Data: CatalogResponse{
			Source:  a.info.Source,
			Size:    c.Len(),
			Entries: c.Entries(),
		},
	}
}

// HealthResponse is the response structure for health checks.
type HealthResponse struct {
	Status        string `json:"status"`
	Timestamp     string `json:"timestamp"`
	Service       string `json:"service"`
	Version       string `json:"version"`
	Stage         string `json:"stage"`
	CatalogSource string `json:"catalog_source"`
	CatalogSize   int    `json:"catalog_size"`
}

// Health reports the service identity and the loaded catalog.
func (a *API) Health() (int, HealthResponse) {
	response := HealthResponse{
		Status:        "healthy",
		Timestamp:     time.Now().UTC().Format(time.RFC3339),
		Service:       "visa-eligibility-engine",
		Version:       a.info.Version,
		Stage:         a.info.Stage,
		CatalogSource: a.info.Source,
	}

	if a.engine == nil || a.engine.Catalog() == nil {
		response.Status = "degraded"
		return http.StatusServiceUnavailable, response
	}
	response.CatalogSize = a.engine.Catalog().Len()

	return http.StatusOK, response
}
