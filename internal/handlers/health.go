package handlers

import (
	"context"
	"net/http"

	"github.com/aws/aws-lambda-go/events"

	"visa-eligibility-engine/internal/services/database"
)

// HealthHandler handles health check requests for the standalone health Lambda.
type HealthHandler struct {
	api *API
	db  *database.DB
}

// NewHealthHandler creates a new health handler. db is optional and only
// checked when the catalog is served from PostgreSQL.
func NewHealthHandler(api *API, db *database.DB) *HealthHandler {
	return &HealthHandler{api: api, db: db}
}

// LambdaHealthResponse adds database connectivity to the API health report.
type LambdaHealthResponse struct {
	HealthResponse
	Database string `json:"database,omitempty"`
}

// Handle processes health check requests.
func (h *HealthHandler) Handle(ctx context.Context, request events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
	status, base := h.api.Health()
	response := LambdaHealthResponse{HealthResponse: base}

	if h.db != nil {
		if err := h.db.HealthCheck(ctx); err != nil {
			response.Database = "disconnected"
			response.Status = "degraded"
			status = http.StatusServiceUnavailable
		} else {
			response.Database = "connected"
		}
	} else {
		response.Database = "not configured"
	}

	return respond(status, response)
}

// Close cleans up resources.
func (h *HealthHandler) Close() {
	if h.db != nil {
		h.db.Close()
	}
}
