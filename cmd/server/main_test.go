package main

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"visa-eligibility-engine/internal/catalog"
	"visa-eligibility-engine/internal/handlers"
	"visa-eligibility-engine/internal/metrics"
	"visa-eligibility-engine/internal/services/eligibility"
)

func TestNewRouter(t *testing.T) {
	m := metrics.New(prometheus.DefaultRegisterer)
	engine := eligibility.NewEngine(catalog.Default(), eligibility.DefaultConfig())
	router := newRouter(handlers.NewAPI(engine, m, handlers.ServiceInfo{Source: "embedded"}))

	body := `{"age_band":"50+","purpose":"retirement","income_type":"Pension",` +
		`"savings_band":"800k_3M","location":"Outside Thailand","duration":"365_5y"}`
	req := httptest.NewRequest(http.MethodPost, "/api/eligibility/count", strings.NewReader(body))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"count":4`)

	req = httptest.NewRequest(http.MethodGet, "/metrics", nil)
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `visa_eligibility_requests_total{operation="count",outcome="ok"} 1`)

	req = httptest.NewRequest(http.MethodOptions, "/api/recommendations", nil)
	req.Header.Set("Origin", "https://example.com")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
}
