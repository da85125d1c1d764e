package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// maxBodyBytes caps intake payloads; a full intake is well under 4 KiB.
const maxBodyBytes = 64 << 10

// HTTPHandler mounts the API on a chi router.
type HTTPHandler struct {
	api *API
}

// NewHTTPHandler wraps api for net/http.
func NewHTTPHandler(api *API) *HTTPHandler {
	return &HTTPHandler{api: api}
}

// Register mounts the eligibility endpoints on the router.
func (h *HTTPHandler) Register(r chi.Router) {
	r.Get("/health", h.HandleHealth)
	r.Route("/api", func(r chi.Router) {
		r.Get("/health", h.HandleHealth)
		r.Post("/eligibility/count", h.HandleCount)
		r.Post("/eligibility/visas", h.HandleVisas)
		r.Post("/recommendations", h.HandleRecommendations)
		r.Get("/purposes/disabled", h.HandlePurposeAvailability)
		r.Get("/catalog", h.HandleCatalog)
	})
}

// HandleHealth handles GET /health requests.
func (h *HTTPHandler) HandleHealth(w http.ResponseWriter, r *http.Request) {
	status, body := h.api.Health()
	writeJSON(w, status, body)
}

// HandleCount handles POST /api/eligibility/count requests.
func (h *HTTPHandler) HandleCount(w http.ResponseWriter, r *http.Request) {
	body, ok := readBody(w, r)
	if !ok {
		return
	}
	status, resp := h.api.Count(body)
	writeJSON(w, status, resp)
}

// HandleVisas handles POST /api/eligibility/visas requests.
func (h *HTTPHandler) HandleVisas(w http.ResponseWriter, r *http.Request) {
	body, ok := readBody(w, r)
	if !ok {
		return
	}
	status, resp := h.api.Visas(body)
	writeJSON(w, status, resp)
}

// HandleRecommendations handles POST /api/recommendations requests.
func (h *HTTPHandler) HandleRecommendations(w http.ResponseWriter, r *http.Request) {
	body, ok := readBody(w, r)
	if !ok {
		return
	}
	status, resp := h.api.Recommendations(body, middleware.GetReqID(r.Context()))
	writeJSON(w, status, resp)
}

// HandlePurposeAvailability handles GET /api/purposes/disabled requests.
func (h *HTTPHandler) HandlePurposeAvailability(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	status, resp := h.api.PurposeAvailability(q.Get("purpose"), q.Get("age_band"))
	writeJSON(w, status, resp)
}

// HandleCatalog handles GET /api/catalog requests.
func (h *HTTPHandler) HandleCatalog(w http.ResponseWriter, r *http.Request) {
	status, resp := h.api.Catalog()
	writeJSON(w, status, resp)
}

func readBody(w http.ResponseWriter, r *http.Request) ([]byte, bool) {
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			writeJSON(w, http.StatusRequestEntityTooLarge, Response{
				Success: false,
				Error:   "Request body too large",
			})
			return nil, false
		}
		writeJSON(w, http.StatusBadRequest, Response{
			Success: false,
			Error:   "Failed to read request body",
		})
		return nil, false
	}
	return body, true
}

func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(data)
}
