package handlers

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/aws/aws-lambda-go/events"

	"visa-eligibility-engine/internal/utils"
)

var corsHeaders = map[string]string{
	"Access-Control-Allow-Origin":  "*",
	"Access-Control-Allow-Headers": "Content-Type,Authorization",
	"Access-Control-Allow-Methods": "GET,POST,OPTIONS",
	"Content-Type":                 "application/json",
}

// LambdaHandler routes API Gateway proxy events to the API.
type LambdaHandler struct {
	api *API
}

// NewLambdaHandler wraps api for API Gateway.
func NewLambdaHandler(api *API) *LambdaHandler {
	return &LambdaHandler{api: api}
}

// Handle processes API Gateway requests.
func (h *LambdaHandler) Handle(ctx context.Context, request events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
	if request.HTTPMethod == http.MethodOptions {
		return events.APIGatewayProxyResponse{
			StatusCode: http.StatusOK,
			Headers:    corsHeaders,
		}, nil
	}

	path := routePath(request)
	method := request.HTTPMethod

	body := []byte(request.Body)
	if request.IsBase64Encoded {
		decoded, err := base64.StdEncoding.DecodeString(request.Body)
		if err != nil {
			return respond(http.StatusBadRequest, Response{Success: false, Error: "Invalid request body"})
		}
		body = decoded
	}

	switch {
	case method == http.MethodGet && (path == "/health" || path == "/api/health"):
		status, resp := h.api.Health()
		return respond(status, resp)

	case method == http.MethodPost && path == "/api/eligibility/count":
		return respond(h.api.Count(body))

	case method == http.MethodPost && path == "/api/eligibility/visas":
		return respond(h.api.Visas(body))

	case method == http.MethodPost && path == "/api/recommendations":
		return respond(h.api.Recommendations(body, request.RequestContext.RequestID))

	case method == http.MethodGet && path == "/api/purposes/disabled":
		q := request.QueryStringParameters
		return respond(h.api.PurposeAvailability(q["purpose"], q["age_band"]))

	case method == http.MethodGet && path == "/api/catalog":
		return respond(h.api.Catalog())
	}

	utils.GetLogger().Debug("No route for request",
		utils.String("method", method),
		utils.String("path", path),
	)

	return respond(http.StatusNotFound, Response{Success: false, Error: "Route not found"})
}

// routePath strips an API Gateway stage prefix such as /dev from the path.
func routePath(request events.APIGatewayProxyRequest) string {
	path := request.Path
	if stage := request.RequestContext.Stage; stage != "" {
		path = strings.TrimPrefix(path, "/"+stage)
	}
	if path == "" {
		path = "/"
	}
	if len(path) > 1 {
		path = strings.TrimSuffix(path, "/")
	}
	return path
}

func respond(status int, data interface{}) (events.APIGatewayProxyResponse, error) {
	body, err := json.Marshal(data)
	if err != nil {
		return events.APIGatewayProxyResponse{
			StatusCode: http.StatusInternalServerError,
			Headers:    corsHeaders,
			Body:       `{"success":false,"error":"Failed to encode response"}`,
		}, nil
	}

	return events.APIGatewayProxyResponse{
		StatusCode: status,
		Headers:    corsHeaders,
		Body:       string(body),
	}, nil
}
