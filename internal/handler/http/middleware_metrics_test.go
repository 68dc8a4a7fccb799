package http

import (
	"net/http"
	"testing"

	"github.com/MKhiriev/go-map-places/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWithMetrics_LabelsByRoutePattern(t *testing.T) {
	router := newTestHandler(stubServices()).Init()

	doRequest(t, router, http.MethodGet, "/locais/"+testPlaceID, "", nil)
	doRequest(t, router, http.MethodGet, "/locais/"+testUserID, "", nil)
	doRequest(t, router, http.MethodGet, "/nada", "", nil)

	rec := doRequest(t, router, http.MethodGet, "/metrics", "", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, `map_places_http_requests_total{method="GET",route="/locais/{id}",status="403"} 2`)
	assert.Contains(t, body, `map_places_http_requests_total{method="GET",route="unmatched",status="404"} 1`)
	assert.NotContains(t, body, testPlaceID)
}

func TestMetricsEndpoint(t *testing.T) {
	router := newTestHandler(&service.Services{AppInfoService: &mockAppInfoService{version: "1.0.0"}}).Init()

	doRequest(t, router, http.MethodGet, "/version", "", nil)
	rec := doRequest(t, router, http.MethodGet, "/metrics", "", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, `map_places_http_requests_total{method="GET",route="/version",status="200"} 1`)
	assert.Contains(t, body, "map_places_http_request_duration_seconds_bucket")
	assert.Contains(t, body, "map_places_http_requests_in_flight 1")
	assert.Contains(t, body, "go_goroutines")
}
