package server

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
)

// MockVenueHandler is a mock implementation of the venue info handler.
type MockVenueHandler struct{}

func (h *MockVenueHandler) GetVenueInfo(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"message": "venue info"}`))
}

// MockMapHandler is a mock implementation of the multi venue map handler.
type MockMapHandler struct{}

func (h *MockMapHandler) GetMultiVenueMap(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"message": "map links"}`))
}

func (h *MockMapHandler) GetMultiVenueMapPreview(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`<html></html>`))
}

func TestRouter_RegisterRoutes(t *testing.T) {
	// Setup
	router := mux.NewRouter()
	appRouter := NewRouter(&MockVenueHandler{}, &MockMapHandler{}, router, "right")
	appRouter.RegisterRoutes()

	// Test Cases
	tests := []struct {
		name       string
		method     string
		path       string
		auth       string
		statusCode int
		response   string
	}{
		{
			name:       "Get Venue Info",
			method:     "GET",
			path:       "/get_venue_info?query=a&city=b",
			auth:       "Bearer right",
			statusCode: http.StatusOK,
			response:   `{"message": "venue info"}`,
		},
		{
			name:       "Get Multi Venue Map",
			method:     "GET",
			path:       "/get_multi_venue_map?venues=1|2|A&city=b",
			auth:       "Bearer right",
			statusCode: http.StatusOK,
			response:   `{"message": "map links"}`,
		},
		{
			name:       "Preview",
			method:     "GET",
			path:       "/multi_venue_map_preview?venues=1|2|A&city=b",
			auth:       "Bearer right",
			statusCode: http.StatusOK,
			response:   `<html></html>`,
		},
		{
			name:       "Wrong Token",
			method:     "GET",
			path:       "/get_venue_info?query=a&city=b",
			auth:       "Bearer wrong",
			statusCode: http.StatusForbidden,
		},
		{
			name:       "Missing Token",
			method:     "GET",
			path:       "/get_multi_venue_map?venues=1|2|A&city=b",
			statusCode: http.StatusUnauthorized,
		},
		{
			name:       "Root Is Public",
			method:     "GET",
			path:       "/",
			statusCode: http.StatusOK,
			response:   "{\"status\":\"venue map proxy is alive\"}\n",
		},
		{
			name:       "Ping Route",
			method:     "GET",
			path:       "/ping",
			statusCode: http.StatusOK,
			response:   "{\"status\":\"pong\"}\n",
		},
		{
			name:       "Wrong Method",
			method:     "POST",
			path:       "/get_venue_info",
			auth:       "Bearer right",
			statusCode: http.StatusMethodNotAllowed,
		},
		{
			name:       "Invalid Route",
			method:     "GET",
			path:       "/invalid",
			statusCode: http.StatusNotFound,
		},
	}

	// Run tests
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			req := httptest.NewRequest(test.method, test.path, nil)
			if test.auth != "" {
				req.Header.Set("Authorization", test.auth)
			}
			rr := httptest.NewRecorder()

			router.ServeHTTP(rr, req)

			assert.Equal(t, test.statusCode, rr.Code)
			if test.response != "" {
				assert.Equal(t, test.response, rr.Body.String())
			}
		})
	}
}

func TestRouter_OpenWithoutToken(t *testing.T) {
	router := mux.NewRouter()
	NewRouter(&MockVenueHandler{}, &MockMapHandler{}, router, "").RegisterRoutes()

	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, httptest.NewRequest("GET", "/get_venue_info?query=a&city=b", nil))

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.NotEmpty(t, rr.Header().Get("X-Request-Id"))
}
