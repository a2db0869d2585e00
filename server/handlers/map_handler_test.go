package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"venue-map-proxy/config"
	"venue-map-proxy/models/maplinks"
	services "venue-map-proxy/service"
)

func newTestMapHandler() *MapHandler {
	return NewMapHandler(services.NewMapLinkComposer(&config.Config{
		APIKey:        "KEY",
		StaticMapZoom: 13,
		StaticMapSize: "600x400",
		Endpoints:     config.DefaultEndpoints(),
	}))
}

func TestGetMultiVenueMap(t *testing.T) {
	rr := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/get_multi_venue_map?venues=1.0|2.0|A,3.0|4.0|B&city=X%20Y", nil)

	newTestMapHandler().GetMultiVenueMap(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
	var links maplinks.MapLinks
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &links))
	assert.Contains(t, links.StaticMapURL, "center=X+Y")
	assert.Equal(t, 2, strings.Count(links.StaticMapURL, "markers="))
	assert.Contains(t, links.DirectionsLink, "destination=1.0,2.0&waypoints=3.0,4.0")
	assert.Contains(t, links.EmbedURL, "waypoints=3.0,4.0")
}

func TestGetMultiVenueMap_RepeatedVenuesParams(t *testing.T) {
	rr := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/get_multi_venue_map?venues=1|1|A&venues=2|2|B,3|3|C&city=Z", nil)

	newTestMapHandler().GetMultiVenueMap(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
	var links maplinks.MapLinks
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &links))
	assert.Contains(t, links.DirectionsLink, "destination=1,1&waypoints=2,2|3,3")
}

func TestGetMultiVenueMap_BadRequest(t *testing.T) {
	paths := []string{
		"/get_multi_venue_map?city=X",
		"/get_multi_venue_map?venues=&city=X",
		"/get_multi_venue_map?venues=1.0|2.0&city=X",
	}

	for _, path := range paths {
		t.Run(path, func(t *testing.T) {
			rr := httptest.NewRecorder()

			newTestMapHandler().GetMultiVenueMap(rr, httptest.NewRequest("GET", path, nil))

			assert.Equal(t, http.StatusBadRequest, rr.Code)
			assert.Contains(t, rr.Body.String(), `"detail"`)
		})
	}
}

func TestGetMultiVenueMapPreview(t *testing.T) {
	rr := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/multi_venue_map_preview?venues=37.79|-122.39|Ferry&city=San%20Francisco", nil)

	newTestMapHandler().GetMultiVenueMapPreview(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "text/html; charset=utf-8", rr.Header().Get("Content-Type"))
	assert.Contains(t, rr.Body.String(), "Ferry")
}

func TestGetMultiVenueMapPreview_NonNumericCoordinate(t *testing.T) {
	rr := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/multi_venue_map_preview?venues=north|1|A&city=X", nil)

	newTestMapHandler().GetMultiVenueMapPreview(rr, req)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestHealthHandlers(t *testing.T) {
	rr := httptest.NewRecorder()
	Root(rr, httptest.NewRequest("GET", "/", nil))
	assert.JSONEq(t, `{"status":"venue map proxy is alive"}`, rr.Body.String())

	rr = httptest.NewRecorder()
	Ping(rr, httptest.NewRequest("GET", "/ping", nil))
	assert.JSONEq(t, `{"status":"pong"}`, rr.Body.String())
}
