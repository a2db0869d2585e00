package handlers

import (
	"net/http"

	"venue-map-proxy/models"
)

const ALIVE_STATUS = "venue map proxy is alive"

// Root handles GET /
func Root(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, models.StatusResponse{Status: ALIVE_STATUS})
}

// Ping handles GET /ping
func Ping(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, models.StatusResponse{Status: "pong"})
}
