package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"venue-map-proxy/models"
	"venue-map-proxy/server/middleware"
	services "venue-map-proxy/service"
)

func writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		log.Println("Error encoding response:", err)
	}
}

func writeDetail(w http.ResponseWriter, status int, detail string) {
	writeJSON(w, status, models.ErrorResponse{Detail: detail})
}

// writeError maps the service error taxonomy onto HTTP status codes.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	var (
		upstream   *services.UpstreamError
		notFound   *services.NotFoundError
		validation *services.ValidationError
	)
	requestID := middleware.RequestID(r.Context())

	switch {
	case errors.As(err, &validation):
		writeDetail(w, http.StatusBadRequest, validation.Reason)
	case errors.As(err, &notFound):
		writeDetail(w, http.StatusNotFound, notFound.Reason)
	case errors.As(err, &upstream):
		log.Printf("[Handlers] %s %s upstream failure request_id=%s: %v", r.Method, r.URL.Path, requestID, err)
		writeDetail(w, http.StatusInternalServerError, upstreamDetail(upstream.Stage))
	default:
		log.Printf("[Handlers] %s %s unexpected error request_id=%s: %v", r.Method, r.URL.Path, requestID, err)
		writeDetail(w, http.StatusInternalServerError, "Internal server error")
	}
}

func upstreamDetail(stage services.Stage) string {
	if stage == services.StageDetails {
		return "Failed to fetch or parse Place Details"
	}
	return "Failed to fetch or parse Places Search response"
}
