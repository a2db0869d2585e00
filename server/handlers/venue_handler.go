package handlers

import (
	"context"
	"net/http"
	"strings"

	"venue-map-proxy/models/venue"
)

const (
	QUERY_QUERY_ARG = "query"
	CITY_QUERY_ARG  = "city"
)

// VenueResolver is the part of services.VenueResolver the handler needs.
type VenueResolver interface {
	Resolve(ctx context.Context, query, city string) (*venue.VenueRecord, error)
}

type VenueHandler struct {
	resolver VenueResolver
}

func NewVenueHandler(resolver VenueResolver) *VenueHandler {
	return &VenueHandler{resolver: resolver}
}

// GetVenueInfo handles GET /get_venue_info?query=&city=
func (h *VenueHandler) GetVenueInfo(w http.ResponseWriter, r *http.Request) {
	vals := r.URL.Query()
	query := vals.Get(QUERY_QUERY_ARG)
	city := vals.Get(CITY_QUERY_ARG)
	if strings.TrimSpace(query) == "" {
		writeDetail(w, http.StatusBadRequest, "Missing argument "+QUERY_QUERY_ARG)
		return
	}
	if strings.TrimSpace(city) == "" {
		writeDetail(w, http.StatusBadRequest, "Missing argument "+CITY_QUERY_ARG)
		return
	}

	record, err := h.resolver.Resolve(r.Context(), query, city)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, record)
}
