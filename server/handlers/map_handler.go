package handlers

import (
	"bytes"
	"errors"
	"log"
	"net/http"
	"net/url"
	"strings"

	"venue-map-proxy/models/maplinks"
	services "venue-map-proxy/service"
	"venue-map-proxy/util"
)

const VENUES_QUERY_ARG = "venues"

type MapHandler struct {
	composer *services.MapLinkComposer
}

func NewMapHandler(composer *services.MapLinkComposer) *MapHandler {
	return &MapHandler{composer: composer}
}

// GetMultiVenueMap handles GET /get_multi_venue_map?venues=&city=
func (h *MapHandler) GetMultiVenueMap(w http.ResponseWriter, r *http.Request) {
	points, city, err := parseVenuesArgs(r.URL.Query())
	if err != nil {
		writeError(w, r, err)
		return
	}

	links, err := h.composer.Compose(points, city)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, links)
}

// GetMultiVenueMapPreview handles GET /multi_venue_map_preview?venues=&city=
func (h *MapHandler) GetMultiVenueMapPreview(w http.ResponseWriter, r *http.Request) {
	points, city, err := parseVenuesArgs(r.URL.Query())
	if err != nil {
		writeError(w, r, err)
		return
	}

	var buf bytes.Buffer
	if err := util.RenderVenuePoints(&buf, city, points); err != nil {
		if errors.Is(err, util.ErrInvalidCoordinate) {
			writeDetail(w, http.StatusBadRequest, err.Error())
			return
		}
		writeError(w, r, err)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	if _, err := buf.WriteTo(w); err != nil {
		log.Println("Error writing preview:", err)
	}
}

// parseVenuesArgs joins repeated venues params in order before parsing.
func parseVenuesArgs(vals url.Values) ([]maplinks.LabeledPoint, string, error) {
	points, err := services.ParseLabeledPoints(strings.Join(vals[VENUES_QUERY_ARG], services.POINT_SEPARATOR))
	if err != nil {
		return nil, "", err
	}
	return points, vals.Get(CITY_QUERY_ARG), nil
}
