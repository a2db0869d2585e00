package services

import (
	"fmt"
	"strings"

	"venue-map-proxy/config"
	"venue-map-proxy/models/maplinks"
)

const (
	POINT_SEPARATOR = ","
	FIELD_SEPARATOR = "|"

	// The embed endpoint rejects a literal pipe in its query string.
	EMBED_WAYPOINT_SEPARATOR = "%7C"
	MARKER_STYLE             = "color:red"
)

// MapLinkComposer stitches provider URLs for an ordered list of points. It
// does not reorder or optimize the route.
type MapLinkComposer struct {
	apiKey        string
	zoom          int
	size          string
	staticMapURL  string
	directionsURL string
	embedURL      string
}

func NewMapLinkComposer(cfg *config.Config) *MapLinkComposer {
	return &MapLinkComposer{
		apiKey:        cfg.APIKey,
		zoom:          cfg.StaticMapZoom,
		size:          cfg.StaticMapSize,
		staticMapURL:  cfg.Endpoints.StaticMapURL,
		directionsURL: cfg.Endpoints.DirectionsURL,
		embedURL:      cfg.Endpoints.EmbedURL,
	}
}

// ParseLabeledPoints parses "lat|lng|label,lat|lng|label,...". Any entry that
// is not exactly three fields fails the whole parse.
func ParseLabeledPoints(wire string) ([]maplinks.LabeledPoint, error) {
	if strings.TrimSpace(wire) == "" {
		return nil, &ValidationError{Reason: "venues must not be empty"}
	}

	entries := strings.Split(wire, POINT_SEPARATOR)
	points := make([]maplinks.LabeledPoint, 0, len(entries))
	for i, entry := range entries {
		parts := strings.Split(entry, FIELD_SEPARATOR)
		if len(parts) != 3 {
			return nil, &ValidationError{Reason: fmt.Sprintf("venue %d (%q) must be lat|lng|label", i+1, entry)}
		}
		if parts[0] == "" || parts[1] == "" {
			return nil, &ValidationError{Reason: fmt.Sprintf("venue %d (%q) is missing coordinates", i+1, entry)}
		}
		points = append(points, maplinks.LabeledPoint{Lat: parts[0], Lng: parts[1], Label: parts[2]})
	}
	return points, nil
}

// Compose builds the static map, directions and embed URLs. points[0] is the
// destination and points[1:] are waypoints, in input order.
func (c *MapLinkComposer) Compose(points []maplinks.LabeledPoint, city string) (*maplinks.MapLinks, error) {
	if len(points) == 0 {
		return nil, &ValidationError{Reason: "at least one venue is required"}
	}

	return &maplinks.MapLinks{
		StaticMapURL:   c.StaticMapURL(points, city),
		DirectionsLink: c.DirectionsLink(points, city),
		EmbedURL:       c.EmbedURL(points, city),
	}, nil
}

func (c *MapLinkComposer) StaticMapURL(points []maplinks.LabeledPoint, city string) string {
	markers := make([]string, 0, len(points))
	for _, p := range points {
		markers = append(markers, fmt.Sprintf("markers=%s|label:%s|%s", MARKER_STYLE, p.Label, p.Coordinates()))
	}
	return fmt.Sprintf("%s?center=%s&zoom=%d&size=%s&%s&key=%s",
		c.staticMapURL, cityParam(city), c.zoom, c.size, strings.Join(markers, "&"), c.apiKey)
}

func (c *MapLinkComposer) DirectionsLink(points []maplinks.LabeledPoint, city string) string {
	link := fmt.Sprintf("%s?api=1&origin=%s&destination=%s", c.directionsURL, cityParam(city), points[0].Coordinates())
	if wp := waypoints(points, FIELD_SEPARATOR); wp != "" {
		link += "&waypoints=" + wp
	}
	return link
}

func (c *MapLinkComposer) EmbedURL(points []maplinks.LabeledPoint, city string) string {
	link := fmt.Sprintf("%s?key=%s&origin=%s&destination=%s", c.embedURL, c.apiKey, cityParam(city), points[0].Coordinates())
	if wp := waypoints(points, EMBED_WAYPOINT_SEPARATOR); wp != "" {
		link += "&waypoints=" + wp
	}
	return link
}

func waypoints(points []maplinks.LabeledPoint, sep string) string {
	if len(points) < 2 {
		return ""
	}
	coords := make([]string, 0, len(points)-1)
	for _, p := range points[1:] {
		coords = append(coords, p.Coordinates())
	}
	return strings.Join(coords, sep)
}

// cityParam only swaps spaces for '+'. Other URL-special characters pass
// through unescaped.
func cityParam(city string) string {
	return strings.ReplaceAll(city, " ", "+")
}
