package places

import (
	"context"

	"venue-map-proxy/models/places"
)

// PlacesAPI defines the interface for interacting with the Google Places API
type PlacesAPI interface {
	TextSearch(ctx context.Context, phrase string) (*places.TextSearchResponse, error)
	PlaceDetails(ctx context.Context, placeID string) (*places.PlaceDetailsResponse, error)
}
