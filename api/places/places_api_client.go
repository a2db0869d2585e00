package places

import (
	"context"
	"fmt"
	"log"
	"net/url"

	"venue-map-proxy/api"
	"venue-map-proxy/config"
	"venue-map-proxy/models/places"
)

// PlacesApiClient embeds the common HTTPClient. Search and details live on
// separately configurable URLs, so the embedded client has no base URL.
type PlacesApiClient struct {
	*api.HTTPClient
	apiKey     string
	searchURL  string
	detailsURL string
}

// NewPlacesApiClient creates a new instance of PlacesApiClient
func NewPlacesApiClient(httpClient *api.HTTPClient, apiKey string, endpoints config.Endpoints) *PlacesApiClient {
	return &PlacesApiClient{
		HTTPClient: httpClient,
		apiKey:     apiKey,
		searchURL:  endpoints.SearchURL,
		detailsURL: endpoints.DetailsURL,
	}
}

// TextSearch runs a free text search and decodes the candidate list.
func (c *PlacesApiClient) TextSearch(ctx context.Context, phrase string) (*places.TextSearchResponse, error) {
	params := url.Values{}
	params.Set("query", phrase)
	params.Set("key", c.apiKey)

	var response places.TextSearchResponse
	if err := c.Get(ctx, c.searchURL, params, &response); err != nil {
		return nil, fmt.Errorf("text search request failed: %w", err)
	}
	log.Printf("[PlacesApiClient] Text search returned status=%q results=%d", response.Status, len(response.Results))
	return &response, nil
}

// PlaceDetails fetches name, address, website and photos for a place id.
func (c *PlacesApiClient) PlaceDetails(ctx context.Context, placeID string) (*places.PlaceDetailsResponse, error) {
	params := url.Values{}
	params.Set("place_id", placeID)
	params.Set("fields", places.PlaceDetailsFields)
	params.Set("key", c.apiKey)

	var response places.PlaceDetailsResponse
	if err := c.Get(ctx, c.detailsURL, params, &response); err != nil {
		return nil, fmt.Errorf("place details request failed: %w", err)
	}
	log.Printf("[PlacesApiClient] Place details returned status=%q for place_id=%s", response.Status, placeID)
	return &response, nil
}
