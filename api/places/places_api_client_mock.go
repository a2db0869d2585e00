package places

import (
	"context"
	"log"

	"venue-map-proxy/models/places"
	"venue-map-proxy/util"
)

// PlacesApiClientMock serves canned responses from JSON fixtures on disk.
type PlacesApiClientMock struct {
	textSearchPath   string
	placeDetailsPath string
}

// NewPlacesApiClientMock creates a new instance of PlacesApiClientMock
func NewPlacesApiClientMock(textSearchPath, placeDetailsPath string) *PlacesApiClientMock {
	return &PlacesApiClientMock{
		textSearchPath:   textSearchPath,
		placeDetailsPath: placeDetailsPath,
	}
}

func (c *PlacesApiClientMock) TextSearch(ctx context.Context, phrase string) (*places.TextSearchResponse, error) {
	response, err := util.ReadTextSearchResponseFromJSON(c.textSearchPath)
	if err != nil {
		log.Println("[PlacesApiClientMock] Could not read text search response from json")
		return nil, err
	}
	return response, nil
}

func (c *PlacesApiClientMock) PlaceDetails(ctx context.Context, placeID string) (*places.PlaceDetailsResponse, error) {
	response, err := util.ReadPlaceDetailsResponseFromJSON(c.placeDetailsPath)
	if err != nil {
		log.Println("[PlacesApiClientMock] Could not read place details response from json")
		return nil, err
	}
	return response, nil
}
