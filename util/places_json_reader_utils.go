package util

import (
	"encoding/json"
	"fmt"
	"os"

	"venue-map-proxy/models/places"
)

// ReadTextSearchResponseFromJSON loads a TextSearchResponse from JSON on disk.
func ReadTextSearchResponseFromJSON(filePath string) (*places.TextSearchResponse, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %q: %w", filePath, err)
	}
	var resp places.TextSearchResponse
	if err := json.Unmarshal(data, &resp); err != nil {
		return nil, fmt.Errorf("failed to unmarshal TextSearchResponse: %w", err)
	}
	return &resp, nil
}

// ReadPlaceDetailsResponseFromJSON loads a PlaceDetailsResponse from JSON on disk.
func ReadPlaceDetailsResponseFromJSON(filePath string) (*places.PlaceDetailsResponse, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %q: %w", filePath, err)
	}
	var resp places.PlaceDetailsResponse
	if err := json.Unmarshal(data, &resp); err != nil {
		return nil, fmt.Errorf("failed to unmarshal PlaceDetailsResponse: %w", err)
	}
	return &resp, nil
}
