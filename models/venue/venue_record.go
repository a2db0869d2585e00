package venue

// VenueRecord is the simplified venue returned by /get_venue_info. Optional
// fields are never omitted; a missing value serializes as null.
type VenueRecord struct {
	Name     *string `json:"name"`
	Address  *string `json:"address"`
	Website  *string `json:"website"`
	Lat      float64 `json:"lat"`
	Lng      float64 `json:"lng"`
	City     string  `json:"city"`
	ImageURL *string `json:"image_url"`
}

// SearchResult is the first text search candidate, kept between the two lookups.
type SearchResult struct {
	PlaceID string
	Lat     float64
	Lng     float64
}
