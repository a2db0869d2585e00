package places

// TextSearchResponse is the Places text search payload. Only the fields the
// resolver reads are mapped.
type TextSearchResponse struct {
	Status       string             `json:"status"`
	ErrorMessage string             `json:"error_message,omitempty"`
	Results      []TextSearchResult `json:"results"`
}

// TextSearchResult is one search candidate. Required fields are pointers so a
// missing field can be told apart from a zero value.
type TextSearchResult struct {
	PlaceID  *string   `json:"place_id"`
	Name     string    `json:"name,omitempty"`
	Geometry *Geometry `json:"geometry"`
}

type Geometry struct {
	Location *Location `json:"location"`
}

type Location struct {
	Lat *float64 `json:"lat"`
	Lng *float64 `json:"lng"`
}
