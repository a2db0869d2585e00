package places

// PlaceDetailsFields is the exact field mask requested from the details endpoint.
const PlaceDetailsFields = "name,formatted_address,website,photos"

type PlaceDetailsResponse struct {
	Status       string        `json:"status"`
	ErrorMessage string        `json:"error_message,omitempty"`
	Result       *PlaceDetails `json:"result"`
}

type PlaceDetails struct {
	Name             *string `json:"name"`
	FormattedAddress *string `json:"formatted_address"`
	Website          *string `json:"website"`
	Photos           []Photo `json:"photos"`
}

// IsEmpty reports whether the result carries none of the requested fields, as with "result": {}.
func (d *PlaceDetails) IsEmpty() bool {
	return d.Name == nil && d.FormattedAddress == nil && d.Website == nil && len(d.Photos) == 0
}

type Photo struct {
	PhotoReference string `json:"photo_reference"`
	Height         int    `json:"height,omitempty"`
	Width          int    `json:"width,omitempty"`
}
