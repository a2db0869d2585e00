package maplinks

// LabeledPoint keeps coordinates as raw text; they are only ever
// re-interpolated into URLs.
type LabeledPoint struct {
	Lat   string `json:"lat"`
	Lng   string `json:"lng"`
	Label string `json:"label"`
}

// Coordinates renders the point as "lat,lng".
func (p LabeledPoint) Coordinates() string {
	return p.Lat + "," + p.Lng
}
