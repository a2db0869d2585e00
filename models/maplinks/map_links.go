package maplinks

type MapLinks struct {
	StaticMapURL   string `json:"static_map_url"`
	DirectionsLink string `json:"directions_link"`
	EmbedURL       string `json:"embed_url"`
}
