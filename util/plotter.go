package util

import (
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/go-echarts/go-echarts/v2/types"

	"venue-map-proxy/models/maplinks"
)

// ErrInvalidCoordinate is returned when a point cannot be plotted.
var ErrInvalidCoordinate = errors.New("invalid coordinate")

// RenderVenuePoints renders the labeled points as an HTML scatter map.
func RenderVenuePoints(w io.Writer, city string, points []maplinks.LabeledPoint) error {
	data := make([]opts.GeoData, 0, len(points))
	for _, p := range points {
		lat, err := strconv.ParseFloat(p.Lat, 64)
		if err != nil {
			return fmt.Errorf("%w: lat %q for %q", ErrInvalidCoordinate, p.Lat, p.Label)
		}
		lng, err := strconv.ParseFloat(p.Lng, 64)
		if err != nil {
			return fmt.Errorf("%w: lng %q for %q", ErrInvalidCoordinate, p.Lng, p.Label)
		}
		// echarts geo data is [lng, lat]
		data = append(data, opts.GeoData{Name: p.Label, Value: []float64{lng, lat}})
	}

	geo := charts.NewGeo()
	geo.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			PageTitle: "Venues in " + city,
			Width:     "800px",
			Height:    "600px",
		}),
		charts.WithTitleOpts(opts.Title{
			Title:    city,
			Subtitle: fmt.Sprintf("%d venues", len(points)),
		}),
		charts.WithGeoComponentOpts(opts.GeoComponent{
			Map:    "world",
			Silent: opts.Bool(true),
		}),
	)

	geo.AddSeries("Venues", types.ChartScatter, data,
		charts.WithLabelOpts(opts.Label{
			Show:      opts.Bool(true),
			Formatter: "{b}",
		}),
	)

	if err := geo.Render(w); err != nil {
		return fmt.Errorf("failed to render chart: %w", err)
	}
	return nil
}
