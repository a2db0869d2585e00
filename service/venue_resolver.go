package services

import (
	"context"
	"errors"
	"fmt"
	"log"

	"venue-map-proxy/api/places"
	"venue-map-proxy/config"
	"venue-map-proxy/models/venue"
)

const PHOTO_MAX_WIDTH = 800

// VenueCache is the optional read-through cache in front of the resolver.
type VenueCache interface {
	GetVenue(ctx context.Context, query, city string) (*venue.VenueRecord, error)
	SetVenue(ctx context.Context, query, city string, record *venue.VenueRecord) error
}

// VenueResolver turns a free text query into a VenueRecord with a text search
// followed by a place details lookup. Failures are never retried.
type VenueResolver struct {
	placesAPI places.PlacesAPI
	cache     VenueCache
	apiKey    string
	photoURL  string
}

// NewVenueResolver constructs a resolver. cache may be nil.
func NewVenueResolver(placesAPI places.PlacesAPI, cache VenueCache, cfg *config.Config) *VenueResolver {
	return &VenueResolver{
		placesAPI: placesAPI,
		cache:     cache,
		apiKey:    cfg.APIKey,
		photoURL:  cfg.Endpoints.PhotoURL,
	}
}

// Resolve looks up the first place matching "query, city" and fetches its details.
func (vr *VenueResolver) Resolve(ctx context.Context, query, city string) (*venue.VenueRecord, error) {
	if cached := vr.fromCache(ctx, query, city); cached != nil {
		return cached, nil
	}

	found, err := vr.search(ctx, query+", "+city)
	if err != nil {
		return nil, err
	}

	record, err := vr.details(ctx, found, city)
	if err != nil {
		return nil, err
	}

	vr.toCache(ctx, query, city, record)
	return record, nil
}

func (vr *VenueResolver) search(ctx context.Context, phrase string) (*venue.SearchResult, error) {
	resp, err := vr.placesAPI.TextSearch(ctx, phrase)
	if err != nil {
		log.Printf("[VenueResolver] Text search failed for %q: %v", phrase, err)
		return nil, &UpstreamError{Stage: StageSearch, Kind: KindTransport, Err: err}
	}
	if len(resp.Results) == 0 {
		log.Printf("[VenueResolver] No place found for %q (status=%s)", phrase, resp.Status)
		return nil, &NotFoundError{Reason: REASON_NO_PLACE}
	}

	// first match wins, in the provider's own relevance order
	first := resp.Results[0]
	if first.PlaceID == nil || *first.PlaceID == "" {
		return nil, &UpstreamError{Stage: StageSearch, Kind: KindMalformed, Err: errors.New("first result has no place_id")}
	}
	if first.Geometry == nil || first.Geometry.Location == nil ||
		first.Geometry.Location.Lat == nil || first.Geometry.Location.Lng == nil {
		return nil, &UpstreamError{Stage: StageSearch, Kind: KindMalformed, Err: fmt.Errorf("result %s has no location", *first.PlaceID)}
	}

	return &venue.SearchResult{
		PlaceID: *first.PlaceID,
		Lat:     *first.Geometry.Location.Lat,
		Lng:     *first.Geometry.Location.Lng,
	}, nil
}

func (vr *VenueResolver) details(ctx context.Context, found *venue.SearchResult, city string) (*venue.VenueRecord, error) {
	resp, err := vr.placesAPI.PlaceDetails(ctx, found.PlaceID)
	if err != nil {
		log.Printf("[VenueResolver] Place details failed for place_id=%s: %v", found.PlaceID, err)
		return nil, &UpstreamError{Stage: StageDetails, Kind: KindTransport, Err: err}
	}
	if resp.Result == nil || resp.Result.IsEmpty() {
		log.Printf("[VenueResolver] No details for place_id=%s (status=%s)", found.PlaceID, resp.Status)
		return nil, &NotFoundError{Reason: REASON_NO_DETAILS}
	}

	result := resp.Result
	record := &venue.VenueRecord{
		Name:    result.Name,
		Address: result.FormattedAddress,
		Website: result.Website,
		Lat:     found.Lat,
		Lng:     found.Lng,
		City:    city,
	}

	if len(result.Photos) > 0 {
		ref := result.Photos[0].PhotoReference
		if ref == "" {
			return nil, &UpstreamError{Stage: StageDetails, Kind: KindMalformed, Err: errors.New("first photo has no photo_reference")}
		}
		imageURL := vr.PhotoURL(ref)
		record.ImageURL = &imageURL
	}
	return record, nil
}

// PhotoURL builds the provider photo URL for a photo reference.
func (vr *VenueResolver) PhotoURL(ref string) string {
	return fmt.Sprintf("%s?maxwidth=%d&photoreference=%s&key=%s", vr.photoURL, PHOTO_MAX_WIDTH, ref, vr.apiKey)
}

func (vr *VenueResolver) fromCache(ctx context.Context, query, city string) *venue.VenueRecord {
	if vr.cache == nil {
		return nil
	}
	record, err := vr.cache.GetVenue(ctx, query, city)
	if err != nil {
		log.Printf("[VenueResolver] Cache read failed, resolving upstream: %v", err)
		return nil
	}
	if record != nil {
		log.Printf("[VenueResolver] Cache hit for %q in %q", query, city)
	}
	return record
}

func (vr *VenueResolver) toCache(ctx context.Context, query, city string, record *venue.VenueRecord) {
	if vr.cache == nil {
		return
	}
	if err := vr.cache.SetVenue(ctx, query, city, record); err != nil {
		log.Printf("[VenueResolver] Cache write failed: %v", err)
	}
}
