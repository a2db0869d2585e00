package server

import (
	"net/http"

	"github.com/gorilla/mux"

	"venue-map-proxy/server/handlers"
	"venue-map-proxy/server/middleware"
)

type VenueInfoHandler interface {
	GetVenueInfo(w http.ResponseWriter, r *http.Request)
}

type MultiVenueMapHandler interface {
	GetMultiVenueMap(w http.ResponseWriter, r *http.Request)
	GetMultiVenueMapPreview(w http.ResponseWriter, r *http.Request)
}

type Router struct {
	venueHandler VenueInfoHandler
	mapHandler   MultiVenueMapHandler
	router       *mux.Router
	auth         mux.MiddlewareFunc
}

// NewRouter creates a router with the app's routes. An empty bearerToken
// leaves the API routes open.
func NewRouter(
	venueHandler VenueInfoHandler,
	mapHandler MultiVenueMapHandler,
	router *mux.Router,
	bearerToken string) *Router {
	return &Router{
		venueHandler: venueHandler,
		mapHandler:   mapHandler,
		router:       router,
		auth:         middleware.BearerAuth(bearerToken),
	}
}

func (r *Router) RegisterRoutes() {
	r.router.Use(middleware.RequestIDMiddleware)

	r.router.HandleFunc("/", handlers.Root).Methods("GET")
	r.router.HandleFunc("/ping", handlers.Ping).Methods("GET")

	// expects ?query={free text}&city={city}
	r.router.Handle("/get_venue_info", r.gated(r.venueHandler.GetVenueInfo)).Methods("GET")
	// expects ?venues={lat|lng|label,...}&city={city}
	r.router.Handle("/get_multi_venue_map", r.gated(r.mapHandler.GetMultiVenueMap)).Methods("GET")
	r.router.Handle("/multi_venue_map_preview", r.gated(r.mapHandler.GetMultiVenueMapPreview)).Methods("GET")
}

func (r *Router) gated(h http.HandlerFunc) http.Handler {
	return r.auth(h)
}
