package di

import (
	"context"
	"fmt"
	"log"

	goredis "github.com/go-redis/redis/v8"
	"github.com/gorilla/mux"

	"venue-map-proxy/api"
	"venue-map-proxy/api/places"
	"venue-map-proxy/config"
	"venue-map-proxy/dao/redis"
	"venue-map-proxy/db"
	"venue-map-proxy/server"
	"venue-map-proxy/server/handlers"
	services "venue-map-proxy/service"
)

// Container holds all application dependencies.
type Container struct {
	Config             *config.Config
	RedisClient        db.RedisClient
	RedisVenueDao      *redis.RedisVenueDAO
	PlacesAPI          places.PlacesAPI
	VenueResolver      *services.VenueResolver
	MapLinkComposer    *services.MapLinkComposer
	VenueHandler       *handlers.VenueHandler
	MapHandler         *handlers.MapHandler
	MuxRouter          *mux.Router
	Router             *server.Router
	VenueMapHttpServer *server.VenueMapHttpServer
}

// NewContainer initializes and wires up all dependencies.
func NewContainer(cfg *config.Config) *Container {
	log.Printf("[Container] initializing container - env: %s", cfg.Env)

	var placesAPI places.PlacesAPI
	if cfg.Env != config.DEFAULT_ENV {
		placesAPI = places.NewPlacesApiClientMock(
			config.GetResourcePath(config.TEXT_SEARCH_RESPONSE_RESOURCE),
			config.GetResourcePath(config.PLACE_DETAILS_RESPONSE_RESOURCE),
		)
		log.Printf("[Container] Using mock places api")
	} else {
		log.Printf("[Container] Using prod places api")
		httpClient := api.NewHTTPClient("", cfg.UpstreamTimeout)
		placesAPI = places.NewPlacesApiClient(httpClient, cfg.APIKey, cfg.Endpoints)
	}

	// Optional Redis cache
	var redisClient db.RedisClient
	var redisVenueDao *redis.RedisVenueDAO
	var cache services.VenueCache
	if cfg.CacheEnabled() {
		redisClient = db.NewRedisCacheClient(goredis.NewClient(&goredis.Options{
			Addr:     cfg.Redis.Address,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		}))
		if err := redisClient.Ping(context.Background()); err != nil {
			panic(fmt.Sprintf("Failed to connect to Redis: %v", err))
		}
		redisVenueDao = redis.NewRedisVenueDAO(redisClient, cfg.Redis.TTL)
		cache = redisVenueDao
		log.Printf("[Container] Venue cache enabled at %s (ttl %s)", cfg.Redis.Address, cfg.Redis.TTL)
	} else {
		log.Printf("[Container] Venue cache disabled")
	}

	venueResolver := services.NewVenueResolver(placesAPI, cache, cfg)
	mapLinkComposer := services.NewMapLinkComposer(cfg)

	venueHandler := handlers.NewVenueHandler(venueResolver)
	mapHandler := handlers.NewMapHandler(mapLinkComposer)

	muxRouter := mux.NewRouter()
	router := server.NewRouter(venueHandler, mapHandler, muxRouter, cfg.BearerToken)
	if !cfg.AuthEnabled() {
		log.Printf("[Container] BEARER_TOKEN not set, API routes are unauthenticated")
	}

	venueMapHttpServer := server.NewVenueMapHttpServer(router, muxRouter, cfg.Port)

	return &Container{
		Config:             cfg,
		RedisClient:        redisClient,
		RedisVenueDao:      redisVenueDao,
		PlacesAPI:          placesAPI,
		VenueResolver:      venueResolver,
		MapLinkComposer:    mapLinkComposer,
		VenueHandler:       venueHandler,
		MapHandler:         mapHandler,
		MuxRouter:          muxRouter,
		Router:             router,
		VenueMapHttpServer: venueMapHttpServer,
	}
}

// Close releases the Redis connection when one was opened.
func (c *Container) Close() {
	if c.RedisClient == nil {
		return
	}
	if err := c.RedisClient.Close(); err != nil {
		log.Printf("[Container] Failed to close Redis client: %v", err)
	}
}
