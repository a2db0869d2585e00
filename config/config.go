package config

import (
	"log"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Google endpoints
const PLACES_SEARCH_URL = "https://maps.googleapis.com/maps/api/place/textsearch/json"
const PLACE_DETAILS_URL = "https://maps.googleapis.com/maps/api/place/details/json"
const PLACE_PHOTO_URL = "https://maps.googleapis.com/maps/api/place/photo"
const STATIC_MAP_URL = "https://maps.googleapis.com/maps/api/staticmap"
const DIRECTIONS_URL = "https://www.google.com/maps/dir/"
const EMBED_DIRECTIONS_URL = "https://www.google.com/maps/embed/v1/directions"

// Defaults
const DEFAULT_PORT = "8080"
const DEFAULT_ENV = "prod"
const DEFAULT_UPSTREAM_TIMEOUT_SECONDS = 10
const DEFAULT_STATIC_MAP_ZOOM = 13
const DEFAULT_STATIC_MAP_SIZE = "600x400"
const DEFAULT_VENUE_CACHE_TTL_MINUTES = 60

// Resources file paths
const RESOURCES_PATH_PREFIX = "resources"
const TEXT_SEARCH_RESPONSE_RESOURCE = "text_search_response.json"
const PLACE_DETAILS_RESPONSE_RESOURCE = "place_details_response.json"

// Endpoints holds the upstream base URLs. Only search and details are ever
// called server side, the rest are URL templates handed back to clients.
type Endpoints struct {
	SearchURL     string
	DetailsURL    string
	PhotoURL      string
	StaticMapURL  string
	DirectionsURL string
	EmbedURL      string
}

// RedisConfig configures the optional venue cache. An empty Address disables it.
type RedisConfig struct {
	Address  string
	Password string
	DB       int
	TTL      time.Duration
}

// Config is read once at process start and passed to every component.
type Config struct {
	Env             string
	Port            string
	APIKey          string
	BearerToken     string
	UpstreamTimeout time.Duration
	StaticMapZoom   int
	StaticMapSize   string
	Endpoints       Endpoints
	Redis           RedisConfig
}

// DefaultEndpoints returns the production Google endpoints.
func DefaultEndpoints() Endpoints {
	return Endpoints{
		SearchURL:     PLACES_SEARCH_URL,
		DetailsURL:    PLACE_DETAILS_URL,
		PhotoURL:      PLACE_PHOTO_URL,
		StaticMapURL:  STATIC_MAP_URL,
		DirectionsURL: DIRECTIONS_URL,
		EmbedURL:      EMBED_DIRECTIONS_URL,
	}
}

// Load reads an optional .env file and then the process environment.
func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("[Config] No .env file loaded, using process environment")
	}
	return FromEnv(os.Getenv)
}

// FromEnv builds a Config from the given lookup function.
func FromEnv(getenv func(string) string) *Config {
	cfg := &Config{
		Env:             stringOr(getenv("APP_ENV"), DEFAULT_ENV),
		Port:            stringOr(getenv("PORT"), DEFAULT_PORT),
		APIKey:          getenv("GOOGLE_API_KEY"),
		BearerToken:     getenv("BEARER_TOKEN"),
		UpstreamTimeout: time.Duration(intOr(getenv("UPSTREAM_TIMEOUT_SECONDS"), DEFAULT_UPSTREAM_TIMEOUT_SECONDS)) * time.Second,
		StaticMapZoom:   intOr(getenv("STATIC_MAP_ZOOM"), DEFAULT_STATIC_MAP_ZOOM),
		StaticMapSize:   stringOr(getenv("STATIC_MAP_SIZE"), DEFAULT_STATIC_MAP_SIZE),
		Endpoints: Endpoints{
			SearchURL:     stringOr(getenv("PLACES_SEARCH_URL"), PLACES_SEARCH_URL),
			DetailsURL:    stringOr(getenv("PLACE_DETAILS_URL"), PLACE_DETAILS_URL),
			PhotoURL:      stringOr(getenv("PLACE_PHOTO_URL"), PLACE_PHOTO_URL),
			StaticMapURL:  stringOr(getenv("STATIC_MAP_URL"), STATIC_MAP_URL),
			DirectionsURL: stringOr(getenv("DIRECTIONS_URL"), DIRECTIONS_URL),
			EmbedURL:      stringOr(getenv("EMBED_DIRECTIONS_URL"), EMBED_DIRECTIONS_URL),
		},
		Redis: RedisConfig{
			Address:  getenv("REDIS_ADDRESS"),
			Password: getenv("REDIS_PASSWORD"),
			DB:       intOr(getenv("REDIS_DB"), 0),
			TTL:      time.Duration(intOr(getenv("VENUE_CACHE_TTL_MINUTES"), DEFAULT_VENUE_CACHE_TTL_MINUTES)) * time.Minute,
		},
	}

	if cfg.Env == DEFAULT_ENV && cfg.APIKey == "" {
		log.Println("[Config] GOOGLE_API_KEY is not set, upstream calls will be rejected")
	}
	return cfg
}

// AuthEnabled reports whether the bearer gate is active.
func (c *Config) AuthEnabled() bool {
	return c.BearerToken != ""
}

// CacheEnabled reports whether a Redis address was configured.
func (c *Config) CacheEnabled() bool {
	return c.Redis.Address != ""
}

// BaseDir returns the absolute path of the project root directory
func BaseDir() string {
	// Check if PROJECT_ROOT is set
	if root := os.Getenv("PROJECT_ROOT"); root != "" {
		return root
	}

	wd, err := os.Getwd()
	if err != nil {
		panic("Unable to determine working directory: " + err.Error())
	}

	return wd
}

func GetResourcePath(resourceFile string) string {
	return filepath.Join(BaseDir(), RESOURCES_PATH_PREFIX, resourceFile)
}

func stringOr(v, fallback string) string {
	if v == "" {
		return fallback
	}
	return v
}

func intOr(v string, fallback int) int {
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		log.Printf("[Config] Invalid integer %q, using default %d", v, fallback)
		return fallback
	}
	return n
}
