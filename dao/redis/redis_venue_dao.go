package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"venue-map-proxy/db"
	"venue-map-proxy/models/venue"
)

const VENUE_RECORD_KEY_FORMAT_V1 = "venue_record_v1:%s|%s"

// RedisVenueDAO caches resolved venue records in Redis.
type RedisVenueDAO struct {
	client db.RedisClient
	ttl    time.Duration
}

// NewRedisVenueDAO initializes a RedisVenueDAO with the Redis client.
func NewRedisVenueDAO(client db.RedisClient, ttl time.Duration) *RedisVenueDAO {
	return &RedisVenueDAO{client: client, ttl: ttl}
}

// VenueKey normalizes the query and city so trivially different spellings share an entry.
func VenueKey(query, city string) string {
	norm := func(s string) string { return strings.ToLower(strings.TrimSpace(s)) }
	return fmt.Sprintf(VENUE_RECORD_KEY_FORMAT_V1, norm(query), norm(city))
}

// GetVenue returns the cached record, or nil on a miss.
func (dao *RedisVenueDAO) GetVenue(ctx context.Context, query, city string) (*venue.VenueRecord, error) {
	key := VenueKey(query, city)
	str, err := dao.client.Get(ctx, key)
	if errors.Is(err, db.ErrKeyNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("[RedisVenueDAO] failed to get venue record: %w", err)
	}
	var record venue.VenueRecord
	if err := json.Unmarshal([]byte(str), &record); err != nil {
		// unreadable entries are evicted so the next lookup repopulates them
		if delErr := dao.client.Del(ctx, key); delErr != nil {
			log.Printf("[RedisVenueDAO] Failed to evict corrupt record %s: %v", key, delErr)
		}
		return nil, fmt.Errorf("failed to unmarshal venue record JSON: %w", err)
	}
	return &record, nil
}

// SetVenue stores a resolved record under the configured ttl.
func (dao *RedisVenueDAO) SetVenue(ctx context.Context, query, city string, record *venue.VenueRecord) error {
	key := VenueKey(query, city)
	data, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("failed to marshal venue record %s: %w", key, err)
	}
	if err := dao.client.Set(ctx, key, string(data), dao.ttl); err != nil {
		return fmt.Errorf("failed to set venue record in redis: %w", err)
	}
	log.Printf("[RedisVenueDAO] Cached venue record %s", key)
	return nil
}
