package db

import (
	"context"
	"sync"
	"time"
)

type mockEntry struct {
	value     string
	expiresAt time.Time
}

// MockRedisClient simulates a Redis client for testing purposes.
type MockRedisClient struct {
	data map[string]mockEntry
	mu   sync.RWMutex
	now  func() time.Time

	// SetErr and GetErr, when set, are returned by Set and Get.
	SetErr error
	GetErr error
}

// NewMockRedisClient initializes a new MockRedisClient.
func NewMockRedisClient() *MockRedisClient {
	return &MockRedisClient{
		data: make(map[string]mockEntry),
		now:  time.Now,
	}
}

func (m *MockRedisClient) Set(ctx context.Context, key, value string, ttl time.Duration) error {
	if m.SetErr != nil {
		return m.SetErr
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	e := mockEntry{value: value}
	if ttl > 0 {
		e.expiresAt = m.now().Add(ttl)
	}
	m.data[key] = e
	return nil
}

func (m *MockRedisClient) Get(ctx context.Context, key string) (string, error) {
	if m.GetErr != nil {
		return "", m.GetErr
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	e, exists := m.data[key]
	if !exists {
		return "", ErrKeyNotFound
	}
	if !e.expiresAt.IsZero() && !m.now().Before(e.expiresAt) {
		return "", ErrKeyNotFound
	}
	return e.value, nil
}

func (m *MockRedisClient) Del(ctx context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.data, key)
	return nil
}

// Len reports how many keys are stored, expired or not.
func (m *MockRedisClient) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.data)
}

func (m *MockRedisClient) Ping(ctx context.Context) error { return nil }

func (m *MockRedisClient) Close() error { return nil }
