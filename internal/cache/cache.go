// Package cache provides TTL key-value storage for fetched GitHub data.
// Values are wrapped in an envelope carrying an absolute expiry so a store
// without native TTL support (or with a longer backstop TTL) still expires
// entries correctly.
package cache

import (
	"context"
	"encoding/json"
	"strings"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
)

// KeyPrefix namespaces all cache entries.
const KeyPrefix = "devcanvas_"

// DefaultTTL is used when the caller does not configure one.
const DefaultTTL = 10 * time.Minute

// Key builds the storage key for a username and kind ("user" or "repos").
func Key(username, kind string) string {
	return strings.ToLower(username) + "_" + kind
}

// Store is a TTL cache. Get returns ok=false on missing, corrupt, or expired
// entries; storage failures are swallowed as misses since the cache is an
// optimization, never a source of truth.
type Store interface {
	Get(ctx context.Context, key string) (json.RawMessage, bool)
	Set(ctx context.Context, key string, value any, ttl time.Duration)
	Delete(ctx context.Context, key string)
	Clear(ctx context.Context)
}

// envelope wraps a cached value with its absolute expiry in epoch
// milliseconds.
type envelope struct {
	Data   json.RawMessage `json:"data"`
	Expiry int64           `json:"expiry"`
}

func (e envelope) expired(now time.Time) bool {
	return now.UnixMilli() > e.Expiry
}

func wrap(value any, ttl time.Duration, now time.Time) ([]byte, error) {
	data, err := json.Marshal(value)
	if err != nil {
		return nil, err
	}
	return json.Marshal(envelope{Data: data, Expiry: now.Add(ttl).UnixMilli()})
}

// RedisStore keeps entries in Redis. The Redis TTL is set slightly above the
// envelope expiry as a backstop so dead entries are reclaimed even if never
// read again.
type RedisStore struct {
	client *redis.Client
}

// NewRedisStore creates a Redis-backed store.
func NewRedisStore(client *redis.Client) *RedisStore {
	return &RedisStore{client: client}
}

func (s *RedisStore) Get(ctx context.Context, key string) (json.RawMessage, bool) {
	raw, err := s.client.Get(ctx, KeyPrefix+key).Bytes()
	if err != nil {
		return nil, false
	}
	var env envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return nil, false
	}
	if env.expired(time.Now()) {
		s.client.Del(ctx, KeyPrefix+key)
		return nil, false
	}
	return env.Data, true
}

func (s *RedisStore) Set(ctx context.Context, key string, value any, ttl time.Duration) {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	raw, err := wrap(value, ttl, time.Now())
	if err != nil {
		return
	}
	s.client.Set(ctx, KeyPrefix+key, raw, ttl+time.Minute)
}

func (s *RedisStore) Delete(ctx context.Context, key string) {
	s.client.Del(ctx, KeyPrefix+key)
}

func (s *RedisStore) Clear(ctx context.Context) {
	iter := s.client.Scan(ctx, 0, KeyPrefix+"*", 0).Iterator()
	for iter.Next(ctx) {
		s.client.Del(ctx, iter.Val())
	}
}

// MemoryStore is an in-process store for tests and single-node deployments
// without Redis.
type MemoryStore struct {
	mu      sync.RWMutex
	entries map[string][]byte
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{entries: make(map[string][]byte)}
}

func (s *MemoryStore) Get(_ context.Context, key string) (json.RawMessage, bool) {
	s.mu.RLock()
	raw, ok := s.entries[KeyPrefix+key]
	s.mu.RUnlock()
	if !ok {
		return nil, false
	}
	var env envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return nil, false
	}
	if env.expired(time.Now()) {
		s.mu.Lock()
		delete(s.entries, KeyPrefix+key)
		s.mu.Unlock()
		return nil, false
	}
	return env.Data, true
}

func (s *MemoryStore) Set(_ context.Context, key string, value any, ttl time.Duration) {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	raw, err := wrap(value, ttl, time.Now())
	if err != nil {
		return
	}
	s.mu.Lock()
	s.entries[KeyPrefix+key] = raw
	s.mu.Unlock()
}

func (s *MemoryStore) Delete(_ context.Context, key string) {
	s.mu.Lock()
	delete(s.entries, KeyPrefix+key)
	s.mu.Unlock()
}

func (s *MemoryStore) Clear(_ context.Context) {
	s.mu.Lock()
	s.entries = make(map[string][]byte)
	s.mu.Unlock()
}
