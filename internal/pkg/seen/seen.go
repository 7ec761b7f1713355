// Package seen provides a first-sighting store used to deduplicate
// per-session side effects such as blog view counting. The store is injected
// into consumers so tests can run against the in-memory implementation and
// reset it deterministically.
package seen

import (
	"context"
	"sync"
	"time"

	pkgredis "github.com/agrotech/core/internal/pkg/redis"
)

// Store records (scope, key) sightings. FirstSeen returns true exactly once
// per pair within the TTL window.
type Store interface {
	FirstSeen(ctx context.Context, scope, key string, ttl time.Duration) (bool, error)
}

// RedisStore backs the store with Redis SETNX, sharing dedup state across
// replicas.
type RedisStore struct {
	rc     *pkgredis.Client
	prefix string
}

func NewRedisStore(rc *pkgredis.Client, prefix string) *RedisStore {
	if prefix == "" {
		prefix = "agro:seen"
	}
	return &RedisStore{rc: rc, prefix: prefix}
}

func (s *RedisStore) FirstSeen(ctx context.Context, scope, key string, ttl time.Duration) (bool, error) {
	return s.rc.SetNX(ctx, s.prefix+":"+scope+":"+key, 1, ttl)
}

// MemoryStore is a process-local store for tests and redis-less setups.
// Entries expire lazily on access.
type MemoryStore struct {
	mu      sync.Mutex
	entries map[string]time.Time
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{entries: make(map[string]time.Time)}
}

func (s *MemoryStore) FirstSeen(_ context.Context, scope, key string, ttl time.Duration) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	k := scope + ":" + key
	now := time.Now()
	if exp, ok := s.entries[k]; ok && (exp.IsZero() || exp.After(now)) {
		return false, nil
	}
	var exp time.Time
	if ttl > 0 {
		exp = now.Add(ttl)
	}
	s.entries[k] = exp
	return true, nil
}

// Reset clears all sightings.
func (s *MemoryStore) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries = make(map[string]time.Time)
}
