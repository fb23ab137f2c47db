package services

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"sync"
	"time"
)

// ErrCacheMiss is returned by Cache.Get when the key is absent or expired
var ErrCacheMiss = errors.New("cache miss")

// Cache stores JSON-encoded values with an expiration
type Cache interface {
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) error
	Get(ctx context.Context, key string, dest interface{}) error
	Delete(ctx context.Context, key string) error
	DeletePrefix(ctx context.Context, prefix string) error
}

// GetOrSet retrieves a value from cache, or calls fn to fetch and cache it.
// fn is only called on a miss.
func GetOrSet[T any](c Cache, ctx context.Context, key string, expiration time.Duration, fn func() (T, error)) (T, error) {
	var result T

	if err := c.Get(ctx, key, &result); err == nil {
		return result, nil
	}

	result, err := fn()
	if err != nil {
		return result, err
	}

	// cache set errors are not fatal
	_ = c.Set(ctx, key, result, expiration)

	return result, nil
}

type memoryEntry struct {
	data      []byte
	expiresAt time.Time
}

const (
	memorySweepInterval = time.Minute
	memoryMaxEntries    = 1024
)

// MemoryCache is the in-process Cache used when Redis is not configured.
// Expired entries are swept on Set at most once per sweep interval, and the
// map never holds more than maxEntries keys.
type MemoryCache struct {
	mu         sync.Mutex
	entries    map[string]memoryEntry
	now        func() time.Time
	lastSweep  time.Time
	maxEntries int
}

func NewMemoryCache() *MemoryCache {
	return &MemoryCache{
		entries:    make(map[string]memoryEntry),
		now:        time.Now,
		maxEntries: memoryMaxEntries,
	}
}

func (e memoryEntry) expired(now time.Time) bool {
	return !e.expiresAt.IsZero() && now.After(e.expiresAt)
}

// sweep drops expired entries, then evicts the entries closest to expiry
// until there is room for one more key. Callers hold mu.
func (c *MemoryCache) sweep(now time.Time, force bool) {
	if force || now.Sub(c.lastSweep) >= memorySweepInterval {
		for key, entry := range c.entries {
			if entry.expired(now) {
				delete(c.entries, key)
			}
		}
		c.lastSweep = now
	}
	for len(c.entries) >= c.maxEntries {
		var victim string
		var victimAt time.Time
		found := false
		for key, entry := range c.entries {
			at := entry.expiresAt
			if at.IsZero() {
				at = now.Add(100 * 365 * 24 * time.Hour)
			}
			if !found || at.Before(victimAt) {
				victim, victimAt, found = key, at, true
			}
		}
		delete(c.entries, victim)
	}
}

func (c *MemoryCache) Set(_ context.Context, key string, value interface{}, expiration time.Duration) error {
	data, err := json.Marshal(value)
	if err != nil {
		return err
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	now := c.now()
	if _, exists := c.entries[key]; !exists {
		c.sweep(now, len(c.entries) >= c.maxEntries)
	}
	entry := memoryEntry{data: data}
	if expiration > 0 {
		entry.expiresAt = now.Add(expiration)
	}
	c.entries[key] = entry
	return nil
}

func (c *MemoryCache) Get(_ context.Context, key string, dest interface{}) error {
	c.mu.Lock()
	entry, ok := c.entries[key]
	if ok && entry.expired(c.now()) {
		delete(c.entries, key)
		ok = false
	}
	c.mu.Unlock()
	if !ok {
		return ErrCacheMiss
	}
	return json.Unmarshal(entry.data, dest)
}

func (c *MemoryCache) Delete(_ context.Context, key string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.entries, key)
	return nil
}

func (c *MemoryCache) DeletePrefix(_ context.Context, prefix string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	for key := range c.entries {
		if strings.HasPrefix(key, prefix) {
			delete(c.entries, key)
		}
	}
	return nil
}
