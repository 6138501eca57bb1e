// Package resultcache memoizes detection results per username with a TTL.
// The detector itself never caches; this is the key-value collaborator the
// calling layer uses to avoid re-running detection for hot usernames.
package resultcache

import (
	"log/slog"
	"strings"
	"time"

	"github.com/maypok86/otter/v2"

	"github.com/codeGROOVE-dev/tokorigin/pkg/origin"
)

type entry struct {
	result    origin.Result
	expiresAt time.Time
}

// Cache is an in-memory TTL cache of detection results keyed by username.
// Safe for concurrent use.
type Cache struct {
	cache  *otter.Cache[string, entry]
	logger *slog.Logger
	ttl    time.Duration
}

// New creates a result cache. Entries expire ttl after they are written.
func New(ttl time.Duration, logger *slog.Logger) *Cache {
	if logger == nil {
		logger = slog.Default()
	}
	cache := otter.Must(&otter.Options[string, entry]{
		MaximumSize:      100_000,
		InitialCapacity:  1_000,
		ExpiryCalculator: otter.ExpiryWriting[string, entry](ttl),
	})
	return &Cache{cache: cache, logger: logger, ttl: ttl}
}

// key normalizes usernames so "@User" and "user" share an entry.
func key(username string) string {
	return strings.ToLower(strings.TrimPrefix(strings.TrimSpace(username), "@"))
}

// Get returns the cached result for a username, if present and fresh.
func (c *Cache) Get(username string) (origin.Result, bool) {
	e, found := c.cache.GetIfPresent(key(username))
	if !found {
		return origin.Result{}, false
	}
	// Otter evicts on its own schedule; double-check the deadline so a
	// stale entry is never returned.
	if time.Now().After(e.expiresAt) {
		c.cache.Invalidate(key(username))
		return origin.Result{}, false
	}
	c.logger.Debug("result cache hit", "username", username, "country", e.result.Country)
	return e.result, true
}

// Set stores a detection result for a username.
func (c *Cache) Set(username string, result origin.Result) {
	c.cache.Set(key(username), entry{
		result:    result,
		expiresAt: time.Now().Add(c.ttl),
	})
	c.logger.Debug("result cache set", "username", username, "ttl", c.ttl)
}

// Len reports the approximate number of cached entries.
func (c *Cache) Len() int {
	return int(c.cache.EstimatedSize())
}
