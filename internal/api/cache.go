package api

import (
	"context"
	"os"
	"strconv"
	"sync"
	"time"

	"github.com/relicsmith/relicsmith/internal/inventory"
	"github.com/relicsmith/relicsmith/pkg/artifact"
)

// CatalogCache is a thread-safe cache for the artifact set catalog.
// The catalog changes rarely (only on seeding), so handlers read it
// through the cache instead of hitting Postgres on every request.
type CatalogCache struct {
	mu       sync.Mutex
	ttl      time.Duration
	invSvc   *inventory.Service
	catalog  artifact.MapCatalog
	loadedAt time.Time
}

// NewCatalogCache creates a cache with the given TTL.
// If ttl <= 0, it defaults to 5 minutes.
func NewCatalogCache(invSvc *inventory.Service, ttl time.Duration) *CatalogCache {
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}
	return &CatalogCache{ttl: ttl, invSvc: invSvc}
}

// NewCatalogCacheFromEnv creates a cache with TTL from the
// CATALOG_CACHE_TTL_SECONDS env var.
func NewCatalogCacheFromEnv(invSvc *inventory.Service) *CatalogCache {
	ttl := 5 * time.Minute
	if v := os.Getenv("CATALOG_CACHE_TTL_SECONDS"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			ttl = time.Duration(parsed) * time.Second
		}
	}
	return NewCatalogCache(invSvc, ttl)
}

// Catalog returns the cached set catalog, reloading it from the
// database when the cached copy has expired.
func (c *CatalogCache) Catalog(ctx context.Context) (artifact.Catalog, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.catalog != nil && time.Since(c.loadedAt) < c.ttl {
		return c.catalog, nil
	}

	sets, err := c.invSvc.ListSets(ctx)
	if err != nil {
		if c.catalog != nil {
			// Serve the stale copy rather than failing the request.
			return c.catalog, nil
		}
		return nil, err
	}

	c.catalog = artifact.NewCatalog(sets)
	c.loadedAt = time.Now()
	return c.catalog, nil
}

// Invalidate drops the cached catalog so the next read reloads it.
func (c *CatalogCache) Invalidate() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.catalog = nil
}
