package store

import (
	"errors"
	"fmt"
	"time"

	lru "github.com/hashicorp/golang-lru"

	"github.com/m-zajac/gitmatch/internal/app"
)

// CachedProfiles wraps a profile store with an in-memory read cache.
// The cache only saves kv store reads; the freshness policy for upstream
// refetches stays with the service.
type CachedProfiles struct {
	store app.ProfileStore
	cache *lru.Cache
	ttl   time.Duration
}

var _ app.ProfileStore = &CachedProfiles{}

// NewCachedProfiles creates new CachedProfiles instance.
func NewCachedProfiles(store app.ProfileStore, size int, ttl time.Duration) (*CachedProfiles, error) {
	if size <= 0 {
		return nil, errors.New("cache size must be greater than 0")
	}
	cache, err := lru.New(size)
	if err != nil {
		return nil, fmt.Errorf("creating lru cache for profiles: %w", err)
	}

	return &CachedProfiles{
		store: store,
		cache: cache,
		ttl:   ttl,
	}, nil
}

// Profile returns stored profile for given username.
func (c *CachedProfiles) Profile(username string) (*app.Profile, error) {
	val, ok := c.cache.Get(username)
	if ok {
		entry := val.(profileCacheEntry)
		if entry.created.Add(c.ttl).After(time.Now()) {
			return entry.profile, nil
		}
	}

	profile, err := c.store.Profile(username)
	if err != nil {
		return nil, err
	}
	if profile != nil {
		c.cache.Add(username, profileCacheEntry{
			created: time.Now(),
			profile: profile,
		})
	}

	return profile, nil
}

// Save upserts given profile and refreshes the cached copy.
func (c *CachedProfiles) Save(profile *app.Profile) error {
	if err := c.store.Save(profile); err != nil {
		return err
	}
	c.cache.Add(profile.Username, profileCacheEntry{
		created: time.Now(),
		profile: profile,
	})

	return nil
}

type profileCacheEntry struct {
	created time.Time
	profile *app.Profile
}
