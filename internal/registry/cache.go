package registry

import (
	"time"

	gocache "github.com/patrickmn/go-cache"
)

const (
	lookupTTL   = 5 * time.Minute
	lookupSweep = 10 * time.Minute
)

// lookupCache memoizes cheap-to-miss, frequent lookups (artifact type,
// latest version) for the session. Never persisted.
type lookupCache struct {
	c *gocache.Cache
}

func newLookupCache() *lookupCache {
	return &lookupCache{c: gocache.New(lookupTTL, lookupSweep)}
}

func (l *lookupCache) get(key string) (string, bool) {
	v, ok := l.c.Get(key)
	if !ok {
		return "", false
	}
	s, ok := v.(string)
	return s, ok
}

func (l *lookupCache) set(key, value string) {
	l.c.Set(key, value, gocache.DefaultExpiration)
}

func (l *lookupCache) drop(keys ...string) {
	for _, key := range keys {
		l.c.Delete(key)
	}
}
