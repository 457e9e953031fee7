package services

import (
	"context"
	"strconv"
	"strings"
	"sync"

	lru "github.com/hashicorp/golang-lru/v2"
	"golang.org/x/sync/singleflight"
)

// InvoicesPath is the invoice list view. Mutations invalidate it and
// create/update redirect to it.
const InvoicesPath = "/dashboard/invoices"

// Invalidator drops cached views under a path.
type Invalidator interface {
	Invalidate(path string)
}

// ViewCache holds rendered list views keyed by path and query. Concurrent
// misses for the same entry share one load. A load that started before an
// Invalidate of its path is returned to its callers but not stored.
type ViewCache struct {
	entries *lru.Cache[string, any]
	group   singleflight.Group

	mu          sync.Mutex
	generations map[string]uint64
}

func NewViewCache(size int) *ViewCache {
	if size <= 0 {
		size = 128
	}
	entries, _ := lru.New[string, any](size)
	return &ViewCache{entries: entries, generations: map[string]uint64{}}
}

func (c *ViewCache) generation(path string) uint64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.generations[path]
}

// Get returns the cached view for path and key, calling load on a miss.
// load runs detached from ctx cancellation since its result is shared by
// every caller waiting on the same entry.
func (c *ViewCache) Get(ctx context.Context, path, key string, load func(context.Context) (any, error)) (any, error) {
	entryKey := path + "?" + key
	if v, ok := c.entries.Get(entryKey); ok {
		viewCacheTotal.WithLabelValues("hit").Inc()
		return v, nil
	}
	viewCacheTotal.WithLabelValues("miss").Inc()

	gen := c.generation(path)
	v, err, _ := c.group.Do(entryKey+"#"+strconv.FormatUint(gen, 10), func() (any, error) {
		v, err := load(context.WithoutCancel(ctx))
		if err != nil {
			return nil, err
		}
		c.mu.Lock()
		if c.generations[path] == gen {
			c.entries.Add(entryKey, v)
		}
		c.mu.Unlock()
		return v, nil
	})
	return v, err
}

// Invalidate drops every entry cached under path.
func (c *ViewCache) Invalidate(path string) {
	c.mu.Lock()
	c.generations[path]++
	c.mu.Unlock()

	prefix := path + "?"
	for _, k := range c.entries.Keys() {
		if strings.HasPrefix(k, prefix) {
			c.entries.Remove(k)
		}
	}
	viewCacheTotal.WithLabelValues("invalidate").Inc()
}

// Len reports the number of cached entries.
func (c *ViewCache) Len() int { return c.entries.Len() }

// Cached is a typed wrapper over ViewCache.Get.
func Cached[T any](ctx context.Context, c *ViewCache, path, key string, load func(context.Context) (T, error)) (T, error) {
	v, err := c.Get(ctx, path, key, func(ctx context.Context) (any, error) {
		return load(ctx)
	})
	if err != nil {
		var zero T
		return zero, err
	}
	return v.(T), nil
}
