// Package cache is the console's query cache: explicit entries under stable
// keys, refetched after an explicit invalidation or once they outlive the
// stale time. Nothing is ever patched in place.
package cache

import (
	"context"
	"sync"
	"time"

	"github.com/dmitrijs2005/casekeeper/internal/client/progress"
	"golang.org/x/sync/singleflight"
)

// CaseListKey identifies the single cached case list.
const CaseListKey = "case-list"

// Invalidator is the part of the cache mutations need.
type Invalidator interface {
	Invalidate(key string)
}

type entry struct {
	data      any
	hasData   bool
	fetchedAt time.Time
	stale     bool
	// generation is bumped by every invalidation so that a fetch which
	// started before it cannot store its result as fresh
	generation uint64
	// dataGeneration is the generation the stored data was fetched under
	dataGeneration uint64
	inFlight       int
}

type Cache struct {
	mu        sync.Mutex
	entries   map[string]*entry
	group     singleflight.Group
	staleTime time.Duration
	progress  *progress.Indicator
	now       func() time.Time
}

// New returns a cache whose entries go stale after staleTime (zero means
// only invalidation makes them stale). ind may be nil.
func New(staleTime time.Duration, ind *progress.Indicator) *Cache {
	return &Cache{
		entries:   make(map[string]*entry),
		staleTime: staleTime,
		progress:  ind,
		now:       time.Now,
	}
}

func (c *Cache) entryLocked(key string) *entry {
	e, ok := c.entries[key]
	if !ok {
		e = &entry{}
		c.entries[key] = e
	}
	return e
}

// Invalidate marks key stale; the next read refetches. A fetch already in
// flight is not joined by later reads.
func (c *Cache) Invalidate(key string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	e := c.entryLocked(key)
	e.stale = true
	e.generation++
	c.group.Forget(key)
}

// Reset drops all cached data.
func (c *Cache) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	for key, e := range c.entries {
		e.data = nil
		e.hasData = false
		e.stale = true
		e.generation++
		c.group.Forget(key)
	}
}

// Loading reports a fetch in flight for a key that has no data yet.
func (c *Cache) Loading(key string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	e, ok := c.entries[key]
	return ok && e.inFlight > 0 && !e.hasData
}

// Fetching reports any fetch in flight for key.
func (c *Cache) Fetching(key string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	e, ok := c.entries[key]
	return ok && e.inFlight > 0
}

func (c *Cache) fresh(key string) (any, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	e, ok := c.entries[key]
	if !ok || !e.hasData || e.stale {
		return nil, false
	}
	if c.staleTime > 0 && c.now().Sub(e.fetchedAt) >= c.staleTime {
		return nil, false
	}
	return e.data, true
}

func (c *Cache) fetch(ctx context.Context, key string, fn func(context.Context) (any, error)) (any, error) {
	v, err, _ := c.group.Do(key, func() (any, error) {
		c.mu.Lock()
		e := c.entryLocked(key)
		gen := e.generation
		e.inFlight++
		c.mu.Unlock()

		if c.progress != nil {
			c.progress.Start()
			defer c.progress.Done()
		}

		data, err := fn(ctx)

		c.mu.Lock()
		defer c.mu.Unlock()
		e.inFlight--
		if err != nil {
			return e.data, err
		}
		if e.hasData && e.dataGeneration > gen {
			// a fetch started after ours already stored newer data
			return data, nil
		}
		e.data = data
		e.hasData = true
		e.dataGeneration = gen
		e.fetchedAt = c.now()
		e.stale = e.generation != gen
		return data, nil
	})
	return v, err
}

// Query binds a key to the function that loads its data.
type Query[T any] struct {
	cache *Cache
	key   string
	load  func(context.Context) (T, error)
}

func NewQuery[T any](c *Cache, key string, load func(context.Context) (T, error)) *Query[T] {
	return &Query[T]{cache: c, key: key, load: load}
}

// Get returns fresh cached data or fetches it. Concurrent callers share one
// fetch, unless the key was invalidated after that fetch started: then a new
// fetch is made. On failure the previous data, if any, is returned with the
// error.
func (q *Query[T]) Get(ctx context.Context) (T, error) {
	if v, ok := q.cache.fresh(q.key); ok {
		return v.(T), nil
	}
	return q.Refetch(ctx)
}

// Refetch always goes to the backend.
func (q *Query[T]) Refetch(ctx context.Context) (T, error) {
	v, err := q.cache.fetch(ctx, q.key, func(ctx context.Context) (any, error) {
		return q.load(ctx)
	})
	var out T
	if v != nil {
		out = v.(T)
	}
	return out, err
}

func (q *Query[T]) Loading() bool {
	return q.cache.Loading(q.key)
}

func (q *Query[T]) Fetching() bool {
	return q.cache.Fetching(q.key)
}
