// Package imagecache loads remote image content once per key and fans the
// result out to every caller waiting on that key.
package imagecache

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/go-pkgz/lcw"
	"golang.org/x/sync/semaphore"

	"github.com/emmaderbe/SocialApp/internal/dispatch"
	"github.com/emmaderbe/SocialApp/pkg/logger"
)

// DefaultMaxKeys bounds the number of cached images when Options.MaxKeys is unset.
const DefaultMaxKeys = 1000

// Fetcher retrieves the content for a key.
type Fetcher interface {
	Fetch(ctx context.Context, key string) ([]byte, error)
}

// FetcherFunc adapts a function to Fetcher.
type FetcherFunc func(ctx context.Context, key string) ([]byte, error)

func (f FetcherFunc) Fetch(ctx context.Context, key string) ([]byte, error) {
	return f(ctx, key)
}

// Callback receives the content for a key, or ok=false when the fetch failed.
// data is shared between callbacks and must not be modified.
type Callback = func(data []byte, ok bool)

type Options struct {
	// MaxKeys is the LRU capacity.
	MaxKeys int
	// MaxConcurrent limits simultaneous fetches; 0 means unlimited.
	MaxConcurrent int64
}

// Stats is a point-in-time view of cache activity.
type Stats struct {
	Hits     int64 `json:"hits"`
	Misses   int64 `json:"misses"`
	Failures int64 `json:"failures"`
	Keys     int   `json:"keys"`
	InFlight int   `json:"inFlight"`
}

// Cache coalesces concurrent requests per key and keeps successful results in an LRU.
type Cache struct {
	fetcher    Fetcher
	dispatcher dispatch.Dispatcher
	store      *lcw.LruCache
	sem        *semaphore.Weighted

	mu      sync.Mutex
	waiters map[string][]Callback

	hits     atomic.Int64
	misses   atomic.Int64
	failures atomic.Int64

	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// New creates a cache whose callbacks are delivered through dispatcher.
func New(fetcher Fetcher, dispatcher dispatch.Dispatcher, opts Options) (*Cache, error) {
	if fetcher == nil {
		return nil, errors.New("imagecache: fetcher is required")
	}
	if dispatcher == nil {
		return nil, errors.New("imagecache: dispatcher is required")
	}
	if opts.MaxKeys <= 0 {
		opts.MaxKeys = DefaultMaxKeys
	}

	store, err := lcw.NewLruCache(lcw.MaxKeys(opts.MaxKeys))
	if err != nil {
		return nil, fmt.Errorf("create lru cache: %w", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	c := &Cache{
		fetcher:    fetcher,
		dispatcher: dispatcher,
		store:      store,
		waiters:    make(map[string][]Callback),
		ctx:        ctx,
		cancel:     cancel,
	}
	if opts.MaxConcurrent > 0 {
		c.sem = semaphore.NewWeighted(opts.MaxConcurrent)
	}
	return c, nil
}

// Request delivers the content for key to onResult. Cached content is delivered without
// a fetch; otherwise onResult joins the waiters of the single in-flight fetch for key.
func (c *Cache) Request(key string, onResult Callback) {
	if onResult == nil {
		return
	}

	if data, ok := c.Peek(key); ok {
		c.hits.Add(1)
		c.deliver(onResult, data, true)
		return
	}

	c.mu.Lock()
	// the fetch may have completed between Peek and Lock
	if data, ok := c.Peek(key); ok {
		c.mu.Unlock()
		c.hits.Add(1)
		c.deliver(onResult, data, true)
		return
	}
	pending, inFlight := c.waiters[key]
	c.waiters[key] = append(pending, onResult)
	c.mu.Unlock()

	if inFlight {
		return
	}

	c.misses.Add(1)
	c.wg.Add(1)
	go c.fetch(key)
}

// Peek returns cached content without fetching.
func (c *Cache) Peek(key string) ([]byte, bool) {
	v, ok := c.store.Peek(key)
	if !ok {
		return nil, false
	}
	data, ok := v.([]byte)
	return data, ok
}

func (c *Cache) Stats() Stats {
	c.mu.Lock()
	inFlight := len(c.waiters)
	c.mu.Unlock()

	return Stats{
		Hits:     c.hits.Load(),
		Misses:   c.misses.Load(),
		Failures: c.failures.Load(),
		Keys:     c.store.Stat().Keys,
		InFlight: inFlight,
	}
}

// Close cancels in-flight fetches, waits for them to settle and releases the LRU.
func (c *Cache) Close() error {
	c.cancel()
	c.wg.Wait()
	return c.store.Close()
}

func (c *Cache) fetch(key string) {
	defer c.wg.Done()

	data, err := c.load(key)

	c.mu.Lock()
	if err == nil {
		if _, serr := c.store.Get(key, func() (interface{}, error) { return data, nil }); serr != nil {
			logger.Warn("image cache store failed", "module", "imagecache", "action", "store", "resource", "image", "result", "failed", "key", key, "error", serr)
		}
	}
	callbacks := c.waiters[key]
	delete(c.waiters, key)
	c.mu.Unlock()

	if err != nil {
		c.failures.Add(1)
		logger.Debug("image fetch failed", "module", "imagecache", "action", "fetch", "resource", "image", "result", "failed", "key", key, "waiters", len(callbacks), "error", err)
	}

	for _, cb := range callbacks {
		c.deliver(cb, data, err == nil)
	}
}

func (c *Cache) load(key string) ([]byte, error) {
	if c.sem != nil {
		if err := c.sem.Acquire(c.ctx, 1); err != nil {
			return nil, err
		}
		defer c.sem.Release(1)
	}

	data, err := c.fetcher.Fetch(c.ctx, key)
	if err != nil {
		return nil, err
	}
	if len(data) == 0 {
		return nil, errors.New("empty content")
	}
	return data, nil
}

func (c *Cache) deliver(cb Callback, data []byte, ok bool) {
	if !ok {
		data = nil
	}
	if !c.dispatcher.Post(func() { cb(data, ok) }) {
		logger.Debug("image result dropped", "module", "imagecache", "action", "deliver", "resource", "image", "result", "skipped")
	}
}
