package publicip

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/spf13/afero"

	"github.com/ghztomash/public-ip-address/cache"
	"github.com/ghztomash/public-ip-address/lookup"
	"github.com/ghztomash/public-ip-address/providers"
)

// Options configures a Client. The zero value gives the default
// fallback ordering, the default cache location and TTL, no API key
// and no encryption.
type Options struct {
	// Provider pins a single provider by its identifier. No fallback
	// happens when it fails. Empty means "iterate the default order".
	Provider string

	// APIKey is passed to providers which can use one.
	APIKey string

	// CacheTTL is per-entry expiry. Zero picks cache.DefaultTTL,
	// negative disables expiry.
	CacheTTL time.Duration

	// CachePath overrides the cache file location.
	CachePath string

	// EncryptCache seals the cache file with a machine-bound secret.
	EncryptCache bool

	// CacheSecret seals the cache file with an explicit secret
	// instead of the machine-bound one. Implies encryption.
	CacheSecret []byte

	// ForceRefresh bypasses cache reads. Results are still written.
	ForceRefresh bool

	// HTTPClient substitutes the transport. Defaults to
	// lookup.DefaultHTTPClient.
	HTTPClient lookup.HTTPClient

	// Logger receives lookup and cache diagnostics. Defaults to a
	// no-op.
	Logger lookup.Logger

	// CacheFs substitutes the cache file system. Tests use
	// afero.NewMemMapFs.
	CacheFs afero.Fs
}

// Client is the lookup facade: it consults the cache, on miss or
// expiry asks the network and on success refreshes the cache. A Client
// is safe for concurrent use and owns its cache until Close.
type Client struct {
	service      *lookup.Service
	pinned       lookup.Provider
	key          string
	forceRefresh bool
	logger       lookup.Logger

	mu    sync.Mutex
	cache *cache.Cache
}

// NewClient builds a facade and loads the cache from disk. A cache
// which cannot be loaded is reported to the logger and treated as
// empty, never as a fatal condition.
func NewClient(opts Options) (*Client, error) {
	logger := opts.Logger
	if logger == nil {
		logger = lookup.NoopLogger()
	}

	var pinned lookup.Provider

	if opts.Provider != "" {
		provider, err := providers.New(opts.Provider)
		if err != nil {
			return nil, err
		}

		pinned = provider
	}

	cacheOpts := []cache.Option{}

	if opts.CacheTTL != 0 {
		cacheOpts = append(cacheOpts, cache.WithTTL(opts.CacheTTL))
	}

	if opts.CacheFs != nil {
		cacheOpts = append(cacheOpts, cache.WithFs(opts.CacheFs))
	}

	secret := opts.CacheSecret

	if secret == nil && opts.EncryptCache {
		machineSecret, err := cache.MachineSecret()
		if err != nil {
			return nil, fmt.Errorf("cannot derive a machine secret: %w", err)
		}

		secret = machineSecret
	}

	if secret != nil {
		cacheOpts = append(cacheOpts, cache.WithEncryptionSecret(secret))
	}

	responseCache := cache.New(opts.CachePath, cacheOpts...)
	if err := responseCache.Load(); err != nil {
		logger.CacheError(err)
	}

	return &Client{
		service:      lookup.NewService(opts.HTTPClient, logger, providers.Default()),
		pinned:       pinned,
		key:          opts.APIKey,
		forceRefresh: opts.ForceRefresh,
		logger:       logger,
		cache:        responseCache,
	}, nil
}

// Lookup resolves the target, preferring the cache. A fresh result is
// written to the cache and flushed to disk before returning; a
// persistence failure is logged but never converts a successful
// lookup into an error.
func (c *Client) Lookup(ctx context.Context, target lookup.Target) (*lookup.Response, error) {
	key := target.CacheKey()

	if !c.forceRefresh {
		c.mu.Lock()
		entry, ok := c.cache.Get(key)
		c.mu.Unlock()

		if ok {
			response := entry.Response

			return &response, nil
		}
	}

	var (
		response *lookup.Response
		err      error
	)

	if c.pinned != nil {
		response, err = c.service.LookupWith(ctx, c.pinned, target, c.key)
	} else {
		response, err = c.service.Lookup(ctx, target, c.key)
	}

	if err != nil {
		return nil, err
	}

	c.mu.Lock()
	c.cache.Put(key, *response, response.Provider)
	flushErr := c.cache.Flush()
	c.mu.Unlock()

	if flushErr != nil {
		c.logger.CacheError(flushErr)
	}

	return response, nil
}

// Cached returns the unexpired cached response for the target, if any.
// No network activity happens.
func (c *Client) Cached(target lookup.Target) (*lookup.Response, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	entry, ok := c.cache.Get(target.CacheKey())
	if !ok {
		return nil, false
	}

	response := entry.Response

	return &response, true
}

// PruneCache drops all expired entries and persists the result. It
// reports how many entries were dropped.
func (c *Client) PruneCache() int {
	c.mu.Lock()
	dropped := c.cache.Prune()
	flushErr := c.cache.Flush()
	c.mu.Unlock()

	if flushErr != nil {
		c.logger.CacheError(flushErr)
	}

	return dropped
}

// PurgeCache removes the cache file and empties the in-memory map.
func (c *Client) PurgeCache() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.cache.Delete()
}

// CachePath returns the location of the backing cache file.
func (c *Client) CachePath() string {
	return c.cache.Path()
}

// Close flushes the cache to disk. The client must not be used after.
func (c *Client) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.cache.Flush()
}

// Lookup resolves the caller's own address with default options.
func Lookup(ctx context.Context) (*lookup.Response, error) {
	return LookupWith(ctx, lookup.Self(), Options{})
}

// LookupWith resolves a target with a one-shot client built from the
// given options.
func LookupWith(ctx context.Context, target lookup.Target, opts Options) (*lookup.Response, error) {
	client, err := NewClient(opts)
	if err != nil {
		return nil, err
	}

	defer client.Close() // nolint: errcheck

	return client.Lookup(ctx, target)
}
