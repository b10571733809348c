// Package cache keeps lookup responses between process runs so that
// repeated lookups do not hit the network at all.
//
// The cache is a keyed map held in memory and mirrored to a single
// file on disk. Expiry is checked at read time, there is no background
// eviction. A cache instance assumes a single owning process for the
// lifetime of a session: concurrent processes sharing one file race on
// Flush and the last writer wins.
package cache

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/juju/errors"
	"github.com/spf13/afero"

	"github.com/ghztomash/public-ip-address/lookup"
)

const (
	// DefaultTTL is used when the owner did not configure expiry.
	DefaultTTL = 5 * time.Minute

	cacheDirName  = "public-ip-address"
	cacheFileName = "cache.json"

	cacheFileMode = 0o600
	cacheDirMode  = 0o700
)

// Entry wraps a cached response with its creation time and the
// provider which produced it.
type Entry struct {
	Response  lookup.Response `json:"response"`
	Provider  string          `json:"provider"`
	CreatedAt time.Time       `json:"created_at"`
}

// Expired tells if the entry is older than ttl at the given moment.
// A non-positive ttl means entries never expire.
func (e Entry) Expired(ttl time.Duration, now time.Time) bool {
	if ttl <= 0 {
		return false
	}

	return now.Sub(e.CreatedAt) >= ttl
}

// Cache is a persistent keyed store of lookup responses. It is not
// safe for concurrent use: the owning facade serializes access.
type Cache struct {
	fs      afero.Fs
	path    string
	ttl     time.Duration
	secret  []byte
	entries map[string]Entry
}

// Option configures a Cache.
type Option func(*Cache)

// WithFs substitutes the backing file system. Tests use afero.MemMapFs.
func WithFs(fs afero.Fs) Option {
	return func(c *Cache) {
		c.fs = fs
	}
}

// WithTTL sets per-entry expiry. Non-positive disables expiry.
func WithTTL(ttl time.Duration) Option {
	return func(c *Cache) {
		c.ttl = ttl
	}
}

// WithEncryptionSecret enables encryption at rest. The on-disk bytes
// become ciphertext sealed with a key derived from the secret. Use
// MachineSecret for a machine-bound default.
func WithEncryptionSecret(secret []byte) Option {
	return func(c *Cache) {
		c.secret = secret
	}
}

// New makes a cache backed by the file at path. An empty path picks
// DefaultPath. Nothing is read from disk until Load is called.
func New(path string, opts ...Option) *Cache {
	rv := &Cache{
		fs:      afero.NewOsFs(),
		path:    path,
		ttl:     DefaultTTL,
		entries: map[string]Entry{},
	}

	for _, opt := range opts {
		opt(rv)
	}

	if rv.path == "" {
		rv.path = DefaultPath()
	}

	return rv
}

// DefaultPath returns the cache file location in the platform cache
// directory, falling back to the home directory and then to the
// current one.
func DefaultPath() string {
	if dir, err := os.UserCacheDir(); err == nil {
		return filepath.Join(dir, cacheDirName, cacheFileName)
	}

	if dir, err := os.UserHomeDir(); err == nil {
		return filepath.Join(dir, "."+cacheDirName+".cache")
	}

	return cacheFileName
}

// Path returns the backing file location.
func (c *Cache) Path() string {
	return c.path
}

// TTL returns the configured per-entry expiry.
func (c *Cache) TTL() time.Duration {
	return c.ttl
}

// Get returns the entry for the key. An expired entry is treated as
// absent; it stays on disk and in memory until overwritten or pruned.
func (c *Cache) Get(key string) (Entry, bool) {
	entry, ok := c.entries[key]
	if !ok || entry.Expired(c.ttl, time.Now()) {
		return Entry{}, false
	}

	return entry, true
}

// Put inserts or overwrites the entry for the key, stamping the
// current time.
func (c *Cache) Put(key string, response lookup.Response, providerName string) {
	c.entries[key] = Entry{
		Response:  response,
		Provider:  providerName,
		CreatedAt: time.Now(),
	}
}

// Len returns the number of entries including expired ones.
func (c *Cache) Len() int {
	return len(c.entries)
}

// Keys returns all keys in lexicographic order, including keys of
// expired entries.
func (c *Cache) Keys() []string {
	rv := make([]string, 0, len(c.entries))

	for k := range c.entries {
		rv = append(rv, k)
	}

	sort.Strings(rv)

	return rv
}

// Prune drops all expired entries from memory and reports how many
// were dropped. The file is not touched until the next Flush.
func (c *Cache) Prune() int {
	now := time.Now()
	dropped := 0

	for k, v := range c.entries {
		if v.Expired(c.ttl, now) {
			delete(c.entries, k)
			dropped++
		}
	}

	return dropped
}

// Load reads the backing file and merges it into memory. A missing
// file is a fresh cache, not an error. A file which cannot be decoded
// or decrypted is treated as an empty cache: the next Flush simply
// writes a fresh one.
//
// On a key conflict the most recently obtained entry wins, so entries
// produced during this session are never shadowed by stale disk state.
func (c *Cache) Load() error {
	raw, err := afero.ReadFile(c.fs, c.path)

	switch {
	case os.IsNotExist(err):
		return nil
	case err != nil:
		return errors.Annotate(err, "cannot read cache file")
	}

	if c.secret != nil {
		raw, err = decrypt(c.secret, raw)
		if err != nil {
			return nil
		}
	}

	loaded := map[string]Entry{}
	if err := json.Unmarshal(raw, &loaded); err != nil {
		return nil
	}

	for k, v := range loaded {
		current, ok := c.entries[k]
		if !ok || current.CreatedAt.Before(v.CreatedAt) {
			c.entries[k] = v
		}
	}

	return nil
}

// Flush serializes the full in-memory map to the backing file,
// overwriting whatever was there.
func (c *Cache) Flush() error {
	raw, err := json.MarshalIndent(c.entries, "", "  ")
	if err != nil {
		return errors.Annotate(err, "cannot serialize cache")
	}

	if c.secret != nil {
		raw, err = encrypt(c.secret, raw)
		if err != nil {
			return errors.Annotate(err, "cannot encrypt cache")
		}
	}

	if dir := filepath.Dir(c.path); dir != "." {
		if err := c.fs.MkdirAll(dir, cacheDirMode); err != nil {
			return errors.Annotate(err, "cannot create cache directory")
		}
	}

	if err := afero.WriteFile(c.fs, c.path, raw, cacheFileMode); err != nil {
		return errors.Annotate(err, "cannot write cache file")
	}

	return nil
}

// Delete removes the backing file and clears the in-memory map. A
// missing file is not an error.
func (c *Cache) Delete() error {
	c.entries = map[string]Entry{}

	if err := c.fs.Remove(c.path); err != nil && !os.IsNotExist(err) {
		return errors.Annotate(err, "cannot remove cache file")
	}

	return nil
}
