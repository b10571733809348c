// Package config loads process-level configuration for programs built
// on top of this module: API keys, provider preferences and cache
// settings. The library itself never reads configuration files.
package config

import (
	"io"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/juju/errors"

	"github.com/ghztomash/public-ip-address/providers"
)

type duration struct {
	time.Duration
}

func (dur *duration) UnmarshalText(text []byte) (err error) {
	dur.Duration, err = time.ParseDuration(string(text))
	return
}

type Config struct {
	// Provider pins a single provider. Empty means fallback ordering.
	Provider string `toml:"provider"`

	// APIKeys maps provider identifiers to their keys.
	APIKeys map[string]string `toml:"api_keys"`

	CacheTTL     duration `toml:"cache_ttl"`
	CachePath    string   `toml:"cache_path"`
	EncryptCache bool     `toml:"encrypt_cache"`
}

// TTL returns the configured cache expiry, zero when unset.
func (c *Config) TTL() time.Duration {
	return c.CacheTTL.Duration
}

// Key returns the API key for a provider identifier, empty when unset.
func (c *Config) Key(providerName string) string {
	return c.APIKeys[providerName]
}

// Parse reads and validates a TOML configuration.
func Parse(source io.Reader) (*Config, error) {
	conf := &Config{}

	buf, err := io.ReadAll(source)
	if err != nil {
		return nil, errors.Annotate(err, "Cannot read config file")
	}

	if _, err := toml.Decode(string(buf), conf); err != nil {
		return nil, errors.Annotate(err, "Cannot parse config file")
	}

	if err = validate(conf); err != nil {
		return nil, errors.Annotate(err, "Invalid config")
	}

	return conf, nil
}

func validate(conf *Config) error {
	if conf.Provider != "" {
		if _, err := providers.New(conf.Provider); err != nil {
			return errors.Trace(err)
		}
	}

	for name := range conf.APIKeys {
		if _, err := providers.New(name); err != nil {
			return errors.Annotatef(err, "api key for unknown provider %q", name)
		}
	}

	return nil
}
