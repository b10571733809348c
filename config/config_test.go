package config_test

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ghztomash/public-ip-address/config"
	"github.com/ghztomash/public-ip-address/providers"
)

func TestParse(t *testing.T) {
	source := strings.NewReader(`
provider = "ipinfo"
cache_ttl = "30m"
cache_path = "/tmp/pip-cache.json"
encrypt_cache = true

[api_keys]
ipinfo = "sekret"
`)

	conf, err := config.Parse(source)
	require.NoError(t, err)

	assert.Equal(t, providers.NameIPInfo, conf.Provider)
	assert.Equal(t, 30*time.Minute, conf.TTL())
	assert.Equal(t, "/tmp/pip-cache.json", conf.CachePath)
	assert.True(t, conf.EncryptCache)
	assert.Equal(t, "sekret", conf.Key(providers.NameIPInfo))
	assert.Empty(t, conf.Key(providers.NameIfConfig))
}

func TestParseEmpty(t *testing.T) {
	conf, err := config.Parse(strings.NewReader(""))
	require.NoError(t, err)

	assert.Empty(t, conf.Provider)
	assert.Zero(t, conf.TTL())
	assert.False(t, conf.EncryptCache)
}

func TestParseUnknownProvider(t *testing.T) {
	_, err := config.Parse(strings.NewReader(`provider = "maxmind"`))

	assert.ErrorIs(t, err, providers.ErrUnknownProvider)
}

func TestParseUnknownAPIKeyProvider(t *testing.T) {
	source := strings.NewReader(`
[api_keys]
keycdn = "sekret"
`)

	_, err := config.Parse(source)

	assert.ErrorIs(t, err, providers.ErrUnknownProvider)
}

func TestParseBadDuration(t *testing.T) {
	_, err := config.Parse(strings.NewReader(`cache_ttl = "soon"`))

	assert.Error(t, err)
}

func TestParseBadTOML(t *testing.T) {
	_, err := config.Parse(strings.NewReader(`provider = [`))

	assert.Error(t, err)
}
