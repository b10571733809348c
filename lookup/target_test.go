package lookup_test

import (
	"errors"
	"net"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ghztomash/public-ip-address/lookup"
)

func TestParseTargetSelf(t *testing.T) {
	target, err := lookup.ParseTarget("")

	assert.NoError(t, err)
	assert.True(t, target.IsSelf())
	assert.Nil(t, target.IP())
	assert.Equal(t, lookup.SelfCacheKey, target.CacheKey())
}

func TestParseTargetValid(t *testing.T) {
	addresses := []string{
		"1.1.1.1",
		"8.8.8.8",
		"255.255.255.255",
		"2606:4700:4700::1111",
		"::1",
		"fe80::1",
	}

	for _, v := range addresses {
		v := v

		t.Run(v, func(t *testing.T) {
			target, err := lookup.ParseTarget(v)

			assert.NoError(t, err)
			assert.False(t, target.IsSelf())
			assert.True(t, target.IP().Equal(net.ParseIP(v)))
			assert.Equal(t, "ip:"+net.ParseIP(v).String(), target.CacheKey())
		})
	}
}

func TestParseTargetInvalid(t *testing.T) {
	addresses := []string{
		"example.com",
		"1.1.1",
		"1.1.1.256",
		"2606:4700:4700::11z1",
		"not an ip at all",
		" 1.1.1.1",
	}

	for _, v := range addresses {
		v := v

		t.Run(v, func(t *testing.T) {
			_, err := lookup.ParseTarget(v)

			assert.ErrorIs(t, err, lookup.ErrInvalidTarget)
		})
	}
}

func TestTargetKeysDoNotCollide(t *testing.T) {
	target, err := lookup.ParseTarget("1.1.1.1")

	assert.NoError(t, err)
	assert.NotEqual(t, lookup.Self().CacheKey(), target.CacheKey())
}

func TestTargetForNil(t *testing.T) {
	assert.True(t, lookup.TargetFor(nil).IsSelf())
}

func TestTargetIsError(t *testing.T) {
	_, err := lookup.ParseTarget("junk")

	assert.True(t, errors.Is(err, lookup.ErrInvalidTarget))
	assert.Contains(t, err.Error(), "junk")
}
