package lookup_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ghztomash/public-ip-address/lookup"
)

func TestProviderErrorUnwraps(t *testing.T) {
	err := &lookup.ProviderError{
		Provider: "ifconfig",
		Err:      lookup.ErrTooManyRequests,
	}

	assert.ErrorIs(t, err, lookup.ErrTooManyRequests)
	assert.Contains(t, err.Error(), "ifconfig")
}

func TestAllFailedErrorAggregates(t *testing.T) {
	err := &lookup.AllFailedError{
		Causes: []*lookup.ProviderError{
			{Provider: "ifconfig", Err: lookup.ErrTooManyRequests},
			{Provider: "ipinfo", Err: lookup.ErrMalformedResponse},
		},
	}

	assert.ErrorIs(t, err, lookup.ErrTooManyRequests)
	assert.ErrorIs(t, err, lookup.ErrMalformedResponse)
	assert.NotErrorIs(t, err, lookup.ErrMissingKey)
	assert.Contains(t, err.Error(), "all providers failed")
	assert.Contains(t, err.Error(), "ifconfig")
	assert.Contains(t, err.Error(), "ipinfo")
}

func TestAllFailedErrorAsTarget(t *testing.T) {
	var err error = &lookup.AllFailedError{
		Causes: []*lookup.ProviderError{
			{Provider: "ipinfo", Err: lookup.ErrRequestStatus},
		},
	}

	aggregate := &lookup.AllFailedError{}

	assert.True(t, errors.As(err, &aggregate))
	assert.Len(t, aggregate.Causes, 1)
	assert.Equal(t, "ipinfo", aggregate.Causes[0].Provider)
}
