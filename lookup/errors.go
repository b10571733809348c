package lookup

import (
	"errors"
	"strings"
)

var (
	// ErrInvalidTarget is returned when an explicit lookup target is
	// not a syntactically valid IPv4/IPv6 address.
	ErrInvalidTarget = errors.New("invalid lookup target")

	// ErrUnsupportedTarget is returned when a pinned provider cannot
	// look up arbitrary addresses but an explicit target was given.
	// No network call is made in this case.
	ErrUnsupportedTarget = errors.New("provider does not support target lookups")

	// ErrMissingKey is returned when a provider requires an API key
	// and none was given. No network call is made in this case.
	ErrMissingKey = errors.New("provider requires an API key")

	// ErrTooManyRequests is returned when a service has rate limited
	// us (HTTP 429).
	ErrTooManyRequests = errors.New("too many API requests")

	// ErrMalformedResponse is returned by provider parsers when a
	// payload misses required fields or cannot be decoded at all.
	ErrMalformedResponse = errors.New("malformed provider response")

	// ErrRequestStatus is returned when a service answers with an
	// unexpected HTTP status.
	ErrRequestStatus = errors.New("unexpected response status")
)

// ProviderError is a failure of one provider attempt during fallback
// iteration.
type ProviderError struct {
	Provider string
	Err      error
}

func (p *ProviderError) Error() string {
	return p.Provider + ": " + p.Err.Error()
}

func (p *ProviderError) Unwrap() error {
	return p.Err
}

// AllFailedError is returned when every candidate provider failed. It
// keeps the per-provider causes for diagnostics.
type AllFailedError struct {
	Causes []*ProviderError
}

func (a *AllFailedError) Error() string {
	sb := &strings.Builder{}

	sb.WriteString("all providers failed")

	for _, v := range a.Causes {
		sb.WriteString("; ")
		sb.WriteString(v.Error())
	}

	return sb.String()
}

func (a *AllFailedError) Unwrap() []error {
	rv := make([]error, len(a.Causes))

	for i, v := range a.Causes {
		rv[i] = v
	}

	return rv
}
