package lookup

import (
	"net/http"
	"time"

	"golang.org/x/time/rate"
)

const (
	// DefaultTimeout bounds a single provider attempt when the caller
	// did not configure the underlying http.Client.
	DefaultTimeout = 10 * time.Second

	defaultUserAgent = "public-ip-address-go"
)

type httpClient struct {
	userAgent   string
	client      *http.Client
	rateLimiter *rate.Limiter
}

func (h httpClient) Do(req *http.Request) (*http.Response, error) {
	req.Header.Set("User-Agent", h.userAgent)

	if h.rateLimiter != nil {
		if err := h.rateLimiter.Wait(req.Context()); err != nil {
			return nil, err
		}
	}

	return h.client.Do(req)
}

// NewHTTPClient wraps a std http.Client into an HTTPClient suitable for
// this library: it stamps a user agent and optionally throttles
// outgoing requests with a token bucket rate limiter.
//
// Please see https://pkg.go.dev/golang.org/x/time/rate to get a meaning
// of rate limiter parameters. A zero rateLimiterInterval disables
// throttling; the library never rate limits on its own, this is a
// courtesy for callers hammering free services in a loop.
func NewHTTPClient(client *http.Client,
	userAgent string,
	rateLimiterInterval time.Duration,
	rateLimitBurst int) HTTPClient {
	var limiter *rate.Limiter

	if rateLimiterInterval > 0 {
		limiter = rate.NewLimiter(rate.Every(rateLimiterInterval), rateLimitBurst)
	}

	if userAgent == "" {
		userAgent = defaultUserAgent
	}

	return httpClient{
		userAgent:   userAgent,
		client:      client,
		rateLimiter: limiter,
	}
}

// DefaultHTTPClient returns an HTTPClient with a sane timeout and no
// rate limiting.
func DefaultHTTPClient() HTTPClient {
	return NewHTTPClient(&http.Client{Timeout: DefaultTimeout}, defaultUserAgent, 0, 0)
}
