package lookup

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/pariz/gountries"
)

// Provider payloads are small JSON documents, anything bigger is junk.
const maxResponseBodySize = 1 << 20

var countryQuery = gountries.New()

// Service orchestrates lookups: it selects a provider, performs exactly
// one HTTP round trip per attempted provider and normalizes the result.
// It keeps no state between calls and is safe for concurrent use.
type Service struct {
	client    HTTPClient
	logger    Logger
	providers []Provider
}

// NewService creates an orchestrator over the given fallback ordering.
// A nil client gets DefaultHTTPClient, a nil logger gets NoopLogger.
func NewService(client HTTPClient, logger Logger, providers []Provider) *Service {
	if client == nil {
		client = DefaultHTTPClient()
	}

	if logger == nil {
		logger = NoopLogger()
	}

	return &Service{
		client:    client,
		logger:    logger,
		providers: providers,
	}
}

// Providers returns a copy of the fallback ordering.
func (s *Service) Providers() []Provider {
	rv := make([]Provider, len(s.providers))
	copy(rv, s.providers)

	return rv
}

// Lookup iterates the fallback ordering and returns the first
// successful normalized response. Individual provider failures,
// including pre-flight capability rejections, are recorded and
// iteration continues. When every candidate fails, an *AllFailedError
// carrying the per-provider causes is returned.
func (s *Service) Lookup(ctx context.Context, target Target, key string) (*Response, error) {
	causes := make([]*ProviderError, 0, len(s.providers))

	for _, provider := range s.providers {
		resp, err := s.LookupWith(ctx, provider, target, key)
		if err == nil {
			return resp, nil
		}

		s.logger.LookupError(provider.Name(), err)
		causes = append(causes, &ProviderError{
			Provider: provider.Name(),
			Err:      err,
		})

		if ctx.Err() != nil {
			break
		}
	}

	return nil, &AllFailedError{Causes: causes}
}

// LookupWith queries exactly one provider, bypassing fallback. Missing
// capabilities fail fast before any network activity: a provider which
// cannot resolve arbitrary addresses must not be silently asked about
// its own peer, and a provider which requires a key would only burn a
// request.
func (s *Service) LookupWith(ctx context.Context,
	provider Provider,
	target Target,
	key string) (*Response, error) {
	caps := provider.Capabilities()

	if !target.IsSelf() && !caps.SupportsTarget {
		return nil, ErrUnsupportedTarget
	}

	if caps.RequiresKey && key == "" {
		return nil, ErrMissingKey
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, provider.URL(target, key), nil)
	if err != nil {
		return nil, fmt.Errorf("cannot build a request: %w", err)
	}

	req.Header.Set("Accept", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("cannot send a request: %w", err)
	}

	defer func() {
		io.Copy(io.Discard, resp.Body) // nolint: errcheck
		resp.Body.Close()
	}()

	switch {
	case resp.StatusCode == http.StatusTooManyRequests:
		return nil, fmt.Errorf("%w: %s", ErrTooManyRequests, resp.Status)
	case resp.StatusCode != http.StatusOK:
		return nil, fmt.Errorf("%w: %s", ErrRequestStatus, resp.Status)
	}

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBodySize))
	if err != nil {
		return nil, fmt.Errorf("cannot read a response: %w", err)
	}

	parsed, err := provider.Parse(raw)
	if err != nil {
		return nil, fmt.Errorf("cannot parse a response: %w", err)
	}

	Enrich(parsed)

	return parsed, nil
}

// Enrich fills the country name and continent from the ISO 3166 code
// when a service reported only the code. Values reported by the
// service itself are never overwritten.
func Enrich(r *Response) {
	if r.CountryCode == nil {
		return
	}

	country, ok := countryQuery.Countries[strings.ToUpper(*r.CountryCode)]
	if !ok {
		return
	}

	if r.Country == nil && country.Name.Common != "" {
		name := country.Name.Common
		r.Country = &name
	}

	if r.Continent == nil && country.Continent != "" {
		continent := country.Continent
		r.Continent = &continent
	}
}
