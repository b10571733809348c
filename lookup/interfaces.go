package lookup

import "net/http"

// HTTPClient executes a single HTTP request. This is the only place
// where network IO happens, so tests and callers with special needs
// (proxies, recording transports, cooperative schedulers) can swap the
// implementation.
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// Logger receives diagnostic events. All methods must be safe to call
// with a nil receiver value obtained from NoopLogger.
type Logger interface {
	LookupError(providerName string, err error)
	CacheError(err error)
}

type noopLogger struct{}

func (noopLogger) LookupError(string, error) {}

func (noopLogger) CacheError(error) {}

// NoopLogger returns a logger which discards everything.
func NoopLogger() Logger {
	return noopLogger{}
}
