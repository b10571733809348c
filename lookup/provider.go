package lookup

// Capabilities is a static description of what a provider can do.
type Capabilities struct {
	// SupportsTarget tells if the service can look up an arbitrary
	// address. Services without it only answer for the requesting peer.
	SupportsTarget bool

	// RequiresKey tells if the service refuses to answer without an
	// API key.
	RequiresKey bool
}

// Provider is a contract for a single lookup service. Implementations
// are pure data: URL builds a request URL out of the static template
// and Parse converts raw payload bytes into the canonical response
// without touching the network.
type Provider interface {
	Name() string
	Capabilities() Capabilities
	URL(target Target, key string) string
	Parse(raw []byte) (*Response, error)
}
