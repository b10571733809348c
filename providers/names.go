package providers

import (
	"errors"
	"fmt"
	"strings"

	"github.com/ghztomash/public-ip-address/lookup"
)

const (
	// Identifier for ifconfig.co.
	NameIfConfig = "ifconfig"

	// Identifier for ipinfo.io.
	NameIPInfo = "ipinfo"

	// Identifier for ip-api.com.
	NameIPAPICom = "ipapicom"

	// Identifier for ipapi.co.
	NameIPAPICo = "ipapico"

	// Identifier for freeipapi.com.
	NameFreeIPAPI = "freeipapi"

	// Identifier for ipwhois.io.
	NameIPWhoIs = "ipwhois"

	// Identifier for my-ip.io. Self lookups only.
	NameMyIP = "myip"

	// Identifier for jsonip.com. Self lookups only.
	NameGetJSONIP = "getjsonip"
)

// ErrUnknownProvider is returned by New for identifiers outside of the
// supported set.
var ErrUnknownProvider = errors.New("unknown provider")

// The default fallback ordering. Keyless services which answer both
// self and target lookups go first.
var defaultOrder = []string{
	NameIfConfig,
	NameIPAPICom,
	NameIPAPICo,
	NameIPWhoIs,
	NameFreeIPAPI,
	NameIPInfo,
	NameMyIP,
	NameGetJSONIP,
}

var registry = map[string]func() lookup.Provider{
	NameIfConfig:  NewIfConfig,
	NameIPInfo:    NewIPInfo,
	NameIPAPICom:  NewIPAPICom,
	NameIPAPICo:   NewIPAPICo,
	NameFreeIPAPI: NewFreeIPAPI,
	NameIPWhoIs:   NewIPWhoIs,
	NameMyIP:      NewMyIP,
	NameGetJSONIP: NewGetJSONIP,
}

// New resolves a provider identifier into a provider instance. Unknown
// identifiers are rejected here, at parse time, not when a lookup is
// already in flight.
func New(name string) (lookup.Provider, error) {
	factory, ok := registry[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownProvider, name)
	}

	return factory(), nil
}

// Default returns the default fallback ordering.
func Default() []lookup.Provider {
	rv := make([]lookup.Provider, len(defaultOrder))

	for i, name := range defaultOrder {
		rv[i] = registry[name]()
	}

	return rv
}

// Names returns identifiers of all supported providers in the default
// fallback order.
func Names() []string {
	rv := make([]string, len(defaultOrder))
	copy(rv, defaultOrder)

	return rv
}
