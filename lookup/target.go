package lookup

import (
	"fmt"
	"net"
)

// SelfCacheKey is a cache key used for lookups of the caller's own
// address. Explicit addresses get an "ip:" prefix, so a lookup of the
// caller's literal address never collides with a self lookup even when
// both resolve to the same place.
const SelfCacheKey = "self"

// Target describes whose address is being looked up: either the
// caller's own observed address ("self", the zero value) or an explicit
// IPv4/IPv6 address.
type Target struct {
	ip net.IP
}

// Self returns a target for the caller's own address.
func Self() Target {
	return Target{}
}

// TargetFor returns a target for an explicit address. A nil ip gives
// the self target.
func TargetFor(ip net.IP) Target {
	return Target{ip: ip}
}

// ParseTarget parses an explicit address from its string form. An empty
// string means self. A malformed address is rejected here, before any
// cache or network interaction can happen.
func ParseTarget(address string) (Target, error) {
	if address == "" {
		return Self(), nil
	}

	ip := net.ParseIP(address)
	if ip == nil {
		return Target{}, fmt.Errorf("%w: %q", ErrInvalidTarget, address)
	}

	return Target{ip: ip}, nil
}

// IsSelf tells if this target refers to the caller's own address.
func (t Target) IsSelf() bool {
	return t.ip == nil
}

// IP returns the explicit address or nil for the self target.
func (t Target) IP() net.IP {
	return t.ip
}

// CacheKey returns a stable string key for this target.
func (t Target) CacheKey() string {
	if t.IsSelf() {
		return SelfCacheKey
	}

	return "ip:" + t.ip.String()
}

func (t Target) String() string {
	if t.IsSelf() {
		return SelfCacheKey
	}

	return t.ip.String()
}
