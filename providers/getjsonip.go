package providers

import (
	"encoding/json"
	"fmt"
	"net"

	"github.com/ghztomash/public-ip-address/lookup"
)

// https://getjsonip.com
type getjsonipResponse struct {
	IP string `json:"ip"`
}

type getjsonipProvider struct{}

func (getjsonipProvider) Name() string {
	return NameGetJSONIP
}

// Answers for the requesting peer only, address and nothing else.
func (getjsonipProvider) Capabilities() lookup.Capabilities {
	return lookup.Capabilities{}
}

func (getjsonipProvider) URL(lookup.Target, string) string {
	return "https://jsonip.com"
}

func (getjsonipProvider) Parse(raw []byte) (*lookup.Response, error) {
	jsonResponse := getjsonipResponse{}

	if err := json.Unmarshal(raw, &jsonResponse); err != nil {
		return nil, fmt.Errorf("%w: %v", lookup.ErrMalformedResponse, err)
	}

	ip := net.ParseIP(jsonResponse.IP)
	if ip == nil {
		return nil, fmt.Errorf("%w: bad ip address %q",
			lookup.ErrMalformedResponse, jsonResponse.IP)
	}

	return lookup.NewResponse(ip, NameGetJSONIP), nil
}

// NewGetJSONIP makes a provider for https://jsonip.com. It resolves
// the caller's own address only and reports no geolocation at all.
func NewGetJSONIP() lookup.Provider {
	return getjsonipProvider{}
}
