package providers

import (
	"encoding/json"
	"fmt"
	"net"

	"github.com/ghztomash/public-ip-address/lookup"
)

// NameMock identifies the mock provider. It is not part of the
// registry: tests construct it directly with NewMock.
const NameMock = "mock"

type mockResponse struct {
	IP string `json:"ip"`
}

// MockProvider answers with a fixed address from any endpoint. It is
// exported so that consumers of this module can exercise their own
// code without hitting real services.
type MockProvider struct {
	Endpoint         string
	Capability       lookup.Capabilities
	ParseFailure     error
	ResponseOverride *lookup.Response
}

func (MockProvider) Name() string {
	return NameMock
}

func (m MockProvider) Capabilities() lookup.Capabilities {
	return m.Capability
}

func (m MockProvider) URL(lookup.Target, string) string {
	return m.Endpoint
}

func (m MockProvider) Parse(raw []byte) (*lookup.Response, error) {
	if m.ParseFailure != nil {
		return nil, m.ParseFailure
	}

	if m.ResponseOverride != nil {
		return m.ResponseOverride, nil
	}

	jsonResponse := mockResponse{}

	if err := json.Unmarshal(raw, &jsonResponse); err != nil {
		return nil, fmt.Errorf("%w: %v", lookup.ErrMalformedResponse, err)
	}

	ip := net.ParseIP(jsonResponse.IP)
	if ip == nil {
		return nil, fmt.Errorf("%w: bad ip address %q",
			lookup.ErrMalformedResponse, jsonResponse.IP)
	}

	return lookup.NewResponse(ip, NameMock), nil
}

// NewMock makes a provider pointing at the given endpoint, capable of
// both target lookups and keyless operation.
func NewMock(endpoint string) lookup.Provider {
	return MockProvider{
		Endpoint: endpoint,
		Capability: lookup.Capabilities{
			SupportsTarget: true,
		},
	}
}
