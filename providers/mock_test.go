package providers_test

import (
	"net"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ghztomash/public-ip-address/lookup"
	"github.com/ghztomash/public-ip-address/providers"
)

func TestMockParse(t *testing.T) {
	prov := providers.NewMock("http://127.0.0.1:9999/json")

	resp, err := prov.Parse([]byte(`{"ip": "1.1.1.1"}`))
	require.NoError(t, err)

	assert.True(t, resp.IP.Equal(net.ParseIP("1.1.1.1")))
	assert.Equal(t, providers.NameMock, resp.Provider)
	assert.Equal(t, "http://127.0.0.1:9999/json", prov.URL(lookup.Self(), ""))
	assert.True(t, prov.Capabilities().SupportsTarget)
}

func TestMockParseFailure(t *testing.T) {
	prov := providers.MockProvider{
		ParseFailure: lookup.ErrMalformedResponse,
	}

	_, err := prov.Parse([]byte(`{"ip": "1.1.1.1"}`))

	assert.ErrorIs(t, err, lookup.ErrMalformedResponse)
}

func TestMockResponseOverride(t *testing.T) {
	canned := lookup.NewResponse(net.ParseIP("8.8.8.8"), providers.NameMock)
	prov := providers.MockProvider{
		ResponseOverride: canned,
	}

	resp, err := prov.Parse(nil)
	require.NoError(t, err)

	assert.Same(t, canned, resp)
}
