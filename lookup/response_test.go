package lookup_test

import (
	"encoding/json"
	"net"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ghztomash/public-ip-address/lookup"
)

func TestResponseStringMinimal(t *testing.T) {
	resp := lookup.NewResponse(net.ParseIP("1.1.1.1"), "mock")

	rendered := resp.String()

	assert.Contains(t, rendered, "IP: 1.1.1.1")
	assert.Contains(t, rendered, "Provider: mock")
	assert.NotContains(t, rendered, "Country")
	assert.NotContains(t, rendered, "Coordinates")
}

func TestResponseStringFull(t *testing.T) {
	country := "Canada"
	code := "CA"
	city := "Montreal"
	lat := 45.6085
	lon := -73.5493
	proxy := false

	resp := lookup.NewResponse(net.ParseIP("1.1.1.1"), "mock")
	resp.Country = &country
	resp.CountryCode = &code
	resp.City = &city
	resp.Latitude = &lat
	resp.Longitude = &lon
	resp.Proxy = &proxy

	rendered := resp.String()

	assert.Contains(t, rendered, "Country: Canada (CA)")
	assert.Contains(t, rendered, "City: Montreal")
	assert.Contains(t, rendered, "Coordinates: 45.6085, -73.5493")
	assert.Contains(t, rendered, "Proxy: false")
}

func TestResponseJSONOmitsUnknownFields(t *testing.T) {
	resp := lookup.NewResponse(net.ParseIP("1.1.1.1"), "mock")

	raw, err := json.Marshal(resp)
	require.NoError(t, err)

	decoded := map[string]interface{}{}
	require.NoError(t, json.Unmarshal(raw, &decoded))

	assert.Equal(t, "1.1.1.1", decoded["ip"])
	assert.Equal(t, "mock", decoded["provider"])
	assert.NotContains(t, decoded, "country")
	assert.NotContains(t, decoded, "latitude")
}

func TestResponseJSONKeepsEmptyReportedValues(t *testing.T) {
	empty := ""

	resp := lookup.NewResponse(net.ParseIP("1.1.1.1"), "mock")
	resp.City = &empty

	raw, err := json.Marshal(resp)
	require.NoError(t, err)

	decoded := map[string]interface{}{}
	require.NoError(t, json.Unmarshal(raw, &decoded))

	// reported-but-empty stays distinguishable from not reported
	assert.Contains(t, decoded, "city")
	assert.Equal(t, "", decoded["city"])
}
