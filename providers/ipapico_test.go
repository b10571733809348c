package providers_test

import (
	"net"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ghztomash/public-ip-address/lookup"
	"github.com/ghztomash/public-ip-address/providers"
)

const ipapicoTestInput = `
{
  "ip": "1.1.1.1",
  "city": "San Francisco",
  "region": "California",
  "region_code": "CA",
  "country_name": "United States",
  "country_code": "US",
  "continent_code": "NA",
  "in_eu": false,
  "postal": "94107",
  "latitude": 37.7697,
  "longitude": -122.3933,
  "timezone": "America/Los_Angeles",
  "asn": "AS13335",
  "org": "CLOUDFLARENET"
}
`

func TestIPAPICoParse(t *testing.T) {
	prov := providers.NewIPAPICo()

	resp, err := prov.Parse([]byte(ipapicoTestInput))
	require.NoError(t, err)

	assert.True(t, resp.IP.Equal(net.ParseIP("1.1.1.1")))
	assert.Equal(t, providers.NameIPAPICo, resp.Provider)
	assert.Equal(t, "United States", *resp.Country)
	assert.Equal(t, "US", *resp.CountryCode)
	assert.Equal(t, "California", *resp.Region)
	assert.Equal(t, "CA", *resp.RegionCode)
	assert.Equal(t, "94107", *resp.PostalCode)
	assert.Equal(t, "San Francisco", *resp.City)
	assert.Equal(t, 37.7697, *resp.Latitude)
	assert.Equal(t, -122.3933, *resp.Longitude)
	assert.Equal(t, "America/Los_Angeles", *resp.TimeZone)
	assert.Equal(t, "AS13335", *resp.ASN)
	assert.Equal(t, "CLOUDFLARENET", *resp.ASNOrg)
}

func TestIPAPICoParseMalformed(t *testing.T) {
	prov := providers.NewIPAPICo()

	_, err := prov.Parse([]byte(`{"ip": "not-an-ip"}`))

	assert.ErrorIs(t, err, lookup.ErrMalformedResponse)
}

func TestIPAPICoURL(t *testing.T) {
	prov := providers.NewIPAPICo()
	target, err := lookup.ParseTarget("8.8.8.8")
	require.NoError(t, err)

	assert.Equal(t, "https://ipapi.co/json", prov.URL(lookup.Self(), ""))
	assert.Equal(t, "https://ipapi.co/8.8.8.8/json", prov.URL(target, ""))
}
