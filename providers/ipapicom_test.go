package providers_test

import (
	"net"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ghztomash/public-ip-address/lookup"
	"github.com/ghztomash/public-ip-address/providers"
)

const ipapicomTestInput = `
{
  "query": "1.1.1.1",
  "status": "success",
  "continent": "North America",
  "continentCode": "NA",
  "country": "Canada",
  "countryCode": "CA",
  "region": "QC",
  "regionName": "Quebec",
  "city": "Montreal",
  "district": "",
  "zip": "H1K",
  "lat": 45.6085,
  "lon": -73.5493,
  "timezone": "America/Toronto",
  "offset": -14400,
  "currency": "CAD",
  "isp": "Le Groupe Videotron Ltee",
  "org": "Videotron Ltee",
  "as": "AS5769 Videotron Ltee",
  "asname": "VIDEOTRON",
  "reverse": "modemcable001.0-48-24.mc.videotron.ca",
  "mobile": false,
  "proxy": false,
  "hosting": false
}
`

func TestIPAPIComParse(t *testing.T) {
	prov := providers.NewIPAPICom()

	resp, err := prov.Parse([]byte(ipapicomTestInput))
	require.NoError(t, err)

	assert.True(t, resp.IP.Equal(net.ParseIP("1.1.1.1")))
	assert.Equal(t, providers.NameIPAPICom, resp.Provider)
	assert.Equal(t, "North America", *resp.Continent)
	assert.Equal(t, "Canada", *resp.Country)
	assert.Equal(t, "CA", *resp.CountryCode)
	assert.Equal(t, "Quebec", *resp.Region)
	assert.Equal(t, "QC", *resp.RegionCode)
	assert.Equal(t, "H1K", *resp.PostalCode)
	assert.Equal(t, "Montreal", *resp.City)
	assert.Equal(t, 45.6085, *resp.Latitude)
	assert.Equal(t, -73.5493, *resp.Longitude)
	assert.Equal(t, "America/Toronto", *resp.TimeZone)
	assert.Equal(t, "AS5769 Videotron Ltee", *resp.ASN)
	assert.Equal(t, "Videotron Ltee", *resp.ASNOrg)
	assert.Equal(t, "modemcable001.0-48-24.mc.videotron.ca", *resp.Hostname)
	assert.False(t, *resp.Proxy)
}

func TestIPAPIComParseFailStatus(t *testing.T) {
	prov := providers.NewIPAPICom()

	_, err := prov.Parse([]byte(
		`{"query": "", "status": "fail", "message": "private range"}`))

	assert.ErrorIs(t, err, lookup.ErrMalformedResponse)
	assert.Contains(t, err.Error(), "private range")
}

func TestIPAPIComURL(t *testing.T) {
	prov := providers.NewIPAPICom()
	target, err := lookup.ParseTarget("1.1.1.1")
	require.NoError(t, err)

	assert.Equal(t, "http://ip-api.com/json/?fields=66846719",
		prov.URL(lookup.Self(), ""))
	assert.Equal(t, "http://ip-api.com/json/1.1.1.1?fields=66846719",
		prov.URL(target, ""))
}
