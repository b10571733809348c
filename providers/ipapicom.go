package providers

import (
	"encoding/json"
	"fmt"
	"net"

	"github.com/ghztomash/public-ip-address/lookup"
)

// The fields bitmask asks for every documented field of the free tier.
// https://ip-api.com/docs/api:json
const ipapicomFields = "66846719"

type ipapicomResponse struct {
	Query       string   `json:"query"`
	Status      *string  `json:"status"`
	Message     *string  `json:"message"`
	Continent   *string  `json:"continent"`
	Country     *string  `json:"country"`
	CountryCode *string  `json:"countryCode"`
	Region      *string  `json:"region"`
	RegionName  *string  `json:"regionName"`
	City        *string  `json:"city"`
	Zip         *string  `json:"zip"`
	Lat         *float64 `json:"lat"`
	Lon         *float64 `json:"lon"`
	Timezone    *string  `json:"timezone"`
	Org         *string  `json:"org"`
	AS          *string  `json:"as"`
	Reverse     *string  `json:"reverse"`
	Proxy       *bool    `json:"proxy"`
}

type ipapicomProvider struct{}

func (ipapicomProvider) Name() string {
	return NameIPAPICom
}

func (ipapicomProvider) Capabilities() lookup.Capabilities {
	return lookup.Capabilities{
		SupportsTarget: true,
	}
}

// The free tier of ip-api.com is plain HTTP only.
func (ipapicomProvider) URL(target lookup.Target, _ string) string {
	url := "http://ip-api.com/json/"

	if !target.IsSelf() {
		url += target.IP().String()
	}

	return url + "?fields=" + ipapicomFields
}

func (ipapicomProvider) Parse(raw []byte) (*lookup.Response, error) {
	jsonResponse := ipapicomResponse{}

	if err := json.Unmarshal(raw, &jsonResponse); err != nil {
		return nil, fmt.Errorf("%w: %v", lookup.ErrMalformedResponse, err)
	}

	// the service reports errors with a 200 status and a "fail" marker
	if jsonResponse.Status != nil && *jsonResponse.Status == "fail" {
		message := "unknown reason"
		if jsonResponse.Message != nil {
			message = *jsonResponse.Message
		}

		return nil, fmt.Errorf("%w: %s", lookup.ErrMalformedResponse, message)
	}

	ip := net.ParseIP(jsonResponse.Query)
	if ip == nil {
		return nil, fmt.Errorf("%w: bad ip address %q",
			lookup.ErrMalformedResponse, jsonResponse.Query)
	}

	result := lookup.NewResponse(ip, NameIPAPICom)
	result.Continent = jsonResponse.Continent
	result.Country = jsonResponse.Country
	result.CountryCode = jsonResponse.CountryCode
	result.Region = jsonResponse.RegionName
	result.RegionCode = jsonResponse.Region
	result.PostalCode = jsonResponse.Zip
	result.City = jsonResponse.City
	result.Latitude = jsonResponse.Lat
	result.Longitude = jsonResponse.Lon
	result.TimeZone = jsonResponse.Timezone
	result.ASN = jsonResponse.AS
	result.ASNOrg = jsonResponse.Org
	result.Hostname = jsonResponse.Reverse
	result.Proxy = jsonResponse.Proxy

	return result, nil
}

// NewIPAPICom makes a provider for https://ip-api.com.
func NewIPAPICom() lookup.Provider {
	return ipapicomProvider{}
}
