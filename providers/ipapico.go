package providers

import (
	"encoding/json"
	"fmt"
	"net"

	"github.com/ghztomash/public-ip-address/lookup"
)

// https://ipapi.co/api/#complete-location
type ipapicoResponse struct {
	IP            string   `json:"ip"`
	City          *string  `json:"city"`
	Region        *string  `json:"region"`
	RegionCode    *string  `json:"region_code"`
	CountryName   *string  `json:"country_name"`
	CountryCode   *string  `json:"country_code"`
	ContinentCode *string  `json:"continent_code"`
	Postal        *string  `json:"postal"`
	Latitude      *float64 `json:"latitude"`
	Longitude     *float64 `json:"longitude"`
	Timezone      *string  `json:"timezone"`
	ASN           *string  `json:"asn"`
	Org           *string  `json:"org"`
	Hostname      *string  `json:"hostname"`
}

type ipapicoProvider struct{}

func (ipapicoProvider) Name() string {
	return NameIPAPICo
}

func (ipapicoProvider) Capabilities() lookup.Capabilities {
	return lookup.Capabilities{
		SupportsTarget: true,
	}
}

func (ipapicoProvider) URL(target lookup.Target, _ string) string {
	url := "https://ipapi.co/"

	if !target.IsSelf() {
		url += target.IP().String() + "/"
	}

	return url + "json"
}

func (ipapicoProvider) Parse(raw []byte) (*lookup.Response, error) {
	jsonResponse := ipapicoResponse{}

	if err := json.Unmarshal(raw, &jsonResponse); err != nil {
		return nil, fmt.Errorf("%w: %v", lookup.ErrMalformedResponse, err)
	}

	ip := net.ParseIP(jsonResponse.IP)
	if ip == nil {
		return nil, fmt.Errorf("%w: bad ip address %q",
			lookup.ErrMalformedResponse, jsonResponse.IP)
	}

	result := lookup.NewResponse(ip, NameIPAPICo)
	result.Country = jsonResponse.CountryName
	result.CountryCode = jsonResponse.CountryCode
	result.Region = jsonResponse.Region
	result.RegionCode = jsonResponse.RegionCode
	result.PostalCode = jsonResponse.Postal
	result.City = jsonResponse.City
	result.Latitude = jsonResponse.Latitude
	result.Longitude = jsonResponse.Longitude
	result.TimeZone = jsonResponse.Timezone
	result.ASN = jsonResponse.ASN
	result.ASNOrg = jsonResponse.Org
	result.Hostname = jsonResponse.Hostname

	return result, nil
}

// NewIPAPICo makes a provider for https://ipapi.co.
func NewIPAPICo() lookup.Provider {
	return ipapicoProvider{}
}
