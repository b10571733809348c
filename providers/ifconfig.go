package providers

import (
	"encoding/json"
	"fmt"
	"net"

	"github.com/ghztomash/public-ip-address/lookup"
)

// https://github.com/mpolden/echoip/blob/master/http/http.go
type ifconfigResponse struct {
	IP         string   `json:"ip"`
	Country    *string  `json:"country"`
	CountryISO *string  `json:"country_iso"`
	CountryEU  *bool    `json:"country_eu"`
	RegionName *string  `json:"region_name"`
	RegionCode *string  `json:"region_code"`
	ZipCode    *string  `json:"zip_code"`
	City       *string  `json:"city"`
	Latitude   *float64 `json:"latitude"`
	Longitude  *float64 `json:"longitude"`
	TimeZone   *string  `json:"time_zone"`
	ASN        *string  `json:"asn"`
	ASNOrg     *string  `json:"asn_org"`
	Hostname   *string  `json:"hostname"`
}

type ifconfigProvider struct{}

func (ifconfigProvider) Name() string {
	return NameIfConfig
}

func (ifconfigProvider) Capabilities() lookup.Capabilities {
	return lookup.Capabilities{
		SupportsTarget: true,
	}
}

func (ifconfigProvider) URL(target lookup.Target, _ string) string {
	if target.IsSelf() {
		return "https://ifconfig.co/json"
	}

	return "https://ifconfig.co/json?ip=" + target.IP().String()
}

func (ifconfigProvider) Parse(raw []byte) (*lookup.Response, error) {
	jsonResponse := ifconfigResponse{}

	if err := json.Unmarshal(raw, &jsonResponse); err != nil {
		return nil, fmt.Errorf("%w: %v", lookup.ErrMalformedResponse, err)
	}

	ip := net.ParseIP(jsonResponse.IP)
	if ip == nil {
		return nil, fmt.Errorf("%w: bad ip address %q",
			lookup.ErrMalformedResponse, jsonResponse.IP)
	}

	result := lookup.NewResponse(ip, NameIfConfig)
	result.Country = jsonResponse.Country
	result.CountryCode = jsonResponse.CountryISO
	result.Region = jsonResponse.RegionName
	result.RegionCode = jsonResponse.RegionCode
	result.PostalCode = jsonResponse.ZipCode
	result.City = jsonResponse.City
	result.Latitude = jsonResponse.Latitude
	result.Longitude = jsonResponse.Longitude
	result.TimeZone = jsonResponse.TimeZone
	result.ASN = jsonResponse.ASN
	result.ASNOrg = jsonResponse.ASNOrg
	result.Hostname = jsonResponse.Hostname

	if jsonResponse.CountryEU != nil && *jsonResponse.CountryEU {
		continent := "Europe"
		result.Continent = &continent
	}

	return result, nil
}

// NewIfConfig makes a provider for https://ifconfig.co.
func NewIfConfig() lookup.Provider {
	return ifconfigProvider{}
}
