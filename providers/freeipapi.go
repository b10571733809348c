package providers

import (
	"encoding/json"
	"fmt"
	"net"

	"github.com/ghztomash/public-ip-address/lookup"
)

// https://docs.freeipapi.com/response.html
type freeipapiResponse struct {
	IPVersion     int      `json:"ipVersion"`
	IPAddress     string   `json:"ipAddress"`
	Latitude      *float64 `json:"latitude"`
	Longitude     *float64 `json:"longitude"`
	CountryName   *string  `json:"countryName"`
	CountryCode   *string  `json:"countryCode"`
	TimeZone      *string  `json:"timeZone"`
	ZipCode       *string  `json:"zipCode"`
	CityName      *string  `json:"cityName"`
	RegionName    *string  `json:"regionName"`
	Continent     *string  `json:"continent"`
	ContinentCode *string  `json:"continentCode"`
	IsProxy       *bool    `json:"isProxy"`
}

type freeipapiProvider struct{}

func (freeipapiProvider) Name() string {
	return NameFreeIPAPI
}

func (freeipapiProvider) Capabilities() lookup.Capabilities {
	return lookup.Capabilities{
		SupportsTarget: true,
	}
}

func (freeipapiProvider) URL(target lookup.Target, _ string) string {
	url := "https://freeipapi.com/api/json"

	if !target.IsSelf() {
		url += "/" + target.IP().String()
	}

	return url
}

func (freeipapiProvider) Parse(raw []byte) (*lookup.Response, error) {
	jsonResponse := freeipapiResponse{}

	if err := json.Unmarshal(raw, &jsonResponse); err != nil {
		return nil, fmt.Errorf("%w: %v", lookup.ErrMalformedResponse, err)
	}

	ip := net.ParseIP(jsonResponse.IPAddress)
	if ip == nil {
		return nil, fmt.Errorf("%w: bad ip address %q",
			lookup.ErrMalformedResponse, jsonResponse.IPAddress)
	}

	result := lookup.NewResponse(ip, NameFreeIPAPI)
	result.Continent = jsonResponse.Continent
	result.Country = jsonResponse.CountryName
	result.CountryCode = jsonResponse.CountryCode
	result.Region = jsonResponse.RegionName
	result.PostalCode = jsonResponse.ZipCode
	result.City = jsonResponse.CityName
	result.Latitude = jsonResponse.Latitude
	result.Longitude = jsonResponse.Longitude
	result.TimeZone = jsonResponse.TimeZone
	result.Proxy = jsonResponse.IsProxy

	return result, nil
}

// NewFreeIPAPI makes a provider for https://freeipapi.com.
func NewFreeIPAPI() lookup.Provider {
	return freeipapiProvider{}
}
