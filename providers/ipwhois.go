package providers

import (
	"encoding/json"
	"fmt"
	"net"
	"strconv"

	"github.com/ghztomash/public-ip-address/lookup"
)

// https://ipwhois.io/documentation
type ipwhoisResponse struct {
	IP          string   `json:"ip"`
	Continent   *string  `json:"continent"`
	Country     *string  `json:"country"`
	CountryCode *string  `json:"country_code"`
	Region      *string  `json:"region"`
	RegionCode  *string  `json:"region_code"`
	City        *string  `json:"city"`
	Latitude    *float64 `json:"latitude"`
	Longitude   *float64 `json:"longitude"`
	Postal      *string  `json:"postal"`
	Connection  *struct {
		ASN    *int64  `json:"asn"`
		Org    *string `json:"org"`
		ISP    *string `json:"isp"`
		Domain *string `json:"domain"`
	} `json:"connection"`
	Timezone *struct {
		ID *string `json:"id"`
	} `json:"timezone"`
}

type ipwhoisProvider struct{}

func (ipwhoisProvider) Name() string {
	return NameIPWhoIs
}

func (ipwhoisProvider) Capabilities() lookup.Capabilities {
	return lookup.Capabilities{
		SupportsTarget: true,
	}
}

func (ipwhoisProvider) URL(target lookup.Target, _ string) string {
	url := "https://ipwho.is/"

	if !target.IsSelf() {
		url += target.IP().String()
	}

	return url
}

func (ipwhoisProvider) Parse(raw []byte) (*lookup.Response, error) {
	jsonResponse := ipwhoisResponse{}

	if err := json.Unmarshal(raw, &jsonResponse); err != nil {
		return nil, fmt.Errorf("%w: %v", lookup.ErrMalformedResponse, err)
	}

	ip := net.ParseIP(jsonResponse.IP)
	if ip == nil {
		return nil, fmt.Errorf("%w: bad ip address %q",
			lookup.ErrMalformedResponse, jsonResponse.IP)
	}

	result := lookup.NewResponse(ip, NameIPWhoIs)
	result.Continent = jsonResponse.Continent
	result.Country = jsonResponse.Country
	result.CountryCode = jsonResponse.CountryCode
	result.Region = jsonResponse.Region
	result.RegionCode = jsonResponse.RegionCode
	result.PostalCode = jsonResponse.Postal
	result.City = jsonResponse.City
	result.Latitude = jsonResponse.Latitude
	result.Longitude = jsonResponse.Longitude

	if jsonResponse.Timezone != nil {
		result.TimeZone = jsonResponse.Timezone.ID
	}

	if jsonResponse.Connection != nil {
		result.ASNOrg = jsonResponse.Connection.Org

		if jsonResponse.Connection.ASN != nil {
			asn := strconv.FormatInt(*jsonResponse.Connection.ASN, 10)
			result.ASN = &asn
		}
	}

	return result, nil
}

// NewIPWhoIs makes a provider for https://ipwhois.io.
func NewIPWhoIs() lookup.Provider {
	return ipwhoisProvider{}
}
