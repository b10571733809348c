package providers

import (
	"encoding/json"
	"fmt"
	"net"
	"strconv"

	"github.com/ghztomash/public-ip-address/lookup"
)

// https://www.my-ip.io/api-usage
type myipResponse struct {
	Success bool   `json:"success"`
	IP      string `json:"ip"`
	Type    string `json:"type"`
	Country *struct {
		Code *string `json:"code"`
		Name *string `json:"name"`
	} `json:"country"`
	Region   *string `json:"region"`
	City     *string `json:"city"`
	Location *struct {
		Lat *float64 `json:"lat"`
		Lon *float64 `json:"lon"`
	} `json:"location"`
	TimeZone *string `json:"timeZone"`
	ASN      *struct {
		Number  *int64  `json:"number"`
		Name    *string `json:"name"`
		Network *string `json:"network"`
	} `json:"asn"`
}

type myipProvider struct{}

func (myipProvider) Name() string {
	return NameMyIP
}

// Answers for the requesting peer only.
func (myipProvider) Capabilities() lookup.Capabilities {
	return lookup.Capabilities{}
}

func (myipProvider) URL(lookup.Target, string) string {
	return "https://api.my-ip.io/v2/ip.json"
}

func (myipProvider) Parse(raw []byte) (*lookup.Response, error) {
	jsonResponse := myipResponse{}

	if err := json.Unmarshal(raw, &jsonResponse); err != nil {
		return nil, fmt.Errorf("%w: %v", lookup.ErrMalformedResponse, err)
	}

	ip := net.ParseIP(jsonResponse.IP)
	if ip == nil {
		return nil, fmt.Errorf("%w: bad ip address %q",
			lookup.ErrMalformedResponse, jsonResponse.IP)
	}

	result := lookup.NewResponse(ip, NameMyIP)
	result.Region = jsonResponse.Region
	result.City = jsonResponse.City
	result.TimeZone = jsonResponse.TimeZone

	if jsonResponse.Country != nil {
		result.Country = jsonResponse.Country.Name
		result.CountryCode = jsonResponse.Country.Code
	}

	if jsonResponse.Location != nil {
		result.Latitude = jsonResponse.Location.Lat
		result.Longitude = jsonResponse.Location.Lon
	}

	if jsonResponse.ASN != nil {
		result.ASNOrg = jsonResponse.ASN.Name

		if jsonResponse.ASN.Number != nil {
			asn := strconv.FormatInt(*jsonResponse.ASN.Number, 10)
			result.ASN = &asn
		}
	}

	return result, nil
}

// NewMyIP makes a provider for https://my-ip.io. It resolves the
// caller's own address only.
func NewMyIP() lookup.Provider {
	return myipProvider{}
}
