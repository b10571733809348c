package providers

import (
	"encoding/json"
	"fmt"
	"net"
	"strconv"
	"strings"

	"github.com/ghztomash/public-ip-address/lookup"
)

// https://ipinfo.io/developers/responses
type ipinfoResponse struct {
	IP       string  `json:"ip"`
	Hostname *string `json:"hostname"`
	City     *string `json:"city"`
	Region   *string `json:"region"`
	Country  *string `json:"country"`
	Loc      *string `json:"loc"`
	Org      *string `json:"org"`
	Postal   *string `json:"postal"`
	Timezone *string `json:"timezone"`
}

type ipinfoProvider struct{}

func (ipinfoProvider) Name() string {
	return NameIPInfo
}

func (ipinfoProvider) Capabilities() lookup.Capabilities {
	return lookup.Capabilities{
		SupportsTarget: true,
	}
}

func (ipinfoProvider) URL(target lookup.Target, key string) string {
	url := "https://ipinfo.io/"

	if !target.IsSelf() {
		url += target.IP().String() + "/"
	}

	url += "json"

	if key != "" {
		url += "?token=" + key
	}

	return url
}

func (ipinfoProvider) Parse(raw []byte) (*lookup.Response, error) {
	jsonResponse := ipinfoResponse{}

	if err := json.Unmarshal(raw, &jsonResponse); err != nil {
		return nil, fmt.Errorf("%w: %v", lookup.ErrMalformedResponse, err)
	}

	ip := net.ParseIP(jsonResponse.IP)
	if ip == nil {
		return nil, fmt.Errorf("%w: bad ip address %q",
			lookup.ErrMalformedResponse, jsonResponse.IP)
	}

	result := lookup.NewResponse(ip, NameIPInfo)
	result.CountryCode = jsonResponse.Country
	result.Region = jsonResponse.Region
	result.PostalCode = jsonResponse.Postal
	result.City = jsonResponse.City
	result.TimeZone = jsonResponse.Timezone
	result.ASNOrg = jsonResponse.Org
	result.Hostname = jsonResponse.Hostname

	// loc is "lat,lon" packed into a single string
	if jsonResponse.Loc != nil {
		if coords := strings.Split(*jsonResponse.Loc, ","); len(coords) == 2 {
			if lat, err := strconv.ParseFloat(coords[0], 64); err == nil {
				result.Latitude = &lat
			}

			if lon, err := strconv.ParseFloat(coords[1], 64); err == nil {
				result.Longitude = &lon
			}
		}
	}

	return result, nil
}

// NewIPInfo makes a provider for https://ipinfo.io. An API key is
// optional: without a token the service answers with a reduced free
// tier payload.
func NewIPInfo() lookup.Provider {
	return ipinfoProvider{}
}
