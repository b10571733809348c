package lookup

import (
	"fmt"
	"net"
	"strings"
)

// Response is the canonical result of a lookup. Every provider payload
// is normalized into this shape.
//
// All fields except IP and Provider are optional. A nil pointer means
// "not reported by the service" which is different from a present but
// empty value, so downstream code can tell the two apart.
type Response struct {
	IP          net.IP   `json:"ip"`
	Continent   *string  `json:"continent,omitempty"`
	Country     *string  `json:"country,omitempty"`
	CountryCode *string  `json:"country_code,omitempty"`
	Region      *string  `json:"region,omitempty"`
	RegionCode  *string  `json:"region_code,omitempty"`
	PostalCode  *string  `json:"postal_code,omitempty"`
	City        *string  `json:"city,omitempty"`
	Latitude    *float64 `json:"latitude,omitempty"`
	Longitude   *float64 `json:"longitude,omitempty"`
	TimeZone    *string  `json:"time_zone,omitempty"`
	ASN         *string  `json:"asn,omitempty"`
	ASNOrg      *string  `json:"asn_org,omitempty"`
	Hostname    *string  `json:"hostname,omitempty"`
	Proxy       *bool    `json:"proxy,omitempty"`

	// Provider is a name of the service which produced this response.
	Provider string `json:"provider"`
}

// NewResponse makes a response with only the mandatory fields set.
func NewResponse(ip net.IP, providerName string) *Response {
	return &Response{
		IP:       ip,
		Provider: providerName,
	}
}

// String renders the response in a human readable multiline form.
// Fields which were not reported are omitted.
func (r *Response) String() string {
	sb := &strings.Builder{}

	fmt.Fprintf(sb, "IP: %s\n", r.IP)

	if r.Continent != nil {
		fmt.Fprintf(sb, "Continent: %s\n", *r.Continent)
	}

	switch {
	case r.Country != nil && r.CountryCode != nil:
		fmt.Fprintf(sb, "Country: %s (%s)\n", *r.Country, *r.CountryCode)
	case r.Country != nil:
		fmt.Fprintf(sb, "Country: %s\n", *r.Country)
	case r.CountryCode != nil:
		fmt.Fprintf(sb, "Country: %s\n", *r.CountryCode)
	}

	switch {
	case r.Region != nil && r.RegionCode != nil:
		fmt.Fprintf(sb, "Region: %s (%s)\n", *r.Region, *r.RegionCode)
	case r.Region != nil:
		fmt.Fprintf(sb, "Region: %s\n", *r.Region)
	}

	if r.City != nil {
		fmt.Fprintf(sb, "City: %s\n", *r.City)
	}

	if r.PostalCode != nil {
		fmt.Fprintf(sb, "Postal code: %s\n", *r.PostalCode)
	}

	if r.Latitude != nil && r.Longitude != nil {
		fmt.Fprintf(sb, "Coordinates: %v, %v\n", *r.Latitude, *r.Longitude)
	}

	if r.TimeZone != nil {
		fmt.Fprintf(sb, "Time zone: %s\n", *r.TimeZone)
	}

	switch {
	case r.ASNOrg != nil && r.ASN != nil:
		fmt.Fprintf(sb, "Organization: %s (%s)\n", *r.ASNOrg, *r.ASN)
	case r.ASNOrg != nil:
		fmt.Fprintf(sb, "Organization: %s\n", *r.ASNOrg)
	case r.ASN != nil:
		fmt.Fprintf(sb, "Organization: %s\n", *r.ASN)
	}

	if r.Hostname != nil {
		fmt.Fprintf(sb, "Hostname: %s\n", *r.Hostname)
	}

	if r.Proxy != nil {
		fmt.Fprintf(sb, "Proxy: %t\n", *r.Proxy)
	}

	fmt.Fprintf(sb, "Provider: %s", r.Provider)

	return sb.String()
}
