package common

import "whoisrecord/parser"

// Availability classifies a WHOIS response by registration state.
type Availability string

const (
	Registered    Availability = "registered"
	NotFound      Availability = "not_found"
	Reserved      Availability = "reserved"
	Premium       Availability = "premium"
	Blocked       Availability = "blocked"
	LimitExceeded Availability = "limit_exceeded"
	Unknown       Availability = "unknown"
)

// DomainDataResponse represents the structure of the domain data returned by the API.
type DomainDataResponse struct {
	Domain       string              `json:"domain"`
	Availability Availability        `json:"availability"`
	Whois        *parser.WhoisRecord `json:"whois"`
	DNS          DNSData             `json:"dns"`
}

// DNSData represents the delegation as seen in DNS.
type DNSData struct {
	NS []NameServer `json:"NS,omitempty"`
}

// NameServer is one delegated name server with the networks it lives in.
type NameServer struct {
	Host      string   `json:"host"`
	Addresses []string `json:"addresses,omitempty"`
	Networks  []ASInfo `json:"networks,omitempty"`
}

// ASInfo names the autonomous system announcing a name server address.
type ASInfo struct {
	Address string `json:"address"`
	ASN     uint   `json:"asn"`
	Org     string `json:"org"`
}
