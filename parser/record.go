package parser

import (
	"encoding/json"
	"time"
)

// Contact holds the details shared by the registrant, admin and tech roles.
type Contact struct {
	Organization *string `json:"organization"`
	Email        *string `json:"email"`
	Name         *string `json:"name"`
	Telephone    *string `json:"telephone"`
}

// AbuseContact holds the registrar abuse desk details.
type AbuseContact struct {
	Email     *string `json:"email"`
	Telephone *string `json:"telephone"`
}

// DateKind tells how a Date was resolved.
type DateKind int

const (
	DateAbsent DateKind = iota
	DateTimestamp
	DateRaw
)

// Date is a timestamp field that keeps "found but unparsed" apart from
// "not found".
type Date struct {
	Kind DateKind
	Time time.Time
	Raw  string
}

// Timestamp returns a resolved Date.
func Timestamp(t time.Time) Date {
	return Date{Kind: DateTimestamp, Time: t}
}

// RawDate returns a Date that carries text which could not be parsed.
func RawDate(s string) Date {
	return Date{Kind: DateRaw, Raw: s}
}

// IsAbsent reports whether no date was found.
func (d Date) IsAbsent() bool { return d.Kind == DateAbsent }

// IsTimestamp reports whether the date was parsed.
func (d Date) IsTimestamp() bool { return d.Kind == DateTimestamp }

// IsRaw reports whether the date was found but left as text.
func (d Date) IsRaw() bool { return d.Kind == DateRaw }

func (d Date) String() string {
	switch d.Kind {
	case DateTimestamp:
		return d.Time.Format(time.RFC3339)
	case DateRaw:
		return d.Raw
	}
	return ""
}

// MarshalJSON encodes a timestamp as RFC 3339, raw text as-is and absent as null.
func (d Date) MarshalJSON() ([]byte, error) {
	if d.Kind == DateAbsent {
		return []byte("null"), nil
	}
	return json.Marshal(d.String())
}

// WhoisRecord is the structured form of one WHOIS response.
type WhoisRecord struct {
	RawText string `json:"raw_text"`

	Registrant Contact      `json:"registrant"`
	Admin      Contact      `json:"admin"`
	Tech       Contact      `json:"tech"`
	Abuse      AbuseContact `json:"abuse"`

	Statuses    []string `json:"statuses"`
	NameServers []string `json:"name_servers"`

	Domain    *string `json:"domain"`
	Registrar *string `json:"registrar"`

	RegisteredAt Date `json:"registered_at"`
	UpdatedAt    Date `json:"updated_at"`
	ExpiresAt    Date `json:"expires_at"`

	RateLimited bool `json:"rate_limited"`
}

func toPtr(s string, ok bool) *string {
	if !ok || s == "" {
		return nil
	}
	return &s
}
