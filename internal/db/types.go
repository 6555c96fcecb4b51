package db

import "errors"

// Error messages
var (
	ErrDatabaseOpen   = errors.New("failed to open database")
	ErrDownloadFailed = errors.New("failed to download database")
	ErrNoDatabase     = errors.New("asn database not loaded")
)

// ASNRecord represents a record in the ASN database
type ASNRecord struct {
	AutonomousSystemNumber       uint   `maxminddb:"autonomous_system_number"`
	AutonomousSystemOrganization string `maxminddb:"autonomous_system_organization"`
}
