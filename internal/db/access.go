package db

import (
	"fmt"
	"net"
	"net/netip"
)

// Lookup returns the autonomous system announcing addr. found is false when
// the database has no network covering addr.
func (m *ASNManager) Lookup(addr netip.Addr) (rec ASNRecord, found bool, err error) {
	if m == nil {
		return rec, false, ErrNoDatabase
	}

	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.asnDB == nil {
		return rec, false, ErrNoDatabase
	}

	if err := m.asnDB.Lookup(net.IP(addr.Unmap().AsSlice()), &rec); err != nil {
		return rec, false, fmt.Errorf("asn lookup for %s: %w", addr, err)
	}
	return rec, rec.AutonomousSystemNumber != 0, nil
}
