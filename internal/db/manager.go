package db

import (
	"fmt"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/oschwald/maxminddb-golang"
)

// ASNManager owns the ASN database used to attribute name server addresses
// to networks. A nil *ASNManager is valid and answers every lookup with
// ErrNoDatabase.
type ASNManager struct {
	path       string
	url        string
	asnDB      *maxminddb.Reader
	httpClient *http.Client
	mu         sync.RWMutex
}

// NewASNManager opens the database at path. When url is set and the file
// is missing, it is downloaded first.
func NewASNManager(path, url string) (*ASNManager, error) {
	m := &ASNManager{
		path:       path,
		url:        url,
		httpClient: &http.Client{Timeout: 2 * time.Minute},
	}
	if err := m.open(); err != nil {
		return nil, fmt.Errorf("initializing asn manager: %w", err)
	}
	return m, nil
}

func (m *ASNManager) open() error {
	reader, err := maxminddb.Open(m.path)
	if err != nil && m.url != "" {
		slog.Warn("asn database not readable, attempting download", "path", m.path, "err", err)
		if dlErr := m.download(); dlErr != nil {
			return dlErr
		}
		reader, err = maxminddb.Open(m.path)
	}
	if err != nil {
		return fmt.Errorf("%w: %s: %v", ErrDatabaseOpen, m.path, err)
	}

	m.mu.Lock()
	m.asnDB = reader
	m.mu.Unlock()
	return nil
}

// Reload reopens the database file and swaps it in. The previous reader
// stays in use if the new file cannot be opened.
func (m *ASNManager) Reload() error {
	reader, err := maxminddb.Open(m.path)
	if err != nil {
		return fmt.Errorf("%w: %s: %v", ErrDatabaseOpen, m.path, err)
	}

	m.mu.Lock()
	old := m.asnDB
	m.asnDB = reader
	m.mu.Unlock()

	if old != nil {
		if err := old.Close(); err != nil {
			slog.Warn("failed to close previous asn database", "err", err)
		}
	}
	return nil
}

// Close closes the database reader.
func (m *ASNManager) Close() {
	if m == nil {
		return
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.asnDB != nil {
		if err := m.asnDB.Close(); err != nil {
			slog.Warn("failed to close asndb", "err", err)
		}
		m.asnDB = nil
	}
}
