package server

import (
	"compress/gzip"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"whoisrecord/internal/common"
)

const exampleRecord = `Domain Name: EXAMPLE.COM
Registrar: Example Registrar, Inc.
Creation Date: 2020-01-15T00:00:00Z
Registry Expiry Date: 2030-01-15T00:00:00Z
Domain Status: clientTransferProhibited
Name Server: NS1.EXAMPLE.COM
`

type staticFetcher struct {
	raw string
	err error
}

func (f staticFetcher) Fetch(context.Context, string) (string, error) {
	return f.raw, f.err
}

func newTestServer(t *testing.T, f staticFetcher) *httptest.Server {
	t.Helper()
	svc := common.NewService(f, nil, nil, time.Minute)
	srv := httptest.NewServer(New(":0", svc).Handler())
	t.Cleanup(srv.Close)
	return srv
}

func getJSON(t *testing.T, url string, wantStatus int) map[string]any {
	t.Helper()
	resp, err := http.Get(url)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, wantStatus, resp.StatusCode)
	require.Equal(t, "application/json; charset=utf-8", resp.Header.Get("Content-Type"))

	var body map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	return body
}

func TestHealth(t *testing.T) {
	srv := newTestServer(t, staticFetcher{})

	body := getJSON(t, srv.URL+"/health", http.StatusOK)
	require.Equal(t, "ok", body["status"])
	require.NotEmpty(t, body["uptime"])
}

func TestDomainLookup(t *testing.T) {
	srv := newTestServer(t, staticFetcher{raw: exampleRecord})

	body := getJSON(t, srv.URL+"/www.example.com", http.StatusOK)
	require.Equal(t, "example.com", body["domain"])

	whois := body["whois"].(map[string]any)
	require.Equal(t, "example.com", whois["domain"])
	require.Equal(t, "Example Registrar, Inc.", whois["registrar"])
	require.Equal(t, "2020-01-15T00:00:00Z", whois["registered_at"])
	require.Nil(t, whois["updated_at"])
	require.Equal(t, []any{"clientTransferProhibited"}, whois["statuses"])
	require.Equal(t, []any{"ns1.example.com"}, whois["name_servers"])
	require.Equal(t, false, whois["rate_limited"])
	require.Equal(t, exampleRecord, whois["raw_text"])
}

func TestDomainFieldLookup(t *testing.T) {
	srv := newTestServer(t, staticFetcher{raw: exampleRecord})

	body := getJSON(t, srv.URL+"/example.com/expires_at", http.StatusOK)
	require.Equal(t, map[string]any{"expires_at": "2030-01-15T00:00:00Z"}, body)

	body = getJSON(t, srv.URL+"/example.com/registrant", http.StatusOK)
	require.Equal(t, map[string]any{"registrant": map[string]any{
		"organization": nil, "email": nil, "name": nil, "telephone": nil,
	}}, body)

	body = getJSON(t, srv.URL+"/example.com/nope", http.StatusBadRequest)
	require.Equal(t, "Please provide a valid field.", body["error"])
}

func TestDomainLookupErrors(t *testing.T) {
	srv := newTestServer(t, staticFetcher{err: errors.New("connection refused")})

	getJSON(t, srv.URL+"/localhost", http.StatusBadRequest)
	getJSON(t, srv.URL+"/", http.StatusBadRequest)
	body := getJSON(t, srv.URL+"/example.com", http.StatusBadGateway)
	require.Equal(t, "Error retrieving whois data for domain.", body["error"])
}

func TestParseEndpoint(t *testing.T) {
	srv := newTestServer(t, staticFetcher{err: errors.New("must not be called")})

	raw := "Domain:\texample.be\nRegistrar:\nName:\nExample Ltd\n"
	resp, err := http.Post(srv.URL+"/parse?hostname=example.be", "text/plain", strings.NewReader(raw))
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var rec map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&rec))
	require.Equal(t, "Example Ltd", rec["registrar"])
	require.Equal(t, raw, rec["raw_text"])

	resp, err = http.Post(srv.URL+"/parse", "text/plain", strings.NewReader(raw))
	require.NoError(t, err)
	defer resp.Body.Close()
	rec = nil
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&rec))
	require.Nil(t, rec["registrar"])
}

func TestParseEndpointRateLimited(t *testing.T) {
	srv := newTestServer(t, staticFetcher{})

	resp, err := http.Post(srv.URL+"/parse", "text/plain", strings.NewReader("IP Address Has Reached Rate Limit\n"))
	require.NoError(t, err)
	defer resp.Body.Close()

	var rec map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&rec))
	require.Equal(t, true, rec["rate_limited"])
}

func TestGzip(t *testing.T) {
	srv := newTestServer(t, staticFetcher{raw: exampleRecord})

	req, err := http.NewRequest(http.MethodGet, srv.URL+"/example.com/registrar", nil)
	require.NoError(t, err)
	req.Header.Set("Accept-Encoding", "gzip")

	resp, err := http.DefaultTransport.RoundTrip(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, "gzip", resp.Header.Get("Content-Encoding"))

	zr, err := gzip.NewReader(resp.Body)
	require.NoError(t, err)
	var body map[string]any
	require.NoError(t, json.NewDecoder(zr).Decode(&body))
	require.Equal(t, "Example Registrar, Inc.", body["registrar"])
}

func TestGetRealIP(t *testing.T) {
	r := httptest.NewRequest(http.MethodGet, "/", nil)
	r.RemoteAddr = "192.0.2.10:5555"
	require.Equal(t, "192.0.2.10", GetRealIP(r))

	r.Header.Set("X-Forwarded-For", "198.51.100.1, 10.0.0.1")
	require.Equal(t, "198.51.100.1", GetRealIP(r))
}
