package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{"LISTEN_ADDR", "LOG_LEVEL", "LOG_FORMAT", "WHOIS_TIMEOUT", "CACHE_TTL", "DNS_RESOLVER", "ASN_DB_PATH", "ASN_DB_URL", "ASN_DB_RELOAD"} {
		t.Setenv(k, "")
	}
}

func TestFromEnvDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := FromEnv()
	require.NoError(t, err)
	require.Equal(t, ":3000", cfg.ListenAddr)
	require.Equal(t, "info", cfg.LogLevel)
	require.Equal(t, "json", cfg.LogFormat)
	require.Equal(t, 10*time.Second, cfg.WhoisTimeout)
	require.Equal(t, 10*time.Minute, cfg.CacheTTL)
	require.Equal(t, "1.1.1.1:53", cfg.DNSResolver)
	require.Empty(t, cfg.ASNDBPath)
	require.Empty(t, cfg.ASNDBURL)
	require.Equal(t, 24*time.Hour, cfg.ASNDBReload)
}

func TestFromEnvOverrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("LISTEN_ADDR", "127.0.0.1:8080")
	t.Setenv("LOG_FORMAT", "text")
	t.Setenv("WHOIS_TIMEOUT", "3s")
	t.Setenv("ASN_DB_PATH", "/data/asn.mmdb")

	cfg, err := FromEnv()
	require.NoError(t, err)
	require.Equal(t, "127.0.0.1:8080", cfg.ListenAddr)
	require.Equal(t, "text", cfg.LogFormat)
	require.Equal(t, 3*time.Second, cfg.WhoisTimeout)
	require.Equal(t, "/data/asn.mmdb", cfg.ASNDBPath)
}

func TestFromEnvInvalidDuration(t *testing.T) {
	clearEnv(t)
	t.Setenv("CACHE_TTL", "ten minutes")

	_, err := FromEnv()
	require.ErrorContains(t, err, "CACHE_TTL")

	t.Setenv("CACHE_TTL", "-1s")
	_, err = FromEnv()
	require.ErrorContains(t, err, "must be positive")
}
