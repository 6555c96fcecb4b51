package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"time"

	"github.com/joho/godotenv"
)

// Config holds the runtime settings of the service.
type Config struct {
	ListenAddr   string
	LogLevel     string
	LogFormat    string
	WhoisTimeout time.Duration
	CacheTTL     time.Duration
	DNSResolver  string
	ASNDBPath    string
	ASNDBURL     string
	ASNDBReload  time.Duration
}

// Load reads an optional .env file and then the process environment.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		slog.Warn("failed to load .env file", "err", err)
	}
	return FromEnv()
}

// FromEnv builds a Config from environment variables, applying defaults for
// unset ones.
func FromEnv() (*Config, error) {
	cfg := &Config{
		ListenAddr:  getEnv("LISTEN_ADDR", ":3000"),
		LogLevel:    getEnv("LOG_LEVEL", "info"),
		LogFormat:   getEnv("LOG_FORMAT", "json"),
		DNSResolver: getEnv("DNS_RESOLVER", "1.1.1.1:53"),
		ASNDBPath:   os.Getenv("ASN_DB_PATH"),
		ASNDBURL:    os.Getenv("ASN_DB_URL"),
	}

	var err error
	if cfg.WhoisTimeout, err = getDuration("WHOIS_TIMEOUT", 10*time.Second); err != nil {
		return nil, err
	}
	if cfg.CacheTTL, err = getDuration("CACHE_TTL", 10*time.Minute); err != nil {
		return nil, err
	}
	if cfg.ASNDBReload, err = getDuration("ASN_DB_RELOAD", 24*time.Hour); err != nil {
		return nil, err
	}
	return cfg, nil
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return fallback
}

func getDuration(key string, fallback time.Duration) (time.Duration, error) {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		return fallback, nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	if d <= 0 {
		return 0, fmt.Errorf("invalid %s: must be positive, got %s", key, v)
	}
	return d, nil
}
