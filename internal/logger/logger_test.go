package logger

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	require.Equal(t, slog.LevelDebug, ParseLevel("DEBUG"))
	require.Equal(t, slog.LevelWarn, ParseLevel("warning"))
	require.Equal(t, slog.LevelError, ParseLevel(" error "))
	require.Equal(t, slog.LevelInfo, ParseLevel(""))
	require.Equal(t, slog.LevelInfo, ParseLevel("verbose"))
}

func TestNewLoggerJSON(t *testing.T) {
	var buf bytes.Buffer
	l := newLogger(&buf, "warn", "json")

	l.Info("dropped")
	require.Zero(t, buf.Len())

	l.Warn("whois lookup failed", "domain", "example.com")
	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	require.Equal(t, "whois lookup failed", entry["msg"])
	require.Equal(t, "example.com", entry["domain"])
}

func TestNewLoggerText(t *testing.T) {
	var buf bytes.Buffer
	newLogger(&buf, "info", "text").Info("listening", "addr", ":3000")
	require.Contains(t, buf.String(), "msg=listening")
	require.Contains(t, buf.String(), "addr=:3000")
}
