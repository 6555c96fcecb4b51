package parser

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestIsRateLimited(t *testing.T) {
	require.True(t, IsRateLimited("WHOIS LIMIT EXCEEDED"))
	require.True(t, IsRateLimited("  Your connection limit exceeded.\r\n"))
	require.True(t, IsRateLimited("% banner\nNumber of allowed queries exceeded.\n"))

	require.False(t, IsRateLimited(""))
	require.False(t, IsRateLimited("Domain Name: example.com"))
	require.False(t, IsRateLimited("whois limit exceeded"))
}

func TestKnownRateLimitMessages(t *testing.T) {
	require.Len(t, KnownRateLimitMessages, 12)
	require.Contains(t, KnownRateLimitMessages, "IP Address Has Reached Rate Limit")
}
