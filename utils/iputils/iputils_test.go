package iputils

import (
	"net/netip"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestIsBogon(t *testing.T) {
	bogons := []string{"10.1.2.3", "127.0.0.1", "192.168.1.1", "::1", "fe80::1", "2001:db8::53", "::ffff:10.0.0.1"}
	for _, s := range bogons {
		require.True(t, IsBogon(netip.MustParseAddr(s)), s)
	}

	public := []string{"8.8.8.8", "216.239.32.10", "2001:4860:4802:32::a", "::ffff:8.8.8.8"}
	for _, s := range public {
		require.False(t, IsBogon(netip.MustParseAddr(s)), s)
	}

	require.True(t, IsBogon(netip.Addr{}))
}
