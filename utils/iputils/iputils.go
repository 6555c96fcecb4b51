package iputils

import "net/netip"

// BogonPrefixes lists address ranges that never appear on the public
// internet. Name servers resolving into them are not looked up in the ASN
// database.
var BogonPrefixes = mustPrefixes(
	// IPv4
	"0.0.0.0/8",          // "This" network
	"10.0.0.0/8",         // Private-use networks
	"100.64.0.0/10",      // Carrier-grade NAT
	"127.0.0.0/8",        // Loopback
	"169.254.0.0/16",     // Link-local
	"172.16.0.0/12",      // Private-use networks
	"192.0.0.0/24",       // IETF protocol assignments
	"192.0.2.0/24",       // TEST-NET-1
	"192.168.0.0/16",     // Private-use networks
	"198.18.0.0/15",      // Network interconnect device benchmark testing
	"198.51.100.0/24",    // TEST-NET-2
	"203.0.113.0/24",     // TEST-NET-3
	"224.0.0.0/4",        // Multicast
	"240.0.0.0/4",        // Reserved for future use
	"255.255.255.255/32", // Limited broadcast
	// IPv6
	"::/128",        // Unspecified
	"::1/128",       // Loopback
	"::ffff:0:0/96", // IPv4-mapped
	"100::/64",      // Discard-only
	"2001:10::/28",  // ORCHID
	"2001:db8::/32", // Documentation
	"fc00::/7",      // Unique local
	"fe80::/10",     // Link-local
	"fec0::/10",     // Site-local (deprecated)
	"ff00::/8",      // Multicast
)

func mustPrefixes(cidrs ...string) []netip.Prefix {
	out := make([]netip.Prefix, 0, len(cidrs))
	for _, c := range cidrs {
		out = append(out, netip.MustParsePrefix(c))
	}
	return out
}

// IsBogon reports whether addr falls into one of BogonPrefixes.
func IsBogon(addr netip.Addr) bool {
	if !addr.IsValid() {
		return true
	}
	addr = addr.Unmap()
	for _, p := range BogonPrefixes {
		if p.Contains(addr) {
			return true
		}
	}
	return false
}
