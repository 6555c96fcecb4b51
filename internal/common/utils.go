package common

import (
	"errors"
	"fmt"
	"strings"

	"golang.org/x/net/idna"
	"golang.org/x/net/publicsuffix"
)

// ErrInvalidDomain is returned for input that is not a registrable name.
var ErrInvalidDomain = errors.New("invalid domain")

// NormalizeDomain converts input to its ASCII form and reduces it to the
// registrable domain, e.g. "www.Example.co.uk." becomes "example.co.uk".
func NormalizeDomain(input string) (string, error) {
	name := strings.TrimSuffix(strings.TrimSpace(input), ".")
	if name == "" || !strings.Contains(name, ".") {
		return "", fmt.Errorf("%w: %q", ErrInvalidDomain, input)
	}

	ascii, err := idna.Lookup.ToASCII(name)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidDomain, err)
	}
	if len(ascii) > 253 {
		return "", fmt.Errorf("%w: name too long", ErrInvalidDomain)
	}

	eTLD, err := publicsuffix.EffectiveTLDPlusOne(ascii)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidDomain, err)
	}
	return eTLD, nil
}
