package parser

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNormalizeTextWithoutBannerIsUnchanged(t *testing.T) {
	raw := "  Domain Name: EXAMPLE.COM  \n\tRegistrar: Example\n"
	require.Equal(t, raw, NormalizeText(raw))
}

func TestNormalizeTextDropsBanner(t *testing.T) {
	raw := "  Domain Name: EXAMPLE.COM  \nRegistrar: Example\t\n# whois.example.com\nbanner one\nbanner two\n"
	require.Equal(t, "Domain Name: EXAMPLE.COM\nRegistrar: Example", NormalizeText(raw))
}

func TestNormalizeTextUsesLastHashLine(t *testing.T) {
	raw := "a\n# first\n  b  \n# second\nc"
	require.Equal(t, "a\n# first\nb", NormalizeText(raw))
}

func TestNormalizeTextIndentedHashIsNotBanner(t *testing.T) {
	raw := "Domain Status: ok https://icann.org/epp#ok\n  # not a banner\n"
	require.Equal(t, raw, NormalizeText(raw))
}

func TestNormalizeTextCRLF(t *testing.T) {
	raw := "Registrar: Example\r\nDomain Name: example.com\r\n# banner\r\n"
	require.Equal(t, "Registrar: Example\nDomain Name: example.com", NormalizeText(raw))
}

func TestNormalizeTextEdgeCases(t *testing.T) {
	require.Equal(t, "", NormalizeText(""))
	require.Equal(t, "", NormalizeText("# only banner\nmore"))
	require.Equal(t, "\n\n", NormalizeText("\n\n"))
}
