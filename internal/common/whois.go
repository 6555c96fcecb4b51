package common

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"strings"
	"time"

	"github.com/likexian/whois"
	whoisparser "github.com/likexian/whois-parser"

	"whoisrecord/parser"
)

const ianaWhoisServer = "whois.iana.org"

// WhoisFetcher retrieves the raw WHOIS response for a registrable domain.
type WhoisFetcher interface {
	Fetch(ctx context.Context, domain string) (string, error)
}

// WhoisClient queries registry WHOIS servers over port 43.
type WhoisClient struct {
	client *whois.Client
}

// NewWhoisClient returns a client whose queries time out after timeout.
func NewWhoisClient(timeout time.Duration) *WhoisClient {
	c := whois.NewClient()
	c.SetTimeout(timeout)
	return &WhoisClient{client: c}
}

// Fetch runs the query in the background so ctx cancellation is honoured
// even though the underlying client is not context aware.
func (w *WhoisClient) Fetch(ctx context.Context, domain string) (string, error) {
	type result struct {
		raw string
		err error
	}
	done := make(chan result, 1)
	go func() {
		raw, err := w.performWhoisWithFallback(ctx, domain)
		done <- result{raw, err}
	}()

	select {
	case r := <-done:
		return r.raw, r.err
	case <-ctx.Done():
		return "", ctx.Err()
	}
}

// performWhoisWithFallback attempts a WHOIS query and falls back to IPv4 if it suspects an IPv6 issue.
func (w *WhoisClient) performWhoisWithFallback(ctx context.Context, domain string) (string, error) {
	result, err := w.client.Whois(domain)
	if err == nil {
		return result, nil
	}
	if !isIPv6DialError(err) {
		return "", err
	}

	slog.Warn("whois failed with potential ipv6 issue, falling back to ipv4", "domain", domain, "err", err)

	serverHost, serverErr := w.getWhoisServerForDomain(domain)
	if serverErr != nil {
		slog.Error("could not find whois server during fallback", "domain", domain, "err", serverErr)
		return "", err
	}

	ips, resolveErr := net.DefaultResolver.LookupIP(ctx, "ip4", serverHost)
	if resolveErr != nil || len(ips) == 0 {
		slog.Error("could not resolve whois server hostname during fallback", "server", serverHost, "err", resolveErr)
		return "", err
	}

	ipv4Server := ips[0].String()
	slog.Info("retrying whois query with explicit ipv4 address", "domain", domain, "server", ipv4Server)
	return w.client.Whois(domain, ipv4Server)
}

func isIPv6DialError(err error) bool {
	msg := err.Error()
	return strings.Contains(msg, "dial tcp [") && strings.Contains(msg, "]:43")
}

// getWhoisServerForDomain finds the authoritative WHOIS server for a domain by querying IANA.
func (w *WhoisClient) getWhoisServerForDomain(domain string) (string, error) {
	tld := parser.Suffix(domain)
	if tld == "" || tld == domain {
		return "", fmt.Errorf("%w: %s", ErrInvalidDomain, domain)
	}

	resp, err := w.client.Whois(tld, ianaWhoisServer)
	if err != nil {
		return "", fmt.Errorf("could not query iana whois server: %w", err)
	}
	if server := referralServer(resp); server != "" {
		return server, nil
	}
	return "", fmt.Errorf("could not find whois server for TLD: %s", tld)
}

// referralServer returns the value of the first "whois:" line in an IANA
// response.
func referralServer(resp string) string {
	scanner := bufio.NewScanner(strings.NewReader(resp))
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if strings.HasPrefix(strings.ToLower(line), "whois:") {
			if fields := strings.Fields(line); len(fields) > 1 {
				return fields[1]
			}
		}
	}
	return ""
}

// ClassifyAvailability maps the whois-parser verdict on raw to an
// Availability. The structured record itself comes from the parser package.
func ClassifyAvailability(raw string) Availability {
	_, err := whoisparser.Parse(raw)
	switch {
	case err == nil:
		return Registered
	case errors.Is(err, whoisparser.ErrNotFoundDomain):
		return NotFound
	case errors.Is(err, whoisparser.ErrReservedDomain):
		return Reserved
	case errors.Is(err, whoisparser.ErrPremiumDomain):
		return Premium
	case errors.Is(err, whoisparser.ErrBlockedDomain):
		return Blocked
	case errors.Is(err, whoisparser.ErrDomainLimitExceed):
		return LimitExceeded
	default:
		return Unknown
	}
}
