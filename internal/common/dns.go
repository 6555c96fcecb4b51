package common

import (
	"context"
	"fmt"
	"net/netip"
	"sort"
	"strings"
	"time"

	"github.com/miekg/dns"
	"golang.org/x/sync/errgroup"
)

// Resolver answers the DNS questions needed to describe a delegation.
type Resolver interface {
	LookupNS(ctx context.Context, domain string) ([]string, error)
	LookupAddrs(ctx context.Context, host string) ([]netip.Addr, error)
}

// DNSResolver sends queries to a single recursive resolver.
type DNSResolver struct {
	server string
	client *dns.Client
}

// NewDNSResolver queries server ("host:port") with the given timeout.
func NewDNSResolver(server string, timeout time.Duration) *DNSResolver {
	return &DNSResolver{
		server: server,
		client: &dns.Client{Timeout: timeout},
	}
}

// LookupNS returns the sorted, lower-cased name servers of domain.
func (r *DNSResolver) LookupNS(ctx context.Context, domain string) ([]string, error) {
	answers, err := r.query(ctx, domain, dns.TypeNS)
	if err != nil {
		return nil, err
	}
	var hosts []string
	for _, rr := range answers {
		if ns, ok := rr.(*dns.NS); ok {
			hosts = append(hosts, strings.ToLower(strings.TrimSuffix(ns.Ns, ".")))
		}
	}
	sort.Strings(hosts)
	return hosts, nil
}

// LookupAddrs returns the IPv4 and IPv6 addresses of host. The A and AAAA
// queries run concurrently.
func (r *DNSResolver) LookupAddrs(ctx context.Context, host string) ([]netip.Addr, error) {
	var v4, v6 []dns.RR
	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		v4, err = r.query(ctx, host, dns.TypeA)
		return err
	})
	g.Go(func() (err error) {
		v6, err = r.query(ctx, host, dns.TypeAAAA)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	var addrs []netip.Addr
	for _, rr := range append(v4, v6...) {
		var raw []byte
		switch rec := rr.(type) {
		case *dns.A:
			raw = rec.A
		case *dns.AAAA:
			raw = rec.AAAA
		default:
			continue
		}
		if addr, ok := netip.AddrFromSlice(raw); ok {
			addrs = append(addrs, addr.Unmap())
		}
	}
	return addrs, nil
}

func (r *DNSResolver) query(ctx context.Context, name string, qtype uint16) ([]dns.RR, error) {
	m := new(dns.Msg)
	m.SetQuestion(dns.Fqdn(name), qtype)
	m.RecursionDesired = true

	in, _, err := r.client.ExchangeContext(ctx, m, r.server)
	if err != nil {
		return nil, fmt.Errorf("%s query for %s: %w", dns.TypeToString[qtype], name, err)
	}
	switch in.Rcode {
	case dns.RcodeSuccess:
		return in.Answer, nil
	case dns.RcodeNameError:
		return nil, nil
	default:
		return nil, fmt.Errorf("%s query for %s: %s", dns.TypeToString[qtype], name, dns.RcodeToString[in.Rcode])
	}
}
