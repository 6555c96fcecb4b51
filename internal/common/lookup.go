package common

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/netip"
	"time"

	"golang.org/x/sync/errgroup"

	"whoisrecord/internal/db"
	"whoisrecord/parser"
	"whoisrecord/utils/iputils"
)

// maxParallelNS bounds the concurrent address lookups per domain.
const maxParallelNS = 8

// ErrWhoisFailed wraps failures to retrieve a WHOIS response.
var ErrWhoisFailed = errors.New("whois lookup failed")

// ASNLookup attributes an address to its autonomous system.
type ASNLookup interface {
	Lookup(addr netip.Addr) (db.ASNRecord, bool, error)
}

// Service combines WHOIS retrieval, record extraction and DNS delegation
// data for a domain.
type Service struct {
	whois    WhoisFetcher
	resolver Resolver
	asn      ASNLookup
	parser   *parser.Parser
	cache    *Cache[string, *DomainDataResponse]
}

// NewService wires a lookup service. resolver and asn may be nil.
func NewService(fetcher WhoisFetcher, resolver Resolver, asn ASNLookup, cacheTTL time.Duration) *Service {
	return &Service{
		whois:    fetcher,
		resolver: resolver,
		asn:      asn,
		parser:   parser.New(parser.DefaultDispatcher()),
		cache:    NewCache[string, *DomainDataResponse](cacheTTL),
	}
}

// ParseRecord extracts a record from raw and flags throttled responses.
func (s *Service) ParseRecord(raw, hostname string) *parser.WhoisRecord {
	rec, _ := s.parse(raw, hostname)
	return rec
}

func (s *Service) parse(raw, hostname string) (*parser.WhoisRecord, Availability) {
	rec := s.parser.Parse(raw, hostname)
	availability := ClassifyAvailability(raw)
	rec.RateLimited = parser.IsRateLimited(raw) || availability == LimitExceeded
	return rec, availability
}

// LookupDomainData looks up domain data with caching. Rate limited answers
// are returned but not cached.
func (s *Service) LookupDomainData(ctx context.Context, input string) (*DomainDataResponse, error) {
	domain, err := NormalizeDomain(input)
	if err != nil {
		return nil, err
	}
	if data, found := s.cache.Get(domain); found {
		return data, nil
	}

	raw, err := s.whois.Fetch(ctx, domain)
	if err != nil {
		slog.Error("whois lookup failed", "domain", domain, "err", err)
		return nil, fmt.Errorf("%w for %s: %v", ErrWhoisFailed, domain, err)
	}

	rec, availability := s.parse(raw, domain)
	if rec.RateLimited {
		slog.Warn("whois server rate limited the query", "domain", domain)
	}

	response := &DomainDataResponse{
		Domain:       domain,
		Availability: availability,
		Whois:        rec,
		DNS:          s.lookupDNS(ctx, domain, rec.NameServers),
	}

	if !rec.RateLimited {
		s.cache.Set(domain, response)
	}
	return response, nil
}

// lookupDNS resolves the name servers of domain, preferring the live
// delegation over the ones listed in the WHOIS record. DNS failures are
// logged and leave the affected entries empty.
func (s *Service) lookupDNS(ctx context.Context, domain string, fromWhois []string) DNSData {
	if s.resolver == nil {
		return DNSData{NS: hostsOnly(fromWhois)}
	}

	hosts, err := s.resolver.LookupNS(ctx, domain)
	if err != nil {
		slog.Warn("ns lookup failed", "domain", domain, "err", err)
	}
	if len(hosts) == 0 {
		hosts = fromWhois
	}

	servers := hostsOnly(hosts)
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(maxParallelNS)
	for i := range servers {
		ns := &servers[i]
		g.Go(func() error {
			addrs, err := s.resolver.LookupAddrs(gctx, ns.Host)
			if err != nil {
				slog.Warn("address lookup failed", "server", ns.Host, "err", err)
				return nil
			}
			for _, addr := range addrs {
				ns.Addresses = append(ns.Addresses, addr.String())
				if info, ok := s.lookupASN(addr); ok {
					ns.Networks = append(ns.Networks, info)
				}
			}
			return nil
		})
	}
	_ = g.Wait()
	return DNSData{NS: servers}
}

func (s *Service) lookupASN(addr netip.Addr) (ASInfo, bool) {
	if s.asn == nil || iputils.IsBogon(addr) {
		return ASInfo{}, false
	}
	rec, found, err := s.asn.Lookup(addr)
	if err != nil {
		if !errors.Is(err, db.ErrNoDatabase) {
			slog.Warn("asn lookup failed", "address", addr.String(), "err", err)
		}
		return ASInfo{}, false
	}
	if !found {
		return ASInfo{}, false
	}
	return ASInfo{
		Address: addr.String(),
		ASN:     rec.AutonomousSystemNumber,
		Org:     rec.AutonomousSystemOrganization,
	}, true
}

func hostsOnly(hosts []string) []NameServer {
	servers := make([]NameServer, 0, len(hosts))
	for _, h := range hosts {
		servers = append(servers, NameServer{Host: h})
	}
	return servers
}
