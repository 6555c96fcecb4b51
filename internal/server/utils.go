package server

import (
	"net"
	"net/http"
	"strings"

	"whoisrecord/internal/common"
)

// fieldMap maps request fields to their corresponding response values.
var fieldMap = map[string]func(*common.DomainDataResponse) any{
	"domain":        func(d *common.DomainDataResponse) any { return d.Whois.Domain },
	"registrar":     func(d *common.DomainDataResponse) any { return d.Whois.Registrar },
	"registered_at": func(d *common.DomainDataResponse) any { return d.Whois.RegisteredAt },
	"updated_at":    func(d *common.DomainDataResponse) any { return d.Whois.UpdatedAt },
	"expires_at":    func(d *common.DomainDataResponse) any { return d.Whois.ExpiresAt },
	"statuses":      func(d *common.DomainDataResponse) any { return d.Whois.Statuses },
	"name_servers":  func(d *common.DomainDataResponse) any { return d.Whois.NameServers },
	"registrant":    func(d *common.DomainDataResponse) any { return d.Whois.Registrant },
	"admin":         func(d *common.DomainDataResponse) any { return d.Whois.Admin },
	"tech":          func(d *common.DomainDataResponse) any { return d.Whois.Tech },
	"abuse":         func(d *common.DomainDataResponse) any { return d.Whois.Abuse },
	"rate_limited":  func(d *common.DomainDataResponse) any { return d.Whois.RateLimited },
	"availability":  func(d *common.DomainDataResponse) any { return d.Availability },
	"dns":           func(d *common.DomainDataResponse) any { return d.DNS },
}

// GetRealIP extracts the client's real IP address from request headers.
func GetRealIP(r *http.Request) string {
	for _, header := range []string{"CF-Connecting-IP", "X-Real-IP", "X-Forwarded-For"} {
		if ip := r.Header.Get(header); ip != "" {
			return strings.TrimSpace(strings.Split(ip, ",")[0])
		}
	}
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
