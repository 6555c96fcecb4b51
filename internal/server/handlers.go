package server

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"

	"whoisrecord/internal/common"
	"whoisrecord/parser"
)

const (
	favicon = `<svg xmlns="http://www.w3.org/2000/svg" width="16" height="16"></svg>`

	maxParseBody = 1 << 20
)

// DomainService is the part of common.Service the handlers use.
type DomainService interface {
	LookupDomainData(ctx context.Context, domain string) (*common.DomainDataResponse, error)
	ParseRecord(raw, hostname string) *parser.WhoisRecord
}

// faviconHandler handles requests for the favicon.
func faviconHandler(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "image/svg+xml")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(favicon))
}

// indexHandler answers the bare root path.
func indexHandler(w http.ResponseWriter, _ *http.Request) {
	sendJSONError(w, "Please provide a domain name, e.g. /example.com.", http.StatusBadRequest)
}

// handleDomainLookup serves /{domain} and /{domain}/{field}.
func handleDomainLookup(svc DomainService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		domain := r.PathValue("domain")
		field := r.PathValue("field")

		var getField func(*common.DomainDataResponse) any
		if field != "" {
			var ok bool
			if getField, ok = fieldMap[field]; !ok {
				sendJSONError(w, "Please provide a valid field.", http.StatusBadRequest)
				return
			}
		}

		data, err := svc.LookupDomainData(r.Context(), domain)
		switch {
		case errors.Is(err, common.ErrInvalidDomain):
			sendJSONError(w, "Please provide a valid domain name.", http.StatusBadRequest)
			return
		case errors.Is(err, context.DeadlineExceeded):
			sendJSONError(w, "Timed out retrieving data for domain.", http.StatusGatewayTimeout)
			return
		case errors.Is(err, common.ErrWhoisFailed):
			sendJSONError(w, "Error retrieving whois data for domain.", http.StatusBadGateway)
			return
		case err != nil:
			slog.Error("failed to look up domain data", "domain", domain, "err", err)
			sendJSONError(w, "Error retrieving data for domain.", http.StatusInternalServerError)
			return
		}

		if getField != nil {
			sendJSONResponse(w, map[string]any{field: getField(data)}, http.StatusOK)
			return
		}
		sendJSONResponse(w, data, http.StatusOK)
	}
}

// handleParse extracts a record from a WHOIS response posted in the body.
// The optional hostname query parameter selects registry specific rules.
func handleParse(svc DomainService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxParseBody))
		if err != nil {
			var tooLarge *http.MaxBytesError
			if errors.As(err, &tooLarge) {
				sendJSONError(w, "Request body too large.", http.StatusRequestEntityTooLarge)
				return
			}
			sendJSONError(w, "Could not read request body.", http.StatusBadRequest)
			return
		}

		rec := svc.ParseRecord(string(body), r.URL.Query().Get("hostname"))
		sendJSONResponse(w, rec, http.StatusOK)
	}
}
