package server

import (
	"net/http"
	"time"

	"whoisrecord/utils"
)

// newRouter creates the main request router and applies middleware.
func newRouter(svc DomainService) http.Handler {
	mux := http.NewServeMux()

	// Register handlers
	mux.Handle("GET /health", utils.HealthCheck(time.Now()))
	mux.HandleFunc("GET /favicon.ico", faviconHandler)
	mux.HandleFunc("GET /{$}", indexHandler)
	mux.HandleFunc("POST /parse", handleParse(svc))
	mux.HandleFunc("GET /{domain}", handleDomainLookup(svc))
	mux.HandleFunc("GET /{domain}/{field}", handleDomainLookup(svc))

	// Chain middleware
	var handler http.Handler = mux
	handler = gzipMiddleware(handler)
	handler = loggingMiddleware(handler)

	return handler
}
