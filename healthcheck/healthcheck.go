package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"time"
)

const defaultURL = "http://localhost:3000/health"

func main() {
	url := os.Getenv("HEALTHCHECK_URL")
	if url == "" {
		url = defaultURL
	}

	client := &http.Client{Timeout: 5 * time.Second}
	resp, err := client.Get(url)
	if err != nil {
		slog.Error("error performing healthcheck", "url", url, "err", err)
		os.Exit(1)
	}

	defer func() {
		if cerr := resp.Body.Close(); cerr != nil {
			slog.Warn("failed to close response body", "err", cerr)
		}
	}()

	if resp.StatusCode != http.StatusOK {
		slog.Error("healthcheck failed", "url", url, "status", resp.StatusCode)
		os.Exit(1)
	}

	fmt.Println("OK")
}
