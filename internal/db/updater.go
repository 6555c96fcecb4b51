package db

import (
	"compress/gzip"
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"strings"
	"time"
)

// StartUpdater refreshes the database every interval until ctx is done. With
// a download URL configured a fresh copy is fetched first; otherwise the
// file on disk is reopened.
func (m *ASNManager) StartUpdater(ctx context.Context, interval time.Duration) {
	if m == nil {
		return
	}
	slog.Info("starting asn database updater", "interval", interval.String())
	ticker := time.NewTicker(interval)
	go func() {
		for {
			select {
			case <-ticker.C:
				if err := m.Update(ctx); err != nil {
					slog.Error("failed to update asn database", "err", err)
				}
			case <-ctx.Done():
				ticker.Stop()
				slog.Info("asn database updater stopped")
				return
			}
		}
	}()
}

// Update downloads the database when a URL is configured and reloads it.
func (m *ASNManager) Update(ctx context.Context) error {
	if m.url != "" {
		if err := m.downloadContext(ctx); err != nil {
			return err
		}
	}
	if err := m.Reload(); err != nil {
		return err
	}
	slog.Info("reloaded asn database", "path", m.path)
	return nil
}

func (m *ASNManager) download() error {
	return m.downloadContext(context.Background())
}

// downloadContext fetches m.url into a temporary file next to m.path and
// renames it into place once complete.
func (m *ASNManager) downloadContext(ctx context.Context) error {
	tmpPath := m.path + ".tmp"
	if err := m.downloadFile(ctx, m.url, tmpPath); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("%w: %v", ErrDownloadFailed, err)
	}
	if err := os.Rename(tmpPath, m.path); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("%w: replacing %s: %v", ErrDownloadFailed, m.path, err)
	}
	return nil
}

// downloadFile downloads url to destPath, decompressing it when the URL ends
// in ".gz".
func (m *ASNManager) downloadFile(ctx context.Context, url, destPath string) error {
	slog.Info("downloading asn database", "url", url)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("could not create request: %w", err)
	}

	resp, err := m.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("http request failed: %w", err)
	}
	defer func() {
		if err := resp.Body.Close(); err != nil {
			slog.Error("failed to close response body", "err", err)
		}
	}()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("received non-200 status code: %d", resp.StatusCode)
	}

	var body io.Reader = resp.Body
	if strings.HasSuffix(url, ".gz") {
		gzr, err := gzip.NewReader(resp.Body)
		if err != nil {
			return fmt.Errorf("could not create gzip reader: %w", err)
		}
		defer func() {
			if err := gzr.Close(); err != nil {
				slog.Error("failed to close gzip reader", "err", err)
			}
		}()
		body = gzr
	}

	outFile, err := os.Create(destPath)
	if err != nil {
		return fmt.Errorf("could not create temporary file: %w", err)
	}
	if _, err := io.Copy(outFile, body); err != nil {
		_ = outFile.Close()
		return fmt.Errorf("could not write db file: %w", err)
	}
	if err := outFile.Close(); err != nil {
		return fmt.Errorf("failed to close output file: %w", err)
	}

	slog.Info("successfully downloaded", "file", destPath)
	return nil
}
