package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"whoisrecord/internal/common"
	"whoisrecord/internal/config"
	"whoisrecord/internal/db"
	"whoisrecord/internal/logger"
	"whoisrecord/internal/server"
)

func main() {
	app := &cobra.Command{
		Use:          "whoisrecord",
		Short:        "Extracts structured registration records from WHOIS responses",
		SilenceUsage: true,
		Args:         cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return serve(cmd.Context())
		},
	}

	app.AddCommand(&cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return serve(cmd.Context())
		},
	})

	app.AddCommand(&cobra.Command{
		Use:   "parse [hostname]",
		Short: "Parse a WHOIS response read from stdin",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			hostname := ""
			if len(args) == 1 {
				hostname = args[0]
			}
			return parseStdin(cmd.InOrStdin(), cmd.OutOrStdout(), hostname)
		},
	})

	app.AddCommand(&cobra.Command{
		Use:   "lookup [domain]",
		Short: "Query WHOIS and DNS for a domain and print the result",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return lookup(cmd.Context(), cmd.OutOrStdout(), args[0])
		},
	})

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := app.ExecuteContext(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}

// setup loads configuration, installs the logger and builds the lookup
// service. The ASN manager is nil when no database is configured.
func setup() (*config.Config, *common.Service, *db.ASNManager, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, nil, fmt.Errorf("loading config: %w", err)
	}
	logger.New(cfg.LogLevel, cfg.LogFormat)

	var (
		asnManager *db.ASNManager
		asn        common.ASNLookup
	)
	if cfg.ASNDBPath != "" {
		asnManager, err = db.NewASNManager(cfg.ASNDBPath, cfg.ASNDBURL)
		if err != nil {
			slog.Warn("asn database unavailable, continuing without network attribution", "err", err)
		} else {
			asn = asnManager
		}
	}

	svc := common.NewService(
		common.NewWhoisClient(cfg.WhoisTimeout),
		common.NewDNSResolver(cfg.DNSResolver, cfg.WhoisTimeout),
		asn,
		cfg.CacheTTL,
	)
	return cfg, svc, asnManager, nil
}

func serve(ctx context.Context) error {
	cfg, svc, asnManager, err := setup()
	if err != nil {
		return err
	}
	defer asnManager.Close()
	asnManager.StartUpdater(ctx, cfg.ASNDBReload)

	if err := server.New(cfg.ListenAddr, svc).Start(ctx); err != nil {
		slog.Error("server stopped with error", "err", err)
		return err
	}
	return nil
}

func lookup(ctx context.Context, out io.Writer, domain string) error {
	_, svc, asnManager, err := setup()
	if err != nil {
		return err
	}
	defer asnManager.Close()

	data, err := svc.LookupDomainData(ctx, domain)
	if err != nil {
		return err
	}
	return writeJSON(out, data)
}

func parseStdin(in io.Reader, out io.Writer, hostname string) error {
	raw, err := io.ReadAll(in)
	if err != nil {
		return fmt.Errorf("reading stdin: %w", err)
	}
	svc := common.NewService(nil, nil, nil, 0)
	return writeJSON(out, svc.ParseRecord(string(raw), hostname))
}

func writeJSON(out io.Writer, v any) error {
	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	return enc.Encode(v)
}
