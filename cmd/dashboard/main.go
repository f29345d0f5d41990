// Command dashboard serves the NYC vehicle accident dashboard: a single
// page that filters collisions by date range, shows summary statistics,
// and renders the filtered records on an interactive map.
package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/jonboulle/clockwork"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/rk-304/nyc-collision-dashboard/internal/adapter/httpadapter"
	"github.com/rk-304/nyc-collision-dashboard/internal/adapter/socrata"
	"github.com/rk-304/nyc-collision-dashboard/internal/boundary"
	"github.com/rk-304/nyc-collision-dashboard/internal/config"
	"github.com/rk-304/nyc-collision-dashboard/internal/observability"
	"github.com/rk-304/nyc-collision-dashboard/internal/report"
)

var rootCmd = &cobra.Command{
	Use:           "dashboard",
	Short:         "Serves the NYC vehicle accident visualization dashboard",
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, _ []string) error {
		return run(cmd.Context())
	},
}

func init() {
	flags := rootCmd.Flags()
	flags.String("http-addr", ":8080", "address the dashboard listens on")
	flags.String("log-level", "info", "log level (debug, info, warn, error)")
	flags.String("log-format", "json", "log format (json, text)")
	flags.String("socrata-url", config.DefaultSocrataURL, "collision dataset resource URL")
	flags.Int("socrata-limit", 1000, "maximum records to fetch per request")
	flags.Duration("cache-ttl", 0, "dataset cache time-to-live (default from CACHE_TTL)")

	for key, name := range map[string]string{
		"HTTP_ADDR":     "http-addr",
		"LOG_LEVEL":     "log-level",
		"LOG_FORMAT":    "log-format",
		"SOCRATA_URL":   "socrata-url",
		"SOCRATA_LIMIT": "socrata-limit",
		"CACHE_TTL":     "cache-ttl",
	} {
		viper.BindPFlag(key, flags.Lookup(name)) //nolint:errcheck // flags are registered above
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		slog.Error("dashboard failed", "error", err)
		os.Exit(1)
	}
}

func run(parent context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := observability.NewLogger(cfg)
	metrics := observability.NewMetrics()

	client := socrata.NewClient(cfg.SocrataURL, cfg.SocrataLimit, cfg.SocrataUserAgent, cfg.SocrataTimeout, logger)
	cache := socrata.NewCachedFetcher(client, cfg.CacheTTL, clockwork.NewRealClock(), metrics)
	logger.Info("dataset source configured",
		"url", cfg.SocrataURL,
		"limit", cfg.SocrataLimit,
		"cache_ttl", cfg.CacheTTL,
	)

	boundaries := boundary.NewStaticProvider()
	reports := report.New(cache, boundaries, logger, metrics)
	srv := httpadapter.NewServer(cfg.HTTPAddr, reports, cache, logger)

	ctx, stop := signal.NotifyContext(parent, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("http server shutdown error", "error", err)
		return err
	}

	logger.Info("shutdown complete")
	return nil
}
