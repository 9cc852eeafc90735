package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/creatorscope/creatorscope/internal/cache"
	"github.com/creatorscope/creatorscope/internal/config"
	httpapi "github.com/creatorscope/creatorscope/internal/interfaces/http"
	"github.com/creatorscope/creatorscope/internal/persistence"
	"github.com/creatorscope/creatorscope/internal/persistence/postgres"
	"github.com/creatorscope/creatorscope/internal/report"
	"github.com/creatorscope/creatorscope/internal/source"
	"github.com/creatorscope/creatorscope/internal/telemetry"
)

const (
	appName = "creatorscope"
	version = "v1.0.0"
)

func main() {
	zerolog.TimeFieldFormat = time.RFC3339
	if term.IsTerminal(int(os.Stderr.Fd())) {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen})
	}

	rootCmd := &cobra.Command{
		Use:     appName,
		Short:   "Creator investment-readiness analytics",
		Version: version,
		Long: `creatorscope ingests social analytics for a creator handle, derives a
composite investment readiness score with supporting metrics, and renders
the result as a JSON report.`,
	}
	rootCmd.PersistentFlags().String("config", "config.yaml", "Path to YAML config file")

	scanCmd := &cobra.Command{
		Use:   "scan <handle>",
		Short: "Generate a report for one creator handle",
		Long:  "Fetches creator, time-series and post data, runs the scoring pipeline and prints the report JSON to stdout",
		Args:  cobra.ExactArgs(1),
		RunE:  runScan,
	}
	scanCmd.Flags().Bool("quiet", false, "Suppress progress output")

	serveCmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the report API server",
		Long:  "Serves report generation, report history, live progress and Prometheus metrics over HTTP",
		RunE:  runServe,
	}

	rootCmd.AddCommand(scanCmd)
	rootCmd.AddCommand(serveCmd)

	if err := rootCmd.Execute(); err != nil {
		log.Error().Err(err).Msg("command failed")
		os.Exit(1)
	}
}

func loadConfig(cmd *cobra.Command) (config.Config, error) {
	path, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(path)
	if err != nil {
		return cfg, err
	}
	if cfg.Source.APIKey == "" {
		return cfg, fmt.Errorf("missing API key: set LUNARCRUSH_API_KEY or source.api_key")
	}
	return cfg, nil
}

func runScan(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	quiet, _ := cmd.Flags().GetBool("quiet")

	var onProgress func(stage string)
	if !quiet {
		onProgress = func(stage string) {
			fmt.Fprintln(os.Stderr, stage)
		}
	}

	builder := report.NewBuilder(source.NewClient(cfg.Source.Client()))
	rep, err := builder.Build(cmd.Context(), args[0], onProgress)
	if err != nil {
		return err
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(rep)
}

func runServe(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	reportCache := cache.NewAuto(cfg.Cache.RedisAddr)
	defer reportCache.Close()

	var store persistence.ReportStore
	if cfg.DB.DSN != "" {
		db, err := sqlx.Connect("postgres", cfg.DB.DSN)
		if err != nil {
			return fmt.Errorf("connect postgres: %w", err)
		}
		defer db.Close()
		store = postgres.NewReportsRepo(db, cfg.DB.Timeout.Std())
		log.Info().Msg("report persistence enabled")
	}

	registry := telemetry.NewRegistry()
	client := source.NewClient(cfg.Source.Client()).WithErrorHook(func(endpoint string) {
		registry.SourceErrors.WithLabelValues(endpoint).Inc()
	})

	server := httpapi.NewServer(cfg.HTTP, httpapi.Deps{
		Builder:   report.NewBuilder(client),
		Cache:     reportCache,
		Store:     store,
		Telemetry: registry,
		ReportTTL: cfg.Cache.ReportTTL.Std(),
	})

	errCh := make(chan error, 1)
	go func() { errCh <- server.Start() }()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return err
	case sig := <-sigCh:
		log.Info().Str("signal", sig.String()).Msg("shutting down")
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return server.Shutdown(ctx)
	}
}
