package main

//
//  @title           tradepulse API
//  @version         1.0
//  @description     Trading journal ingestion & analytics service.
//  @termsOfService  https://github.com/zerojournal/tradepulse
//  @contact.name    API Support
//  @contact.url     https://github.com/zerojournal/tradepulse
//  @contact.email   support@example.com
//  @license.name    MIT
//  @license.url     https://opensource.org/licenses/MIT
//  @host            localhost:8080
//  @BasePath        /
//  @schemes         http
//
//  @tag.name        analytics
//  @tag.description Scalar metrics, style breakdowns and leader tables
//
//  @tag.name        series
//  @tag.description Rolling, cumulative and monthly metric series
//
//  @tag.name        health
//  @tag.description Liveness and readiness probes

import (
	"context"
	"errors"
	"flag"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/zerojournal/tradepulse/config"
	_ "github.com/zerojournal/tradepulse/docs" // swagger docs
	"github.com/zerojournal/tradepulse/internal/app"
	"github.com/zerojournal/tradepulse/internal/ingestion"
	"github.com/zerojournal/tradepulse/internal/logger"
)

// startServer initializes and starts the HTTP server in a separate goroutine.
//
// Parameters:
//   - router (http.Handler): The HTTP router (Gin Engine) configured with all routes.
//   - port (string): The port where the server will listen for incoming requests.
//
// Returns:
//   - *http.Server: The initialized HTTP server instance.
func startServer(router http.Handler, port string) *http.Server {
	server := &http.Server{
		Addr:              ":" + port,
		Handler:           router,
		ReadTimeout:       15 * time.Second,
		ReadHeaderTimeout: 10 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		logger.L().Info().Str("port", port).Msg("server starting")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.L().Fatal().Err(err).Msg("server failed to start")
		}
	}()

	return server
}

// gracefulShutdown gracefully terminates the HTTP server and cleans up resources
// when an OS interrupt signal (SIGINT, SIGTERM) is received.
//
// Parameters:
//   - ctx (context.Context): A context with timeout for graceful shutdown.
//   - server (*http.Server): The HTTP server instance to shut down.
//   - cleanup (func()): Cleanup callback to release resources (e.g., DB connections).
func gracefulShutdown(ctx context.Context, server *http.Server, cleanup func()) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	<-quit
	logger.L().Info().Msg("shutting down server")

	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.L().Fatal().Err(err).Msg("server forced to shutdown")
	}

	cleanup()
	logger.L().Info().Msg("server exited gracefully")
}

// main is the entry point of the tradepulse application.
//
// Modes (selected via --mode flag):
//   - ingest: Loads one tradebook + P&L statement pair into a new dataset.
//   - api:    Starts the REST API exposing analytics over ingested datasets.
//
// Flags:
//   - --mode:      Execution mode ("ingest" or "api"). Default: "ingest".
//   - --tradebook: Path to the tradebook CSV export (ingest mode).
//   - --pnl:       Path to the realized-P&L statement CSV export (ingest mode).
//   - --charges:   Total charges for the statement period (ingest mode).
//   - --label:     Optional human-readable dataset label (ingest mode).
//   - --port:      Port for the API server. Defaults to value from config (SERVER_PORT).
func main() {
	ctx := context.Background()

	// Load configuration from environment or .env file
	config.LoadConfig()

	// Initialize JSON logger
	logger.Init()

	// Parse CLI flags (override config defaults if provided)
	mode := flag.String("mode", "ingest", "Mode: ingest or api")
	tradebook := flag.String("tradebook", "", "Path to the tradebook CSV export")
	pnl := flag.String("pnl", "", "Path to the realized-P&L statement CSV export")
	charges := flag.Float64("charges", 0, "Total charges for the statement period")
	label := flag.String("label", "", "Optional dataset label")
	port := flag.String("port", config.AppConfig.Server.Port, "Port for API mode")
	flag.Parse()

	switch *mode {
	case "ingest":
		// Ingestion mode: parse both exports and persist one dataset
		logger.L().Info().Msg("running ingestion")
		if *tradebook == "" || *pnl == "" {
			logger.L().Fatal().Msg("--tradebook and --pnl are required in ingest mode")
		}

		// Direct DB connection for ingestion
		db, err := app.InitPostgres(config.AppConfig)
		if err != nil {
			logger.L().Fatal().Err(err).Msg("db connect error")
		}
		defer func() { _ = db.Close() }()

		datasetID, err := ingestion.ProcessFiles(ctx, db, ingestion.Files{
			TradebookPath: *tradebook,
			PnlPath:       *pnl,
			TotalCharges:  *charges,
			Label:         *label,
		})
		if err != nil {
			logger.L().Fatal().Err(err).Msg("ingestion failed")
		}
		logger.L().Info().Str("dataset_id", datasetID).Msg("ingestion completed successfully")

	case "api":
		// API mode: start the HTTP server
		logger.L().Info().Msg("starting API server")

		router, cleanup, err := app.InitializeApp()
		if err != nil {
			logger.L().Fatal().Err(err).Msg("app init error")
		}

		server := startServer(router, *port)
		gracefulShutdown(ctx, server, cleanup)

	default:
		logger.L().Fatal().Str("mode", *mode).Msg("unknown mode")
	}
}
