package app

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/zerojournal/tradepulse/config"
	"github.com/zerojournal/tradepulse/internal/analytics"
	"github.com/zerojournal/tradepulse/internal/api"
	"github.com/zerojournal/tradepulse/internal/sector"
	"github.com/zerojournal/tradepulse/internal/service"
	"github.com/zerojournal/tradepulse/internal/storage"
)

// InitializeApp sets up all application dependencies and returns
// a fully configured Gin router, a cleanup function for graceful shutdown,
// and any error encountered during initialization.
//
// Responsibilities:
//   - Connects to PostgreSQL using InitPostgres().
//   - Initializes the repository layer (DatasetRepository).
//   - Wires the sector-lookup client and the analytics service.
//   - Creates the HTTP handler layer to handle requests.
//   - Configures the Gin router with all API routes.
//   - Registers health and readiness probes.
//   - Provides a cleanup function to close resources (e.g., DB connection).
//
// Returns:
//   - *gin.Engine: the configured Gin HTTP router.
//   - func(): cleanup function to be executed on shutdown.
//   - error: any initialization error that occurred.
func InitializeApp() (*gin.Engine, func(), error) {
	// Load global configuration
	cfg := config.AppConfig

	// Connect to PostgreSQL
	// indirection for unit testing
	db, err := postgresOpener(cfg)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to initialize postgres: %w", err)
	}

	// Initialize repository layer (responsible for DB access)
	repo := storage.NewDatasetRepository(db)

	// Sector lookups are optional; an empty URL maps everything to Unknown.
	sectors := sector.NewClient(cfg.Sector.URL, cfg.Sector.Timeout)

	// Initialize service layer (business logic)
	svc := service.NewAnalyticsService(repo, sectors, analytics.Params{
		RiskFreeRate:   cfg.Analytics.RiskFreeRate,
		RollingWindow:  cfg.Analytics.RollingWindow,
		DisplayCap:     cfg.Analytics.RatioDisplayCap,
		InitialCapital: cfg.Analytics.InitialCapital,
	})

	// Initialize HTTP handler layer (business logic to HTTP mapping)
	handler := api.NewHandler(svc, cfg.Analytics.RatioDisplayCap, cfg.Analytics.RollingWindow)

	// Setup Gin router with routes
	router := api.NewRouter(handler)

	// Register health and readiness probes
	healthHandler := api.NewHealthHandler(db.Ping)
	healthHandler.Register(router)

	// Cleanup resources on shutdown
	cleanup := func() {
		_ = db.Close()
	}

	return router, cleanup, nil
}
