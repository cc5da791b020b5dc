package config

import (
	"fmt"
	"log"
	"time"

	"github.com/spf13/viper"
)

// Config holds the full application configuration loaded from environment
// variables or a .env file.
//
// It is composed of smaller structs that represent different concerns of
// the system: server settings, Postgres connection details, the analytics
// conventions, and the optional sector-lookup collaborator.
//
// Example YAML/ENV equivalent:
//
//	SERVER_PORT=8080
//	POSTGRES_HOST=localhost
//	POSTGRES_PORT=5432
//	POSTGRES_USER=admin
//	POSTGRES_PASSWORD=secret
//	POSTGRES_DB=tradepulse
//	POSTGRES_SSLMODE=disable
//	RISK_FREE_RATE=0.0
//	ROLLING_WINDOW=20
//	RATIO_DISPLAY_CAP=5.0
//	SECTOR_API_URL=
//	SECTOR_API_TIMEOUT_SECONDS=10
type Config struct {
	Server    ServerConfig    // HTTP server configuration
	Postgres  PostgresConfig  // PostgreSQL connection settings
	Analytics AnalyticsConfig // metric conventions
	Sector    SectorConfig    // optional symbol->sector lookup
}

// ServerConfig holds HTTP server settings such as the port to listen on.
type ServerConfig struct {
	Port string // The TCP port the HTTP server will listen on (e.g., "8080")
}

// PostgresConfig defines connection details for PostgreSQL.
type PostgresConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	DBName   string
	SSLMode  string
	URL      string // computed DSN used by database/sql to connect
}

// AnalyticsConfig pins the conventions the metrics engine uses.
//
// Fields:
//   - RiskFreeRate: annual risk-free rate subtracted in the Sharpe ratio.
//   - RollingWindow: trade count per rolling-expectancy window.
//   - RatioDisplayCap: chart clamp for profit factor / risk-reward; the
//     raw values are always preserved alongside the capped ones.
//   - InitialCapital: equity-curve starting value.
type AnalyticsConfig struct {
	RiskFreeRate    float64
	RollingWindow   int
	RatioDisplayCap float64
	InitialCapital  float64
}

// SectorConfig configures the optional symbol->sector lookup service.
// An empty URL disables lookups entirely; every symbol then reports the
// "Unknown" sector.
type SectorConfig struct {
	URL     string
	Timeout time.Duration
}

// AppConfig is the globally accessible configuration instance.
//
// It is populated once via LoadConfig() and used throughout the
// application. All services should import this package and read from
// AppConfig instead of reloading environment variables directly.
var AppConfig Config

// LoadConfig initializes the global AppConfig by reading from a .env file
// or directly from environment variables.
//
// Precedence (from lowest to highest):
//  1. Defaults set in this function.
//  2. Values from .env file (if present).
//  3. Environment variables.
//
// Behavior:
//   - Sets defaults for all required fields.
//   - Reads environment variables automatically with viper.AutomaticEnv().
//   - Constructs the PostgreSQL connection string (DSN).
//   - Calls validateConfig() to ensure required fields are present.
//
// Fatal exit:
//   - If required variables are missing or out of range, validateConfig()
//     terminates the app with a descriptive log message.
func LoadConfig() {
	// Default values
	viper.SetDefault("SERVER_PORT", "8080")

	viper.SetDefault("POSTGRES_HOST", "localhost")
	viper.SetDefault("POSTGRES_PORT", 5432)
	viper.SetDefault("POSTGRES_USER", "postgres")
	viper.SetDefault("POSTGRES_PASSWORD", "postgres")
	viper.SetDefault("POSTGRES_DB", "tradepulse")
	viper.SetDefault("POSTGRES_SSLMODE", "disable")

	viper.SetDefault("RISK_FREE_RATE", 0.0)
	viper.SetDefault("ROLLING_WINDOW", 20)
	viper.SetDefault("RATIO_DISPLAY_CAP", 5.0)
	viper.SetDefault("INITIAL_CAPITAL", 0.0)

	viper.SetDefault("SECTOR_API_URL", "")
	viper.SetDefault("SECTOR_API_TIMEOUT_SECONDS", 10)

	// Optionally read from .env if present (common in local dev)
	viper.SetConfigFile(".env")
	_ = viper.ReadInConfig() // ignore error if no .env

	// Read environment variables automatically
	viper.AutomaticEnv()

	// Populate global config instance
	AppConfig = Config{
		Server: ServerConfig{
			Port: viper.GetString("SERVER_PORT"),
		},
		Postgres: PostgresConfig{
			Host:     viper.GetString("POSTGRES_HOST"),
			Port:     viper.GetInt("POSTGRES_PORT"),
			User:     viper.GetString("POSTGRES_USER"),
			Password: viper.GetString("POSTGRES_PASSWORD"),
			DBName:   viper.GetString("POSTGRES_DB"),
			SSLMode:  viper.GetString("POSTGRES_SSLMODE"),
		},
		Analytics: AnalyticsConfig{
			RiskFreeRate:    viper.GetFloat64("RISK_FREE_RATE"),
			RollingWindow:   viper.GetInt("ROLLING_WINDOW"),
			RatioDisplayCap: viper.GetFloat64("RATIO_DISPLAY_CAP"),
			InitialCapital:  viper.GetFloat64("INITIAL_CAPITAL"),
		},
		Sector: SectorConfig{
			URL:     viper.GetString("SECTOR_API_URL"),
			Timeout: time.Duration(viper.GetInt("SECTOR_API_TIMEOUT_SECONDS")) * time.Second,
		},
	}

	// Construct Postgres DSN (used by database/sql)
	AppConfig.Postgres.URL = fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		AppConfig.Postgres.User,
		AppConfig.Postgres.Password,
		AppConfig.Postgres.Host,
		AppConfig.Postgres.Port,
		AppConfig.Postgres.DBName,
		AppConfig.Postgres.SSLMode,
	)

	// Validate critical fields
	validateConfig()
}

// validateConfig ensures required variables are present and sane, and
// terminates the application if they are not.
//
// This avoids unexpected runtime failures due to incomplete configuration.
func validateConfig() {
	var missing []string

	if AppConfig.Server.Port == "" {
		missing = append(missing, "SERVER_PORT")
	}
	if AppConfig.Postgres.Host == "" {
		missing = append(missing, "POSTGRES_HOST")
	}
	if AppConfig.Postgres.Port == 0 {
		missing = append(missing, "POSTGRES_PORT")
	}
	if AppConfig.Postgres.User == "" {
		missing = append(missing, "POSTGRES_USER")
	}
	if AppConfig.Postgres.Password == "" {
		missing = append(missing, "POSTGRES_PASSWORD")
	}
	if AppConfig.Postgres.DBName == "" {
		missing = append(missing, "POSTGRES_DB")
	}
	if AppConfig.Analytics.RollingWindow <= 0 {
		missing = append(missing, "ROLLING_WINDOW")
	}
	if AppConfig.Analytics.RatioDisplayCap <= 0 {
		missing = append(missing, "RATIO_DISPLAY_CAP")
	}

	if len(missing) > 0 {
		log.Fatalf("missing or invalid required environment variables: %v\n", missing)
	}
}
