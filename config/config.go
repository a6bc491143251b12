package config

import (
	"log"
	"time"

	"github.com/spf13/viper"
)

// Config holds the full application configuration loaded from environment variables or .env file.
//
// It is composed of smaller structs that represent different concerns of the system,
// such as server settings, the dataset location and dashboard presentation.
//
// Example ENV equivalent:
//
//	SERVER_PORT=8050
//	GIN_MODE=release
//	DATA_PATH=./data/data.csv
//	DASHBOARD_TITLE="8(a) Federal Awards and Dollars Dashboard"
//	CHART_TITLE="Combined Awards and Dollars (FY 2024)"
//	LOG_LEVEL=info
//	LOG_PRETTY=false
type Config struct {
	Server    ServerConfig    // HTTP server configuration
	Data      DataConfig      // Input dataset settings
	Dashboard DashboardConfig // Page and chart titles
	Log       LogConfig       // Logger settings
}

// ServerConfig holds HTTP server settings.
//
// Fields:
//   - Port: TCP port the HTTP server listens on (e.g., "8050").
//   - Mode: gin mode, "release" or "debug". Debug enables gin's route dump and
//     template reload friendly behaviour; it is deployment configuration only.
//   - RateLimitPerMinute: requests allowed per client IP per minute.
//   - RequestTimeout: per-request context deadline.
type ServerConfig struct {
	Port               string
	Mode               string
	RateLimitPerMinute int
	RequestTimeout     time.Duration
}

// DataConfig points at the CSV file loaded once at startup.
type DataConfig struct {
	Path string
}

// DashboardConfig carries the titles rendered on the page and the chart.
type DashboardConfig struct {
	Title      string
	ChartTitle string
}

// LogConfig drives logger.Init.
type LogConfig struct {
	Level  string
	Pretty bool
}

// AppConfig is the globally accessible configuration instance.
//
// It is populated once via LoadConfig() and handed to app.InitializeApp and
// logger.Init by main.
var AppConfig Config

// LoadConfig initializes the global AppConfig by reading from .env file
// or directly from environment variables.
//
// Precedence (from lowest to highest):
//  1. Defaults set in this function.
//  2. Values from .env file (if present).
//  3. Environment variables.
//
// Fatal exit:
//   - If required variables are missing, validateConfig() will terminate the app
//     with a descriptive log message.
func LoadConfig() {
	v := viper.New()

	v.SetDefault("SERVER_PORT", "8050")
	v.SetDefault("GIN_MODE", "release")
	v.SetDefault("RATE_LIMIT_PER_MINUTE", 120)
	v.SetDefault("REQUEST_TIMEOUT", "10s")

	v.SetDefault("DATA_PATH", "data.csv")

	v.SetDefault("DASHBOARD_TITLE", "8(a) Federal Awards and Dollars Dashboard")
	v.SetDefault("CHART_TITLE", "Combined Awards and Dollars (FY 2024)")

	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_PRETTY", false)

	// Optionally read from .env if present (common in local dev)
	v.SetConfigFile(".env")
	v.SetConfigType("env")
	_ = v.ReadInConfig() // ignore error if no .env

	v.AutomaticEnv()

	AppConfig = Config{
		Server: ServerConfig{
			Port:               v.GetString("SERVER_PORT"),
			Mode:               v.GetString("GIN_MODE"),
			RateLimitPerMinute: v.GetInt("RATE_LIMIT_PER_MINUTE"),
			RequestTimeout:     v.GetDuration("REQUEST_TIMEOUT"),
		},
		Data: DataConfig{
			Path: v.GetString("DATA_PATH"),
		},
		Dashboard: DashboardConfig{
			Title:      v.GetString("DASHBOARD_TITLE"),
			ChartTitle: v.GetString("CHART_TITLE"),
		},
		Log: LogConfig{
			Level:  v.GetString("LOG_LEVEL"),
			Pretty: v.GetBool("LOG_PRETTY"),
		},
	}

	validateConfig()
}

// missingKeys reports which required settings are empty in cfg.
func missingKeys(cfg Config) []string {
	var missing []string

	if cfg.Server.Port == "" {
		missing = append(missing, "SERVER_PORT")
	}
	if cfg.Server.RateLimitPerMinute <= 0 {
		missing = append(missing, "RATE_LIMIT_PER_MINUTE")
	}
	if cfg.Server.RequestTimeout <= 0 {
		missing = append(missing, "REQUEST_TIMEOUT")
	}
	if cfg.Data.Path == "" {
		missing = append(missing, "DATA_PATH")
	}
	return missing
}

// validateConfig ensures required variables are present and terminates
// the application if they are missing.
func validateConfig() {
	if missing := missingKeys(AppConfig); len(missing) > 0 {
		log.Fatalf("missing required environment variables: %v\n", missing)
	}
}
