package main

//
//  @title           awardpulse API
//  @version         1.0
//  @description     Federal awards and dollars dashboard: sector catalog, Select All resolution, aggregated series and charts.
//  @contact.name    API Support
//  @contact.url     https://github.com/guttosm/awardpulse
//  @license.name    MIT
//  @license.url     https://opensource.org/licenses/MIT
//  @host            localhost:8050
//  @BasePath        /
//  @schemes         http
//
//  @tag.name        dashboard
//  @tag.description Sector catalog, selection, series and charts
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

	"github.com/guttosm/awardpulse/config"
	_ "github.com/guttosm/awardpulse/docs" // swagger docs
	"github.com/guttosm/awardpulse/internal/app"
	"github.com/guttosm/awardpulse/internal/ingestion"
	"github.com/guttosm/awardpulse/internal/logger"
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
//   - cleanup (func()): Cleanup callback to release resources.
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

// runValidate checks every dataset in paths and logs a summary per file.
func runValidate(ctx context.Context, paths []string, parallel int) error {
	if len(paths) == 0 {
		return errors.New("no files to validate")
	}
	reports, err := ingestion.ValidateFiles(ctx, paths, parallel)
	if err != nil {
		return err
	}
	for _, r := range reports {
		logger.L().Info().
			Str("file", r.Path).
			Int("rows", r.Rows).
			Int("sectors", r.Sectors).
			Strs("incomplete", r.Incomplete).
			Msg("dataset valid")
	}
	return nil
}

// main is the entry point of the awardpulse application.
//
// Modes (selected via --mode flag):
//   - serve:    Loads the dataset and starts the dashboard HTTP server.
//   - validate: Loads the dataset and any extra file arguments concurrently
//     and reports rows and sectors, without serving.
//
// Flags:
//   - --mode:     Execution mode ("serve" or "validate"). Default: "serve".
//   - --data:     Path to the CSV dataset. Defaults to DATA_PATH.
//   - --port:     Port for serve mode. Defaults to SERVER_PORT.
//   - --parallel: Files checked concurrently in validate mode (0=auto).
func main() {
	ctx := context.Background()

	// Load configuration from environment or .env file
	config.LoadConfig()

	logger.Init(config.AppConfig.Log.Level, config.AppConfig.Log.Pretty)

	// Parse CLI flags (override config defaults if provided)
	mode := flag.String("mode", "serve", "Mode: serve or validate")
	data := flag.String("data", config.AppConfig.Data.Path, "Path to the awards CSV")
	port := flag.String("port", config.AppConfig.Server.Port, "Port for serve mode")
	parallel := flag.Int("parallel", 0, "How many files to validate concurrently (0=auto, max 8)")
	flag.Parse()

	config.AppConfig.Data.Path = *data

	switch *mode {
	case "validate":
		logger.L().Info().Msg("running validation")
		paths := append([]string{*data}, flag.Args()...)
		if err := runValidate(ctx, paths, *parallel); err != nil {
			logger.L().Fatal().Err(err).Msg("validation failed")
		}
		logger.L().Info().Msg("validation completed successfully")

	case "serve":
		logger.L().Info().Str("data", *data).Msg("starting dashboard server")

		router, cleanup, err := app.InitializeApp(ctx)
		if err != nil {
			logger.L().Fatal().Err(err).Msg("app init error")
		}

		server := startServer(router, *port)
		gracefulShutdown(ctx, server, cleanup)

	default:
		logger.L().Fatal().Str("mode", *mode).Msg("unknown mode")
	}
}
