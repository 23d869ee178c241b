package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"taxidash.io/internal/app"
	"taxidash.io/internal/appconf"
	"taxidash.io/internal/dataset"
	"taxidash.io/internal/logging"
	"taxidash.io/internal/restapi"
	"taxidash.io/internal/tripdb"
	"taxidash.io/internal/webui"
)

func main() {
	cfg, err := parseConfig(os.Args[1:])
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	logger := logging.NewStructuredLogger(os.Stdout, slog.LevelInfo)

	application, err := buildApplication(cfg, logger)
	if err != nil {
		logging.LogError(logger, "failed to initialize application", err)
		os.Exit(1)
	}

	// A failed initial load is not fatal: requests retry it and answer 503
	// until the source becomes readable.
	if _, err := application.Dataset.Load(context.Background()); err != nil {
		logging.LogError(logger, "failed to load trip data", err,
			slog.String("source", cfg.DataURL))
	}

	api := restapi.NewRestAPI(application)
	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      newHandler(api, &webui.WebUI{Application: application}),
		IdleTimeout:  time.Minute,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 30 * time.Second,
		ErrorLog:     slog.NewLogLogger(logger.Handler(), slog.LevelError),
	}

	if err := run(srv, logger); err != nil {
		logging.LogError(logger, "server error", err)
	}

	api.Stop()
	application.Shutdown()
}

// parseConfig reads the command line and, when -config is given, the YAML
// file. Flags set explicitly on the command line take precedence.
func parseConfig(args []string) (appconf.Config, error) {
	cfg := appconf.Defaults()

	var (
		env        string
		apiKeys    string
		exemptKeys string
		configPath string
	)

	fs := flag.NewFlagSet("taxidash", flag.ContinueOnError)
	fs.IntVar(&cfg.Port, "port", cfg.Port, "API server port")
	fs.StringVar(&env, "env", cfg.Env.String(), "Environment (development|test|production)")
	fs.StringVar(&apiKeys, "api-keys", "test", "Comma Separated API Keys (test, etc)")
	fs.StringVar(&exemptKeys, "exempt-keys", "", "Comma Separated API Keys that bypass rate limiting")
	fs.IntVar(&cfg.RateLimit, "rate-limit", cfg.RateLimit, "Requests per second per API key")
	fs.StringVar(&cfg.DataURL, "data-url", cfg.DataURL, "URL or local path of the trip CSV")
	fs.DurationVar(&cfg.RefreshInterval, "refresh-interval", 0, "Re-read a remote data URL this often (0 disables)")
	fs.StringVar(&cfg.DBPath, "db", "", "SQLite file to mirror trips into (empty disables)")
	fs.StringVar(&configPath, "config", "", "YAML configuration file")
	if err := fs.Parse(args); err != nil {
		return cfg, err
	}

	cfg.Env = appconf.EnvFlagToEnvironment(env)
	cfg.ApiKeys = appconf.SplitKeys(apiKeys)
	cfg.ExemptKeys = appconf.SplitKeys(exemptKeys)

	if configPath != "" {
		file, err := appconf.LoadFile(configPath)
		if err != nil {
			return cfg, err
		}
		explicit := make(map[string]bool)
		fs.Visit(func(f *flag.Flag) { explicit[f.Name] = true })
		if explicit["exempt-keys"] {
			file.ExemptKeys = nil
		}
		file.Apply(&cfg, explicit)
	}

	if len(cfg.ApiKeys) == 0 {
		return cfg, errors.New("at least one API key is required")
	}
	return cfg, nil
}

// buildApplication wires the dataset manager and the optional SQLite mirror.
func buildApplication(cfg appconf.Config, logger *slog.Logger) (*app.Application, error) {
	application := &app.Application{
		Config: cfg,
		Logger: logger,
	}

	datasetConfig := dataset.Config{
		Source:          cfg.DataURL,
		RefreshInterval: cfg.RefreshInterval,
	}

	if cfg.DBPath != "" {
		client, err := tripdb.NewClient(tripdb.NewConfig(cfg.DBPath, cfg.Env), logger)
		if err != nil {
			return nil, fmt.Errorf("error opening trip database: %w", err)
		}
		application.TripDB = client
		datasetConfig.Mirror = client
	}

	application.Dataset = dataset.NewManager(datasetConfig, logger)
	return application, nil
}

// run serves until SIGINT or SIGTERM, then drains in-flight requests.
func run(srv *http.Server, logger *slog.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errs := make(chan error, 1)
	go func() {
		logger.Info("starting server", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errs <- err
		}
		close(errs)
	}()

	select {
	case err := <-errs:
		return err
	case <-ctx.Done():
	}

	logger.Info("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
