package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"

	"github.com/joho/godotenv"

	"github.com/harjula/fitadvisor/internal/analysis"
	"github.com/harjula/fitadvisor/internal/confidence"
	"github.com/harjula/fitadvisor/internal/envstruct"
	"github.com/harjula/fitadvisor/internal/errors"
	"github.com/harjula/fitadvisor/internal/logging"
	"github.com/harjula/fitadvisor/internal/plangen"
)

type application struct {
	logger            *slog.Logger
	analysisService   *analysis.Service
	confidenceService *confidence.Service
	planService       *plangen.Service
}

type config struct {
	// Addr is the address to listen on. It's possible to choose the address dynamically with localhost:0.
	Addr string `env:"FITADVISOR_ADDR" envDefault:"localhost:8081"`
	// OpenAIAPIKey enables plan generation through the OpenAI API. The
	// built-in fallback generator is used when this is empty.
	OpenAIAPIKey string `env:"FITADVISOR_OPENAI_API_KEY" envDefault:""`
	// Debug lowers the log level to debug.
	Debug bool `env:"FITADVISOR_DEBUG" envDefault:"false"`
	// RequestTimeoutSeconds bounds how long a single request may take.
	RequestTimeoutSeconds int `env:"FITADVISOR_REQUEST_TIMEOUT_SECONDS" envDefault:"10"`
}

func run(ctx context.Context, logger *slog.Logger, lookupEnv func(string) (string, bool)) error {
	var (
		cancel context.CancelFunc
		err    error
	)

	ctx, cancel = signal.NotifyContext(ctx, os.Interrupt)
	defer cancel()

	var cfg config
	if err = envstruct.Populate(&cfg, lookupEnv); err != nil {
		return errors.Wrap(err, "populate config")
	}

	confidenceService, err := confidence.NewService(logger)
	if err != nil {
		return errors.Wrap(err, "new confidence service")
	}

	app := application{
		logger:            logger,
		analysisService:   analysis.NewService(logger),
		confidenceService: confidenceService,
		planService:       plangen.NewService(cfg.OpenAIAPIKey, logger),
	}

	if err = app.configureAndStartServer(ctx, cfg.Addr, cfg.RequestTimeoutSeconds); err != nil {
		return errors.Wrap(err, "start server")
	}
	return nil
}

func main() {
	ctx := context.Background()

	// Missing .env is fine, configuration falls back to the environment.
	_ = godotenv.Load()

	level := slog.LevelInfo
	if debug, ok := os.LookupEnv("FITADVISOR_DEBUG"); ok && debug == "true" {
		level = slog.LevelDebug
	}
	logger := logging.NewLogger(os.Stdout, level)
	if err := run(ctx, logger, os.LookupEnv); err != nil {
		logger.LogAttrs(ctx, slog.LevelError, "failure starting application", errors.SlogError(err))
		os.Exit(1)
	}
}
