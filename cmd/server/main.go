package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/arsbank/backoffice/app"
	"github.com/arsbank/backoffice/infra"
	"github.com/arsbank/backoffice/infra/logging"
	"github.com/arsbank/backoffice/pkg/config"
	log "github.com/charmbracelet/log"
)

// @title Back-Office API
// @version 1.0.0
// @description Banking back-office: accounts, cards, and loan requests.
// @host localhost:3000
// @BasePath /
//
// @securityDefinitions.apikey Bearer
// @in header
// @name Authorization
func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	bootstrapLogger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	cfg, err := config.Load(bootstrapLogger)
	if err != nil {
		return fmt.Errorf("failed to load application configuration: %w", err)
	}

	logger := logging.New(cfg.Env)
	slog.SetDefault(logger)

	db, err := infra.NewDBConnection(cfg.DB, cfg.Env)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	logger.Info("starting server", "env", cfg.Env, "addr", cfg.HTTP.Addr)
	return app.New(db, cfg, logger).Listen(cfg.HTTP.Addr)
}
