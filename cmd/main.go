package main

import (
	"context"
	"errors"
	"os"
	"time"

	"github.com/urfave/cli/v3"

	"buzznews/internal/api"
	"buzznews/internal/session"
	"buzznews/internal/shared"
)

func main() {
	logger := shared.NewLogger(nil)

	config := shared.DefaultConfig()
	if _, err := os.Stat("config.toml"); err == nil {
		if loadedConfig, err := shared.LoadConfig("config.toml"); err == nil {
			config = loadedConfig
		}
	}

	var store session.Store = session.NewMemoryStore()
	if config.Database.Path != "" {
		if db, err := shared.NewDatabase(config.Database.Path); err == nil {
			shared.ConfigureDatabase(db, config.Database.MaxOpenConns, config.Database.MaxIdleConns)
			if err := shared.RunMigrations(db); err == nil {
				store = session.NewSQLiteStore(db)
			} else {
				logger.Warn("migrations failed, session will not persist", "error", err)
			}
		} else {
			logger.Warn("database unavailable, session will not persist", "error", err)
		}
	}

	sess := session.New(store)
	if err := sess.Hydrate(); err != nil {
		logger.Warn("session hydration failed", "error", err)
	}

	client := api.NewClient(api.ClientOpts{
		BaseURL:        config.API.BaseURL,
		Tokens:         sess,
		RequestsPerSec: config.API.RequestsPerSec,
		Timeout:        time.Duration(config.API.TimeoutSeconds) * time.Second,
	})

	runner := NewRunner(RunnerOpts{
		Config:  config,
		Client:  client,
		Session: sess,
		Logger:  logger,
	})

	app := &cli.Command{
		Name:     "buzznews",
		Usage:    "Read, save and publish BuzzNews articles from the terminal",
		Version:  "0.1.0",
		Commands: runner.register(),
	}

	if err := app.Run(context.Background(), os.Args); err != nil {
		if errors.Is(err, shared.ErrAuthRequired) {
			logger.Error(err.Error())
			os.Exit(1)
		}
		logger.Fatalf("application error: %v", err)
	}
}
