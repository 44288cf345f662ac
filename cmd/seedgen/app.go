package main

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/nkiryanov/pointseed/internal/logger"
	"github.com/nkiryanov/pointseed/internal/pools"
	"github.com/nkiryanov/pointseed/internal/report"
	"github.com/nkiryanov/pointseed/internal/repository"
	"github.com/nkiryanov/pointseed/internal/repository/sqlfile"
	"github.com/nkiryanov/pointseed/internal/service/seed"
)

type App struct {
	config  *Config
	logger  logger.Logger
	console *report.Console
	storage repository.DatasetWriter
}

func NewApp(c *Config, stdout io.Writer) (*App, error) {
	// Initialize logger
	logger, err := logger.New(c.Environment, c.LogLevel)
	if err != nil {
		return nil, fmt.Errorf("error while initializing logger: %w", err)
	}

	return &App{
		config:  c,
		logger:  logger,
		console: report.NewConsole(stdout),
		storage: sqlfile.NewStorage(c.OutputDir),
	}, nil
}

// Run generates one dataset, checks it and writes it as a SQL file
func (a *App) Run(ctx context.Context) error {
	profile, err := seed.ProfileByName(a.config.Profile)
	if err != nil {
		return err
	}

	p, err := pools.Load(profile.Name)
	if err != nil {
		return fmt.Errorf("error while loading pools. Err: %w", err)
	}

	seedValue := a.config.Seed
	if seedValue == 0 {
		seedValue = time.Now().UnixNano()
	}
	a.logger.Info("Generating dataset", "profile", profile.Name, "seed", seedValue)

	svc := seed.NewService(seed.Config{
		Profile:  profile,
		Seed:     seedValue,
		Progress: a.console,
	}, p, a.logger)

	ds, err := svc.Generate()
	if err != nil {
		return fmt.Errorf("error while generating dataset. Err: %w", err)
	}

	if err := seed.Check(ds); err != nil {
		return err
	}

	// Nothing is written once the run is cancelled
	if err := ctx.Err(); err != nil {
		return err
	}

	path, err := a.storage.Save(ds)
	if err != nil {
		return err
	}
	a.logger.Info("Dataset written", "path", path, "run_id", ds.RunID.String())

	a.console.Saved(path)
	return a.console.Stats(report.Collect(ds))
}
