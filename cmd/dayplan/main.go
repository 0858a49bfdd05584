package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/alexanderramin/dayplan/internal/cache"
	"github.com/alexanderramin/dayplan/internal/cli"
	"github.com/alexanderramin/dayplan/internal/db"
	"github.com/alexanderramin/dayplan/internal/llm"
	"github.com/alexanderramin/dayplan/internal/planner"
	"github.com/alexanderramin/dayplan/internal/prompt"
	"github.com/alexanderramin/dayplan/internal/repository"
)

// cacheRetention bounds how long persisted analyses are kept when
// DAYPLAN_CACHE=sqlite.
const cacheRetention = 30 * 24 * time.Hour

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := cli.LoadConfig()
	if err != nil {
		return err
	}
	logger, err := cli.NewLogger(os.Stderr, cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		return err
	}
	slog.SetDefault(logger)

	// Open database
	database, err := db.OpenDB(cfg.DBPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	// Wire result cache
	var store cache.Store = cache.NewMemoryStore()
	if cfg.CacheMode == cli.CacheSQLite {
		sqliteStore := cache.NewSQLiteStore(database, logger)
		if n, err := sqliteStore.Prune(context.Background(), time.Now().Add(-cacheRetention)); err != nil {
			logger.Warn("cache_prune_failed", "error", err)
		} else if n > 0 {
			logger.Debug("cache_pruned", "rows", n)
		}
		store = sqliteStore
	}

	// Wire LLM transport and observers
	llmCfg := llm.LoadConfig()
	registry := prometheus.NewRegistry()
	observers := llm.MultiObserver{llm.NewPromObserver(registry)}
	if llmCfg.LogCalls {
		observers = append(observers, llm.NewLogObserver(logger))
	}
	if cfg.MetricsFile != "" {
		defer func() {
			if err := prometheus.WriteToTextfile(cfg.MetricsFile, registry); err != nil {
				logger.Warn("metrics_write_failed", "path", cfg.MetricsFile, "error", err)
			}
		}()
	}
	client := llm.NewClient(llmCfg, observers)

	assembler := prompt.NewAssembler(prompt.DefaultAssets())
	app := &cli.App{
		Planner: planner.New(assembler, client,
			planner.WithStore(store),
			planner.WithObserver(planner.NewLogUseCaseObserver(logger)),
			planner.WithTokenBudgets(llmCfg),
		),
		Assembler: assembler,
		Catalog:   prompt.DefaultCatalog(),
		Days:      repository.NewSQLiteDayRecordRepo(database),
		Profiles:  repository.NewSQLiteUserProfileRepo(database),
	}

	// Stdin is read as schedule text only when it is piped.
	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	app.ShowSpinner = func() bool {
		return isatty.IsTerminal(os.Stderr.Fd())
	}

	// Execute root command
	rootCmd := cli.NewRootCmd(app)
	return rootCmd.Execute()
}
