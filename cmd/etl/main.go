// Package main provides the etl command that fetches, cleans, and exports
// user records in a single batch run.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"

	"userpipe/internal/config"
	"userpipe/internal/history"
	"userpipe/internal/logger"
	"userpipe/internal/pipeline"
	"userpipe/internal/report"
)

func main() {
	configPath := flag.String("config", "", "Path to YAML config file (built-in defaults apply when omitted)")
	flag.Parse()

	cfg := config.DefaultConfig()

	if *configPath != "" {
		loaded, err := config.LoadConfig(*configPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
			os.Exit(1)
		}

		cfg = loaded
	}

	log, err := logger.NewWithFile(cfg.ETL.Logging.Level, cfg.ETL.Logging.File)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to open log file: %v\n", err)
		os.Exit(1)
	}
	defer log.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	log.Info("starting ETL process", "source", cfg.ETL.Source.URL, "output", cfg.ETL.Output.Path)

	var store *history.Store

	if cfg.ETL.History.Enabled {
		store, err = history.Open(cfg.ETL.History.Path)
		if err != nil {
			log.Warn("run history unavailable", "path", cfg.ETL.History.Path, "error", err)
			store = nil
		} else {
			defer store.Close()
		}
	}

	runner := pipeline.New(cfg, log, store)

	summary, err := runner.Run(ctx)
	if err != nil {
		if errors.Is(ctx.Err(), context.Canceled) {
			log.Info("ETL process interrupted by user")

			return
		}

		log.Error("ETL process failed", "error", err)
		os.Exit(1)
	}

	log.Info("ETL process completed successfully",
		"users", summary.Loaded,
		"output", summary.OutputPath,
		"duration", summary.Duration,
	)

	if cfg.Features.EnablePreview {
		fmt.Println()
		fmt.Print(report.Preview(summary.Users, cfg.Features.PreviewRows))
	}

	fmt.Println("\n------------------------------------------------")
	fmt.Println("Summary Report")
	fmt.Println("------------------------------------------------")
	fmt.Printf("Run ID:      %s\n", summary.RunID)
	fmt.Printf("Fetched:     %d\n", summary.Fetched)
	fmt.Printf("Loaded Rows: %d\n", summary.Loaded)
	fmt.Printf("Output:      %s\n", summary.OutputPath)
	fmt.Printf("Duration:    %v\n", summary.Duration)
	fmt.Println("------------------------------------------------")
}
