// Package main provides the runs command that lists recent pipeline runs
// from the history store.
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"userpipe/internal/history"
	"userpipe/internal/report"
)

func main() {
	dbPath := flag.String("db", "etl_runs.db", "Path to the run-history database")
	limit := flag.Int("limit", 10, "Maximum number of runs to list")
	flag.Parse()

	store, err := history.Open(*dbPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to open history: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	runs, err := store.Recent(*limit)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to list runs: %v\n", err)
		os.Exit(1)
	}

	if len(runs) == 0 {
		fmt.Println("no runs recorded")

		return
	}

	header := []string{"started", "status", "fetched", "loaded", "output", "error"}

	rows := make([][]string, 0, len(runs))
	for _, run := range runs {
		rows = append(rows, []string{
			run.StartedAt.Local().Format(time.DateTime),
			run.Status,
			fmt.Sprintf("%d", run.Fetched),
			fmt.Sprintf("%d", run.Loaded),
			run.OutputPath,
			run.Error,
		})
	}

	fmt.Print(report.Table(header, rows))
}
