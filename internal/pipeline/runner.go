// Package pipeline wires the extract, transform, and load stages into a
// single batch run.
package pipeline

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"userpipe/internal/config"
	"userpipe/internal/extractor"
	"userpipe/internal/history"
	"userpipe/internal/loader"
	"userpipe/internal/logger"
	"userpipe/internal/models"
	"userpipe/internal/transform"
)

// ErrNoUsersExtracted indicates the source returned an empty record set.
var ErrNoUsersExtracted = errors.New("no data extracted from API")

// Summary describes a completed run.
type Summary struct {
	RunID      string
	Fetched    int
	Loaded     int
	OutputPath string
	Duration   time.Duration
	Users      []models.CleanUser
}

// Runner executes the pipeline stages in order. The history store may be
// nil, in which case runs are not recorded.
type Runner struct {
	cfg       *config.Config
	log       *logger.Logger
	client    *extractor.Client
	processor *transform.Processor
	writer    *loader.Writer
	history   *history.Store
}

// New creates a runner with default collaborators built from the config.
func New(cfg *config.Config, log *logger.Logger, store *history.Store) *Runner {
	return &Runner{
		cfg:       cfg,
		log:       log,
		client:    extractor.NewClient(cfg.ETL.Source.GetTimeout(), log),
		processor: transform.NewProcessor(log),
		writer:    loader.NewWriter(log),
		history:   store,
	}
}

// Run executes extract, transform, load, and post-write validation in
// sequence. Every stage runs to completion on the full in-memory record
// set before the next begins.
func (r *Runner) Run(ctx context.Context) (*Summary, error) {
	started := time.Now()

	run := history.Run{
		ID:         uuid.New().String(),
		SourceURL:  r.cfg.ETL.Source.URL,
		OutputPath: r.cfg.ETL.Output.Path,
		StartedAt:  started,
	}

	log := r.log.With("run_id", run.ID)

	log.Info("step 1: extracting user data from API")

	users, err := r.client.FetchUsers(ctx, r.cfg.ETL.Source.URL)
	if err != nil {
		r.finish(&run, "failed", err)

		return nil, err
	}

	run.Fetched = len(users)

	if len(users) == 0 {
		r.finish(&run, "failed", ErrNoUsersExtracted)

		return nil, ErrNoUsersExtracted
	}

	log.Info("step 2: transforming users data")

	transformed := r.processor.Transform(users)
	if len(transformed) == 0 {
		log.Warn("no users remaining after transformation")
	}

	log.Info("step 3: loading data to CSV")

	if err := r.writer.Write(transformed, r.cfg.ETL.Output.Path); err != nil {
		wrapped := fmt.Errorf("failed to save data to CSV: %w", err)
		r.finish(&run, "failed", wrapped)

		return nil, wrapped
	}

	log.Info("step 4: validating output file")

	rows, err := r.writer.Validate(r.cfg.ETL.Output.Path)
	if err != nil {
		wrapped := fmt.Errorf("output file validation failed: %w", err)
		r.finish(&run, "failed", wrapped)

		return nil, wrapped
	}

	run.Loaded = rows
	r.finish(&run, "completed", nil)

	return &Summary{
		RunID:      run.ID,
		Fetched:    run.Fetched,
		Loaded:     rows,
		OutputPath: r.cfg.ETL.Output.Path,
		Duration:   time.Since(started),
		Users:      transformed,
	}, nil
}

// finish records the run outcome. History failures degrade to warnings and
// never change the run's result.
func (r *Runner) finish(run *history.Run, status string, runErr error) {
	run.Status = status
	run.FinishedAt = time.Now()

	if runErr != nil {
		run.Error = runErr.Error()
	}

	if r.history == nil {
		return
	}

	if err := r.history.Record(*run); err != nil {
		r.log.Warn("failed to record run history", "error", err)
	}
}
