// Package loader writes cleaned user records to a CSV file and validates
// the written file's structure.
package loader

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"userpipe/internal/logger"
	"userpipe/internal/models"
)

// Load and validation errors.
var (
	ErrNoRecords      = errors.New("no records to write")
	ErrFileMissing    = errors.New("csv file does not exist")
	ErrHeaderMismatch = errors.New("csv header does not match expected fields")
)

// Writer serializes cleaned user records to disk.
type Writer struct {
	log *logger.Logger
}

// NewWriter creates a new CSV writer instance.
func NewWriter(log *logger.Logger) *Writer {
	return &Writer{
		log: log,
	}
}

// Write saves the records to a CSV file at the given path, creating parent
// directories as needed. An empty record set is an error and writes
// nothing, so a missing file never masquerades as a valid empty export.
func (w *Writer) Write(users []models.CleanUser, outputPath string) error {
	if len(users) == 0 {
		w.log.Warn("no users data provided for loading")

		return ErrNoRecords
	}

	if err := w.ensureOutputDirectory(outputPath); err != nil {
		return err
	}

	w.log.Info("saving users", "count", len(users), "path", outputPath)

	file, err := os.Create(outputPath)
	if err != nil {
		w.log.Error("failed to create output file", "path", outputPath, "error", err)

		return fmt.Errorf("failed to create output file: %w", err)
	}

	writer := csv.NewWriter(file)

	if err := writer.Write(models.Header); err != nil {
		file.Close()

		return fmt.Errorf("failed to write header: %w", err)
	}

	for _, user := range users {
		if err := writer.Write(user.Row()); err != nil {
			file.Close()

			return fmt.Errorf("failed to write record: %w", err)
		}
	}

	writer.Flush()

	if err := writer.Error(); err != nil {
		file.Close()

		w.log.Error("failed to write csv", "path", outputPath, "error", err)

		return fmt.Errorf("failed to write csv: %w", err)
	}

	if err := file.Close(); err != nil {
		return fmt.Errorf("failed to close output file: %w", err)
	}

	w.log.Info("successfully saved data", "path", outputPath)

	return nil
}

// Validate reopens the written file, confirms the header carries exactly
// the expected fields (order-independent), and returns the data row count.
func (w *Writer) Validate(outputPath string) (int, error) {
	file, err := os.Open(outputPath)
	if err != nil {
		if os.IsNotExist(err) {
			return 0, fmt.Errorf("%w: %s", ErrFileMissing, outputPath)
		}

		return 0, fmt.Errorf("failed to open csv file: %w", err)
	}

	defer func() {
		if closeErr := file.Close(); closeErr != nil {
			w.log.Warn("failed to close csv file", "error", closeErr)
		}
	}()

	reader := csv.NewReader(file)

	header, err := reader.Read()
	if err != nil {
		return 0, fmt.Errorf("failed to read csv header: %w", err)
	}

	if !sameFieldSet(header, models.Header) {
		return 0, fmt.Errorf("%w: expected %v, got %v", ErrHeaderMismatch, models.Header, header)
	}

	rows := 0

	for {
		if _, err := reader.Read(); err != nil {
			if errors.Is(err, io.EOF) {
				break
			}

			return 0, fmt.Errorf("failed to read csv row: %w", err)
		}

		rows++
	}

	w.log.Info("csv validation successful", "rows", rows)

	return rows, nil
}

// ensureOutputDirectory creates missing parent directories for the output path.
func (w *Writer) ensureOutputDirectory(outputPath string) error {
	dir := filepath.Dir(outputPath)
	if dir == "" || dir == "." {
		return nil
	}

	if _, err := os.Stat(dir); os.IsNotExist(err) {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}

		w.log.Info("created output directory", "dir", dir)
	}

	return nil
}

// sameFieldSet compares two header rows as unordered sets.
func sameFieldSet(got, want []string) bool {
	gotSet := make(map[string]bool, len(got))
	for _, f := range got {
		gotSet[f] = true
	}

	wantSet := make(map[string]bool, len(want))
	for _, f := range want {
		wantSet[f] = true
	}

	if len(gotSet) != len(wantSet) {
		return false
	}

	for f := range wantSet {
		if !gotSet[f] {
			return false
		}
	}

	return true
}
