// Package statistic wires the aggregator to real files: it validates the
// caller's paths, scans the input, renders the report and writes it
// atomically to the destination.
package statistic

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"fjacquet/supply-report/internal/aggregator"
	"fjacquet/supply-report/internal/fileutils"
	"fjacquet/supply-report/internal/logging"
	"fjacquet/supply-report/internal/models"
	"fjacquet/supply-report/internal/report"
	"fjacquet/supply-report/internal/statserror"
	"fjacquet/supply-report/internal/validation"
)

// Options controls how reports are rendered and stored.
type Options struct {
	Format   string      // text, json or yaml; empty means text
	FileMode os.FileMode // permissions of written reports; zero means 0644
}

// Result describes one completed run.
type Result struct {
	Input  string
	Output string
	Totals models.Totals
	Stats  aggregator.Stats
}

// Service produces supply/buy reports from transaction log files.
type Service struct {
	logger    logging.Logger
	generator *report.Generator
	format    string
	fileMode  os.FileMode
}

// NewService creates a Service. It fails if opts names an unsupported format.
func NewService(logger logging.Logger, opts Options) (*Service, error) {
	if logger == nil {
		logger = logging.NewLogrusAdapter("info", "text")
	}
	if opts.Format == "" {
		opts.Format = validation.FormatText
	}
	if err := validation.IsValidReportFormat(opts.Format); err != nil {
		return nil, err
	}
	if opts.FileMode == 0 {
		opts.FileMode = models.PermissionReportFile
	}

	return &Service{
		logger:    logger,
		generator: report.NewGenerator(logger),
		format:    opts.Format,
		fileMode:  opts.FileMode,
	}, nil
}

// GetStatistic reads the transaction log at from and writes its report to to.
//
// Errors are classified as follows:
//   - *statserror.ArgumentError when either path is empty or blank; nothing is opened
//   - *statserror.ReadError when the input cannot be opened or read
//   - *statserror.WriteError when the report cannot be written
//
// The destination is either fully replaced or left untouched.
func (s *Service) GetStatistic(ctx context.Context, from, to string) error {
	_, err := s.Run(ctx, from, to)
	return err
}

// Run is GetStatistic returning the computed totals as well.
func (s *Service) Run(ctx context.Context, from, to string) (Result, error) {
	if err := validation.RequireInputOutput(from, to); err != nil {
		return Result{}, err
	}

	start := time.Now()
	log := s.logger.WithFields(
		logging.F(logging.FieldInputFile, from),
		logging.F(logging.FieldOutputFile, to),
	)

	if err := ctx.Err(); err != nil {
		return Result{}, fmt.Errorf("statistic run for %s canceled: %w", from, err)
	}

	totals, stats, err := s.computeFile(log, from)
	if err != nil {
		log.WithError(err).Error("Failed to read transaction log")
		return Result{}, err
	}

	content, err := s.generator.Generate(totals, s.format)
	if err != nil {
		return Result{}, fmt.Errorf("error rendering report: %w", err)
	}

	if err := ctx.Err(); err != nil {
		return Result{}, fmt.Errorf("statistic run for %s canceled: %w", from, err)
	}

	if err := s.writeReport(to, content); err != nil {
		log.WithError(err).Error("Failed to write report")
		return Result{}, err
	}

	log.Info("Report written",
		logging.F(logging.FieldCount, stats.Lines),
		logging.F(logging.FieldFormat, s.format),
		logging.F(logging.FieldDuration, time.Since(start).Milliseconds()))

	return Result{Input: from, Output: to, Totals: totals, Stats: stats}, nil
}

// Compute scans the file at path without writing anything.
func (s *Service) Compute(path string) (models.Totals, aggregator.Stats, error) {
	if err := validation.RequireIdentifier("input file", path); err != nil {
		return models.Totals{}, aggregator.Stats{}, err
	}
	return s.computeFile(s.logger.WithField(logging.FieldInputFile, path), path)
}

func (s *Service) computeFile(log logging.Logger, path string) (models.Totals, aggregator.Stats, error) {
	file, err := fileutils.OpenFile(path)
	if err != nil {
		return models.Totals{}, aggregator.Stats{}, &statserror.ReadError{Path: path, Err: err}
	}
	defer func() {
		if cerr := file.Close(); cerr != nil {
			log.WithError(cerr).Warn("Failed to close input file")
		}
	}()

	totals, stats, err := aggregator.NewAggregator(log).Scan(file)
	if err != nil {
		return models.Totals{}, stats, &statserror.ReadError{Path: path, Err: err}
	}

	log.Debug("Transaction log scanned",
		logging.F(logging.FieldCount, stats.Lines),
		logging.F("skipped", stats.Skipped),
		logging.F("unrecognized", stats.Unrecognized),
		logging.F("zero_substituted", stats.ZeroSubstituted))

	return totals, stats, nil
}

func (s *Service) writeReport(path string, content []byte) error {
	if err := fileutils.EnsureDirectoryExists(filepath.Dir(path), models.PermissionDirectory); err != nil {
		return &statserror.WriteError{Path: path, Err: err}
	}
	if err := fileutils.WriteFileAtomic(path, content, s.fileMode); err != nil {
		return &statserror.WriteError{Path: path, Err: err}
	}
	return nil
}
