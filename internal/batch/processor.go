// Package batch runs the statistic over every transaction log in a directory
// and records the outcome of each file in a CSV summary.
package batch

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"fjacquet/supply-report/internal/fileutils"
	"fjacquet/supply-report/internal/logging"
	"fjacquet/supply-report/internal/models"
	"fjacquet/supply-report/internal/statistic"
	"fjacquet/supply-report/internal/validation"

	"github.com/gocarina/gocsv"
)

// Row statuses in the summary file.
const (
	StatusOK     = "ok"
	StatusFailed = "failed"
)

// SummaryRow is one line of the batch summary CSV.
type SummaryRow struct {
	File   string `csv:"file"`
	Output string `csv:"output"`
	Status string `csv:"status"`
	Supply string `csv:"supply"`
	Buy    string `csv:"buy"`
	Result string `csv:"result"`
	Lines  int    `csv:"lines"`
	Error  string `csv:"error"`
}

// Options configures file selection and naming for a batch run.
type Options struct {
	InputExtension  string // e.g. ".csv"
	OutputExtension string // e.g. ".report"
	SummaryFile     string // written inside the output directory
}

// Result summarizes a batch run.
type Result struct {
	Rows        []SummaryRow
	Processed   int
	Failed      int
	SummaryPath string
}

// Processor runs a statistic.Service over a directory.
type Processor struct {
	service *statistic.Service
	logger  logging.Logger
	opts    Options
}

// NewProcessor creates a new Processor.
func NewProcessor(service *statistic.Service, logger logging.Logger, opts Options) *Processor {
	if logger == nil {
		logger = logging.NewLogrusAdapter("info", "text")
	}
	return &Processor{
		service: service,
		logger:  logger,
		opts:    opts,
	}
}

// OutputPathFor maps an input file to its report path inside outputDir.
func (p *Processor) OutputPathFor(inputFile, outputDir string) string {
	base := strings.TrimSuffix(filepath.Base(inputFile), filepath.Ext(inputFile))
	return filepath.Join(outputDir, base+p.opts.OutputExtension)
}

// ProcessDirectory writes one report per matching file of inputDir into
// outputDir, in file name order, followed by the summary CSV. A failing file
// is recorded and processing continues; only argument errors, an unreadable
// input directory or a failed summary write abort the run.
func (p *Processor) ProcessDirectory(ctx context.Context, inputDir, outputDir string) (Result, error) {
	if err := validation.RequireIdentifier("input directory", inputDir); err != nil {
		return Result{}, err
	}
	if err := validation.RequireIdentifier("output directory", outputDir); err != nil {
		return Result{}, err
	}

	start := time.Now()
	files, err := fileutils.ListFilesWithExtension(inputDir, p.opts.InputExtension)
	if err != nil {
		return Result{}, fmt.Errorf("error listing input files: %w", err)
	}

	if err := fileutils.EnsureDirectoryExists(outputDir, models.PermissionDirectory); err != nil {
		return Result{}, fmt.Errorf("error creating output directory: %w", err)
	}

	p.logger.Info("Starting batch run",
		logging.F("input_dir", inputDir),
		logging.F("output_dir", outputDir),
		logging.F(logging.FieldCount, len(files)))

	result := Result{Rows: make([]SummaryRow, 0, len(files))}
	for _, file := range files {
		if err := ctx.Err(); err != nil {
			return result, fmt.Errorf("batch run canceled before %s: %w", filepath.Base(file), err)
		}

		output := p.OutputPathFor(file, outputDir)
		row := SummaryRow{File: filepath.Base(file), Output: filepath.Base(output)}

		run, err := p.service.Run(ctx, file, output)
		if err != nil {
			result.Failed++
			row.Status = StatusFailed
			row.Error = err.Error()
			p.logger.WithError(err).Warn("File failed", logging.F(logging.FieldInputFile, file))
		} else {
			result.Processed++
			row.Status = StatusOK
			row.Supply = run.Totals.Supply.String()
			row.Buy = run.Totals.Buy.String()
			row.Result = run.Totals.Result().String()
			row.Lines = run.Stats.Lines
		}
		result.Rows = append(result.Rows, row)
	}

	result.SummaryPath = filepath.Join(outputDir, p.opts.SummaryFile)
	if err := writeSummary(result.SummaryPath, result.Rows); err != nil {
		return result, err
	}

	p.logger.Info("Batch run completed",
		logging.F(logging.FieldCount, result.Processed),
		logging.F(logging.FieldFailed, result.Failed),
		logging.F(logging.FieldDuration, time.Since(start).Milliseconds()))

	return result, nil
}

func writeSummary(path string, rows []SummaryRow) error {
	var buf bytes.Buffer
	csvWriter := csv.NewWriter(&buf)
	csvWriter.Comma = []rune(models.Delimiter)[0]

	if err := gocsv.MarshalCSV(&rows, gocsv.NewSafeCSVWriter(csvWriter)); err != nil {
		return fmt.Errorf("error writing summary CSV: %w", err)
	}
	if err := fileutils.WriteFileAtomic(path, buf.Bytes(), models.PermissionReportFile); err != nil {
		return fmt.Errorf("error writing summary file %s: %w", path, err)
	}
	return nil
}

// ReadSummary loads a summary CSV written by ProcessDirectory.
func ReadSummary(path string) ([]SummaryRow, error) {
	file, err := fileutils.OpenFile(path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = file.Close() }()

	var rows []SummaryRow
	if err := gocsv.UnmarshalFile(file, &rows); err != nil {
		return nil, fmt.Errorf("error parsing summary CSV: %w", err)
	}
	return rows, nil
}
