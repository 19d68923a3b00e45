// Package aggregator folds a supply/buy transaction log into per-category
// totals and renders the three-line summary report.
//
// Input lines are "label,amount". Malformed input never aborts a scan:
// blank and short lines are skipped, unknown labels contribute nothing and
// unparsable amounts count as zero for their category.
package aggregator

import (
	"bufio"
	"io"
	"iter"
	"slices"
	"strconv"
	"strings"

	"fjacquet/supply-report/internal/logging"
	"fjacquet/supply-report/internal/models"
	"fjacquet/supply-report/internal/statserror"
)

// Stats counts what happened to the lines of one scan.
type Stats struct {
	Lines           int // lines read, including skipped ones
	Skipped         int // blank lines and lines with fewer than two fields
	Unrecognized    int // lines whose label is neither supply nor buy
	ZeroSubstituted int // recognized lines whose amount did not parse
}

// Aggregator computes Totals from a sequence of lines. It holds no state
// between calls; each call owns its accumulator.
type Aggregator struct {
	logger logging.Logger
}

// NewAggregator creates an Aggregator. A nil logger falls back to an
// info-level logrus adapter, which keeps per-line diagnostics quiet.
func NewAggregator(logger logging.Logger) *Aggregator {
	if logger == nil {
		logger = logging.NewLogrusAdapter("info", "text")
	}
	return &Aggregator{logger: logger}
}

type lineOutcome int

const (
	outcomeCounted lineOutcome = iota
	outcomeBlank
	outcomeShort
	outcomeUnrecognized
	outcomeZeroSubstituted
)

// parseLine classifies one line. The returned ParseError only describes a
// tolerated anomaly and is never propagated.
func parseLine(lineNo int, line string) (models.Record, lineOutcome, *statserror.ParseError) {
	if strings.TrimSpace(line) == "" {
		return models.Record{}, outcomeBlank, nil
	}

	fields := strings.SplitN(line, models.Delimiter, 3)
	if len(fields) < 2 {
		return models.Record{}, outcomeShort, &statserror.ParseError{Line: lineNo, Field: "line", Value: line}
	}

	label := strings.TrimSpace(fields[0])
	category := models.ParseCategory(label)
	if !category.Known() {
		return models.Record{}, outcomeUnrecognized, &statserror.ParseError{Line: lineNo, Field: "operation", Value: label}
	}

	rawAmount := strings.TrimSpace(fields[1])
	amount, err := strconv.ParseInt(rawAmount, 10, 64)
	if err != nil {
		return models.Record{Category: category}, outcomeZeroSubstituted,
			&statserror.ParseError{Line: lineNo, Field: "amount", Value: rawAmount, Err: err}
	}

	return models.Record{Category: category, Amount: amount}, outcomeCounted, nil
}

// Fold consumes lines strictly in order and returns the totals along with
// per-outcome counts.
func (a *Aggregator) Fold(lines iter.Seq[string]) (models.Totals, Stats) {
	var (
		totals models.Totals
		stats  Stats
	)

	for line := range lines {
		stats.Lines++
		record, outcome, anomaly := parseLine(stats.Lines, line)

		switch outcome {
		case outcomeBlank:
			stats.Skipped++
			continue
		case outcomeShort:
			stats.Skipped++
			a.logger.Debug("Skipping line with fewer than two fields",
				logging.F(logging.FieldLine, stats.Lines),
				logging.F(logging.FieldReason, anomaly.Error()))
			continue
		case outcomeUnrecognized:
			stats.Unrecognized++
			a.logger.Debug("Ignoring unrecognized operation",
				logging.F(logging.FieldLine, stats.Lines),
				logging.F(logging.FieldReason, anomaly.Error()))
			continue
		case outcomeZeroSubstituted:
			stats.ZeroSubstituted++
			a.logger.Debug("Amount is not an integer, counting it as zero",
				logging.F(logging.FieldLine, stats.Lines),
				logging.F(logging.FieldCategory, record.Category.String()),
				logging.F(logging.FieldAmount, anomaly.Value),
				logging.F(logging.FieldReason, anomaly.Error()))
		}

		totals = totals.Add(record)
	}

	return totals, stats
}

// ComputeTotals folds an in-memory slice of lines.
func (a *Aggregator) ComputeTotals(lines []string) models.Totals {
	totals, _ := a.Fold(slices.Values(lines))
	return totals
}

// Scan folds every line read from r. Lines may end in "\n" or "\r\n"; a
// final line without terminator is still counted. The only error is a read
// failure of r, in which case the totals are discarded.
func (a *Aggregator) Scan(r io.Reader) (models.Totals, Stats, error) {
	var readErr error
	br := bufio.NewReader(r)

	lines := func(yield func(string) bool) {
		for {
			line, err := br.ReadString('\n')
			if len(line) > 0 {
				if !yield(trimLineEnding(line)) {
					return
				}
			}
			if err != nil {
				if err != io.EOF {
					readErr = err
				}
				return
			}
		}
	}

	totals, stats := a.Fold(lines)
	if readErr != nil {
		return models.Totals{}, stats, readErr
	}
	return totals, stats, nil
}

// ComputeTotalsFromReader is Scan without the per-outcome counts.
func (a *Aggregator) ComputeTotalsFromReader(r io.Reader) (models.Totals, error) {
	totals, _, err := a.Scan(r)
	return totals, err
}

func trimLineEnding(line string) string {
	line = strings.TrimSuffix(line, "\n")
	return strings.TrimSuffix(line, "\r")
}

// ComputeTotals folds lines without logging.
func ComputeTotals(lines []string) models.Totals {
	return NewAggregator(nil).ComputeTotals(lines)
}
