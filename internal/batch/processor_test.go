package batch

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"fjacquet/supply-report/internal/aggregator"
	"fjacquet/supply-report/internal/logging"
	"fjacquet/supply-report/internal/statistic"
	"fjacquet/supply-report/internal/statserror"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestProcessor(t *testing.T) (*Processor, *logging.MockLogger) {
	t.Helper()
	logger := logging.NewMockLogger()
	svc, err := statistic.NewService(logger, statistic.Options{})
	require.NoError(t, err)
	return NewProcessor(svc, logger, Options{
		InputExtension:  ".csv",
		OutputExtension: ".report",
		SummaryFile:     "summary.csv",
	}), logger
}

func writeFiles(t *testing.T, dir string, files map[string]string) {
	t.Helper()
	for name, content := range files {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0600))
	}
}

func TestProcessor_OutputPathFor(t *testing.T) {
	p, _ := newTestProcessor(t)

	assert.Equal(t, filepath.Join("out", "january.report"), p.OutputPathFor(filepath.Join("in", "january.csv"), "out"))
	assert.Equal(t, filepath.Join("out", "a.b.report"), p.OutputPathFor("a.b.csv", "out"))
}

func TestProcessDirectory(t *testing.T) {
	inputDir := t.TempDir()
	outputDir := filepath.Join(t.TempDir(), "reports")
	writeFiles(t, inputDir, map[string]string{
		"a.csv":     "supply,100\nbuy,40\n",
		"b.csv":     "supply,10\nbuy,30\nnoise\n",
		"notes.txt": "supply,999\n",
	})
	p, logger := newTestProcessor(t)

	result, err := p.ProcessDirectory(context.Background(), inputDir, outputDir)
	require.NoError(t, err)

	assert.Equal(t, 2, result.Processed)
	assert.Equal(t, 0, result.Failed)
	assert.True(t, logger.HasEntry("INFO", "Batch run completed"))

	a, err := os.ReadFile(filepath.Join(outputDir, "a.report"))
	require.NoError(t, err)
	assert.Equal(t, strings.Join([]string{"supply,100", "buy,40", "result,60"}, aggregator.LineSeparator), string(a))
	assert.NoFileExists(t, filepath.Join(outputDir, "notes.report"))

	rows, err := ReadSummary(result.SummaryPath)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, SummaryRow{File: "a.csv", Output: "a.report", Status: StatusOK, Supply: "100", Buy: "40", Result: "60", Lines: 2}, rows[0])
	assert.Equal(t, SummaryRow{File: "b.csv", Output: "b.report", Status: StatusOK, Supply: "10", Buy: "30", Result: "-20", Lines: 3}, rows[1])
}

func TestProcessDirectory_FailedFileIsRecorded(t *testing.T) {
	inputDir := t.TempDir()
	outputDir := t.TempDir()
	writeFiles(t, inputDir, map[string]string{
		"good.csv": "supply,5\n",
		"bad.csv":  "supply,1\n",
	})
	// A directory squatting on bad.csv's report path makes its write fail.
	require.NoError(t, os.Mkdir(filepath.Join(outputDir, "bad.report"), 0750))
	require.NoError(t, os.WriteFile(filepath.Join(outputDir, "bad.report", "keep"), []byte("x"), 0600))
	p, logger := newTestProcessor(t)

	result, err := p.ProcessDirectory(context.Background(), inputDir, outputDir)
	require.NoError(t, err)

	assert.Equal(t, 1, result.Processed)
	assert.Equal(t, 1, result.Failed)
	assert.Len(t, logger.GetEntriesByLevel("WARN"), 1)

	rows, err := ReadSummary(result.SummaryPath)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "bad.csv", rows[0].File)
	assert.Equal(t, StatusFailed, rows[0].Status)
	assert.Contains(t, rows[0].Error, "can't write file")
	assert.Equal(t, StatusOK, rows[1].Status)
}

func TestProcessDirectory_InvalidArguments(t *testing.T) {
	p, _ := newTestProcessor(t)

	_, err := p.ProcessDirectory(context.Background(), "", t.TempDir())
	assert.ErrorIs(t, err, statserror.ErrInvalidArgument)

	_, err = p.ProcessDirectory(context.Background(), t.TempDir(), "  ")
	assert.ErrorIs(t, err, statserror.ErrInvalidArgument)
}

func TestProcessDirectory_MissingInputDirectory(t *testing.T) {
	p, _ := newTestProcessor(t)
	outputDir := filepath.Join(t.TempDir(), "out")

	_, err := p.ProcessDirectory(context.Background(), filepath.Join(t.TempDir(), "missing"), outputDir)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "directory does not exist")
	assert.NoDirExists(t, outputDir)
}

func TestProcessDirectory_CanceledContext(t *testing.T) {
	inputDir := t.TempDir()
	writeFiles(t, inputDir, map[string]string{"a.csv": "supply,1\n"})
	p, _ := newTestProcessor(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	result, err := p.ProcessDirectory(ctx, inputDir, t.TempDir())

	assert.ErrorIs(t, err, context.Canceled)
	assert.Contains(t, err.Error(), "batch run canceled before a.csv")
	assert.Empty(t, result.Rows)
}
