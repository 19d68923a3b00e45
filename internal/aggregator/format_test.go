package aggregator

import (
	"math"
	"testing"

	"fjacquet/supply-report/internal/models"

	"github.com/stretchr/testify/assert"
)

func TestFormatReport(t *testing.T) {
	tests := []struct {
		name     string
		totals   models.Totals
		expected []string
	}{
		{name: "positive balance", totals: models.NewTotals(100, 40), expected: []string{"supply,100", "buy,40", "result,60"}},
		{name: "zero", totals: models.Totals{}, expected: []string{"supply,0", "buy,0", "result,0"}},
		{name: "negative balance", totals: models.NewTotals(10, 30), expected: []string{"supply,10", "buy,30", "result,-10"}},
		{name: "negative totals", totals: models.NewTotals(-5, -7), expected: []string{"supply,-5", "buy,-7", "result,2"}},
		{
			name:     "balance wider than int64",
			totals:   models.NewTotals(math.MaxInt64, math.MinInt64),
			expected: []string{"supply,9223372036854775807", "buy,-9223372036854775808", "result,18446744073709551615"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, report(tt.expected...), FormatReport(tt.totals))
		})
	}
}

func TestFormatReport_Deterministic(t *testing.T) {
	totals := models.NewTotals(123, 456)

	assert.Equal(t, FormatReport(totals), FormatReport(totals))
	assert.Equal(t, FormatReport(totals), FormatReport(models.NewTotals(123, 456)))
}

func TestFormatReport_NoTrailingSeparator(t *testing.T) {
	out := FormatReport(models.NewTotals(1, 1))

	assert.NotContains(t, out[len(out)-1:], "\n")
	assert.Len(t, splitLines(out), 3)
}

func splitLines(s string) []string {
	var lines []string
	start := 0
	for i := 0; i+len(LineSeparator) <= len(s); i++ {
		if s[i:i+len(LineSeparator)] == LineSeparator {
			lines = append(lines, s[start:i])
			start = i + len(LineSeparator)
		}
	}
	return append(lines, s[start:])
}

func TestPlatformLineSeparator(t *testing.T) {
	assert.Equal(t, "\r\n", platformLineSeparator("windows"))
	assert.Equal(t, "\n", platformLineSeparator("linux"))
	assert.Equal(t, "\n", platformLineSeparator("darwin"))
}
