package aggregator

import (
	"runtime"
	"strings"

	"fjacquet/supply-report/internal/models"
)

// LineSeparator is placed between report lines.
var LineSeparator = platformLineSeparator(runtime.GOOS)

func platformLineSeparator(goos string) string {
	if goos == "windows" {
		return "\r\n"
	}
	return "\n"
}

// FormatReport renders the totals as
//
//	supply,<supply>
//	buy,<buy>
//	result,<supply - buy>
//
// joined by LineSeparator with no trailing separator.
func FormatReport(t models.Totals) string {
	var sb strings.Builder
	sb.WriteString(models.Supply.String())
	sb.WriteString(models.Delimiter)
	sb.WriteString(t.Supply.String())
	sb.WriteString(LineSeparator)
	sb.WriteString(models.Buy.String())
	sb.WriteString(models.Delimiter)
	sb.WriteString(t.Buy.String())
	sb.WriteString(LineSeparator)
	sb.WriteString(models.LabelResult)
	sb.WriteString(models.Delimiter)
	sb.WriteString(t.Result().String())
	return sb.String()
}
