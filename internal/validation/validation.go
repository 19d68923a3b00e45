// Package validation holds the caller-facing argument checks shared by the
// statistic service and the CLI.
package validation

import (
	"fmt"
	"os"
	"strings"

	"fjacquet/supply-report/internal/statserror"
)

// Report formats understood by the report generator.
const (
	FormatText = "text"
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// SupportedReportFormats lists the accepted report formats in display order.
var SupportedReportFormats = []string{FormatText, FormatJSON, FormatYAML}

// RequireIdentifier rejects an empty or whitespace-only path argument. field
// names the argument in the resulting *statserror.ArgumentError.
func RequireIdentifier(field, value string) error {
	if strings.TrimSpace(value) == "" {
		return &statserror.ArgumentError{Field: field, Value: value, Reason: "must not be empty or blank"}
	}
	return nil
}

// RequireInputOutput checks both path arguments of a statistic run. The input
// is checked first so the error names the first offending argument.
func RequireInputOutput(input, output string) error {
	if err := RequireIdentifier("input file", input); err != nil {
		return err
	}
	return RequireIdentifier("output file", output)
}

// IsValidReportFormat checks if the given format is supported.
func IsValidReportFormat(format string) error {
	switch format {
	case FormatText, FormatJSON, FormatYAML:
		return nil
	default:
		return fmt.Errorf("unsupported report format: %s. Supported formats are %s",
			format, strings.Join(SupportedReportFormats, ", "))
	}
}

// IsValidFilePermissions checks that a report file mode does not grant write
// access to group or others.
func IsValidFilePermissions(mode os.FileMode) error {
	if mode&0022 != 0 {
		return fmt.Errorf("file permissions are too permissive: %s. Recommended 0600 or 0644", mode.String())
	}
	if mode&0600 != 0600 {
		return fmt.Errorf("file permissions must allow the owner to read and write: %s", mode.String())
	}
	return nil
}
