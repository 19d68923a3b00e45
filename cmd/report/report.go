// Package report provides the single-file report command.
package report

import (
	"fjacquet/supply-report/cmd/root"
	"fjacquet/supply-report/internal/logging"

	"github.com/spf13/cobra"
)

// Cmd represents the report command
var Cmd = &cobra.Command{
	Use:   "report",
	Short: "Write the supply/buy report for one transaction log",
	Long: `Read a transaction log of "operation,amount" lines and write the report to
the output file. Blank and malformed lines are skipped, unknown operations are
ignored and amounts that cannot be parsed count as zero.

Example:
  supply-report report -i input.csv -o report.txt
  supply-report report -i input.csv -o report.json --format json`,
	RunE: reportFunc,
}

func reportFunc(cmd *cobra.Command, args []string) error {
	input := root.SharedFlags.Input
	output := root.SharedFlags.Output

	root.Log.Debug("Report command called",
		logging.F(logging.FieldInputFile, input),
		logging.F(logging.FieldOutputFile, output))

	c, err := root.GetContainer()
	if err != nil {
		return err
	}
	return c.GetService().GetStatistic(cmd.Context(), input, output)
}
