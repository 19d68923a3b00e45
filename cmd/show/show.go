// Package show prints a report to standard output without writing a file.
package show

import (
	"bytes"
	"fmt"

	"fjacquet/supply-report/cmd/root"
	"fjacquet/supply-report/internal/logging"

	"github.com/spf13/cobra"
)

// Cmd represents the show command
var Cmd = &cobra.Command{
	Use:   "show",
	Short: "Print the supply/buy report for one transaction log",
	Long: `Compute the report for the input file and print it instead of writing it.
The output flag is ignored.

Example:
  supply-report show -i input.csv
  supply-report show -i input.csv --format yaml`,
	RunE: showFunc,
}

func showFunc(cmd *cobra.Command, args []string) error {
	input := root.SharedFlags.Input

	c, err := root.GetContainer()
	if err != nil {
		return err
	}

	totals, stats, err := c.GetService().Compute(input)
	if err != nil {
		return err
	}

	content, err := c.GetGenerator().Generate(totals, c.ReportFormat())
	if err != nil {
		return err
	}

	root.Log.Debug("Report computed",
		logging.F(logging.FieldInputFile, input),
		logging.F(logging.FieldCount, stats.Lines))

	out := cmd.OutOrStdout()
	if _, err := out.Write(content); err != nil {
		return err
	}
	if !bytes.HasSuffix(content, []byte("\n")) {
		_, err = fmt.Fprintln(out)
	}
	return err
}
