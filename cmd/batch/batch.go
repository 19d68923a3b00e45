// Package batch handles batch processing of transaction log directories
package batch

import (
	"fmt"

	"fjacquet/supply-report/cmd/root"
	"fjacquet/supply-report/internal/logging"

	"github.com/spf13/cobra"
)

// Cmd represents the batch command
var Cmd = &cobra.Command{
	Use:   "batch",
	Short: "Write reports for every transaction log in a directory",
	Long: `Write one report per transaction log found in the input directory, plus a
summary CSV listing the totals of every file.

Files are matched on batch.input_extension and processed in name order. A file
that cannot be read is recorded as failed in the summary and the remaining
files are still processed; the command exits non-zero if any file failed.

Example:
  supply-report batch -i logs/ -o reports/`,
	RunE: batchFunc,
}

func init() {
	// -i/-o name directories here
	Cmd.SetUsageTemplate(`Usage:{{if .Runnable}}
  {{.UseLine}}{{end}}{{if .HasAvailableSubCommands}}
  {{.CommandPath}} [command]{{end}}{{if gt (len .Aliases) 0}}

Aliases:
  {{.NameAndAliases}}{{end}}{{if .HasExample}}

Examples:
{{.Example}}{{end}}{{if .HasAvailableSubCommands}}

Available Commands:{{range .Commands}}{{if (or .IsAvailableCommand (eq .Name "help"))}}
  {{rpad .Name .NamePadding }} {{.Short}}{{end}}{{end}}{{end}}{{if .HasAvailableLocalFlags}}

Flags:
{{.LocalFlags.FlagUsages | trimTrailingWhitespaces}}{{end}}{{if .HasAvailableInheritedFlags}}

Global Flags (for batch, -i/-o refer to directories):
{{.InheritedFlags.FlagUsages | trimTrailingWhitespaces}}{{end}}{{if .HasHelpSubCommands}}

Additional help topics:{{range .Commands}}{{if .IsAdditionalHelpTopicCommand}}
  {{rpad .CommandPath .CommandPathPadding}} {{.Short}}{{end}}{{end}}{{end}}{{if .HasAvailableSubCommands}}

Use "{{.CommandPath}} [command] --help" for more information about a command.{{end}}
`)
}

func batchFunc(cmd *cobra.Command, args []string) error {
	inputDir := root.SharedFlags.Input
	outputDir := root.SharedFlags.Output

	c, err := root.GetContainer()
	if err != nil {
		return err
	}

	result, err := c.GetProcessor().ProcessDirectory(cmd.Context(), inputDir, outputDir)
	if err != nil {
		return err
	}

	root.Log.Debug("Summary written", logging.F(logging.FieldOutputFile, result.SummaryPath))

	if result.Failed > 0 {
		return fmt.Errorf("%d of %d files failed, see %s", result.Failed, result.Processed+result.Failed, result.SummaryPath)
	}
	return nil
}
