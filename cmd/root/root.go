// Package root contains the root command for the application
package root

import (
	"errors"
	"sync"

	"fjacquet/supply-report/internal/config"
	"fjacquet/supply-report/internal/container"
	"fjacquet/supply-report/internal/logging"
	"fjacquet/supply-report/internal/statserror"
	"fjacquet/supply-report/internal/validation"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// CommonFlags represents the flags that are common to multiple commands
type CommonFlags struct {
	Input  string
	Output string
	Format string
}

// Process exit codes.
const (
	ExitOK           = 0
	ExitFailure      = 1
	ExitInvalidUsage = 2
)

var (
	// Log is the shared logger instance for commands
	Log logging.Logger = logging.NewLogrusAdapter("info", "text")

	// AppContainer holds the dependencies wired from the loaded configuration
	AppContainer *container.Container

	// Cmd is the root command
	Cmd = &cobra.Command{
		Use:   "supply-report",
		Short: "Summarize supply and buy operations from a transaction log.",
		Long: `supply-report reads comma-separated "operation,amount" lines, totals the
supply and buy operations and writes a three-line report:

  supply,<total supply>
  buy,<total buy>
  result,<supply - buy>`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: setup,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	// SharedFlags holds the values of the persistent flags
	SharedFlags = CommonFlags{}

	configFile string
	logLevel   string
	initOnce   sync.Once
)

// Init registers the persistent flags. It is safe to call more than once.
func Init() {
	initOnce.Do(func() {
		Cmd.PersistentFlags().StringVarP(&SharedFlags.Input, "input", "i", "", "Input file or directory")
		Cmd.PersistentFlags().StringVarP(&SharedFlags.Output, "output", "o", "", "Output file or directory")
		Cmd.PersistentFlags().StringVarP(&SharedFlags.Format, "format", "f", "", "Report format: text, json or yaml (overrides report.format)")
		Cmd.PersistentFlags().StringVar(&configFile, "config", "", "Config file (default: config.yaml in $HOME/.supply-report, .supply-report or .)")
		Cmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Log level (overrides log.level)")
	})
}

func setup(cmd *cobra.Command, args []string) error {
	envFile, envErr := config.LoadEnv()

	cfg, err := config.InitializeConfig(configFile)
	if err != nil {
		return err
	}

	if logLevel != "" {
		if _, err := logrus.ParseLevel(logLevel); err != nil {
			return &statserror.ArgumentError{Field: "log level", Value: logLevel, Reason: "unknown level"}
		}
		cfg.Log.Level = logLevel
	}
	if SharedFlags.Format != "" {
		if err := validation.IsValidReportFormat(SharedFlags.Format); err != nil {
			return &statserror.ArgumentError{Field: "format", Value: SharedFlags.Format, Reason: err.Error()}
		}
		cfg.Report.Format = SharedFlags.Format
	}

	Log = config.ConfigureLoggingFromConfig(cfg).WithField(logging.FieldRunID, uuid.NewString())
	switch {
	case envErr != nil:
		Log.Warn("Ignoring .env file", logging.F(logging.FieldInputFile, envFile), logging.F(logging.FieldError, envErr.Error()))
	case envFile != "":
		Log.Debug("Loaded environment variables", logging.F(logging.FieldInputFile, envFile))
	}

	c, err := container.NewContainer(cfg, Log)
	if err != nil {
		return err
	}
	AppContainer = c
	return nil
}

// GetContainer returns the wired container, failing if no command has
// loaded the configuration yet.
func GetContainer() (*container.Container, error) {
	if AppContainer == nil {
		return nil, errors.New("configuration not loaded")
	}
	return AppContainer, nil
}

// ExitCode maps a command error to the process exit status. Caller errors
// are reported separately from I/O faults.
func ExitCode(err error) int {
	switch {
	case err == nil:
		return ExitOK
	case errors.Is(err, statserror.ErrInvalidArgument):
		return ExitInvalidUsage
	default:
		return ExitFailure
	}
}
