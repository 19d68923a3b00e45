// Package config provides Viper-based hierarchical configuration management
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"fjacquet/supply-report/internal/validation"

	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

// EnvPrefix is prepended to every configuration key read from the environment,
// e.g. SUPPLY_REPORT_LOG_LEVEL for log.level.
const EnvPrefix = "SUPPLY_REPORT"

// Config represents the complete application configuration
type Config struct {
	Log struct {
		Level  string `mapstructure:"level" yaml:"level"`
		Format string `mapstructure:"format" yaml:"format"`
	} `mapstructure:"log" yaml:"log"`

	Report struct {
		Format   string `mapstructure:"format" yaml:"format"`
		FileMode string `mapstructure:"file_mode" yaml:"file_mode"`
	} `mapstructure:"report" yaml:"report"`

	Batch struct {
		InputExtension  string `mapstructure:"input_extension" yaml:"input_extension"`
		OutputExtension string `mapstructure:"output_extension" yaml:"output_extension"`
		SummaryFile     string `mapstructure:"summary_file" yaml:"summary_file"`
	} `mapstructure:"batch" yaml:"batch"`
}

// InitializeConfig loads configuration in increasing order of precedence:
// defaults, config file, environment. configFile selects an explicit file;
// when empty, config.yaml is looked up in the usual locations and may be
// absent.
func InitializeConfig(configFile string) (*Config, error) {
	v := viper.New()

	// 1. Set defaults
	setDefaults(v)

	// 2. Config file locations
	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath("$HOME/.supply-report")
		v.AddConfigPath(".supply-report")
		v.AddConfigPath(".")
	}

	// 3. Environment variables
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// 4. Read config file
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if configFile != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file %s: %w", v.ConfigFileUsed(), err)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	// 5. Validate configuration
	if err := validateConfig(&config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")

	v.SetDefault("report.format", validation.FormatText)
	v.SetDefault("report.file_mode", "0644")

	v.SetDefault("batch.input_extension", ".csv")
	v.SetDefault("batch.output_extension", ".report")
	v.SetDefault("batch.summary_file", "summary.csv")
}

func validateConfig(config *Config) error {
	if _, err := logrus.ParseLevel(config.Log.Level); err != nil {
		return fmt.Errorf("invalid log level: %s", config.Log.Level)
	}

	if config.Log.Format != "text" && config.Log.Format != "json" {
		return fmt.Errorf("invalid log format: %s (must be 'text' or 'json')", config.Log.Format)
	}

	if err := validation.IsValidReportFormat(config.Report.Format); err != nil {
		return err
	}

	mode, err := config.ReportFileMode()
	if err != nil {
		return err
	}
	if err := validation.IsValidFilePermissions(mode); err != nil {
		return fmt.Errorf("report.file_mode: %w", err)
	}

	if !strings.HasPrefix(config.Batch.InputExtension, ".") || len(config.Batch.InputExtension) < 2 {
		return fmt.Errorf("batch.input_extension must start with '.', got: %q", config.Batch.InputExtension)
	}
	if !strings.HasPrefix(config.Batch.OutputExtension, ".") || len(config.Batch.OutputExtension) < 2 {
		return fmt.Errorf("batch.output_extension must start with '.', got: %q", config.Batch.OutputExtension)
	}
	if config.Batch.InputExtension == config.Batch.OutputExtension {
		return fmt.Errorf("batch.output_extension must differ from batch.input_extension")
	}
	if strings.TrimSpace(config.Batch.SummaryFile) == "" {
		return fmt.Errorf("batch.summary_file must not be empty")
	}

	return nil
}

// ReportFileMode parses report.file_mode as an octal permission string.
func (c *Config) ReportFileMode() (os.FileMode, error) {
	mode, err := strconv.ParseUint(c.Report.FileMode, 8, 32)
	if err != nil {
		return 0, fmt.Errorf("report.file_mode must be an octal mode such as 0644, got: %q", c.Report.FileMode)
	}
	return os.FileMode(mode).Perm(), nil
}
