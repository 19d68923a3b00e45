// Package container wires the report pipeline: configuration, logger,
// report generator, statistic service and batch processor.
package container

import (
	"fmt"

	"fjacquet/supply-report/internal/batch"
	"fjacquet/supply-report/internal/config"
	"fjacquet/supply-report/internal/logging"
	"fjacquet/supply-report/internal/report"
	"fjacquet/supply-report/internal/statistic"
)

// Container holds the application dependencies. It is immutable after
// creation; fields are reached through getters only.
type Container struct {
	logger    logging.Logger
	config    *config.Config
	generator *report.Generator
	service   *statistic.Service
	processor *batch.Processor
}

// NewContainer creates and wires all application dependencies. When logger is
// nil one is built from the log section of cfg.
func NewContainer(cfg *config.Config, logger logging.Logger) (*Container, error) {
	if cfg == nil {
		return nil, fmt.Errorf("configuration cannot be nil")
	}
	if logger == nil {
		logger = config.ConfigureLoggingFromConfig(cfg)
	}

	mode, err := cfg.ReportFileMode()
	if err != nil {
		return nil, err
	}

	svc, err := statistic.NewService(logger, statistic.Options{
		Format:   cfg.Report.Format,
		FileMode: mode,
	})
	if err != nil {
		return nil, fmt.Errorf("error creating statistic service: %w", err)
	}

	processor := batch.NewProcessor(svc, logger, batch.Options{
		InputExtension:  cfg.Batch.InputExtension,
		OutputExtension: cfg.Batch.OutputExtension,
		SummaryFile:     cfg.Batch.SummaryFile,
	})

	logger.Debug("Container initialized",
		logging.F(logging.FieldFormat, cfg.Report.Format),
		logging.F("file_mode", mode.String()))

	return &Container{
		logger:    logger,
		config:    cfg,
		generator: report.NewGenerator(logger),
		service:   svc,
		processor: processor,
	}, nil
}

// GetLogger returns the container's logger instance.
func (c *Container) GetLogger() logging.Logger {
	return c.logger
}

// GetConfig returns the container's configuration instance.
func (c *Container) GetConfig() *config.Config {
	return c.config
}

// GetGenerator returns the report generator.
func (c *Container) GetGenerator() *report.Generator {
	return c.generator
}

// GetService returns the statistic service configured with the report
// format and file mode.
func (c *Container) GetService() *statistic.Service {
	return c.service
}

// GetProcessor returns the batch processor.
func (c *Container) GetProcessor() *batch.Processor {
	return c.processor
}

// ReportFormat is the format every report of this container is rendered in.
func (c *Container) ReportFormat() string {
	return c.config.Report.Format
}
