// Package report renders computed totals in the supported output formats.
package report

import (
	"encoding/json"
	"fmt"

	"fjacquet/supply-report/internal/aggregator"
	"fjacquet/supply-report/internal/logging"
	"fjacquet/supply-report/internal/models"
	"fjacquet/supply-report/internal/validation"

	"gopkg.in/yaml.v3"
)

// Generator renders Totals as text, JSON or YAML.
type Generator struct {
	logger logging.Logger
}

// NewGenerator creates a new Generator.
func NewGenerator(logger logging.Logger) *Generator {
	if logger == nil {
		logger = logging.NewLogrusAdapter("info", "text")
	}
	return &Generator{
		logger: logger.WithField("component", "ReportGenerator"),
	}
}

// summary is the structured form of the report. Values are kept as number
// literals so arbitrarily large totals survive encoding.
type summary struct {
	Supply json.Number `json:"supply"`
	Buy    json.Number `json:"buy"`
	Result json.Number `json:"result"`
}

func newSummary(t models.Totals) summary {
	return summary{
		Supply: json.Number(t.Supply.String()),
		Buy:    json.Number(t.Buy.String()),
		Result: json.Number(t.Result().String()),
	}
}

// Generate renders t in the given format. The text format is the canonical
// three-line report; json and yaml carry the same three values.
func (g *Generator) Generate(t models.Totals, format string) ([]byte, error) {
	if err := validation.IsValidReportFormat(format); err != nil {
		return nil, err
	}

	switch format {
	case validation.FormatJSON:
		return g.generateJSON(t)
	case validation.FormatYAML:
		return g.generateYAML(t)
	default:
		return []byte(aggregator.FormatReport(t)), nil
	}
}

func (g *Generator) generateJSON(t models.Totals) ([]byte, error) {
	out, err := json.MarshalIndent(newSummary(t), "", "  ")
	if err != nil {
		g.logger.WithError(err).Error("Failed to marshal JSON report")
		return nil, fmt.Errorf("failed to marshal JSON report: %w", err)
	}
	return out, nil
}

// generateYAML builds the document node by node so the values are tagged
// as integers rather than quoted strings.
func (g *Generator) generateYAML(t models.Totals) ([]byte, error) {
	s := newSummary(t)
	doc := &yaml.Node{Kind: yaml.MappingNode}
	for _, kv := range []struct {
		key   string
		value json.Number
	}{
		{models.Supply.String(), s.Supply},
		{models.Buy.String(), s.Buy},
		{models.LabelResult, s.Result},
	} {
		doc.Content = append(doc.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: kv.key},
			&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!int", Value: kv.value.String()},
		)
	}

	out, err := yaml.Marshal(doc)
	if err != nil {
		g.logger.WithError(err).Error("Failed to marshal YAML report")
		return nil, fmt.Errorf("failed to marshal YAML report: %w", err)
	}
	return out, nil
}
