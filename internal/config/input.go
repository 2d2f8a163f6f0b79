package config

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/rpgo/retirement-planner/internal/domain"
	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

// InputParser handles parsing of scenario files
type InputParser struct{}

// NewInputParser creates a new input parser
func NewInputParser() *InputParser {
	return &InputParser{}
}

// fileConfiguration is the on-disk shape of a scenario file. Parameter values
// are read as text so each one goes through the same parsing as CLI flags.
type fileConfiguration struct {
	Base      map[string]string `yaml:"base"`
	Scenarios []fileScenario    `yaml:"scenarios"`
}

type fileScenario struct {
	Name      string            `yaml:"name"`
	Overrides map[string]string `yaml:"overrides"`
}

// LoadFromFile loads configuration from a YAML file. Base parameters missing
// from the file take their default values.
func (ip *InputParser) LoadFromFile(filename string) (*domain.Configuration, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filename, err)
	}
	return ip.Parse(data)
}

// Parse decodes and validates a YAML scenario document
func (ip *InputParser) Parse(data []byte) (*domain.Configuration, error) {
	var raw fileConfiguration
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	config := domain.Configuration{Base: domain.DefaultParameters()}
	for _, name := range sortedKeys(raw.Base) {
		if err := config.Base.Set(name, raw.Base[name]); err != nil {
			return nil, fmt.Errorf("base: %w", err)
		}
	}

	for i, rs := range raw.Scenarios {
		scenario := domain.Scenario{Name: strings.TrimSpace(rs.Name)}
		for _, name := range sortedKeys(rs.Overrides) {
			if err := scenario.Overrides.Set(name, rs.Overrides[name]); err != nil {
				return nil, fmt.Errorf("scenario %d (%s): %w", i, scenario.Name, err)
			}
		}
		config.Scenarios = append(config.Scenarios, scenario)
	}

	if err := ip.ValidateConfiguration(&config); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return &config, nil
}

// ValidateConfiguration validates the loaded configuration
func (ip *InputParser) ValidateConfiguration(config *domain.Configuration) error {
	if len(config.Scenarios) == 0 {
		return fmt.Errorf("no scenarios provided")
	}

	seen := make(map[string]bool, len(config.Scenarios))
	for i, scenario := range config.Scenarios {
		if err := ip.validateScenario(i, &scenario); err != nil {
			return fmt.Errorf("scenario %d validation failed: %w", i, err)
		}
		if seen[scenario.Name] {
			return fmt.Errorf("duplicate scenario name %q", scenario.Name)
		}
		seen[scenario.Name] = true
	}

	return nil
}

// validateScenario validates a single scenario
func (ip *InputParser) validateScenario(_ int, scenario *domain.Scenario) error {
	if scenario.Name == "" {
		return fmt.Errorf("scenario name is required")
	}
	return nil
}

// SaveConfiguration writes config as a YAML scenario file
func (ip *InputParser) SaveConfiguration(config *domain.Configuration, filename string) error {
	data, err := ip.Marshal(config)
	if err != nil {
		return err
	}
	if err := os.WriteFile(filename, data, 0o644); err != nil {
		return fmt.Errorf("failed to write file %s: %w", filename, err)
	}
	return nil
}

// Marshal encodes config as YAML with parameters in display order and
// numbers left unquoted.
func (ip *InputParser) Marshal(config *domain.Configuration) ([]byte, error) {
	base := mappingNode()
	for _, name := range domain.ParameterNames {
		text, err := config.Base.Get(name)
		if err != nil {
			return nil, err
		}
		appendPair(base, name, numberNode(text))
	}

	scenarios := &yaml.Node{Kind: yaml.SequenceNode}
	for _, scenario := range config.Scenarios {
		node := mappingNode()
		appendPair(node, "name", &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: scenario.Name})
		if !scenario.Overrides.IsEmpty() {
			overrides := mappingNode()
			for _, name := range domain.ParameterNames {
				if text, ok := scenario.Overrides.Get(name); ok {
					appendPair(overrides, name, numberNode(text))
				}
			}
			appendPair(node, "overrides", overrides)
		}
		scenarios.Content = append(scenarios.Content, node)
	}

	doc := mappingNode()
	appendPair(doc, "base", base)
	appendPair(doc, "scenarios", scenarios)

	data, err := yaml.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("failed to encode YAML: %w", err)
	}
	return data, nil
}

// CreateExampleConfiguration creates an example configuration file
func (ip *InputParser) CreateExampleConfiguration() *domain.Configuration {
	leanExpenses := decimal.NewFromInt(240000)
	earlyAge := 55
	poorROI := decimal.NewFromInt(2)
	highInflation := decimal.NewFromFloat(4.5)

	return &domain.Configuration{
		Base: domain.DefaultParameters(),
		Scenarios: []domain.Scenario{
			{
				Name: "Baseline",
			},
			{
				Name: "Lean Spending",
				Overrides: domain.ParameterOverrides{
					AnnualExpenses: &leanExpenses,
				},
			},
			{
				Name: "Early Retirement",
				Overrides: domain.ParameterOverrides{
					StartingAge: &earlyAge,
				},
			},
			{
				Name: "Stress Test",
				Overrides: domain.ParameterOverrides{
					ROI:           &poorROI,
					InflationRate: &highInflation,
				},
			},
		},
	}
}

func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func mappingNode() *yaml.Node {
	return &yaml.Node{Kind: yaml.MappingNode}
}

func appendPair(m *yaml.Node, key string, value *yaml.Node) {
	m.Content = append(m.Content, &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: key}, value)
}

func numberNode(text string) *yaml.Node {
	tag := "!!int"
	if strings.ContainsAny(text, ".eE") {
		tag = "!!float"
	}
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: tag, Value: text}
}
