package cmd

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"

	"github.com/bullwhip-sim/bullwhip-sim/sim/demand"
)

// Define struct for YAML
type ScenarioConfig struct {
	Scenarios map[string]Scenario `yaml:"scenarios"`
}

// Scenario is a named experiment preset: a demand pattern plus per-stage
// policy settings keyed by stage name (retailer, wholesaler, distributor,
// manufacturer).
type Scenario struct {
	Demand demand.Spec              `yaml:"demand"`
	Stages map[string]StageSettings `yaml:"stages"`
}

// StageSettings configures one stage's policy. Fields that the chosen policy
// does not understand are ignored.
type StageSettings struct {
	Policy           string  `yaml:"policy"`
	Target           int     `yaml:"target"`
	TargetSupplyLine int     `yaml:"target_supply_line"`
	Alpha            float64 `yaml:"alpha"`
	Beta             float64 `yaml:"beta"`
	Gamma            float64 `yaml:"gamma"`
	InitialForecast  float64 `yaml:"initial_forecast"`
	Min              int     `yaml:"min"`
	Max              int     `yaml:"max"`
	OptimalTarget    bool    `yaml:"optimal_target"`
}

// GetScenario loads a named scenario from a YAML preset file.
func GetScenario(scenarioFilePath string, name string) (*Scenario, error) {
	data, err := os.ReadFile(scenarioFilePath)
	if err != nil {
		return nil, fmt.Errorf("read scenario file: %w", err)
	}

	var cfg ScenarioConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse scenario file: %w", err)
	}

	scenario, ok := cfg.Scenarios[name]
	if !ok {
		return nil, fmt.Errorf("scenario %q not found in %s", name, scenarioFilePath)
	}
	logrus.Infof("Using preset scenario %v", name)
	return &scenario, nil
}
