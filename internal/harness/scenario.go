package harness

import (
	"bytes"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Scenario defines a drill: a set of deals evaluated against one rule set,
// each with an expected outcome.
type Scenario struct {
	// Name uniquely identifies this scenario; it also names the golden file.
	Name string `yaml:"name"`

	// Description explains what this scenario validates.
	Description string `yaml:"description"`

	// RuleSet is the registry ID of the tree to evaluate against.
	RuleSet string `yaml:"rule_set"`

	// Deals are evaluated in order.
	Deals []Deal `yaml:"deals"`
}

// Deal is one hand plus its auction so far and the expected result.
type Deal struct {
	// Hand in dotted notation, e.g. "AKQ2.T98.765.432".
	Hand string `yaml:"hand"`

	// Seat of the player holding the hand. Defaults to South.
	Seat string `yaml:"seat,omitempty"`

	// Dealer makes the first call of Auction. Defaults to North.
	Dealer string `yaml:"dealer,omitempty"`

	// Auction lists the calls made before this player acts.
	Auction []string `yaml:"auction,omitempty"`

	// Expect describes the outcome the evaluation should reach.
	Expect Expect `yaml:"expect"`
}

// Expect specifies the expected evaluation result. An empty Outcome means
// the deal should reach a dead end without matching.
type Expect struct {
	Outcome string `yaml:"outcome,omitempty"`
	Call    string `yaml:"call,omitempty"`
}

// LoadScenario reads and parses a scenario YAML file.
// Unknown fields are rejected so typos fail loudly.
func LoadScenario(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read scenario file: %w", err)
	}

	var scenario Scenario
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&scenario); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := validateScenario(&scenario); err != nil {
		return nil, fmt.Errorf("invalid scenario: %w", err)
	}
	return &scenario, nil
}

// validateScenario checks that required fields are present.
func validateScenario(s *Scenario) error {
	if s.Name == "" {
		return fmt.Errorf("name is required")
	}
	if s.RuleSet == "" {
		return fmt.Errorf("rule_set is required")
	}
	if len(s.Deals) == 0 {
		return fmt.Errorf("deals list is required and must be non-empty")
	}
	for i, d := range s.Deals {
		if d.Hand == "" {
			return fmt.Errorf("deals[%d]: hand is required", i)
		}
		if d.Expect.Outcome == "" && d.Expect.Call != "" {
			return fmt.Errorf("deals[%d]: expect.call requires expect.outcome", i)
		}
	}
	return nil
}
