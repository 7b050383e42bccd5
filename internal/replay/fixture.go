// Package replay runs recorded decode scenarios through the agent and
// diffs the outcome against the fixture's expectations. Fixtures double as
// regression cases for the scenario suite.
package replay

// #region imports
import (
	"encoding/json"
	"fmt"
	"os"
)

// #endregion

// #region fixture-types

// Fixture is the top-level JSON structure for one decode scenario.
type Fixture struct {
	Description string        `json:"description"`
	Input       string        `json:"input"`
	Config      FixtureConfig `json:"config"`
	Expected    Expected      `json:"expected"`
}

// FixtureConfig mirrors agent.Config with JSON tags.
type FixtureConfig struct {
	MaxIterations int `json:"max_iterations"`
}

// Expected holds the asserted outcome. Optional fields stay pointers so a
// fixture can assert only what it cares about.
type Expected struct {
	Status        string   `json:"status"`
	Success       *bool    `json:"success,omitempty"`
	FinalText     *string  `json:"final_text,omitempty"`
	EncodingChain []string `json:"encoding_chain,omitempty"`
	Iterations    *int     `json:"iterations,omitempty"`
}

// #endregion

// #region load

// LoadFixture reads and parses a fixture file.
func LoadFixture(path string) (Fixture, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Fixture{}, fmt.Errorf("read fixture: %w", err)
	}

	var f Fixture
	if err := json.Unmarshal(data, &f); err != nil {
		return Fixture{}, fmt.Errorf("parse fixture: %w", err)
	}
	if f.Input == "" {
		return Fixture{}, fmt.Errorf("fixture has no input")
	}
	return f, nil
}

// #endregion
