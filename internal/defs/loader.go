// internal/defs/loader.go
package defs

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"os"
)

//go:embed scenario.json
var defaultScenario []byte

// DefaultScenario returns the built-in reference scenario: a 10x8 grid of
// 64-unit cells with a three-segment road.
func DefaultScenario() *Scenario {
	s, err := ParseScenario(defaultScenario)
	if err != nil {
		// Встроенный файл проверяется тестами, сюда попасть нельзя.
		panic(fmt.Sprintf("built-in scenario is broken: %v", err))
	}
	return s
}

// LoadScenario reads a scenario file from disk.
func LoadScenario(path string) (*Scenario, error) {
	file, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read scenario file: %w", err)
	}
	s, err := ParseScenario(file)
	if err != nil {
		return nil, fmt.Errorf("scenario %s: %w", path, err)
	}
	return s, nil
}

// ParseScenario decodes and validates a scenario.
func ParseScenario(data []byte) (*Scenario, error) {
	var s Scenario
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("failed to unmarshal scenario: %w", err)
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return &s, nil
}
