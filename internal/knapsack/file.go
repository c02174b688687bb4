package knapsack

import (
	"encoding/json"
	"fmt"
	"os"
)

// instanceFile is the JSON encoding of a problem instance on disk.
type instanceFile struct {
	Weights  []float64 `json:"weights"`
	Values   []float64 `json:"values"`
	Capacity float64   `json:"capacity"`
}

// ReadFile loads a problem instance from a JSON file and validates it
// through New.
func ReadFile(path string) (*Problem, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read instance file: %w", err)
	}

	var inst instanceFile
	if err := json.Unmarshal(data, &inst); err != nil {
		return nil, fmt.Errorf("failed to parse instance file: %w", err)
	}

	p, err := New(inst.Weights, inst.Values, inst.Capacity)
	if err != nil {
		return nil, fmt.Errorf("invalid instance in %s: %w", path, err)
	}
	return p, nil
}

// WriteFile saves a problem instance as JSON.
func WriteFile(path string, p *Problem) error {
	data, err := json.MarshalIndent(instanceFile{
		Weights:  p.Weights,
		Values:   p.Values,
		Capacity: p.Capacity,
	}, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to serialize instance: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write instance file: %w", err)
	}
	return nil
}
