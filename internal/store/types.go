package store

import (
	"time"
)

// JobConfig holds the configuration of an optimization run (result copy).
// This avoids import cycles with the server package.
type JobConfig struct {
	// Algorithm is the registered engine name (e.g. "GA", "ACO").
	Algorithm string `json:"algorithm"`

	// InstancePath points to a JSON problem file. When empty, a random
	// instance with Items items is generated from InstanceSeed.
	InstancePath  string  `json:"instancePath,omitempty"`
	Items         int     `json:"items,omitempty"`
	InstanceSeed  int64   `json:"instanceSeed,omitempty"`
	CapacityRatio float64 `json:"capacityRatio,omitempty"`

	// Iterations is the number of optimizer steps to run.
	Iterations int `json:"iterations"`

	// Seed drives the engine's private random stream.
	Seed int64 `json:"seed"`
}

// RunResult is the persisted outcome of one optimizer run.
//
// Only the best solution and its score are saved, never the engine's
// internal population state: populations differ per algorithm, would tie
// the file format to engine internals, and a fresh population plus the
// saved best reproduces the interesting part of a run anyway. The full
// convergence history lives next to it in trace.jsonl.
type RunResult struct {
	// RunID is the unique identifier for this run
	RunID string `json:"runId"`

	// BestSolution is the 0/1 selection vector of the best solution found
	BestSolution []uint8 `json:"bestSolution"`

	// BestValue is the total value achieved by BestSolution
	BestValue float64 `json:"bestValue"`

	// BestWeight is the total weight of BestSolution
	BestWeight float64 `json:"bestWeight"`

	// Optimum is the dynamic-programming optimum of the instance,
	// recorded for success-rate reporting
	Optimum float64 `json:"optimum,omitempty"`

	// Iterations is the number of completed optimizer steps
	Iterations int `json:"iterations"`

	// Timestamp records when this result was saved
	Timestamp time.Time `json:"timestamp"`

	// Config holds the run configuration for later inspection
	Config JobConfig `json:"config"`
}

// ResultInfo contains metadata about a stored result without the full
// solution vector. Used for listing results cheaply.
type ResultInfo struct {
	RunID      string    `json:"runId"`
	Algorithm  string    `json:"algorithm"`
	BestValue  float64   `json:"bestValue"`
	Optimum    float64   `json:"optimum,omitempty"`
	Iterations int       `json:"iterations"`
	Items      int       `json:"items"`
	Timestamp  time.Time `json:"timestamp"`
}

// NewRunResult creates a result record from run state.
func NewRunResult(runID string, best []uint8, bestValue, bestWeight, optimum float64, iterations int, config JobConfig) *RunResult {
	return &RunResult{
		RunID:        runID,
		BestSolution: best,
		BestValue:    bestValue,
		BestWeight:   bestWeight,
		Optimum:      optimum,
		Iterations:   iterations,
		Timestamp:    time.Now(),
		Config:       config,
	}
}

// ToInfo extracts listing metadata from a full result.
func (r *RunResult) ToInfo() ResultInfo {
	return ResultInfo{
		RunID:      r.RunID,
		Algorithm:  r.Config.Algorithm,
		BestValue:  r.BestValue,
		Optimum:    r.Optimum,
		Iterations: r.Iterations,
		Items:      len(r.BestSolution),
		Timestamp:  r.Timestamp,
	}
}
