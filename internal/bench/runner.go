// Package bench repeats seeded optimizer runs over one problem instance
// and aggregates the outcomes for comparison tables.
package bench

import (
	"fmt"
	"log/slog"
	"time"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/cwbudde/knapsackopt/internal/knapsack"
	"github.com/cwbudde/knapsackopt/internal/opt"
)

// Algorithm pairs a display name with a per-seed engine factory.
type Algorithm struct {
	Name    string
	Factory func(seed int64) (opt.Optimizer, error)
}

// Summary aggregates all runs of one algorithm on one instance.
type Summary struct {
	Algo       string
	Runs       int
	Iterations int

	BestValue  float64
	WorstValue float64
	MeanValue  float64
	StdValue   float64

	TimeMeanMs float64
	TimeStdMs  float64

	// Optimum is the instance's dynamic-programming optimum and
	// SuccessRate the share of runs reaching SuccessRatio of it.
	Optimum     float64
	SuccessRate float64

	// MeanHistory is the per-iteration best value averaged over runs.
	MeanHistory []float64
}

// Runner executes repeated, independently seeded runs. Seeds are
// BaseSeed, BaseSeed+1, ... so experiments are reproducible.
type Runner struct {
	Runs       int
	Iterations int
	BaseSeed   int64

	// SuccessRatio is the fraction of the optimum a run must reach to
	// count as a success. Zero means the default of 0.9.
	SuccessRatio float64
}

// RunAlgorithm runs one algorithm Runs times and aggregates the results.
// Every run's final solution must be feasible; an infeasible one aborts
// the experiment since it indicates a broken engine.
func (r Runner) RunAlgorithm(problem *knapsack.Problem, algo Algorithm) (Summary, error) {
	if r.Runs <= 0 {
		return Summary{}, fmt.Errorf("runs must be > 0 (got %d)", r.Runs)
	}
	if r.Iterations < 0 {
		return Summary{}, fmt.Errorf("iterations must be >= 0 (got %d)", r.Iterations)
	}

	successRatio := r.SuccessRatio
	if successRatio == 0 {
		successRatio = 0.9
	}
	optimum := problem.BestPossibleValue()
	threshold := successRatio*optimum - 1e-9

	slog.Info("Running algorithm", "algo", algo.Name, "runs", r.Runs, "iterations", r.Iterations)

	values := make([]float64, 0, r.Runs)
	timesMs := make([]float64, 0, r.Runs)
	meanHistory := make([]float64, r.Iterations)
	successes := 0

	for i := 0; i < r.Runs; i++ {
		engine, err := algo.Factory(r.BaseSeed + int64(i))
		if err != nil {
			return Summary{}, fmt.Errorf("run %d: construct %s: %w", i, algo.Name, err)
		}

		start := time.Now()
		sol, value, history, err := engine.Run(r.Iterations)
		elapsed := time.Since(start)
		if err != nil {
			return Summary{}, fmt.Errorf("run %d: %s: %w", i, algo.Name, err)
		}
		if !problem.IsValid(sol) {
			return Summary{}, fmt.Errorf("run %d: %s returned an infeasible solution", i, algo.Name)
		}

		values = append(values, value)
		timesMs = append(timesMs, float64(elapsed.Microseconds())/1000.0)
		if value >= threshold {
			successes++
		}
		for it, v := range history {
			meanHistory[it] += v
		}
	}

	for it := range meanHistory {
		meanHistory[it] /= float64(r.Runs)
	}

	summary := Summary{
		Algo:        algo.Name,
		Runs:        r.Runs,
		Iterations:  r.Iterations,
		BestValue:   floats.Max(values),
		WorstValue:  floats.Min(values),
		MeanValue:   stat.Mean(values, nil),
		StdValue:    sampleStd(values),
		TimeMeanMs:  stat.Mean(timesMs, nil),
		TimeStdMs:   sampleStd(timesMs),
		Optimum:     optimum,
		SuccessRate: float64(successes) / float64(r.Runs),
		MeanHistory: meanHistory,
	}

	slog.Info("Algorithm complete",
		"algo", algo.Name,
		"best", summary.BestValue,
		"mean", summary.MeanValue,
		"optimum", optimum,
		"success_rate", summary.SuccessRate,
	)
	return summary, nil
}

// sampleStd is the n-1 standard deviation, 0 for fewer than two samples.
func sampleStd(values []float64) float64 {
	if len(values) < 2 {
		return 0
	}
	return stat.StdDev(values, nil)
}
