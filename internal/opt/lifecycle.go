package opt

import (
	"fmt"
	"math"

	"github.com/cwbudde/knapsackopt/internal/knapsack"
)

// Lifecycle is the state every engine shares: the problem it searches,
// the best solution seen so far, and the per-iteration history of best
// values. Engines embed a *Lifecycle and supply Initialize and Step;
// Run and the best-record bookkeeping come from here.
type Lifecycle struct {
	problem   *knapsack.Problem
	engine    Stepper
	best      knapsack.Solution
	bestValue float64
	history   []float64
}

// NewLifecycle binds the shared lifecycle state to its engine. The engine
// pointer is the same value that embeds the returned Lifecycle.
func NewLifecycle(problem *knapsack.Problem, engine Stepper) *Lifecycle {
	return &Lifecycle{
		problem:   problem,
		engine:    engine,
		bestValue: math.Inf(-1),
	}
}

// Problem returns the instance being searched.
func (l *Lifecycle) Problem() *knapsack.Problem {
	return l.problem
}

// Run executes the full lifecycle: Initialize once, then exactly
// maxIterations steps, appending the current best value to the history
// after each step. maxIterations of 0 yields an empty history and the
// initialized best.
func (l *Lifecycle) Run(maxIterations int) (knapsack.Solution, float64, []float64, error) {
	if maxIterations < 0 {
		return nil, 0, nil, fmt.Errorf("maxIterations must be >= 0 (got %d)", maxIterations)
	}

	l.engine.Initialize()
	l.history = l.history[:0]

	for i := 0; i < maxIterations; i++ {
		l.engine.Step()
		l.history = append(l.history, l.bestValue)
	}

	best, value := l.Best()
	return best, value, append([]float64(nil), l.history...), nil
}

// Observe records a candidate solution, keeping it as the new best when
// its value is a strict improvement. The solution is cloned on adoption,
// so callers may keep mutating their copy. Reports whether the best
// record changed.
func (l *Lifecycle) Observe(s knapsack.Solution, value float64) bool {
	if value <= l.bestValue {
		return false
	}
	l.best = s.Clone()
	l.bestValue = value
	return true
}

// Best returns the best solution found so far and its value. Before
// anything has been observed it degrades to the all-zero solution with
// value 0.
func (l *Lifecycle) Best() (knapsack.Solution, float64) {
	if l.best == nil {
		return make(knapsack.Solution, l.problem.N()), 0
	}
	return l.best.Clone(), l.bestValue
}

// BestValue returns the current best value, or -Inf when nothing has
// been observed yet.
func (l *Lifecycle) BestValue() float64 {
	return l.bestValue
}

// History returns a copy of the best-value snapshots recorded so far in
// the current run.
func (l *Lifecycle) History() []float64 {
	return append([]float64(nil), l.history...)
}

// ResetBest discards the best record. Engines call this at the start of
// Initialize so repeated runs of one instance start clean.
func (l *Lifecycle) ResetBest() {
	l.best = nil
	l.bestValue = math.Inf(-1)
}

// EvaluateValue is the pass-through scoring used by all engines: the
// solution's total value, 0 when it exceeds the capacity.
func (l *Lifecycle) EvaluateValue(s knapsack.Solution) float64 {
	value, _ := l.problem.Evaluate(s)
	return value
}

// Repair is the shared pass-through to GreedyRepair on this problem.
func (l *Lifecycle) Repair(s knapsack.Solution) knapsack.Solution {
	return GreedyRepair(l.problem, s)
}
