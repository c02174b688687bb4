package opt

import (
	"fmt"
	"math/rand"

	"github.com/cwbudde/mayfly"

	"github.com/cwbudde/knapsackopt/internal/knapsack"
)

// MayflyEngine adapts the external mayfly optimizer to the knapsack
// lifecycle as a continuous-relaxation baseline. It searches [0,1]^n,
// binarizes candidate positions at 0.5 and repairs them before scoring.
//
// The external library runs whole optimizations, not single generations,
// so each Step executes one short, freshly seeded burst and keeps the best
// binarized solution it finds. Restarting the population every step loses
// swarm momentum but can never lose the best record.
type MayflyEngine struct {
	*Lifecycle
	burstIters int
	popSize    int
	rng        *rand.Rand
}

// DefaultMayflyBurst is the per-step iteration budget of the baseline.
const DefaultMayflyBurst = 20

// DefaultMayflyPop is the default mayfly population size.
const DefaultMayflyPop = 30

// NewMayflyEngine creates the mayfly baseline engine.
func NewMayflyEngine(problem *knapsack.Problem, burstIters, popSize int, rng *rand.Rand) (*MayflyEngine, error) {
	if burstIters <= 0 {
		return nil, fmt.Errorf("burst iterations must be > 0 (got %d)", burstIters)
	}
	if popSize <= 1 {
		return nil, fmt.Errorf("population size must be > 1 (got %d)", popSize)
	}
	if rng == nil {
		return nil, fmt.Errorf("nil random source")
	}

	e := &MayflyEngine{
		burstIters: burstIters,
		popSize:    popSize,
		rng:        rng,
	}
	e.Lifecycle = NewLifecycle(problem, e)
	return e, nil
}

// Initialize resets the best record; the mayfly population itself is
// rebuilt inside every Step.
func (e *MayflyEngine) Initialize() {
	e.ResetBest()
}

// Step runs one mayfly burst over the continuous relaxation and observes
// its binarized global best.
func (e *MayflyEngine) Step() {
	config := mayfly.NewDefaultConfig()
	config.ObjectiveFunc = e.cost
	config.ProblemSize = e.Problem().N()
	config.MaxIterations = e.burstIters
	config.NPop = e.popSize
	config.LowerBound = 0
	config.UpperBound = 1
	config.Rand = rand.New(rand.NewSource(e.rng.Int63()))

	result, err := mayfly.Optimize(config)
	if err != nil {
		// Keep the current best; a failed burst is just a wasted step.
		return
	}

	sol := e.Repair(Binarize(result.GlobalBest.Position))
	e.Observe(sol, e.EvaluateValue(sol))
}

// cost is the minimization objective handed to the library: the negated
// value of the repaired, binarized position.
func (e *MayflyEngine) cost(x []float64) float64 {
	sol := e.Repair(Binarize(x))
	return -e.EvaluateValue(sol)
}

// Binarize maps a continuous position in [0,1]^n to a 0/1 solution with a
// 0.5 threshold.
func Binarize(x []float64) knapsack.Solution {
	sol := make(knapsack.Solution, len(x))
	for i, v := range x {
		if v >= 0.5 {
			sol[i] = 1
		}
	}
	return sol
}
