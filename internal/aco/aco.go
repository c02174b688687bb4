// Package aco implements ant-colony construction for the knapsack
// problem with a pseudo-random proportional choice rule over a per-item
// pheromone vector.
package aco

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/cwbudde/knapsackopt/internal/knapsack"
	"github.com/cwbudde/knapsackopt/internal/opt"
)

// Engine is the ant-colony knapsack engine.
type Engine struct {
	*opt.Lifecycle
	cfg Config
	rng *rand.Rand

	// pheromone accumulates per-item desirability across iterations. It
	// is created once per engine and deliberately survives Initialize, so
	// repeated runs keep the learned trail.
	pheromone []float64

	// heuristic is the static value/weight ratio normalized to max 1.
	heuristic []float64

	scores   []float64 // scratch: desirability per item
	feasible []int     // scratch: indices still fitting the capacity
}

// New returns an ant-colony engine for the problem with a validated
// configuration and its own random stream.
func New(problem *knapsack.Problem, cfg Config, rng *rand.Rand) (*Engine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if rng == nil {
		return nil, fmt.Errorf("nil random source")
	}

	n := problem.N()
	e := &Engine{
		cfg:       cfg,
		rng:       rng,
		pheromone: make([]float64, n),
		heuristic: make([]float64, n),
		scores:    make([]float64, n),
		feasible:  make([]int, 0, n),
	}

	maxRatio := problem.Ratios[0]
	for _, r := range problem.Ratios[1:] {
		if r > maxRatio {
			maxRatio = r
		}
	}
	for i := 0; i < n; i++ {
		e.pheromone[i] = 1
		e.heuristic[i] = problem.Ratios[i] / maxRatio
	}

	e.Lifecycle = opt.NewLifecycle(problem, e)
	return e, nil
}

// Initialize resets the best record. There is no population to build;
// ants construct solutions from scratch every Step.
func (e *Engine) Initialize() {
	e.ResetBest()
}

// Step lets every ant construct a solution, then evaporates the pheromone
// and deposits from each ant with a positive score, scaled by the
// iteration's best value. Depositing from all positive ants rather than
// the single iteration best trades convergence speed for diversity.
func (e *Engine) Step() {
	solutions := make([]knapsack.Solution, e.cfg.Ants)
	values := make([]float64, e.cfg.Ants)
	maxValue := 0.0

	for a := range solutions {
		solutions[a] = e.construct()
		values[a] = e.EvaluateValue(solutions[a])
		if values[a] > maxValue {
			maxValue = values[a]
		}
		e.Observe(solutions[a], values[a])
	}

	for i := range e.pheromone {
		e.pheromone[i] *= 1 - e.cfg.Rho
	}
	if maxValue <= 0 {
		return
	}
	for a, sol := range solutions {
		if values[a] <= 0 {
			continue
		}
		delta := values[a] / maxValue
		for i, bit := range sol {
			if bit == 1 {
				e.pheromone[i] += delta
			}
		}
	}
}

// construct builds one ant's solution, adding one feasible item at a time
// until nothing fits. With probability Q0 the highest-scoring feasible
// item is taken; otherwise one is drawn proportional to score.
func (e *Engine) construct() knapsack.Solution {
	p := e.Problem()
	n := p.N()
	sol := make(knapsack.Solution, n)
	remaining := p.Capacity

	for i := 0; i < n; i++ {
		e.scores[i] = fastPow(e.pheromone[i], e.cfg.Alpha) * fastPow(e.heuristic[i], e.cfg.Beta)
	}

	for {
		e.feasible = e.feasible[:0]
		for i := 0; i < n; i++ {
			if sol[i] == 0 && p.Weights[i] <= remaining {
				e.feasible = append(e.feasible, i)
			}
		}
		if len(e.feasible) == 0 {
			break
		}

		var item int
		if e.rng.Float64() < e.cfg.Q0 {
			item = e.greedyChoice()
		} else {
			item = e.rouletteChoice()
		}

		sol[item] = 1
		remaining -= p.Weights[item]
	}
	return sol
}

func (e *Engine) greedyChoice() int {
	best := e.feasible[0]
	for _, i := range e.feasible[1:] {
		if e.scores[i] > e.scores[best] {
			best = i
		}
	}
	return best
}

func (e *Engine) rouletteChoice() int {
	sum := 0.0
	for _, i := range e.feasible {
		sum += e.scores[i]
	}
	if sum <= 0 {
		return e.feasible[e.rng.Intn(len(e.feasible))]
	}

	r := e.rng.Float64() * sum
	acc := 0.0
	for _, i := range e.feasible {
		acc += e.scores[i]
		if r <= acc {
			return i
		}
	}
	return e.feasible[len(e.feasible)-1]
}

// fastPow avoids math.Pow for the common exponents.
func fastPow(x, p float64) float64 {
	switch p {
	case 0:
		return 1
	case 1:
		return x
	case 2:
		return x * x
	}
	return math.Pow(x, p)
}
