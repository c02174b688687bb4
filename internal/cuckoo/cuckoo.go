// Package cuckoo implements cuckoo search for the knapsack problem:
// Lévy-flight bit perturbation with greedy elitist replacement and
// abandonment of the worst nests.
package cuckoo

import (
	"fmt"
	"math"
	"math/rand"
	"sort"

	"github.com/cwbudde/knapsackopt/internal/knapsack"
	"github.com/cwbudde/knapsackopt/internal/opt"
)

// Engine is the cuckoo-search knapsack engine.
type Engine struct {
	*opt.Lifecycle
	cfg Config
	rng *rand.Rand

	nests  []knapsack.Solution
	values []float64

	// sigma is the Mantegna scale for the configured Lévy exponent,
	// fixed per engine.
	sigma float64

	step []float64 // scratch: per-dimension Lévy step
}

// New returns a cuckoo-search engine for the problem with a validated
// configuration and its own random stream.
func New(problem *knapsack.Problem, cfg Config, rng *rand.Rand) (*Engine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if rng == nil {
		return nil, fmt.Errorf("nil random source")
	}

	beta := cfg.Levy
	sigma := math.Pow(
		math.Gamma(1+beta)*math.Sin(math.Pi*beta/2)/
			(math.Gamma((1+beta)/2)*beta*math.Pow(2, (beta-1)/2)),
		1/beta,
	)

	e := &Engine{
		cfg:   cfg,
		rng:   rng,
		sigma: sigma,
		step:  make([]float64, problem.N()),
	}
	e.Lifecycle = opt.NewLifecycle(problem, e)
	return e, nil
}

// Initialize fills the nests with random repaired solutions and seeds the
// best record from the best of them.
func (e *Engine) Initialize() {
	e.ResetBest()
	e.nests = make([]knapsack.Solution, e.cfg.Nests)
	e.values = make([]float64, e.cfg.Nests)
	for i := range e.nests {
		e.nests[i] = e.randomNest()
		e.values[i] = e.EvaluateValue(e.nests[i])
		e.Observe(e.nests[i], e.values[i])
	}
}

// Step perturbs every nest with a Lévy flight, keeping the candidate only
// on strict improvement, then abandons the worst floor(N*Abandon) nests
// unconditionally. A nest improved moments earlier can still be abandoned
// when it remains among the worst; that tradeoff is part of the rule.
func (e *Engine) Step() {
	for i := range e.nests {
		// A mate nest is drawn per the flight rule but only the draw
		// itself matters here.
		_ = e.rng.Intn(len(e.nests))

		e.levyStep()
		candidate := e.nests[i].Clone()
		for d := range candidate {
			if e.rng.Float64() < math.Abs(e.step[d]) {
				candidate[d] ^= 1
			}
		}
		candidate = e.Repair(candidate)

		if value := e.EvaluateValue(candidate); value > e.values[i] {
			e.nests[i] = candidate
			e.values[i] = value
		}
	}

	order := make([]int, len(e.nests))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		return e.values[order[a]] < e.values[order[b]]
	})
	abandoned := int(float64(len(e.nests)) * e.cfg.Abandon)
	for _, i := range order[:abandoned] {
		e.nests[i] = e.randomNest()
		e.values[i] = e.EvaluateValue(e.nests[i])
	}

	for i := range e.nests {
		e.Observe(e.nests[i], e.values[i])
	}
}

// levyStep fills the scratch step with Mantegna-distributed values:
// u/|v|^(1/beta) with u ~ N(0, sigma) and v ~ N(0, 1) per dimension.
func (e *Engine) levyStep() {
	invBeta := 1 / e.cfg.Levy
	for d := range e.step {
		u := e.rng.NormFloat64() * e.sigma
		v := e.rng.NormFloat64()
		e.step[d] = u / math.Pow(math.Abs(v), invBeta)
	}
}

func (e *Engine) randomNest() knapsack.Solution {
	nest := make(knapsack.Solution, e.Problem().N())
	for d := range nest {
		nest[d] = uint8(e.rng.Intn(2))
	}
	return e.Repair(nest)
}
