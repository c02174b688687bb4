// Package ga implements a genetic search engine for the knapsack problem:
// tournament selection, single-point crossover, per-bit mutation and
// elitist survival.
package ga

import (
	"fmt"
	"math/rand"
	"sort"

	"github.com/cwbudde/knapsackopt/internal/knapsack"
	"github.com/cwbudde/knapsackopt/internal/opt"
)

const tournamentSize = 3

// Engine is the genetic knapsack engine.
type Engine struct {
	*opt.Lifecycle
	cfg Config
	rng *rand.Rand

	population []knapsack.Solution
	fitness    []float64
}

// New returns a genetic engine for the problem with a validated
// configuration and its own random stream.
func New(problem *knapsack.Problem, cfg Config, rng *rand.Rand) (*Engine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if rng == nil {
		return nil, fmt.Errorf("nil random source")
	}

	e := &Engine{cfg: cfg, rng: rng}
	e.Lifecycle = opt.NewLifecycle(problem, e)
	return e, nil
}

// Initialize samples a uniform random population, repairs every
// individual and seeds the best record from the fittest one.
func (e *Engine) Initialize() {
	n := e.Problem().N()
	e.ResetBest()
	e.population = make([]knapsack.Solution, e.cfg.Population)
	e.fitness = make([]float64, e.cfg.Population)

	for i := range e.population {
		sol := make(knapsack.Solution, n)
		for j := range sol {
			sol[j] = uint8(e.rng.Intn(2))
		}
		sol = e.Repair(sol)
		e.population[i] = sol
		e.fitness[i] = e.EvaluateValue(sol)
		e.Observe(sol, e.fitness[i])
	}
}

// Step produces the next generation: elites carried over unchanged, the
// remaining slots filled pairwise by tournament selection, crossover,
// mutation and repair.
func (e *Engine) Step() {
	p := e.cfg.Population
	next := make([]knapsack.Solution, 0, p+1)

	// Elitism, ties broken by original position.
	order := make([]int, p)
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		return e.fitness[order[a]] > e.fitness[order[b]]
	})
	for i := 0; i < e.cfg.Elite; i++ {
		next = append(next, e.population[order[i]].Clone())
	}

	for len(next) < p {
		c1, c2 := e.crossover(e.population[e.tournament()], e.population[e.tournament()])
		e.mutate(c1)
		e.mutate(c2)
		next = append(next, e.Repair(c1), e.Repair(c2))
	}
	// Pairwise filling can overflow by one child.
	e.population = next[:p]

	for i, sol := range e.population {
		e.fitness[i] = e.EvaluateValue(sol)
		e.Observe(sol, e.fitness[i])
	}
}

// tournament picks distinct candidates uniformly and returns the index of
// the fittest.
func (e *Engine) tournament() int {
	k := tournamentSize
	if k > len(e.population) {
		k = len(e.population)
	}
	candidates := e.rng.Perm(len(e.population))[:k]

	best := candidates[0]
	for _, c := range candidates[1:] {
		if e.fitness[c] > e.fitness[best] {
			best = c
		}
	}
	return best
}

// crossover swaps the parents' tails at a single cut point in [1, n-1].
func (e *Engine) crossover(p1, p2 knapsack.Solution) (knapsack.Solution, knapsack.Solution) {
	c1 := p1.Clone()
	c2 := p2.Clone()
	n := len(p1)
	if n < 2 {
		return c1, c2
	}

	cut := 1 + e.rng.Intn(n-1)
	copy(c1[cut:], p2[cut:])
	copy(c2[cut:], p1[cut:])
	return c1, c2
}

// mutate flips each bit independently with the configured probability.
func (e *Engine) mutate(sol knapsack.Solution) {
	for i := range sol {
		if e.rng.Float64() < e.cfg.MutationRate {
			sol[i] ^= 1
		}
	}
}
