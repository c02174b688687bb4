// Package pso implements binarized particle-swarm search for the
// knapsack problem: real-valued velocities over 0/1 positions with a
// sigmoid sampling rule.
package pso

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/cwbudde/knapsackopt/internal/knapsack"
	"github.com/cwbudde/knapsackopt/internal/opt"
)

// Engine is the particle-swarm knapsack engine.
type Engine struct {
	*opt.Lifecycle
	cfg Config
	rng *rand.Rand

	positions  []knapsack.Solution
	velocities [][]float64
	pbest      []knapsack.Solution
	pbestValue []float64
	gbest      knapsack.Solution
	gbestValue float64
}

// New returns a particle-swarm engine for the problem with a validated
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

// Initialize scatters the swarm over random repaired positions with
// velocities uniform in [-1,1]; personal bests start at the initial
// positions and the global best at the best of those.
func (e *Engine) Initialize() {
	n := e.Problem().N()
	m := e.cfg.Particles
	e.ResetBest()

	e.positions = make([]knapsack.Solution, m)
	e.velocities = make([][]float64, m)
	e.pbest = make([]knapsack.Solution, m)
	e.pbestValue = make([]float64, m)
	e.gbest = nil
	e.gbestValue = math.Inf(-1)

	for i := 0; i < m; i++ {
		pos := make(knapsack.Solution, n)
		for d := range pos {
			pos[d] = uint8(e.rng.Intn(2))
		}
		pos = e.Repair(pos)

		vel := make([]float64, n)
		for d := range vel {
			vel[d] = -1 + 2*e.rng.Float64()
		}

		e.positions[i] = pos
		e.velocities[i] = vel
		e.pbest[i] = pos.Clone()
		e.pbestValue[i] = e.EvaluateValue(pos)

		if e.pbestValue[i] > e.gbestValue {
			e.gbest = pos.Clone()
			e.gbestValue = e.pbestValue[i]
		}
	}

	e.Observe(e.gbest, e.gbestValue)
}

// Step moves every particle: blend inertia with the cognitive and social
// pulls, sample new bits through the sigmoid of the velocity, repair, and
// cascade any improvement through personal best, global best and the
// shared best record.
func (e *Engine) Step() {
	for i := range e.positions {
		pos := e.positions[i]
		vel := e.velocities[i]
		r1 := e.rng.Float64()
		r2 := e.rng.Float64()

		for d := range vel {
			x := float64(pos[d])
			cognitive := e.cfg.Cognitive * r1 * (float64(e.pbest[i][d]) - x)
			social := e.cfg.Social * r2 * (float64(e.gbest[d]) - x)
			vel[d] = e.cfg.Inertia*vel[d] + cognitive + social
		}

		for d := range pos {
			if e.rng.Float64() < sigmoid(vel[d]) {
				pos[d] = 1
			} else {
				pos[d] = 0
			}
		}
		pos = e.Repair(pos)
		e.positions[i] = pos

		value := e.EvaluateValue(pos)
		if value > e.pbestValue[i] {
			e.pbest[i] = pos.Clone()
			e.pbestValue[i] = value

			if value > e.gbestValue {
				e.gbest = pos.Clone()
				e.gbestValue = value
				e.Observe(e.gbest, e.gbestValue)
			}
		}
	}
}

func sigmoid(x float64) float64 {
	return 1 / (1 + math.Exp(-x))
}
