package main

import (
	"math/rand"

	"github.com/spf13/cobra"

	"github.com/cwbudde/knapsackopt/internal/aco"
	"github.com/cwbudde/knapsackopt/internal/cuckoo"
	"github.com/cwbudde/knapsackopt/internal/ga"
	"github.com/cwbudde/knapsackopt/internal/knapsack"
	"github.com/cwbudde/knapsackopt/internal/opt"
	"github.com/cwbudde/knapsackopt/internal/pso"
)

// engineParams collects the tunables of every engine so run, compare and
// serve can share one flag surface and one composition root.
type engineParams struct {
	ga     ga.Config
	aco    aco.Config
	pso    pso.Config
	cuckoo cuckoo.Config

	mayflyBurst int
	mayflyPop   int
}

func defaultEngineParams() engineParams {
	return engineParams{
		ga:          ga.DefaultConfig(),
		aco:         aco.DefaultConfig(),
		pso:         pso.DefaultConfig(),
		cuckoo:      cuckoo.DefaultConfig(),
		mayflyBurst: opt.DefaultMayflyBurst,
		mayflyPop:   opt.DefaultMayflyPop,
	}
}

// addEngineFlags registers per-engine tuning flags on a command, bound to
// the given params.
func addEngineFlags(cmd *cobra.Command, p *engineParams) {
	cmd.Flags().IntVar(&p.ga.Population, "ga_pop", p.ga.Population, "GA: population size")
	cmd.Flags().Float64Var(&p.ga.MutationRate, "ga_mut", p.ga.MutationRate, "GA: per-bit mutation probability")
	cmd.Flags().IntVar(&p.ga.Elite, "ga_elite", p.ga.Elite, "GA: elite individuals kept per generation")

	cmd.Flags().IntVar(&p.aco.Ants, "aco_ants", p.aco.Ants, "ACO: number of ants")
	cmd.Flags().Float64Var(&p.aco.Alpha, "aco_alpha", p.aco.Alpha, "ACO: pheromone exponent")
	cmd.Flags().Float64Var(&p.aco.Beta, "aco_beta", p.aco.Beta, "ACO: heuristic exponent")
	cmd.Flags().Float64Var(&p.aco.Rho, "aco_rho", p.aco.Rho, "ACO: evaporation rate")
	cmd.Flags().Float64Var(&p.aco.Q0, "aco_q0", p.aco.Q0, "ACO: greedy selection probability")

	cmd.Flags().IntVar(&p.pso.Particles, "pso_particles", p.pso.Particles, "PSO: swarm size")
	cmd.Flags().Float64Var(&p.pso.Inertia, "pso_inertia", p.pso.Inertia, "PSO: inertia weight")
	cmd.Flags().Float64Var(&p.pso.Cognitive, "pso_cognitive", p.pso.Cognitive, "PSO: cognitive coefficient")
	cmd.Flags().Float64Var(&p.pso.Social, "pso_social", p.pso.Social, "PSO: social coefficient")

	cmd.Flags().IntVar(&p.cuckoo.Nests, "cs_nests", p.cuckoo.Nests, "CS: number of nests")
	cmd.Flags().Float64Var(&p.cuckoo.Abandon, "cs_pa", p.cuckoo.Abandon, "CS: fraction of worst nests abandoned")
	cmd.Flags().Float64Var(&p.cuckoo.Levy, "cs_levy", p.cuckoo.Levy, "CS: Levy flight exponent")

	cmd.Flags().IntVar(&p.mayflyBurst, "ma_burst", p.mayflyBurst, "MA: mayfly iterations per step")
	cmd.Flags().IntVar(&p.mayflyPop, "ma_pop", p.mayflyPop, "MA: mayfly population size")
}

// newRegistry is the composition root: every engine the binary knows is
// registered here under its short algorithm name.
func newRegistry(p engineParams) (*opt.Registry, error) {
	registry := opt.NewRegistry()

	err := registry.Register("GA", func(problem *knapsack.Problem, rng *rand.Rand) (opt.Optimizer, error) {
		return ga.New(problem, p.ga, rng)
	})
	if err != nil {
		return nil, err
	}

	err = registry.Register("ACO", func(problem *knapsack.Problem, rng *rand.Rand) (opt.Optimizer, error) {
		return aco.New(problem, p.aco, rng)
	})
	if err != nil {
		return nil, err
	}

	err = registry.Register("PSO", func(problem *knapsack.Problem, rng *rand.Rand) (opt.Optimizer, error) {
		return pso.New(problem, p.pso, rng)
	})
	if err != nil {
		return nil, err
	}

	err = registry.Register("CS", func(problem *knapsack.Problem, rng *rand.Rand) (opt.Optimizer, error) {
		return cuckoo.New(problem, p.cuckoo, rng)
	})
	if err != nil {
		return nil, err
	}

	err = registry.Register("MA", func(problem *knapsack.Problem, rng *rand.Rand) (opt.Optimizer, error) {
		return opt.NewMayflyEngine(problem, p.mayflyBurst, p.mayflyPop, rng)
	})
	if err != nil {
		return nil, err
	}

	return registry, nil
}
