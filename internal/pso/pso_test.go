package pso

import (
	"math/rand"
	"testing"

	"github.com/cwbudde/knapsackopt/internal/knapsack"
)

func testProblem(t *testing.T) *knapsack.Problem {
	t.Helper()

	p, err := knapsack.New([]float64{2, 3, 4, 5}, []float64{3, 4, 5, 6}, 5)
	if err != nil {
		t.Fatalf("Failed to build instance: %v", err)
	}
	return p
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name string
		cfg  Config
		ok   bool
	}{
		{"defaults", DefaultConfig(), true},
		{"no particles", Config{Particles: 0, Inertia: 0.7, Cognitive: 1.5, Social: 1.5}, false},
		{"negative inertia", Config{Particles: 10, Inertia: -0.1, Cognitive: 1.5, Social: 1.5}, false},
		{"negative cognitive", Config{Particles: 10, Inertia: 0.7, Cognitive: -1, Social: 1.5}, false},
		{"negative social", Config{Particles: 10, Inertia: 0.7, Cognitive: 1.5, Social: -1}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.ok && err != nil {
				t.Errorf("Unexpected error: %v", err)
			}
			if !tt.ok && err == nil {
				t.Error("Expected validation error")
			}
		})
	}
}

func TestInitializeBuildsSwarm(t *testing.T) {
	p := testProblem(t)
	e, err := New(p, DefaultConfig(), rand.New(rand.NewSource(4)))
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	e.Initialize()

	if len(e.positions) != e.cfg.Particles {
		t.Fatalf("Swarm size %d, want %d", len(e.positions), e.cfg.Particles)
	}
	for i, pos := range e.positions {
		if !p.IsValid(pos) {
			t.Fatalf("Particle %d starts infeasible", i)
		}
	}
	if e.gbest == nil {
		t.Fatal("Global best must be seeded at initialization")
	}

	best, value := e.Best()
	if value != e.gbestValue {
		t.Errorf("Best record %f out of sync with gbest %f", value, e.gbestValue)
	}
	if !p.IsValid(best) {
		t.Error("Initial best must be feasible")
	}
}

func TestStepKeepsParticlesFeasible(t *testing.T) {
	p := testProblem(t)
	e, err := New(p, DefaultConfig(), rand.New(rand.NewSource(4)))
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	e.Initialize()
	for s := 0; s < 10; s++ {
		e.Step()
		for i, pos := range e.positions {
			if !p.IsValid(pos) {
				t.Fatalf("Particle %d infeasible after step %d", i, s)
			}
		}
	}
}

func TestPersonalBestsNeverDegrade(t *testing.T) {
	p := testProblem(t)
	e, err := New(p, DefaultConfig(), rand.New(rand.NewSource(8)))
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	e.Initialize()
	before := append([]float64(nil), e.pbestValue...)
	e.Step()

	for i := range before {
		if e.pbestValue[i] < before[i] {
			t.Fatalf("Personal best %d degraded from %f to %f", i, before[i], e.pbestValue[i])
		}
	}
}

func TestRunFindsOptimum(t *testing.T) {
	p := testProblem(t)
	e, err := New(p, DefaultConfig(), rand.New(rand.NewSource(42)))
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	best, value, history, err := e.Run(50)
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	if len(history) != 50 {
		t.Fatalf("History length %d, want 50", len(history))
	}
	for i := 1; i < len(history); i++ {
		if history[i] < history[i-1] {
			t.Fatalf("History must be non-decreasing, dropped at %d", i)
		}
	}
	if !p.IsValid(best) {
		t.Fatal("Best solution must be feasible")
	}
	if value != p.BestPossibleValue() {
		t.Errorf("Best value = %f, want DP optimum %f", value, p.BestPossibleValue())
	}
}

func TestRunReproducible(t *testing.T) {
	p := testProblem(t)

	run := func() float64 {
		e, err := New(p, DefaultConfig(), rand.New(rand.NewSource(13)))
		if err != nil {
			t.Fatalf("New failed: %v", err)
		}
		_, value, _, err := e.Run(15)
		if err != nil {
			t.Fatalf("Run failed: %v", err)
		}
		return value
	}

	if run() != run() {
		t.Error("Same seed must reproduce the same result")
	}
}
