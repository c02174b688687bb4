package ga

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
		{"population of one", Config{Population: 1, MutationRate: 0.1, Elite: 0}, false},
		{"negative mutation", Config{Population: 10, MutationRate: -0.1, Elite: 0}, false},
		{"mutation above one", Config{Population: 10, MutationRate: 1.1, Elite: 0}, false},
		{"elite above population", Config{Population: 10, MutationRate: 0.1, Elite: 11}, false},
		{"no elitism", Config{Population: 10, MutationRate: 0.1, Elite: 0}, true},
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

func TestNewRejectsBadInput(t *testing.T) {
	p := testProblem(t)

	if _, err := New(p, Config{Population: 0}, rand.New(rand.NewSource(1))); err == nil {
		t.Error("Expected error for invalid config")
	}
	if _, err := New(p, DefaultConfig(), nil); err == nil {
		t.Error("Expected error for nil random source")
	}
}

func TestInitializeSeedsBestRecord(t *testing.T) {
	p := testProblem(t)
	e, err := New(p, DefaultConfig(), rand.New(rand.NewSource(42)))
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	e.Initialize()

	best, value := e.Best()
	if !p.IsValid(best) {
		t.Fatal("Initial best must be feasible")
	}
	if value <= 0 {
		t.Errorf("Initial best value = %f, want > 0", value)
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

	run := func(seed int64) float64 {
		e, err := New(p, DefaultConfig(), rand.New(rand.NewSource(seed)))
		if err != nil {
			t.Fatalf("New failed: %v", err)
		}
		_, value, _, err := e.Run(20)
		if err != nil {
			t.Fatalf("Run failed: %v", err)
		}
		return value
	}

	if run(7) != run(7) {
		t.Error("Same seed must reproduce the same result")
	}
}

func TestStepKeepsPopulationSize(t *testing.T) {
	p := testProblem(t)
	cfg := Config{Population: 31, MutationRate: 0.1, Elite: 4}
	e, err := New(p, cfg, rand.New(rand.NewSource(3)))
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	e.Initialize()
	for i := 0; i < 5; i++ {
		e.Step()
		if len(e.population) != cfg.Population {
			t.Fatalf("Population size %d after step %d, want %d", len(e.population), i, cfg.Population)
		}
	}
}

func TestLargerInstanceStaysFeasible(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	p := knapsack.RandomProblem(80, 50, 50, 0.4, rng)

	e, err := New(p, DefaultConfig(), rand.New(rand.NewSource(12)))
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	best, value, _, err := e.Run(30)
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if !p.IsValid(best) {
		t.Fatal("Best solution must be feasible")
	}
	if value <= 0 {
		t.Errorf("Best value = %f, want > 0", value)
	}
}
