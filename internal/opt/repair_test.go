package opt

import (
	"math/rand"
	"testing"

	"github.com/cwbudde/knapsackopt/internal/knapsack"
)

func TestGreedyRepairFeasibleUnchanged(t *testing.T) {
	p := testProblem(t)
	s := knapsack.Solution{1, 1, 0, 0}

	repaired := GreedyRepair(p, s)
	if &repaired[0] != &s[0] {
		t.Error("Feasible solution must be returned without cloning")
	}
}

func TestGreedyRepairRemovesWorstRatioFirst(t *testing.T) {
	p := testProblem(t)

	// Ratios: 1.5, 1.33, 1.25, 1.2. Full selection weighs 14 against
	// capacity 5, so items 3, 2 and 1 go in ascending ratio order.
	s := knapsack.Solution{1, 1, 1, 1}
	repaired := GreedyRepair(p, s)

	if !p.IsValid(repaired) {
		t.Fatal("Repaired solution must be feasible")
	}
	want := knapsack.Solution{1, 1, 0, 0}
	for i := range want {
		if repaired[i] != want[i] {
			t.Fatalf("Repaired = %v, want %v", repaired, want)
		}
	}

	// The input must stay untouched.
	if s.Count() != 4 {
		t.Error("GreedyRepair must not mutate its input")
	}
}

func TestGreedyRepairTieBreaksOnFirstIndex(t *testing.T) {
	p, err := knapsack.New([]float64{2, 2, 2}, []float64{4, 4, 4}, 2)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	repaired := GreedyRepair(p, knapsack.Solution{1, 1, 1})
	want := knapsack.Solution{0, 0, 1}
	for i := range want {
		if repaired[i] != want[i] {
			t.Fatalf("Repaired = %v, want %v (equal ratios drop lowest index first)", repaired, want)
		}
	}
}

func TestGreedyRepairRandomSolutions(t *testing.T) {
	rng := rand.New(rand.NewSource(99))
	p := knapsack.RandomProblem(60, 50, 50, 0.3, rng)

	for trial := 0; trial < 50; trial++ {
		s := make(knapsack.Solution, p.N())
		for i := range s {
			s[i] = uint8(rng.Intn(2))
		}
		repaired := GreedyRepair(p, s)
		if !p.IsValid(repaired) {
			t.Fatalf("trial %d: repaired solution infeasible", trial)
		}
	}
}
