package opt

import (
	"math"

	"github.com/cwbudde/knapsackopt/internal/knapsack"
)

// GreedyRepair restores feasibility by repeatedly deselecting the selected
// item with the lowest static value/weight ratio until the solution fits.
// Feasible input is returned unchanged.
//
// The ratio is the one computed at construction, not one recomputed
// against the remaining capacity, so the removal order is fixed and
// reproducible even when a smarter choice would exist.
func GreedyRepair(p *knapsack.Problem, s knapsack.Solution) knapsack.Solution {
	if p.IsValid(s) {
		return s
	}

	repaired := s.Clone()
	for !p.IsValid(repaired) {
		worst := -1
		worstRatio := math.Inf(1)
		for i, bit := range repaired {
			if bit == 1 && p.Ratios[i] < worstRatio {
				worst = i
				worstRatio = p.Ratios[i]
			}
		}
		if worst < 0 {
			break
		}
		repaired[worst] = 0
	}
	return repaired
}
