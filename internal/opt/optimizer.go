package opt

import "github.com/cwbudde/knapsackopt/internal/knapsack"

// Stepper is the engine-specific half of an optimizer: building the
// starting population and advancing it by one generation.
type Stepper interface {
	// Initialize builds the engine's starting population state from the
	// problem and seeds the best record from it.
	Initialize()

	// Step advances the population state by exactly one generation and
	// records any strict improvement of the best solution.
	Step()
}

// Optimizer is the lifecycle every search engine implements. Run is
// provided by the shared Lifecycle; Initialize and Step are the engine's
// own update rule.
type Optimizer interface {
	Stepper

	// Run calls Initialize once, then Step exactly maxIterations times,
	// snapshotting the best value after every step. It returns the best
	// solution found, its value, and the per-iteration history.
	Run(maxIterations int) (knapsack.Solution, float64, []float64, error)

	// Best returns the best solution observed so far and its value,
	// degrading to the all-zero solution before anything was observed.
	Best() (knapsack.Solution, float64)
}
