package aco

import "fmt"

// Config holds the ant-colony engine parameters.
type Config struct {
	// Ants is the number of solutions constructed per iteration.
	Ants int

	// Alpha is the pheromone exponent in the desirability score.
	Alpha float64

	// Beta is the heuristic exponent in the desirability score.
	Beta float64

	// Rho is the pheromone evaporation rate.
	Rho float64

	// Q0 is the probability of the greedy (max-score) choice; otherwise
	// the next item is drawn roulette-style proportional to score.
	Q0 float64
}

// DefaultConfig returns the documented defaults.
func DefaultConfig() Config {
	return Config{
		Ants:  50,
		Alpha: 1.0,
		Beta:  2.0,
		Rho:   0.1,
		Q0:    0.9,
	}
}

func (c Config) Validate() error {
	if c.Ants <= 0 {
		return fmt.Errorf("ant count must be > 0 (got %d)", c.Ants)
	}
	if c.Alpha < 0 {
		return fmt.Errorf("alpha must be >= 0 (got %f)", c.Alpha)
	}
	if c.Beta < 0 {
		return fmt.Errorf("beta must be >= 0 (got %f)", c.Beta)
	}
	if c.Rho < 0 || c.Rho > 1 {
		return fmt.Errorf("rho must be in [0,1] (got %f)", c.Rho)
	}
	if c.Q0 < 0 || c.Q0 > 1 {
		return fmt.Errorf("q0 must be in [0,1] (got %f)", c.Q0)
	}
	return nil
}
