package pso

import "fmt"

// Config holds the particle-swarm engine parameters.
type Config struct {
	// Particles is the swarm size.
	Particles int

	// Inertia weights the previous velocity in the update rule.
	Inertia float64

	// Cognitive scales the pull toward each particle's personal best.
	Cognitive float64

	// Social scales the pull toward the swarm's global best.
	Social float64
}

// DefaultConfig returns the documented defaults.
func DefaultConfig() Config {
	return Config{
		Particles: 50,
		Inertia:   0.7,
		Cognitive: 1.5,
		Social:    1.5,
	}
}

func (c Config) Validate() error {
	if c.Particles <= 0 {
		return fmt.Errorf("particle count must be > 0 (got %d)", c.Particles)
	}
	if c.Inertia < 0 {
		return fmt.Errorf("inertia must be >= 0 (got %f)", c.Inertia)
	}
	if c.Cognitive < 0 {
		return fmt.Errorf("cognitive coefficient must be >= 0 (got %f)", c.Cognitive)
	}
	if c.Social < 0 {
		return fmt.Errorf("social coefficient must be >= 0 (got %f)", c.Social)
	}
	return nil
}
