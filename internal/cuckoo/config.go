package cuckoo

import "fmt"

// Config holds the cuckoo-search engine parameters.
type Config struct {
	// Nests is the number of candidate solutions kept between iterations.
	Nests int

	// Abandon is the fraction of worst nests replaced with fresh random
	// ones at the end of every iteration.
	Abandon float64

	// Levy is the exponent of the heavy-tailed Lévy step distribution.
	Levy float64
}

// DefaultConfig returns the documented defaults.
func DefaultConfig() Config {
	return Config{
		Nests:   50,
		Abandon: 0.25,
		Levy:    1.5,
	}
}

func (c Config) Validate() error {
	if c.Nests <= 0 {
		return fmt.Errorf("nest count must be > 0 (got %d)", c.Nests)
	}
	if c.Abandon < 0 || c.Abandon > 1 {
		return fmt.Errorf("abandonment fraction must be in [0,1] (got %f)", c.Abandon)
	}
	if c.Levy <= 0 || c.Levy > 2 {
		return fmt.Errorf("levy exponent must be in (0,2] (got %f)", c.Levy)
	}
	return nil
}
