package ga

import "fmt"

// Config holds the genetic engine parameters.
type Config struct {
	// Population is the number of individuals per generation.
	Population int

	// MutationRate is the independent per-bit flip probability applied to
	// every child.
	MutationRate float64

	// Elite is the number of top individuals copied unchanged into the
	// next generation.
	Elite int
}

// DefaultConfig returns the documented defaults.
func DefaultConfig() Config {
	return Config{
		Population:   100,
		MutationRate: 0.1,
		Elite:        10,
	}
}

func (c Config) Validate() error {
	if c.Population <= 1 {
		return fmt.Errorf("population must be > 1 (got %d)", c.Population)
	}
	if c.MutationRate < 0 || c.MutationRate > 1 {
		return fmt.Errorf("mutation rate must be in [0,1] (got %f)", c.MutationRate)
	}
	if c.Elite < 0 || c.Elite > c.Population {
		return fmt.Errorf("elite count must be in [0, population] (got %d)", c.Elite)
	}
	return nil
}
