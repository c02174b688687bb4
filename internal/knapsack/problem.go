package knapsack

import "fmt"

// Problem is an immutable 0/1 knapsack instance: parallel weight/value
// slices, a capacity, and the derived value/weight ratio per item.
// Treat all fields as read-only after construction.
type Problem struct {
	Weights  []float64
	Values   []float64
	Capacity float64

	// Ratios[i] = Values[i]/Weights[i], used by construction heuristics
	// and by greedy repair.
	Ratios []float64
}

// New validates the instance data and builds a Problem.
// Weights and values must be parallel slices of positive reals and the
// capacity must not be negative.
func New(weights, values []float64, capacity float64) (*Problem, error) {
	if len(weights) != len(values) {
		return nil, fmt.Errorf("weights and values must have equal length (got %d and %d)", len(weights), len(values))
	}
	if len(weights) == 0 {
		return nil, fmt.Errorf("instance must contain at least one item")
	}
	if capacity < 0 {
		return nil, fmt.Errorf("capacity must be >= 0 (got %f)", capacity)
	}
	for i, w := range weights {
		if w <= 0 {
			return nil, fmt.Errorf("weights[%d] must be > 0 (got %f)", i, w)
		}
	}
	for i, v := range values {
		if v <= 0 {
			return nil, fmt.Errorf("values[%d] must be > 0 (got %f)", i, v)
		}
	}

	p := &Problem{
		Weights:  append([]float64(nil), weights...),
		Values:   append([]float64(nil), values...),
		Capacity: capacity,
		Ratios:   make([]float64, len(weights)),
	}
	for i := range p.Ratios {
		p.Ratios[i] = p.Values[i] / p.Weights[i]
	}
	return p, nil
}

// N returns the number of items.
func (p *Problem) N() int {
	return len(p.Weights)
}

// Evaluate sums the values and weights of the selected items.
// When the total weight exceeds the capacity the value is clamped to 0;
// this is the evaluation-time penalty, distinct from repair.
func (p *Problem) Evaluate(s Solution) (value, weight float64) {
	for i, bit := range s {
		if bit == 1 {
			value += p.Values[i]
			weight += p.Weights[i]
		}
	}
	if weight > p.Capacity {
		value = 0
	}
	return value, weight
}

// IsValid reports whether the total weight of the selected items fits
// within the capacity.
func (p *Problem) IsValid(s Solution) bool {
	weight := 0.0
	for i, bit := range s {
		if bit == 1 {
			weight += p.Weights[i]
		}
	}
	return weight <= p.Capacity
}

// BestPossibleValue computes the exact optimum by dynamic programming over
// an integer-truncated capacity axis, in O(n * capacity) time.
//
// Capacity and item weights are truncated to integers for table indexing,
// so for non-integral inputs the result is an approximation of the true
// optimum. Practical only for bounded integer-like capacities.
func (p *Problem) BestPossibleValue() float64 {
	capInt := int(p.Capacity)
	prev := make([]float64, capInt+1)
	cur := make([]float64, capInt+1)

	for i := 1; i <= p.N(); i++ {
		w := p.Weights[i-1]
		v := p.Values[i-1]
		for c := 0; c <= capInt; c++ {
			cur[c] = prev[c]
			if w <= float64(c) {
				if alt := prev[c-int(w)] + v; alt > cur[c] {
					cur[c] = alt
				}
			}
		}
		prev, cur = cur, prev
	}
	return prev[capInt]
}
