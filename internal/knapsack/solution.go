package knapsack

// Solution is a fixed-length 0/1 vector over item indices.
// A 1 at index i means item i is packed.
type Solution []uint8

// Clone returns an independent copy of the solution.
func (s Solution) Clone() Solution {
	out := make(Solution, len(s))
	copy(out, s)
	return out
}

// Count returns the number of selected items.
func (s Solution) Count() int {
	n := 0
	for _, bit := range s {
		if bit == 1 {
			n++
		}
	}
	return n
}
