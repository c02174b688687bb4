package knapsack

import "math/rand"

// RandomProblem generates a random instance with n items. Weights and
// values are drawn uniformly from [1, maxWeight] and [1, maxValue]; the
// capacity is capacityRatio times the total weight, so roughly that share
// of the items fits.
func RandomProblem(n int, maxWeight, maxValue, capacityRatio float64, rng *rand.Rand) *Problem {
	if rng == nil {
		panic("nil random source")
	}
	if n <= 0 {
		panic("item count must be > 0")
	}
	if maxWeight < 1 || maxValue < 1 || capacityRatio <= 0 {
		panic("invalid instance bounds")
	}

	weights := make([]float64, n)
	values := make([]float64, n)
	totalWeight := 0.0
	for i := 0; i < n; i++ {
		weights[i] = 1 + rng.Float64()*(maxWeight-1)
		values[i] = 1 + rng.Float64()*(maxValue-1)
		totalWeight += weights[i]
	}

	p, err := New(weights, values, totalWeight*capacityRatio)
	if err != nil {
		panic(err)
	}
	return p
}
