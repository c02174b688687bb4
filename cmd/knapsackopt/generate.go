package main

import (
	"fmt"
	"math/rand"

	"github.com/spf13/cobra"

	"github.com/cwbudde/knapsackopt/internal/knapsack"
)

var (
	genOut       string
	genItems     int
	genSeed      int64
	genMaxWeight float64
	genMaxValue  float64
	genCapRatio  float64
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate a random instance file",
	Long: `Generates a random knapsack instance and writes it as JSON, so the
same instance can be fed to run and compare across machines.`,
	RunE: runGenerate,
}

func init() {
	generateCmd.Flags().StringVar(&genOut, "out", "instance.json", "Output file path")
	generateCmd.Flags().IntVar(&genItems, "items", 50, "Number of items")
	generateCmd.Flags().Int64Var(&genSeed, "seed", 777, "Generator seed")
	generateCmd.Flags().Float64Var(&genMaxWeight, "max_weight", 100, "Upper bound for item weights")
	generateCmd.Flags().Float64Var(&genMaxValue, "max_value", 100, "Upper bound for item values")
	generateCmd.Flags().Float64Var(&genCapRatio, "cap_ratio", 0.5, "Capacity as share of total weight")

	rootCmd.AddCommand(generateCmd)
}

func runGenerate(cmd *cobra.Command, args []string) error {
	if genItems <= 0 {
		return fmt.Errorf("--items must be positive")
	}
	if genMaxWeight < 1 || genMaxValue < 1 || genCapRatio <= 0 {
		return fmt.Errorf("bounds must satisfy max_weight >= 1, max_value >= 1, cap_ratio > 0")
	}

	rng := rand.New(rand.NewSource(genSeed))
	problem := knapsack.RandomProblem(genItems, genMaxWeight, genMaxValue, genCapRatio, rng)

	if err := knapsack.WriteFile(genOut, problem); err != nil {
		return fmt.Errorf("failed to write instance: %w", err)
	}

	fmt.Printf("Wrote %s (%d items, capacity %.2f, DP optimum %.2f)\n",
		genOut, problem.N(), problem.Capacity, problem.BestPossibleValue())
	return nil
}
