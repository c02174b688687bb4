package main

import (
	"fmt"
	"log/slog"
	"math/rand"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/cwbudde/knapsackopt/internal/knapsack"
	"github.com/cwbudde/knapsackopt/internal/store"
)

var (
	runAlgo         string
	runInstance     string
	runItems        int
	runInstanceSeed int64
	runCapRatio     float64
	runIters        int
	runSeed         int64
	runSave         bool
	runDataDir      string
	runParams       = defaultEngineParams()
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run one optimizer on one instance",
	Long: `Runs a single optimizer on a knapsack instance, reports the best
solution found against the exact DP optimum, and optionally persists the
result and convergence trace.`,
	RunE: runOptimization,
}

func init() {
	runCmd.Flags().StringVar(&runAlgo, "algo", "GA", "Algorithm: GA, ACO, PSO, CS, MA")
	runCmd.Flags().StringVar(&runInstance, "instance", "", "Instance JSON file (overrides --items)")
	runCmd.Flags().IntVar(&runItems, "items", 50, "Random instance: number of items")
	runCmd.Flags().Int64Var(&runInstanceSeed, "instance_seed", 777, "Random instance: generator seed")
	runCmd.Flags().Float64Var(&runCapRatio, "cap_ratio", 0.5, "Random instance: capacity as share of total weight")
	runCmd.Flags().IntVar(&runIters, "iters", 200, "Optimizer iterations")
	runCmd.Flags().Int64Var(&runSeed, "seed", 42, "Random seed for the engine")
	runCmd.Flags().BoolVar(&runSave, "save", false, "Persist result and trace under --data-dir")
	runCmd.Flags().StringVar(&runDataDir, "data-dir", "./data", "Base directory for persisted results")
	addEngineFlags(runCmd, &runParams)

	rootCmd.AddCommand(runCmd)
}

func runOptimization(cmd *cobra.Command, args []string) error {
	problem, err := loadOrGenerate(runInstance, runItems, runInstanceSeed, runCapRatio)
	if err != nil {
		return err
	}

	registry, err := newRegistry(runParams)
	if err != nil {
		return err
	}

	engine, err := registry.Get(runAlgo, problem, rand.New(rand.NewSource(runSeed)))
	if err != nil {
		return err
	}

	optimum := problem.BestPossibleValue()
	slog.Info("Starting optimization",
		"algo", runAlgo,
		"items", problem.N(),
		"capacity", problem.Capacity,
		"iters", runIters,
		"optimum", optimum,
	)

	start := time.Now()
	best, value, history, err := engine.Run(runIters)
	if err != nil {
		return err
	}
	elapsed := time.Since(start)

	_, weight := problem.Evaluate(best)
	gap := 0.0
	if optimum > 0 {
		gap = (optimum - value) / optimum * 100
	}

	slog.Info("Optimization complete",
		"elapsed", elapsed,
		"best_value", value,
		"best_weight", weight,
		"optimum", optimum,
		"gap_percent", fmt.Sprintf("%.2f", gap),
	)

	fmt.Printf("%s: value %.2f / optimum %.2f (gap %.2f%%), weight %.2f / capacity %.2f, %d items selected\n",
		runAlgo, value, optimum, gap, weight, problem.Capacity, best.Count())

	if !runSave {
		return nil
	}

	resultStore, err := store.NewFSStore(runDataDir)
	if err != nil {
		return fmt.Errorf("failed to create result store: %w", err)
	}

	runID := uuid.New().String()
	config := store.JobConfig{
		Algorithm:     runAlgo,
		InstancePath:  runInstance,
		Items:         runItems,
		InstanceSeed:  runInstanceSeed,
		CapacityRatio: runCapRatio,
		Iterations:    runIters,
		Seed:          runSeed,
	}
	result := store.NewRunResult(runID, best, value, weight, optimum, runIters, config)
	if err := resultStore.SaveResult(runID, result); err != nil {
		return fmt.Errorf("failed to save result: %w", err)
	}

	trace, err := store.NewTraceWriter(runDataDir, runID, false)
	if err != nil {
		return fmt.Errorf("failed to open trace: %w", err)
	}
	defer trace.Close()
	now := time.Now()
	for i, v := range history {
		if err := trace.Write(store.TraceEntry{Iteration: i + 1, BestValue: v, Timestamp: now}); err != nil {
			return fmt.Errorf("failed to write trace: %w", err)
		}
	}

	fmt.Printf("Saved run %s under %s\n", runID, runDataDir)
	return nil
}

// loadOrGenerate reads an instance file when a path is given, otherwise
// generates a reproducible random instance.
func loadOrGenerate(path string, items int, instanceSeed int64, capRatio float64) (*knapsack.Problem, error) {
	if path != "" {
		return knapsack.ReadFile(path)
	}
	if items <= 0 {
		return nil, fmt.Errorf("need --instance or a positive --items")
	}
	rng := rand.New(rand.NewSource(instanceSeed))
	return knapsack.RandomProblem(items, 100, 100, capRatio, rng), nil
}
