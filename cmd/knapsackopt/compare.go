package main

import (
	"fmt"
	"math/rand"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/cwbudde/knapsackopt/internal/bench"
	"github.com/cwbudde/knapsackopt/internal/opt"
)

var (
	cmpAlgos        string
	cmpInstance     string
	cmpItems        int
	cmpInstanceSeed int64
	cmpCapRatio     float64
	cmpRuns         int
	cmpIters        int
	cmpSeed         int64
	cmpOut          string
	cmpParams       = defaultEngineParams()
)

var compareCmd = &cobra.Command{
	Use:   "compare",
	Short: "Benchmark several algorithms on one instance",
	Long: `Runs each selected algorithm multiple times with consecutive seeds
on the same instance, prints a comparison table and optionally writes the
aggregated results to CSV.`,
	RunE: runCompare,
}

func init() {
	compareCmd.Flags().StringVar(&cmpAlgos, "algos", "GA,ACO,PSO,CS,MA", "Comma-separated algorithm names")
	compareCmd.Flags().StringVar(&cmpInstance, "instance", "", "Instance JSON file (overrides --items)")
	compareCmd.Flags().IntVar(&cmpItems, "items", 50, "Random instance: number of items")
	compareCmd.Flags().Int64Var(&cmpInstanceSeed, "instance_seed", 777, "Random instance: generator seed")
	compareCmd.Flags().Float64Var(&cmpCapRatio, "cap_ratio", 0.5, "Random instance: capacity as share of total weight")
	compareCmd.Flags().IntVar(&cmpRuns, "runs", 10, "Runs per algorithm")
	compareCmd.Flags().IntVar(&cmpIters, "iters", 200, "Optimizer iterations per run")
	compareCmd.Flags().Int64Var(&cmpSeed, "seed", 1000, "Base seed; run i uses seed+i")
	compareCmd.Flags().StringVar(&cmpOut, "out", "", "CSV output path (optional)")
	addEngineFlags(compareCmd, &cmpParams)

	rootCmd.AddCommand(compareCmd)
}

func runCompare(cmd *cobra.Command, args []string) error {
	problem, err := loadOrGenerate(cmpInstance, cmpItems, cmpInstanceSeed, cmpCapRatio)
	if err != nil {
		return err
	}

	registry, err := newRegistry(cmpParams)
	if err != nil {
		return err
	}

	names := strings.Split(cmpAlgos, ",")
	algorithms := make([]bench.Algorithm, 0, len(names))
	for _, raw := range names {
		name := strings.TrimSpace(raw)
		if name == "" {
			continue
		}
		if !registry.Has(name) {
			return fmt.Errorf("unknown algorithm %q (have %s)", name, strings.Join(registry.List(), ", "))
		}
		algorithms = append(algorithms, bench.Algorithm{
			Name: name,
			Factory: func(seed int64) (opt.Optimizer, error) {
				return registry.Get(name, problem, rand.New(rand.NewSource(seed)))
			},
		})
	}
	if len(algorithms) == 0 {
		return fmt.Errorf("no algorithms selected")
	}

	runner := bench.Runner{
		Runs:       cmpRuns,
		Iterations: cmpIters,
		BaseSeed:   cmpSeed,
	}

	summaries := make([]bench.Summary, 0, len(algorithms))
	for _, algo := range algorithms {
		summary, err := runner.RunAlgorithm(problem, algo)
		if err != nil {
			return fmt.Errorf("benchmark %s: %w", algo.Name, err)
		}
		summaries = append(summaries, summary)
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ALGO\tBEST\tWORST\tMEAN\tSTD\tTIME (MS)\tSUCCESS")
	for _, s := range summaries {
		fmt.Fprintf(w, "%s\t%.2f\t%.2f\t%.2f\t%.2f\t%.1f\t%.0f%%\n",
			s.Algo, s.BestValue, s.WorstValue, s.MeanValue, s.StdValue, s.TimeMeanMs, s.SuccessRate*100)
	}
	w.Flush()
	fmt.Printf("\nOptimum (DP): %.2f, %d runs x %d iterations per algorithm\n",
		summaries[0].Optimum, cmpRuns, cmpIters)

	if cmpOut != "" {
		if err := bench.WriteCSV(cmpOut, summaries); err != nil {
			return fmt.Errorf("failed to write CSV: %w", err)
		}
		fmt.Printf("Wrote %s\n", cmpOut)
	}

	return nil
}
