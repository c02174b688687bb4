package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/cwbudde/knapsackopt/internal/store"
)

var resultsDataDir string

var resultsCmd = &cobra.Command{
	Use:   "results",
	Short: "Manage persisted optimization results",
	Long: `Inspect results saved by run --save or by the server: list all
stored runs, show one in full, or delete it.`,
}

var listResultsCmd = &cobra.Command{
	Use:   "list",
	Short: "List all stored results",
	RunE:  runListResults,
}

var showResultCmd = &cobra.Command{
	Use:   "show <run-id>",
	Short: "Show one result in detail",
	Args:  cobra.ExactArgs(1),
	RunE:  runShowResult,
}

var deleteResultCmd = &cobra.Command{
	Use:   "delete <run-id>",
	Short: "Delete a stored result and its trace",
	Args:  cobra.ExactArgs(1),
	RunE:  runDeleteResult,
}

func init() {
	rootCmd.AddCommand(resultsCmd)
	resultsCmd.AddCommand(listResultsCmd)
	resultsCmd.AddCommand(showResultCmd)
	resultsCmd.AddCommand(deleteResultCmd)

	resultsCmd.PersistentFlags().StringVar(&resultsDataDir, "data-dir", "./data", "Base directory for persisted results")
}

func runListResults(cmd *cobra.Command, args []string) error {
	resultStore, err := store.NewFSStore(resultsDataDir)
	if err != nil {
		return fmt.Errorf("failed to open result store: %w", err)
	}

	infos, err := resultStore.ListResults()
	if err != nil {
		return fmt.Errorf("failed to list results: %w", err)
	}

	if len(infos) == 0 {
		fmt.Println("No results found.")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "RUN ID\tALGO\tITEMS\tITERATIONS\tBEST\tOPTIMUM\tTIMESTAMP")
	for _, info := range infos {
		displayID := info.RunID
		if len(displayID) > 12 {
			displayID = displayID[:12] + "..."
		}
		fmt.Fprintf(w, "%s\t%s\t%d\t%d\t%.2f\t%.2f\t%s\n",
			displayID,
			info.Algorithm,
			info.Items,
			info.Iterations,
			info.BestValue,
			info.Optimum,
			info.Timestamp.Format("2006-01-02 15:04:05"),
		)
	}
	w.Flush()

	fmt.Printf("\nTotal results: %d\n", len(infos))
	return nil
}

func runShowResult(cmd *cobra.Command, args []string) error {
	resultStore, err := store.NewFSStore(resultsDataDir)
	if err != nil {
		return fmt.Errorf("failed to open result store: %w", err)
	}

	runID := args[0]
	result, err := resultStore.LoadResult(runID)
	if err != nil {
		return err
	}

	fmt.Printf("Run: %s\n", result.RunID)
	fmt.Printf("Algorithm: %s\n", result.Config.Algorithm)
	fmt.Printf("Saved: %s\n\n", result.Timestamp.Format("2006-01-02 15:04:05"))

	fmt.Println("Instance:")
	if result.Config.InstancePath != "" {
		fmt.Printf("  File: %s\n", result.Config.InstancePath)
	} else {
		fmt.Printf("  Random: %d items, seed %d, capacity ratio %.2f\n",
			result.Config.Items, result.Config.InstanceSeed, result.Config.CapacityRatio)
	}
	fmt.Printf("  Iterations: %d, engine seed: %d\n\n", result.Config.Iterations, result.Config.Seed)

	selected := 0
	for _, bit := range result.BestSolution {
		if bit == 1 {
			selected++
		}
	}
	fmt.Println("Best solution:")
	fmt.Printf("  Value: %.2f", result.BestValue)
	if result.Optimum > 0 {
		fmt.Printf(" (%.1f%% of DP optimum %.2f)", result.BestValue/result.Optimum*100, result.Optimum)
	}
	fmt.Println()
	fmt.Printf("  Weight: %.2f\n", result.BestWeight)
	fmt.Printf("  Items selected: %d of %d\n", selected, len(result.BestSolution))

	if trace, err := store.NewTraceReader(resultStore.BaseDir(), runID); err == nil {
		defer trace.Close()
		if entries, err := trace.ReadAll(); err == nil && len(entries) > 0 {
			first := entries[0].BestValue
			last := entries[len(entries)-1].BestValue
			fmt.Printf("\nTrace: %d entries, best value %.2f -> %.2f\n", len(entries), first, last)
		}
	}

	return nil
}

func runDeleteResult(cmd *cobra.Command, args []string) error {
	resultStore, err := store.NewFSStore(resultsDataDir)
	if err != nil {
		return fmt.Errorf("failed to open result store: %w", err)
	}

	runID := args[0]
	if err := resultStore.DeleteResult(runID); err != nil {
		return err
	}

	fmt.Printf("Deleted run %s\n", runID)
	return nil
}
