package bench

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
)

// WriteCSV writes the comparison table, one row per algorithm summary.
// Parent directories are created as needed.
func WriteCSV(path string, summaries []Summary) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create csv file: %w", err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	defer w.Flush()

	header := []string{
		"algo", "runs", "iterations",
		"best_value", "worst_value", "mean_value", "std_value",
		"time_mean_ms", "time_std_ms",
		"optimum", "success_rate",
	}
	if err := w.Write(header); err != nil {
		return err
	}

	for _, s := range summaries {
		row := []string{
			s.Algo,
			strconv.Itoa(s.Runs),
			strconv.Itoa(s.Iterations),
			ftoa(s.BestValue),
			ftoa(s.WorstValue),
			ftoa(s.MeanValue),
			ftoa(s.StdValue),
			ftoa(s.TimeMeanMs),
			ftoa(s.TimeStdMs),
			ftoa(s.Optimum),
			ftoa(s.SuccessRate),
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}
	return w.Error()
}

func ftoa(v float64) string {
	return strconv.FormatFloat(v, 'f', 6, 64)
}
