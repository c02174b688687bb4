package store

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"
)

// setupTestStore creates a temporary directory and returns an FSStore for testing.
func setupTestStore(t *testing.T) (*FSStore, string) {
	t.Helper()

	tempDir := t.TempDir()
	store, err := NewFSStore(tempDir)
	if err != nil {
		t.Fatalf("Failed to create test store: %v", err)
	}

	return store, tempDir
}

// createTestResult creates a run result with test data.
func createTestResult(runID string) *RunResult {
	return NewRunResult(
		runID,
		[]uint8{1, 1, 0, 0},
		7.0,
		5.0,
		7.0,
		100,
		JobConfig{
			Algorithm:     "GA",
			Items:         4,
			InstanceSeed:  777,
			CapacityRatio: 0.5,
			Iterations:    100,
			Seed:          42,
		},
	)
}

func TestNewFSStore(t *testing.T) {
	tempDir := filepath.Join(t.TempDir(), "nested", "store")

	store, err := NewFSStore(tempDir)
	if err != nil {
		t.Fatalf("NewFSStore failed: %v", err)
	}
	if store.BaseDir() != tempDir {
		t.Errorf("BaseDir = %q, want %q", store.BaseDir(), tempDir)
	}

	if _, err := os.Stat(tempDir); os.IsNotExist(err) {
		t.Fatal("Base directory was not created")
	}
}

func TestSaveAndLoadResult(t *testing.T) {
	store, tempDir := setupTestStore(t)

	runID := "test-run-123"
	result := createTestResult(runID)

	if err := store.SaveResult(runID, result); err != nil {
		t.Fatalf("SaveResult failed: %v", err)
	}

	expectedPath := filepath.Join(tempDir, "runs", runID, "result.json")
	if _, err := os.Stat(expectedPath); os.IsNotExist(err) {
		t.Fatalf("Result file was not created at %s", expectedPath)
	}

	loaded, err := store.LoadResult(runID)
	if err != nil {
		t.Fatalf("LoadResult failed: %v", err)
	}

	if loaded.RunID != runID {
		t.Errorf("RunID = %q, want %q", loaded.RunID, runID)
	}
	if loaded.BestValue != 7.0 || loaded.BestWeight != 5.0 || loaded.Optimum != 7.0 {
		t.Errorf("Loaded numbers differ: %+v", loaded)
	}
	if len(loaded.BestSolution) != 4 || loaded.BestSolution[0] != 1 {
		t.Errorf("BestSolution = %v, want [1 1 0 0]", loaded.BestSolution)
	}
	if loaded.Config.Algorithm != "GA" || loaded.Config.Seed != 42 {
		t.Errorf("Config differs after round trip: %+v", loaded.Config)
	}
}

func TestSaveResultOverwrites(t *testing.T) {
	store, _ := setupTestStore(t)

	runID := "test-run-overwrite"
	first := createTestResult(runID)
	if err := store.SaveResult(runID, first); err != nil {
		t.Fatalf("First SaveResult failed: %v", err)
	}

	second := createTestResult(runID)
	second.BestValue = 9.0
	if err := store.SaveResult(runID, second); err != nil {
		t.Fatalf("Second SaveResult failed: %v", err)
	}

	loaded, err := store.LoadResult(runID)
	if err != nil {
		t.Fatalf("LoadResult failed: %v", err)
	}
	if loaded.BestValue != 9.0 {
		t.Errorf("BestValue = %f, want the overwritten 9.0", loaded.BestValue)
	}
}

func TestSaveResultValidation(t *testing.T) {
	store, _ := setupTestStore(t)

	if err := store.SaveResult("", createTestResult("x")); err == nil {
		t.Error("Expected error for empty runID")
	}
	if err := store.SaveResult("x", nil); err == nil {
		t.Error("Expected error for nil result")
	}
}

func TestLoadResultNotFound(t *testing.T) {
	store, _ := setupTestStore(t)

	_, err := store.LoadResult("does-not-exist")
	if err == nil {
		t.Fatal("Expected error for missing result")
	}

	var nf *NotFoundError
	if !errors.As(err, &nf) {
		t.Fatalf("Expected NotFoundError, got %T", err)
	}
	if nf.RunID != "does-not-exist" {
		t.Errorf("NotFoundError.RunID = %q", nf.RunID)
	}
	if !errors.Is(err, ErrNotFound) {
		t.Error("errors.Is(err, ErrNotFound) must hold")
	}
}

func TestListResults(t *testing.T) {
	store, tempDir := setupTestStore(t)

	infos, err := store.ListResults()
	if err != nil {
		t.Fatalf("ListResults on empty store failed: %v", err)
	}
	if len(infos) != 0 {
		t.Fatalf("Expected no results, got %d", len(infos))
	}

	for _, id := range []string{"run-a", "run-b", "run-c"} {
		if err := store.SaveResult(id, createTestResult(id)); err != nil {
			t.Fatalf("SaveResult(%s) failed: %v", id, err)
		}
	}

	// A directory without result.json must be skipped.
	if err := os.MkdirAll(filepath.Join(tempDir, "runs", "incomplete"), 0755); err != nil {
		t.Fatalf("Failed to create stray directory: %v", err)
	}
	// A corrupted result must be skipped, not fail the listing.
	corruptDir := filepath.Join(tempDir, "runs", "corrupt")
	if err := os.MkdirAll(corruptDir, 0755); err != nil {
		t.Fatalf("Failed to create corrupt directory: %v", err)
	}
	if err := os.WriteFile(filepath.Join(corruptDir, "result.json"), []byte("{broken"), 0644); err != nil {
		t.Fatalf("Failed to write corrupt result: %v", err)
	}

	infos, err = store.ListResults()
	if err != nil {
		t.Fatalf("ListResults failed: %v", err)
	}
	if len(infos) != 3 {
		t.Fatalf("Listed %d results, want 3", len(infos))
	}
	for _, info := range infos {
		if info.Algorithm != "GA" || info.Items != 4 {
			t.Errorf("Unexpected info: %+v", info)
		}
	}
}

func TestDeleteResult(t *testing.T) {
	store, tempDir := setupTestStore(t)

	runID := "test-run-delete"
	if err := store.SaveResult(runID, createTestResult(runID)); err != nil {
		t.Fatalf("SaveResult failed: %v", err)
	}

	// Put a trace next to the result; delete must take both.
	tw, err := NewTraceWriter(tempDir, runID, false)
	if err != nil {
		t.Fatalf("NewTraceWriter failed: %v", err)
	}
	tw.Write(TraceEntry{Iteration: 1, BestValue: 3, Timestamp: time.Now()})
	tw.Close()

	if err := store.DeleteResult(runID); err != nil {
		t.Fatalf("DeleteResult failed: %v", err)
	}

	if _, err := os.Stat(filepath.Join(tempDir, "runs", runID)); !os.IsNotExist(err) {
		t.Error("Run directory must be removed entirely")
	}

	if err := store.DeleteResult(runID); !errors.Is(err, ErrNotFound) {
		t.Errorf("Second delete: expected ErrNotFound, got %v", err)
	}
}
