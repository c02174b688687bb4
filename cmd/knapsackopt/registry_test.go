package main

import (
	"math/rand"
	"path/filepath"
	"testing"

	"github.com/cwbudde/knapsackopt/internal/knapsack"
)

func TestNewRegistryRegistersAllEngines(t *testing.T) {
	registry, err := newRegistry(defaultEngineParams())
	if err != nil {
		t.Fatalf("newRegistry failed: %v", err)
	}

	want := []string{"ACO", "CS", "GA", "MA", "PSO"}
	got := registry.List()
	if len(got) != len(want) {
		t.Fatalf("List = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("List = %v, want %v", got, want)
		}
	}

	p, err := knapsack.New([]float64{2, 3, 4, 5}, []float64{3, 4, 5, 6}, 5)
	if err != nil {
		t.Fatalf("Failed to build instance: %v", err)
	}
	for _, name := range want {
		engine, err := registry.Get(name, p, rand.New(rand.NewSource(1)))
		if err != nil {
			t.Errorf("Get(%s) failed: %v", name, err)
			continue
		}
		if engine == nil {
			t.Errorf("Get(%s) returned nil optimizer", name)
		}
	}
}

func TestNewRegistryRejectsBadParams(t *testing.T) {
	params := defaultEngineParams()
	params.ga.Population = 0

	registry, err := newRegistry(params)
	if err != nil {
		t.Fatalf("newRegistry failed: %v", err)
	}

	p, err := knapsack.New([]float64{2}, []float64{3}, 5)
	if err != nil {
		t.Fatalf("Failed to build instance: %v", err)
	}
	if _, err := registry.Get("GA", p, rand.New(rand.NewSource(1))); err == nil {
		t.Error("Expected factory error for invalid GA config")
	}
}

func TestLoadOrGenerate(t *testing.T) {
	p, err := loadOrGenerate("", 12, 777, 0.5)
	if err != nil {
		t.Fatalf("loadOrGenerate random failed: %v", err)
	}
	if p.N() != 12 {
		t.Errorf("N = %d, want 12", p.N())
	}

	path := filepath.Join(t.TempDir(), "instance.json")
	if err := knapsack.WriteFile(path, p); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}
	loaded, err := loadOrGenerate(path, 0, 0, 0)
	if err != nil {
		t.Fatalf("loadOrGenerate from file failed: %v", err)
	}
	if loaded.N() != 12 {
		t.Errorf("Loaded N = %d, want 12", loaded.N())
	}

	if _, err := loadOrGenerate("", 0, 0, 0.5); err == nil {
		t.Error("Expected error for zero items without instance file")
	}
}
