package opt

import (
	"errors"
	"fmt"
	"math/rand"
	"testing"

	"github.com/cwbudde/knapsackopt/internal/knapsack"
)

func newFakeFactory() Factory {
	return func(problem *knapsack.Problem, rng *rand.Rand) (Optimizer, error) {
		e := &countingEngine{}
		e.Lifecycle = NewLifecycle(problem, e)
		return e, nil
	}
}

func TestRegistryRegisterAndGet(t *testing.T) {
	p := testProblem(t)
	r := NewRegistry()

	if err := r.Register("FAKE", newFakeFactory()); err != nil {
		t.Fatalf("Register failed: %v", err)
	}

	engine, err := r.Get("FAKE", p, rand.New(rand.NewSource(1)))
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if engine == nil {
		t.Fatal("Expected non-nil optimizer")
	}
}

func TestRegistryGetUnknown(t *testing.T) {
	r := NewRegistry()

	_, err := r.Get("NOPE", testProblem(t), rand.New(rand.NewSource(1)))
	if err == nil {
		t.Fatal("Expected error for unknown algorithm")
	}

	var nf *NotFoundError
	if !errors.As(err, &nf) {
		t.Fatalf("Expected NotFoundError, got %T", err)
	}
	if nf.Name != "NOPE" {
		t.Errorf("NotFoundError.Name = %q, want NOPE", nf.Name)
	}
	if !errors.Is(err, ErrNotFound) {
		t.Error("errors.Is(err, ErrNotFound) must hold")
	}
}

func TestRegistryRejectsBadRegistrations(t *testing.T) {
	r := NewRegistry()

	if err := r.Register("", newFakeFactory()); err == nil {
		t.Error("Expected error for empty name")
	}
	err := r.Register("FAKE", nil)
	if !errors.Is(err, ErrNilFactory) {
		t.Errorf("Expected ErrNilFactory, got %v", err)
	}
}

func TestRegistryFactoryErrors(t *testing.T) {
	p := testProblem(t)
	r := NewRegistry()

	r.Register("BROKEN", func(problem *knapsack.Problem, rng *rand.Rand) (Optimizer, error) {
		return nil, fmt.Errorf("boom")
	})
	if _, err := r.Get("BROKEN", p, rand.New(rand.NewSource(1))); err == nil {
		t.Error("Expected factory error to surface")
	}

	r.Register("NIL", func(problem *knapsack.Problem, rng *rand.Rand) (Optimizer, error) {
		return nil, nil
	})
	if _, err := r.Get("NIL", p, rand.New(rand.NewSource(1))); err == nil {
		t.Error("Expected error for nil optimizer from factory")
	}
}

func TestRegistryOverwrite(t *testing.T) {
	p := testProblem(t)
	r := NewRegistry()

	called := ""
	r.Register("X", func(problem *knapsack.Problem, rng *rand.Rand) (Optimizer, error) {
		called = "first"
		return nil, fmt.Errorf("unused")
	})
	r.Register("X", func(problem *knapsack.Problem, rng *rand.Rand) (Optimizer, error) {
		called = "second"
		return nil, fmt.Errorf("unused")
	})

	r.Get("X", p, rand.New(rand.NewSource(1)))
	if called != "second" {
		t.Errorf("Re-registration must replace the factory, got %q", called)
	}
}

func TestRegistryHasAndList(t *testing.T) {
	r := NewRegistry()
	r.Register("B", newFakeFactory())
	r.Register("A", newFakeFactory())

	if !r.Has("A") || r.Has("C") {
		t.Error("Has reported wrong membership")
	}

	names := r.List()
	if len(names) != 2 || names[0] != "A" || names[1] != "B" {
		t.Errorf("List = %v, want [A B]", names)
	}
}
