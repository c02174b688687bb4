package server

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand"
	"time"

	"github.com/cwbudde/knapsackopt/internal/knapsack"
	"github.com/cwbudde/knapsackopt/internal/opt"
	"github.com/cwbudde/knapsackopt/internal/store"
)

// runJob executes an optimization job in the background, driving the
// engine lifecycle one step at a time so progress can be observed and the
// job cancelled between iterations. If resultStore is not nil the final
// result and the convergence trace are persisted under the job ID.
func runJob(ctx context.Context, jm *JobManager, resultStore *store.FSStore, registry *opt.Registry, jobID string) error {
	job, exists := jm.GetJob(jobID)
	if !exists {
		return fmt.Errorf("job not found: %s", jobID)
	}

	err := jm.UpdateJob(jobID, func(j *Job) {
		j.State = StateRunning
	})
	if err != nil {
		return err
	}

	slog.Info("Starting job", "job_id", jobID, "algorithm", job.Config.Algorithm)

	problem, err := buildProblem(job.Config)
	if err != nil {
		markJobFailed(jm, jobID, err)
		return err
	}
	optimum := problem.BestPossibleValue()
	err = jm.UpdateJob(jobID, func(j *Job) {
		j.Optimum = optimum
	})
	if err != nil {
		return err
	}

	engine, err := registry.Get(job.Config.Algorithm, problem, rand.New(rand.NewSource(job.Config.Seed)))
	if err != nil {
		markJobFailed(jm, jobID, err)
		return err
	}

	var trace *store.TraceWriter
	if resultStore != nil {
		trace, err = store.NewTraceWriter(resultStore.BaseDir(), jobID, false)
		if err != nil {
			slog.Warn("Failed to open trace writer, continuing without trace", "job_id", jobID, "error", err)
			trace = nil
		} else {
			defer trace.Close()
		}
	}

	start := time.Now()
	engine.Initialize()

	for i := 0; i < job.Config.Iterations; i++ {
		select {
		case <-ctx.Done():
			markJobCancelled(jm, jobID)
			return ctx.Err()
		default:
		}

		engine.Step()
		best, value := engine.Best()

		err = jm.UpdateJob(jobID, func(j *Job) {
			j.Iterations = i + 1
			j.BestSolution = best
			j.BestValue = value
		})
		if err != nil {
			return err
		}

		if trace != nil {
			if err := trace.Write(store.TraceEntry{
				Iteration: i + 1,
				BestValue: value,
				Timestamp: time.Now(),
			}); err != nil {
				slog.Warn("Failed to write trace entry", "job_id", jobID, "error", err)
			}
		}

		jm.broadcaster.Broadcast(ProgressEvent{
			JobID:     jobID,
			State:     StateRunning,
			Iteration: i + 1,
			BestValue: value,
			Timestamp: time.Now(),
		})
	}

	elapsed := time.Since(start)
	best, value := engine.Best()
	_, bestWeight := problem.Evaluate(best)

	if resultStore != nil {
		result := store.NewRunResult(jobID, best, value, bestWeight, optimum, job.Config.Iterations, job.Config)
		if err := resultStore.SaveResult(jobID, result); err != nil {
			slog.Error("Failed to save run result", "job_id", jobID, "error", err)
		}
	}

	endTime := time.Now()
	err = jm.UpdateJob(jobID, func(j *Job) {
		j.State = StateCompleted
		j.BestSolution = best
		j.BestValue = value
		j.Iterations = job.Config.Iterations
		j.EndTime = &endTime
	})
	if err != nil {
		return err
	}

	slog.Info("Job completed",
		"job_id", jobID,
		"elapsed", elapsed,
		"best_value", value,
		"optimum", optimum,
		"iterations", job.Config.Iterations,
	)

	jm.broadcaster.Broadcast(ProgressEvent{
		JobID:     jobID,
		State:     StateCompleted,
		Iteration: job.Config.Iterations,
		BestValue: value,
		Timestamp: time.Now(),
	})

	return nil
}

// buildProblem loads the job's instance file or generates a random
// instance from the job's generator settings.
func buildProblem(config JobConfig) (*knapsack.Problem, error) {
	if config.InstancePath != "" {
		return knapsack.ReadFile(config.InstancePath)
	}
	if config.Items <= 0 {
		return nil, fmt.Errorf("job needs an instancePath or a positive items count")
	}

	ratio := config.CapacityRatio
	if ratio == 0 {
		ratio = 0.5
	}
	rng := rand.New(rand.NewSource(config.InstanceSeed))
	return knapsack.RandomProblem(config.Items, 100, 100, ratio, rng), nil
}

// markJobFailed marks a job as failed with an error message
func markJobFailed(jm *JobManager, jobID string, err error) {
	endTime := time.Now()
	jm.UpdateJob(jobID, func(j *Job) {
		j.State = StateFailed
		j.Error = err.Error()
		j.EndTime = &endTime
	})
	slog.Error("Job failed", "job_id", jobID, "error", err)
}

// markJobCancelled marks a job as cancelled
func markJobCancelled(jm *JobManager, jobID string) {
	endTime := time.Now()
	jm.UpdateJob(jobID, func(j *Job) {
		j.State = StateCancelled
		j.EndTime = &endTime
	})
	slog.Info("Job cancelled", "job_id", jobID)
}
