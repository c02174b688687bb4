package store

// Store defines the interface for run-result persistence operations.
// Implementations must be thread-safe and handle concurrent access
// gracefully.
//
// Error handling conventions:
//   - Return nil error on success
//   - Return ErrNotFound if the result doesn't exist (for Load/Delete)
//   - Return descriptive errors for I/O, serialization, or validation failures
//   - Wrap underlying errors with context using fmt.Errorf("context: %w", err)
type Store interface {
	// SaveResult atomically saves the result of the given run. If a
	// result already exists for this runID, it is overwritten. The
	// implementation should use atomic write strategies (e.g., temp file
	// + rename) to prevent corruption in case of failures.
	SaveResult(runID string, result *RunResult) error

	// LoadResult retrieves the result for the given run.
	// Returns ErrNotFound if no result exists for this runID.
	LoadResult(runID string) (*RunResult, error)

	// ListResults returns metadata for all stored results. The returned
	// slice may be empty if no results exist.
	ListResults() ([]ResultInfo, error)

	// DeleteResult removes the result and all associated artifacts for
	// the given run, including result.json and trace.jsonl.
	// Returns ErrNotFound if no result exists for this runID.
	DeleteResult(runID string) error
}

// ErrNotFound is returned when a requested result does not exist.
// Use errors.Is(err, ErrNotFound) to check for this error.
var ErrNotFound = &NotFoundError{}

// NotFoundError represents a missing run result error.
type NotFoundError struct {
	RunID string
}

func (e *NotFoundError) Error() string {
	if e.RunID != "" {
		return "run result not found: " + e.RunID
	}
	return "run result not found"
}

func (e *NotFoundError) Is(target error) bool {
	_, ok := target.(*NotFoundError)
	return ok
}
