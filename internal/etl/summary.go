package etl

import (
	"errors"
	"fmt"
)

// ErrRowFailures is wrapped by LoadSummary.Err when any row failed to insert.
var ErrRowFailures = errors.New("etl: row insert failures")

// RowFailure is a row that could not be written. Key identifies the row by
// its natural key, e.g. "dist_code=17 year=1990".
type RowFailure struct {
	Key string
	Err error
}

// BatchResult is the outcome of one load stage.
type BatchResult struct {
	Stage     string
	Table     string
	Attempted int
	Inserted  int
	Ignored   int
	Failures  []RowFailure
}

// LoadSummary aggregates the stages of one Writer.Load.
type LoadSummary struct {
	Stages []BatchResult
}

// Inserted is the total number of rows written across stages.
func (s LoadSummary) Inserted() int {
	n := 0
	for _, st := range s.Stages {
		n += st.Inserted
	}
	return n
}

// Failed is the total number of failed rows across stages.
func (s LoadSummary) Failed() int {
	n := 0
	for _, st := range s.Stages {
		n += len(st.Failures)
	}
	return n
}

// Stage returns the result for the named stage.
func (s LoadSummary) Stage(name string) (BatchResult, bool) {
	for _, st := range s.Stages {
		if st.Stage == name {
			return st, true
		}
	}
	return BatchResult{}, false
}

// Err returns nil when every attempted row was inserted or ignored. Otherwise
// it wraps ErrRowFailures and carries the first failure of each stage.
func (s LoadSummary) Err() error {
	var errs []error
	for _, st := range s.Stages {
		if len(st.Failures) == 0 {
			continue
		}
		f := st.Failures[0]
		errs = append(errs, fmt.Errorf("%s: %d failed, first %s: %w", st.Stage, len(st.Failures), f.Key, f.Err))
	}
	if len(errs) == 0 {
		return nil
	}
	return fmt.Errorf("%w: %d row(s): %w", ErrRowFailures, s.Failed(), errors.Join(errs...))
}
