package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Load failures
var (
	ErrNotFound   = errors.New("input not found")
	ErrEmptyInput = errors.New("input has no header row")
	ErrParse      = errors.New("input is not valid tabular data")
)

// Data quality conditions raised by cleaning stages
var (
	ErrAllMissing    = errors.New("column has no non-missing values")
	ErrZeroVariance  = errors.New("column has zero or undefined variance")
	ErrMissingValues = errors.New("column still has missing values")
	ErrUndefinedMean = errors.New("column mean is not a number")
)

// LoadError is returned when a dataset cannot be loaded.
// The pipeline never runs on a dataset that failed to load.
type LoadError struct {
	Path string // input location
	Op   string // "stat", "open", "read", "parse", ...
	Err  error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("load %s: %s: %v", e.Path, e.Op, e.Err)
}

func (e *LoadError) Unwrap() error {
	return e.Err
}

// DataQualityError describes a numeric edge case a stage handled locally.
// These are reported as warnings, never as fatal errors.
type DataQualityError struct {
	Stage  string // stage that observed the condition
	Column string // affected column
	Reason string // human-readable detail (optional)
	Err    error  // one of the ErrXxx sentinels above
}

func (e *DataQualityError) Error() string {
	var parts []string

	parts = append(parts, fmt.Sprintf("data quality: %s.%s", e.Stage, e.Column))

	if e.Err != nil {
		parts = append(parts, e.Err.Error())
	}

	if e.Reason != "" {
		parts = append(parts, e.Reason)
	}

	return strings.Join(parts, " - ")
}

func (e *DataQualityError) Unwrap() error {
	return e.Err
}

func NewAllMissing(stage, column, reason string) *DataQualityError {
	return &DataQualityError{Stage: stage, Column: column, Reason: reason, Err: ErrAllMissing}
}

func NewUndefinedMean(stage, column, reason string) *DataQualityError {
	return &DataQualityError{Stage: stage, Column: column, Reason: reason, Err: ErrUndefinedMean}
}

func NewZeroVariance(stage, column, reason string) *DataQualityError {
	return &DataQualityError{Stage: stage, Column: column, Reason: reason, Err: ErrZeroVariance}
}

func NewMissingValues(stage, column string, count int) *DataQualityError {
	return &DataQualityError{
		Stage:  stage,
		Column: column,
		Reason: fmt.Sprintf("%d missing cells excluded", count),
		Err:    ErrMissingValues,
	}
}
