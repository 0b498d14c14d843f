package pipeline

import (
	"math"

	"go.uber.org/multierr"

	"github.com/leengari/cleanr/internal/domain/dataset"
	"github.com/leengari/cleanr/internal/domain/errors"
	"github.com/leengari/cleanr/internal/stats"
)

// UnknownToken fills CATEGORICAL columns that have no non-missing value to take a mode from
const UnknownToken = "UNKNOWN"

// Fill records how one column was imputed
type Fill struct {
	Column string
	Kind   dataset.Kind
	Value  dataset.Cell
	Count  int // cells replaced
}

// ImputeReport is the outcome of missing-value imputation
type ImputeReport struct {
	Fills    []Fill
	Warnings []error
}

// Filled returns the total number of cells replaced
func (r ImputeReport) Filled() int {
	total := 0
	for _, f := range r.Fills {
		total += f.Count
	}
	return total
}

// Err combines the warnings into a single error, nil when there are none
func (r ImputeReport) Err() error {
	return multierr.Combine(r.Warnings...)
}

// ImputeMissing fills every MISSING cell of a column with one value computed
// from that column's non-missing cells: the mean for NUMERIC columns, the
// mode for CATEGORICAL columns. A NUMERIC column with no values at all is
// left as is and reported as a warning.
func ImputeMissing(ds *dataset.Dataset) (*dataset.Dataset, ImputeReport) {
	var report ImputeReport
	out := ds

	for i := 0; i < ds.NumColumns(); i++ {
		col := ds.Column(i)
		if col.MissingCount() == 0 {
			continue
		}

		value, err := fillValue(col)
		if err != nil {
			report.Warnings = append(report.Warnings, err)
			continue
		}

		filled, n := col.Fill(value)
		next, err := out.WithColumn(i, filled)
		if err != nil {
			// fill values always match their column kind
			panic(err)
		}
		out = next

		report.Fills = append(report.Fills, Fill{
			Column: col.Name,
			Kind:   col.Kind,
			Value:  value,
			Count:  n,
		})
	}

	return out, report
}

// fillValue computes the replacement for the MISSING cells of col
func fillValue(col dataset.Column) (dataset.Cell, error) {
	switch col.Kind {
	case dataset.KindNumeric:
		mean, ok := stats.Mean(col.Floats())
		if !ok {
			return dataset.NA(), errors.NewAllMissing(StageImpute, col.Name, "mean is undefined, column left unfilled")
		}
		if math.IsNaN(mean) {
			return dataset.NA(), errors.NewUndefinedMean(StageImpute, col.Name, "column left unfilled")
		}
		return dataset.Num(mean), nil

	case dataset.KindCategorical:
		mode, ok := stats.Mode(col.Strings())
		if !ok {
			return dataset.Text(UnknownToken), nil
		}
		return dataset.Text(mode), nil
	}

	panic("pipeline: unhandled column kind " + string(col.Kind))
}
