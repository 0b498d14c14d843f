package pipeline

import (
	"math"

	"go.uber.org/multierr"

	"github.com/leengari/cleanr/internal/domain/dataset"
	"github.com/leengari/cleanr/internal/domain/errors"
	"github.com/leengari/cleanr/internal/stats"
)

// DefaultThreshold is the absolute z-score at which a value counts as an outlier
const DefaultThreshold = 3.0

// ColumnStats are the statistics the outlier filter used for one NUMERIC column
type ColumnStats struct {
	Name     string
	Mean     float64
	StdDev   float64
	Skipped  bool // column did not take part in the decision
	Outliers int  // rows at or above the threshold in this column
}

// OutlierReport is the outcome of z-score outlier filtering
type OutlierReport struct {
	Threshold float64
	Before    int
	After     int
	Removed   int
	Columns   []ColumnStats
	Warnings  []error
}

// Err combines the warnings into a single error, nil when there are none
func (r OutlierReport) Err() error {
	return multierr.Combine(r.Warnings...)
}

// RemoveOutliers drops every row whose absolute z-score reaches threshold in
// at least one NUMERIC column. Mean and sample standard deviation are taken
// over the whole pre-filter column. CATEGORICAL columns are carried along.
//
// Imputation is expected to run first. MISSING cells that remain are left out
// of the statistics and never cause a row to be dropped. Columns with zero or
// undefined standard deviation never cause a row to be dropped either. Both
// conditions are reported as warnings. A threshold that is not positive falls
// back to DefaultThreshold.
func RemoveOutliers(ds *dataset.Dataset, threshold float64) (*dataset.Dataset, OutlierReport) {
	if !(threshold > 0) {
		threshold = DefaultThreshold
	}

	report := OutlierReport{Threshold: threshold, Before: ds.NumRows()}

	keep := make([]bool, ds.NumRows())
	for i := range keep {
		keep[i] = true
	}

	for i := 0; i < ds.NumColumns(); i++ {
		if ds.Kind(i) != dataset.KindNumeric {
			continue
		}
		col := ds.Column(i)
		cs := ColumnStats{Name: col.Name}

		if missing := col.MissingCount(); missing > 0 {
			report.Warnings = append(report.Warnings, errors.NewMissingValues(StageOutliers, col.Name, missing))
		}

		values := col.Floats()
		cs.Mean, _ = stats.Mean(values)
		std, ok := stats.StdDev(values)
		cs.StdDev = std

		if !ok || std == 0 || math.IsNaN(std) || math.IsInf(std, 0) {
			cs.Skipped = true
			report.Warnings = append(report.Warnings,
				errors.NewZeroVariance(StageOutliers, col.Name, "column ignored for outlier detection"))
			report.Columns = append(report.Columns, cs)
			continue
		}

		for r, cell := range col.Cells {
			x, ok := cell.Float()
			if !ok {
				continue
			}
			if stats.AbsZ(x, cs.Mean, std) >= threshold {
				cs.Outliers++
				keep[r] = false
			}
		}
		report.Columns = append(report.Columns, cs)
	}

	out := ds.Filter(keep)
	report.After = out.NumRows()
	report.Removed = report.Before - report.After
	return out, report
}
