package report

import (
	"bytes"
	"errors"
	"math"
	"strings"
	"testing"

	"gotest.tools/v3/assert"

	"github.com/leengari/cleanr/internal/domain/dataset"
	"github.com/leengari/cleanr/internal/pipeline"
	"github.com/leengari/cleanr/internal/testutil"
)

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) {
	return 0, errors.New("disk full")
}

func TestTextReporter_FullRun(t *testing.T) {
	var buf bytes.Buffer
	reporter := NewTextReporter(&buf, true)

	_, err := pipeline.New(pipeline.WithObserver(reporter)).Run(testutil.CitiesDataset(t))
	assert.NilError(t, err)
	assert.NilError(t, reporter.Err())

	out := buf.String()
	for _, want := range []string{
		"FIRST 4 ROWS",
		"COLUMN TYPES",
		"CATEGORICAL",
		"MISSING VALUES",
		"DUPLICATE ROWS",
		"Cleaning missing values...",
		"> Filled numeric 'age' with mean: 26.67 (1 cells)",
		"> Filled text 'city' with mode: NYC (1 cells)",
		"Removed 1 duplicate rows.",
		"Removing outliers using Z-score method...",
		"> Removed 0 rows as outliers (threshold 3).",
		"Done: 3 rows x 2 columns",
	} {
		assert.Assert(t, strings.Contains(out, want), "missing %q in:\n%s", want, out)
	}

	// sections appear in stage order
	assert.Assert(t, strings.Index(out, "DUPLICATE ROWS") < strings.Index(out, "Cleaning missing values"))
	assert.Assert(t, strings.Index(out, "Cleaning missing values") < strings.Index(out, "duplicate rows."))
}

func TestTextReporter_SummaryOnly(t *testing.T) {
	var buf bytes.Buffer
	reporter := NewTextReporter(&buf, true)

	_, err := pipeline.New(pipeline.WithObserver(reporter), pipeline.WithHeadRows(1)).Summarize(testutil.CitiesDataset(t))
	assert.NilError(t, err)

	out := buf.String()
	assert.Assert(t, strings.Contains(out, "FIRST 1 ROWS"))
	assert.Assert(t, !strings.Contains(out, "Cleaning missing values"))
}

func TestTextReporter_Warnings(t *testing.T) {
	var buf bytes.Buffer
	reporter := NewTextReporter(&buf, true)

	ds := testutil.NewDataset(t, dataset.NewNumeric("empty", testutil.Numbers(math.NaN(), math.NaN())...))
	_, err := pipeline.New(pipeline.WithObserver(reporter)).Run(ds)
	assert.NilError(t, err)

	out := buf.String()
	assert.Assert(t, strings.Contains(out, "! data quality: impute.empty"))
	assert.Assert(t, strings.Contains(out, "! data quality: outliers.empty"))
}

func TestTextReporter_RecordsWriteError(t *testing.T) {
	reporter := NewTextReporter(failingWriter{}, true)

	_, err := pipeline.New(pipeline.WithObserver(reporter)).Run(testutil.CitiesDataset(t))
	assert.NilError(t, err)
	assert.ErrorContains(t, reporter.Err(), "disk full")
}

func TestFormatCell(t *testing.T) {
	assert.Equal(t, formatCell(dataset.Num(25)), "25")
	assert.Equal(t, formatCell(dataset.Num(2.5)), "2.5")
	assert.Equal(t, formatCell(dataset.Text("NYC")), "NYC")
	assert.Equal(t, formatCell(dataset.NA()), "NaN")
}
