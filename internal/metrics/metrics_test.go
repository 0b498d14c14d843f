package metrics

import (
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"gotest.tools/v3/assert"

	"github.com/leengari/cleanr/internal/domain/dataset"
	"github.com/leengari/cleanr/internal/pipeline"
	dstest "github.com/leengari/cleanr/internal/testutil"
)

func runWith(t *testing.T, o *Observer, ds *dataset.Dataset) {
	t.Helper()
	if _, err := pipeline.New(pipeline.WithObserver(o)).Run(ds); err != nil {
		t.Fatalf("run failed: %v", err)
	}
}

func TestObserver_RecordsRun(t *testing.T) {
	o := NewObserver()

	runWith(t, o, dstest.CitiesDataset(t))

	assert.Equal(t, testutil.ToFloat64(o.runs), 1.0)
	assert.Equal(t, testutil.ToFloat64(o.rowsRemoved.WithLabelValues(pipeline.StageDeduplicate)), 1.0)
	assert.Equal(t, testutil.ToFloat64(o.rowsRemoved.WithLabelValues(pipeline.StageOutliers)), 0.0)
	assert.Equal(t, testutil.ToFloat64(o.cellsImputed.WithLabelValues(string(dataset.KindNumeric))), 1.0)
	assert.Equal(t, testutil.ToFloat64(o.cellsImputed.WithLabelValues(string(dataset.KindCategorical))), 1.0)
	assert.Equal(t, testutil.ToFloat64(o.datasetRows.WithLabelValues("input")), 4.0)
	assert.Equal(t, testutil.ToFloat64(o.datasetRows.WithLabelValues("output")), 3.0)
	assert.Equal(t, testutil.CollectAndCount(o.stageDuration), 4)
}

func TestObserver_CountsWarnings(t *testing.T) {
	o := NewObserver()

	ds := dstest.NewDataset(t, dataset.NewNumeric("empty", dstest.Numbers(math.NaN())...))
	runWith(t, o, ds)

	assert.Equal(t, testutil.ToFloat64(o.warnings.WithLabelValues(pipeline.StageImpute)), 1.0)
	assert.Equal(t, testutil.ToFloat64(o.warnings.WithLabelValues(pipeline.StageOutliers)), 2.0)
}

func TestObserver_AccumulatesAcrossRuns(t *testing.T) {
	o := NewObserver()

	runWith(t, o, dstest.CitiesDataset(t))
	runWith(t, o, dstest.CitiesDataset(t))

	assert.Equal(t, testutil.ToFloat64(o.runs), 2.0)
	assert.Equal(t, testutil.ToFloat64(o.rowsRemoved.WithLabelValues(pipeline.StageDeduplicate)), 2.0)
}

func TestObserver_WriteTextfile(t *testing.T) {
	o := NewObserver()
	runWith(t, o, dstest.CitiesDataset(t))

	path := filepath.Join(t.TempDir(), "cleanr.prom")
	assert.NilError(t, o.WriteTextfile(path))

	content, err := os.ReadFile(path)
	assert.NilError(t, err)
	assert.Assert(t, strings.Contains(string(content), `cleanr_rows_removed_total{stage="deduplicate"} 1`))
	assert.Assert(t, strings.Contains(string(content), "cleanr_runs_total 1"))
}

func TestObserver_WriteTextfileBadPath(t *testing.T) {
	o := NewObserver()

	err := o.WriteTextfile(filepath.Join(t.TempDir(), "missing", "dir", "cleanr.prom"))
	assert.ErrorContains(t, err, "write metrics")
}
