package pipeline_test

import (
	"errors"
	"math"
	"testing"

	"gotest.tools/v3/assert"

	"github.com/leengari/cleanr/internal/domain/dataset"
	domainerrors "github.com/leengari/cleanr/internal/domain/errors"
	"github.com/leengari/cleanr/internal/pipeline"
	"github.com/leengari/cleanr/internal/testutil"
)

var nan = math.NaN()

func TestImputeMissing_MeanAndMode(t *testing.T) {
	ds := testutil.CitiesDataset(t)

	out, report := pipeline.ImputeMissing(ds)

	testutil.AssertFloats(t, out, "age", []float64{25, 80.0 / 3.0, 25, 30})
	testutil.AssertTokens(t, out, "city", []string{"NYC", "LA", "NYC", "NYC"})
	testutil.AssertNoMissing(t, out, "after imputation")

	assert.Equal(t, len(report.Fills), 2)
	assert.Equal(t, report.Fills[0].Column, "age")
	assert.Equal(t, report.Fills[0].Kind, dataset.KindNumeric)
	assert.Equal(t, report.Fills[0].Count, 1)
	mean, _ := report.Fills[0].Value.Float()
	assert.Assert(t, math.Abs(mean-26.67) < 0.005)

	assert.Equal(t, report.Fills[1].Column, "city")
	mode, _ := report.Fills[1].Value.Str()
	assert.Equal(t, mode, "NYC")
	assert.Equal(t, report.Filled(), 2)
	assert.NilError(t, report.Err())
}

func TestImputeMissing_DoesNotModifyInput(t *testing.T) {
	ds := testutil.CitiesDataset(t)

	pipeline.ImputeMissing(ds)

	testutil.AssertFloats(t, ds, "age", []float64{25, nan, 25, 30})
	testutil.AssertTokens(t, ds, "city", []string{"NYC", "LA", "NYC", testutil.NA})
}

func TestImputeMissing_ColumnsWithoutMissingUntouched(t *testing.T) {
	ds := testutil.NewDataset(t,
		dataset.NewNumeric("complete", testutil.Numbers(1, 2, 3)...),
		dataset.NewNumeric("gappy", testutil.Numbers(1, nan, 5)...),
	)

	out, report := pipeline.ImputeMissing(ds)

	assert.Equal(t, len(report.Fills), 1)
	assert.Equal(t, report.Fills[0].Column, "gappy")
	testutil.AssertFloats(t, out, "complete", []float64{1, 2, 3})
	testutil.AssertFloats(t, out, "gappy", []float64{1, 3, 5})
}

func TestImputeMissing_MeanExcludesMissing(t *testing.T) {
	// treating MISSING as zero would give a mean of 2
	ds := testutil.NewDataset(t,
		dataset.NewNumeric("x", testutil.Numbers(nan, 4, nan, 4)...),
	)

	out, _ := pipeline.ImputeMissing(ds)
	testutil.AssertFloats(t, out, "x", []float64{4, 4, 4, 4})
}

func TestImputeMissing_ModeExcludesMissing(t *testing.T) {
	ds := testutil.NewDataset(t,
		dataset.NewCategorical("c", testutil.Tokens(testutil.NA, testutil.NA, testutil.NA, "", "b")...),
	)

	out, _ := pipeline.ImputeMissing(ds)
	// "" and "b" tie; "" sorts first
	testutil.AssertTokens(t, out, "c", []string{"", "", "", "", "b"})
}

func TestImputeMissing_ModeTieBreak(t *testing.T) {
	ds := testutil.NewDataset(t,
		dataset.NewCategorical("c", testutil.Tokens("zeta", "alpha", testutil.NA, "zeta", "alpha")...),
	)

	out, report := pipeline.ImputeMissing(ds)

	mode, _ := report.Fills[0].Value.Str()
	assert.Equal(t, mode, "alpha")
	testutil.AssertTokens(t, out, "c", []string{"zeta", "alpha", "alpha", "zeta", "alpha"})
}

func TestImputeMissing_AllMissingCategoricalUsesSentinel(t *testing.T) {
	ds := testutil.NewDataset(t,
		dataset.NewCategorical("c", testutil.Tokens(testutil.NA, testutil.NA)...),
	)

	out, report := pipeline.ImputeMissing(ds)

	testutil.AssertTokens(t, out, "c", []string{pipeline.UnknownToken, pipeline.UnknownToken})
	assert.Equal(t, len(report.Warnings), 0)
}

func TestImputeMissing_AllMissingNumericIsSkipped(t *testing.T) {
	ds := testutil.NewDataset(t,
		dataset.NewNumeric("empty", testutil.Numbers(nan, nan)...),
		dataset.NewNumeric("x", testutil.Numbers(1, nan)...),
	)

	out, report := pipeline.ImputeMissing(ds)

	testutil.AssertFloats(t, out, "empty", []float64{nan, nan})
	testutil.AssertFloats(t, out, "x", []float64{1, 1})

	assert.Equal(t, len(report.Warnings), 1)
	assert.Assert(t, errors.Is(report.Err(), domainerrors.ErrAllMissing))

	var dq *domainerrors.DataQualityError
	assert.Assert(t, errors.As(report.Warnings[0], &dq))
	assert.Equal(t, dq.Column, "empty")
	assert.Equal(t, dq.Stage, pipeline.StageImpute)
}

func TestImputeMissing_UndefinedMeanIsSkipped(t *testing.T) {
	ds := testutil.NewDataset(t,
		dataset.NewNumeric("x", testutil.Numbers(math.Inf(1), math.Inf(-1), nan)...),
	)

	out, report := pipeline.ImputeMissing(ds)

	testutil.AssertFloats(t, out, "x", []float64{math.Inf(1), math.Inf(-1), nan})
	assert.Equal(t, len(report.Fills), 0)
	assert.Equal(t, len(report.Warnings), 1)
	assert.Assert(t, errors.Is(report.Err(), domainerrors.ErrUndefinedMean))

	var dq *domainerrors.DataQualityError
	assert.Assert(t, errors.As(report.Warnings[0], &dq))
	assert.Equal(t, dq.Column, "x")
	assert.Equal(t, dq.Stage, pipeline.StageImpute)
}

func TestImputeMissing_Idempotent(t *testing.T) {
	ds := testutil.CitiesDataset(t)

	once, _ := pipeline.ImputeMissing(ds)
	twice, report := pipeline.ImputeMissing(once)

	assert.Assert(t, once.Equal(twice))
	assert.Equal(t, len(report.Fills), 0)
}
