package stats

import (
	"math"
	"testing"

	"gotest.tools/v3/assert"
)

const tolerance = 1e-9

func TestMean(t *testing.T) {
	mean, ok := Mean([]float64{25, 25, 30})
	assert.Assert(t, ok)
	assert.Assert(t, math.Abs(mean-80.0/3.0) < tolerance, "got %v", mean)

	_, ok = Mean(nil)
	assert.Assert(t, !ok)
}

func TestStdDev_Sample(t *testing.T) {
	// mean 208, squared deviations sum to 784080, sample variance 196020
	std, ok := StdDev([]float64{10, 10, 10, 10, 1000})
	assert.Assert(t, ok)
	assert.Assert(t, math.Abs(std-math.Sqrt(196020)) < tolerance, "got %v", std)
}

func TestStdDev_Undefined(t *testing.T) {
	_, ok := StdDev([]float64{42})
	assert.Assert(t, !ok)

	std, ok := StdDev([]float64{7, 7, 7})
	assert.Assert(t, ok)
	assert.Equal(t, std, 0.0)
}

func TestMode(t *testing.T) {
	mode, ok := Mode([]string{"NYC", "LA", "NYC"})
	assert.Assert(t, ok)
	assert.Equal(t, mode, "NYC")

	_, ok = Mode(nil)
	assert.Assert(t, !ok)
}

func TestMode_TieBreakIsSmallestValue(t *testing.T) {
	tests := []struct {
		name   string
		values []string
		want   string
	}{
		{"first encountered is larger", []string{"b", "a", "b", "a"}, "a"},
		{"first encountered is smaller", []string{"a", "b", "a", "b"}, "a"},
		{"all distinct", []string{"z", "y", "x"}, "x"},
		{"clear winner beats smaller", []string{"b", "b", "a"}, "b"},
		{"empty string is a value", []string{"", "x", "", "x"}, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Mode(tt.values)
			assert.Assert(t, ok)
			assert.Equal(t, got, tt.want)
		})
	}
}

func TestAbsZ(t *testing.T) {
	assert.Equal(t, AbsZ(8, 10, 2), 1.0)
	assert.Equal(t, AbsZ(16, 10, 2), 3.0)
}
