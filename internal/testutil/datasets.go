package testutil

import (
	"testing"

	"github.com/leengari/cleanr/internal/domain/dataset"
)

// NewDataset builds a dataset or fails the test
func NewDataset(t *testing.T, columns ...dataset.Column) *dataset.Dataset {
	t.Helper()
	ds, err := dataset.New(columns...)
	if err != nil {
		t.Fatalf("failed to build dataset: %v", err)
	}
	return ds
}

// Numbers builds numeric cells; NaN entries become MISSING
func Numbers(values ...float64) []dataset.Cell {
	cells := make([]dataset.Cell, len(values))
	for i, v := range values {
		cells[i] = dataset.Num(v)
	}
	return cells
}

// Tokens builds categorical cells; the NA token becomes MISSING
func Tokens(values ...string) []dataset.Cell {
	cells := make([]dataset.Cell, len(values))
	for i, v := range values {
		if v == NA {
			cells[i] = dataset.NA()
			continue
		}
		cells[i] = dataset.Text(v)
	}
	return cells
}

// NA marks a missing entry in Tokens
const NA = "\x00NA"

// CitiesDataset creates the age/city sample with missing values and one duplicate row
func CitiesDataset(t *testing.T) *dataset.Dataset {
	t.Helper()
	return NewDataset(t,
		dataset.NewNumeric("age", dataset.Num(25), dataset.NA(), dataset.Num(25), dataset.Num(30)),
		dataset.NewCategorical("city", Tokens("NYC", "LA", "NYC", NA)...),
	)
}
