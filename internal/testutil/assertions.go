package testutil

import (
	"math"
	"testing"

	"github.com/leengari/cleanr/internal/domain/dataset"
)

// Tolerance for float comparisons in tests
const Tolerance = 1e-9

// AssertRowCount checks if the dataset has the expected number of rows
func AssertRowCount(t *testing.T, ds *dataset.Dataset, expected int, context string) {
	t.Helper()
	if ds.NumRows() != expected {
		t.Errorf("%s: expected %d rows, got %d", context, expected, ds.NumRows())
	}
}

// AssertNoMissing checks that no column holds a MISSING cell
func AssertNoMissing(t *testing.T, ds *dataset.Dataset, context string) {
	t.Helper()
	for _, col := range ds.Columns() {
		if n := col.MissingCount(); n > 0 {
			t.Errorf("%s: column %q still has %d missing cells", context, col.Name, n)
		}
	}
}

// AssertFloats checks the numeric cells of a column, MISSING cells must be NaN in want
func AssertFloats(t *testing.T, ds *dataset.Dataset, column string, want []float64) {
	t.Helper()
	col, ok := ds.ColumnByName(column)
	if !ok {
		t.Fatalf("expected column '%s' to exist", column)
	}
	if col.Len() != len(want) {
		t.Fatalf("column %q: expected %d cells, got %d", column, len(want), col.Len())
	}
	for i, cell := range col.Cells {
		v, isNum := cell.Float()
		switch {
		case math.IsNaN(want[i]):
			if !cell.IsMissing() {
				t.Errorf("column %q row %d: expected MISSING, got %v", column, i, cell)
			}
		case !isNum:
			t.Errorf("column %q row %d: expected %v, got %v", column, i, want[i], cell)
		case math.Abs(v-want[i]) > Tolerance:
			t.Errorf("column %q row %d: expected %v, got %v", column, i, want[i], v)
		}
	}
}

// AssertTokens checks the categorical cells of a column, NA in want means MISSING
func AssertTokens(t *testing.T, ds *dataset.Dataset, column string, want []string) {
	t.Helper()
	col, ok := ds.ColumnByName(column)
	if !ok {
		t.Fatalf("expected column '%s' to exist", column)
	}
	if col.Len() != len(want) {
		t.Fatalf("column %q: expected %d cells, got %d", column, len(want), col.Len())
	}
	for i, cell := range col.Cells {
		s, isText := cell.Str()
		switch {
		case want[i] == NA:
			if !cell.IsMissing() {
				t.Errorf("column %q row %d: expected MISSING, got %q", column, i, cell)
			}
		case !isText || s != want[i]:
			t.Errorf("column %q row %d: expected %q, got %v", column, i, want[i], cell)
		}
	}
}
