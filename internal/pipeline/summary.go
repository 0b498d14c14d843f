package pipeline

import "github.com/leengari/cleanr/internal/domain/dataset"

// DefaultHeadRows is the number of rows shown in a summary preview
const DefaultHeadRows = 5

// ColumnKind pairs a column name with its declared kind
type ColumnKind struct {
	Name string
	Kind dataset.Kind
}

// NullCount pairs a column name with its number of MISSING cells
type NullCount struct {
	Name    string
	Missing int
}

// Summary is the read-only inspection of a dataset
type Summary struct {
	Rows       int
	Columns    int
	Head       *dataset.Dataset
	Kinds      []ColumnKind
	Nulls      []NullCount
	Duplicates int
}

// TotalMissing returns the number of MISSING cells across all columns
func (s Summary) TotalMissing() int {
	total := 0
	for _, n := range s.Nulls {
		total += n.Missing
	}
	return total
}

// Summarize reports the first headRows rows, the kind and MISSING count of
// every column, and the number of exact-duplicate rows. ds is not modified.
func Summarize(ds *dataset.Dataset, headRows int) Summary {
	s := Summary{
		Rows:    ds.NumRows(),
		Columns: ds.NumColumns(),
		Head:    ds.Head(headRows),
		Kinds:   make([]ColumnKind, ds.NumColumns()),
		Nulls:   make([]NullCount, ds.NumColumns()),
	}

	for i, col := range ds.Columns() {
		s.Kinds[i] = ColumnKind{Name: col.Name, Kind: col.Kind}
		s.Nulls[i] = NullCount{Name: col.Name, Missing: col.MissingCount()}
	}

	for _, dup := range duplicateMask(ds) {
		if dup {
			s.Duplicates++
		}
	}

	return s
}
