package pipeline

import "github.com/leengari/cleanr/internal/domain/dataset"

// DuplicateReport is the outcome of duplicate removal
type DuplicateReport struct {
	Before  int
	After   int
	Removed int
}

// RemoveDuplicates drops every row that exactly matches an earlier row,
// MISSING cells included. First occurrences keep their relative order.
func RemoveDuplicates(ds *dataset.Dataset) (*dataset.Dataset, DuplicateReport) {
	dup := duplicateMask(ds)

	keep := make([]bool, len(dup))
	removed := 0
	for i, d := range dup {
		keep[i] = !d
		if d {
			removed++
		}
	}

	out := ds.Filter(keep)
	return out, DuplicateReport{
		Before:  ds.NumRows(),
		After:   out.NumRows(),
		Removed: removed,
	}
}

// duplicateMask marks every row that repeats an earlier row
func duplicateMask(ds *dataset.Dataset) []bool {
	mask := make([]bool, ds.NumRows())
	seen := make(map[string]struct{}, ds.NumRows())

	for i := range mask {
		key := ds.RowKey(i)
		if _, found := seen[key]; found {
			mask[i] = true
			continue
		}
		seen[key] = struct{}{}
	}
	return mask
}
