package dataset

import (
	"fmt"
	"strings"
)

// Dataset is an immutable, ordered set of named columns of equal length.
// Every transformation returns a new Dataset; accessors hand out copies.
type Dataset struct {
	columns []Column
	rows    int
}

// New builds a Dataset from the given columns.
// Columns must have unique names, equal lengths, and cells matching their kind.
func New(columns ...Column) (*Dataset, error) {
	ds := &Dataset{columns: make([]Column, 0, len(columns))}
	seen := make(map[string]struct{}, len(columns))

	for i, col := range columns {
		if _, dup := seen[col.Name]; dup {
			return nil, fmt.Errorf("column %q: %w", col.Name, ErrDuplicateColumn)
		}
		seen[col.Name] = struct{}{}

		if i == 0 {
			ds.rows = col.Len()
		} else if col.Len() != ds.rows {
			return nil, fmt.Errorf("column %q has %d rows, expected %d: %w",
				col.Name, col.Len(), ds.rows, ErrRaggedColumns)
		}

		if err := col.validate(); err != nil {
			return nil, err
		}
		ds.columns = append(ds.columns, col.Copy())
	}
	return ds, nil
}

// NumRows returns the row count
func (d *Dataset) NumRows() int {
	return d.rows
}

// NumColumns returns the column count
func (d *Dataset) NumColumns() int {
	return len(d.columns)
}

// ColumnNames returns column names in order
func (d *Dataset) ColumnNames() []string {
	names := make([]string, len(d.columns))
	for i, col := range d.columns {
		names[i] = col.Name
	}
	return names
}

// Column returns a copy of the i-th column
func (d *Dataset) Column(i int) Column {
	return d.columns[i].Copy()
}

// ColumnByName returns a copy of the named column
func (d *Dataset) ColumnByName(name string) (Column, bool) {
	for _, col := range d.columns {
		if col.Name == name {
			return col.Copy(), true
		}
	}
	return Column{}, false
}

// Columns returns copies of all columns
func (d *Dataset) Columns() []Column {
	cols := make([]Column, len(d.columns))
	for i, col := range d.columns {
		cols[i] = col.Copy()
	}
	return cols
}

// Kind returns the kind of the i-th column without copying its cells
func (d *Dataset) Kind(i int) Kind {
	return d.columns[i].Kind
}

// Cell returns the cell at the given row and column
func (d *Dataset) Cell(row, col int) Cell {
	return d.columns[col].Cells[row]
}

// Row returns the cells of row i in column order
func (d *Dataset) Row(i int) []Cell {
	row := make([]Cell, len(d.columns))
	for j, col := range d.columns {
		row[j] = col.Cells[i]
	}
	return row
}

// RowKey returns a string that is equal for two rows exactly when every cell is equal
func (d *Dataset) RowKey(i int) string {
	var b strings.Builder
	for _, col := range d.columns {
		col.Cells[i].writeKey(&b)
		b.WriteByte('|')
	}
	return b.String()
}

// Head returns a Dataset holding the first n rows
func (d *Dataset) Head(n int) *Dataset {
	if n < 0 {
		n = 0
	}
	if n > d.rows {
		n = d.rows
	}
	out := &Dataset{columns: make([]Column, len(d.columns)), rows: n}
	for i, col := range d.columns {
		cells := make([]Cell, n)
		copy(cells, col.Cells[:n])
		out.columns[i] = Column{Name: col.Name, Kind: col.Kind, Cells: cells}
	}
	return out
}

// Filter returns a Dataset holding only the rows whose keep entry is true,
// in their original order. keep must have one entry per row.
func (d *Dataset) Filter(keep []bool) *Dataset {
	if len(keep) != d.rows {
		panic(fmt.Sprintf("dataset: filter mask has %d entries for %d rows", len(keep), d.rows))
	}

	retained := 0
	for _, k := range keep {
		if k {
			retained++
		}
	}

	out := &Dataset{columns: make([]Column, len(d.columns)), rows: retained}
	for i, col := range d.columns {
		cells := make([]Cell, 0, retained)
		for r, cell := range col.Cells {
			if keep[r] {
				cells = append(cells, cell)
			}
		}
		out.columns[i] = Column{Name: col.Name, Kind: col.Kind, Cells: cells}
	}
	return out
}

// WithColumn returns a Dataset where the i-th column is replaced by col.
// The replacement must keep the name, kind and length of the original.
func (d *Dataset) WithColumn(i int, col Column) (*Dataset, error) {
	old := d.columns[i]
	if col.Name != old.Name || col.Kind != old.Kind {
		return nil, fmt.Errorf("column %q (%s) cannot replace %q (%s)",
			col.Name, col.Kind, old.Name, old.Kind)
	}
	if col.Len() != d.rows {
		return nil, fmt.Errorf("column %q has %d rows, expected %d: %w",
			col.Name, col.Len(), d.rows, ErrRaggedColumns)
	}
	if err := col.validate(); err != nil {
		return nil, err
	}

	out := &Dataset{columns: make([]Column, len(d.columns)), rows: d.rows}
	copy(out.columns, d.columns)
	out.columns[i] = col.Copy()
	return out, nil
}

// Equal reports whether both datasets have the same columns, kinds and cells
func (d *Dataset) Equal(o *Dataset) bool {
	if d == nil || o == nil {
		return d == o
	}
	if d.rows != o.rows || len(d.columns) != len(o.columns) {
		return false
	}
	for i, col := range d.columns {
		other := o.columns[i]
		if col.Name != other.Name || col.Kind != other.Kind {
			return false
		}
		for r, cell := range col.Cells {
			if !cell.Equal(other.Cells[r]) {
				return false
			}
		}
	}
	return true
}
