package dataset

import "fmt"

// Kind is the declared kind of a column
type Kind string

const (
	KindNumeric     Kind = "NUMERIC"
	KindCategorical Kind = "CATEGORICAL"
)

// Valid reports whether k is a known kind
func (k Kind) Valid() bool {
	switch k {
	case KindNumeric, KindCategorical:
		return true
	}
	return false
}

// Column is a named, kinded sequence of cells aligned by row index
type Column struct {
	Name  string
	Kind  Kind
	Cells []Cell
}

// NewNumeric creates a NUMERIC column
func NewNumeric(name string, cells ...Cell) Column {
	return Column{Name: name, Kind: KindNumeric, Cells: cells}
}

// NewCategorical creates a CATEGORICAL column
func NewCategorical(name string, cells ...Cell) Column {
	return Column{Name: name, Kind: KindCategorical, Cells: cells}
}

// Len returns the number of cells in the column
func (c Column) Len() int {
	return len(c.Cells)
}

// MissingCount returns how many cells hold the MISSING marker
func (c Column) MissingCount() int {
	n := 0
	for _, cell := range c.Cells {
		if cell.IsMissing() {
			n++
		}
	}
	return n
}

// Floats returns the non-missing values of a NUMERIC column in row order
func (c Column) Floats() []float64 {
	values := make([]float64, 0, len(c.Cells))
	for _, cell := range c.Cells {
		if v, ok := cell.Float(); ok {
			values = append(values, v)
		}
	}
	return values
}

// Strings returns the non-missing tokens of a CATEGORICAL column in row order
func (c Column) Strings() []string {
	values := make([]string, 0, len(c.Cells))
	for _, cell := range c.Cells {
		if s, ok := cell.Str(); ok {
			values = append(values, s)
		}
	}
	return values
}

// Copy creates a deep copy of the column to prevent mutation
func (c Column) Copy() Column {
	cells := make([]Cell, len(c.Cells))
	copy(cells, c.Cells)
	return Column{Name: c.Name, Kind: c.Kind, Cells: cells}
}

// Fill returns a copy of the column with every MISSING cell replaced by v,
// together with the number of cells replaced
func (c Column) Fill(v Cell) (Column, int) {
	out := c.Copy()
	filled := 0
	for i, cell := range out.Cells {
		if cell.IsMissing() {
			out.Cells[i] = v
			filled++
		}
	}
	return out, filled
}

// validate checks that every cell agrees with the column kind
func (c Column) validate() error {
	if !c.Kind.Valid() {
		return fmt.Errorf("column %q: %w: %q", c.Name, ErrUnknownKind, c.Kind)
	}
	for i, cell := range c.Cells {
		switch {
		case cell.IsMissing():
		case c.Kind == KindNumeric && cell.tag != tagNumber,
			c.Kind == KindCategorical && cell.tag != tagText:
			return &KindMismatchError{Column: c.Name, Kind: c.Kind, RowIndex: i, Value: cell.String()}
		}
	}
	return nil
}
