package dataset

import (
	"math"
	"strconv"
	"strings"
)

type cellTag uint8

const (
	tagMissing cellTag = iota
	tagNumber
	tagText
)

// Cell is a single value in a column: a number, a text token, or MISSING.
// The zero value is MISSING.
type Cell struct {
	tag  cellTag
	num  float64
	text string
}

// NA returns the MISSING marker
func NA() Cell {
	return Cell{}
}

// Num returns a numeric cell. NaN is stored as MISSING.
func Num(v float64) Cell {
	if math.IsNaN(v) {
		return NA()
	}
	return Cell{tag: tagNumber, num: v}
}

// Text returns a categorical cell
func Text(s string) Cell {
	return Cell{tag: tagText, text: s}
}

// IsMissing reports whether the cell holds the MISSING marker
func (c Cell) IsMissing() bool {
	return c.tag == tagMissing
}

// Float returns the numeric value and true if the cell holds a number
func (c Cell) Float() (float64, bool) {
	if c.tag != tagNumber {
		return 0, false
	}
	return c.num, true
}

// Str returns the text value and true if the cell holds a text token
func (c Cell) Str() (string, bool) {
	if c.tag != tagText {
		return "", false
	}
	return c.text, true
}

// Equal reports whether two cells hold the same value.
// MISSING equals MISSING.
func (c Cell) Equal(o Cell) bool {
	if c.tag != o.tag {
		return false
	}
	switch c.tag {
	case tagNumber:
		return c.num == o.num
	case tagText:
		return c.text == o.text
	}
	return true
}

// String renders the cell for display. MISSING renders as NaN.
func (c Cell) String() string {
	switch c.tag {
	case tagNumber:
		return strconv.FormatFloat(c.num, 'g', -1, 64)
	case tagText:
		return c.text
	}
	return "NaN"
}

// writeKey appends an unambiguous encoding of the cell to b
func (c Cell) writeKey(b *strings.Builder) {
	switch c.tag {
	case tagNumber:
		v := c.num
		if v == 0 {
			v = 0 // fold -0 into 0
		}
		b.WriteByte('n')
		b.WriteString(strconv.FormatFloat(v, 'g', -1, 64))
		b.WriteByte(';')
	case tagText:
		b.WriteByte('s')
		b.WriteString(strconv.Itoa(len(c.text)))
		b.WriteByte(':')
		b.WriteString(c.text)
	default:
		b.WriteByte('-')
	}
}
