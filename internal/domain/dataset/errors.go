package dataset

import (
	"errors"
	"fmt"
)

var (
	ErrRaggedColumns   = errors.New("columns have different lengths")
	ErrDuplicateColumn = errors.New("duplicate column name")
	ErrUnknownKind     = errors.New("unknown column kind")
	ErrKindMismatch    = errors.New("cell does not match column kind")
)

// KindMismatchError reports a cell whose value does not agree with its column's kind
type KindMismatchError struct {
	Column   string
	Kind     Kind
	RowIndex int
	Value    string
}

func (e *KindMismatchError) Error() string {
	return fmt.Sprintf("column %q (%s): value %q at row %d does not match column kind",
		e.Column, e.Kind, e.Value, e.RowIndex)
}

func (e *KindMismatchError) Unwrap() error {
	return ErrKindMismatch
}
