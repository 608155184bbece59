package dataprep

import (
	"fmt"
)

// MissingColumnError reports a projection onto a column the table lacks.
type MissingColumnError struct {
	Name string
}

func (e *MissingColumnError) Error() string {
	return fmt.Sprintf("dataprep: column %q not found", e.Name)
}

// ColumnTypeError reports a feature column that is not numeric.
type ColumnTypeError struct {
	Name string
	Type string
}

func (e *ColumnTypeError) Error() string {
	return fmt.Sprintf("dataprep: column %q is %s, want float", e.Name, e.Type)
}

// UnrecognizedLabelError reports a target value outside the encoder's table.
type UnrecognizedLabelError struct {
	Row   int
	Label string
	Null  bool
}

func (e *UnrecognizedLabelError) Error() string {
	if e.Null {
		return fmt.Sprintf("dataprep: row %d: missing label", e.Row)
	}
	return fmt.Sprintf("dataprep: row %d: unrecognized label %q", e.Row, e.Label)
}
