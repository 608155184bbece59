package core

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// Order is the linearization convention of a flat 2-D array.
type Order int

const (
	// RowMajor stores each row contiguously.
	RowMajor Order = iota
	// ColumnMajor stores each column contiguously.
	ColumnMajor
)

func (o Order) String() string {
	switch o {
	case RowMajor:
		return "row-major"
	case ColumnMajor:
		return "column-major"
	}
	return fmt.Sprintf("Order(%d)", int(o))
}

// ShapeError reports a flat slice whose length does not match rows*cols.
type ShapeError struct {
	Rows, Cols int
	Len        int
}

func (e *ShapeError) Error() string {
	return fmt.Sprintf("core: %d values cannot fill a %dx%d matrix", e.Len, e.Rows, e.Cols)
}

// Reflow re-threads a flat slice laid out in the given order into a dense
// row-major matrix, so that the result's (r, c) is the source's (r, c).
//
// Positions are tracked explicitly while walking the source. For a row-major
// source the column index advances and wraps to the next row after cols-1;
// for a column-major source the row index advances and wraps to the next
// column after rows-1.
//
// Zero rows or columns yield an empty matrix (gonum has no 0xN Dense).
func Reflow(flat []float64, rows, cols int, order Order) (*mat.Dense, error) {
	if rows < 0 || cols < 0 || len(flat) != rows*cols {
		return nil, &ShapeError{Rows: rows, Cols: cols, Len: len(flat)}
	}
	if order != RowMajor && order != ColumnMajor {
		return nil, fmt.Errorf("core: unknown order %v", order)
	}
	if rows == 0 || cols == 0 {
		return &mat.Dense{}, nil
	}

	m := mat.NewDense(rows, cols, nil)
	var r, c int
	for _, v := range flat {
		m.Set(r, c, v)
		switch order {
		case RowMajor:
			if c == cols-1 {
				r++
				c = 0
			} else {
				c++
			}
		case ColumnMajor:
			if r == rows-1 {
				c++
				r = 0
			} else {
				r++
			}
		}
	}
	return m, nil
}

// Flatten linearizes m in the given order. It is the inverse of Reflow.
func Flatten(m mat.Matrix, order Order) []float64 {
	if d, ok := m.(*mat.Dense); ok && d.IsEmpty() {
		return nil
	}
	rows, cols := m.Dims()
	out := make([]float64, 0, rows*cols)
	switch order {
	case ColumnMajor:
		for j := 0; j < cols; j++ {
			for i := 0; i < rows; i++ {
				out = append(out, m.At(i, j))
			}
		}
	default:
		for i := 0; i < rows; i++ {
			for j := 0; j < cols; j++ {
				out = append(out, m.At(i, j))
			}
		}
	}
	return out
}
