package model

import (
	"errors"
	"fmt"
)

var (
	ErrNotFitted = errors.New("model: predict before fit")
	ErrNoData    = errors.New("model: no samples")
)

// DimensionError reports inputs whose sizes disagree.
type DimensionError struct {
	What      string
	Want, Got int
}

func (e *DimensionError) Error() string {
	return fmt.Sprintf("model: %s mismatch: want %d, got %d", e.What, e.Want, e.Got)
}
