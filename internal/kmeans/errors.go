package kmeans

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidClusterCount is returned when k is not in [1, number of items].
	ErrInvalidClusterCount = errors.New("kmeans: cluster count must be between 1 and the number of items")

	// ErrDegenerateColumn matches any *DegenerateColumnError.
	ErrDegenerateColumn = errors.New("kmeans: coordinate column has zero variance")

	// ErrNonFiniteCoordinate is returned for NaN or infinite input coordinates.
	ErrNonFiniteCoordinate = errors.New("kmeans: coordinate is not a finite number")

	// ErrNoPoints is returned when normalization is asked to work on an empty batch.
	ErrNoPoints = errors.New("kmeans: no points to normalize")
)

// DegenerateColumnError reports a dimension whose values are all identical,
// which would make z-score normalization divide by zero.
type DegenerateColumnError struct {
	Column string
	Value  float64
}

func (e *DegenerateColumnError) Error() string {
	return fmt.Sprintf("kmeans: %s column has zero variance (every value is %v)", e.Column, e.Value)
}

func (e *DegenerateColumnError) Is(target error) bool {
	return target == ErrDegenerateColumn
}
