package kmeans

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Point is a raw (latitude, longitude) pair.
type Point struct {
	Lat float64
	Lon float64
}

const dims = 2

var columnNames = [dims]string{"latitude", "longitude"}

func (p Point) component(j int) float64 {
	if j == 0 {
		return p.Lat
	}
	return p.Lon
}

// ColumnStats holds the population mean and variance of one dimension.
type ColumnStats struct {
	Mean     float64
	Variance float64
}

// Normalize converts points into per-dimension z-scores.
//
// The variance is the population variance (divisor n). A dimension in which
// every value is identical cannot be scaled and is reported as a
// *DegenerateColumnError instead of producing NaN rows.
func Normalize(points []Point) ([][]float64, error) {
	if len(points) == 0 {
		return nil, ErrNoPoints
	}

	cols := make([][]float64, dims)
	for j := range cols {
		cols[j] = make([]float64, len(points))
	}
	for i, p := range points {
		for j := range cols {
			v := p.component(j)
			if !finite(v) {
				return nil, fmt.Errorf("normalize: point %d %s=%v: %w", i, columnNames[j], v, ErrNonFiniteCoordinate)
			}
			cols[j][i] = v
		}
	}

	stats := make([]ColumnStats, dims)
	for j, col := range cols {
		// Compare extremes rather than the computed variance: summation
		// rounding can leave a tiny non-zero variance for a constant column.
		if floats.Max(col) == floats.Min(col) {
			return nil, &DegenerateColumnError{Column: columnNames[j], Value: col[0]}
		}
		s := columnStats(col)
		if !finite(s.Mean) || !finite(s.Variance) {
			return nil, fmt.Errorf("normalize: %s mean=%v variance=%v: %w", columnNames[j], s.Mean, s.Variance, ErrNonFiniteCoordinate)
		}
		if s.Variance == 0 {
			return nil, &DegenerateColumnError{Column: columnNames[j], Value: s.Mean}
		}
		stats[j] = s
	}

	out := make([][]float64, len(points))
	for i := range out {
		row := make([]float64, dims)
		for j, s := range stats {
			row[j] = (cols[j][i] - s.Mean) / math.Sqrt(s.Variance)
		}
		out[i] = row
	}
	return out, nil
}

func columnStats(col []float64) ColumnStats {
	mean, variance := stat.PopMeanVariance(col, nil)
	return ColumnStats{Mean: mean, Variance: variance}
}

func finite(v float64) bool { return !math.IsNaN(v) && !math.IsInf(v, 0) }
