package ctfidf

import (
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// Similarity returns the topic × topic cosine similarity of the weight
// rows with the diagonal forced to zero, so no topic is its own nearest
// neighbour. Rows with zero norm are similar to nothing. Returns nil for a
// weight matrix without topics.
func Similarity(w *Weights) *mat.Dense {
	n := w.Rows()
	if n == 0 {
		return nil
	}
	sim := mat.NewDense(n, n, nil)
	if w.Values == nil {
		return sim
	}

	_, cols := w.Values.Dims()
	unit := mat.NewDense(n, cols, nil)
	row := make([]float64, cols)
	for i := 0; i < n; i++ {
		mat.Row(row, i, w.Values)
		norm := floats.Norm(row, 2)
		if norm == 0 {
			continue
		}
		floats.Scale(1/norm, row)
		unit.SetRow(i, row)
	}

	sim.Mul(unit, unit.T())
	for i := 0; i < n; i++ {
		sim.Set(i, i, 0)
	}
	return sim
}

// MostSimilar returns the index of the largest entry in row i of sim,
// skipping i itself. Ties go to the lowest index. Returns -1 when the matrix
// has a single row.
func MostSimilar(sim *mat.Dense, i int) int {
	n, _ := sim.Dims()
	best := -1
	bestScore := 0.0
	for j := 0; j < n; j++ {
		if j == i {
			continue
		}
		s := sim.At(i, j)
		if best == -1 || s > bestScore {
			best, bestScore = j, s
		}
	}
	return best
}
