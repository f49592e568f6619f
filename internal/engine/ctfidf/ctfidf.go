// Package ctfidf computes class-based TF-IDF weights: term frequency within
// a topic multiplied by an inverse frequency computed over the whole corpus.
package ctfidf

import (
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"

	"github.com/crimson-sun/topics/internal/engine/vectorizer"
)

// Weights is a topic × term relevance matrix together with the vocabulary
// that names its columns. The two are only meaningful together. Matrices are
// nil when the topic count or the vocabulary is empty.
type Weights struct {
	Vocabulary []string
	TF         *mat.Dense    // count / topic total
	IDF        *mat.VecDense // ln(m / td)
	Values     *mat.Dense    // TF * IDF
	Topics     int
}

// Compute derives TF, IDF and their product from a count matrix and the
// number of documents m in the corpus.
//
//	tf(t, w)  = count(t, w) / Σ_w count(t, w)   (0 for a topic with no terms)
//	td(w)     = Σ_t count(t, w)
//	idf(w)    = ln(m / td(w))                   (0 when td or m is 0)
func Compute(c *vectorizer.Counts, m int) *Weights {
	w := &Weights{
		Vocabulary: c.Vocabulary,
		Topics:     c.Rows(),
	}
	if c.Matrix == nil {
		return w
	}
	rows, cols := c.Matrix.Dims()

	tf := mat.NewDense(rows, cols, nil)
	row := make([]float64, cols)
	for i := 0; i < rows; i++ {
		mat.Row(row, i, c.Matrix)
		total := floats.Sum(row)
		if total == 0 {
			continue
		}
		floats.Scale(1/total, row)
		tf.SetRow(i, row)
	}

	idf := mat.NewVecDense(cols, nil)
	col := make([]float64, rows)
	for j := 0; j < cols; j++ {
		mat.Col(col, j, c.Matrix)
		idf.SetVec(j, inverseFrequency(m, floats.Sum(col)))
	}

	values := mat.NewDense(rows, cols, nil)
	values.Apply(func(_, j int, v float64) float64 {
		return v * idf.AtVec(j)
	}, tf)

	w.TF = tf
	w.IDF = idf
	w.Values = values
	return w
}

func inverseFrequency(m int, td float64) float64 {
	if td <= 0 || m <= 0 {
		return 0
	}
	return math.Log(float64(m) / td)
}

// Rows returns the number of topics.
func (w *Weights) Rows() int {
	return w.Topics
}

// Cols returns the vocabulary size.
func (w *Weights) Cols() int {
	return len(w.Vocabulary)
}

// At returns the weight of term j in topic i.
func (w *Weights) At(i, j int) float64 {
	if w.Values == nil {
		return 0
	}
	return w.Values.At(i, j)
}

// Row returns a copy of topic i's weight vector.
func (w *Weights) Row(i int) []float64 {
	out := make([]float64, w.Cols())
	if w.Values != nil {
		mat.Row(out, i, w.Values)
	}
	return out
}

// Clone returns a deep copy that shares nothing with w.
func (w *Weights) Clone() *Weights {
	c := &Weights{
		Vocabulary: append([]string(nil), w.Vocabulary...),
		Topics:     w.Topics,
	}
	if w.Values != nil {
		c.TF = mat.DenseCopyOf(w.TF)
		c.IDF = mat.VecDenseCopyOf(w.IDF)
		c.Values = mat.DenseCopyOf(w.Values)
	}
	return c
}

// Equal reports whether a and b hold the same vocabulary and weights.
func Equal(a, b *Weights) bool {
	if a.Topics != b.Topics || len(a.Vocabulary) != len(b.Vocabulary) {
		return false
	}
	for i := range a.Vocabulary {
		if a.Vocabulary[i] != b.Vocabulary[i] {
			return false
		}
	}
	if a.Values == nil || b.Values == nil {
		return a.Values == nil && b.Values == nil
	}
	return mat.Equal(a.Values, b.Values)
}
