// Package vectorizer turns per-topic text into a vocabulary and a
// topic × term count matrix.
package vectorizer

import (
	"slices"

	"gonum.org/v1/gonum/mat"
)

// Counts is a topic × term occurrence matrix with the vocabulary that
// defines its column order. Matrix is nil when either dimension is zero.
type Counts struct {
	Vocabulary []string
	Matrix     *mat.Dense
	Topics     int
}

// Rows returns the number of topics.
func (c *Counts) Rows() int {
	return c.Topics
}

// Cols returns the vocabulary size.
func (c *Counts) Cols() int {
	return len(c.Vocabulary)
}

// At returns the count of term w in topic t.
func (c *Counts) At(t, w int) float64 {
	if c.Matrix == nil {
		return 0
	}
	return c.Matrix.At(t, w)
}

// Fit tokenizes each topic text, drops stop words, and counts the remaining
// terms. The vocabulary holds every surviving term in lexical order. Row i of
// the matrix corresponds to texts[i]; an empty text gives an all-zero row.
func Fit(tok *Tokenizer, stop StopWords, texts []string) *Counts {
	perTopic := make([]map[string]int, len(texts))
	seen := make(map[string]struct{})
	for i, text := range texts {
		tf := make(map[string]int)
		for _, term := range tok.Tokenize(text) {
			if stop.Contains(term) {
				continue
			}
			tf[term]++
			seen[term] = struct{}{}
		}
		perTopic[i] = tf
	}

	vocab := make([]string, 0, len(seen))
	for term := range seen {
		vocab = append(vocab, term)
	}
	slices.Sort(vocab)

	c := &Counts{Vocabulary: vocab, Topics: len(texts)}
	if len(texts) == 0 || len(vocab) == 0 {
		return c
	}

	index := make(map[string]int, len(vocab))
	for j, term := range vocab {
		index[term] = j
	}
	data := make([]float64, len(texts)*len(vocab))
	for i, tf := range perTopic {
		for term, n := range tf {
			data[i*len(vocab)+index[term]] = float64(n)
		}
	}
	c.Matrix = mat.NewDense(len(texts), len(vocab), data)
	return c
}
