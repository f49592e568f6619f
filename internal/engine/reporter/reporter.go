// Package reporter ranks topic terms by weight and renders topic
// descriptions for people.
package reporter

import (
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/crimson-sun/topics/internal/engine/ctfidf"
	"github.com/crimson-sun/topics/internal/model"
)

const separatorWidth = 50

// TopN returns the n highest-weighted terms of topic row, highest first.
// Equal weights keep vocabulary order. n larger than the vocabulary returns
// every term; n <= 0 returns none.
func TopN(w *ctfidf.Weights, row, n int) []model.WordScore {
	if n <= 0 || w.Cols() == 0 {
		return nil
	}
	weights := w.Row(row)

	order := make([]int, len(weights))
	for i := range order {
		order[i] = i
	}
	slices.SortStableFunc(order, func(a, b int) int {
		switch {
		case weights[a] > weights[b]:
			return -1
		case weights[a] < weights[b]:
			return 1
		default:
			return 0
		}
	})

	n = min(n, len(order))
	out := make([]model.WordScore, n)
	for i, j := range order[:n] {
		out[i] = model.WordScore{Word: w.Vocabulary[j], Score: weights[j]}
	}
	return out
}

// Render writes the report as a dash-separated list of topics, each with
// its document count and one bulleted line per term.
func Render(w io.Writer, r model.Report) error {
	sep := strings.Repeat("-", separatorWidth)
	var b strings.Builder
	for _, t := range r.Topics {
		b.WriteString(sep)
		b.WriteByte('\n')
		b.WriteString(Heading(t))
		b.WriteString(":\n")
		for _, ws := range t.Words {
			fmt.Fprintf(&b, "\t* %s\n", ws.Word)
		}
	}
	b.WriteString(sep)
	b.WriteByte('\n')

	_, err := io.WriteString(w, b.String())
	return err
}

// Heading returns the one-line title of a topic, e.g. "Topic 3 (12 documents)".
func Heading(t model.TopicReport) string {
	name := fmt.Sprintf("Topic %d", t.ID)
	if t.Outlier {
		name = "Outliers"
	}
	return fmt.Sprintf("%s (%s)", name, documents(t.Documents))
}

func documents(n int) string {
	if n == 1 {
		return "1 document"
	}
	return fmt.Sprintf("%d documents", n)
}
