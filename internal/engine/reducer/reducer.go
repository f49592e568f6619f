// Package reducer compresses an over-segmented topic space by repeatedly
// merging the smallest topic into its most similar neighbour.
package reducer

import (
	"fmt"
	"log/slog"

	"github.com/crimson-sun/topics/internal/engine/ctfidf"
	"github.com/crimson-sun/topics/internal/engine/grouping"
	"github.com/crimson-sun/topics/internal/model"
)

// Rebuilder recomputes the weight matrix for the current grouping.
type Rebuilder func(g *grouping.Grouping) *ctfidf.Weights

// Merge records one reduction step. Ids are those in effect before the step.
type Merge struct {
	Donor      int
	Recipient  int
	Similarity float64
}

// Result is the outcome of a reduction.
type Result struct {
	Weights *ctfidf.Weights // weights for the final grouping
	Merges  []Merge
}

// Reducer merges topics until a target count is reached.
type Reducer struct {
	log *slog.Logger
}

// New creates a Reducer that reports progress to log. A nil logger
// discards progress records.
func New(log *slog.Logger) *Reducer {
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	return &Reducer{log: log}
}

// Reduce merges topics of g until k non-outlier topics remain, rebuilding
// weights after every merge. k == 0 collapses everything into a single
// topic plus the outlier topic. If g already has k or fewer non-outlier
// topics nothing changes and w is returned as is.
func (r *Reducer) Reduce(g *grouping.Grouping, w *ctfidf.Weights, k int, rebuild Rebuilder) (Result, error) {
	if k < 0 {
		return Result{Weights: w}, fmt.Errorf("reducer: topic count %d: %w", k, model.ErrInvalidArgument)
	}
	target := max(k, 1)
	found := g.NonOutlier()
	if found <= target {
		return Result{Weights: w}, nil
	}

	r.log.Info("topics found, compressing", "topics", found, "target", target)

	res := Result{Weights: w}
	for step := found - target; step > 0; step-- {
		if g.Len() < 2 {
			return res, fmt.Errorf("reducer: %d topics left, nothing to merge: %w", g.Len(), model.ErrInvalidArgument)
		}
		m := nextMerge(g, res.Weights)
		if err := g.Merge(m.Donor, m.Recipient); err != nil {
			return res, fmt.Errorf("reducer: %w", err)
		}
		res.Merges = append(res.Merges, m)
		res.Weights = rebuild(g)

		r.log.Debug("merged topics",
			"donor", m.Donor,
			"recipient", m.Recipient,
			"similarity", m.Similarity,
			"remaining", g.NonOutlier(),
		)
	}

	r.log.Info("final number of topics", "topics", g.NonOutlier())
	return res, nil
}

// nextMerge picks the donor (smallest non-outlier topic, lowest id on ties)
// and its recipient (the topic most similar to the donor by its own row of
// the similarity matrix, which may be the outlier topic).
func nextMerge(g *grouping.Grouping, w *ctfidf.Weights) Merge {
	donor := 0
	for id := 1; id < g.Outlier(); id++ {
		if g.Count(id) < g.Count(donor) {
			donor = id
		}
	}

	sim := ctfidf.Similarity(w)
	recipient := ctfidf.MostSimilar(sim, donor)
	return Merge{
		Donor:      donor,
		Recipient:  recipient,
		Similarity: sim.At(donor, recipient),
	}
}
