// Package grouping maintains the topic → documents partition of a corpus.
//
// Topics live in an arena of records addressed by a stable slot index. The
// externally visible topic ids are positions in a separate id → slot table
// that is rebuilt after every merge, so ids are always contiguous from 0 with
// the outlier topic last.
package grouping

import (
	"fmt"
	"slices"
	"strings"

	"github.com/crimson-sun/topics/internal/model"
)

// record is one topic in the arena.
type record struct {
	label   int   // cluster label the topic was created from
	outlier bool  // the reserved bucket for unclustered documents
	docs    []int // corpus positions, in assignment order
}

// Grouping is the topic partition of a corpus. It is not safe for
// concurrent mutation.
type Grouping struct {
	slots []*record // nil once a slot has been merged away
	ids   []int     // topic id -> slot
}

// New groups corpus positions by cluster label. Distinct non-outlier labels
// become topics 0..K-2 in ascending label order and the outlier topic is
// always present as id K-1, even when no document carries the outlier label.
// An empty label slice produces a grouping with no topics.
func New(labels []int, outlier int) *Grouping {
	g := &Grouping{}
	if len(labels) == 0 {
		return g
	}

	distinct := make([]int, 0)
	seen := make(map[int]bool)
	for _, l := range labels {
		if l == outlier || seen[l] {
			continue
		}
		seen[l] = true
		distinct = append(distinct, l)
	}
	slices.Sort(distinct)

	slotOf := make(map[int]int, len(distinct)+1)
	for _, l := range distinct {
		slotOf[l] = len(g.slots)
		g.slots = append(g.slots, &record{label: l})
	}
	slotOf[outlier] = len(g.slots)
	g.slots = append(g.slots, &record{label: outlier, outlier: true})

	for pos, l := range labels {
		r := g.slots[slotOf[l]]
		r.docs = append(r.docs, pos)
	}

	g.rebuildIDs()
	return g
}

// rebuildIDs renumbers live slots contiguously, preserving slot order.
func (g *Grouping) rebuildIDs() {
	ids := make([]int, 0, len(g.slots))
	for slot, r := range g.slots {
		if r != nil {
			ids = append(ids, slot)
		}
	}
	g.ids = ids
}

// Len returns the number of topics, including the outlier topic.
func (g *Grouping) Len() int {
	return len(g.ids)
}

// Has reports whether id names a topic in the current grouping.
func (g *Grouping) Has(id int) bool {
	return id >= 0 && id < len(g.ids)
}

// Outlier returns the id of the outlier topic, or -1 for an empty grouping.
func (g *Grouping) Outlier() int {
	return len(g.ids) - 1
}

// IsOutlier reports whether id is the outlier topic.
func (g *Grouping) IsOutlier(id int) bool {
	return g.Has(id) && g.record(id).outlier
}

func (g *Grouping) record(id int) *record {
	return g.slots[g.ids[id]]
}

// Label returns the cluster label topic id was created from. After a merge
// the recipient keeps its own label. id must be valid.
func (g *Grouping) Label(id int) int {
	return g.record(id).label
}

// Docs returns a copy of the corpus positions grouped under topic id.
func (g *Grouping) Docs(id int) []int {
	return slices.Clone(g.record(id).docs)
}

// Count returns the number of documents in topic id.
func (g *Grouping) Count(id int) int {
	return len(g.record(id).docs)
}

// Counts returns the document count of every topic, indexed by id.
func (g *Grouping) Counts() []int {
	out := make([]int, len(g.ids))
	for id := range g.ids {
		out[id] = g.Count(id)
	}
	return out
}

// NonOutlier returns the number of topics excluding the outlier topic.
func (g *Grouping) NonOutlier() int {
	if len(g.ids) == 0 {
		return 0
	}
	return len(g.ids) - 1
}

// Texts concatenates, per topic, the corpus text of its documents separated
// by single spaces. A topic without documents yields an empty string.
func (g *Grouping) Texts(corpus []string) []string {
	out := make([]string, len(g.ids))
	for id := range g.ids {
		docs := g.record(id).docs
		parts := make([]string, len(docs))
		for i, pos := range docs {
			parts[i] = corpus[pos]
		}
		out[id] = strings.Join(parts, " ")
	}
	return out
}

// Merge moves every document of donor onto the end of recipient's list and
// removes donor. Remaining topics are renumbered contiguously in their
// previous relative order. The outlier topic cannot be a donor.
func (g *Grouping) Merge(donor, recipient int) error {
	if !g.Has(donor) || !g.Has(recipient) {
		return fmt.Errorf("grouping: merge %d into %d: %w", donor, recipient, model.ErrNotFound)
	}
	if donor == recipient {
		return fmt.Errorf("grouping: merge topic %d into itself: %w", donor, model.ErrInvalidArgument)
	}
	if g.IsOutlier(donor) {
		return fmt.Errorf("grouping: outlier topic %d cannot be merged away: %w", donor, model.ErrInvalidArgument)
	}

	src, dst := g.record(donor), g.record(recipient)
	dst.docs = append(dst.docs, src.docs...)
	g.slots[g.ids[donor]] = nil
	g.rebuildIDs()
	return nil
}

// Validate checks the partition and contiguity invariants against a corpus
// of n documents: every position appears in exactly one topic and the
// outlier topic is the last id.
func (g *Grouping) Validate(n int) error {
	if n == 0 && len(g.ids) == 0 {
		return nil
	}
	if len(g.ids) == 0 {
		return fmt.Errorf("grouping: %d documents but no topics", n)
	}

	seen := make([]bool, n)
	for id, slot := range g.ids {
		if slot < 0 || slot >= len(g.slots) || g.slots[slot] == nil {
			return fmt.Errorf("grouping: topic %d points at retired slot %d", id, slot)
		}
		r := g.slots[slot]
		if r.outlier != (id == len(g.ids)-1) {
			return fmt.Errorf("grouping: outlier topic is not the last id (topic %d)", id)
		}
		for _, pos := range r.docs {
			if pos < 0 || pos >= n {
				return fmt.Errorf("grouping: topic %d holds out-of-range document %d", id, pos)
			}
			if seen[pos] {
				return fmt.Errorf("grouping: document %d assigned twice", pos)
			}
			seen[pos] = true
		}
	}
	for pos, ok := range seen {
		if !ok {
			return fmt.Errorf("grouping: document %d lost", pos)
		}
	}
	return nil
}

// Clone returns a deep copy with compacted slots.
func (g *Grouping) Clone() *Grouping {
	c := &Grouping{
		slots: make([]*record, 0, len(g.ids)),
	}
	for _, slot := range g.ids {
		r := g.slots[slot]
		c.slots = append(c.slots, &record{
			label:   r.label,
			outlier: r.outlier,
			docs:    slices.Clone(r.docs),
		})
	}
	c.rebuildIDs()
	return c
}
