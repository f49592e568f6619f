package engine

import (
	"fmt"
	"log/slog"

	"github.com/crimson-sun/topics/internal/engine/ctfidf"
	"github.com/crimson-sun/topics/internal/engine/grouping"
	"github.com/crimson-sun/topics/internal/engine/reducer"
	"github.com/crimson-sun/topics/internal/engine/reporter"
	"github.com/crimson-sun/topics/internal/engine/vectorizer"
	"github.com/crimson-sun/topics/internal/model"
)

// Engine labels the topics of a clustered corpus: it groups documents by
// cluster, weights terms with class-TF-IDF, ranks them per topic and
// optionally merges topics down to a target count.
//
// Not safe for concurrent use. Weights and vocabulary are rebuilt from
// scratch after every change to the grouping.
type Engine struct {
	corpus  []string
	groups  *grouping.Grouping
	weights *ctfidf.Weights
	tok     *vectorizer.Tokenizer
	stop    vectorizer.StopWords
	reducer *reducer.Reducer
	log     *slog.Logger
}

// New groups corpus by labels and computes the initial weights. corpus and
// labels must be index-aligned.
func New(corpus []string, labels []int, opts ...Option) (*Engine, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	if len(corpus) != len(labels) {
		return nil, fmt.Errorf("engine: %d documents but %d labels: %w",
			len(corpus), len(labels), model.ErrInvalidArgument)
	}

	tok := vectorizer.NewTokenizer()
	stop, err := o.loadStopWords(tok)
	if err != nil {
		return nil, fmt.Errorf("engine: %w", err)
	}

	log := o.log
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}

	e := &Engine{
		corpus:  append([]string(nil), corpus...),
		groups:  grouping.New(labels, o.outlier),
		tok:     tok,
		stop:    stop,
		reducer: reducer.New(log),
		log:     log,
	}
	e.weights = e.rebuild(e.groups)

	log.Debug("topics grouped",
		"documents", len(corpus),
		"topics", e.groups.NonOutlier(),
		"vocabulary", e.weights.Cols(),
	)

	if o.topics > 0 {
		if err := e.Reduce(o.topics); err != nil {
			return nil, err
		}
	}
	return e, nil
}

// rebuild recomputes vocabulary, counts and weights for g.
func (e *Engine) rebuild(g *grouping.Grouping) *ctfidf.Weights {
	counts := vectorizer.Fit(e.tok, e.stop, g.Texts(e.corpus))
	return ctfidf.Compute(counts, len(e.corpus))
}

// Reduce merges topics until k non-outlier topics remain. See
// reducer.Reducer.Reduce for the exact semantics.
func (e *Engine) Reduce(k int) error {
	res, err := e.reducer.Reduce(e.groups, e.weights, k, e.rebuild)
	e.weights = res.Weights
	if err != nil {
		return fmt.Errorf("engine: %w", err)
	}
	return nil
}

// NumTopics returns the number of topics including the outlier topic.
func (e *Engine) NumTopics() int {
	return e.groups.Len()
}

// Outlier returns the id of the outlier topic, or -1 for an empty corpus.
func (e *Engine) Outlier() int {
	return e.groups.Outlier()
}

// Vocabulary returns the terms naming the columns of Weights.
func (e *Engine) Vocabulary() []string {
	return append([]string(nil), e.weights.Vocabulary...)
}

// Weights returns a copy of the current class-TF-IDF weights.
func (e *Engine) Weights() *ctfidf.Weights {
	return e.weights.Clone()
}

// Grouping returns a copy of the current topic grouping.
func (e *Engine) Grouping() *grouping.Grouping {
	return e.groups.Clone()
}

func (e *Engine) check(id int) error {
	if !e.groups.Has(id) {
		return fmt.Errorf("engine: topic %d: %w", id, model.ErrNotFound)
	}
	return nil
}

// Documents returns the texts grouped under topic id.
func (e *Engine) Documents(id int) ([]string, error) {
	if err := e.check(id); err != nil {
		return nil, err
	}
	docs := e.groups.Docs(id)
	out := make([]string, len(docs))
	for i, pos := range docs {
		out[i] = e.corpus[pos]
	}
	return out, nil
}

// CountDocuments returns the document count of every topic in id order.
func (e *Engine) CountDocuments() []model.DocCount {
	counts := e.groups.Counts()
	out := make([]model.DocCount, len(counts))
	for id, n := range counts {
		out[id] = model.DocCount{ID: id, Outlier: e.groups.IsOutlier(id), Count: n}
	}
	return out
}

// CountTopicDocuments returns the document count of topic id.
func (e *Engine) CountTopicDocuments(id int) (int, error) {
	if err := e.check(id); err != nil {
		return 0, err
	}
	return e.groups.Count(id), nil
}

// TopNWords returns the n highest-weighted terms of every topic.
func (e *Engine) TopNWords(n int) ([]model.TopicWords, error) {
	if n < 0 {
		return nil, fmt.Errorf("engine: word count %d: %w", n, model.ErrInvalidArgument)
	}
	out := make([]model.TopicWords, e.groups.Len())
	for id := range out {
		out[id] = e.topicWords(id, n)
	}
	return out, nil
}

// TopicWords returns the n highest-weighted terms of topic id.
func (e *Engine) TopicWords(id, n int) (model.TopicWords, error) {
	if n < 0 {
		return model.TopicWords{}, fmt.Errorf("engine: word count %d: %w", n, model.ErrInvalidArgument)
	}
	if err := e.check(id); err != nil {
		return model.TopicWords{}, err
	}
	return e.topicWords(id, n), nil
}

func (e *Engine) topicWords(id, n int) model.TopicWords {
	return model.TopicWords{
		ID:    id,
		Label: e.groups.Label(id),
		Words: reporter.TopN(e.weights, id, n),
	}
}

// Describe reports every topic with its document count and top n terms.
func (e *Engine) Describe(n int) (model.Report, error) {
	all, err := e.TopNWords(n)
	if err != nil {
		return model.Report{}, err
	}
	r := e.report()
	for _, tw := range all {
		r.Topics = append(r.Topics, e.topicReport(tw))
	}
	return r, nil
}

// DescribeTopic reports a single topic.
func (e *Engine) DescribeTopic(id, n int) (model.Report, error) {
	tw, err := e.TopicWords(id, n)
	if err != nil {
		return model.Report{}, err
	}
	r := e.report()
	r.Topics = []model.TopicReport{e.topicReport(tw)}
	return r, nil
}

func (e *Engine) report() model.Report {
	return model.Report{
		Vocabulary: e.weights.Cols(),
		Corpus:     len(e.corpus),
	}
}

func (e *Engine) topicReport(tw model.TopicWords) model.TopicReport {
	return model.TopicReport{
		ID:        tw.ID,
		Label:     tw.Label,
		Outlier:   e.groups.IsOutlier(tw.ID),
		Documents: e.groups.Count(tw.ID),
		Words:     tw.Words,
	}
}
