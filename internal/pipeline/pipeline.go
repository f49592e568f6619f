// Package pipeline runs a topic labelling experiment: it loads a corpus and
// its cluster labels, builds the topic engine, optionally reduces the topic
// space, and writes the resulting description to an output.
package pipeline

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/crimson-sun/topics/internal/engine"
	"github.com/crimson-sun/topics/internal/model"
	"github.com/crimson-sun/topics/internal/output"
	"github.com/crimson-sun/topics/internal/source"
)

// DefaultTopN is the number of words described per topic unless overridden.
const DefaultTopN = 10

// Option configures a Pipeline.
type Option func(*Pipeline)

// WithStopWordsFile sets the newline-delimited stop-word file.
func WithStopWordsFile(path string) Option {
	return func(p *Pipeline) { p.stopPath = path }
}

// WithTopics reduces the topic space to k topics before describing.
// Values <= 0 keep the clustering as is.
func WithTopics(k int) Option {
	return func(p *Pipeline) { p.topics = k }
}

// WithTopN sets how many words are described per topic. Default: 10.
func WithTopN(n int) Option {
	return func(p *Pipeline) { p.topN = n }
}

// WithOutlier sets the cluster label of unclustered documents. Default: -1.
func WithOutlier(label int) Option {
	return func(p *Pipeline) { p.outlier = label }
}

// WithTopic restricts the description to a single topic id.
func WithTopic(id int) Option {
	return func(p *Pipeline) {
		p.topic = id
		p.single = true
	}
}

// WithLogger sets the logger for progress records. Default: slog.Default().
func WithLogger(l *slog.Logger) Option {
	return func(p *Pipeline) { p.log = l }
}

// Pipeline connects a corpus, its clusters and an output.
type Pipeline struct {
	corpus   source.Corpus
	clusters source.Clusters
	output   output.Output

	stopPath string
	topics   int
	topN     int
	outlier  int
	topic    int
	single   bool
	log      *slog.Logger
}

// New creates a Pipeline from the given components.
func New(corpus source.Corpus, clusters source.Clusters, out output.Output, opts ...Option) *Pipeline {
	p := &Pipeline{
		corpus:   corpus,
		clusters: clusters,
		output:   out,
		topN:     DefaultTopN,
		outlier:  engine.DefaultOutlier,
		log:      slog.Default(),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Build loads the corpus and labels and constructs the engine, reducing it
// when a topic count was requested.
func (p *Pipeline) Build(ctx context.Context) (*engine.Engine, error) {
	start := time.Now()

	docs, err := p.corpus.LoadData(ctx)
	if err != nil {
		return nil, fmt.Errorf("pipeline load corpus: %w", err)
	}
	labels, err := p.clusters.Labels(ctx)
	if err != nil {
		return nil, fmt.Errorf("pipeline load clusters: %w", err)
	}
	p.log.Info("loaded corpus", "documents", len(docs), "labels", len(labels))

	eng, err := engine.New(docs, labels,
		engine.WithStopWordsFile(p.stopPath),
		engine.WithOutlier(p.outlier),
		engine.WithTopics(p.topics),
		engine.WithLogger(p.log),
	)
	if err != nil {
		return nil, fmt.Errorf("pipeline build engine: %w", err)
	}
	p.log.Info("topic engine ready",
		"topics", eng.NumTopics(),
		"vocabulary", len(eng.Vocabulary()),
		"duration", time.Since(start),
	)
	return eng, nil
}

// Run builds the engine, describes its topics and writes the report.
func (p *Pipeline) Run(ctx context.Context) (model.Report, error) {
	eng, err := p.Build(ctx)
	if err != nil {
		return model.Report{}, err
	}

	var report model.Report
	if p.single {
		report, err = eng.DescribeTopic(p.topic, p.topN)
	} else {
		report, err = eng.Describe(p.topN)
	}
	if err != nil {
		return model.Report{}, fmt.Errorf("pipeline describe: %w", err)
	}

	if err := p.output.Write(ctx, report); err != nil {
		return model.Report{}, fmt.Errorf("pipeline output: %w", err)
	}
	return report, nil
}

// Counts builds the engine and returns the document count of every topic,
// or of the selected topic only.
func (p *Pipeline) Counts(ctx context.Context) ([]model.DocCount, error) {
	eng, err := p.Build(ctx)
	if err != nil {
		return nil, err
	}
	if !p.single {
		return eng.CountDocuments(), nil
	}
	n, err := eng.CountTopicDocuments(p.topic)
	if err != nil {
		return nil, fmt.Errorf("pipeline count: %w", err)
	}
	return []model.DocCount{{ID: p.topic, Outlier: p.topic == eng.Outlier(), Count: n}}, nil
}

// Close shuts down the output.
func (p *Pipeline) Close() error {
	return p.output.Close()
}
