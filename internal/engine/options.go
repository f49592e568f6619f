package engine

import (
	"log/slog"

	"github.com/crimson-sun/topics/internal/engine/vectorizer"
)

// DefaultOutlier is the cluster label conventionally used for documents the
// clusterer could not place.
const DefaultOutlier = -1

type options struct {
	stopWords []string
	stopPath  string
	outlier   int
	topics    int
	log       *slog.Logger
}

// Option configures an Engine.
type Option func(*options)

// WithStopWords excludes the given terms from the vocabulary.
func WithStopWords(words ...string) Option {
	return func(o *options) {
		o.stopWords = append(o.stopWords, words...)
	}
}

// WithStopWordsFile loads newline-delimited stop words from path at
// construction. An unreadable file fails New with a configuration error.
func WithStopWordsFile(path string) Option {
	return func(o *options) {
		o.stopPath = path
	}
}

// WithOutlier sets the cluster label that marks unclustered documents.
// Default: -1.
func WithOutlier(label int) Option {
	return func(o *options) {
		o.outlier = label
	}
}

// WithTopics reduces the topic space to k topics right after construction.
// Values <= 0 leave the clustering as is.
func WithTopics(k int) Option {
	return func(o *options) {
		o.topics = k
	}
}

// WithLogger sets the destination for reduction progress records.
// Default: discard.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		o.log = l
	}
}

func defaultOptions() options {
	return options{outlier: DefaultOutlier}
}

func (o options) loadStopWords(tok *vectorizer.Tokenizer) (vectorizer.StopWords, error) {
	stop := vectorizer.NewStopWords(tok, o.stopWords)
	if o.stopPath == "" {
		return stop, nil
	}
	fromFile, err := vectorizer.LoadStopWords(tok, o.stopPath)
	if err != nil {
		return nil, err
	}
	for w := range fromFile {
		stop[w] = struct{}{}
	}
	return stop, nil
}
