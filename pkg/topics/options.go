package topics

import (
	"log/slog"

	"github.com/crimson-sun/topics/internal/engine"
)

// Option configures a Model.
type Option func(*[]engine.Option)

// WithStopWords excludes the given terms from every topic's vocabulary.
func WithStopWords(words ...string) Option {
	return func(o *[]engine.Option) {
		*o = append(*o, engine.WithStopWords(words...))
	}
}

// WithStopWordsFile loads newline-delimited stop words from path.
// Lines starting with # are ignored.
func WithStopWordsFile(path string) Option {
	return func(o *[]engine.Option) {
		*o = append(*o, engine.WithStopWordsFile(path))
	}
}

// WithOutlier sets the cluster label of unclustered documents. Default: -1.
func WithOutlier(label int) Option {
	return func(o *[]engine.Option) {
		*o = append(*o, engine.WithOutlier(label))
	}
}

// WithTopics reduces the model to k topics plus the outlier topic as part
// of New. Values <= 0 keep the clustering as is.
func WithTopics(k int) Option {
	return func(o *[]engine.Option) {
		*o = append(*o, engine.WithTopics(k))
	}
}

// WithLogger receives reduction progress records. Default: discard.
func WithLogger(l *slog.Logger) Option {
	return func(o *[]engine.Option) {
		*o = append(*o, engine.WithLogger(l))
	}
}
