package source

import (
	"fmt"
	"slices"

	"github.com/crimson-sun/topics/internal/model"
)

// CorpusConstructor builds a Corpus from its configured arguments.
type CorpusConstructor func(args Args) (Corpus, error)

// ClustersConstructor builds a Clusters provider from its configured arguments.
type ClustersConstructor func(args Args) (Clusters, error)

var (
	corpora  = map[string]CorpusConstructor{}
	clusters = map[string]ClustersConstructor{}
)

// RegisterCorpus adds a corpus constructor under the given provider name.
func RegisterCorpus(name string, ctor CorpusConstructor) {
	corpora[name] = ctor
}

// RegisterClusters adds a cluster constructor under the given provider name.
func RegisterClusters(name string, ctor ClustersConstructor) {
	clusters[name] = ctor
}

// NewCorpus builds the corpus provider registered under name.
func NewCorpus(name string, args Args) (Corpus, error) {
	ctor, ok := corpora[name]
	if !ok {
		return nil, fmt.Errorf("unknown corpus provider %q (have %v): %w", name, names(corpora), model.ErrConfiguration)
	}
	return ctor(args)
}

// NewClusters builds the cluster provider registered under name.
func NewClusters(name string, args Args) (Clusters, error) {
	ctor, ok := clusters[name]
	if !ok {
		return nil, fmt.Errorf("unknown cluster provider %q (have %v): %w", name, names(clusters), model.ErrConfiguration)
	}
	return ctor(args)
}

// CorpusProviders returns the names of all registered corpus providers.
func CorpusProviders() []string {
	return names(corpora)
}

// ClusterProviders returns the names of all registered cluster providers.
func ClusterProviders() []string {
	return names(clusters)
}

func names[T any](m map[string]T) []string {
	out := make([]string, 0, len(m))
	for name := range m {
		out = append(out, name)
	}
	slices.Sort(out)
	return out
}

func missingArg(provider, key string) error {
	return fmt.Errorf("%s provider: missing %q argument: %w", provider, key, model.ErrConfiguration)
}
