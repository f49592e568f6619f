// Package source defines the corpus and cluster providers the topic
// pipeline consumes, and a registry that resolves them by configured name.
package source

import "context"

// Corpus provides the ordered documents to label.
type Corpus interface {
	LoadData(ctx context.Context) ([]string, error)
}

// Clusters provides one cluster label per corpus document, in corpus order.
type Clusters interface {
	Labels(ctx context.Context) ([]int, error)
}

// Args holds provider-specific settings from the experiment configuration.
type Args map[string]string

// Require returns the value of key or a configuration error naming it.
func (a Args) Require(provider, key string) (string, error) {
	v := a[key]
	if v == "" {
		return "", missingArg(provider, key)
	}
	return v, nil
}
