package topics

import (
	"fmt"
	"strings"
	"sync"

	"github.com/crimson-sun/topics/internal/engine"
	"github.com/crimson-sun/topics/internal/engine/reporter"
	"github.com/crimson-sun/topics/internal/model"
)

// Model holds the topics of a labelled corpus. Safe for concurrent use.
type Model struct {
	mu     sync.RWMutex
	engine *engine.Engine
}

// New groups docs by their cluster labels and computes the class-TF-IDF
// weights of every topic. labels must have one entry per document.
func New(docs []string, labels []int, opts ...Option) (*Model, error) {
	var engOpts []engine.Option
	for _, opt := range opts {
		opt(&engOpts)
	}
	eng, err := engine.New(docs, labels, engOpts...)
	if err != nil {
		return nil, fmt.Errorf("topics: %w", err)
	}
	return &Model{engine: eng}, nil
}

// Reduce merges topics until at most k non-outlier topics remain.
// k == 0 collapses everything into a single topic; negative k is an error.
func (m *Model) Reduce(k int) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.engine.Reduce(k); err != nil {
		return fmt.Errorf("topics: %w", err)
	}
	return nil
}

// NumTopics returns the number of topics, outlier topic included.
func (m *Model) NumTopics() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.engine.NumTopics()
}

// Vocabulary returns every term that carries a weight, in lexical order.
func (m *Model) Vocabulary() []string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.engine.Vocabulary()
}

// Documents returns the documents grouped under topic id.
func (m *Model) Documents(id int) ([]string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	docs, err := m.engine.Documents(id)
	if err != nil {
		return nil, fmt.Errorf("topics: %w", err)
	}
	return docs, nil
}

// TopNWords returns the n best words of every topic in id order.
func (m *Model) TopNWords(n int) ([]Topic, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	r, err := m.engine.Describe(n)
	if err != nil {
		return nil, fmt.Errorf("topics: %w", err)
	}
	out := make([]Topic, len(r.Topics))
	for i, tr := range r.Topics {
		out[i] = topicFromReport(tr)
	}
	return out, nil
}

// TopicWords returns topic id with its n best words.
func (m *Model) TopicWords(id, n int) (Topic, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	r, err := m.engine.DescribeTopic(id, n)
	if err != nil {
		return Topic{}, fmt.Errorf("topics: %w", err)
	}
	return topicFromReport(r.Topics[0]), nil
}

// CountDocuments returns the size of every topic in id order.
func (m *Model) CountDocuments() []Count {
	m.mu.RLock()
	defer m.mu.RUnlock()
	counts := m.engine.CountDocuments()
	out := make([]Count, len(counts))
	for i, c := range counts {
		out[i] = Count{ID: c.ID, Documents: c.Count}
	}
	return out
}

// CountTopicDocuments returns the size of topic id.
func (m *Model) CountTopicDocuments(id int) (int, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	n, err := m.engine.CountTopicDocuments(id)
	if err != nil {
		return 0, fmt.Errorf("topics: %w", err)
	}
	return n, nil
}

// Describe renders every topic with its n best words as plain text.
func (m *Model) Describe(n int) (string, error) {
	m.mu.RLock()
	r, err := m.engine.Describe(n)
	m.mu.RUnlock()
	if err != nil {
		return "", fmt.Errorf("topics: %w", err)
	}
	return render(r)
}

// DescribeTopic renders topic id with its n best words as plain text.
func (m *Model) DescribeTopic(id, n int) (string, error) {
	m.mu.RLock()
	r, err := m.engine.DescribeTopic(id, n)
	m.mu.RUnlock()
	if err != nil {
		return "", fmt.Errorf("topics: %w", err)
	}
	return render(r)
}

func render(r model.Report) (string, error) {
	var b strings.Builder
	if err := reporter.Render(&b, r); err != nil {
		return "", fmt.Errorf("topics: %w", err)
	}
	return b.String(), nil
}
