// Package testdata provides a small labelled corpus for engine tests.
package testdata

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"strings"
)

//go:embed corpus.json
var corpusJSON []byte

//go:embed stopwords.txt
var stopWordsTxt string

// CorpusEntry is a document with the cluster label a clusterer would assign.
type CorpusEntry struct {
	Text        string `json:"text"`
	Label       int    `json:"label"`
	Description string `json:"description"`
}

// LoadCorpus parses the embedded corpus.json and returns all entries.
func LoadCorpus() ([]CorpusEntry, error) {
	var entries []CorpusEntry
	if err := json.Unmarshal(corpusJSON, &entries); err != nil {
		return nil, fmt.Errorf("parse corpus.json: %w", err)
	}
	return entries, nil
}

// Split returns the texts and labels of entries as aligned slices.
func Split(entries []CorpusEntry) (texts []string, labels []int) {
	texts = make([]string, len(entries))
	labels = make([]int, len(entries))
	for i, e := range entries {
		texts[i] = e.Text
		labels[i] = e.Label
	}
	return texts, labels
}

// StopWords returns the embedded English stop-word list.
func StopWords() []string {
	return strings.Fields(stopWordsTxt)
}
