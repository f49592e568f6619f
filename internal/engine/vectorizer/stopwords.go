package vectorizer

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/crimson-sun/topics/internal/model"
)

// StopWords is a set of normalized terms excluded from the vocabulary.
type StopWords map[string]struct{}

// NewStopWords normalizes words with tok and returns them as a set. Blank
// entries are skipped.
func NewStopWords(tok *Tokenizer, words []string) StopWords {
	s := make(StopWords, len(words))
	for _, w := range words {
		w = strings.TrimSpace(tok.Normalize(w))
		if w == "" {
			continue
		}
		s[w] = struct{}{}
	}
	return s
}

// LoadStopWords reads a newline-delimited stop-word file. Lines starting
// with '#' are comments. A missing or unreadable file is a configuration
// error.
func LoadStopWords(tok *Tokenizer, path string) (StopWords, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("stop words: %w: %w", model.ErrConfiguration, err)
	}
	defer f.Close()

	var words []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimRight(scanner.Text(), "\r")
		if strings.HasPrefix(line, "#") {
			continue
		}
		words = append(words, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("stop words: read %s: %w: %w", path, model.ErrConfiguration, err)
	}
	return NewStopWords(tok, words), nil
}

// Contains reports whether the normalized term is a stop word.
func (s StopWords) Contains(term string) bool {
	_, ok := s[term]
	return ok
}
