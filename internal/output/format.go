package output

import (
	"fmt"
	"strings"

	"github.com/crimson-sun/topics/internal/model"
)

// Verbosity controls how much detail a report keeps when written.
type Verbosity int

const (
	Minimal  Verbosity = iota // words only, no scores
	Standard                  // scored words, zero-weight words dropped
	Full                      // everything
)

func (v Verbosity) String() string {
	switch v {
	case Minimal:
		return "minimal"
	case Standard:
		return "standard"
	case Full:
		return "full"
	default:
		return fmt.Sprintf("Verbosity(%d)", int(v))
	}
}

// ParseVerbosity maps "minimal", "standard" or "full" to a Verbosity.
func ParseVerbosity(s string) (Verbosity, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "minimal":
		return Minimal, nil
	case "", "standard":
		return Standard, nil
	case "full":
		return Full, nil
	default:
		return Standard, fmt.Errorf("output: unknown verbosity %q: %w", s, model.ErrConfiguration)
	}
}

// FormatReport returns a copy of the report trimmed according to verbosity.
// At Minimal: scores are zeroed (omitted from JSON via omitempty).
// At Standard: words with zero weight are dropped.
// At Full: the report is returned unchanged.
func FormatReport(r model.Report, verbosity Verbosity) model.Report {
	if verbosity == Full {
		return r
	}
	topics := make([]model.TopicReport, len(r.Topics))
	for i, t := range r.Topics {
		words := make([]model.WordScore, 0, len(t.Words))
		for _, ws := range t.Words {
			switch verbosity {
			case Minimal:
				ws.Score = 0
			case Standard:
				if ws.Score == 0 {
					continue
				}
			}
			words = append(words, ws)
		}
		t.Words = words
		topics[i] = t
	}
	r.Topics = topics
	return r
}
