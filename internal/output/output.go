package output

import (
	"context"
	"fmt"
	"strings"

	"github.com/crimson-sun/topics/internal/model"
)

// Output defines the interface for topic report destinations.
type Output interface {
	Write(ctx context.Context, report model.Report) error
	Close() error
}

// Format selects how a report is encoded.
type Format string

const (
	Text   Format = "text"   // plain dash-separated listing
	JSON   Format = "json"   // one JSON document per report
	Styled Format = "styled" // coloured terminal listing
)

// ParseFormat validates a configured format name.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case Text, JSON, Styled:
		return f, nil
	case "":
		return Text, nil
	default:
		return Text, fmt.Errorf("output: unknown format %q: %w", s, model.ErrConfiguration)
	}
}
