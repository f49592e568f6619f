package stdout

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/crimson-sun/topics/internal/engine/reporter"
	"github.com/crimson-sun/topics/internal/model"
	"github.com/crimson-sun/topics/internal/output"
)

// Option configures a stdout Output.
type Option func(*Output)

// WithWriter redirects the output away from os.Stdout.
func WithWriter(w io.Writer) Option {
	return func(o *Output) { o.w = w }
}

// WithPretty indents JSON reports.
func WithPretty(pretty bool) Option {
	return func(o *Output) { o.pretty = pretty }
}

// WithStyles overrides the styles used by the styled format.
func WithStyles(s Styles) Option {
	return func(o *Output) { o.styles = s }
}

// Output writes topic reports to stdout as text, JSON or styled text.
type Output struct {
	w         io.Writer
	format    output.Format
	verbosity output.Verbosity
	pretty    bool
	styles    Styles
}

// New creates a new stdout Output with verbosity-aware trimming.
func New(format output.Format, verbosity output.Verbosity, opts ...Option) *Output {
	o := &Output{
		w:         os.Stdout,
		format:    format,
		verbosity: verbosity,
		styles:    NewStyles(DefaultTheme),
	}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

func (o *Output) Write(_ context.Context, report model.Report) error {
	formatted := output.FormatReport(report, o.verbosity)

	var err error
	switch o.format {
	case output.JSON:
		enc := json.NewEncoder(o.w)
		if o.pretty {
			enc.SetIndent("", "  ")
		}
		err = enc.Encode(formatted)
	case output.Styled:
		_, err = io.WriteString(o.w, o.styles.Render(formatted, o.verbosity == output.Full))
	default:
		err = reporter.Render(o.w, formatted)
	}
	if err != nil {
		return fmt.Errorf("stdout output: %w", err)
	}
	return nil
}

func (o *Output) Close() error {
	return nil
}
