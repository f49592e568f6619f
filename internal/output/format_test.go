package output

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/crimson-sun/topics/internal/model"
)

func baseReport() model.Report {
	return model.Report{
		Topics: []model.TopicReport{
			{ID: 0, Label: 4, Documents: 3, Words: []model.WordScore{
				{Word: "rocket", Score: 0.42},
				{Word: "orbit", Score: 0.31},
				{Word: "bread", Score: 0},
			}},
			{ID: 1, Label: -1, Outlier: true, Documents: 1, Words: []model.WordScore{
				{Word: "umbrella", Score: 0.7},
			}},
		},
		Vocabulary: 12,
		Corpus:     4,
	}
}

func TestFormatReportMinimal(t *testing.T) {
	r := FormatReport(baseReport(), Minimal)

	if len(r.Topics[0].Words) != 3 {
		t.Fatalf("Minimal should keep every word, got %d", len(r.Topics[0].Words))
	}
	for _, ws := range r.Topics[0].Words {
		if ws.Score != 0 {
			t.Fatalf("score of %q should be 0 at Minimal", ws.Word)
		}
	}
	if r.Topics[0].Words[0].Word != "rocket" {
		t.Fatal("word order should be preserved")
	}
	if r.Vocabulary != 12 || r.Corpus != 4 {
		t.Fatal("report totals should be preserved")
	}
}

func TestFormatReportStandard(t *testing.T) {
	r := FormatReport(baseReport(), Standard)

	words := r.Topics[0].Words
	if len(words) != 2 {
		t.Fatalf("Standard should drop zero-weight words, got %v", words)
	}
	if words[1].Score != 0.31 {
		t.Fatal("scores should be preserved at Standard")
	}
}

func TestFormatReportFull(t *testing.T) {
	r := FormatReport(baseReport(), Full)

	if len(r.Topics[0].Words) != 3 {
		t.Fatal("Full should keep every word")
	}
	if r.Topics[0].Words[0].Score != 0.42 {
		t.Fatal("scores should be preserved at Full")
	}
}

func TestFormatReportDoesNotMutateInput(t *testing.T) {
	orig := baseReport()
	FormatReport(orig, Minimal)
	FormatReport(orig, Standard)

	if orig.Topics[0].Words[0].Score != 0.42 || len(orig.Topics[0].Words) != 3 {
		t.Fatal("FormatReport mutated its input")
	}
}

func TestMinimalJSONOmitsScores(t *testing.T) {
	data, err := json.Marshal(FormatReport(baseReport(), Minimal))
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if strings.Contains(string(data), "score") {
		t.Fatalf("score should be omitted at Minimal: %s", data)
	}
	if !strings.Contains(string(data), `"word":"rocket"`) {
		t.Fatalf("words should be present: %s", data)
	}
}

func TestParseVerbosity(t *testing.T) {
	tests := []struct {
		in   string
		want Verbosity
	}{
		{"minimal", Minimal},
		{"Standard", Standard},
		{"", Standard},
		{" full ", Full},
	}
	for _, tt := range tests {
		got, err := ParseVerbosity(tt.in)
		if err != nil {
			t.Fatalf("ParseVerbosity(%q) error: %v", tt.in, err)
		}
		if got != tt.want {
			t.Fatalf("ParseVerbosity(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}

	if _, err := ParseVerbosity("verbose"); !errors.Is(err, model.ErrConfiguration) {
		t.Fatalf("expected ErrConfiguration, got %v", err)
	}
}
