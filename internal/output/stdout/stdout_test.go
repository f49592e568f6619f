package stdout

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"strings"
	"testing"

	"github.com/crimson-sun/topics/internal/model"
	"github.com/crimson-sun/topics/internal/output"
)

func testReport() model.Report {
	return model.Report{
		Topics: []model.TopicReport{
			{ID: 0, Label: 2, Documents: 3, Words: []model.WordScore{
				{Word: "flour", Score: 0.31},
				{Word: "oven", Score: 0.25},
			}},
			{ID: 1, Label: -1, Outlier: true, Documents: 1, Words: []model.WordScore{
				{Word: "umbrella", Score: 0.5},
			}},
		},
		Vocabulary: 9,
		Corpus:     4,
	}
}

// captureStdout redirects os.Stdout to capture output.
func captureStdout(fn func()) string {
	old := os.Stdout
	r, w, _ := os.Pipe()
	os.Stdout = w

	fn()

	w.Close()
	os.Stdout = old

	var buf bytes.Buffer
	buf.ReadFrom(r)
	return buf.String()
}

func TestOutputTextToStdout(t *testing.T) {
	result := captureStdout(func() {
		out := New(output.Text, output.Standard)
		out.Write(context.Background(), testReport())
	})

	want := strings.Repeat("-", 50) + "\n" +
		"Topic 0 (3 documents):\n" +
		"\t* flour\n" +
		"\t* oven\n" +
		strings.Repeat("-", 50) + "\n" +
		"Outliers (1 document):\n" +
		"\t* umbrella\n" +
		strings.Repeat("-", 50) + "\n"
	if result != want {
		t.Fatalf("unexpected text output:\n%s", result)
	}
}

func TestOutputCompactJSON(t *testing.T) {
	var buf bytes.Buffer
	out := New(output.JSON, output.Standard, WithWriter(&buf))
	if err := out.Write(context.Background(), testReport()); err != nil {
		t.Fatalf("Write error: %v", err)
	}

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 1 {
		t.Fatalf("expected 1 line, got %d", len(lines))
	}
	var r model.Report
	if err := json.Unmarshal([]byte(lines[0]), &r); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if len(r.Topics) != 2 || r.Topics[0].Words[0].Word != "flour" {
		t.Fatalf("unexpected report: %+v", r)
	}
	if !r.Topics[1].Outlier {
		t.Fatal("outlier flag lost")
	}
}

func TestOutputPrettyJSON(t *testing.T) {
	var buf bytes.Buffer
	out := New(output.JSON, output.Standard, WithWriter(&buf), WithPretty(true))
	out.Write(context.Background(), testReport())

	if !strings.Contains(buf.String(), "  ") {
		t.Fatal("expected indented output for pretty mode")
	}
	if lines := strings.Split(strings.TrimSpace(buf.String()), "\n"); len(lines) < 3 {
		t.Fatalf("expected multi-line pretty output, got %d lines", len(lines))
	}
}

func TestOutputMinimalOmitsScores(t *testing.T) {
	var buf bytes.Buffer
	out := New(output.JSON, output.Minimal, WithWriter(&buf))
	out.Write(context.Background(), testReport())

	if strings.Contains(buf.String(), "score") {
		t.Fatalf("score should be omitted at Minimal: %s", buf.String())
	}
}

func TestOutputStyled(t *testing.T) {
	var buf bytes.Buffer
	out := New(output.Styled, output.Full, WithWriter(&buf))
	if err := out.Write(context.Background(), testReport()); err != nil {
		t.Fatalf("Write error: %v", err)
	}

	got := buf.String()
	for _, want := range []string{"Topic 0 (3 documents)", "Outliers (1 document)", "flour", "0.3100", "2 topics, 9 terms, 4 documents"} {
		if !strings.Contains(got, want) {
			t.Errorf("styled output missing %q:\n%s", want, got)
		}
	}
}

func TestOutputStyledStandardHidesScores(t *testing.T) {
	var buf bytes.Buffer
	New(output.Styled, output.Standard, WithWriter(&buf)).Write(context.Background(), testReport())

	if strings.Contains(buf.String(), "0.3100") {
		t.Fatal("scores are only shown at Full verbosity")
	}
}
