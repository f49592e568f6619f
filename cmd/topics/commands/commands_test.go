package commands

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

func runCmd(t *testing.T, args ...string) (stdout, stderr string, exitCode int) {
	t.Helper()

	oldStdout := os.Stdout
	oldStderr := os.Stderr

	rOut, wOut, _ := os.Pipe()
	rErr, wErr, _ := os.Pipe()
	os.Stdout = wOut
	os.Stderr = wErr

	experimentFile, logLevel, verbose = "", "", false
	topN, nTopics, topicID = -1, -1, -1
	format, verbosity = "", ""

	rootCmd.SetArgs(args)
	err := rootCmd.Execute()

	wOut.Close()
	wErr.Close()
	os.Stdout = oldStdout
	os.Stderr = oldStderr

	var outBuf, errBuf bytes.Buffer
	outBuf.ReadFrom(rOut)
	errBuf.ReadFrom(rErr)

	stdout = outBuf.String()
	stderr = errBuf.String()
	if err != nil {
		exitCode = 1
		stderr += err.Error()
	}

	resetFlags(rootCmd)
	return
}

func resetFlags(cmd *cobra.Command) {
	cmd.Flags().VisitAll(func(f *pflag.Flag) {
		f.Changed = false
		f.Value.Set(f.DefValue)
	})
	for _, sub := range cmd.Commands() {
		resetFlags(sub)
	}
}

// writeExperiment lays out a small labelled corpus in a temp dir and returns
// the path of an experiment file describing it.
func writeExperiment(t *testing.T, corpusKind string) string {
	t.Helper()
	dir := t.TempDir()
	write := func(name, content string) {
		if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0644); err != nil {
			t.Fatal(err)
		}
	}
	write("docs.txt", strings.Join([]string{
		"zebra quantum violin",
		"football match goal",
		"football team goal",
		"tennis match player",
		"tennis player serve",
		"football player tennis",
	}, "\n")+"\n")
	write("labels.txt", "-1\n0\n0\n1\n1\n1\n")
	write("stop.txt", "# none of these occur\nthe\nand\n")

	experiment := fmt.Sprintf(`corpus:
  kind: %s
  args:
    dir: %s
    path: docs.txt
clusters:
  kind: lines
  args:
    dir: %s
    path: labels.txt
engine:
  stop_words: %s
  top_n: 3
log_level: error
`, corpusKind, dir, dir, filepath.Join(dir, "stop.txt"))
	write("experiment.yaml", experiment)
	return filepath.Join(dir, "experiment.yaml")
}

func TestVersion(t *testing.T) {
	stdout, _, code := runCmd(t, "version")
	if code != 0 {
		t.Fatalf("exit %d", code)
	}
	if !strings.Contains(stdout, "topics ") {
		t.Fatalf("expected 'topics', got: %s", stdout)
	}
}

func TestProviders(t *testing.T) {
	stdout, _, code := runCmd(t, "providers")
	if code != 0 {
		t.Fatalf("exit %d", code)
	}
	if !strings.Contains(stdout, "jsonl, lines, remote") {
		t.Fatalf("expected registered providers, got: %s", stdout)
	}
}

func TestDescribe(t *testing.T) {
	path := writeExperiment(t, "lines")

	stdout, stderr, code := runCmd(t, "describe", "-f", path)
	if code != 0 {
		t.Fatalf("exit %d: %s", code, stderr)
	}
	for _, want := range []string{"Topic 0 (2 documents):", "Topic 1 (3 documents):", "Outliers (1 document):", "\t* quantum"} {
		if !strings.Contains(stdout, want) {
			t.Errorf("missing %q in:\n%s", want, stdout)
		}
	}
}

func TestDescribe_Reduce(t *testing.T) {
	path := writeExperiment(t, "lines")

	stdout, stderr, code := runCmd(t, "describe", "-f", path, "-k", "1")
	if code != 0 {
		t.Fatalf("exit %d: %s", code, stderr)
	}
	if !strings.Contains(stdout, "Topic 0 (5 documents):") {
		t.Fatalf("expected merged topic, got:\n%s", stdout)
	}
	if strings.Contains(stdout, "Topic 1 (") {
		t.Fatalf("expected a single non-outlier topic, got:\n%s", stdout)
	}
}

func TestDescribe_SingleTopicJSON(t *testing.T) {
	path := writeExperiment(t, "lines")

	stdout, stderr, code := runCmd(t, "describe", "-f", path, "--topic", "1", "--format", "json", "-n", "2")
	if code != 0 {
		t.Fatalf("exit %d: %s", code, stderr)
	}
	var report struct {
		Topics []struct {
			ID        int `json:"id"`
			Documents int `json:"documents"`
			Words     []struct {
				Word string `json:"word"`
			} `json:"words"`
		} `json:"topics"`
	}
	if err := json.Unmarshal([]byte(stdout), &report); err != nil {
		t.Fatalf("invalid JSON: %v\n%s", err, stdout)
	}
	if len(report.Topics) != 1 || report.Topics[0].ID != 1 || report.Topics[0].Documents != 3 {
		t.Fatalf("unexpected report: %+v", report)
	}
	if len(report.Topics[0].Words) != 2 {
		t.Fatalf("expected 2 words, got %d", len(report.Topics[0].Words))
	}
}

func TestDescribe_UnknownTopic(t *testing.T) {
	path := writeExperiment(t, "lines")

	_, stderr, code := runCmd(t, "describe", "-f", path, "--topic", "7")
	if code == 0 {
		t.Fatal("expected failure for an unknown topic")
	}
	if !strings.Contains(stderr, "not found") {
		t.Fatalf("expected not found error, got: %s", stderr)
	}
}

func TestCounts(t *testing.T) {
	path := writeExperiment(t, "lines")

	stdout, stderr, code := runCmd(t, "counts", "-f", path)
	if code != 0 {
		t.Fatalf("exit %d: %s", code, stderr)
	}
	want := "Topic 0 (2 documents)\nTopic 1 (3 documents)\nOutliers (1 document)\n"
	if stdout != want {
		t.Fatalf("got:\n%s\nwant:\n%s", stdout, want)
	}
}

func TestCounts_JSON(t *testing.T) {
	path := writeExperiment(t, "lines")

	stdout, stderr, code := runCmd(t, "counts", "-f", path, "--format", "json", "--topic", "2")
	if code != 0 {
		t.Fatalf("exit %d: %s", code, stderr)
	}
	if strings.TrimSpace(stdout) != `[{"id":2,"outlier":true,"count":1}]` {
		t.Fatalf("unexpected JSON: %s", stdout)
	}
}

func TestDescribe_MissingExperiment(t *testing.T) {
	_, stderr, code := runCmd(t, "describe", "-f", filepath.Join(t.TempDir(), "nope.yaml"))
	if code == 0 {
		t.Fatal("expected failure for a missing experiment file")
	}
	if !strings.Contains(stderr, "configuration") {
		t.Fatalf("expected configuration error, got: %s", stderr)
	}
}

func TestDescribe_UnknownProvider(t *testing.T) {
	path := writeExperiment(t, "parquet")

	_, stderr, code := runCmd(t, "describe", "-f", path)
	if code == 0 {
		t.Fatal("expected failure for an unknown provider")
	}
	if !strings.Contains(stderr, "unknown corpus provider") {
		t.Fatalf("expected unknown provider error, got: %s", stderr)
	}
}
