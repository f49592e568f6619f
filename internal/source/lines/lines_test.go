package lines

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/crimson-sun/topics/internal/model"
	"github.com/crimson-sun/topics/internal/source"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestCorpus_LoadData(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "docs.txt", "first document\nsecond one\n\nlast without newline")

	c, err := source.NewCorpus("lines", source.Args{"path": "docs.txt", "dir": dir})
	if err != nil {
		t.Fatalf("NewCorpus() error: %v", err)
	}

	docs, err := c.LoadData(context.Background())
	if err != nil {
		t.Fatalf("LoadData() error: %v", err)
	}
	want := []string{"first document", "second one", "", "last without newline"}
	if !reflect.DeepEqual(docs, want) {
		t.Fatalf("LoadData() = %q, want %q", docs, want)
	}
}

func TestCorpus_AbsolutePathIgnoresDir(t *testing.T) {
	path := writeFile(t, t.TempDir(), "docs.txt", "only\n")

	c, err := source.NewCorpus("lines", source.Args{"path": path, "dir": "/somewhere/else"})
	if err != nil {
		t.Fatalf("NewCorpus() error: %v", err)
	}
	docs, err := c.LoadData(context.Background())
	if err != nil {
		t.Fatalf("LoadData() error: %v", err)
	}
	if len(docs) != 1 || docs[0] != "only" {
		t.Fatalf("unexpected docs: %q", docs)
	}
}

func TestCorpus_EmptyFile(t *testing.T) {
	path := writeFile(t, t.TempDir(), "empty.txt", "")

	docs, err := (&Corpus{Path: path}).LoadData(context.Background())
	if err != nil {
		t.Fatalf("LoadData() error: %v", err)
	}
	if len(docs) != 0 {
		t.Fatalf("expected no documents, got %q", docs)
	}
}

func TestCorpus_MissingFile(t *testing.T) {
	_, err := (&Corpus{Path: filepath.Join(t.TempDir(), "missing.txt")}).LoadData(context.Background())
	if err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestCorpus_Cancelled(t *testing.T) {
	path := writeFile(t, t.TempDir(), "docs.txt", "doc\n")
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := (&Corpus{Path: path}).LoadData(ctx)
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}

func TestClusters_Labels(t *testing.T) {
	path := writeFile(t, t.TempDir(), "labels.txt", "-1\n0\n 0 \n1\n\n1\n")

	labels, err := (&Clusters{Path: path}).Labels(context.Background())
	if err != nil {
		t.Fatalf("Labels() error: %v", err)
	}
	want := []int{-1, 0, 0, 1, 1}
	if !reflect.DeepEqual(labels, want) {
		t.Fatalf("Labels() = %v, want %v", labels, want)
	}
}

func TestClusters_BadLabel(t *testing.T) {
	path := writeFile(t, t.TempDir(), "labels.txt", "0\nfoo\n")

	_, err := (&Clusters{Path: path}).Labels(context.Background())
	if !errors.Is(err, model.ErrInvalidArgument) {
		t.Fatalf("expected ErrInvalidArgument, got %v", err)
	}
}

func TestMissingPathArg(t *testing.T) {
	if _, err := source.NewCorpus("lines", source.Args{}); !errors.Is(err, model.ErrConfiguration) {
		t.Fatalf("expected ErrConfiguration, got %v", err)
	}
	if _, err := source.NewClusters("lines", nil); !errors.Is(err, model.ErrConfiguration) {
		t.Fatalf("expected ErrConfiguration, got %v", err)
	}
}
