// Package jsonl reads documents and their cluster labels from a JSON-lines
// file where each line is an object such as {"text": "...", "label": 3}.
package jsonl

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/crimson-sun/topics/internal/model"
	"github.com/crimson-sun/topics/internal/source"
)

const (
	name        = "jsonl"
	maxLineSize = 1 << 20
)

func init() {
	source.RegisterCorpus(name, func(args source.Args) (source.Corpus, error) {
		return New(args)
	})
	source.RegisterClusters(name, func(args source.Args) (source.Clusters, error) {
		return New(args)
	})
}

// File serves both the corpus and the cluster labels of a JSON-lines file.
type File struct {
	Path     string
	TextKey  string // default "text"
	LabelKey string // default "label"
}

// New builds a File from "path", "dir", "text_key" and "label_key" arguments.
func New(args source.Args) (*File, error) {
	path, err := args.Require(name, "path")
	if err != nil {
		return nil, err
	}
	if dir := args["dir"]; dir != "" && !filepath.IsAbs(path) {
		path = filepath.Join(dir, path)
	}
	f := &File{Path: path, TextKey: "text", LabelKey: "label"}
	if k := args["text_key"]; k != "" {
		f.TextKey = k
	}
	if k := args["label_key"]; k != "" {
		f.LabelKey = k
	}
	return f, nil
}

// LoadData returns the text field of every record.
func (f *File) LoadData(ctx context.Context) ([]string, error) {
	var docs []string
	err := f.each(ctx, func(lineNo int, rec map[string]json.RawMessage) error {
		var text string
		if err := decodeField(rec, f.TextKey, &text); err != nil {
			return fmt.Errorf("line %d: %w", lineNo, err)
		}
		docs = append(docs, text)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("jsonl corpus: %w", err)
	}
	return docs, nil
}

// Labels returns the label field of every record.
func (f *File) Labels(ctx context.Context) ([]int, error) {
	var labels []int
	err := f.each(ctx, func(lineNo int, rec map[string]json.RawMessage) error {
		var label int
		if err := decodeField(rec, f.LabelKey, &label); err != nil {
			return fmt.Errorf("line %d: %w", lineNo, err)
		}
		labels = append(labels, label)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("jsonl clusters: %w", err)
	}
	return labels, nil
}

func decodeField(rec map[string]json.RawMessage, key string, dest any) error {
	raw, ok := rec[key]
	if !ok {
		return fmt.Errorf("missing %q field: %w", key, model.ErrInvalidArgument)
	}
	if err := json.Unmarshal(raw, dest); err != nil {
		return fmt.Errorf("field %q: %w: %w", key, model.ErrInvalidArgument, err)
	}
	return nil
}

// each decodes every non-blank line of the file as a JSON object.
func (f *File) each(ctx context.Context, fn func(int, map[string]json.RawMessage) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	file, err := os.Open(f.Path)
	if err != nil {
		return err
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	scanner.Buffer(make([]byte, 64*1024), maxLineSize)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		var rec map[string]json.RawMessage
		if err := json.Unmarshal([]byte(line), &rec); err != nil {
			return fmt.Errorf("line %d: %w: %w", lineNo, model.ErrInvalidArgument, err)
		}
		if err := fn(lineNo, rec); err != nil {
			return err
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("read %s: %w", f.Path, err)
	}
	return nil
}
