// Package lines reads a corpus with one document per line, and cluster
// labels with one integer per line.
package lines

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/crimson-sun/topics/internal/model"
	"github.com/crimson-sun/topics/internal/source"
)

const name = "lines"

func init() {
	source.RegisterCorpus(name, func(args source.Args) (source.Corpus, error) {
		path, err := resolve(args)
		if err != nil {
			return nil, err
		}
		return &Corpus{Path: path}, nil
	})
	source.RegisterClusters(name, func(args source.Args) (source.Clusters, error) {
		path, err := resolve(args)
		if err != nil {
			return nil, err
		}
		return &Clusters{Path: path}, nil
	})
}

// resolve joins the "path" argument onto the optional "dir" argument.
// Absolute paths are used as is.
func resolve(args source.Args) (string, error) {
	path, err := args.Require(name, "path")
	if err != nil {
		return "", err
	}
	if dir := args["dir"]; dir != "" && !filepath.IsAbs(path) {
		path = filepath.Join(dir, path)
	}
	return path, nil
}

// Corpus reads documents from a newline-delimited text file.
type Corpus struct {
	Path string
}

// LoadData returns every line of the file with its trailing newline removed.
// A final line without a newline is still a document.
func (c *Corpus) LoadData(ctx context.Context) ([]string, error) {
	var docs []string
	err := readLines(ctx, c.Path, func(line string) error {
		docs = append(docs, line)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("lines corpus: %w", err)
	}
	return docs, nil
}

// Clusters reads one integer label per line. Blank lines are skipped.
type Clusters struct {
	Path string
}

// Labels parses the label file.
func (c *Clusters) Labels(ctx context.Context) ([]int, error) {
	var labels []int
	lineNo := 0
	err := readLines(ctx, c.Path, func(line string) error {
		lineNo++
		line = strings.TrimSpace(line)
		if line == "" {
			return nil
		}
		n, err := strconv.Atoi(line)
		if err != nil {
			return fmt.Errorf("line %d: %q is not a cluster label: %w", lineNo, line, model.ErrInvalidArgument)
		}
		labels = append(labels, n)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("lines clusters: %w", err)
	}
	return labels, nil
}

func readLines(ctx context.Context, path string, fn func(string) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	r := bufio.NewReader(f)
	for {
		line, err := r.ReadString('\n')
		if len(line) > 0 {
			if ferr := fn(strings.TrimSuffix(line, "\n")); ferr != nil {
				return ferr
			}
		}
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return fmt.Errorf("read %s: %w", path, err)
		}
	}
}
