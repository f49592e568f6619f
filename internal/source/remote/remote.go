// Package remote loads a corpus and its cluster labels from an HTTP endpoint
// returning {"documents": [...], "labels": [...]}.
package remote

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/crimson-sun/topics/internal/model"
	"github.com/crimson-sun/topics/internal/source"
)

const name = "remote"

func init() {
	source.RegisterCorpus(name, func(args source.Args) (source.Corpus, error) {
		return shared(args)
	})
	source.RegisterClusters(name, func(args source.Args) (source.Clusters, error) {
		return shared(args)
	})
}

// Corpus and clusters built from the same arguments share one Endpoint so
// documents and labels always come from the same response.
var (
	mu        sync.Mutex
	endpoints = map[string]*Endpoint{}
)

func shared(args source.Args) (*Endpoint, error) {
	e, err := New(args)
	if err != nil {
		return nil, err
	}
	key := e.url + "\x00" + e.client.token + "\x00" + e.client.httpClient.Timeout.String()

	mu.Lock()
	defer mu.Unlock()
	if cached, ok := endpoints[key]; ok {
		return cached, nil
	}
	endpoints[key] = e
	return e, nil
}

type payload struct {
	Documents []string `json:"documents"`
	Labels    []int    `json:"labels"`
}

// Endpoint fetches the payload once and serves both documents and labels
// from it.
type Endpoint struct {
	url    string
	client *client

	once sync.Once
	data payload
	err  error
}

// New builds an Endpoint from the "url" (required), "path", "token" and
// "timeout" arguments.
func New(args source.Args) (*Endpoint, error) {
	base, err := args.Require(name, "url")
	if err != nil {
		return nil, err
	}
	u, err := url.Parse(base)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("remote: invalid url %q: %w", base, model.ErrConfiguration)
	}
	if p := args["path"]; p != "" {
		u = u.JoinPath(strings.TrimPrefix(p, "/"))
	}

	timeout := 30 * time.Second
	if raw := args["timeout"]; raw != "" {
		d, err := time.ParseDuration(raw)
		if err != nil || d <= 0 {
			return nil, fmt.Errorf("remote: invalid timeout %q: %w", raw, model.ErrConfiguration)
		}
		timeout = d
	}

	return &Endpoint{url: u.String(), client: newClient(args["token"], timeout)}, nil
}

func (e *Endpoint) fetch(ctx context.Context) (payload, error) {
	e.once.Do(func() {
		e.err = e.client.getJSON(ctx, e.url, &e.data)
	})
	return e.data, e.err
}

// LoadData returns the documents of the payload.
func (e *Endpoint) LoadData(ctx context.Context) ([]string, error) {
	p, err := e.fetch(ctx)
	if err != nil {
		return nil, fmt.Errorf("remote corpus: %w", err)
	}
	return p.Documents, nil
}

// Labels returns the labels of the payload.
func (e *Endpoint) Labels(ctx context.Context) ([]int, error) {
	p, err := e.fetch(ctx)
	if err != nil {
		return nil, fmt.Errorf("remote clusters: %w", err)
	}
	if p.Labels == nil {
		return nil, fmt.Errorf("remote clusters: payload has no labels: %w", model.ErrInvalidArgument)
	}
	return p.Labels, nil
}
