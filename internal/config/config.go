package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"strconv"

	"github.com/goccy/go-yaml"

	"github.com/crimson-sun/topics/internal/model"
)

// Version is the topics release version.
const Version = "0.3.0"

// Config holds all topics configuration.
type Config struct {
	Corpus   SourceConfig `yaml:"corpus"`
	Clusters SourceConfig `yaml:"clusters"`
	Engine   EngineConfig `yaml:"engine"`
	Output   OutputConfig `yaml:"output"`
	LogLevel string       `yaml:"log_level"`
}

// SourceConfig selects a registered provider and its arguments.
type SourceConfig struct {
	Kind string            `yaml:"kind"` // "lines", "jsonl", "remote"
	Args map[string]string `yaml:"args"`
}

// EngineConfig holds topic engine settings.
type EngineConfig struct {
	StopWordsPath string `yaml:"stop_words"`
	Topics        int    `yaml:"n_topics"` // 0 keeps the clustering as is
	TopN          int    `yaml:"top_n"`
	Outlier       int    `yaml:"outlier"`
}

// OutputConfig holds report destination settings.
type OutputConfig struct {
	Format    string `yaml:"format"`    // "text", "json", "styled"
	File      string `yaml:"file"`      // optional run history file
	Keep      int    `yaml:"keep"`      // runs kept in the history, 0 keeps all
	Webhook   string `yaml:"webhook"`   // optional URL the report is POSTed to
	Verbosity string `yaml:"verbosity"` // "minimal", "standard", "full"
	Pretty    bool   `yaml:"pretty"`    // indent JSON on stdout
}

// Defaults returns the configuration used when neither a file nor the
// environment says otherwise.
func Defaults() Config {
	return Config{
		Corpus:   SourceConfig{Kind: "lines"},
		Clusters: SourceConfig{Kind: "lines"},
		Engine: EngineConfig{
			StopWordsPath: "data/stopwords.txt",
			TopN:          10,
			Outlier:       -1,
		},
		Output: OutputConfig{
			Format:    "text",
			Verbosity: "standard",
		},
		LogLevel: "info",
	}
}

// Load reads configuration from environment variables with sensible defaults.
func Load() Config {
	cfg := Defaults()
	cfg.applyEnv()
	return cfg
}

// LoadFile reads an experiment file on top of the defaults, then applies
// environment overrides. The file is YAML; JSON experiment files parse too.
func LoadFile(path string) (Config, error) {
	cfg := Defaults()
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: %w: %w", model.ErrConfiguration, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("config: parse %s: %w: %w", path, model.ErrConfiguration, err)
	}
	cfg.applyEnv()
	return cfg, nil
}

func (c *Config) applyEnv() {
	c.Corpus.Kind = getenv("TOPICS_CORPUS_KIND", c.Corpus.Kind)
	c.Clusters.Kind = getenv("TOPICS_CLUSTERS_KIND", c.Clusters.Kind)
	setArg(&c.Corpus, "path", "TOPICS_CORPUS_PATH")
	setArg(&c.Clusters, "path", "TOPICS_CLUSTERS_PATH")
	setArg(&c.Corpus, "dir", "TOPICS_DATA_DIR")
	setArg(&c.Clusters, "dir", "TOPICS_DATA_DIR")

	c.Engine.StopWordsPath = getenv("TOPICS_STOPWORDS_PATH", c.Engine.StopWordsPath)
	c.Engine.Topics = getenvInt("TOPICS_N_TOPICS", c.Engine.Topics)
	c.Engine.TopN = getenvInt("TOPICS_TOP_N", c.Engine.TopN)
	c.Engine.Outlier = getenvInt("TOPICS_OUTLIER_LABEL", c.Engine.Outlier)

	c.Output.Format = getenv("TOPICS_OUTPUT", c.Output.Format)
	c.Output.File = getenv("TOPICS_OUTPUT_FILE", c.Output.File)
	c.Output.Keep = getenvInt("TOPICS_OUTPUT_KEEP", c.Output.Keep)
	c.Output.Webhook = getenv("TOPICS_WEBHOOK_URL", c.Output.Webhook)
	c.Output.Pretty = getenvBool("TOPICS_OUTPUT_PRETTY", c.Output.Pretty)
	c.Output.Verbosity = getenv("TOPICS_VERBOSITY", c.Output.Verbosity)

	c.LogLevel = getenv("TOPICS_LOG_LEVEL", c.LogLevel)
}

// setArg copies an env var into a provider argument when it is set.
func setArg(s *SourceConfig, key, envVar string) {
	v := os.Getenv(envVar)
	if v == "" {
		return
	}
	if s.Args == nil {
		s.Args = make(map[string]string)
	}
	s.Args[key] = v
}

// Validate checks the configuration for errors. Returns all problems at once.
func (c Config) Validate() error {
	var errs []error

	if c.Corpus.Kind == "" {
		errs = append(errs, errors.New("corpus kind is required (TOPICS_CORPUS_KIND)"))
	}
	if c.Clusters.Kind == "" {
		errs = append(errs, errors.New("clusters kind is required (TOPICS_CLUSTERS_KIND)"))
	}
	if c.Engine.Topics < 0 {
		errs = append(errs, fmt.Errorf("n_topics must be >= 0, got %d", c.Engine.Topics))
	}
	if c.Engine.TopN < 0 {
		errs = append(errs, fmt.Errorf("top_n must be >= 0, got %d", c.Engine.TopN))
	}
	if c.Engine.StopWordsPath != "" {
		if _, err := os.Stat(c.Engine.StopWordsPath); err != nil {
			errs = append(errs, fmt.Errorf("stop words file not found: %s", c.Engine.StopWordsPath))
		}
	}

	switch c.Output.Format {
	case "text", "json", "styled":
	default:
		errs = append(errs, fmt.Errorf("output format must be text, json or styled, got %q", c.Output.Format))
	}
	if c.Output.Keep < 0 {
		errs = append(errs, fmt.Errorf("keep must be >= 0, got %d", c.Output.Keep))
	}
	if c.Output.Webhook != "" {
		if u, err := url.Parse(c.Output.Webhook); err != nil || u.Scheme == "" || u.Host == "" {
			errs = append(errs, fmt.Errorf("webhook must be an absolute URL, got %q", c.Output.Webhook))
		}
	}
	switch c.Output.Verbosity {
	case "minimal", "standard", "full":
	default:
		errs = append(errs, fmt.Errorf("verbosity must be minimal, standard or full, got %q", c.Output.Verbosity))
	}

	if len(errs) == 0 {
		return nil
	}
	return fmt.Errorf("config: %w: %w", model.ErrConfiguration, errors.Join(errs...))
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getenvInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}

func getenvBool(key string, fallback bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return fallback
	}
	return b
}
