package commands

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/crimson-sun/topics/internal/config"
	"github.com/crimson-sun/topics/internal/logging"
	"github.com/crimson-sun/topics/internal/output"
	"github.com/crimson-sun/topics/internal/output/file"
	"github.com/crimson-sun/topics/internal/output/multi"
	"github.com/crimson-sun/topics/internal/output/stdout"
	"github.com/crimson-sun/topics/internal/output/webhook"
	"github.com/crimson-sun/topics/internal/pipeline"
	"github.com/crimson-sun/topics/internal/source"

	// Register corpus and cluster providers.
	_ "github.com/crimson-sun/topics/internal/source/jsonl"
	_ "github.com/crimson-sun/topics/internal/source/lines"
	_ "github.com/crimson-sun/topics/internal/source/remote"
)

var (
	// Global flags
	experimentFile string
	logLevel       string
	verbose        bool

	// Shared by describe and counts
	topN      int
	nTopics   int
	topicID   int
	format    string
	verbosity string
)

var rootCmd = &cobra.Command{
	Use:   "topics",
	Short: "Label clustered documents with class-based TF-IDF topics",
	Long: `topics - describe the topics of an already-clustered corpus.

Every cluster becomes a topic described by the words with the highest
class-based TF-IDF weight. Documents labelled with the outlier label
(-1 by default) form the outlier topic. The topic space can be reduced
by repeatedly merging the smallest topic into its most similar neighbour.

An experiment file (YAML or JSON) selects the corpus and cluster providers:

  corpus:   {kind: lines, args: {path: docs.txt, dir: data}}
  clusters: {kind: lines, args: {path: labels.txt, dir: data}}
  engine:   {stop_words: data/stopwords.txt, n_topics: 10, top_n: 10}
  output:   {format: text, verbosity: standard}

TOPICS_* environment variables override the file.

Examples:
  topics describe -f experiment.yaml
  topics describe -f experiment.yaml -k 5 -n 8 --format styled
  topics describe -f experiment.yaml --topic 3
  topics counts -f experiment.yaml --format json`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the root command, cancelling it on SIGINT or SIGTERM.
func Execute() error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	return rootCmd.ExecuteContext(ctx)
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&experimentFile, "file", "f", "", "experiment file (YAML or JSON)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level: debug, info, warn, error")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}

// addRunFlags registers the flags shared by commands that build a pipeline.
func addRunFlags(cmd *cobra.Command) {
	cmd.Flags().IntVarP(&topN, "top-n", "n", -1, "words per topic (default from config)")
	cmd.Flags().IntVarP(&nTopics, "topics", "k", -1, "reduce to this many topics (default from config)")
	cmd.Flags().IntVar(&topicID, "topic", -1, "only this topic id")
	cmd.Flags().StringVar(&format, "format", "", "output format: text, json, styled")
	cmd.Flags().StringVar(&verbosity, "verbosity", "", "report detail: minimal, standard, full")
}

// loadConfig reads the experiment file when given, then the environment,
// then the command-line overrides.
func loadConfig(cmd *cobra.Command) (config.Config, error) {
	var cfg config.Config
	if experimentFile != "" {
		var err error
		if cfg, err = config.LoadFile(experimentFile); err != nil {
			return config.Config{}, err
		}
	} else {
		cfg = config.Load()
	}

	if logLevel != "" {
		cfg.LogLevel = logLevel
	}
	if verbose {
		cfg.LogLevel = "debug"
	}
	if f := cmd.Flags().Lookup("top-n"); f != nil && f.Changed {
		cfg.Engine.TopN = topN
	}
	if f := cmd.Flags().Lookup("topics"); f != nil && f.Changed {
		cfg.Engine.Topics = nTopics
	}
	if format != "" {
		cfg.Output.Format = format
	}
	if verbosity != "" {
		cfg.Output.Verbosity = verbosity
	}

	if err := cfg.Validate(); err != nil {
		return config.Config{}, err
	}
	return cfg, nil
}

// newPipeline wires the configured providers and outputs into a pipeline.
func newPipeline(cmd *cobra.Command, cfg config.Config, withOutputs bool) (*pipeline.Pipeline, error) {
	fmtName, err := output.ParseFormat(cfg.Output.Format)
	if err != nil {
		return nil, err
	}
	log := logging.Init(fmtName == output.JSON, logging.ParseLevel(cfg.LogLevel))

	corpus, err := source.NewCorpus(cfg.Corpus.Kind, cfg.Corpus.Args)
	if err != nil {
		return nil, err
	}
	clusters, err := source.NewClusters(cfg.Clusters.Kind, cfg.Clusters.Args)
	if err != nil {
		return nil, err
	}

	var out output.Output = multi.New()
	if withOutputs {
		if out, err = newOutput(cfg, fmtName); err != nil {
			return nil, err
		}
	}

	opts := []pipeline.Option{
		pipeline.WithStopWordsFile(cfg.Engine.StopWordsPath),
		pipeline.WithTopics(cfg.Engine.Topics),
		pipeline.WithTopN(cfg.Engine.TopN),
		pipeline.WithOutlier(cfg.Engine.Outlier),
		pipeline.WithLogger(log),
	}
	if f := cmd.Flags().Lookup("topic"); f != nil && f.Changed {
		opts = append(opts, pipeline.WithTopic(topicID))
	}

	log.Debug("pipeline configured",
		"corpus", cfg.Corpus.Kind,
		"clusters", cfg.Clusters.Kind,
		"n_topics", cfg.Engine.Topics,
		"top_n", cfg.Engine.TopN,
	)
	return pipeline.New(corpus, clusters, out, opts...), nil
}

// newOutput builds stdout plus the optional report file and webhook.
func newOutput(cfg config.Config, f output.Format) (output.Output, error) {
	v, err := output.ParseVerbosity(cfg.Output.Verbosity)
	if err != nil {
		return nil, err
	}

	outs := []output.Output{stdout.New(f, v, stdout.WithPretty(cfg.Output.Pretty))}
	if cfg.Output.File != "" {
		fo, err := file.New(cfg.Output.File, v, file.WithKeep(cfg.Output.Keep))
		if err != nil {
			return nil, err
		}
		outs = append(outs, fo)
	}
	if cfg.Output.Webhook != "" {
		outs = append(outs, webhook.New(cfg.Output.Webhook, v))
	}

	if len(outs) == 1 {
		return outs[0], nil
	}
	return multi.New(outs...), nil
}

// closeQuietly reports a Close failure on stderr without masking the
// command's own error.
func closeQuietly(p *pipeline.Pipeline) {
	if err := p.Close(); err != nil {
		fmt.Fprintf(os.Stderr, "close output: %v\n", err)
	}
}
