package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/pagelab/corpusrank/pkg/config"
	"github.com/pagelab/corpusrank/pkg/crawler"
	"github.com/pagelab/corpusrank/pkg/models"
	"github.com/pagelab/corpusrank/pkg/pagerank"
	"github.com/pagelab/corpusrank/pkg/report"
	"github.com/pagelab/corpusrank/pkg/utils/logger"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

// NewRankCmd creates the rank command.
func NewRankCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rank [corpus-dir]",
		Short: "Crawl an HTML corpus and rank its pages",
		Long: `Rank crawls a directory of HTML documents, builds the link graph of the
corpus and estimates the PageRank of every page with both estimators.

Examples:
  # Rank a corpus with the default parameters
  corpusrank rank ./corpus0

  # Use a lower damping factor and a bigger sample budget
  corpusrank rank -d 0.7 -n 100000 ./corpus0

  # Output a JSON report to a file
  corpusrank rank --json -o ranks.json ./corpus0

Configuration file (.corpusrank) example:
  damping: 0.85
  samples: 10000
  tolerance: 0.001
  max_iterations: 100`,
		Args: cobra.ExactArgs(1),
		RunE: runRankCmd,
	}

	cmd.Flags().Float64P("damping", "d", config.DefaultDamping,
		"Probability that the surfer follows a link instead of jumping at random")
	cmd.Flags().IntP("samples", "n", config.DefaultSamples,
		"Number of surfer steps of the sampling estimator")
	cmd.Flags().Float64P("tolerance", "t", config.DefaultTolerance,
		"Convergence tolerance of the iterative estimator")
	cmd.Flags().IntP("max-iterations", "i", config.DefaultMaxIterations,
		"Iteration cap of the iterative estimator")

	cmd.Flags().StringP("config", "c", "",
		"Configuration file path (default: .corpusrank in current or home directory)")

	cmd.Flags().BoolP("json", "j", false,
		"Output a JSON report (mutually exclusive with --markdown)")
	cmd.Flags().BoolP("markdown", "m", false,
		"Output a Markdown report (mutually exclusive with --json)")
	cmd.Flags().StringP("output", "o", "",
		"Write the report to the specified file instead of stdout")
	cmd.Flags().Bool("sequential", false,
		"Run the two estimators one after the other instead of in parallel")

	return cmd
}

func runRankCmd(cmd *cobra.Command, args []string) error {
	verbose, _ := cmd.Flags().GetBool("verbose")
	log := logger.Discard()
	if verbose {
		log = logger.New(cmd.ErrOrStderr())
	}

	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	corpus := args[0]
	graph, err := crawler.Crawl(corpus)
	if err != nil {
		return fmt.Errorf("crawling %s: %w", corpus, err)
	}
	log.Info("corpus %s: %d pages", corpus, graph.NumPages())

	sequential, _ := cmd.Flags().GetBool("sequential")
	sampled, iterated, info, err := rank(graph, cfg, sequential)
	if err != nil {
		return err
	}
	log.Info("sampling done (n = %d, rank sum %.6f)", cfg.Samples, sampled.Sum())
	log.Info("iteration converged after %d sweeps (final delta %.6f)", info.Iterations, info.FinalDelta)

	result := &report.Result{
		Corpus:     corpus,
		Damping:    cfg.Damping,
		Samples:    cfg.Samples,
		Iterations: info.Iterations,
		Sampled:    sampled,
		Iterated:   iterated,
	}

	writer, closer, err := newWriter(cmd)
	if err != nil {
		return err
	}
	if closer != nil {
		defer closer.Close()
	}

	return writer.Write(result)
}

// rank runs the two estimators over the shared read-only graph. They are
// independent, so by default they run in parallel, each with its own random
// source.
func rank(graph models.LinkGraph, cfg config.Config, sequential bool) (
	sampled, iterated models.Distribution, info pagerank.IterateInfo, err error) {

	iterateConfig := pagerank.IterateConfig{
		Tolerance:     cfg.Tolerance,
		MaxIterations: cfg.MaxIterations,
	}

	if sequential {
		if sampled, err = pagerank.Sample(graph, cfg.Damping, cfg.Samples); err != nil {
			return nil, nil, info, err
		}
		iterated, info, err = pagerank.IterateWithInfo(graph, cfg.Damping, iterateConfig)
		return sampled, iterated, info, err
	}

	var group errgroup.Group
	group.Go(func() error {
		var err error
		sampled, err = pagerank.Sample(graph, cfg.Damping, cfg.Samples)
		return err
	})
	group.Go(func() error {
		var err error
		iterated, info, err = pagerank.IterateWithInfo(graph, cfg.Damping, iterateConfig)
		return err
	})

	if err := group.Wait(); err != nil {
		return nil, nil, info, err
	}
	return sampled, iterated, info, nil
}

// resolveConfig builds the run configuration with the usual precedence:
// defaults, then configuration file, then environment, then flags.
func resolveConfig(cmd *cobra.Command) (config.Config, error) {
	cfg := config.Default()

	path, _ := cmd.Flags().GetString("config")
	if found := config.FindFile(path); found != "" {
		fileConfig, err := config.LoadFile(found)
		if err != nil {
			return cfg, err
		}
		cfg = cfg.Merge(fileConfig)
	} else if path != "" {
		return cfg, fmt.Errorf("%s: %w", path, config.ErrConfigNotFound)
	}

	cfg, err := config.FromEnv(cfg)
	if err != nil {
		return cfg, err
	}

	if cmd.Flags().Changed("damping") {
		cfg.Damping, _ = cmd.Flags().GetFloat64("damping")
	}
	if cmd.Flags().Changed("samples") {
		cfg.Samples, _ = cmd.Flags().GetInt("samples")
	}
	if cmd.Flags().Changed("tolerance") {
		cfg.Tolerance, _ = cmd.Flags().GetFloat64("tolerance")
	}
	if cmd.Flags().Changed("max-iterations") {
		cfg.MaxIterations, _ = cmd.Flags().GetInt("max-iterations")
	}

	return cfg, nil
}

// newWriter picks the report writer from the format flags and the output
// destination. The returned closer is nil when writing to stdout.
func newWriter(cmd *cobra.Command) (report.Writer, io.Closer, error) {
	asJSON, _ := cmd.Flags().GetBool("json")
	asMarkdown, _ := cmd.Flags().GetBool("markdown")
	if asJSON && asMarkdown {
		return nil, nil, errors.New("--json and --markdown are mutually exclusive")
	}

	var output io.Writer = cmd.OutOrStdout()
	var closer io.Closer

	if path, _ := cmd.Flags().GetString("output"); path != "" {
		f, err := os.Create(path)
		if err != nil {
			return nil, nil, fmt.Errorf("creating report file: %w", err)
		}
		output = f
		closer = f
	}

	switch {
	case asJSON:
		return report.NewJSONWriter(output), closer, nil
	case asMarkdown:
		return report.NewMarkdownWriter(output), closer, nil
	default:
		return report.NewTextWriter(output), closer, nil
	}
}
