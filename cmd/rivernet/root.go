package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/rivernet/aggregate"
	"github.com/katalvlaran/rivernet/config"
	"github.com/katalvlaran/rivernet/internal/logging"
)

// rootFlags are shared by every sub-command.
type rootFlags struct {
	logLevel string
	logJSON  bool
}

// runFlags select the inputs and override settings file values.
type runFlags struct {
	network       string
	values        string
	config        string
	output        string
	method        string
	segmentLength float64
	locations     []int
	aggregation   string
	split         bool
	workers       int
	onBasinError  string
}

func newRootCmd() *cobra.Command {
	rf := &rootFlags{}
	root := &cobra.Command{
		Use:   "rivernet",
		Short: "aggregate node attributes along river networks",
		Long: `rivernet replaces a noisy value attached to every node of a river network
with piecewise-constant values: one value per reach between confluences,
fixed-length segment, drainage basin or user-defined section.`,
		SilenceUsage: true,
	}
	root.PersistentFlags().StringVar(&rf.logLevel, "log-level", "warn", "log level: debug, info, warn or error")
	root.PersistentFlags().BoolVar(&rf.logJSON, "log-json", false, "write logs as JSON lines")

	root.AddCommand(newAggregateCmd(rf), newSegmentsCmd(rf))
	return root
}

// bindRunFlags registers the input and settings flags on cmd.
func bindRunFlags(cmd *cobra.Command, f *runFlags, withValues bool) {
	fl := cmd.Flags()
	fl.StringVarP(&f.network, "network", "n", "", "network YAML file (required)")
	fl.StringVarP(&f.config, "config", "c", "", "settings YAML file")
	fl.StringVarP(&f.output, "output", "o", "", "output file (default stdout)")
	fl.StringVarP(&f.method, "method", "m", "", "segmentation method")
	fl.Float64Var(&f.segmentLength, "segment-length", 0, "fixed segment length in map units")
	fl.IntSliceVar(&f.locations, "locations", nil, "node indices cut by explicit-locations")
	_ = cmd.MarkFlagRequired("network")

	if withValues {
		fl.StringVarP(&f.values, "values", "v", "", "attribute YAML file (required)")
		fl.StringVarP(&f.aggregation, "aggregation", "a", "", "reduction: mean, median, min, max, std, sum, range, count, pNN, nan<name>")
		fl.BoolVar(&f.split, "split", false, "process drainage basins in parallel")
		fl.IntVarP(&f.workers, "workers", "w", 0, "parallel basin workers (default GOMAXPROCS)")
		fl.StringVar(&f.onBasinError, "on-basin-error", "", "fail-fast or mark-missing")
		_ = cmd.MarkFlagRequired("values")
	}
}

// settings loads the settings file, if any, and applies changed flags on top.
func (f *runFlags) settings(cmd *cobra.Command) (*config.Config, error) {
	cfg := &config.Config{}
	if f.config != "" {
		var err error
		if cfg, err = config.Load(f.config); err != nil {
			return nil, err
		}
	}
	fl := cmd.Flags()
	if fl.Changed("method") {
		cfg.Method = f.method
	}
	if fl.Changed("segment-length") {
		cfg.SegmentLength = f.segmentLength
	}
	if fl.Changed("locations") {
		cfg.Locations = f.locations
	}
	if fl.Changed("aggregation") {
		cfg.Aggregation = f.aggregation
	}
	if fl.Changed("split") {
		cfg.Split = f.split
	}
	if fl.Changed("workers") {
		cfg.Workers = f.workers
	}
	if fl.Changed("on-basin-error") {
		cfg.OnBasinError = f.onBasinError
	}
	return cfg, nil
}

// options resolves settings and the logger into aggregate options.
func (f *runFlags) options(cmd *cobra.Command, logger *slog.Logger) ([]aggregate.Option, error) {
	cfg, err := f.settings(cmd)
	if err != nil {
		return nil, err
	}
	opts, err := cfg.Options()
	if err != nil {
		return nil, err
	}
	return append(opts, aggregate.WithLogger(logger)), nil
}

func (rf *rootFlags) logger(cmd *cobra.Command) (*slog.Logger, error) {
	return logging.Setup(cmd.ErrOrStderr(), rf.logLevel, rf.logJSON)
}

// withOutput runs write against the output file or the command's stdout.
func withOutput(cmd *cobra.Command, path string, write func(io.Writer) error) error {
	if path == "" {
		return write(cmd.OutOrStdout())
	}
	fh, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	if err = write(fh); err != nil {
		_ = fh.Close()
		return err
	}
	return fh.Close()
}
