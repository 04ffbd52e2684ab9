package main

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/symgraph/core"
	"github.com/katalvlaran/symgraph/internal/config"
	"github.com/katalvlaran/symgraph/internal/logging"
)

// stdinPath makes a FILE argument read standard input.
const stdinPath = "-"

// app carries the flag values and the state resolved from them before any
// subcommand runs.
type app struct {
	configPath string
	delim      string
	backend    string
	logFormat  string
	logLevel   string

	cfg    *config.Config
	logger *slog.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:   "symgraph",
		Short: "Inspect undirected graphs stored as delimited adjacency lists",
		Long: `symgraph reads files where each line is "hub<delim>n1<delim>n2...",
adds an undirected edge from the hub to every neighbour, and prints the
resulting graph or answers a query about it. FILE may be "-" for stdin.`,
		SilenceUsage:      true,
		PersistentPreRunE: a.resolve,
	}

	pf := root.PersistentFlags()
	pf.StringVar(&a.configPath, "config", "", "path to a YAML config file")
	pf.StringVar(&a.delim, "delim", "", `field delimiter (default " ")`)
	pf.StringVar(&a.backend, "backend", "", "graph backing: map or index (default map)")
	pf.StringVar(&a.logFormat, "log-format", "", "log format: text or json (default text)")
	pf.StringVar(&a.logLevel, "log-level", "", "log level: debug, info, warn, error (default warn)")

	root.AddCommand(
		a.showCmd(),
		a.statsCmd(),
		a.adjCmd(),
		a.degreeCmd(),
		a.hasEdgeCmd(),
		a.genCmd(),
	)

	return root
}

// resolve layers config file, environment and explicitly set flags, in that
// order, then builds the logger.
func (a *app) resolve(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	if flags.Changed("delim") {
		cfg.Delimiter = a.delim
	}
	if flags.Changed("backend") {
		cfg.Backend = a.backend
	}
	if flags.Changed("log-format") {
		cfg.Log.Format = a.logFormat
	}
	if flags.Changed("log-level") {
		cfg.Log.Level = a.logLevel
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	a.cfg = cfg
	a.logger = logging.New(cfg.Log.Format, cfg.Log.Level, cmd.ErrOrStderr())
	a.logger.Debug("config resolved",
		"config", a.configPath,
		"backend", cfg.Backend,
		"delimiter", cfg.Delimiter,
		"max_line_size", cfg.MaxLineSize,
	)

	return nil
}

// loadGraph bulk-loads path (or stdin for "-") with the resolved settings.
func (a *app) loadGraph(cmd *cobra.Command, path string) (core.Graph, error) {
	opts := []core.LoadOption{
		core.WithLogger(a.logger.With("source", path)),
		core.WithBackend(a.cfg.GraphFactory()),
		core.WithMaxLineSize(a.cfg.MaxLineSize),
	}
	if path == stdinPath {
		g, err := core.Load(cmd.InOrStdin(), a.cfg.Delimiter, opts...)
		if err != nil {
			return nil, fmt.Errorf("stdin: %w", err)
		}
		return g, nil
	}

	return core.LoadFile(path, a.cfg.Delimiter, opts...)
}

func (a *app) print(cmd *cobra.Command, format string, args ...any) error {
	_, err := fmt.Fprintf(cmd.OutOrStdout(), format, args...)
	return err
}

func (a *app) printGraph(cmd *cobra.Command, g core.Graph) error {
	_, err := io.WriteString(cmd.OutOrStdout(), core.Format(g))
	return err
}
