// flags.go - Command-line flag definitions and configuration
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/lgbarn/chessengine-go/internal/config"
	"github.com/lgbarn/chessengine-go/internal/engine"
	"github.com/lgbarn/chessengine-go/internal/eval"
)

// engineFlags are the search, cache and logging options shared by every
// command that consults the engine.
type engineFlags struct {
	depth        int
	captureDepth int
	parallel     bool
	iterative    bool
	ordering     bool
	evaluator    string
	noCache      bool
	cacheSize    int
	verbosity    int
	quiet        bool
	logFile      string
	appendLog    string
}

// newFlagSet creates a flag set for a command that reports errors on env's stderr.
func newFlagSet(env *environment, name, args string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(env.stderr)
	fs.Usage = func() {
		fmt.Fprintf(env.stderr, "Usage: chess-engine %s [options] %s\n\nOptions:\n", name, args)
		fs.PrintDefaults()
	}
	return fs
}

// register adds the engine options to fs, with defaults from cfg.
func (f *engineFlags) register(fs *flag.FlagSet, cfg *config.Config) {
	// Search options
	fs.IntVar(&f.depth, "depth", cfg.Search.Depth, "Search depth in plies")
	fs.IntVar(&f.captureDepth, "capture-depth", cfg.Search.CaptureDepth, "Search depth when a capture is available (0 = same as -depth)")
	fs.BoolVar(&f.parallel, "parallel", cfg.Search.Parallel, "Search root moves in parallel")
	fs.BoolVar(&f.iterative, "iterative", cfg.Search.Iterative, "Use iterative deepening")
	fs.BoolVar(&f.ordering, "ordering", cfg.Search.Ordering, "Try checks and captures first")
	fs.StringVar(&f.evaluator, "eval", cfg.Search.Evaluator, "Evaluator: "+strings.Join(eval.Names(), ", "))

	// Cache options
	fs.BoolVar(&f.noCache, "nocache", !cfg.Cache.Enabled, "Disable the legal-move position cache")
	fs.IntVar(&f.cacheSize, "cache-size", cfg.Cache.Capacity, "Maximum cached positions")

	// Logging
	fs.IntVar(&f.verbosity, "v", cfg.Output.Verbosity, "Verbosity: 0=silent, 1=move summaries, 2=search details")
	fs.BoolVar(&f.quiet, "s", false, "Silent mode (same as -v 0)")
	fs.StringVar(&f.logFile, "l", "", "Write diagnostics to log file")
	fs.StringVar(&f.appendLog, "L", "", "Append diagnostics to log file")
}

// apply copies the parsed options onto cfg and validates it. The returned
// closer releases any log file opened.
func (f *engineFlags) apply(cfg *config.Config) (io.Closer, error) {
	cfg.Search.Depth = f.depth
	cfg.Search.CaptureDepth = f.captureDepth
	cfg.Search.Parallel = f.parallel
	cfg.Search.Iterative = f.iterative
	cfg.Search.Ordering = f.ordering
	cfg.Search.Evaluator = f.evaluator
	cfg.Cache.Enabled = !f.noCache
	cfg.Cache.Capacity = f.cacheSize
	cfg.Output.Verbosity = f.verbosity
	if f.quiet {
		cfg.Output.Verbosity = 0
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return setupLogFile(cfg, f.logFile, f.appendLog)
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// setupLogFile points the config's log writer at the requested file.
func setupLogFile(cfg *config.Config, create, appendTo string) (io.Closer, error) {
	switch {
	case create != "":
		file, err := os.Create(create)
		if err != nil {
			return nil, fmt.Errorf("creating log file %s: %w", create, err)
		}
		cfg.SetLog(file)
		return file, nil
	case appendTo != "":
		file, err := os.OpenFile(appendTo, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644) //nolint:gosec // G302: 0644 is appropriate for user-created log files
		if err != nil {
			return nil, fmt.Errorf("opening log file %s: %w", appendTo, err)
		}
		cfg.SetLog(file)
		return file, nil
	}
	return nopCloser{}, nil
}

// newConfig returns the default configuration wired to env's streams.
func newConfig(env *environment) *config.Config {
	cfg := config.NewConfig()
	cfg.SetOutput(env.stdout)
	cfg.SetLog(env.stderr)
	return cfg
}

// parseFlags parses args into fs and reports whether the command should
// continue; code is the exit code to return otherwise.
func parseFlags(fs *flag.FlagSet, args []string) (ok bool, code int) {
	if err := fs.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return false, exitOK
		}
		return false, exitUsage
	}
	return true, exitOK
}

// fenFlag registers the usual -fen option.
func fenFlag(fs *flag.FlagSet) *string {
	return fs.String("fen", engine.InitialFEN, "Position in FEN (default: initial position)")
}
