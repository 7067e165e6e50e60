// Package config provides configuration for the chess engine and its CLI.
package config

import (
	"io"
	"log"
	"os"

	"github.com/lgbarn/chessengine-go/internal/engine"
	"github.com/lgbarn/chessengine-go/internal/eval"
	"github.com/lgbarn/chessengine-go/internal/output"
	"github.com/lgbarn/chessengine-go/internal/search"
)

// Config holds all program configuration, grouped by concern.
type Config struct {
	Search SearchConfig
	Cache  CacheConfig
	Output OutputConfig
}

// NewConfig creates a new Config with default values.
func NewConfig() *Config {
	return &Config{
		Search: *NewSearchConfig(),
		Cache:  *NewCacheConfig(),
		Output: *NewOutputConfig(),
	}
}

// Validate checks every sub-configuration.
func (c *Config) Validate() error {
	if err := c.Search.Validate(); err != nil {
		return err
	}
	if err := c.Cache.Validate(); err != nil {
		return err
	}
	return c.Output.Validate()
}

// SetOutput sets the writer for moves, boards and results.
func (c *Config) SetOutput(w io.Writer) {
	c.Output.Writer = w
}

// SetLog sets the writer for diagnostics.
func (c *Config) SetLog(w io.Writer) {
	c.Output.LogFile = w
}

// Logger returns a logger writing to the configured log file.
func (c *Config) Logger(prefix string) *log.Logger {
	w := c.Output.LogFile
	if w == nil {
		w = os.Stderr
	}
	return log.New(w, prefix, 0)
}

// Generator returns a move generator, backed by a fresh position cache
// when caching is enabled.
func (c *Config) Generator() *engine.Generator {
	if !c.Cache.Enabled {
		return engine.NewGenerator(nil)
	}
	return engine.NewGenerator(engine.NewMoveCache(c.Cache.Capacity))
}

// GameWriter returns a writer recording games to w in the configured format.
func (c *Config) GameWriter(w io.Writer) (output.GameWriter, error) {
	return output.NewGameWriter(w, c.Output.GameFormat, c.Output.MaxLineLength)
}

// Searcher builds a searcher from the search settings. Searchers built with
// the same gen share its cache.
func (c *Config) Searcher(gen *engine.Generator) (*search.Searcher, error) {
	return c.searcherAt(c.Search.Depth, gen)
}

// Picker builds the configured move picker: a plain searcher, or a
// capture-dispatching pair when a separate capture depth is set.
func (c *Config) Picker(gen *engine.Generator) (search.MovePicker, error) {
	quiet, err := c.searcherAt(c.Search.Depth, gen)
	if err != nil {
		return nil, err
	}
	if c.Search.CaptureDepth == 0 || c.Search.CaptureDepth == c.Search.Depth {
		return quiet, nil
	}
	capture, err := c.searcherAt(c.Search.CaptureDepth, gen)
	if err != nil {
		return nil, err
	}
	return search.NewCapturePicker(capture, quiet, gen), nil
}

func (c *Config) searcherAt(depth int, gen *engine.Generator) (*search.Searcher, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	evaluator, err := eval.New(c.Search.Evaluator, gen)
	if err != nil {
		return nil, err
	}
	return search.New(depth, evaluator,
		search.WithGenerator(gen),
		search.WithParallel(c.Search.Parallel),
		search.WithIterativeDeepening(c.Search.Iterative),
		search.WithMoveOrdering(c.Search.Ordering),
		search.WithLogger(c.Logger(""), c.Output.Verbosity),
	)
}
