package config

import (
	"io"

	"github.com/lgbarn/chessengine-go/internal/output"
)

// ConfigBuilder provides a fluent API for building Config instances.
type ConfigBuilder struct {
	cfg *Config
}

// NewConfigBuilder creates a new ConfigBuilder with default values.
func NewConfigBuilder() *ConfigBuilder {
	return &ConfigBuilder{
		cfg: NewConfig(),
	}
}

// Build validates and returns the built Config.
func (b *ConfigBuilder) Build() (*Config, error) {
	if err := b.cfg.Validate(); err != nil {
		return nil, err
	}
	return b.cfg, nil
}

// WithDepth sets the search depth.
func (b *ConfigBuilder) WithDepth(depth int) *ConfigBuilder {
	b.cfg.Search.Depth = depth
	return b
}

// WithCaptureDepth sets the depth used when a capture is available.
func (b *ConfigBuilder) WithCaptureDepth(depth int) *ConfigBuilder {
	b.cfg.Search.CaptureDepth = depth
	return b
}

// WithParallel enables parallel root search.
func (b *ConfigBuilder) WithParallel(enabled bool) *ConfigBuilder {
	b.cfg.Search.Parallel = enabled
	return b
}

// WithIterativeDeepening enables iterative deepening.
func (b *ConfigBuilder) WithIterativeDeepening(enabled bool) *ConfigBuilder {
	b.cfg.Search.Iterative = enabled
	return b
}

// WithMoveOrdering enables move ordering.
func (b *ConfigBuilder) WithMoveOrdering(enabled bool) *ConfigBuilder {
	b.cfg.Search.Ordering = enabled
	return b
}

// WithEvaluator selects an evaluator by name.
func (b *ConfigBuilder) WithEvaluator(name string) *ConfigBuilder {
	b.cfg.Search.Evaluator = name
	return b
}

// WithCache enables the position cache with the given capacity.
func (b *ConfigBuilder) WithCache(enabled bool, capacity int) *ConfigBuilder {
	b.cfg.Cache.Enabled = enabled
	b.cfg.Cache.Capacity = capacity
	return b
}

// WithOutput sets the output writer.
func (b *ConfigBuilder) WithOutput(w io.Writer) *ConfigBuilder {
	b.cfg.SetOutput(w)
	return b
}

// WithLog sets the diagnostics writer.
func (b *ConfigBuilder) WithLog(w io.Writer) *ConfigBuilder {
	b.cfg.SetLog(w)
	return b
}

// WithVerbosity sets the verbosity level.
func (b *ConfigBuilder) WithVerbosity(level int) *ConfigBuilder {
	b.cfg.Output.Verbosity = level
	return b
}

// ShowBoard controls whether play mode prints the board.
func (b *ConfigBuilder) ShowBoard(show bool) *ConfigBuilder {
	b.cfg.Output.ShowBoard = show
	return b
}

// WithGameFormat sets the format of recorded games.
func (b *ConfigBuilder) WithGameFormat(format output.Format) *ConfigBuilder {
	b.cfg.Output.GameFormat = format
	return b
}

// WithMaxLineLength sets the maximum PGN line length.
func (b *ConfigBuilder) WithMaxLineLength(length int) *ConfigBuilder {
	b.cfg.Output.MaxLineLength = length
	return b
}
