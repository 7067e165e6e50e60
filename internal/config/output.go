package config

import (
	"fmt"
	"io"
	"os"

	"github.com/lgbarn/chessengine-go/internal/errors"
	"github.com/lgbarn/chessengine-go/internal/output"
)

// OutputConfig holds settings for where results and diagnostics go.
type OutputConfig struct {
	// Writer receives boards, moves and results.
	Writer io.Writer

	// LogFile receives diagnostics.
	LogFile io.Writer

	// Verbosity: 0=nothing, 1=move summaries, 2=per-depth search lines.
	Verbosity int

	// ShowBoard prints the board after every move in play mode.
	ShowBoard bool

	// GameFormat is the format of recorded games.
	GameFormat output.Format

	// MaxLineLength is the maximum PGN movetext line length.
	MaxLineLength int
}

// NewOutputConfig creates an OutputConfig with default values.
func NewOutputConfig() *OutputConfig {
	return &OutputConfig{
		Writer:        os.Stdout,
		LogFile:       os.Stderr,
		Verbosity:     1,
		ShowBoard:     true,
		GameFormat:    output.FormatPGN,
		MaxLineLength: output.DefaultLineLength,
	}
}

// Validate checks that the output configuration is valid.
func (o *OutputConfig) Validate() error {
	switch o.GameFormat {
	case output.FormatPGN, output.FormatJSON:
	default:
		return fmt.Errorf("game format %q: %w", o.GameFormat, errors.ErrInvalidConfig)
	}
	if o.MaxLineLength < 0 {
		return fmt.Errorf("line length %d: %w", o.MaxLineLength, errors.ErrInvalidConfig)
	}
	return nil
}
