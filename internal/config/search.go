package config

import (
	"fmt"

	"github.com/lgbarn/chessengine-go/internal/errors"
	"github.com/lgbarn/chessengine-go/internal/eval"
	"golang.org/x/exp/slices"
)

// SearchConfig holds settings for move choice.
type SearchConfig struct {
	// Depth is the search depth in plies.
	Depth int

	// CaptureDepth, when non-zero, is the depth used in positions where a
	// capture is available.
	CaptureDepth int

	// Parallel searches root moves concurrently.
	Parallel bool

	// Iterative searches depths 1..Depth, ordering each pass by the last.
	Iterative bool

	// Ordering tries checks and captures first.
	Ordering bool

	// Evaluator names a registered evaluator.
	Evaluator string
}

// NewSearchConfig creates a SearchConfig with default values.
func NewSearchConfig() *SearchConfig {
	return &SearchConfig{
		Depth:     3,
		Parallel:  true,
		Ordering:  true,
		Evaluator: "standard",
	}
}

// Validate checks that the search configuration is valid.
func (s *SearchConfig) Validate() error {
	if s.Depth <= 0 {
		return fmt.Errorf("depth %d: %w", s.Depth, errors.ErrInvalidConfig)
	}
	if s.CaptureDepth < 0 {
		return fmt.Errorf("capture depth %d: %w", s.CaptureDepth, errors.ErrInvalidConfig)
	}
	if !slices.Contains(eval.Names(), s.Evaluator) {
		return fmt.Errorf("evaluator %q (have %v): %w", s.Evaluator, eval.Names(), errors.ErrInvalidConfig)
	}
	return nil
}
