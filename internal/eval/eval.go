// Package eval scores chess positions for the search. Scores are in pawns
// and positive values favour White.
package eval

import (
	"fmt"
	"sort"

	"github.com/lgbarn/chessengine-go/internal/chess"
	"github.com/lgbarn/chessengine-go/internal/engine"
	"github.com/lgbarn/chessengine-go/internal/errors"
)

// MateScore is the magnitude of a checkmate score before the ply adjustment.
const MateScore = 100000.0

// Evaluator scores a position statically.
type Evaluator interface {
	Evaluate(p *chess.Position) float64
}

// EvaluatorFunc adapts a function to the Evaluator interface.
type EvaluatorFunc func(p *chess.Position) float64

// Evaluate calls f(p).
func (f EvaluatorFunc) Evaluate(p *chess.Position) float64 {
	return f(p)
}

// Terminal scores finished positions. A mated side scores -MateScore for
// White or +MateScore for Black, shrunk by the ply count so faster mates
// rank higher and slower losses lower. Stalemate, the fifty-move rule and
// insufficient material score 0. ok is false for unfinished positions.
func Terminal(p *chess.Position, legal []chess.Move) (score float64, ok bool) {
	switch engine.StateOf(p, legal) {
	case chess.WhiteWon:
		return MateScore - float64(p.Ply()), true
	case chess.BlackWon:
		return -(MateScore - float64(p.Ply())), true
	case chess.Draw:
		return 0, true
	}
	return 0, false
}

// IsMateScore reports whether score encodes a forced mate.
func IsMateScore(score float64) bool {
	return score > MateScore/2 || score < -MateScore/2
}

// Material returns the material balance of p using PieceType.Value.
func Material(p *chess.Position) float64 {
	var score float64
	for _, pt := range chess.PieceTypes {
		white := p.Bitboard(chess.NewPiece(chess.White, pt)).Count()
		black := p.Bitboard(chess.NewPiece(chess.Black, pt)).Count()
		score += float64(white-black) * pt.Value()
	}
	return score
}

// Constructor builds a named evaluator around a move generator.
type Constructor func(gen *engine.Generator) Evaluator

var registry = map[string]Constructor{
	"standard": func(gen *engine.Generator) Evaluator { return NewStandard(gen) },
	"material": func(gen *engine.Generator) Evaluator { return NewMaterialOnly(gen) },
}

// Names returns the registered evaluator names, sorted.
func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// New returns the evaluator registered under name.
func New(name string, gen *engine.Generator) (Evaluator, error) {
	ctor, ok := registry[name]
	if !ok {
		return nil, fmt.Errorf("unknown evaluator %q (want one of %v): %w", name, Names(), errors.ErrInvalidConfig)
	}
	return ctor(gen), nil
}
