package eval

import (
	"github.com/lgbarn/chessengine-go/internal/chess"
	"github.com/lgbarn/chessengine-go/internal/engine"
)

// Weights tunes the Standard evaluator.
type Weights struct {
	Mobility     float64 // per legal move of difference
	Capture      float64 // extra mobility weight per capturing move
	DoubledPawn  float64 // penalty per extra pawn on a file
	BlockedPawn  float64 // penalty per pawn with a piece directly in front
	IsolatedPawn float64 // penalty per pawn with no own pawn on adjacent files
	Tempo        float64 // bonus for the side to move
}

// DefaultWeights are the weights used by NewStandard.
var DefaultWeights = Weights{
	Mobility:     0.1,
	Capture:      0.05,
	DoubledPawn:  0.5,
	BlockedPawn:  0.5,
	IsolatedPawn: 0.5,
	Tempo:        0.1,
}

// Standard scores material, mobility, pawn structure and tempo.
type Standard struct {
	gen     *engine.Generator
	weights Weights
}

// NewStandard creates a Standard evaluator. gen may be nil.
func NewStandard(gen *engine.Generator) *Standard {
	return &Standard{gen: gen, weights: DefaultWeights}
}

// WithWeights returns a copy of s using w.
func (s *Standard) WithWeights(w Weights) *Standard {
	return &Standard{gen: s.gen, weights: w}
}

// Evaluate implements Evaluator.
func (s *Standard) Evaluate(p *chess.Position) float64 {
	legal := s.gen.LegalMoves(p)
	if score, ok := Terminal(p, legal); ok {
		return score
	}

	score := Material(p)
	score += s.mobility(p, legal)
	score -= s.pawnStructure(p, chess.White)
	score += s.pawnStructure(p, chess.Black)
	if p.ToMove == chess.White {
		score += s.weights.Tempo
	} else {
		score -= s.weights.Tempo
	}
	return score
}

// mobility compares the legal moves of both sides. The opponent's moves are
// counted on a copy with the turn handed over.
func (s *Standard) mobility(p *chess.Position, legal []chess.Move) float64 {
	flipped := p.Copy()
	flipped.ToMove = p.ToMove.Opposite()
	flipped.EnPassant = chess.NoSquare
	theirs := s.gen.LegalMoves(flipped)

	diff := s.moveWeight(p, legal) - s.moveWeight(flipped, theirs)
	if p.ToMove == chess.Black {
		diff = -diff
	}
	return diff
}

func (s *Standard) moveWeight(p *chess.Position, moves []chess.Move) float64 {
	occupied := p.AllOccupied()
	var total float64
	for _, m := range moves {
		total += s.weights.Mobility
		if occupied.Has(m.To()) || m.Kind() == chess.KindEnPassant {
			total += s.weights.Capture
		}
	}
	return total
}

// pawnStructure returns the total penalty for colour c's pawns.
func (s *Standard) pawnStructure(p *chess.Position, c chess.Colour) float64 {
	pawns := p.Bitboard(chess.NewPiece(c, chess.Pawn))
	if pawns == 0 {
		return 0
	}
	occupied := p.AllOccupied()
	var penalty float64

	for file := 0; file < chess.BoardSize; file++ {
		onFile := pawns & chess.FileMask(file)
		n := onFile.Count()
		if n == 0 {
			continue
		}
		if n > 1 {
			penalty += float64(n-1) * s.weights.DoubledPawn
		}
		var neighbours chess.Bitboard
		if file > 0 {
			neighbours |= chess.FileMask(file - 1)
		}
		if file < chess.BoardSize-1 {
			neighbours |= chess.FileMask(file + 1)
		}
		if pawns&neighbours == 0 {
			penalty += float64(n) * s.weights.IsolatedPawn
		}
	}

	it := pawns.Squares()
	for sq, ok := it.Next(); ok; sq, ok = it.Next() {
		if ahead := sq.Offset(c.PawnDirection(), 0); ahead != chess.NoSquare && occupied.Has(ahead) {
			penalty += s.weights.BlockedPawn
		}
	}
	return penalty
}

// MaterialOnly scores material alone, after the terminal checks.
type MaterialOnly struct {
	gen *engine.Generator
}

// NewMaterialOnly creates a material-only evaluator. gen may be nil.
func NewMaterialOnly(gen *engine.Generator) *MaterialOnly {
	return &MaterialOnly{gen: gen}
}

// Evaluate implements Evaluator.
func (m *MaterialOnly) Evaluate(p *chess.Position) float64 {
	if score, ok := Terminal(p, m.gen.LegalMoves(p)); ok {
		return score
	}
	return Material(p)
}
