package engine

import (
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"

	"github.com/lgbarn/chessengine-go/internal/chess"
	"github.com/lgbarn/chessengine-go/internal/errors"
)

// Game is the surface front ends drive: it owns the current position, the
// move history and the repetition record, and hands out legal moves.
type Game struct {
	pos      *chess.Position
	startFEN string
	gen      *Generator

	history []*MoveRecord
	// prelude counts history entries replayed to reconstruct a FEN's
	// en-passant target; they are not part of the visible history.
	prelude int

	// keys holds the key of every position reached, the start included.
	keys []chess.PositionKey
}

// GameOption configures a Game.
type GameOption func(*Game)

// WithGenerator makes the game produce legal moves through g, typically to
// share a move cache with a searcher.
func WithGenerator(g *Generator) GameOption {
	return func(game *Game) {
		game.gen = g
	}
}

// NewGame creates a game from the standard starting position.
func NewGame(opts ...GameOption) *Game {
	g, err := NewGameFromFEN(InitialFEN, opts...)
	if err != nil {
		panic(err)
	}
	return g
}

// NewGameFromFEN creates a game starting from the given FEN. If the FEN
// names an en-passant target, the implied double pawn step is replayed from
// the reconstructed prior position so the history is consistent with it.
func NewGameFromFEN(fen string, opts ...GameOption) (*Game, error) {
	pos, err := ParseFEN(fen)
	if err != nil {
		return nil, err
	}

	g := &Game{startFEN: fen}
	for _, opt := range opts {
		opt(g)
	}
	if g.gen == nil {
		g.gen = NewGenerator(nil)
	}

	if pos.EnPassant == chess.NoSquare {
		g.pos = pos
		g.keys = []chess.PositionKey{pos.Key()}
		return g, nil
	}

	prior, push := priorToDoubleStep(pos)
	g.pos = prior
	g.keys = []chess.PositionKey{prior.Key()}
	if _, err := g.MakeMove(push); err != nil {
		return nil, &errors.ParseError{Err: errors.ErrInvalidFEN, Text: fen, Field: "en passant", Reason: "double step is not legal"}
	}
	g.prelude = 1
	g.pos.HalfmoveClock = pos.HalfmoveClock
	g.pos.FullmoveNumber = pos.FullmoveNumber
	return g, nil
}

// priorToDoubleStep rebuilds the position before the double step that set
// pos.EnPassant, and returns it with that push.
func priorToDoubleStep(pos *chess.Position) (*chess.Position, chess.Move) {
	mover := pos.ToMove.Opposite()
	dir := mover.PawnDirection()
	landing := pos.EnPassant.Offset(dir, 0)
	origin := pos.EnPassant.Offset(-dir, 0)
	pawn := chess.NewPiece(mover, chess.Pawn)

	prior := pos.Copy()
	prior.Remove(landing)
	prior.Place(origin, pawn)
	prior.ToMove = mover
	prior.EnPassant = chess.NoSquare
	prior.HalfmoveClock = 0
	if mover == chess.Black && prior.FullmoveNumber > 1 {
		prior.FullmoveNumber--
	}
	return prior, chess.NewRegularMove(pawn, origin, landing)
}

// Position returns a copy of the current position.
func (g *Game) Position() *chess.Position {
	return g.pos.Copy()
}

// ToMove returns the colour whose turn it is.
func (g *Game) ToMove() chess.Colour {
	return g.pos.ToMove
}

// StartFEN returns the FEN the game was created from.
func (g *Game) StartFEN() string {
	return g.startFEN
}

// FEN returns the FEN of the current position.
func (g *Game) FEN() string {
	return FEN(g.pos)
}

// Generator returns the generator the game uses for legal moves.
func (g *Game) Generator() *Generator {
	return g.gen
}

// LegalMoves returns the legal moves in the current position.
func (g *Game) LegalMoves() []chess.Move {
	return g.gen.LegalMoves(g.pos)
}

// FromNotation resolves SAN text to a legal move in the current position.
func (g *Game) FromNotation(text string) (chess.Move, error) {
	return ParseSAN(g.pos, text, g.LegalMoves())
}

// FromUCI resolves coordinate text to a legal move in the current position.
func (g *Game) FromUCI(text string) (chess.Move, error) {
	return ParseUCI(text, g.LegalMoves())
}

// MakeMove plays m and returns its record. Moves that are not legal in the
// current position are rejected with errors.ErrIllegalMove.
func (g *Game) MakeMove(m chess.Move) (*MoveRecord, error) {
	legal := g.LegalMoves()
	if m == nil || !slices.Contains(legal, m) {
		return nil, errors.Wrapf(errors.ErrIllegalMove, "%v", m)
	}

	before := *g.pos
	u := chess.Apply(g.pos, m)
	rec := newMoveRecord(&before, m, legal, u, g.pos)
	g.history = append(g.history, rec)
	g.keys = append(g.keys, rec.After)
	return rec, nil
}

// PlayNotation parses SAN text and plays the move.
func (g *Game) PlayNotation(text string) (*MoveRecord, error) {
	m, err := g.FromNotation(text)
	if err != nil {
		return nil, err
	}
	return g.MakeMove(m)
}

// PlayUCI parses coordinate text and plays the move.
func (g *Game) PlayUCI(text string) (*MoveRecord, error) {
	m, err := g.FromUCI(text)
	if err != nil {
		return nil, err
	}
	return g.MakeMove(m)
}

// UnmakeMove takes back rec, which must be the last move played.
func (g *Game) UnmakeMove(rec *MoveRecord) error {
	n := len(g.history)
	if rec == nil || n == g.prelude || g.history[n-1] != rec {
		return errors.ErrNotLastMove
	}
	chess.Unapply(g.pos, rec.Move, rec.undo)
	g.history = g.history[:n-1]
	g.keys = g.keys[:len(g.keys)-1]
	return nil
}

// LastMove returns the latest record, nil if no move has been played.
func (g *Game) LastMove() *MoveRecord {
	if len(g.history) == g.prelude {
		return nil
	}
	return g.history[len(g.history)-1]
}

// History returns the records of the moves played, oldest first.
func (g *Game) History() []*MoveRecord {
	return slices.Clone(g.history[g.prelude:])
}

// SANHistory returns the moves played in algebraic notation.
func (g *Game) SANHistory() []string {
	moves := make([]string, 0, len(g.history)-g.prelude)
	for _, rec := range g.history[g.prelude:] {
		moves = append(moves, rec.SAN())
	}
	return moves
}

// Repetitions returns how many times the current position has occurred.
func (g *Game) Repetitions() int {
	current := g.pos.Key()
	count := 0
	for _, k := range g.keys {
		if k == current {
			count++
		}
	}
	return count
}

// RepeatedPositions returns the keys of positions that occurred more than once.
func (g *Game) RepeatedPositions() []chess.PositionKey {
	counts := make(map[chess.PositionKey]int, len(g.keys))
	for _, k := range g.keys {
		counts[k]++
	}
	maps.DeleteFunc(counts, func(_ chess.PositionKey, n int) bool {
		return n < 2
	})
	return maps.Keys(counts)
}

// State returns the game state: a win when the side to move is mated, a draw
// on stalemate, the fifty-move rule, threefold repetition or insufficient
// material, and Unfinished otherwise.
func (g *Game) State() chess.GameState {
	state := StateOf(g.pos, g.LegalMoves())
	if state == chess.Unfinished && g.Repetitions() >= RepetitionLimit {
		return chess.Draw
	}
	return state
}

// Result returns the PGN result token of the game state.
func (g *Game) Result() string {
	return g.State().Result()
}
