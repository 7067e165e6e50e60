package engine

import (
	"github.com/lgbarn/chessengine-go/internal/chess"
)

// MoveRecord is one played move together with the position it was played
// from. Records compare equal when they lead to the same position (board,
// side to move and castling rights), which is what repetition counting needs.
type MoveRecord struct {
	Move chess.Move

	// Before is the position the move was played from.
	Before chess.Position

	// After identifies the position the move led to.
	After chess.PositionKey

	undo    chess.Undo
	capture bool
	check   bool
	mate    bool
	san     string
}

// newMoveRecord describes m, already applied to after, from before.
func newMoveRecord(before *chess.Position, m chess.Move, legal []chess.Move, u chess.Undo, after *chess.Position) *MoveRecord {
	rec := &MoveRecord{
		Move:    m,
		Before:  *before,
		After:   after.Key(),
		undo:    u,
		capture: !u.Captured.IsNone(),
		check:   SideToMoveInCheck(after),
	}
	rec.mate = rec.check && len(LegalMoves(after)) == 0
	rec.san = SAN(before, m, legal)
	return rec
}

// IsCapture reports whether the move removed an enemy piece.
func (r *MoveRecord) IsCapture() bool { return r.capture }

// IsCheck reports whether the move gave check.
func (r *MoveRecord) IsCheck() bool { return r.check }

// IsMate reports whether the move gave checkmate.
func (r *MoveRecord) IsMate() bool { return r.mate }

// SAN returns the disambiguated algebraic notation with a "+" or "#" suffix.
func (r *MoveRecord) SAN() string {
	switch {
	case r.mate:
		return r.san + "#"
	case r.check:
		return r.san + "+"
	}
	return r.san
}

// UCI returns the coordinate notation of the move.
func (r *MoveRecord) UCI() string {
	return r.Move.UCI()
}

// Equal reports whether both records lead to the same position.
func (r *MoveRecord) Equal(other *MoveRecord) bool {
	return other != nil && r.After == other.After
}

func (r *MoveRecord) String() string {
	return r.SAN()
}
