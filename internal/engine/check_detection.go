package engine

import (
	"github.com/lgbarn/chessengine-go/internal/chess"
	"github.com/lgbarn/chessengine-go/internal/errors"
)

// IsDefendedBy reports whether colour attacker attacks sq.
//
// For each piece type a hypothetical defender of that type is placed on sq;
// if any of its destinations holds an attacker piece of the same type, that
// piece attacks sq. The same step and ray tables serve move generation.
func IsDefendedBy(p *chess.Position, attacker chess.Colour, sq chess.Square) bool {
	defender := attacker.Opposite()
	own := p.Occupied(defender)
	enemy := p.Occupied(attacker)
	for _, pt := range chess.PieceTypes {
		theirs := p.Bitboard(chess.NewPiece(attacker, pt))
		if theirs == 0 {
			continue
		}
		if attacks(chess.NewPiece(defender, pt), sq, own, enemy)&theirs != 0 {
			return true
		}
	}
	return false
}

// IsInCheck returns true if the given colour's king is attacked.
// It panics with an *errors.InvariantError if that king is not on the board.
func IsInCheck(p *chess.Position, colour chess.Colour) bool {
	king := p.KingSquare(colour)
	if king == chess.NoSquare {
		panic(&errors.InvariantError{Err: errors.ErrKingMissing, Detail: colour.String()})
	}
	return IsDefendedBy(p, colour.Opposite(), king)
}

// SideToMoveInCheck reports whether the player to move is in check.
func SideToMoveInCheck(p *chess.Position) bool {
	return IsInCheck(p, p.ToMove)
}
