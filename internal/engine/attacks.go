// Package engine provides chess move generation, check detection, legality,
// FEN exchange and the game surface front ends drive.
package engine

import "github.com/lgbarn/chessengine-go/internal/chess"

// Offset tables are (rank delta, file delta) pairs.
var (
	knightOffsets = [8][2]int{{-2, -1}, {-2, 1}, {-1, -2}, {-1, 2}, {1, -2}, {1, 2}, {2, -1}, {2, 1}}
	kingOffsets   = [8][2]int{{-1, -1}, {-1, 0}, {-1, 1}, {0, -1}, {0, 1}, {1, -1}, {1, 0}, {1, 1}}

	bishopDirections = [4][2]int{{-1, -1}, {-1, 1}, {1, -1}, {1, 1}}
	rookDirections   = [4][2]int{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}
)

// Step tables precomputed from the offsets above.
var (
	knightSteps  [chess.NumSquares]chess.Bitboard
	kingSteps    [chess.NumSquares]chess.Bitboard
	pawnCaptures [chess.NumColours][chess.NumSquares]chess.Bitboard
)

func init() {
	for sq := chess.Square(0); sq < chess.NumSquares; sq++ {
		knightSteps[sq] = offsetTargets(sq, knightOffsets[:])
		kingSteps[sq] = offsetTargets(sq, kingOffsets[:])
		for _, c := range []chess.Colour{chess.White, chess.Black} {
			dir := c.PawnDirection()
			pawnCaptures[c][sq] = offsetTargets(sq, [][2]int{{dir, -1}, {dir, 1}})
		}
	}
}

// offsetTargets returns the on-board squares reached from sq by each offset.
func offsetTargets(sq chess.Square, offsets [][2]int) chess.Bitboard {
	var bb chess.Bitboard
	for _, off := range offsets {
		if to := sq.Offset(off[0], off[1]); to != chess.NoSquare {
			bb = bb.With(to)
		}
	}
	return bb
}

// slide steps along each direction until the board edge or a blocker. An
// enemy blocker is included (a capture); an own blocker is not.
func slide(from chess.Square, directions [4][2]int, own, enemy chess.Bitboard) chess.Bitboard {
	var bb chess.Bitboard
	for _, dir := range directions {
		for to := from.Offset(dir[0], dir[1]); to != chess.NoSquare; to = to.Offset(dir[0], dir[1]) {
			if own.Has(to) {
				break
			}
			bb = bb.With(to)
			if enemy.Has(to) {
				break
			}
		}
	}
	return bb
}

// attacks returns the pseudo-legal destinations of piece standing on at,
// given the squares held by its own side and by the enemy. Pawn results are
// the diagonal captures only.
func attacks(piece chess.Piece, at chess.Square, own, enemy chess.Bitboard) chess.Bitboard {
	switch piece.Type {
	case chess.Pawn:
		return pawnCaptures[piece.Colour][at] & enemy
	case chess.Knight:
		return knightSteps[at] &^ own
	case chess.King:
		return kingSteps[at] &^ own
	case chess.Bishop:
		return slide(at, bishopDirections, own, enemy)
	case chess.Rook:
		return slide(at, rookDirections, own, enemy)
	case chess.Queen:
		return slide(at, bishopDirections, own, enemy) | slide(at, rookDirections, own, enemy)
	}
	return 0
}

// AttacksUsingPiece returns the pseudo-legal destinations of piece as if it
// stood on at in p, ignoring king safety. Pawn pushes are not included.
func AttacksUsingPiece(p *chess.Position, piece chess.Piece, at chess.Square) chess.Bitboard {
	return attacks(piece, at, p.Occupied(piece.Colour), p.Occupied(piece.Colour.Opposite()))
}
