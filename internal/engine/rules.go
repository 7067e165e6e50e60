package engine

import (
	"github.com/lgbarn/chessengine-go/internal/chess"
)

// FiftyMoveLimit is the halfmove clock value at which a game is drawn.
const FiftyMoveLimit = 100

// RepetitionLimit is the number of occurrences of one position that draws a game.
const RepetitionLimit = 3

// lightSquares has a bit set for every light square (b1, a2, ...).
const lightSquares chess.Bitboard = 0x55AA55AA55AA55AA

// HasInsufficientMaterial returns true if neither side can deliver mate.
// Insufficient material includes:
// - K vs K
// - K+B vs K
// - K+N vs K
// - K+B vs K+B (bishops on the same square colour)
func HasInsufficientMaterial(p *chess.Position) bool {
	for _, c := range []chess.Colour{chess.White, chess.Black} {
		for _, pt := range []chess.PieceType{chess.Pawn, chess.Rook, chess.Queen} {
			if p.Bitboard(chess.NewPiece(c, pt)) != 0 {
				return false
			}
		}
	}

	wb := p.Bitboard(chess.NewPiece(chess.White, chess.Bishop))
	bb := p.Bitboard(chess.NewPiece(chess.Black, chess.Bishop))
	minors := wb.Count() + bb.Count() +
		p.Bitboard(chess.NewPiece(chess.White, chess.Knight)).Count() +
		p.Bitboard(chess.NewPiece(chess.Black, chess.Knight)).Count()

	switch {
	case minors <= 1:
		return true
	case minors == 2 && wb.Count() == 1 && bb.Count() == 1:
		return (wb&lightSquares != 0) == (bb&lightSquares != 0)
	}
	return false
}

// StateOf returns the state of p judged from the position alone: checkmate,
// stalemate, the fifty-move rule and insufficient material. Repetition needs
// game history and is handled by Game.
func StateOf(p *chess.Position, legal []chess.Move) chess.GameState {
	if len(legal) == 0 {
		if SideToMoveInCheck(p) {
			return chess.WinFor(p.ToMove.Opposite())
		}
		return chess.Draw
	}
	if p.HalfmoveClock >= FiftyMoveLimit || HasInsufficientMaterial(p) {
		return chess.Draw
	}
	return chess.Unfinished
}

// IsCheckmate reports whether the side to move is mated.
func IsCheckmate(p *chess.Position) bool {
	return SideToMoveInCheck(p) && len(LegalMoves(p)) == 0
}

// IsStalemate reports whether the side to move has no legal move and is not in check.
func IsStalemate(p *chess.Position) bool {
	return !SideToMoveInCheck(p) && len(LegalMoves(p)) == 0
}
