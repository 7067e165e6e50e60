package engine

import (
	"golang.org/x/exp/slices"

	"github.com/lgbarn/chessengine-go/internal/cache"
	"github.com/lgbarn/chessengine-go/internal/chess"
)

// PseudoLegalMoves returns every move of the side to move that obeys piece
// movement rules. Moves may leave the mover's own king in check. Castles are
// only produced when fully legal.
func PseudoLegalMoves(p *chess.Position) []chess.Move {
	moves := make([]chess.Move, 0, 48)
	us := p.ToMove
	own := p.Occupied(us)
	enemy := p.Occupied(us.Opposite())

	moves = appendPawnMoves(moves, p, own, enemy)
	for _, pt := range chess.PieceTypes[1:] {
		piece := chess.NewPiece(us, pt)
		it := p.AllOf(piece)
		for from, ok := it.Next(); ok; from, ok = it.Next() {
			targets := attacks(piece, from, own, enemy).Squares()
			for to, ok := targets.Next(); ok; to, ok = targets.Next() {
				moves = append(moves, chess.NewRegularMove(piece, from, to))
			}
		}
	}
	return appendCastles(moves, p)
}

// appendPawnMoves adds pushes, captures, en passant and promotions.
func appendPawnMoves(moves []chess.Move, p *chess.Position, own, enemy chess.Bitboard) []chess.Move {
	us := p.ToMove
	pawn := chess.NewPiece(us, chess.Pawn)
	occupied := own | enemy
	dir := us.PawnDirection()

	it := p.AllOf(pawn)
	for from, ok := it.Next(); ok; from, ok = it.Next() {
		if one := from.Offset(dir, 0); one != chess.NoSquare && !occupied.Has(one) {
			moves = appendPawnMove(moves, pawn, from, one)
			if from.Rank() == us.PawnStartRank() {
				if two := one.Offset(dir, 0); !occupied.Has(two) {
					moves = append(moves, chess.NewRegularMove(pawn, from, two))
				}
			}
		}

		captures := attacks(pawn, from, own, enemy).Squares()
		for to, ok := captures.Next(); ok; to, ok = captures.Next() {
			moves = appendPawnMove(moves, pawn, from, to)
		}

		if ep := p.EnPassant; ep != chess.NoSquare && pawnCaptures[us][from].Has(ep) {
			m := chess.NewEnPassant(pawn, from, ep)
			if p.Bitboard(m.CapturedPawn()).Has(m.CapturedSquare()) && !occupied.Has(ep) {
				moves = append(moves, m)
			}
		}
	}
	return moves
}

// appendPawnMove adds a single pawn move, or the four promotions on the last rank.
func appendPawnMove(moves []chess.Move, pawn chess.Piece, from, to chess.Square) []chess.Move {
	if to.Rank() != pawn.Colour.PromotionRank() {
		return append(moves, chess.NewRegularMove(pawn, from, to))
	}
	for _, pt := range chess.PromotionTypes {
		moves = append(moves, chess.NewPromotion(pawn.Colour, pt, from, to))
	}
	return moves
}

// appendCastles adds the castling moves available to the side to move. The
// right must be held, the king and rook must stand on their home squares,
// the squares between them must be empty and the king may not start, pass
// through or land on an attacked square.
func appendCastles(moves []chess.Move, p *chess.Position) []chess.Move {
	us := p.ToMove
	if !p.Castling.Has(chess.Kingside(us)) && !p.Castling.Has(chess.Queenside(us)) {
		return moves
	}
	them := us.Opposite()
	occupied := p.AllOccupied()

	for _, side := range []struct {
		right    chess.CastlingRights
		kingside bool
	}{{chess.Kingside(us), true}, {chess.Queenside(us), false}} {
		if !p.Castling.Has(side.right) {
			continue
		}
		m := chess.NewCastle(us, side.kingside)
		if !p.Bitboard(m.Piece()).Has(m.From()) || !p.Bitboard(m.Rook()).Has(m.RookFrom()) {
			continue
		}
		if occupied&between(m.From(), m.RookFrom()) != 0 {
			continue
		}
		safe := true
		step := 1
		if !side.kingside {
			step = -1
		}
		for sq := m.From(); ; sq = sq.Offset(0, step) {
			if IsDefendedBy(p, them, sq) {
				safe = false
				break
			}
			if sq == m.To() {
				break
			}
		}
		if safe {
			moves = append(moves, m)
		}
	}
	return moves
}

// between returns the squares strictly between two squares on the same rank.
func between(a, b chess.Square) chess.Bitboard {
	if a > b {
		a, b = b, a
	}
	var bb chess.Bitboard
	for sq := a + 1; sq < b; sq++ {
		bb = bb.With(sq)
	}
	return bb
}

// LegalMoves returns the moves of the side to move that do not leave its own
// king attacked. Each candidate is applied to one scratch copy, tested and
// undone. The result has no duplicates and no meaningful order.
func LegalMoves(p *chess.Position) []chess.Move {
	candidates := PseudoLegalMoves(p)
	scratch := p.Copy()
	us := p.ToMove
	legal := candidates[:0]
	for _, m := range candidates {
		u := chess.Apply(scratch, m)
		if !IsInCheck(scratch, us) {
			legal = append(legal, m)
		}
		chess.Unapply(scratch, m, u)
	}
	return legal
}

// IsLegal reports whether m is one of the legal moves in p.
func IsLegal(p *chess.Position, m chess.Move) bool {
	return slices.Contains(LegalMoves(p), m)
}

// MoveCache memoises legal-move sets by MoveKey.
type MoveCache = cache.Cache[chess.MoveKey, []chess.Move]

// NewMoveCache creates a legal-move cache of the given capacity.
func NewMoveCache(capacity int) *MoveCache {
	return cache.New[chess.MoveKey, []chess.Move](capacity)
}

// Generator produces legal moves, sharing results through an optional cache.
// A Generator is safe for concurrent use.
type Generator struct {
	cache *MoveCache
}

// NewGenerator creates a generator backed by c. A nil cache disables memoisation.
func NewGenerator(c *MoveCache) *Generator {
	return &Generator{cache: c}
}

// LegalMoves returns the legal moves in p. The returned slice belongs to the caller.
func (g *Generator) LegalMoves(p *chess.Position) []chess.Move {
	if g == nil || g.cache == nil {
		return LegalMoves(p)
	}
	cached := g.cache.ComputeIfAbsent(p.MoveKey(), func() []chess.Move {
		return LegalMoves(p)
	})
	return slices.Clone(cached)
}

// Cache returns the generator's cache, nil if memoisation is disabled.
func (g *Generator) Cache() *MoveCache {
	if g == nil {
		return nil
	}
	return g.cache
}
