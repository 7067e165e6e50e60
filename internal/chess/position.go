package chess

// CastlingRights is a set of the four independent castling flags.
type CastlingRights uint8

const (
	WhiteKingside CastlingRights = 1 << iota
	WhiteQueenside
	BlackKingside
	BlackQueenside

	NoCastling  CastlingRights = 0
	AllCastling                = WhiteKingside | WhiteQueenside | BlackKingside | BlackQueenside
)

// Kingside returns the kingside flag for colour c.
func Kingside(c Colour) CastlingRights {
	if c == White {
		return WhiteKingside
	}
	return BlackKingside
}

// Queenside returns the queenside flag for colour c.
func Queenside(c Colour) CastlingRights {
	if c == White {
		return WhiteQueenside
	}
	return BlackQueenside
}

// Has reports whether every flag in r is set.
func (cr CastlingRights) Has(r CastlingRights) bool {
	return cr&r == r
}

// String returns the FEN castling field, "-" if empty.
func (cr CastlingRights) String() string {
	var out []byte
	for _, f := range []struct {
		right  CastlingRights
		letter byte
	}{{WhiteKingside, 'K'}, {WhiteQueenside, 'Q'}, {BlackKingside, 'k'}, {BlackQueenside, 'q'}} {
		if cr.Has(f.right) {
			out = append(out, f.letter)
		}
	}
	if len(out) == 0 {
		return "-"
	}
	return string(out)
}

// castlingRevoke maps a square to the rights lost when a move starts or ends on it.
var castlingRevoke [NumSquares]CastlingRights

func init() {
	castlingRevoke[E1] = WhiteKingside | WhiteQueenside
	castlingRevoke[H1] = WhiteKingside
	castlingRevoke[A1] = WhiteQueenside
	castlingRevoke[E8] = BlackKingside | BlackQueenside
	castlingRevoke[H8] = BlackKingside
	castlingRevoke[A8] = BlackQueenside
}

// Position is a full game snapshot: one bitboard per owned piece, side to
// move, castling rights, en-passant target and the two move counters.
//
// The twelve bitboards are pairwise disjoint. Position is a plain value:
// assignment copies it completely.
type Position struct {
	boards [NumPieces]Bitboard

	// Who has the next move.
	ToMove Colour

	// Remaining castling rights.
	Castling CastlingRights

	// The square a pawn skipped over on the previous ply, or NoSquare.
	EnPassant Square

	// The half-move clock since the last pawn move or capture.
	HalfmoveClock int

	// The current move number, starting at 1.
	FullmoveNumber int
}

// NewPosition creates an empty position with White to move.
func NewPosition() *Position {
	return &Position{
		ToMove:         White,
		EnPassant:      NoSquare,
		FullmoveNumber: 1,
	}
}

// NewInitialPosition creates the standard starting position.
func NewInitialPosition() *Position {
	p := NewPosition()
	backRank := []PieceType{Rook, Knight, Bishop, Queen, King, Bishop, Knight, Rook}
	for file, pt := range backRank {
		p.Place(MakeSquare(0, file), NewPiece(White, pt))
		p.Place(MakeSquare(1, file), NewPiece(White, Pawn))
		p.Place(MakeSquare(6, file), NewPiece(Black, Pawn))
		p.Place(MakeSquare(7, file), NewPiece(Black, pt))
	}
	p.Castling = AllCastling
	return p
}

// PieceAt returns the piece on s and true, or NoPiece and false if empty.
func (p *Position) PieceAt(s Square) (Piece, bool) {
	bb := SquareBB(s)
	for i := range p.boards {
		if p.boards[i]&bb != 0 {
			return pieceFromIndex(i), true
		}
	}
	return NoPiece, false
}

// Place puts piece on s, replacing any previous occupant.
func (p *Position) Place(s Square, piece Piece) {
	p.Remove(s)
	if !piece.IsNone() {
		p.boards[piece.index()] |= SquareBB(s)
	}
}

// Remove clears s and returns the piece that stood there (NoPiece if none).
func (p *Position) Remove(s Square) Piece {
	bb := SquareBB(s)
	for i := range p.boards {
		if p.boards[i]&bb != 0 {
			p.boards[i] &^= bb
			return pieceFromIndex(i)
		}
	}
	return NoPiece
}

// move relocates piece from one square to another; both are known.
func (p *Position) move(piece Piece, from, to Square) {
	p.boards[piece.index()] ^= SquareBB(from) | SquareBB(to)
}

// Copy returns a deep copy of the position.
func (p *Position) Copy() *Position {
	c := *p
	return &c
}

// Bitboard returns the occupancy bitboard of piece.
func (p *Position) Bitboard(piece Piece) Bitboard {
	return p.boards[piece.index()]
}

// AllOf returns a lazy iterator over the squares holding piece.
func (p *Position) AllOf(piece Piece) SquareIter {
	return p.boards[piece.index()].Squares()
}

// Occupied returns every square occupied by colour c.
func (p *Position) Occupied(c Colour) Bitboard {
	var bb Bitboard
	base := int(c) * 6
	for i := base; i < base+6; i++ {
		bb |= p.boards[i]
	}
	return bb
}

// AllOccupied returns every occupied square.
func (p *Position) AllOccupied() Bitboard {
	var bb Bitboard
	for _, b := range p.boards {
		bb |= b
	}
	return bb
}

// KingSquare returns the square of colour c's king, or NoSquare if absent.
func (p *Position) KingSquare(c Colour) Square {
	return p.boards[NewPiece(c, King).index()].Lowest()
}

// Ply returns the number of half-moves played since move 1 with White to move.
func (p *Position) Ply() int {
	return 2*(p.FullmoveNumber-1) + int(p.ToMove)
}

// PositionKey is the identity of a position for repetition detection and
// equality: board, side to move and castling rights. Clocks and the
// en-passant target are ignored.
type PositionKey struct {
	Boards   [NumPieces]Bitboard
	ToMove   Colour
	Castling CastlingRights
}

// Key returns the position's repetition identity.
func (p *Position) Key() PositionKey {
	return PositionKey{Boards: p.boards, ToMove: p.ToMove, Castling: p.Castling}
}

// Equal reports whether two positions share board, side to move and castling rights.
func (p *Position) Equal(other *Position) bool {
	return p.Key() == other.Key()
}

// MoveKey identifies everything the legal-move set depends on: the
// repetition identity plus the en-passant target.
type MoveKey struct {
	PositionKey
	EnPassant Square
}

// MoveKey returns the key under which legal moves of the position may be memoised.
func (p *Position) MoveKey() MoveKey {
	return MoveKey{PositionKey: p.Key(), EnPassant: p.EnPassant}
}
