// Package chess provides core chess types: colours, pieces, squares,
// bitboards, the position model and the move variants that mutate it.
package chess

// Colour represents the colour of a piece or player.
type Colour uint8

const (
	White Colour = iota
	Black
)

// NumColours is the number of colours.
const NumColours = 2

// String returns the string representation of a colour.
func (c Colour) String() string {
	if c == White {
		return "White"
	}
	return "Black"
}

// Opposite returns the opposite colour.
func (c Colour) Opposite() Colour {
	return c ^ 1
}

// HomeRank returns the rank index (0-7) of the colour's back rank.
func (c Colour) HomeRank() int {
	if c == White {
		return 0
	}
	return 7
}

// PawnStartRank returns the rank index from which the colour's pawns may double push.
func (c Colour) PawnStartRank() int {
	if c == White {
		return 1
	}
	return 6
}

// PawnDirection returns +1 for White, -1 for Black (rank delta of a pawn advance).
func (c Colour) PawnDirection() int {
	if c == White {
		return 1
	}
	return -1
}

// PromotionRank returns the rank index on which the colour's pawns promote.
func (c Colour) PromotionRank() int {
	return c.Opposite().HomeRank()
}

// PieceType represents a chess piece type without colour.
type PieceType uint8

const (
	NoPieceType PieceType = iota
	Pawn
	Knight
	Bishop
	Rook
	Queen
	King
)

// PieceTypes lists every real piece type in ascending value order.
var PieceTypes = [...]PieceType{Pawn, Knight, Bishop, Rook, Queen, King}

// PromotionTypes lists the piece types a pawn may promote to.
var PromotionTypes = [...]PieceType{Queen, Rook, Bishop, Knight}

// String returns the string representation of a piece type.
func (pt PieceType) String() string {
	names := []string{"None", "Pawn", "Knight", "Bishop", "Rook", "Queen", "King"}
	if int(pt) < len(names) {
		return names[pt]
	}
	return "Unknown"
}

// Letter returns the single uppercase letter for the piece type.
func (pt PieceType) Letter() byte {
	letters := []byte{' ', 'P', 'N', 'B', 'R', 'Q', 'K'}
	if int(pt) < len(letters) {
		return letters[pt]
	}
	return '?'
}

// Value returns the material value of the piece type in pawns.
// The king carries a large sentinel value since it is never captured.
func (pt PieceType) Value() float64 {
	switch pt {
	case Pawn:
		return 1
	case Knight, Bishop:
		return 3
	case Rook:
		return 5
	case Queen:
		return 9
	case King:
		return 200
	}
	return 0
}

// PieceTypeFromLetter converts a letter (either case) to a piece type.
func PieceTypeFromLetter(c byte) PieceType {
	switch c {
	case 'P', 'p':
		return Pawn
	case 'N', 'n':
		return Knight
	case 'B', 'b':
		return Bishop
	case 'R', 'r':
		return Rook
	case 'Q', 'q':
		return Queen
	case 'K', 'k':
		return King
	}
	return NoPieceType
}

// Piece is an owned piece: a (colour, type) value.
type Piece struct {
	Colour Colour
	Type   PieceType
}

// NoPiece is the zero piece, used for empty squares.
var NoPiece = Piece{}

// NumPieces is the number of distinct owned pieces, one bitboard each.
const NumPieces = 12

// NewPiece creates a piece of the given colour and type.
func NewPiece(c Colour, pt PieceType) Piece {
	return Piece{Colour: c, Type: pt}
}

// IsNone reports whether p is the empty piece.
func (p Piece) IsNone() bool {
	return p.Type == NoPieceType
}

// index returns the bitboard slot of the piece: colour major, type minor.
func (p Piece) index() int {
	return int(p.Colour)*6 + int(p.Type) - 1
}

// pieceFromIndex is the inverse of Piece.index.
func pieceFromIndex(i int) Piece {
	return Piece{Colour: Colour(i / 6), Type: PieceType(i%6 + 1)}
}

// FENLetter returns the FEN letter: uppercase for White, lowercase for Black.
func (p Piece) FENLetter() byte {
	letter := p.Type.Letter()
	if p.Colour == Black {
		letter += 'a' - 'A'
	}
	return letter
}

// String returns e.g. "White Knight".
func (p Piece) String() string {
	if p.IsNone() {
		return "None"
	}
	return p.Colour.String() + " " + p.Type.String()
}

// PieceFromFENLetter converts a FEN letter to a piece; NoPiece if invalid.
func PieceFromFENLetter(c byte) Piece {
	pt := PieceTypeFromLetter(c)
	if pt == NoPieceType {
		return NoPiece
	}
	colour := White
	if c >= 'a' && c <= 'z' {
		colour = Black
	}
	return NewPiece(colour, pt)
}

// GameState is the outcome status of a game.
type GameState int

const (
	Unfinished GameState = iota
	WhiteWon
	BlackWon
	Draw
)

// String returns the string representation of a game state.
func (s GameState) String() string {
	switch s {
	case WhiteWon:
		return "WhiteWon"
	case BlackWon:
		return "BlackWon"
	case Draw:
		return "Draw"
	}
	return "Unfinished"
}

// Result returns the PGN result token for the state.
func (s GameState) Result() string {
	switch s {
	case WhiteWon:
		return "1-0"
	case BlackWon:
		return "0-1"
	case Draw:
		return "1/2-1/2"
	}
	return "*"
}

// WinFor returns the state in which colour c has won.
func WinFor(c Colour) GameState {
	if c == White {
		return WhiteWon
	}
	return BlackWon
}
