package chess

import "math/bits"

// Constants for board dimensions.
const (
	BoardSize  = 8
	NumSquares = BoardSize * BoardSize
)

// Square is a board coordinate encoded as rank*8+file, a1 = 0, h8 = 63.
type Square int8

// NoSquare marks an absent square (e.g. no en-passant target).
const NoSquare Square = -1

// Named squares used by castling and tests.
const (
	A1 Square = iota
	B1
	C1
	D1
	E1
	F1
	G1
	H1
)

// Squares on the eighth rank.
const (
	A8 Square = iota + 56
	B8
	C8
	D8
	E8
	F8
	G8
	H8
)

// IsValidCoordinate reports whether (rank, file) lies on the board.
func IsValidCoordinate(rank, file int) bool {
	return rank >= 0 && rank < BoardSize && file >= 0 && file < BoardSize
}

// MakeSquare builds the square at (rank, file); NoSquare if off the board.
func MakeSquare(rank, file int) Square {
	if !IsValidCoordinate(rank, file) {
		return NoSquare
	}
	return Square(rank*BoardSize + file)
}

// Rank returns the rank index 0-7.
func (s Square) Rank() int {
	return int(s) / BoardSize
}

// File returns the file index 0-7.
func (s Square) File() int {
	return int(s) % BoardSize
}

// Valid reports whether s is on the board.
func (s Square) Valid() bool {
	return s >= 0 && s < NumSquares
}

// Offset returns the square dr ranks and df files away, or NoSquare.
func (s Square) Offset(dr, df int) Square {
	return MakeSquare(s.Rank()+dr, s.File()+df)
}

// FileLetter returns 'a'..'h'.
func (s Square) FileLetter() byte {
	return byte('a' + s.File())
}

// RankDigit returns '1'..'8'.
func (s Square) RankDigit() byte {
	return byte('1' + s.Rank())
}

// String returns algebraic coordinates such as "e4".
func (s Square) String() string {
	if !s.Valid() {
		return "-"
	}
	return string([]byte{s.FileLetter(), s.RankDigit()})
}

// ParseSquare parses algebraic coordinates such as "e4".
func ParseSquare(text string) (Square, bool) {
	if len(text) != 2 {
		return NoSquare, false
	}
	file := int(text[0]) - 'a'
	rank := int(text[1]) - '1'
	if !IsValidCoordinate(rank, file) {
		return NoSquare, false
	}
	return MakeSquare(rank, file), true
}

// Bitboard encodes square occupancy for one piece category, bit i = square i.
type Bitboard uint64

// SquareBB returns the bitboard with only s set.
func SquareBB(s Square) Bitboard {
	return Bitboard(1) << uint(s)
}

// Has reports whether s is set.
func (b Bitboard) Has(s Square) bool {
	return b&SquareBB(s) != 0
}

// With returns b with s set.
func (b Bitboard) With(s Square) Bitboard {
	return b | SquareBB(s)
}

// Without returns b with s cleared.
func (b Bitboard) Without(s Square) Bitboard {
	return b &^ SquareBB(s)
}

// Count returns the number of set squares.
func (b Bitboard) Count() int {
	return bits.OnesCount64(uint64(b))
}

// Lowest returns the lowest set square, or NoSquare if empty.
func (b Bitboard) Lowest() Square {
	if b == 0 {
		return NoSquare
	}
	return Square(bits.TrailingZeros64(uint64(b)))
}

// Squares returns a lazy iterator over the set squares in ascending order.
// The iterator is a value: copying it, or calling Squares again, restarts it.
func (b Bitboard) Squares() SquareIter {
	return SquareIter{rest: b}
}

// SquareIter walks a bitboard by repeatedly taking and clearing the lowest set bit.
type SquareIter struct {
	rest Bitboard
}

// Next returns the next square and true, or NoSquare and false when exhausted.
func (it *SquareIter) Next() (Square, bool) {
	if it.rest == 0 {
		return NoSquare, false
	}
	sq := it.rest.Lowest()
	it.rest &= it.rest - 1
	return sq, true
}

// Collect drains the iterator into a slice.
func (it SquareIter) Collect() []Square {
	out := make([]Square, 0, it.rest.Count())
	for sq, ok := it.Next(); ok; sq, ok = it.Next() {
		out = append(out, sq)
	}
	return out
}

// FileMask returns the bitboard of every square on file f.
func FileMask(f int) Bitboard {
	return Bitboard(0x0101010101010101) << uint(f)
}
