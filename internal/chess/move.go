package chess

// MoveKind discriminates the closed set of move variants.
type MoveKind uint8

const (
	KindRegular MoveKind = iota
	KindCastle
	KindEnPassant
	KindPromotion
)

// String returns the name of the move kind.
func (k MoveKind) String() string {
	switch k {
	case KindCastle:
		return "Castle"
	case KindEnPassant:
		return "EnPassant"
	case KindPromotion:
		return "Promotion"
	}
	return "Regular"
}

// Move is one of RegularMove, Castle, EnPassant or Promotion. The set is
// closed: the unexported methods keep other packages from adding variants,
// and code switching on Kind() covers every case.
//
// Every variant is an immutable comparable value, so moves can be compared
// with == and used as map keys.
type Move interface {
	Kind() MoveKind
	Piece() Piece
	From() Square
	To() Square
	Player() Colour
	// String returns the move without disambiguation, e.g. "Nf3", "exd6", "O-O".
	String() string
	// UCI returns coordinate notation, e.g. "e2e4", "e7e8q", "e1g1".
	UCI() string

	apply(p *Position) Undo
	unapply(p *Position, u Undo)
}

// RegularMove relocates one piece, capturing whatever stands on the destination.
type RegularMove struct {
	piece    Piece
	from, to Square
}

// NewRegularMove creates a regular move of piece from one square to another.
func NewRegularMove(piece Piece, from, to Square) RegularMove {
	return RegularMove{piece: piece, from: from, to: to}
}

func (m RegularMove) Kind() MoveKind { return KindRegular }
func (m RegularMove) Piece() Piece { return m.piece }
func (m RegularMove) From() Square { return m.from }
func (m RegularMove) To() Square { return m.to }
func (m RegularMove) Player() Colour { return m.piece.Colour }

func (m RegularMove) String() string {
	if m.piece.Type == Pawn {
		return m.to.String()
	}
	return string(m.piece.Type.Letter()) + m.to.String()
}

func (m RegularMove) UCI() string {
	return m.from.String() + m.to.String()
}

// IsDoublePush reports whether the move is a two-square pawn advance.
func (m RegularMove) IsDoublePush() bool {
	return m.piece.Type == Pawn && abs(m.to.Rank()-m.from.Rank()) == 2
}

// Castle moves the king two squares towards a rook and the rook over it.
type Castle struct {
	king             Piece
	from, to         Square
	rook             Piece
	rookFrom, rookTo Square
}

// NewCastle creates the castling move of colour c on the given side.
func NewCastle(c Colour, kingside bool) Castle {
	rank := c.HomeRank()
	m := Castle{
		king: NewPiece(c, King),
		from: MakeSquare(rank, 4),
		rook: NewPiece(c, Rook),
	}
	if kingside {
		m.to, m.rookFrom, m.rookTo = MakeSquare(rank, 6), MakeSquare(rank, 7), MakeSquare(rank, 5)
	} else {
		m.to, m.rookFrom, m.rookTo = MakeSquare(rank, 2), MakeSquare(rank, 0), MakeSquare(rank, 3)
	}
	return m
}

func (m Castle) Kind() MoveKind { return KindCastle }
func (m Castle) Piece() Piece { return m.king }
func (m Castle) From() Square { return m.from }
func (m Castle) To() Square { return m.to }
func (m Castle) Player() Colour { return m.king.Colour }
func (m Castle) Rook() Piece { return m.rook }
func (m Castle) RookFrom() Square { return m.rookFrom }
func (m Castle) RookTo() Square { return m.rookTo }

// IsKingside reports whether this is the short castle.
func (m Castle) IsKingside() bool {
	return m.to.File() == 6
}

func (m Castle) String() string {
	if m.IsKingside() {
		return "O-O"
	}
	return "O-O-O"
}

func (m Castle) UCI() string {
	return m.from.String() + m.to.String()
}

// EnPassant captures a pawn that has just double pushed past the capturer.
type EnPassant struct {
	pawn           Piece
	from, to       Square
	capturedPawn   Piece
	capturedSquare Square
}

// NewEnPassant creates an en-passant capture by pawn from one square to the
// skipped square to; the captured pawn stands beside from, on to's file.
func NewEnPassant(pawn Piece, from, to Square) EnPassant {
	return EnPassant{
		pawn:           pawn,
		from:           from,
		to:             to,
		capturedPawn:   NewPiece(pawn.Colour.Opposite(), Pawn),
		capturedSquare: MakeSquare(from.Rank(), to.File()),
	}
}

func (m EnPassant) Kind() MoveKind { return KindEnPassant }
func (m EnPassant) Piece() Piece { return m.pawn }
func (m EnPassant) From() Square { return m.from }
func (m EnPassant) To() Square { return m.to }
func (m EnPassant) Player() Colour { return m.pawn.Colour }
func (m EnPassant) CapturedPawn() Piece { return m.capturedPawn }
func (m EnPassant) CapturedSquare() Square { return m.capturedSquare }

func (m EnPassant) String() string {
	return string(m.from.FileLetter()) + "x" + m.to.String()
}

func (m EnPassant) UCI() string {
	return m.from.String() + m.to.String()
}

// Promotion replaces a pawn reaching the last rank with a new piece.
type Promotion struct {
	newPiece, oldPiece Piece
	from, to           Square
}

// NewPromotion creates the promotion of colour c's pawn to piece type pt.
func NewPromotion(c Colour, pt PieceType, from, to Square) Promotion {
	return Promotion{
		newPiece: NewPiece(c, pt),
		oldPiece: NewPiece(c, Pawn),
		from:     from,
		to:       to,
	}
}

func (m Promotion) Kind() MoveKind { return KindPromotion }
func (m Promotion) Piece() Piece { return m.oldPiece }
func (m Promotion) NewPiece() Piece { return m.newPiece }
func (m Promotion) From() Square { return m.from }
func (m Promotion) To() Square { return m.to }
func (m Promotion) Player() Colour { return m.oldPiece.Colour }

func (m Promotion) String() string {
	s := m.to.String() + "=" + string(m.newPiece.Type.Letter())
	if m.from.File() != m.to.File() {
		return string(m.from.FileLetter()) + "x" + s
	}
	return s
}

func (m Promotion) UCI() string {
	return m.from.String() + m.to.String() + string(m.newPiece.Type.Letter()+('a'-'A'))
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
