package chess

// Undo is the diff needed to invert one applied move in constant time.
type Undo struct {
	Captured       Piece // piece removed from the destination (NoPiece if none)
	Castling       CastlingRights
	EnPassant      Square
	HalfmoveClock  int
	FullmoveNumber int
}

// Apply executes m on p and returns the diff that Unapply needs to invert it.
// The move must be legal (or at least pseudo-legal) in p.
func Apply(p *Position, m Move) Undo {
	return m.apply(p)
}

// Unapply inverts a move previously applied with Apply.
func Unapply(p *Position, m Move, u Undo) {
	m.unapply(p, u)
}

// saveUndo captures the fields every variant restores.
func saveUndo(p *Position) Undo {
	return Undo{
		Castling:       p.Castling,
		EnPassant:      p.EnPassant,
		HalfmoveClock:  p.HalfmoveClock,
		FullmoveNumber: p.FullmoveNumber,
	}
}

// restore rewinds the fields saved by saveUndo and gives the move back to its player.
func (u Undo) restore(p *Position, player Colour) {
	p.Castling = u.Castling
	p.EnPassant = u.EnPassant
	p.HalfmoveClock = u.HalfmoveClock
	p.FullmoveNumber = u.FullmoveNumber
	p.ToMove = player
}

// endTurn hands the move to the opponent and advances the move number after Black.
func endTurn(p *Position, player Colour) {
	if player == Black {
		p.FullmoveNumber++
	}
	p.ToMove = player.Opposite()
}

func (m RegularMove) apply(p *Position) Undo {
	u := saveUndo(p)
	u.Captured = p.Remove(m.to)
	p.move(m.piece, m.from, m.to)

	p.Castling &^= castlingRevoke[m.from] | castlingRevoke[m.to]
	p.EnPassant = NoSquare
	if m.IsDoublePush() {
		p.EnPassant = MakeSquare((m.from.Rank()+m.to.Rank())/2, m.from.File())
	}
	if m.piece.Type == Pawn || !u.Captured.IsNone() {
		p.HalfmoveClock = 0
	} else {
		p.HalfmoveClock++
	}
	endTurn(p, m.piece.Colour)
	return u
}

func (m RegularMove) unapply(p *Position, u Undo) {
	p.move(m.piece, m.to, m.from)
	if !u.Captured.IsNone() {
		p.Place(m.to, u.Captured)
	}
	u.restore(p, m.piece.Colour)
}

func (m Castle) apply(p *Position) Undo {
	u := saveUndo(p)
	p.move(m.king, m.from, m.to)
	p.move(m.rook, m.rookFrom, m.rookTo)

	p.Castling &^= Kingside(m.king.Colour) | Queenside(m.king.Colour)
	p.EnPassant = NoSquare
	p.HalfmoveClock++
	endTurn(p, m.king.Colour)
	return u
}

func (m Castle) unapply(p *Position, u Undo) {
	p.move(m.rook, m.rookTo, m.rookFrom)
	p.move(m.king, m.to, m.from)
	u.restore(p, m.king.Colour)
}

func (m EnPassant) apply(p *Position) Undo {
	u := saveUndo(p)
	u.Captured = p.Remove(m.capturedSquare)
	p.move(m.pawn, m.from, m.to)

	p.EnPassant = NoSquare
	p.HalfmoveClock = 0
	endTurn(p, m.pawn.Colour)
	return u
}

func (m EnPassant) unapply(p *Position, u Undo) {
	p.move(m.pawn, m.to, m.from)
	p.Place(m.capturedSquare, m.capturedPawn)
	u.restore(p, m.pawn.Colour)
}

func (m Promotion) apply(p *Position) Undo {
	u := saveUndo(p)
	p.Remove(m.from)
	u.Captured = p.Remove(m.to)
	p.Place(m.to, m.newPiece)

	// A capture on a rook's home corner still revokes that right.
	p.Castling &^= castlingRevoke[m.to]
	p.EnPassant = NoSquare
	p.HalfmoveClock = 0
	endTurn(p, m.oldPiece.Colour)
	return u
}

func (m Promotion) unapply(p *Position, u Undo) {
	p.Remove(m.to)
	p.Place(m.from, m.oldPiece)
	if !u.Captured.IsNone() {
		p.Place(m.to, u.Captured)
	}
	u.restore(p, m.oldPiece.Colour)
}
