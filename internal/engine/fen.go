package engine

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/lgbarn/chessengine-go/internal/chess"
	"github.com/lgbarn/chessengine-go/internal/errors"
)

// InitialFEN is the FEN string for the standard starting position.
const InitialFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// ParseFEN builds a position from FEN text. The first four fields are
// required; missing clocks default to 0 and 1. Every failure is a
// *errors.ParseError wrapping errors.ErrInvalidFEN.
func ParseFEN(fen string) (*chess.Position, error) {
	parts := strings.Fields(fen)
	if len(parts) < 4 || len(parts) > 6 {
		return nil, fenError(fen, "", fmt.Sprintf("want 4 to 6 fields, got %d", len(parts)))
	}

	p := chess.NewPosition()
	if err := parsePiecePlacement(p, parts[0]); err != nil {
		return nil, err
	}
	if err := parseSideToMove(p, parts[1]); err != nil {
		return nil, err
	}
	if err := parseCastlingRights(p, parts[2]); err != nil {
		return nil, err
	}
	if err := parseEnPassant(p, parts[3]); err != nil {
		return nil, err
	}
	if err := parseClocks(p, parts[4:]); err != nil {
		return nil, err
	}
	return p, nil
}

// MustParseFEN is like ParseFEN but panics on malformed input. It is meant
// for constant positions.
func MustParseFEN(fen string) *chess.Position {
	p, err := ParseFEN(fen)
	if err != nil {
		panic(err)
	}
	return p
}

func fenError(text, field, reason string) *errors.ParseError {
	return &errors.ParseError{Err: errors.ErrInvalidFEN, Text: text, Field: field, Reason: reason}
}

// parsePiecePlacement parses the board field, rank 8 first.
func parsePiecePlacement(p *chess.Position, placement string) error {
	ranks := strings.Split(placement, "/")
	if len(ranks) != chess.BoardSize {
		return fenError(placement, "board", fmt.Sprintf("want 8 ranks, got %d", len(ranks)))
	}

	for i, row := range ranks {
		rank := chess.BoardSize - 1 - i
		file := 0
		for j := 0; j < len(row); j++ {
			c := row[j]
			if c >= '1' && c <= '8' {
				file += int(c - '0')
				continue
			}
			piece := chess.PieceFromFENLetter(c)
			if piece.IsNone() {
				return fenError(placement, "board", fmt.Sprintf("invalid piece character %q", c))
			}
			if file >= chess.BoardSize {
				return fenError(placement, "board", fmt.Sprintf("rank %d overflows", rank+1))
			}
			p.Place(chess.MakeSquare(rank, file), piece)
			file++
		}
		if file != chess.BoardSize {
			return fenError(placement, "board", fmt.Sprintf("rank %d has %d squares", rank+1, file))
		}
	}

	for _, c := range []chess.Colour{chess.White, chess.Black} {
		if n := p.Bitboard(chess.NewPiece(c, chess.King)).Count(); n != 1 {
			return fenError(placement, "board", fmt.Sprintf("%s has %d kings", c, n))
		}
	}
	return nil
}

// parseSideToMove parses the active colour field.
func parseSideToMove(p *chess.Position, field string) error {
	switch field {
	case "w":
		p.ToMove = chess.White
	case "b":
		p.ToMove = chess.Black
	default:
		return fenError(field, "side to move", "want w or b")
	}
	if IsInCheck(p, p.ToMove.Opposite()) {
		return fenError(field, "side to move", "side not to move is in check")
	}
	return nil
}

// parseCastlingRights parses the castling availability field.
func parseCastlingRights(p *chess.Position, field string) error {
	p.Castling = chess.NoCastling
	if field == "-" {
		return nil
	}
	for i := 0; i < len(field); i++ {
		var right chess.CastlingRights
		switch field[i] {
		case 'K':
			right = chess.WhiteKingside
		case 'Q':
			right = chess.WhiteQueenside
		case 'k':
			right = chess.BlackKingside
		case 'q':
			right = chess.BlackQueenside
		default:
			return fenError(field, "castling", fmt.Sprintf("invalid flag %q", field[i]))
		}
		if p.Castling.Has(right) {
			return fenError(field, "castling", fmt.Sprintf("repeated flag %q", field[i]))
		}
		p.Castling |= right
	}
	return nil
}

// parseEnPassant parses the en-passant target. A target must be the square a
// pawn of the side not to move just skipped: on the third or sixth rank,
// empty, with that pawn standing directly beyond it and its origin empty.
func parseEnPassant(p *chess.Position, field string) error {
	p.EnPassant = chess.NoSquare
	if field == "-" {
		return nil
	}
	sq, ok := chess.ParseSquare(field)
	if !ok {
		return fenError(field, "en passant", "not a square")
	}
	mover := p.ToMove.Opposite()
	dir := mover.PawnDirection()
	if sq.Rank() != mover.PawnStartRank()+dir {
		return fenError(field, "en passant", "wrong rank for side to move")
	}
	occupied := p.AllOccupied()
	landing := sq.Offset(dir, 0)
	origin := sq.Offset(-dir, 0)
	if occupied.Has(sq) || occupied.Has(origin) || !p.Bitboard(chess.NewPiece(mover, chess.Pawn)).Has(landing) {
		return fenError(field, "en passant", "no pawn double step to match")
	}
	p.EnPassant = sq
	return nil
}

// parseClocks parses the optional halfmove clock and fullmove number fields.
func parseClocks(p *chess.Position, fields []string) error {
	if len(fields) >= 1 {
		n, err := strconv.Atoi(fields[0])
		if err != nil || n < 0 {
			return fenError(fields[0], "halfmove clock", "want a non-negative integer")
		}
		p.HalfmoveClock = n
	}
	if len(fields) >= 2 {
		n, err := strconv.Atoi(fields[1])
		if err != nil || n < 1 {
			return fenError(fields[1], "fullmove number", "want a positive integer")
		}
		p.FullmoveNumber = n
	}
	return nil
}

// FEN returns the FEN text of p. The en-passant field is written only when
// an en-passant capture is actually legal.
func FEN(p *chess.Position) string {
	return formatFEN(p, HasLegalEnPassant(p))
}

// FormatFEN returns the FEN text of p with the en-passant target written as
// stored, legal capture or not.
func FormatFEN(p *chess.Position) string {
	return formatFEN(p, p.EnPassant != chess.NoSquare)
}

// HasLegalEnPassant reports whether the side to move has a legal en-passant capture.
func HasLegalEnPassant(p *chess.Position) bool {
	if p.EnPassant == chess.NoSquare {
		return false
	}
	for _, m := range LegalMoves(p) {
		if m.Kind() == chess.KindEnPassant {
			return true
		}
	}
	return false
}

func formatFEN(p *chess.Position, withEnPassant bool) string {
	var sb strings.Builder

	writePiecePlacement(&sb, p)
	sb.WriteByte(' ')
	if p.ToMove == chess.White {
		sb.WriteByte('w')
	} else {
		sb.WriteByte('b')
	}
	sb.WriteByte(' ')
	sb.WriteString(p.Castling.String())
	sb.WriteByte(' ')
	if withEnPassant {
		sb.WriteString(p.EnPassant.String())
	} else {
		sb.WriteByte('-')
	}
	fmt.Fprintf(&sb, " %d %d", p.HalfmoveClock, p.FullmoveNumber)

	return sb.String()
}

// writePiecePlacement writes the board field to the builder.
func writePiecePlacement(sb *strings.Builder, p *chess.Position) {
	for rank := chess.BoardSize - 1; rank >= 0; rank-- {
		empty := 0
		for file := 0; file < chess.BoardSize; file++ {
			piece, ok := p.PieceAt(chess.MakeSquare(rank, file))
			if !ok {
				empty++
				continue
			}
			if empty > 0 {
				sb.WriteByte(byte('0' + empty))
				empty = 0
			}
			sb.WriteByte(piece.FENLetter())
		}
		if empty > 0 {
			sb.WriteByte(byte('0' + empty))
		}
		if rank > 0 {
			sb.WriteByte('/')
		}
	}
}
