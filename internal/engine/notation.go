package engine

import (
	"regexp"
	"strings"

	"github.com/lgbarn/chessengine-go/internal/chess"
	"github.com/lgbarn/chessengine-go/internal/errors"
)

// SAN returns the standard algebraic notation of legal move m in p, without
// a check suffix. File and rank qualifiers are added only when another legal
// move of the same piece type reaches the same square.
func SAN(p *chess.Position, m chess.Move, legal []chess.Move) string {
	switch m.Kind() {
	case chess.KindCastle, chess.KindEnPassant, chess.KindPromotion:
		return m.String()
	}

	capture := p.AllOccupied().Has(m.To())
	piece := m.Piece()
	if piece.Type == chess.Pawn {
		if capture {
			return string(m.From().FileLetter()) + "x" + m.To().String()
		}
		return m.To().String()
	}

	var sb strings.Builder
	sb.WriteByte(piece.Type.Letter())
	sb.WriteString(disambiguation(m, legal))
	if capture {
		sb.WriteByte('x')
	}
	sb.WriteString(m.To().String())
	return sb.String()
}

// disambiguation returns the qualifier that separates m from other legal
// moves of the same piece to the same square: the file if that is enough,
// else the rank, else both.
func disambiguation(m chess.Move, legal []chess.Move) string {
	rivals, sameFile, sameRank := 0, false, false
	for _, other := range legal {
		if other.Kind() != chess.KindRegular || other.Piece() != m.Piece() ||
			other.To() != m.To() || other.From() == m.From() {
			continue
		}
		rivals++
		sameFile = sameFile || other.From().File() == m.From().File()
		sameRank = sameRank || other.From().Rank() == m.From().Rank()
	}
	switch {
	case rivals == 0:
		return ""
	case !sameFile:
		return string(m.From().FileLetter())
	case !sameRank:
		return string(m.From().RankDigit())
	}
	return m.From().String()
}

var (
	castlePattern = regexp.MustCompile(`^(O-O(?:-O)?|0-0(?:-0)?)$`)
	sanPattern    = regexp.MustCompile(`^([NBRQK])?([a-h])?([1-8])?(x)?([a-h][1-8])(?:=?([NBRQnbrq]))?$`)
)

// ParseSAN resolves SAN text to exactly one legal move in p by filtering the
// legal move set on each component the text gives. Trailing check, mate and
// annotation marks are ignored.
func ParseSAN(p *chess.Position, text string, legal []chess.Move) (chess.Move, error) {
	token := strings.TrimRight(strings.TrimSpace(text), "+#!?")
	if token == "" {
		return nil, &errors.ParseError{Err: errors.ErrParseFailure, Text: text, Field: "SAN", Reason: "empty move"}
	}

	if match := castlePattern.FindStringSubmatch(token); match != nil {
		kingside := len(match[1]) == 3
		return resolve(text, legal, func(m chess.Move) bool {
			c, ok := m.(chess.Castle)
			return ok && c.IsKingside() == kingside
		})
	}

	match := sanPattern.FindStringSubmatch(token)
	if match == nil {
		return nil, &errors.ParseError{Err: errors.ErrParseFailure, Text: text, Field: "SAN", Reason: "unrecognised move syntax"}
	}
	pieceType := chess.Pawn
	if match[1] != "" {
		pieceType = chess.PieceTypeFromLetter(match[1][0])
	}
	dest, _ := chess.ParseSquare(match[5])
	promotion := chess.NoPieceType
	if match[6] != "" {
		promotion = chess.PieceTypeFromLetter(match[6][0])
	}
	fileFilter, rankFilter := match[2], match[3]
	wantCapture := match[4] != ""
	occupied := p.AllOccupied()

	return resolve(text, legal, func(m chess.Move) bool {
		if m.Kind() == chess.KindCastle || m.Piece().Type != pieceType || m.To() != dest {
			return false
		}
		if fileFilter != "" && m.From().FileLetter() != fileFilter[0] {
			return false
		}
		if rankFilter != "" && m.From().RankDigit() != rankFilter[0] {
			return false
		}
		if wantCapture && !occupied.Has(dest) && m.Kind() != chess.KindEnPassant {
			return false
		}
		promo, isPromotion := m.(chess.Promotion)
		if promotion == chess.NoPieceType {
			return !isPromotion
		}
		return isPromotion && promo.NewPiece().Type == promotion
	})
}

// resolve returns the single legal move accepted by keep.
func resolve(text string, legal []chess.Move, keep func(chess.Move) bool) (chess.Move, error) {
	var found chess.Move
	count := 0
	for _, m := range legal {
		if keep(m) {
			found = m
			count++
		}
	}
	switch count {
	case 0:
		return nil, errors.NewParseError(errors.ErrNoMatchingMove, text, "")
	case 1:
		return found, nil
	}
	return nil, errors.NewParseError(errors.ErrAmbiguousMove, text, "qualify with file or rank")
}

var uciPattern = regexp.MustCompile(`^[a-h][1-8][a-h][1-8][nbrq]?$`)

// ParseUCI resolves coordinate text such as "e2e4" or "e7e8q" to a legal move.
func ParseUCI(text string, legal []chess.Move) (chess.Move, error) {
	token := strings.ToLower(strings.TrimSpace(text))
	if !uciPattern.MatchString(token) {
		return nil, &errors.ParseError{Err: errors.ErrParseFailure, Text: text, Field: "UCI", Reason: "want from, to and optional promotion"}
	}
	return resolve(text, legal, func(m chess.Move) bool {
		return m.UCI() == token
	})
}
