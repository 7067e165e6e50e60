package output

import (
	"strings"

	"github.com/lgbarn/chessengine-go/internal/chess"
	"github.com/lgbarn/chessengine-go/internal/engine"
)

// JSONGame represents a game in JSON format.
type JSONGame struct {
	Tags       Tags       `json:"tags"`
	Moves      []JSONMove `json:"moves,omitempty"`
	Result     string     `json:"result"`
	PlyCount   int        `json:"plyCount"`
	InitialFEN string     `json:"initialFEN,omitempty"`
	FinalFEN   string     `json:"finalFEN"`
}

// JSONMove represents a move in JSON format.
type JSONMove struct {
	MoveNumber int    `json:"moveNumber,omitempty"`
	Color      string `json:"color"` // "white" or "black"
	SAN        string `json:"san"`
	UCI        string `json:"uci"`
	From       string `json:"from"`
	To         string `json:"to"`
	Piece      string `json:"piece"`
	Capture    bool   `json:"capture,omitempty"`
	Check      bool   `json:"check,omitempty"`
	Promotion  string `json:"promotion,omitempty"`
	FEN        string `json:"fen,omitempty"`
}

// JSONOutput holds multiple games for array output.
type JSONOutput struct {
	Games []*JSONGame `json:"games"`
}

// GameToJSON converts a game to JSON form. With withFEN set each move also
// carries the FEN of the position it led to.
func GameToJSON(game *engine.Game, tags Tags, withFEN bool) *JSONGame {
	history := game.History()
	jg := &JSONGame{
		Tags:     gameTags(tags, game),
		Moves:    make([]JSONMove, 0, len(history)),
		Result:   game.Result(),
		PlyCount: len(history),
		FinalFEN: game.FEN(),
	}
	if game.StartFEN() != engine.InitialFEN {
		jg.InitialFEN = game.StartFEN()
	}

	var replay *engine.Game
	if withFEN {
		// The start FEN already parsed once, so replaying it cannot fail.
		replay, _ = engine.NewGameFromFEN(game.StartFEN(), engine.WithGenerator(game.Generator()))
	}
	for _, rec := range history {
		jm := convertMove(rec)
		if replay != nil {
			if _, err := replay.MakeMove(rec.Move); err == nil {
				jm.FEN = replay.FEN()
			}
		}
		jg.Moves = append(jg.Moves, jm)
	}
	return jg
}

func convertMove(rec *engine.MoveRecord) JSONMove {
	m := rec.Move
	jm := JSONMove{
		Color:   colorName(m.Player()),
		SAN:     rec.SAN(),
		UCI:     rec.UCI(),
		From:    m.From().String(),
		To:      m.To().String(),
		Piece:   pieceTypeName(m.Piece().Type),
		Capture: rec.IsCapture(),
		Check:   rec.IsCheck(),
	}
	if m.Player() == chess.White {
		jm.MoveNumber = rec.Before.FullmoveNumber
	}
	if promo, ok := m.(chess.Promotion); ok {
		jm.Promotion = pieceTypeName(promo.NewPiece().Type)
	}
	return jm
}

func colorName(c chess.Colour) string {
	return strings.ToLower(c.String())
}

func pieceTypeName(pt chess.PieceType) string {
	return strings.ToLower(pt.String())
}
