package output

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/lgbarn/chessengine-go/internal/engine"
	"github.com/lgbarn/chessengine-go/internal/errors"
)

// Format names an output format for finished games.
type Format string

const (
	FormatPGN  Format = "pgn"
	FormatJSON Format = "json"
)

// GameWriter is the interface for writing games to output.
type GameWriter interface {
	// WriteGame writes a single game to the output.
	WriteGame(game *engine.Game, tags Tags) error

	// Flush flushes any buffered data to the underlying writer.
	Flush() error

	// Close closes the writer. For batch writers (like JSON), this also
	// writes any pending output.
	Close() error
}

// NewGameWriter returns a writer for the named format.
func NewGameWriter(w io.Writer, format Format, maxLineLength int) (GameWriter, error) {
	switch format {
	case FormatPGN, "":
		return NewPGNWriter(w, maxLineLength), nil
	case FormatJSON:
		return NewJSONWriter(w, true), nil
	}
	return nil, fmt.Errorf("output format %q: %w", format, errors.ErrInvalidConfig)
}

// PGNWriter writes games in PGN format.
type PGNWriter struct {
	w             io.Writer
	maxLineLength int
}

// NewPGNWriter creates a new PGN writer.
func NewPGNWriter(w io.Writer, maxLineLength int) *PGNWriter {
	return &PGNWriter{w: w, maxLineLength: maxLineLength}
}

// WriteGame writes a game in PGN format.
func (pw *PGNWriter) WriteGame(game *engine.Game, tags Tags) error {
	return WritePGN(pw.w, game, tags, pw.maxLineLength)
}

// Flush is a no-op: PGN is written immediately.
func (pw *PGNWriter) Flush() error {
	return nil
}

// Close closes the PGN writer.
func (pw *PGNWriter) Close() error {
	return nil
}

// JSONWriter writes games in JSON format. It buffers games and writes them
// as a JSON array on Close or Flush.
type JSONWriter struct {
	w       io.Writer
	withFEN bool
	games   []*JSONGame
}

// NewJSONWriter creates a new JSON writer. withFEN adds the FEN after each move.
func NewJSONWriter(w io.Writer, withFEN bool) *JSONWriter {
	return &JSONWriter{w: w, withFEN: withFEN}
}

// WriteGame converts a game and buffers it. The game may change afterwards
// without affecting the output.
func (jw *JSONWriter) WriteGame(game *engine.Game, tags Tags) error {
	jw.games = append(jw.games, GameToJSON(game, tags, jw.withFEN))
	return nil
}

// Flush writes all buffered games as a JSON array.
func (jw *JSONWriter) Flush() error {
	if len(jw.games) == 0 {
		return nil
	}
	enc := json.NewEncoder(jw.w)
	enc.SetIndent("", "  ")
	err := enc.Encode(&JSONOutput{Games: jw.games})
	jw.games = jw.games[:0]
	return err
}

// Close flushes and closes the JSON writer.
func (jw *JSONWriter) Close() error {
	return jw.Flush()
}
