// Package output writes played games as PGN or JSON.
package output

import (
	"fmt"
	"io"

	"github.com/lgbarn/chessengine-go/internal/chess"
	"github.com/lgbarn/chessengine-go/internal/engine"
)

// DefaultLineLength is the PGN movetext line limit used when none is given.
const DefaultLineLength = 80

// LineWriter writes space-separated tokens, wrapping before a token would
// overflow the line.
type LineWriter struct {
	w             io.Writer
	lineLength    int
	maxLineLength int
	needsSpace    bool
	err           error
}

// NewLineWriter creates a line writer. A non-positive limit means DefaultLineLength.
func NewLineWriter(w io.Writer, maxLineLength int) *LineWriter {
	if maxLineLength <= 0 {
		maxLineLength = DefaultLineLength
	}
	return &LineWriter{
		w:             w,
		maxLineLength: maxLineLength,
	}
}

// Write writes a token, preceded by a space or a line break as needed.
func (o *LineWriter) Write(s string) {
	if o.needsSpace && len(s) > 0 {
		if o.lineLength+1+len(s) > o.maxLineLength {
			o.print("\n")
			o.lineLength = 0
		} else {
			o.print(" ")
			o.lineLength++
		}
	}
	o.print(s)
	o.lineLength += len(s)
	o.needsSpace = true
}

// NewLine ends the current line.
func (o *LineWriter) NewLine() {
	o.print("\n")
	o.lineLength = 0
	o.needsSpace = false
}

// Err returns the first write error.
func (o *LineWriter) Err() error {
	return o.err
}

func (o *LineWriter) print(s string) {
	if o.err == nil {
		_, o.err = io.WriteString(o.w, s)
	}
}

// WritePGN writes game with its tags and movetext, wrapped at maxLineLength.
func WritePGN(w io.Writer, game *engine.Game, tags Tags, maxLineLength int) error {
	all := gameTags(tags, game)
	for _, name := range all.ordered() {
		if _, err := fmt.Fprintf(w, "[%s \"%s\"]\n", name, escapeTagValue(all[name])); err != nil {
			return err
		}
	}
	if _, err := fmt.Fprintln(w); err != nil {
		return err
	}

	ow := NewLineWriter(w, maxLineLength)
	for i, rec := range game.History() {
		switch {
		case rec.Before.ToMove == chess.White:
			ow.Write(fmt.Sprintf("%d.", rec.Before.FullmoveNumber))
		case i == 0:
			ow.Write(fmt.Sprintf("%d...", rec.Before.FullmoveNumber))
		}
		ow.Write(rec.SAN())
	}
	ow.Write(game.Result())
	ow.NewLine()
	ow.NewLine()
	return ow.Err()
}
