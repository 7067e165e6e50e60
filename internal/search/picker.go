package search

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"math/rand"
	"strings"
	"sync"

	"github.com/lgbarn/chessengine-go/internal/chess"
	"github.com/lgbarn/chessengine-go/internal/engine"
	"github.com/lgbarn/chessengine-go/internal/errors"
)

// MovePicker selects a move for the side to move. Searchers, random play
// and human input all satisfy it, so callers can swap them freely.
type MovePicker interface {
	PickMove(ctx context.Context, p *chess.Position) (chess.Move, error)
}

// PickerFunc adapts a function to the MovePicker interface.
type PickerFunc func(ctx context.Context, p *chess.Position) (chess.Move, error)

// PickMove calls f(ctx, p).
func (f PickerFunc) PickMove(ctx context.Context, p *chess.Position) (chess.Move, error) {
	return f(ctx, p)
}

var (
	_ MovePicker = (*Searcher)(nil)
	_ MovePicker = (*RandomPicker)(nil)
	_ MovePicker = (*CapturePicker)(nil)
	_ MovePicker = (*ReaderPicker)(nil)
)

// RandomPicker plays a uniformly random legal move.
type RandomPicker struct {
	gen *engine.Generator
	mu  sync.Mutex
	rng *rand.Rand
}

// NewRandomPicker creates a random picker with a fixed seed. gen may be nil.
func NewRandomPicker(seed int64, gen *engine.Generator) *RandomPicker {
	return &RandomPicker{gen: gen, rng: rand.New(rand.NewSource(seed))}
}

// PickMove implements MovePicker.
func (r *RandomPicker) PickMove(ctx context.Context, p *chess.Position) (chess.Move, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	moves := r.gen.LegalMoves(p)
	if len(moves) == 0 {
		return nil, errors.Wrap(errors.ErrSearchFailed, "no legal moves")
	}
	// Sorted so a seed always reproduces the same choices.
	sortByUCI(moves)

	r.mu.Lock()
	defer r.mu.Unlock()
	return moves[r.rng.Intn(len(moves))], nil
}

// CapturePicker delegates to Capture when any legal move captures, and to
// Quiet otherwise. A typical use is a deeper search for tactical positions.
type CapturePicker struct {
	Capture MovePicker
	Quiet   MovePicker
	gen     *engine.Generator
}

// NewCapturePicker creates a capture-dispatching picker. gen may be nil.
func NewCapturePicker(capture, quiet MovePicker, gen *engine.Generator) *CapturePicker {
	return &CapturePicker{Capture: capture, Quiet: quiet, gen: gen}
}

// PickMove implements MovePicker.
func (c *CapturePicker) PickMove(ctx context.Context, p *chess.Position) (chess.Move, error) {
	if HasCapture(p, c.gen.LegalMoves(p)) {
		return c.Capture.PickMove(ctx, p)
	}
	return c.Quiet.PickMove(ctx, p)
}

// HasCapture reports whether any of the legal moves in p captures.
func HasCapture(p *chess.Position, legal []chess.Move) bool {
	occupied := p.AllOccupied()
	for _, m := range legal {
		if m.Kind() == chess.KindEnPassant || occupied.Has(m.To()) {
			return true
		}
	}
	return false
}

// ReaderPicker reads moves in SAN or UCI from a reader, one per line,
// prompting on a writer and asking again after unusable input.
type ReaderPicker struct {
	in     *bufio.Scanner
	out    io.Writer
	gen    *engine.Generator
	Prompt string
}

// NewReaderPicker creates a picker reading from in and prompting on out.
func NewReaderPicker(in io.Reader, out io.Writer, gen *engine.Generator) *ReaderPicker {
	return &ReaderPicker{in: bufio.NewScanner(in), out: out, gen: gen, Prompt: "move> "}
}

// PickMove implements MovePicker. It returns io.EOF when input runs out.
func (r *ReaderPicker) PickMove(ctx context.Context, p *chess.Position) (chess.Move, error) {
	legal := r.gen.LegalMoves(p)
	for {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		fmt.Fprint(r.out, r.Prompt)
		if !r.in.Scan() {
			if err := r.in.Err(); err != nil {
				return nil, err
			}
			return nil, io.EOF
		}
		text := strings.TrimSpace(r.in.Text())
		if text == "" {
			continue
		}
		m, err := engine.ParseSAN(p, text, legal)
		if err != nil {
			if uci, uciErr := engine.ParseUCI(text, legal); uciErr == nil {
				return uci, nil
			}
			fmt.Fprintf(r.out, "%v\n", err)
			continue
		}
		return m, nil
	}
}
