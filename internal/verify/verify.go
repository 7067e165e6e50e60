// Package verify cross-checks the engine against dragontoothmg, an
// independent bitboard move generator. It backs the CLI's perft -verify
// mode and the engine's regression tests.
package verify

import (
	"fmt"
	"sort"

	"github.com/dylhunn/dragontoothmg"

	"github.com/lgbarn/chessengine-go/internal/chess"
	"github.com/lgbarn/chessengine-go/internal/engine"
)

// Diff lists the moves only one generator produced for a position.
type Diff struct {
	FEN string
	// Missing holds moves the reference generates and the engine does not.
	Missing []string
	// Extra holds moves the engine generates and the reference does not.
	Extra []string
}

// Empty reports whether both generators agreed.
func (d Diff) Empty() bool {
	return len(d.Missing) == 0 && len(d.Extra) == 0
}

func (d Diff) String() string {
	if d.Empty() {
		return d.FEN + ": ok"
	}
	return fmt.Sprintf("%s: missing %v, extra %v", d.FEN, d.Missing, d.Extra)
}

// ReferenceMoves returns dragontoothmg's legal moves for fen in UCI
// notation, sorted.
func ReferenceMoves(fen string) []string {
	board := dragontoothmg.ParseFen(fen)
	return uciOf(board.GenerateLegalMoves())
}

func uciOf(moves []dragontoothmg.Move) []string {
	out := make([]string, 0, len(moves))
	for i := range moves {
		out = append(out, moves[i].String())
	}
	sort.Strings(out)
	return out
}

// CompareLegalMoves diffs the engine's legal moves for fen against the
// reference generator.
func CompareLegalMoves(fen string) (Diff, error) {
	p, err := engine.ParseFEN(fen)
	if err != nil {
		return Diff{}, err
	}
	return compare(fen, p, ReferenceMoves(fen)), nil
}

func compare(fen string, p *chess.Position, reference []string) Diff {
	ours := map[string]bool{}
	for _, m := range engine.LegalMoves(p) {
		ours[m.UCI()] = true
	}

	d := Diff{FEN: fen}
	for _, uci := range reference {
		if ours[uci] {
			delete(ours, uci)
			continue
		}
		d.Missing = append(d.Missing, uci)
	}
	for uci := range ours {
		d.Extra = append(d.Extra, uci)
	}
	sort.Strings(d.Extra)
	return d
}

// Perft counts leaf nodes of the legal move tree to the given depth using
// the reference generator.
func Perft(fen string, depth int) uint64 {
	board := dragontoothmg.ParseFen(fen)
	return perft(&board, depth)
}

func perft(b *dragontoothmg.Board, depth int) uint64 {
	if depth <= 0 {
		return 1
	}
	moves := b.GenerateLegalMoves()
	if depth == 1 {
		return uint64(len(moves))
	}
	var nodes uint64
	for _, m := range moves {
		undo := b.Apply(m)
		nodes += perft(b, depth-1)
		undo()
	}
	return nodes
}

// Walk compares legal move sets at every position reachable from fen within
// depth plies and returns the first disagreements found, at most limit of
// them. A limit of zero or less means no limit.
func Walk(fen string, depth, limit int) ([]Diff, error) {
	p, err := engine.ParseFEN(fen)
	if err != nil {
		return nil, err
	}
	w := walker{limit: limit}
	w.walk(p, depth)
	return w.diffs, nil
}

type walker struct {
	limit int
	diffs []Diff
}

func (w *walker) full() bool {
	return w.limit > 0 && len(w.diffs) >= w.limit
}

func (w *walker) walk(p *chess.Position, depth int) {
	if w.full() {
		return
	}
	fen := engine.FEN(p)
	if d := compare(fen, p, ReferenceMoves(fen)); !d.Empty() {
		w.diffs = append(w.diffs, d)
		return
	}
	if depth <= 0 {
		return
	}
	for _, m := range engine.LegalMoves(p) {
		u := chess.Apply(p, m)
		w.walk(p, depth-1)
		chess.Unapply(p, m, u)
		if w.full() {
			return
		}
	}
}
