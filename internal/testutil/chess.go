package testutil

import (
	"sort"
	"testing"

	"github.com/lgbarn/chessengine-go/internal/chess"
)

// Square parses a square name such as "e4" and fails the test if it is invalid.
func Square(t testing.TB, text string) chess.Square {
	t.Helper()
	sq, ok := chess.ParseSquare(text)
	if !ok {
		t.Fatalf("invalid square %q", text)
	}
	return sq
}

// UCIStrings returns the coordinate notation of moves, sorted, so move sets
// can be compared independent of generation order.
func UCIStrings(moves []chess.Move) []string {
	out := make([]string, len(moves))
	for i, m := range moves {
		out[i] = m.UCI()
	}
	sort.Strings(out)
	return out
}

// MoveStrings returns the undisambiguated notation of moves, sorted.
func MoveStrings(moves []chess.Move) []string {
	out := make([]string, len(moves))
	for i, m := range moves {
		out[i] = m.String()
	}
	sort.Strings(out)
	return out
}

// CountKind returns how many moves are of kind k.
func CountKind(moves []chess.Move, k chess.MoveKind) int {
	n := 0
	for _, m := range moves {
		if m.Kind() == k {
			n++
		}
	}
	return n
}
