package engine

import (
	"sort"

	"github.com/lgbarn/chessengine-go/internal/chess"
)

// Perft counts the leaf nodes of the legal move tree of p to the given depth.
// p is mutated during the walk and restored before returning.
func Perft(p *chess.Position, depth int) uint64 {
	if depth <= 0 {
		return 1
	}
	moves := LegalMoves(p)
	if depth == 1 {
		return uint64(len(moves))
	}
	var nodes uint64
	for _, m := range moves {
		u := chess.Apply(p, m)
		nodes += Perft(p, depth-1)
		chess.Unapply(p, m, u)
	}
	return nodes
}

// DivideEntry is the perft count below one root move.
type DivideEntry struct {
	Move  chess.Move
	Nodes uint64
}

// Divide returns the perft count below each legal root move, sorted by UCI text.
func Divide(p *chess.Position, depth int) []DivideEntry {
	if depth <= 0 {
		return nil
	}
	moves := LegalMoves(p)
	entries := make([]DivideEntry, 0, len(moves))
	for _, m := range moves {
		u := chess.Apply(p, m)
		entries = append(entries, DivideEntry{Move: m, Nodes: Perft(p, depth-1)})
		chess.Unapply(p, m, u)
	}
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Move.UCI() < entries[j].Move.UCI()
	})
	return entries
}
