package main

import (
	"fmt"

	"github.com/lgbarn/chessengine-go/internal/engine"
)

// runMoves lists the legal moves of a position with their notation and the
// position's state.
func runMoves(env *environment, args []string) int {
	fs := newFlagSet(env, "moves", "")
	fen := fenFlag(fs)
	board := fs.Bool("board", false, "Draw the board first")
	if ok, code := parseFlags(fs, args); !ok {
		return code
	}

	game, err := engine.NewGameFromFEN(*fen)
	if err != nil {
		return fail(env, err)
	}
	p := game.Position()
	if *board {
		writeBoard(env.stdout, p)
	}
	legal := game.LegalMoves()
	for _, m := range legal {
		fmt.Fprintf(env.stdout, "%-8s %s\n", engine.SAN(p, m, legal), m.UCI())
	}
	fmt.Fprintf(env.stdout, "%d moves, %s to move, %s\n", len(legal), p.ToMove, game.State())
	return exitOK
}
