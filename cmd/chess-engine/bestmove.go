package main

import (
	"context"
	"fmt"

	"github.com/lgbarn/chessengine-go/internal/engine"
)

// runBestMove searches one position and prints the chosen move.
func runBestMove(env *environment, args []string) int {
	cfg := newConfig(env)
	fs := newFlagSet(env, "bestmove", "")
	var ef engineFlags
	ef.register(fs, cfg)
	fen := fenFlag(fs)
	if ok, code := parseFlags(fs, args); !ok {
		return code
	}
	closer, err := ef.apply(cfg)
	if err != nil {
		return fail(env, err)
	}
	defer closer.Close()

	gen := cfg.Generator()
	game, err := engine.NewGameFromFEN(*fen, engine.WithGenerator(gen))
	if err != nil {
		return fail(env, err)
	}
	s, err := cfg.Searcher(gen)
	if err != nil {
		return fail(env, err)
	}
	res, err := s.Search(context.Background(), game.Position())
	if err != nil {
		return fail(env, err)
	}
	rec, err := game.MakeMove(res.Move)
	if err != nil {
		return fail(env, err)
	}
	fmt.Fprintf(env.stdout, "bestmove %s (%s)\n", rec.UCI(), rec.SAN())
	fmt.Fprintf(env.stdout, "score %.2f depth %d nodes %d\n", res.Score, res.Depth, res.Nodes)
	return exitOK
}
