package main

import (
	"fmt"
	"time"

	"github.com/lgbarn/chessengine-go/internal/engine"
	"github.com/lgbarn/chessengine-go/internal/verify"
)

// runPerft counts leaf nodes of the legal move tree.
func runPerft(env *environment, args []string) int {
	fs := newFlagSet(env, "perft", "")
	fen := fenFlag(fs)
	depth := fs.Int("depth", 3, "Perft depth")
	divide := fs.Bool("divide", false, "Print per-move node counts at root")
	check := fs.Bool("verify", false, "Compare counts with the reference generator")
	if ok, code := parseFlags(fs, args); !ok {
		return code
	}
	if *depth <= 0 {
		fmt.Fprintln(env.stderr, "-depth must be > 0")
		return exitUsage
	}

	p, err := engine.ParseFEN(*fen)
	if err != nil {
		return fail(env, err)
	}

	start := time.Now()
	var nodes uint64
	if *divide {
		for _, entry := range engine.Divide(p, *depth) {
			fmt.Fprintf(env.stdout, "%s: %d\n", entry.Move.UCI(), entry.Nodes)
			nodes += entry.Nodes
		}
		fmt.Fprintf(env.stdout, "Total: %d\n", nodes)
	} else {
		nodes = engine.Perft(p, *depth)
		fmt.Fprintf(env.stdout, "perft(%d) = %d\n", *depth, nodes)
	}
	elapsed := time.Since(start)
	fmt.Fprintf(env.stderr, "%s (%.0f nodes/s)\n", elapsed.Round(time.Millisecond), float64(nodes)/elapsed.Seconds())

	if !*check {
		return exitOK
	}
	ref := verify.Perft(*fen, *depth)
	if ref == nodes {
		fmt.Fprintf(env.stdout, "verified: reference count %d\n", ref)
		return exitOK
	}
	fmt.Fprintf(env.stdout, "MISMATCH: reference count %d\n", ref)
	diffs, err := verify.Walk(*fen, *depth-1, 5)
	if err != nil {
		return fail(env, err)
	}
	for _, d := range diffs {
		fmt.Fprintln(env.stdout, d)
	}
	return exitError
}
