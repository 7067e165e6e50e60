package verify

import (
	"testing"

	"github.com/lgbarn/chessengine-go/internal/engine"
	"github.com/lgbarn/chessengine-go/internal/errors"
	"github.com/lgbarn/chessengine-go/internal/testutil"
)

var positions = []struct {
	name string
	fen  string
}{
	{"initial", engine.InitialFEN},
	{"kiwipete", "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1"},
	{"endgame", "8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1"},
	{"promotions", "r3k2r/Pppp1ppp/1b3nbN/nP6/BBP1P3/q4N2/Pp1P2PP/R2Q1RK1 w kq - 0 1"},
	{"en passant", "rnbqkbnr/ppp2ppp/4p3/3pP3/8/8/PPPP1PPP/RNBQKBNR w KQkq d6 0 3"},
	{"in check", "4k3/8/8/8/8/8/3q4/4K3 w - - 0 1"},
}

func TestCompareLegalMoves(t *testing.T) {
	for _, tt := range positions {
		t.Run(tt.name, func(t *testing.T) {
			d, err := CompareLegalMoves(tt.fen)
			testutil.AssertNoError(t, err)
			if !d.Empty() {
				t.Error(d)
			}
		})
	}
}

func TestCompareLegalMovesBadFEN(t *testing.T) {
	_, err := CompareLegalMoves("not a fen")
	testutil.AssertErrorIs(t, err, errors.ErrInvalidFEN)
}

func TestPerftMatchesEngine(t *testing.T) {
	for _, tt := range positions {
		t.Run(tt.name, func(t *testing.T) {
			p := engine.MustParseFEN(tt.fen)
			testutil.AssertEqual(t, Perft(tt.fen, 2), engine.Perft(p, 2))
		})
	}
	testutil.AssertEqual(t, Perft(engine.InitialFEN, 3), uint64(8902))
	testutil.AssertEqual(t, Perft(engine.InitialFEN, 0), uint64(1))
}

func TestWalk(t *testing.T) {
	if testing.Short() {
		t.Skip("walks a few thousand positions")
	}
	diffs, err := Walk(positions[1].fen, 2, 5)
	testutil.AssertNoError(t, err)
	for _, d := range diffs {
		t.Error(d)
	}
}

func TestDiffString(t *testing.T) {
	d := Diff{FEN: "x"}
	testutil.AssertEqual(t, d.String(), "x: ok")
	d.Missing = []string{"e2e4"}
	testutil.AssertFalse(t, d.Empty())
	testutil.AssertEqual(t, d.String(), "x: missing [e2e4], extra []")
}
