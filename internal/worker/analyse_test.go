package worker

import (
	"context"
	"testing"

	"github.com/lgbarn/chessengine-go/internal/engine"
	"github.com/lgbarn/chessengine-go/internal/errors"
	"github.com/lgbarn/chessengine-go/internal/eval"
	"github.com/lgbarn/chessengine-go/internal/search"
	"github.com/lgbarn/chessengine-go/internal/testutil"
)

func newSearchFunc(t *testing.T, depth int) ProcessFunc {
	t.Helper()
	gen := engine.NewGenerator(engine.NewMoveCache(10000))
	s, err := search.New(depth, eval.NewStandard(gen), search.WithGenerator(gen))
	testutil.AssertNoError(t, err)
	return SearchFunc(s, gen)
}

func TestRun(t *testing.T) {
	jobs := []Job{
		{Index: 0, Label: "back rank", FEN: "6k1/5ppp/8/8/8/8/5PPP/R5K1 w - - 0 1"},
		{Index: 1, Label: "bad", FEN: "8/8/8 w - -"},
		{Index: 2, Label: "hanging queen", FEN: "4k3/8/8/3q4/8/8/8/3RK3 w - - 0 1"},
		{Index: 3, Label: "stalemate", FEN: "7k/5Q2/6K1/8/8/8/8/8 b - - 0 1"},
	}

	results, err := Run(context.Background(), jobs, newSearchFunc(t, 2), WithWorkers(3))
	testutil.AssertNoError(t, err)
	if len(results) != len(jobs) {
		t.Fatalf("got %d results; want %d", len(results), len(jobs))
	}
	for i, r := range results {
		testutil.AssertEqual(t, r.Index, i)
		testutil.AssertEqual(t, r.Label, jobs[i].Label)
	}

	testutil.AssertNoError(t, results[0].Error)
	testutil.AssertEqual(t, results[0].SAN, "Ra8#")
	testutil.AssertTrue(t, eval.IsMateScore(results[0].Score))
	testutil.AssertEqual(t, results[0].Depth, 2)

	testutil.AssertErrorIs(t, results[1].Error, errors.ErrInvalidFEN)

	testutil.AssertNoError(t, results[2].Error)
	testutil.AssertEqual(t, results[2].Move.UCI(), "d1d5")
	testutil.AssertEqual(t, results[2].SAN, "Rxd5")
	testutil.AssertTrue(t, results[2].Nodes > 0)

	testutil.AssertErrorIs(t, results[3].Error, errors.ErrSearchFailed)
}

func TestRunCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	jobs := make([]Job, 50)
	for i := range jobs {
		jobs[i] = Job{Index: i, FEN: engine.InitialFEN}
	}
	results, err := Run(ctx, jobs, newSearchFunc(t, 1), WithBufferSize(1))
	testutil.AssertErrorIs(t, err, context.Canceled)
	for _, r := range results {
		testutil.AssertErrorIs(t, r.Error, context.Canceled)
	}
}
