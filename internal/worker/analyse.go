package worker

import (
	"context"
	"sort"

	"golang.org/x/sync/errgroup"

	"github.com/lgbarn/chessengine-go/internal/engine"
	"github.com/lgbarn/chessengine-go/internal/search"
)

// SearchFunc returns a ProcessFunc that finds the best move of each job's
// position with s. Per-job failures are reported in Result.Error.
func SearchFunc(s *search.Searcher, gen *engine.Generator) ProcessFunc {
	return func(ctx context.Context, job Job) Result {
		res := Result{Index: job.Index, Label: job.Label, FEN: job.FEN}
		game, err := engine.NewGameFromFEN(job.FEN, engine.WithGenerator(gen))
		if err != nil {
			res.Error = err
			return res
		}
		found, err := s.Search(ctx, game.Position())
		if err != nil {
			res.Error = err
			return res
		}
		rec, err := game.MakeMove(found.Move)
		if err != nil {
			res.Error = err
			return res
		}
		res.Move = found.Move
		res.SAN = rec.SAN()
		res.Score = found.Score
		res.Depth = found.Depth
		res.Nodes = found.Nodes
		return res
	}
}

// Run feeds jobs through a pool running process and returns the results in
// job order. A cancelled ctx stops submission and is returned as the error;
// results gathered so far are still returned.
func Run(ctx context.Context, jobs []Job, process ProcessFunc, opts ...PoolOption) ([]Result, error) {
	pool := NewPool(process, opts...)
	pool.Start(ctx)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		defer pool.Close()
		for _, job := range jobs {
			if err := pool.Submit(gctx, job); err != nil {
				pool.Stop()
				return err
			}
		}
		return nil
	})

	results := make([]Result, 0, len(jobs))
	for r := range pool.Results() {
		results = append(results, r)
	}
	err := g.Wait()

	sort.Slice(results, func(i, j int) bool { return results[i].Index < results[j].Index })
	return results, err
}
