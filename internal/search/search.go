// Package search chooses moves with alpha-beta minimax over a pluggable
// evaluator, optionally in parallel at the root and by iterative deepening.
package search

import (
	"context"
	"fmt"
	"io"
	"log"
	"math"
	"sort"
	"sync/atomic"

	"golang.org/x/sync/errgroup"

	"github.com/lgbarn/chessengine-go/internal/chess"
	"github.com/lgbarn/chessengine-go/internal/engine"
	"github.com/lgbarn/chessengine-go/internal/errors"
	"github.com/lgbarn/chessengine-go/internal/eval"
)

// Result is the outcome of one search.
type Result struct {
	Move  chess.Move
	Score float64 // from White's point of view
	Depth int
	Nodes uint64
}

// Searcher picks moves by alpha-beta search to a fixed depth.
// A Searcher may be used by several goroutines at once; all shared state
// lives in the Generator's cache.
type Searcher struct {
	depth     int
	evaluator eval.Evaluator
	gen       *engine.Generator
	parallel  bool
	iterative bool
	ordering  bool
	logger    *log.Logger
	verbosity int
}

// run is the state of one Search call.
type run struct {
	*Searcher
	nodes atomic.Uint64
}

// Option configures a Searcher.
type Option func(*Searcher)

// WithParallel searches each root move in its own goroutine.
func WithParallel(enabled bool) Option {
	return func(s *Searcher) {
		s.parallel = enabled
	}
}

// WithIterativeDeepening repeats the search at depths 1 to the configured
// depth, trying the previous best move first.
func WithIterativeDeepening(enabled bool) Option {
	return func(s *Searcher) {
		s.iterative = enabled
	}
}

// WithMoveOrdering searches checks first, then captures, castles and
// promotions, then the remaining moves by piece type.
func WithMoveOrdering(enabled bool) Option {
	return func(s *Searcher) {
		s.ordering = enabled
	}
}

// WithGenerator sets the legal-move generator, typically one with a shared cache.
func WithGenerator(g *engine.Generator) Option {
	return func(s *Searcher) {
		if g != nil {
			s.gen = g
		}
	}
}

// WithLogger reports search progress to l. Verbosity 1 logs each chosen
// move; 2 adds a line per deepening iteration and cache statistics.
func WithLogger(l *log.Logger, verbosity int) Option {
	return func(s *Searcher) {
		if l != nil {
			s.logger = l
			s.verbosity = verbosity
		}
	}
}

// New creates a Searcher. The depth must be positive.
func New(depth int, evaluator eval.Evaluator, opts ...Option) (*Searcher, error) {
	if depth <= 0 {
		return nil, fmt.Errorf("depth %d: %w", depth, errors.ErrInvalidDepth)
	}
	if evaluator == nil {
		return nil, fmt.Errorf("nil evaluator: %w", errors.ErrInvalidConfig)
	}
	s := &Searcher{
		depth:     depth,
		evaluator: evaluator,
		gen:       engine.NewGenerator(nil),
		logger:    log.New(io.Discard, "", 0),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// Depth returns the configured search depth.
func (s *Searcher) Depth() int {
	return s.depth
}

// PickMove implements MovePicker.
func (s *Searcher) PickMove(ctx context.Context, p *chess.Position) (chess.Move, error) {
	return s.ChooseMove(ctx, p)
}

// ChooseMove returns the best move for the side to move in p.
func (s *Searcher) ChooseMove(ctx context.Context, p *chess.Position) (chess.Move, error) {
	res, err := s.Search(ctx, p)
	if err != nil {
		return nil, err
	}
	return res.Move, nil
}

// Search runs the configured search on a private copy of p. Any failure in
// any root task fails the whole search; no partial result is returned.
func (s *Searcher) Search(ctx context.Context, p *chess.Position) (Result, error) {
	root := p.Copy()
	moves := s.gen.LegalMoves(root)
	if len(moves) == 0 {
		return Result{}, errors.Wrap(errors.ErrSearchFailed, "no legal moves")
	}
	r := &run{Searcher: s}

	first := s.depth
	if s.iterative {
		first = 1
	}
	var res Result
	for depth := first; depth <= s.depth; depth++ {
		if s.ordering {
			s.order(root, moves)
		}
		if res.Move != nil {
			promote(moves, res.Move)
		}

		var err error
		if s.parallel {
			res, err = r.searchRootParallel(ctx, root, depth, moves)
		} else {
			res, err = r.searchRoot(ctx, root, depth, moves)
		}
		if err != nil {
			return Result{}, err
		}
		res.Nodes = r.nodes.Load()
		if s.verbosity >= 2 {
			s.logger.Printf("depth %d best %s score %.2f nodes %d", depth, res.Move.UCI(), res.Score, res.Nodes)
		}
	}

	if s.verbosity >= 1 {
		s.logger.Printf("%s chose %s (score %.2f, depth %d, %d nodes)", root.ToMove, res.Move.UCI(), res.Score, res.Depth, res.Nodes)
	}
	if c := s.gen.Cache(); c != nil && s.verbosity >= 2 {
		st := c.Stats()
		s.logger.Printf("move cache: %d/%d entries, hit rate %.1f%%", st.Entries, st.Capacity, 100*st.HitRate())
	}
	return res, nil
}

// maximising reports whether the side to move wants the highest score.
func maximising(p *chess.Position) bool {
	return p.ToMove == chess.White
}

// better reports whether score improves on best for the side to move.
func better(maxing bool, score, best float64) bool {
	if maxing {
		return score > best
	}
	return score < best
}

// searchRoot searches the root moves one after another on root, which is
// restored before returning.
func (s *run) searchRoot(ctx context.Context, root *chess.Position, depth int, moves []chess.Move) (res Result, err error) {
	defer recoverInto(&err, "root search")

	maxing := maximising(root)
	alpha, beta := math.Inf(-1), math.Inf(1)
	res = Result{Depth: depth, Score: worst(maxing)}
	for _, m := range moves {
		u := chess.Apply(root, m)
		score, err := s.alphaBeta(ctx, root, depth-1, alpha, beta)
		chess.Unapply(root, m, u)
		if err != nil {
			return Result{}, err
		}
		if res.Move == nil || better(maxing, score, res.Score) {
			res.Move, res.Score = m, score
		}
		if maxing {
			alpha = math.Max(alpha, score)
		} else {
			beta = math.Min(beta, score)
		}
	}
	return res, nil
}

// searchRootParallel searches every root move in its own goroutine on its
// own copy of root. The group is a hard barrier: the first failure cancels
// the rest and fails the search.
func (s *run) searchRootParallel(ctx context.Context, root *chess.Position, depth int, moves []chess.Move) (Result, error) {
	g, gctx := errgroup.WithContext(ctx)
	scores := make([]float64, len(moves))

	for i, m := range moves {
		i, m := i, m
		child := root.Copy()
		g.Go(func() (err error) {
			defer recoverInto(&err, "root move "+m.UCI())
			chess.Apply(child, m)
			scores[i], err = s.alphaBeta(gctx, child, depth-1, math.Inf(-1), math.Inf(1))
			return err
		})
	}
	if err := g.Wait(); err != nil {
		return Result{}, err
	}

	maxing := maximising(root)
	res := Result{Move: moves[0], Score: scores[0], Depth: depth}
	for i := 1; i < len(moves); i++ {
		if better(maxing, scores[i], res.Score) {
			res.Move, res.Score = moves[i], scores[i]
		}
	}
	return res, nil
}

// alphaBeta returns the minimax value of p searched depth plies deep. The
// maximiser stops as soon as a reply reaches beta and the minimiser as soon
// as one reaches alpha, returning that bound.
func (s *run) alphaBeta(ctx context.Context, p *chess.Position, depth int, alpha, beta float64) (float64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	s.nodes.Add(1)

	if depth == 0 {
		return s.evaluator.Evaluate(p), nil
	}
	moves := s.gen.LegalMoves(p)
	if engine.StateOf(p, moves) != chess.Unfinished {
		return s.evaluator.Evaluate(p), nil
	}
	if s.ordering {
		s.order(p, moves)
	}

	maxing := maximising(p)
	best := worst(maxing)
	for _, m := range moves {
		u := chess.Apply(p, m)
		score, err := s.alphaBeta(ctx, p, depth-1, alpha, beta)
		chess.Unapply(p, m, u)
		if err != nil {
			return 0, err
		}
		if maxing {
			best = math.Max(best, score)
			if best >= beta {
				return best, nil
			}
			alpha = math.Max(alpha, best)
		} else {
			best = math.Min(best, score)
			if best <= alpha {
				return best, nil
			}
			beta = math.Min(beta, best)
		}
	}
	return best, nil
}

func worst(maxing bool) float64 {
	if maxing {
		return math.Inf(-1)
	}
	return math.Inf(1)
}

// recoverInto turns a panic in a search task into an error wrapping
// errors.ErrSearchFailed and the panic value, if it is an error.
func recoverInto(err *error, task string) {
	r := recover()
	if r == nil {
		return
	}
	if cause, ok := r.(error); ok {
		*err = fmt.Errorf("%s: %w: %w", task, errors.ErrSearchFailed, cause)
		return
	}
	*err = fmt.Errorf("%s: %w: %v", task, errors.ErrSearchFailed, r)
}

// order sorts moves by descending priority: moves giving check, then
// captures, castles and promotions, then by piece type.
func (s *Searcher) order(p *chess.Position, moves []chess.Move) {
	keys := make(map[chess.Move]int, len(moves))
	occupied := p.AllOccupied()
	them := p.ToMove.Opposite()
	for _, m := range moves {
		key := int(m.Piece().Type)
		switch {
		case m.Kind() != chess.KindRegular, occupied.Has(m.To()):
			key += 100
		}
		u := chess.Apply(p, m)
		if engine.IsInCheck(p, them) {
			key += 1000
		}
		chess.Unapply(p, m, u)
		keys[m] = key
	}
	sort.SliceStable(moves, func(i, j int) bool {
		return keys[moves[i]] > keys[moves[j]]
	})
}

// promote moves m to the front of moves, keeping the others in order.
func promote(moves []chess.Move, m chess.Move) {
	for i, candidate := range moves {
		if candidate == m {
			copy(moves[1:i+1], moves[:i])
			moves[0] = m
			return
		}
	}
}
