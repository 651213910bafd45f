package engine

import (
	"context"
	"math"
	"sync/atomic"
	"time"

	"golang.org/x/sync/errgroup"

	"cnchess/internal/cnchess"
)

// SearchParallel splits the root moves across cfg.Workers goroutines. Every
// root move is searched on its own clone of b with a full window, so the
// result matches Search exactly. ctx is checked before each root move.
func (e *Engine) SearchParallel(ctx context.Context, b *cnchess.Board, cfg SearchConfig) (SearchResult, error) {
	cfg = cfg.withDefaults()
	start := time.Now()
	e.nodes = 0

	res := SearchResult{Depth: cfg.Depth}
	if cfg.Side != cnchess.Upper && cfg.Side != cnchess.Lower {
		return res, nil
	}
	roots := b.GenerateMovesForSide(cfg.Side)
	if len(roots) == 0 || b.HistoryFull() {
		res.Score = Evaluate(b)
		res.TimeUsed = time.Since(start)
		return res, nil
	}

	scores := make([]int, len(roots))
	var nodes atomic.Int64
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(cfg.Workers)
	for i, m := range roots {
		i, m := i, m
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			// 每个 goroutine 用自己的 Engine 和棋盘副本
			local := &Engine{}
			child := b.Clone()
			applyOrPanic(child, m)
			scores[i] = local.Minimax(child, cfg.Depth, math.MinInt, math.MaxInt, cfg.Side.Opponent())
			nodes.Add(local.nodes)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return SearchResult{}, err
	}

	best, bestScore := cnchess.NoMove, worstScore(cfg.Side)
	for i, m := range roots {
		if improves(cfg.Side, scores[i], bestScore) {
			best, bestScore = m, scores[i]
		}
	}
	res.BestMove = best
	res.Score = bestScore
	e.nodes = nodes.Load()
	res.Nodes = e.nodes
	res.TimeUsed = time.Since(start)
	return res, nil
}
