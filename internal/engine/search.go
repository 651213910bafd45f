package engine

import (
	"math"
	"time"

	"cnchess/internal/cnchess"
)

// 搜索结果
type SearchResult struct {
	BestMove cnchess.Move  // NoMove when the side has nothing to play
	Score    int           // 正：下方好，负：上方好
	Depth    int           // 根着法之下的层数
	Nodes    int64         // 节点数
	TimeUsed time.Duration // 花费时间
}

// Minimax is alpha-beta over make/unmake on b. Upper minimizes, Lower
// maximizes. A side with no moves scores as the worst value for itself.
// b is restored before returning.
func (e *Engine) Minimax(b *cnchess.Board, depth, alpha, beta int, side cnchess.Side) int {
	e.nodes++
	if depth <= 0 || b.HistoryFull() {
		return Evaluate(b)
	}

	var ml cnchess.MoveList
	switch side {
	case cnchess.Upper:
		b.GenerateMoves(cnchess.Upper, &ml)
		best := math.MaxInt
		for i := 0; i < ml.Len(); i++ {
			applyOrPanic(b, ml.At(i))
			score := e.Minimax(b, depth-1, alpha, beta, cnchess.Lower)
			b.Undo()

			best = min(best, score)
			beta = min(beta, best)
			if alpha >= beta {
				break
			}
		}
		return best
	case cnchess.Lower:
		b.GenerateMoves(cnchess.Lower, &ml)
		best := math.MinInt
		for i := 0; i < ml.Len(); i++ {
			applyOrPanic(b, ml.At(i))
			score := e.Minimax(b, depth-1, alpha, beta, cnchess.Upper)
			b.Undo()

			best = max(best, score)
			alpha = max(alpha, best)
			if alpha >= beta {
				break
			}
		}
		return best
	}
	return 0
}

// BestMove tries every move of side and searches depth plies below each with
// a full window. On equal scores the later move in generation order wins.
// It returns NoMove for NoSide or when side cannot move.
func (e *Engine) BestMove(b *cnchess.Board, side cnchess.Side, depth int) cnchess.Move {
	m, _ := e.bestMove(b, side, depth)
	return m
}

// Search is BestMove with defaults applied and statistics collected.
func (e *Engine) Search(b *cnchess.Board, cfg SearchConfig) SearchResult {
	cfg = cfg.withDefaults()
	start := time.Now()
	e.nodes = 0

	m, score := e.bestMove(b, cfg.Side, cfg.Depth)
	return SearchResult{
		BestMove: m,
		Score:    score,
		Depth:    cfg.Depth,
		Nodes:    e.nodes,
		TimeUsed: time.Since(start),
	}
}

func (e *Engine) bestMove(b *cnchess.Board, side cnchess.Side, depth int) (cnchess.Move, int) {
	if side != cnchess.Upper && side != cnchess.Lower {
		return cnchess.NoMove, 0
	}
	if b.HistoryFull() {
		return cnchess.NoMove, Evaluate(b)
	}

	var ml cnchess.MoveList
	b.GenerateMoves(side, &ml)
	if ml.Len() == 0 {
		return cnchess.NoMove, Evaluate(b)
	}

	best := cnchess.NoMove
	bestScore := worstScore(side)
	for i := 0; i < ml.Len(); i++ {
		m := ml.At(i)
		applyOrPanic(b, m)
		score := e.Minimax(b, depth, math.MinInt, math.MaxInt, side.Opponent())
		b.Undo()

		if improves(side, score, bestScore) {
			best, bestScore = m, score
		}
	}
	return best, bestScore
}

func worstScore(side cnchess.Side) int {
	if side == cnchess.Upper {
		return math.MaxInt
	}
	return math.MinInt
}

// improves keeps ties on the newer candidate.
func improves(side cnchess.Side, score, incumbent int) bool {
	if side == cnchess.Upper {
		return score <= incumbent
	}
	return score >= incumbent
}
