package main

import (
	"context"
	"fmt"

	"cnchess/internal/cnchess"
	"cnchess/internal/engine"
)

type PlayerConfig struct {
	Name  string
	Depth int
}

type gameResult struct {
	Index  int
	Lower  PlayerConfig
	Upper  PlayerConfig
	Winner cnchess.Side // NoSide 为和棋
	Plies  int
	Nodes  int64
}

// playGame 下完一局：下方先走，吃掉对方将帅、无子可走或步数用尽为止
func playGame(ctx context.Context, index int, lower, upper PlayerConfig, maxPlies int) (gameResult, error) {
	res := gameResult{Index: index, Lower: lower, Upper: upper, Winner: cnchess.NoSide}
	b := cnchess.NewBoard()
	e := engine.NewEngine()
	side := cnchess.Lower

	for res.Plies < maxPlies {
		if err := ctx.Err(); err != nil {
			return res, err
		}
		p := lower
		if side == cnchess.Upper {
			p = upper
		}

		sr := e.Search(b, engine.SearchConfig{Side: side, Depth: p.Depth})
		res.Nodes += sr.Nodes
		if sr.BestMove.IsZero() {
			if b.HistoryFull() {
				return res, nil
			}
			// 无子可动，当前方输
			res.Winner = side.Opponent()
			return res, nil
		}
		if err := b.Apply(sr.BestMove); err != nil {
			return res, fmt.Errorf("game %d ply %d: apply %s: %w", index, res.Plies, sr.BestMove, err)
		}
		res.Plies++

		if w := b.Winner(); w != cnchess.NoSide {
			res.Winner = w
			return res, nil
		}
		side = side.Opponent()
	}
	return res, nil
}

// score 统计 A 对 B 的胜负
type score struct {
	A, B, Draws int
}

func (s *score) add(r gameResult, a PlayerConfig) {
	switch {
	case r.Winner == cnchess.NoSide:
		s.Draws++
	case (r.Winner == cnchess.Lower) == (r.Lower == a):
		s.A++
	default:
		s.B++
	}
}

func (s score) String() string {
	return fmt.Sprintf("A %d, B %d, draws %d", s.A, s.B, s.Draws)
}
