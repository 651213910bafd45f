package game

import (
	"sync"
	"time"

	"cnchess/internal/cnchess"
	"cnchess/internal/engine"
)

type Status string

const (
	StatusOngoing   Status = "ongoing"
	StatusUpperWins Status = "upper_wins"
	StatusLowerWins Status = "lower_wins"
	StatusDraw      Status = "draw" // 步数用尽
)

// Config 是一局的设置
type Config struct {
	HumanUpper bool // 人执上方；默认下方
	Depth      int  // <= 0 用 engine.DefaultDepth
	Parallel   bool // AI 用 SearchParallel
}

// Human is the side the human plays.
func (c Config) Human() cnchess.Side {
	if c.HumanUpper {
		return cnchess.Upper
	}
	return cnchess.Lower
}

func (c Config) withDefaults() Config {
	if c.Depth <= 0 {
		c.Depth = engine.DefaultDepth
	}
	return c
}

// GameState is one session. Board and ToMove are guarded by mu.
type GameState struct {
	ID        string
	Config    Config
	CreatedAt time.Time

	mu        sync.Mutex
	Board     *cnchess.Board
	ToMove    cnchess.Side
	UpdatedAt time.Time
}

// Snapshot is a copy of a session taken under its lock.
type Snapshot struct {
	ID        string
	Board     string // Board.Encode()
	ToMove    cnchess.Side
	HumanSide cnchess.Side
	Legal     []cnchess.Move
	LastMove  cnchess.Move
	Status    Status
	Plies     int
}

// status 只看将帅是否还在、步数是否用尽、走子方是否无子可走
func (g *GameState) status() Status {
	switch g.Board.Winner() {
	case cnchess.Upper:
		return StatusUpperWins
	case cnchess.Lower:
		return StatusLowerWins
	}
	if g.Board.HistoryFull() {
		return StatusDraw
	}
	if len(g.Board.GenerateMovesForSide(g.ToMove)) == 0 {
		if g.ToMove == cnchess.Upper {
			return StatusLowerWins
		}
		return StatusUpperWins
	}
	return StatusOngoing
}

func (g *GameState) snapshot() Snapshot {
	s := Snapshot{
		ID:        g.ID,
		Board:     g.Board.Encode(),
		ToMove:    g.ToMove,
		HumanSide: g.Config.Human(),
		Status:    g.status(),
		Plies:     g.Board.HistoryLen(),
	}
	if s.Status == StatusOngoing {
		s.Legal = g.Board.GenerateMovesForSide(g.ToMove)
	}
	s.LastMove, _ = g.Board.LastMove()
	return s
}

func (g *GameState) touch() {
	g.UpdatedAt = time.Now()
}
