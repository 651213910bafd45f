package game

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/google/uuid"

	"cnchess/internal/cnchess"
	"cnchess/internal/engine"
)

var (
	ErrGameNotFound  = errors.New("game not found")
	ErrGameOver      = errors.New("game is over")
	ErrIllegalMove   = errors.New("illegal move")
	ErrNotYourPiece  = errors.New("not your piece")
	ErrNothingToUndo = errors.New("nothing to undo")
)

type Manager struct {
	mu    sync.RWMutex
	games map[string]*GameState
}

func NewManager() *Manager {
	return &Manager{games: make(map[string]*GameState)}
}

// PlayResult 是人走一步加 AI 回一步之后的局面
type PlayResult struct {
	Human  cnchess.Move
	AI     cnchess.Move // 对局已结束时为 NoMove
	Search engine.SearchResult
	Snapshot
}

func (m *Manager) NewGame(cfg Config) Snapshot {
	return m.NewGameFrom(cfg, cnchess.NewBoard())
}

// NewGameFrom starts a session on b, which the manager takes ownership of.
// Remake still goes back to the standard opening.
func (m *Manager) NewGameFrom(cfg Config, b *cnchess.Board) Snapshot {
	cfg = cfg.withDefaults()
	now := time.Now()
	g := &GameState{
		ID:        uuid.NewString(),
		Config:    cfg,
		CreatedAt: now,
		Board:     b,
		ToMove:    cfg.Human(), // 人先走
		UpdatedAt: now,
	}

	m.mu.Lock()
	m.games[g.ID] = g
	m.mu.Unlock()

	g.mu.Lock()
	defer g.mu.Unlock()
	return g.snapshot()
}

func (m *Manager) get(id string) (*GameState, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	g, ok := m.games[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrGameNotFound, id)
	}
	return g, nil
}

func (m *Manager) State(id string) (Snapshot, error) {
	g, err := m.get(id)
	if err != nil {
		return Snapshot{}, err
	}
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.snapshot(), nil
}

// Play applies the human move and, while the game is still ongoing, answers
// with the engine's move.
func (m *Manager) Play(ctx context.Context, id string, mv cnchess.Move) (PlayResult, error) {
	g, err := m.get(id)
	if err != nil {
		return PlayResult{}, err
	}
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.status() != StatusOngoing {
		return PlayResult{}, ErrGameOver
	}
	human := g.Config.Human()
	if g.ToMove != human {
		return PlayResult{}, fmt.Errorf("%w: %v to move", ErrIllegalMove, g.ToMove)
	}
	if !mv.From.Interior() || g.Board.At(mv.From).Side() != human {
		return PlayResult{}, fmt.Errorf("%w: %s", ErrNotYourPiece, mv)
	}
	if !g.Board.IsLegal(human, mv) {
		return PlayResult{}, fmt.Errorf("%w: %s", ErrIllegalMove, mv)
	}
	if err := g.Board.Apply(mv); err != nil {
		return PlayResult{}, fmt.Errorf("apply %s: %w", mv, err)
	}
	g.ToMove = human.Opponent()
	g.touch()

	res := PlayResult{Human: mv}
	if g.status() == StatusOngoing {
		sr, err := g.think(ctx, g.ToMove)
		if err != nil {
			// 搜索被取消：撤回人的这一步，局面保持不变
			g.Board.Undo()
			g.ToMove = human
			return PlayResult{}, err
		}
		if err := g.Board.Apply(sr.BestMove); err != nil {
			return PlayResult{}, fmt.Errorf("apply %s: %w", sr.BestMove, err)
		}
		g.ToMove = human
		res.AI = sr.BestMove
		res.Search = sr
		log.Printf("game %s: human %s, ai %s (score %d, nodes %d, %v)",
			g.ID, mv, sr.BestMove, sr.Score, sr.Nodes, sr.TimeUsed)
	}
	res.Snapshot = g.snapshot()
	return res, nil
}

// think 在调用方持锁时搜索 side 的最佳着法
func (g *GameState) think(ctx context.Context, side cnchess.Side) (engine.SearchResult, error) {
	cfg := engine.SearchConfig{Side: side, Depth: g.Config.Depth}
	if g.Config.Parallel {
		return engine.NewEngine().SearchParallel(ctx, g.Board, cfg)
	}
	if err := ctx.Err(); err != nil {
		return engine.SearchResult{}, err
	}
	return engine.NewEngine().Search(g.Board, cfg), nil
}

// Undo takes back the last human move together with the reply to it. When
// the game ended on the human move there is no reply and only one ply goes.
func (m *Manager) Undo(id string) (Snapshot, error) {
	g, err := m.get(id)
	if err != nil {
		return Snapshot{}, err
	}
	g.mu.Lock()
	defer g.mu.Unlock()

	n := g.Board.HistoryLen()
	if n == 0 {
		return Snapshot{}, ErrNothingToUndo
	}
	plies := 2
	if n%2 == 1 {
		plies = 1
	}
	for i := 0; i < plies; i++ {
		g.Board.Undo()
	}
	g.ToMove = g.Config.Human()
	g.touch()
	return g.snapshot(), nil
}

// Remake starts the session over from the opening.
func (m *Manager) Remake(id string) (Snapshot, error) {
	g, err := m.get(id)
	if err != nil {
		return Snapshot{}, err
	}
	g.mu.Lock()
	defer g.mu.Unlock()

	g.Board = cnchess.NewBoard()
	g.ToMove = g.Config.Human()
	g.touch()
	return g.snapshot(), nil
}

// Advice searches for the human side without playing the move.
func (m *Manager) Advice(ctx context.Context, id string) (engine.SearchResult, error) {
	g, err := m.get(id)
	if err != nil {
		return engine.SearchResult{}, err
	}
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.status() != StatusOngoing {
		return engine.SearchResult{}, ErrGameOver
	}
	return g.think(ctx, g.Config.Human())
}
