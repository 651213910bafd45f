package game

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"

	"cnchess/internal/cnchess"
)

func mustMove(t *testing.T, s string) cnchess.Move {
	t.Helper()
	m, err := cnchess.ParseMove(s)
	if err != nil {
		t.Fatalf("parse %q: %v", s, err)
	}
	return m
}

// setBoard 替换一局的棋盘，用来构造残局
func setBoard(t *testing.T, m *Manager, id, enc string) {
	t.Helper()
	b, err := cnchess.DecodeBoard(enc)
	if err != nil {
		t.Fatal(err)
	}
	g, err := m.get(id)
	if err != nil {
		t.Fatal(err)
	}
	g.Board = b
}

func TestNewGame(t *testing.T) {
	m := NewManager()
	s := m.NewGame(Config{})
	if _, err := uuid.Parse(s.ID); err != nil {
		t.Fatalf("id %q is not a uuid: %v", s.ID, err)
	}
	if s.ToMove != cnchess.Lower || s.HumanSide != cnchess.Lower {
		t.Fatalf("human should be lower and move first, got %+v", s)
	}
	if s.Status != StatusOngoing || len(s.Legal) != 44 || s.Plies != 0 {
		t.Fatalf("unexpected opening snapshot %+v", s)
	}
	if s.Board != cnchess.NewBoard().Encode() {
		t.Fatalf("board = %s", s.Board)
	}

	up := m.NewGame(Config{HumanUpper: true})
	if up.ToMove != cnchess.Upper || up.ID == s.ID {
		t.Fatalf("upper human game: %+v", up)
	}
}

func TestConfigHuman(t *testing.T) {
	cases := []struct {
		cfg  Config
		want cnchess.Side
	}{
		{Config{}, cnchess.Lower},
		{Config{Depth: 1}, cnchess.Lower},
		{Config{Depth: 1, Parallel: true}, cnchess.Lower},
		{Config{HumanUpper: true}, cnchess.Upper},
	}
	m := NewManager()
	for _, tc := range cases {
		if got := tc.cfg.withDefaults().Human(); got != tc.want {
			t.Errorf("%+v: human %v, want %v", tc.cfg, got, tc.want)
		}
		s := m.NewGame(tc.cfg)
		if s.HumanSide != tc.want || s.ToMove != tc.want {
			t.Errorf("%+v: game human %v to move %v, want %v", tc.cfg, s.HumanSide, s.ToMove, tc.want)
		}
	}
}

func TestPlayRepliesWithEngineMove(t *testing.T) {
	m := NewManager()
	s := m.NewGame(Config{Depth: 1})

	res, err := m.Play(context.Background(), s.ID, mustMove(t, "h2e2"))
	if err != nil {
		t.Fatal(err)
	}
	if res.AI.IsZero() {
		t.Fatalf("engine did not reply")
	}
	if res.ToMove != cnchess.Lower || res.Plies != 2 || res.Status != StatusOngoing {
		t.Fatalf("unexpected result %+v", res.Snapshot)
	}
	if res.LastMove != res.AI {
		t.Fatalf("last move %s, ai %s", res.LastMove, res.AI)
	}

	st, err := m.State(s.ID)
	if err != nil {
		t.Fatal(err)
	}
	if st.Board != res.Board {
		t.Fatalf("state %s differs from play result %s", st.Board, res.Board)
	}
}

func TestPlayRejects(t *testing.T) {
	m := NewManager()
	s := m.NewGame(Config{Depth: 1})
	ctx := context.Background()

	if _, err := m.Play(ctx, "missing", mustMove(t, "a3a4")); !errors.Is(err, ErrGameNotFound) {
		t.Fatalf("unknown game: %v", err)
	}
	if _, err := m.Play(ctx, s.ID, mustMove(t, "a9a8")); !errors.Is(err, ErrNotYourPiece) {
		t.Fatalf("upper piece: %v", err)
	}
	if _, err := m.Play(ctx, s.ID, mustMove(t, "e4e5")); !errors.Is(err, ErrNotYourPiece) {
		t.Fatalf("empty square: %v", err)
	}
	if _, err := m.Play(ctx, s.ID, mustMove(t, "a3a5")); !errors.Is(err, ErrIllegalMove) {
		t.Fatalf("two-step pawn: %v", err)
	}
	st, _ := m.State(s.ID)
	if st.Plies != 0 {
		t.Fatalf("rejected moves changed the game: %+v", st)
	}
}

func TestPlayEndsGame(t *testing.T) {
	m := NewManager()
	s := m.NewGame(Config{Depth: 1})
	setBoard(t, m, s.ID, "4G4/9/9/9/9/9/9/9/9/4g4")

	res, err := m.Play(context.Background(), s.ID, mustMove(t, "e0e9"))
	if err != nil {
		t.Fatal(err)
	}
	if res.Status != StatusLowerWins || !res.AI.IsZero() || res.Legal != nil {
		t.Fatalf("unexpected result %+v", res)
	}
	if _, err := m.Play(context.Background(), s.ID, mustMove(t, "e9e8")); !errors.Is(err, ErrGameOver) {
		t.Fatalf("move after the end: %v", err)
	}
	if _, err := m.Advice(context.Background(), s.ID); !errors.Is(err, ErrGameOver) {
		t.Fatalf("advice after the end: %v", err)
	}

	// 只有人的一步，悔棋只退一步
	st, err := m.Undo(s.ID)
	if err != nil {
		t.Fatal(err)
	}
	if st.Status != StatusOngoing || st.Plies != 0 || st.ToMove != cnchess.Lower {
		t.Fatalf("after undo %+v", st)
	}
}

func TestUndoAndRemake(t *testing.T) {
	m := NewManager()
	s := m.NewGame(Config{Depth: 1})
	if _, err := m.Undo(s.ID); !errors.Is(err, ErrNothingToUndo) {
		t.Fatalf("undo at start: %v", err)
	}
	if _, err := m.Play(context.Background(), s.ID, mustMove(t, "a3a4")); err != nil {
		t.Fatal(err)
	}
	if _, err := m.Play(context.Background(), s.ID, mustMove(t, "i3i4")); err != nil {
		t.Fatal(err)
	}

	st, err := m.Undo(s.ID)
	if err != nil {
		t.Fatal(err)
	}
	if st.Plies != 2 || st.ToMove != cnchess.Lower {
		t.Fatalf("after undo %+v", st)
	}

	st, err = m.Remake(s.ID)
	if err != nil {
		t.Fatal(err)
	}
	if st.Plies != 0 || st.Board != cnchess.NewBoard().Encode() {
		t.Fatalf("after remake %+v", st)
	}
	if _, err := m.Remake("missing"); !errors.Is(err, ErrGameNotFound) {
		t.Fatalf("remake unknown: %v", err)
	}
}

func TestAdviceDoesNotMove(t *testing.T) {
	for _, parallel := range []bool{false, true} {
		m := NewManager()
		s := m.NewGame(Config{Depth: 1, Parallel: parallel})
		res, err := m.Advice(context.Background(), s.ID)
		if err != nil {
			t.Fatal(err)
		}
		b := cnchess.NewBoard()
		if !b.IsLegal(cnchess.Lower, res.BestMove) {
			t.Fatalf("advice %s is not legal", res.BestMove)
		}
		st, _ := m.State(s.ID)
		if st.Plies != 0 {
			t.Fatalf("advice played a move")
		}
	}
}

func TestPlayCanceledKeepsBoard(t *testing.T) {
	m := NewManager()
	s := m.NewGame(Config{Depth: 1, Parallel: true})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := m.Play(ctx, s.ID, mustMove(t, "a3a4")); !errors.Is(err, context.Canceled) {
		t.Fatalf("got %v, want context.Canceled", err)
	}
	st, _ := m.State(s.ID)
	if st.Plies != 0 || st.ToMove != cnchess.Lower {
		t.Fatalf("canceled play left %+v", st)
	}
}
