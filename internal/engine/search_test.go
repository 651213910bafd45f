package engine

import (
	"context"
	"errors"
	"math"
	"testing"

	"cnchess/internal/cnchess"
)

func mustDecode(t *testing.T, s string) *cnchess.Board {
	t.Helper()
	b, err := cnchess.DecodeBoard(s)
	if err != nil {
		t.Fatalf("decode %q: %v", s, err)
	}
	return b
}

// 不剪枝的极小极大，用来对照
func plainMinimax(b *cnchess.Board, depth int, side cnchess.Side) int {
	if depth <= 0 || b.HistoryFull() {
		return Evaluate(b)
	}
	best := worstScore(side)
	for _, m := range b.GenerateMovesForSide(side) {
		if err := b.Apply(m); err != nil {
			panic(err)
		}
		score := plainMinimax(b, depth-1, side.Opponent())
		b.Undo()
		if side == cnchess.Upper {
			best = min(best, score)
		} else {
			best = max(best, score)
		}
	}
	return best
}

func TestEvaluateOpeningIsZero(t *testing.T) {
	if got := Evaluate(cnchess.NewBoard()); got != 0 {
		t.Fatalf("opening score = %d, want 0", got)
	}
}

func TestEvaluateMaterialSign(t *testing.T) {
	b := cnchess.NewBoard()
	// 去掉上方 a9 的车
	if err := b.Put(cnchess.RowBegin, cnchess.ColBegin, cnchess.Empty); err != nil {
		t.Fatal(err)
	}
	if got := Evaluate(b); got <= 0 {
		t.Fatalf("upper missing a rook scores %d, want > 0", got)
	}

	b = cnchess.NewBoard()
	if err := b.Put(cnchess.RowEnd-1, cnchess.ColBegin, cnchess.Empty); err != nil {
		t.Fatal(err)
	}
	if got := Evaluate(b); got >= 0 {
		t.Fatalf("lower missing a rook scores %d, want < 0", got)
	}
}

func TestAlphaBetaMatchesPlainMinimax(t *testing.T) {
	positions := []struct {
		name  string
		board string
		depth int
	}{
		{"opening", "RNBAGABNR/9/1C5C1/P1P1P1P1P/9/9/p1p1p1p1p/1c5c1/9/rnbagabnr", 3},
		{"middlegame", "2BAGAB2/9/1CN3N2/P1P1R1P1P/9/4c4/p1p3p1p/4n2r1/9/2bagab2", 3},
		{"endgame", "3AG4/4A4/9/4P4/9/2R6/9/4c4/4a4/3g5", 4},
	}
	for _, p := range positions {
		t.Run(p.name, func(t *testing.T) {
			for depth := 1; depth <= p.depth; depth++ {
				for _, side := range []cnchess.Side{cnchess.Upper, cnchess.Lower} {
					b := mustDecode(t, p.board)
					before := b.Squares()
					want := plainMinimax(b, depth, side)
					got := NewEngine().Minimax(b, depth, math.MinInt, math.MaxInt, side)
					if got != want {
						t.Fatalf("depth %d %v: alpha-beta %d, minimax %d", depth, side, got, want)
					}
					if b.Squares() != before || b.HistoryLen() != 0 {
						t.Fatalf("search left the board modified")
					}
				}
			}
		})
	}
}

func TestMinimaxDepthZeroIsEvaluate(t *testing.T) {
	b := mustDecode(t, "3AG4/4A4/9/4P4/9/2R6/9/4c4/4a4/3g5")
	got := NewEngine().Minimax(b, 0, math.MinInt, math.MaxInt, cnchess.Upper)
	if got != Evaluate(b) {
		t.Fatalf("depth 0 = %d, Evaluate = %d", got, Evaluate(b))
	}
}

func TestBestMoveCapturesHangingRook(t *testing.T) {
	b := mustDecode(t, "5G3/9/9/9/4R4/9/9/4r4/9/3g5")
	m := NewEngine().BestMove(b, cnchess.Lower, 1)
	if m.String() != "e2e5" {
		t.Fatalf("best move = %s, want e2e5", m)
	}
}

func TestBestMoveFlyingGeneral(t *testing.T) {
	b := mustDecode(t, "4G4/9/9/9/9/9/9/9/9/4g4")
	if m := NewEngine().BestMove(b, cnchess.Lower, 1); m.String() != "e0e9" {
		t.Fatalf("lower best move = %s, want e0e9", m)
	}
	if m := NewEngine().BestMove(b, cnchess.Upper, 1); m.String() != "e9e0" {
		t.Fatalf("upper best move = %s, want e9e0", m)
	}
}

func TestBestMoveLeavesBoardUntouched(t *testing.T) {
	b := cnchess.NewBoard()
	if err := b.Apply(cnchess.Move{From: cnchess.SquareAt(9, 3), To: cnchess.SquareAt(9, 6)}); err != nil {
		t.Fatal(err)
	}
	before := b.Squares()
	m := NewEngine().BestMove(b, cnchess.Upper, 2)
	if !b.IsLegal(cnchess.Upper, m) {
		t.Fatalf("best move %s is not legal", m)
	}
	if b.Squares() != before || b.HistoryLen() != 1 {
		t.Fatalf("board changed by search")
	}
}

func TestBestMoveWithoutSide(t *testing.T) {
	if m := NewEngine().BestMove(cnchess.NewBoard(), cnchess.NoSide, 2); !m.IsZero() {
		t.Fatalf("NoSide best move = %s", m)
	}
}

func TestBestMoveWithoutPieces(t *testing.T) {
	b := mustDecode(t, "4G4/9/9/9/9/9/9/9/9/9")
	if m := NewEngine().BestMove(b, cnchess.Lower, 2); !m.IsZero() {
		t.Fatalf("lower has no pieces but got %s", m)
	}
}

func TestImprovesKeepsLaterTie(t *testing.T) {
	cases := []struct {
		side             cnchess.Side
		score, incumbent int
		want             bool
	}{
		{cnchess.Upper, 5, 5, true},
		{cnchess.Upper, 4, 5, true},
		{cnchess.Upper, 6, 5, false},
		{cnchess.Lower, 5, 5, true},
		{cnchess.Lower, 6, 5, true},
		{cnchess.Lower, 4, 5, false},
	}
	for _, tc := range cases {
		if got := improves(tc.side, tc.score, tc.incumbent); got != tc.want {
			t.Errorf("improves(%v, %d, %d) = %v", tc.side, tc.score, tc.incumbent, got)
		}
	}
}

func TestSearchReportsStats(t *testing.T) {
	e := NewEngine()
	res := e.Search(cnchess.NewBoard(), SearchConfig{Side: cnchess.Lower, Depth: 1})
	if res.BestMove.IsZero() || res.Depth != 1 {
		t.Fatalf("unexpected result %+v", res)
	}
	if res.Nodes <= 44 || res.Nodes != e.Nodes() {
		t.Fatalf("nodes = %d (engine %d)", res.Nodes, e.Nodes())
	}
}

func TestSearchConfigDefaults(t *testing.T) {
	cfg := SearchConfig{Side: cnchess.Upper}.withDefaults()
	if cfg.Depth != DefaultDepth || cfg.Workers <= 0 {
		t.Fatalf("defaults not applied: %+v", cfg)
	}
	cfg = SearchConfig{Depth: 2, Workers: 3}.withDefaults()
	if cfg.Depth != 2 || cfg.Workers != 3 {
		t.Fatalf("explicit values overwritten: %+v", cfg)
	}
}

func TestSearchNearMoveLimit(t *testing.T) {
	b := cnchess.NewBoard()
	out := cnchess.NewMove(11, 2, 10, 2)
	back := cnchess.NewMove(10, 2, 11, 2)
	for i := 0; i < cnchess.HistoryCap-1; i++ {
		m := out
		if i%2 == 1 {
			m = back
		}
		if err := b.Apply(m); err != nil {
			t.Fatal(err)
		}
	}
	before := b.Squares()
	res := NewEngine().Search(b, SearchConfig{Side: cnchess.Upper, Depth: 3})
	if res.BestMove.IsZero() {
		t.Fatalf("expected a move with one ply of history left")
	}
	if b.Squares() != before || b.HistoryLen() != cnchess.HistoryCap-1 {
		t.Fatalf("search changed the board")
	}

	if err := b.Apply(res.BestMove); err != nil {
		t.Fatal(err)
	}
	if res := NewEngine().Search(b, SearchConfig{Side: cnchess.Lower, Depth: 3}); !res.BestMove.IsZero() {
		t.Fatalf("full history should yield no move, got %s", res.BestMove)
	}
}

func TestSearchParallelMatchesSearch(t *testing.T) {
	boards := []string{
		"RNBAGABNR/9/1C5C1/P1P1P1P1P/9/9/p1p1p1p1p/1c5c1/9/rnbagabnr",
		"2BAGAB2/9/1CN3N2/P1P1R1P1P/9/4c4/p1p3p1p/4n2r1/9/2bagab2",
	}
	for _, s := range boards {
		for _, side := range []cnchess.Side{cnchess.Upper, cnchess.Lower} {
			cfg := SearchConfig{Side: side, Depth: 2, Workers: 4}
			serial := NewEngine().Search(mustDecode(t, s), cfg)

			b := mustDecode(t, s)
			before := b.Squares()
			eng := NewEngine()
			par, err := eng.SearchParallel(context.Background(), b, cfg)
			if err != nil {
				t.Fatal(err)
			}
			if eng.Nodes() != par.Nodes {
				t.Fatalf("engine reports %d nodes, result %d", eng.Nodes(), par.Nodes)
			}
			if par.BestMove != serial.BestMove || par.Score != serial.Score || par.Nodes != serial.Nodes {
				t.Fatalf("%v: parallel %s/%d/%d, serial %s/%d/%d", side,
					par.BestMove, par.Score, par.Nodes, serial.BestMove, serial.Score, serial.Nodes)
			}
			if b.Squares() != before {
				t.Fatalf("parallel search modified the board")
			}
		}
	}
}

func TestSearchParallelCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := NewEngine().SearchParallel(ctx, cnchess.NewBoard(), SearchConfig{Side: cnchess.Lower, Depth: 2})
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("got %v, want context.Canceled", err)
	}
}
