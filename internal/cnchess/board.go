package cnchess

import (
	"errors"
	"strings"
)

// The 10x9 board is padded with two OutOfBoard rows/columns on every edge so
// that move rules can step up to two cells away without bounds checks.
const (
	Rows       = 14
	Cols       = 13
	NumSquares = Rows * Cols

	BoardRows = 10
	BoardCols = 9
	RowBegin  = 2
	ColBegin  = 2
	RowEnd    = RowBegin + BoardRows // exclusive
	ColEnd    = ColBegin + BoardCols // exclusive

	// 兵过河：上方兵 row > riverUp，下方兵 row < riverDown
	riverUp   = RowBegin + 4
	riverDown = RowBegin + 5

	palaceUpperTop    = RowBegin
	palaceUpperBottom = RowBegin + 2
	palaceLowerTop    = RowBegin + 7
	palaceLowerBottom = RowBegin + 9
	palaceLeft        = ColBegin + 3
	palaceRight       = ColBegin + 5

	// HistoryCap bounds the number of plies one game may record.
	HistoryCap = 1024
)

var (
	// ErrMoveLimit means the history is full; the game is a forced draw.
	ErrMoveLimit = errors.New("move limit reached: game drawn")
	ErrOffBoard  = errors.New("move touches a square outside the board")
)

type undoEntry struct {
	move     Move
	moved    Piece
	captured Piece
}

// Board is the grid plus the undo log. Apply and Undo are the only ways a
// game mutates it, so every change is recorded.
type Board struct {
	squares    [NumSquares]Piece
	history    [HistoryCap]undoEntry
	historyLen int
}

// 开局模板：# 棋盘外，. 空位，大写为上方
const openingTemplate = `#############
#############
##RNBAGABNR##
##.........##
##.C.....C.##
##P.P.P.P.P##
##.........##
##.........##
##p.p.p.p.p##
##.c.....c.##
##.........##
##rnbagabnr##
#############
#############`

var openingSquares = parseTemplate(openingTemplate)

func parseTemplate(s string) [NumSquares]Piece {
	var sq [NumSquares]Piece
	lines := strings.Split(s, "\n")
	if len(lines) != Rows {
		panic("cnchess: opening template must have 14 rows")
	}
	for r, line := range lines {
		if len(line) != Cols {
			panic("cnchess: opening template row must have 13 columns")
		}
		for c := 0; c < Cols; c++ {
			var pc Piece
			switch ch := line[c]; ch {
			case '#':
				pc = OutOfBoard
			case '.':
				pc = Empty
			default:
				var ok bool
				if pc, ok = pieceFromChar(ch); !ok {
					panic("cnchess: unknown piece letter in template: " + string(ch))
				}
			}
			sq[SquareAt(r, c)] = pc
		}
	}
	return sq
}

// NewBoard returns a board with the standard opening layout and no history.
func NewBoard() *Board {
	b := &Board{}
	b.squares = openingSquares
	return b
}

// NewEmptyBoard returns a board with no pieces on it.
func NewEmptyBoard() *Board {
	b := &Board{}
	for sq := Square(0); sq < NumSquares; sq++ {
		if sq.Interior() {
			b.squares[sq] = Empty
		} else {
			b.squares[sq] = OutOfBoard
		}
	}
	return b
}

func (b *Board) At(sq Square) Piece {
	if sq < 0 || sq >= NumSquares {
		return OutOfBoard
	}
	return b.squares[sq]
}

func (b *Board) PieceAt(row, col int) Piece {
	if row < 0 || row >= Rows || col < 0 || col >= Cols {
		return OutOfBoard
	}
	return b.squares[SquareAt(row, col)]
}

// Put places p on an interior cell without touching the history. It is
// meant for setting up positions, not for playing moves.
func (b *Board) Put(row, col int, p Piece) error {
	sq := SquareAt(row, col)
	if row < 0 || row >= Rows || col < 0 || col >= Cols || !sq.Interior() {
		return ErrOffBoard
	}
	if p == OutOfBoard {
		return ErrOffBoard
	}
	b.squares[sq] = p
	return nil
}

// Squares returns a copy of the whole padded grid.
func (b *Board) Squares() [NumSquares]Piece { return b.squares }

// Apply records m in the history and moves the piece; no rules are checked.
// Once the history is full it returns ErrMoveLimit and leaves the board as is.
func (b *Board) Apply(m Move) error {
	if !m.From.Interior() || !m.To.Interior() {
		return ErrOffBoard
	}
	if b.historyLen == HistoryCap {
		return ErrMoveLimit
	}
	moved, captured := b.squares[m.From], b.squares[m.To]
	b.history[b.historyLen] = undoEntry{move: m, moved: moved, captured: captured}
	b.historyLen++

	b.squares[m.From] = Empty
	b.squares[m.To] = moved
	return nil
}

// Undo takes back the last applied move. It reports false when there is
// nothing to undo.
func (b *Board) Undo() bool {
	if b.historyLen == 0 {
		return false
	}
	b.historyLen--
	h := &b.history[b.historyLen]
	b.squares[h.move.From] = h.moved
	b.squares[h.move.To] = h.captured
	return true
}

func (b *Board) HistoryLen() int { return b.historyLen }

// HistoryFull reports whether the next Apply would hit the move limit.
func (b *Board) HistoryFull() bool { return b.historyLen == HistoryCap }

func (b *Board) LastMove() (Move, bool) {
	if b.historyLen == 0 {
		return NoMove, false
	}
	return b.history[b.historyLen-1].move, true
}

// Clone returns an independent copy, history included.
func (b *Board) Clone() *Board {
	nb := *b
	return &nb
}
