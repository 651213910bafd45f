package cnchess

import (
	"errors"
	"strings"
)

// p 兵, c 炮, r 车, n 马, b 相, a 士, g 将；大写为上方
const kindLetters = ".pcrnbag"

var ErrInvalidBoard = errors.New("invalid board encoding")

func pieceFromChar(ch byte) (Piece, bool) {
	side := Lower
	if ch >= 'A' && ch <= 'Z' {
		side = Upper
		ch += 'a' - 'A'
	}
	k := strings.IndexByte(kindLetters, ch)
	if k <= 0 {
		return Empty, false
	}
	return MakePiece(side, Kind(k)), true
}

// Char is the one-letter form of p as used by Encode and String.
func (p Piece) Char() byte {
	switch p {
	case Empty:
		return '.'
	case OutOfBoard:
		return '#'
	}
	ch := kindLetters[p.Kind()]
	if p.Side() == Upper {
		ch -= 'a' - 'A'
	}
	return ch
}

func (p Piece) String() string { return string(p.Char()) }

// Encode writes the interior rows top to bottom separated by '/', with runs
// of empty squares compressed to digits.
func (b *Board) Encode() string {
	var sb strings.Builder
	for r := RowBegin; r < RowEnd; r++ {
		if r > RowBegin {
			sb.WriteByte('/')
		}
		empty := 0
		for c := ColBegin; c < ColEnd; c++ {
			pc := b.squares[SquareAt(r, c)]
			if pc == Empty {
				empty++
				continue
			}
			if empty > 0 {
				sb.WriteByte(byte('0' + empty))
				empty = 0
			}
			sb.WriteByte(pc.Char())
		}
		if empty > 0 {
			sb.WriteByte(byte('0' + empty))
		}
	}
	return sb.String()
}

// DecodeBoard parses the output of Encode into a board with empty history.
// '.' is accepted as a single empty square.
func DecodeBoard(s string) (*Board, error) {
	rows := strings.Split(strings.TrimSpace(s), "/")
	if len(rows) != BoardRows {
		return nil, ErrInvalidBoard
	}
	b := NewEmptyBoard()
	for i, row := range rows {
		c := 0
		for j := 0; j < len(row); j++ {
			if c >= BoardCols {
				return nil, ErrInvalidBoard
			}
			ch := row[j]
			switch {
			case ch >= '1' && ch <= '9':
				c += int(ch - '0')
				continue
			case ch == '.':
				c++
				continue
			}
			pc, ok := pieceFromChar(ch)
			if !ok {
				return nil, ErrInvalidBoard
			}
			b.squares[SquareAt(RowBegin+i, ColBegin+c)] = pc
			c++
		}
		if c != BoardCols {
			return nil, ErrInvalidBoard
		}
	}
	return b, nil
}

// String renders the board with rank digits on the left and file letters
// underneath, upper side at the top.
func (b *Board) String() string {
	var sb strings.Builder
	for r := RowBegin; r < RowEnd; r++ {
		sb.WriteByte(byte('0' + rankOf(r)))
		sb.WriteByte(' ')
		for c := ColBegin; c < ColEnd; c++ {
			sb.WriteByte(b.squares[SquareAt(r, c)].Char())
		}
		sb.WriteByte('\n')
	}
	sb.WriteString("  abcdefghi\n")
	return sb.String()
}
