package cnchess

import "errors"

var ErrInvalidMove = errors.New("invalid move notation")

// 记谱：文件 a..i 从左到右，等级 0..9 从下往上（9 为上方底线），例如 "b2e2"
func rankOf(row int) int { return BoardRows - 1 - (row - RowBegin) }
func rowOfRank(rank int) int { return BoardRows - 1 - rank + RowBegin }

// ParseMove converts four-character file/rank text such as "b2e2" into a Move.
func ParseMove(s string) (Move, error) {
	if len(s) != 4 {
		return NoMove, ErrInvalidMove
	}
	from, ok1 := parseSquare(s[0], s[1])
	to, ok2 := parseSquare(s[2], s[3])
	if !ok1 || !ok2 {
		return NoMove, ErrInvalidMove
	}
	return Move{From: from, To: to}, nil
}

func parseSquare(file, rank byte) (Square, bool) {
	if file < 'a' || file > 'i' || rank < '0' || rank > '9' {
		return 0, false
	}
	return SquareAt(rowOfRank(int(rank-'0')), ColBegin+int(file-'a')), true
}

func (sq Square) String() string {
	if !sq.Interior() {
		return "??"
	}
	return string([]byte{byte('a' + sq.Col() - ColBegin), byte('0' + rankOf(sq.Row()))})
}

func (m Move) String() string { return m.From.String() + m.To.String() }
