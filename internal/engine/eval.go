package engine

import "cnchess/internal/cnchess"

// Evaluate sums material and positional value over the board. Upper pieces
// count negative and lower pieces positive, so the same number serves both
// the minimizing and the maximizing side.
func Evaluate(b *cnchess.Board) int {
	score := 0
	for r := cnchess.RowBegin; r < cnchess.RowEnd; r++ {
		for c := cnchess.ColBegin; c < cnchess.ColEnd; c++ {
			sq := cnchess.SquareAt(r, c)
			pc := b.At(sq)
			if pc == cnchess.Empty {
				continue
			}
			score += pc.Value() + pc.PositionValue(sq)
		}
	}
	return score
}
