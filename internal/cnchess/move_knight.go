package cnchess

// 马：每个方向一条马腿，腿上有子则该方向两个落点都走不了
var knightLegMoves = [4]struct {
	Leg Square
	To  [2]Square
}{
	{+Cols, [2]Square{2*Cols + 1, 2*Cols - 1}},
	{-Cols, [2]Square{-2*Cols + 1, -2*Cols - 1}},
	{+1, [2]Square{Cols + 2, -Cols + 2}},
	{-1, [2]Square{Cols - 2, -Cols - 2}},
}

func genKnightMoves(b *Board, from Square, ml *MoveList) {
	for _, m := range knightLegMoves {
		if b.squares[from+m.Leg] != Empty {
			continue // 憋马腿
		}
		b.tryAdd(ml, from, from+m.To[0])
		b.tryAdd(ml, from, from+m.To[1])
	}
}
