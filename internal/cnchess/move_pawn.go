package cnchess

// 兵：只能向前一步；过河后可以左右各一步，永远不能后退
func genPawnMoves(b *Board, from Square, side Side, ml *MoveList) {
	row := from.Row()
	fwd := Square(+Cols)
	crossed := row > riverUp
	if side == Lower {
		fwd = -Cols
		crossed = row < riverDown
	}
	b.tryAdd(ml, from, from+fwd)
	if crossed {
		b.tryAdd(ml, from, from-1)
		b.tryAdd(ml, from, from+1)
	}
}
