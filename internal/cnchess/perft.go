package cnchess

// Perft counts the leaf positions reachable in depth plies with side to
// move first. Moves that would overflow the history are not counted.
func (b *Board) Perft(side Side, depth int) int64 {
	if depth <= 0 {
		return 1
	}
	var ml MoveList
	b.GenerateMoves(side, &ml)
	if depth == 1 {
		return int64(ml.Len())
	}
	var n int64
	for i := 0; i < ml.Len(); i++ {
		if b.Apply(ml.At(i)) != nil {
			continue
		}
		n += b.Perft(side.Opponent(), depth-1)
		b.Undo()
	}
	return n
}
