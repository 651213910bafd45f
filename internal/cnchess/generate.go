package cnchess

// GenerateMoves fills ml with every pseudo-legal move of side: captures
// included, moves that leave the own general exposed not filtered. Order is
// board scan order (top-left first), then each rule's direction order.
func (b *Board) GenerateMoves(side Side, ml *MoveList) {
	ml.Reset()
	if side != Upper && side != Lower {
		return
	}
	for r := RowBegin; r < RowEnd; r++ {
		for c := ColBegin; c < ColEnd; c++ {
			sq := SquareAt(r, c)
			pc := b.squares[sq]
			if pc.Side() != side {
				continue
			}
			switch pc.Kind() {
			case Pawn:
				genPawnMoves(b, sq, side, ml)
			case Cannon:
				genCannonMoves(b, sq, side, ml)
			case Rook:
				genRookMoves(b, sq, side, ml)
			case Knight:
				genKnightMoves(b, sq, ml)
			case Bishop:
				genBishopMoves(b, sq, side, ml)
			case Advisor:
				genAdvisorMoves(b, sq, side, ml)
			case General:
				genGeneralMoves(b, sq, side, ml)
			}
		}
	}
}

// GenerateMovesForSide is GenerateMoves into a freshly allocated slice, for
// callers outside the search loop.
func (b *Board) GenerateMovesForSide(side Side) []Move {
	var ml MoveList
	b.GenerateMoves(side, &ml)
	out := make([]Move, ml.Len())
	copy(out, ml.Slice())
	return out
}

// IsLegal reports whether m moves one of side's pieces and is among the
// moves generated for side.
func (b *Board) IsLegal(side Side, m Move) bool {
	if !m.From.Interior() || !m.To.Interior() {
		return false
	}
	if b.squares[m.From].Side() != side {
		return false
	}
	var ml MoveList
	b.GenerateMoves(side, &ml)
	return ml.Contains(m)
}

// tryAdd accepts to unless it is off the board or holds a piece of the
// mover's own side.
func (b *Board) tryAdd(ml *MoveList, from, to Square) {
	dst := b.squares[to]
	if dst != OutOfBoard && dst.Side() != b.squares[from].Side() {
		ml.add(from, to)
	}
}
