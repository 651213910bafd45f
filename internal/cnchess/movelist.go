package cnchess

// MaxMoves bounds the moves one side can have in a single position.
const MaxMoves = 256

// MoveList is a fixed-capacity move buffer. Search keeps one per frame on
// the stack, so generation does not allocate.
type MoveList struct {
	moves [MaxMoves]Move
	n     int
}

func (ml *MoveList) Reset() { ml.n = 0 }
func (ml *MoveList) Len() int { return ml.n }
func (ml *MoveList) At(i int) Move { return ml.moves[i] }

// Slice aliases the underlying buffer; it is invalidated by the next
// generation into the same list.
func (ml *MoveList) Slice() []Move { return ml.moves[:ml.n] }

func (ml *MoveList) Contains(m Move) bool {
	for i := 0; i < ml.n; i++ {
		if ml.moves[i] == m {
			return true
		}
	}
	return false
}

func (ml *MoveList) add(from, to Square) {
	if ml.n == MaxMoves {
		panic("cnchess: move list overflow")
	}
	ml.moves[ml.n] = Move{From: from, To: to}
	ml.n++
}
