package cnchess

// GeneralExists reports whether side's general still stands in its palace.
func (b *Board) GeneralExists(side Side) bool {
	top, bottom := palaceUpperTop, palaceUpperBottom
	if side == Lower {
		top, bottom = palaceLowerTop, palaceLowerBottom
	} else if side != Upper {
		return false
	}
	general := MakePiece(side, General)
	for r := top; r <= bottom; r++ {
		for c := palaceLeft; c <= palaceRight; c++ {
			if b.squares[SquareAt(r, c)] == general {
				return true
			}
		}
	}
	return false
}

// Winner returns NoSide while both generals are on the board; otherwise the
// side whose general survived. Both missing cannot happen in play and is
// reported as a win for Lower.
func (b *Board) Winner() Side {
	upper, lower := b.GeneralExists(Upper), b.GeneralExists(Lower)
	switch {
	case upper && lower:
		return NoSide
	case upper:
		return Upper
	default:
		return Lower
	}
}
