package cnchess

// 上、下、左、右
var lineDirs = [4]Square{-Cols, +Cols, -1, +1}

// 车：直线滑行，吃遇到的第一个敌子
func genRookMoves(b *Board, from Square, side Side, ml *MoveList) {
	enemy := side.Opponent()
	for _, d := range lineDirs {
		to := from + d
		for b.squares[to] == Empty {
			ml.add(from, to)
			to += d
		}
		if b.squares[to].Side() == enemy {
			ml.add(from, to)
		}
	}
}

// 炮：不吃子时同车；隔一个炮架吃子
func genCannonMoves(b *Board, from Square, side Side, ml *MoveList) {
	enemy := side.Opponent()
	for _, d := range lineDirs {
		to := from + d
		for b.squares[to] == Empty {
			ml.add(from, to)
			to += d
		}
		if b.squares[to] == OutOfBoard {
			continue
		}
		// to is the screen; the border is two cells wide so to+d stays in range.
		for to += d; b.squares[to] == Empty; to += d {
		}
		if b.squares[to].Side() == enemy {
			ml.add(from, to)
		}
	}
}

// 相：走田字，塞象眼不能走，不能过河。只有向前的两步需要检查河界。
func genBishopMoves(b *Board, from Square, side Side, ml *MoveList) {
	row := from.Row()
	fwd, back := Square(+Cols), Square(-Cols)
	canAdvance := row+2 <= riverUp
	if side == Lower {
		fwd, back = back, fwd
		canAdvance = row-2 >= riverDown
	}
	if canAdvance {
		tryBishopStep(b, ml, from, fwd+1)
		tryBishopStep(b, ml, from, fwd-1)
	}
	tryBishopStep(b, ml, from, back+1)
	tryBishopStep(b, ml, from, back-1)
}

func tryBishopStep(b *Board, ml *MoveList, from, diag Square) {
	if b.squares[from+diag] == Empty {
		b.tryAdd(ml, from, from+2*diag)
	}
}

var diagSteps = [4][2]int{{+1, +1}, {+1, -1}, {-1, +1}, {-1, -1}}

var orthoSteps = [4][2]int{{+1, 0}, {-1, 0}, {0, +1}, {0, -1}}

// 士：九宫内斜走一格
func genAdvisorMoves(b *Board, from Square, side Side, ml *MoveList) {
	row, col := from.Row(), from.Col()
	for _, d := range diagSteps {
		r, c := row+d[0], col+d[1]
		if inPalace(side, r, c) {
			b.tryAdd(ml, from, SquareAt(r, c))
		}
	}
}

// 将：九宫内直走一格；同一列中间无子时可以直接吃对方的将（飞将）
func genGeneralMoves(b *Board, from Square, side Side, ml *MoveList) {
	row, col := from.Row(), from.Col()
	for _, d := range orthoSteps {
		r, c := row+d[0], col+d[1]
		if inPalace(side, r, c) {
			b.tryAdd(ml, from, SquareAt(r, c))
		}
	}

	toward := Square(+Cols)
	if side == Lower {
		toward = -Cols
	}
	enemyGeneral := MakePiece(side.Opponent(), General)
	for to := from + toward; ; to += toward {
		pc := b.squares[to]
		if pc == Empty {
			continue
		}
		if pc == enemyGeneral {
			ml.add(from, to)
		}
		break
	}
}

func inPalace(side Side, row, col int) bool {
	if col < palaceLeft || col > palaceRight {
		return false
	}
	switch side {
	case Upper:
		return row >= palaceUpperTop && row <= palaceUpperBottom
	case Lower:
		return row >= palaceLowerTop && row <= palaceLowerBottom
	}
	return false
}
