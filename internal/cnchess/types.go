package cnchess

type Side int8

const (
	NoSide Side = -1 // empty square or off-board
	Upper  Side = 0
	Lower  Side = 1
)

func (s Side) Opponent() Side {
	switch s {
	case Upper:
		return Lower
	case Lower:
		return Upper
	}
	return NoSide
}

func (s Side) String() string {
	switch s {
	case Upper:
		return "upper"
	case Lower:
		return "lower"
	}
	return "none"
}

type Kind int8

const (
	KindNone Kind = iota
	Pawn          // 兵 / 卒
	Cannon        // 炮
	Rook          // 车
	Knight        // 马
	Bishop        // 相 / 象
	Advisor       // 士
	General       // 帅 / 将
)

// Piece is one of the 16 board cell values: seven kinds per side plus the
// Empty and OutOfBoard sentinels. Attributes come from fixed tables in piece.go.
type Piece int8

const (
	Empty Piece = iota
	UpperPawn
	UpperCannon
	UpperRook
	UpperKnight
	UpperBishop
	UpperAdvisor
	UpperGeneral
	LowerPawn
	LowerCannon
	LowerRook
	LowerKnight
	LowerBishop
	LowerAdvisor
	LowerGeneral
	OutOfBoard

	numPieces
)

func MakePiece(side Side, k Kind) Piece {
	if k == KindNone {
		return Empty
	}
	switch side {
	case Upper:
		return UpperPawn + Piece(k-Pawn)
	case Lower:
		return LowerPawn + Piece(k-Pawn)
	}
	return Empty
}

func (p Piece) Side() Side { return pieceSide[p] }
func (p Piece) Kind() Kind { return pieceKind[p] }

// Value is the signed material value: negative for the upper side.
func (p Piece) Value() int { return pieceValue[p] }

// PositionValue is the signed positional bonus of p standing on sq.
// sq must be an interior square.
func (p Piece) PositionValue(sq Square) int {
	return piecePosValue[p][sq.Row()-RowBegin][sq.Col()-ColBegin]
}

// Square indexes the padded 14x13 grid: row*Cols + col.
type Square int

func SquareAt(row, col int) Square { return Square(row*Cols + col) }

func (sq Square) Row() int { return int(sq) / Cols }
func (sq Square) Col() int { return int(sq) % Cols }

// Interior reports whether sq lies on the playable 10x9 area.
func (sq Square) Interior() bool {
	if sq < 0 || sq >= NumSquares {
		return false
	}
	r, c := sq.Row(), sq.Col()
	return r >= RowBegin && r < RowEnd && c >= ColBegin && c < ColEnd
}

// Move is a source/destination pair in padded board coordinates. It carries
// no validation; see Board.IsLegal.
type Move struct {
	From Square `json:"from"`
	To   Square `json:"to"`
}

// NoMove is returned when there is nothing to play.
var NoMove = Move{}

func NewMove(fromRow, fromCol, toRow, toCol int) Move {
	return Move{From: SquareAt(fromRow, fromCol), To: SquareAt(toRow, toCol)}
}

func (m Move) IsZero() bool { return m == NoMove }
