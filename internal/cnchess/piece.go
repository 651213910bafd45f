package cnchess

var pieceSide = [numPieces]Side{
	Empty:      NoSide,
	OutOfBoard: NoSide,

	UpperPawn: Upper, UpperCannon: Upper, UpperRook: Upper, UpperKnight: Upper,
	UpperBishop: Upper, UpperAdvisor: Upper, UpperGeneral: Upper,

	LowerPawn: Lower, LowerCannon: Lower, LowerRook: Lower, LowerKnight: Lower,
	LowerBishop: Lower, LowerAdvisor: Lower, LowerGeneral: Lower,
}

var pieceKind = [numPieces]Kind{
	UpperPawn: Pawn, UpperCannon: Cannon, UpperRook: Rook, UpperKnight: Knight,
	UpperBishop: Bishop, UpperAdvisor: Advisor, UpperGeneral: General,

	LowerPawn: Pawn, LowerCannon: Cannon, LowerRook: Rook, LowerKnight: Knight,
	LowerBishop: Bishop, LowerAdvisor: Advisor, LowerGeneral: General,
}

// 子力价值（下方视角，正数）
var kindValue = [...]int{
	Pawn:    100,
	Cannon:  450,
	Rook:    900,
	Knight:  400,
	Bishop:  200,
	Advisor: 200,
	General: 100000,
}

type posTable [BoardRows][BoardCols]int

// Positional bonus for the lower side, laid out as the board is printed:
// row 0 is the upper side's back rank, row 9 the lower side's.
var kindPosTable = [...]posTable{
	Pawn: {
		{0, 3, 6, 9, 12, 9, 6, 3, 0},
		{18, 36, 56, 80, 120, 80, 56, 36, 18},
		{14, 26, 42, 60, 80, 60, 42, 26, 14},
		{10, 20, 30, 34, 40, 34, 30, 20, 10},
		{6, 12, 18, 18, 20, 18, 18, 12, 6},
		{2, 0, 8, 0, 8, 0, 8, 0, 2},
		{0, 0, -2, 0, 4, 0, -2, 0, 0},
		{0, 0, 0, 0, 0, 0, 0, 0, 0},
		{0, 0, 0, 0, 0, 0, 0, 0, 0},
		{0, 0, 0, 0, 0, 0, 0, 0, 0},
	},
	Cannon: {
		{6, 4, 0, -10, -12, -10, 0, 4, 6},
		{2, 2, 0, -4, -14, -4, 0, 2, 2},
		{2, 2, 0, -10, -8, -10, 0, 2, 2},
		{0, 0, -2, 4, 10, 4, -2, 0, 0},
		{0, 0, 0, 2, 8, 2, 0, 0, 0},
		{-2, 0, 4, 2, 6, 2, 4, 0, -2},
		{0, 0, 0, 2, 4, 2, 0, 0, 0},
		{4, 0, 8, 6, 10, 6, 8, 0, 4},
		{0, 2, 4, 6, 6, 6, 4, 2, 0},
		{0, 0, 2, 6, 6, 6, 2, 0, 0},
	},
	Rook: {
		{14, 14, 12, 18, 16, 18, 12, 14, 14},
		{16, 20, 18, 24, 26, 24, 18, 20, 16},
		{12, 12, 12, 18, 18, 18, 12, 12, 12},
		{12, 18, 16, 22, 22, 22, 16, 18, 12},
		{12, 14, 12, 18, 18, 18, 12, 14, 12},
		{12, 16, 14, 20, 20, 20, 14, 16, 12},
		{6, 10, 8, 14, 14, 14, 8, 10, 6},
		{4, 8, 6, 14, 12, 14, 6, 8, 4},
		{8, 4, 8, 16, 8, 16, 8, 4, 8},
		{-2, 10, 6, 14, 12, 14, 6, 10, -2},
	},
	Knight: {
		{4, 8, 16, 12, 4, 12, 16, 8, 4},
		{4, 10, 28, 16, 8, 16, 28, 10, 4},
		{12, 14, 16, 20, 18, 20, 16, 14, 12},
		{8, 24, 18, 24, 20, 24, 18, 24, 8},
		{6, 16, 14, 18, 16, 18, 14, 16, 6},
		{4, 12, 16, 14, 12, 14, 16, 12, 4},
		{2, 6, 8, 6, 10, 6, 8, 6, 2},
		{4, 2, 8, 8, 4, 8, 8, 2, 4},
		{0, 2, 4, 4, -2, 4, 4, 2, 0},
		{0, -4, 0, 0, 0, 0, 0, -4, 0},
	},
	Bishop: {
		5: {0, 0, -2, 0, 0, 0, -2, 0, 0},
		7: {-2, 0, 0, 0, 3, 0, 0, 0, -2},
	},
	Advisor: {
		8: {0, 0, 0, 0, 3, 0, 0, 0, 0},
	},
	General: {
		7: {0, 0, 0, -9, -9, -9, 0, 0, 0},
		8: {0, 0, 0, -8, -8, -8, 0, 0, 0},
		9: {0, 0, 0, 1, 5, 1, 0, 0, 0},
	},
}

var (
	pieceValue    [numPieces]int
	piecePosValue [numPieces]posTable
)

func init() {
	buildPieceTables()
}

// Upper-side entries are the lower-side ones mirrored across the river and
// negated, so a mirrored position always scores zero.
func buildPieceTables() {
	for k := Pawn; k <= General; k++ {
		lower, upper := MakePiece(Lower, k), MakePiece(Upper, k)
		pieceValue[lower] = kindValue[k]
		pieceValue[upper] = -kindValue[k]
		for r := 0; r < BoardRows; r++ {
			for c := 0; c < BoardCols; c++ {
				v := kindPosTable[k][r][c]
				piecePosValue[lower][r][c] = v
				piecePosValue[upper][BoardRows-1-r][c] = -v
			}
		}
	}
}
