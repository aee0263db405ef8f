package tetris

// PieceType identifies one of the seven tetromino kinds.
type PieceType int

const (
	PieceI PieceType = iota
	PieceO
	PieceT
	PieceS
	PieceZ
	PieceJ
	PieceL

	// PieceCount is the number of distinct tetrominoes.
	PieceCount = 7
)

// RotationState is one of the four clockwise orientations of a piece.
type RotationState int

const (
	Rot0 RotationState = iota
	Rot90
	Rot180
	Rot270

	rotationCount = 4
)

// Cell is a position inside a piece's 4x4 bounding grid, or an offset
// relative to the board once the piece position is added.
type Cell struct {
	X, Y int
}

// Shape lists the four occupied cells of a piece in one orientation.
type Shape [4]Cell

// pieceShapes holds every orientation of every piece. Offsets are
// within a 4x4 grid anchored at the piece position's top-left corner.
var pieceShapes = [PieceCount][rotationCount]Shape{
	PieceI: {
		Rot0:   {{0, 1}, {1, 1}, {2, 1}, {3, 1}},
		Rot90:  {{2, 0}, {2, 1}, {2, 2}, {2, 3}},
		Rot180: {{0, 2}, {1, 2}, {2, 2}, {3, 2}},
		Rot270: {{1, 0}, {1, 1}, {1, 2}, {1, 3}},
	},
	PieceO: {
		Rot0:   {{1, 0}, {2, 0}, {1, 1}, {2, 1}},
		Rot90:  {{1, 0}, {2, 0}, {1, 1}, {2, 1}},
		Rot180: {{1, 0}, {2, 0}, {1, 1}, {2, 1}},
		Rot270: {{1, 0}, {2, 0}, {1, 1}, {2, 1}},
	},
	PieceT: {
		Rot0:   {{1, 0}, {0, 1}, {1, 1}, {2, 1}},
		Rot90:  {{1, 0}, {1, 1}, {2, 1}, {1, 2}},
		Rot180: {{0, 1}, {1, 1}, {2, 1}, {1, 2}},
		Rot270: {{1, 0}, {0, 1}, {1, 1}, {1, 2}},
	},
	PieceS: {
		Rot0:   {{1, 0}, {2, 0}, {0, 1}, {1, 1}},
		Rot90:  {{1, 0}, {1, 1}, {2, 1}, {2, 2}},
		Rot180: {{1, 1}, {2, 1}, {0, 2}, {1, 2}},
		Rot270: {{0, 0}, {0, 1}, {1, 1}, {1, 2}},
	},
	PieceZ: {
		Rot0:   {{0, 0}, {1, 0}, {1, 1}, {2, 1}},
		Rot90:  {{2, 0}, {1, 1}, {2, 1}, {1, 2}},
		Rot180: {{0, 1}, {1, 1}, {1, 2}, {2, 2}},
		Rot270: {{1, 0}, {0, 1}, {1, 1}, {0, 2}},
	},
	PieceJ: {
		Rot0:   {{0, 0}, {0, 1}, {1, 1}, {2, 1}},
		Rot90:  {{1, 0}, {2, 0}, {1, 1}, {1, 2}},
		Rot180: {{0, 1}, {1, 1}, {2, 1}, {2, 2}},
		Rot270: {{1, 0}, {1, 1}, {0, 2}, {1, 2}},
	},
	PieceL: {
		Rot0:   {{2, 0}, {0, 1}, {1, 1}, {2, 1}},
		Rot90:  {{1, 0}, {1, 1}, {1, 2}, {2, 2}},
		Rot180: {{0, 1}, {1, 1}, {2, 1}, {0, 2}},
		Rot270: {{0, 0}, {1, 0}, {1, 1}, {1, 2}},
	},
}

// pieceColors maps a piece to the non-zero color id stored in locked
// board cells. Zero always means an empty cell.
var pieceColors = [PieceCount]int{
	PieceI: 1,
	PieceO: 2,
	PieceT: 3,
	PieceS: 4,
	PieceZ: 5,
	PieceJ: 6,
	PieceL: 7,
}

var pieceNames = [PieceCount]string{
	PieceI: "I-piece",
	PieceO: "O-piece",
	PieceT: "T-piece",
	PieceS: "S-piece",
	PieceZ: "Z-piece",
	PieceJ: "J-piece",
	PieceL: "L-piece",
}

// ShapeOf returns the occupied cells of p in rotation r.
func ShapeOf(p PieceType, r RotationState) Shape {
	return pieceShapes[p][r]
}

// ColorOf returns the board color id for p.
func ColorOf(p PieceType) int {
	return pieceColors[p]
}

// RotateCW returns the next clockwise orientation after r.
func RotateCW(r RotationState) RotationState {
	return (r + 1) % rotationCount
}

func (p PieceType) String() string {
	if p < 0 || p >= PieceCount {
		return "unknown"
	}
	return pieceNames[p]
}
