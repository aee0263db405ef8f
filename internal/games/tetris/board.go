package tetris

// Board dimensions in cells.
const (
	BoardWidth  = 10
	BoardHeight = 20
)

// Board is the playfield grid. Each cell holds 0 when empty or the
// color id of the piece that locked there. Row 0 is the top.
type Board struct {
	cells [BoardHeight][BoardWidth]int
}

// Reset clears every cell.
func (b *Board) Reset() {
	b.cells = [BoardHeight][BoardWidth]int{}
}

// Collides reports whether piece p in rotation r at position (x, y)
// overlaps a wall, the floor or a locked cell. Cells above the top of
// the board collide with walls only, so a freshly spawned piece may
// extend past row 0.
func (b *Board) Collides(p PieceType, r RotationState, x, y int) bool {
	for _, c := range ShapeOf(p, r) {
		bx := x + c.X
		by := y + c.Y
		if bx < 0 || bx >= BoardWidth {
			return true
		}
		if by >= BoardHeight {
			return true
		}
		if by >= 0 && b.cells[by][bx] != 0 {
			return true
		}
	}
	return false
}

// Lock writes the piece's color id into the cells it occupies. Cells
// above the top of the board are discarded.
func (b *Board) Lock(p PieceType, r RotationState, x, y int) {
	color := ColorOf(p)
	for _, c := range ShapeOf(p, r) {
		bx := x + c.X
		by := y + c.Y
		if by < 0 {
			continue
		}
		b.cells[by][bx] = color
	}
}

// ClearFullLines removes every fully occupied row, shifts the rows
// above it down and returns how many rows were cleared.
func (b *Board) ClearFullLines() int {
	cleared := 0
	for y := BoardHeight - 1; y >= 0; y-- {
		if !b.rowFull(y) {
			continue
		}
		for yy := y; yy > 0; yy-- {
			b.cells[yy] = b.cells[yy-1]
		}
		b.cells[0] = [BoardWidth]int{}
		cleared++
		y++ // the row shifted into this index may be full as well
	}
	return cleared
}

func (b *Board) rowFull(y int) bool {
	for x := 0; x < BoardWidth; x++ {
		if b.cells[y][x] == 0 {
			return false
		}
	}
	return true
}

// Cell returns the color id at (x, y), or 0 for out-of-range
// coordinates.
func (b *Board) Cell(x, y int) int {
	if x < 0 || x >= BoardWidth || y < 0 || y >= BoardHeight {
		return 0
	}
	return b.cells[y][x]
}

// SpawnBlocked reports whether the 2x2 area at the spawn column is
// occupied, which means the next piece cannot enter the board.
func (b *Board) SpawnBlocked() bool {
	spawnCol := BoardWidth/2 - 1
	for y := 0; y < 2; y++ {
		for x := spawnCol; x < spawnCol+2; x++ {
			if b.cells[y][x] != 0 {
				return true
			}
		}
	}
	return false
}
