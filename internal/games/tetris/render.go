package tetris

import (
	"fmt"
	"unicode/utf8"

	"github.com/vovakirdan/ntris/internal/core"
)

// Screen layout. Board cells are two runes wide so the well reads
// roughly square in a terminal font.
const (
	cellW = 2

	boardBoxW = BoardWidth*cellW + 2
	boardBoxH = BoardHeight + 2

	statsBoxW = 20
	statsBoxH = boardBoxH

	layoutGap = 1
	layoutW   = boardBoxW + layoutGap + statsBoxW
	layoutH   = boardBoxH
)

// Cell glyphs, two runes each.
const (
	glyphBlock = "██"
	glyphEmpty = "··"
	glyphGhost = "[]"
)

// colorForID maps locked-cell color ids to terminal colors. Index 0 is
// unused since 0 means an empty cell.
var colorForID = [PieceCount + 1]core.Color{
	core.ColorDefault,
	core.ColorCyan,    // I
	core.ColorYellow,  // O
	core.ColorMagenta, // T
	core.ColorGreen,   // S
	core.ColorRed,     // Z
	core.ColorBlue,    // J
	core.ColorOrange,  // L
}

// Render draws the current frame into the screen buffer.
func (g *Game) Render(dst *core.Screen) {
	if dst.Width() < layoutW || dst.Height() < layoutH {
		g.renderTooSmall(dst)
		return
	}

	ox := (dst.Width() - layoutW) / 2
	oy := (dst.Height() - layoutH) / 2

	boardBox := core.NewRect(ox, oy, boardBoxW, boardBoxH)
	statsBox := core.NewRect(ox+boardBoxW+layoutGap, oy, statsBoxW, statsBoxH)
	dst.DrawBox(boardBox)
	dst.DrawBox(statsBox)

	if g.state == StateStartScreen {
		g.renderStartScreen(dst, boardBox)
		g.renderStats(dst, statsBox)
		return
	}

	g.renderBoard(dst, boardBox)
	g.renderStats(dst, statsBox)

	switch g.state {
	case StatePaused:
		g.drawOverlay(dst, []string{"PAUSED", "", "Press P to resume"})
	case StateGameOver:
		g.renderGameOver(dst)
	}
}

func (g *Game) renderTooSmall(dst *core.Screen) {
	dst.DrawTextCentered(dst.Height()/2, "Terminal too small")
	dst.DrawTextCentered(dst.Height()/2+1, fmt.Sprintf("Need at least %dx%d", layoutW, layoutH))
}

func (g *Game) renderBoard(dst *core.Screen, box core.Rect) {
	ox := box.X + 1
	oy := box.Y + 1

	for y := 0; y < BoardHeight; y++ {
		for x := 0; x < BoardWidth; x++ {
			if id := g.board.Cell(x, y); id != 0 {
				dst.DrawTextColor(ox+x*cellW, oy+y, glyphBlock, colorForID[id])
			} else {
				dst.DrawTextColor(ox+x*cellW, oy+y, glyphEmpty, core.ColorGray)
			}
		}
	}

	// The falling piece and its ghost only exist during play. Piece
	// cells above the top of the board are not drawn.
	if g.state != StatePlaying {
		return
	}

	shape := ShapeOf(g.current, g.rotation)

	if ghostY := g.GhostY(); ghostY != g.y {
		for _, c := range shape {
			py := ghostY + c.Y
			if py < 0 || py >= BoardHeight {
				continue
			}
			dst.DrawTextColor(ox+(g.x+c.X)*cellW, oy+py, glyphGhost, core.ColorGray)
		}
	}

	color := colorForID[ColorOf(g.current)]
	for _, c := range shape {
		py := g.y + c.Y
		if py < 0 || py >= BoardHeight {
			continue
		}
		dst.DrawTextColor(ox+(g.x+c.X)*cellW, oy+py, glyphBlock, color)
	}
}

func (g *Game) renderStats(dst *core.Screen, box core.Rect) {
	ox := box.X + 1
	oy := box.Y + 1

	dst.DrawText(ox+1, oy, "NEXT")
	if g.state != StateGameOver {
		color := colorForID[ColorOf(g.next)]
		for _, c := range ShapeOf(g.next, Rot0) {
			dst.DrawTextColor(ox+2+c.X*cellW, oy+2+c.Y, glyphBlock, color)
		}
	}

	stats := []struct {
		label string
		value int
	}{
		{"SCORE", g.score},
		{"HIGH SCORE", g.sessionHigh},
		{"LEVEL", g.level},
		{"LINES", g.lines},
	}
	y := oy + 8
	for _, s := range stats {
		dst.DrawText(ox+1, y, s.label)
		dst.DrawText(ox+1, y+1, fmt.Sprintf("%d", s.value))
		y += 3
	}
}

func (g *Game) renderStartScreen(dst *core.Screen, box core.Rect) {
	ox := box.X + 1
	oy := box.Y + 1
	w := box.W - 2

	center := func(y int, text string) {
		dst.DrawText(ox+(w-utf8.RuneCountInString(text))/2, oy+y, text)
	}

	center(2, "N T R I S")
	center(4, "NES-style Tetris")

	center(6, "CONTROLS")
	dst.DrawText(ox+1, oy+7, "Arrows: Move/Rotate")
	dst.DrawText(ox+1, oy+8, "Space:  Hard Drop")
	dst.DrawText(ox+1, oy+9, "P:      Pause")
	dst.DrawText(ox+1, oy+10, "Q:      Quit")

	minLevel := g.tuning.Leveling.MinStartLevel
	maxLevel := g.tuning.Leveling.MaxStartLevel
	center(12, fmt.Sprintf("SELECT LEVEL (%d-%d)", minLevel, maxLevel))

	for level := minLevel; level <= maxLevel; level++ {
		row := (level - minLevel) / levelGridCols
		col := (level - minLevel) % levelGridCols
		x := ox + col*4
		y := oy + 14 + row
		if level == g.selectedLevel {
			dst.DrawTextColor(x, y, fmt.Sprintf("[%2d]", level), core.ColorYellow)
		} else {
			dst.DrawText(x, y, fmt.Sprintf(" %2d ", level))
		}
	}

	center(17, "Press ENTER to start")
}

func (g *Game) renderGameOver(dst *core.Screen) {
	lines := []string{
		"GAME OVER",
		"",
		fmt.Sprintf("Final Score: %d", g.score),
	}
	if g.score == g.sessionHigh && g.score > 0 {
		lines = append(lines, "NEW SESSION HIGH!")
	} else {
		lines = append(lines, fmt.Sprintf("High Score: %d", g.sessionHigh))
	}
	lines = append(lines, "", "Press ENTER to play again", "Press Q to quit")
	g.drawOverlay(dst, lines)
}

// drawOverlay clears a centered box and draws lines of text inside it.
func (g *Game) drawOverlay(dst *core.Screen, lines []string) {
	w := 0
	for _, l := range lines {
		if n := utf8.RuneCountInString(l); n > w {
			w = n
		}
	}
	w += 4
	h := len(lines) + 2

	box := core.NewRect((dst.Width()-w)/2, (dst.Height()-h)/2, w, h)
	dst.DrawRect(box, ' ')
	dst.DrawBox(box)
	for i, l := range lines {
		dst.DrawText(box.X+(w-utf8.RuneCountInString(l))/2, box.Y+1+i, l)
	}
}
