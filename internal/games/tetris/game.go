// Package tetris implements the falling-block game: seven tetrominoes
// drop into a 10x20 well, completed rows clear for points and gravity
// accelerates as lines accumulate.
package tetris

import (
	"math/rand"

	"github.com/vovakirdan/ntris/internal/config"
	"github.com/vovakirdan/ntris/internal/core"
	"github.com/vovakirdan/ntris/internal/registry"
)

// Pieces enter the board at this position, in board coordinates.
const (
	spawnX = 3
	spawnY = 0
)

// levelGridCols is how many level choices sit on one start-screen row.
const levelGridCols = 5

// wallKickOffsets are the shifts tried, in order, when a rotated piece
// does not fit in place. The first offset without a collision wins.
var wallKickOffsets = [...]Cell{
	{0, 0}, {-1, 0}, {1, 0}, {0, -1}, {-2, 0}, {2, 0},
}

var selectedStartLevel = 1

// SetStartLevel presets the level highlighted on the start screen of
// the next new game. Used by the CLI --level flag.
func SetStartLevel(level int) {
	selectedStartLevel = level
}

// GetStartLevel returns the configured start-screen level preset.
func GetStartLevel() int {
	return selectedStartLevel
}

// Game holds the complete state of one tetris session.
type Game struct {
	rng    *rand.Rand
	tuning config.TetrisConfig

	board Board
	state GameStateType

	current  PieceType
	rotation RotationState
	x, y     int
	next     PieceType

	score       int
	level       int
	lines       int
	sessionHigh int

	// selectedLevel is the cursor on the start-screen level grid.
	selectedLevel int

	gravityTimer float64
	lockTimer    float64
	onGround     bool

	// clearedThisStep accumulates rows removed by every lock inside the
	// current Step call, so a hard drop reports its clears even when a
	// gravity lock follows in the same frame.
	clearedThisStep int
}

// New creates a game sitting on the start screen.
func New() registry.Game {
	return &Game{state: StateStartScreen}
}

func init() {
	registry.Register("tetris", New)
}

// ID returns the unique game identifier.
func (g *Game) ID() string {
	return "tetris"
}

// Title returns the display name.
func (g *Game) Title() string {
	return "NTRIS"
}

// Reset returns the game to the start screen with a cleared board and
// zeroed counters. The RNG is seeded only on the first call and the
// session high score is never reset, so restarting after a game over
// keeps both.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	if g.rng == nil {
		g.rng = rand.New(rand.NewSource(cfg.Seed))
	}
	// LoadTetris falls back to the compiled-in tuning when the embedded
	// file does not parse.
	g.tuning, _ = config.LoadTetris()

	g.board.Reset()
	g.state = StateStartScreen
	g.score = 0
	g.level = 1
	g.lines = 0
	g.gravityTimer = 0
	g.lockTimer = 0
	g.onGround = false
	g.clearedThisStep = 0
	g.selectedLevel = g.clampLevel(GetStartLevel())

	// Both pieces are drawn up front so the preview is meaningful the
	// moment play begins.
	g.current = g.randomPiece()
	g.next = g.randomPiece()
	g.rotation = Rot0
	g.x = spawnX
	g.y = spawnY
}

// SetStartingLevel begins play at the given level, clamped into the
// selectable range. The game ends immediately when the spawn position
// is already blocked.
func (g *Game) SetStartingLevel(level int) {
	g.level = g.clampLevel(level)
	g.state = StatePlaying
	if g.board.Collides(g.current, g.rotation, g.x, g.y) {
		g.state = StateGameOver
	}
}

// SpawnNext promotes the preview piece to play and draws a new preview.
// Returns false and ends the game when the spawn position is blocked.
func (g *Game) SpawnNext() bool {
	g.current = g.next
	g.rotation = Rot0
	g.x = spawnX
	g.y = spawnY
	g.next = g.randomPiece()
	g.onGround = false
	g.lockTimer = 0
	if g.board.Collides(g.current, g.rotation, g.x, g.y) {
		g.state = StateGameOver
		return false
	}
	return true
}

// MoveLeft shifts the piece one column left. Returns false when a wall
// or the stack blocks the move.
func (g *Game) MoveLeft() bool {
	return g.shift(-1)
}

// MoveRight shifts the piece one column right. Returns false when a
// wall or the stack blocks the move.
func (g *Game) MoveRight() bool {
	return g.shift(1)
}

func (g *Game) shift(dx int) bool {
	if g.state != StatePlaying {
		return false
	}
	if g.board.Collides(g.current, g.rotation, g.x+dx, g.y) {
		return false
	}
	g.x += dx
	g.refreshGround()
	return true
}

// MoveDown is a soft drop: one row down for one point. Returns false
// when the piece is resting on the floor or the stack.
func (g *Game) MoveDown() bool {
	if g.state != StatePlaying {
		return false
	}
	if g.board.Collides(g.current, g.rotation, g.x, g.y+1) {
		return false
	}
	g.y++
	g.addScore(g.tuning.Scoring.SoftDrop)
	g.onGround = false
	g.lockTimer = 0
	return true
}

// Rotate turns the piece clockwise, trying each wall-kick offset in
// order until the rotated shape fits. Returns false when no offset
// resolves the collision; the piece is left untouched in that case.
func (g *Game) Rotate() bool {
	if g.state != StatePlaying {
		return false
	}
	next := RotateCW(g.rotation)
	for _, off := range wallKickOffsets {
		nx := g.x + off.X
		ny := g.y + off.Y
		if g.board.Collides(g.current, next, nx, ny) {
			continue
		}
		g.rotation = next
		g.x = nx
		g.y = ny
		g.refreshGround()
		return true
	}
	return false
}

// HardDrop sends the piece straight down, scoring two points per row
// travelled, and locks it immediately with no lock delay.
func (g *Game) HardDrop() {
	if g.state != StatePlaying {
		return
	}
	rows := 0
	for !g.board.Collides(g.current, g.rotation, g.x, g.y+1) {
		g.y++
		rows++
	}
	g.addScore(rows * g.tuning.Scoring.HardDrop)
	g.lockAndClear()
}

// TogglePause switches between playing and paused. Other states are
// unaffected.
func (g *Game) TogglePause() {
	switch g.state {
	case StatePlaying:
		g.state = StatePaused
	case StatePaused:
		g.state = StatePlaying
	}
}

// Update advances the timers by delta seconds, applying gravity and the
// lock delay. At most one row of descent happens per call; the caller's
// frame accumulator controls the real fall rate. Returns the number of
// rows cleared by a lock that fired during this call.
func (g *Game) Update(delta float64) int {
	if g.state != StatePlaying {
		return 0
	}

	g.gravityTimer += delta
	if g.gravityTimer >= g.tuning.GravityInterval(g.level) {
		g.gravityTimer = 0
		if !g.board.Collides(g.current, g.rotation, g.x, g.y+1) {
			g.y++
			g.onGround = false
			g.lockTimer = 0
		} else {
			g.onGround = true
		}
	}

	if g.onGround || g.grounded() {
		g.onGround = true
		g.lockTimer += delta
		if g.lockTimer >= g.tuning.Lock.Delay {
			return g.lockAndClear()
		}
	} else {
		g.lockTimer = 0
	}
	return 0
}

// Step consumes one frame of input and advances the simulation.
func (g *Game) Step(in core.InputFrame, delta float64) core.StepResult {
	g.clearedThisStep = 0

	switch g.state {
	case StateStartScreen:
		g.stepStartScreen(in)
	case StatePlaying, StatePaused:
		g.stepPlaying(in)
	case StateGameOver:
		// Restarting is handled by the platform via Reset.
	}

	g.Update(delta)

	return core.StepResult{
		State:        g.State(),
		LinesCleared: g.clearedThisStep,
	}
}

func (g *Game) stepStartScreen(in core.InputFrame) {
	switch {
	case in.Has(core.ActionStart):
		g.SetStartingLevel(g.selectedLevel)
	case in.Has(core.ActionLeft):
		g.selectedLevel = g.clampLevel(g.selectedLevel - 1)
	case in.Has(core.ActionRight):
		g.selectedLevel = g.clampLevel(g.selectedLevel + 1)
	case in.Has(core.ActionRotate):
		g.selectedLevel = g.clampLevel(g.selectedLevel - levelGridCols)
	case in.Has(core.ActionDown):
		g.selectedLevel = g.clampLevel(g.selectedLevel + levelGridCols)
	}
}

func (g *Game) stepPlaying(in core.InputFrame) {
	if in.Has(core.ActionPause) {
		g.TogglePause()
		return
	}

	switch {
	case in.Has(core.ActionLeft):
		g.MoveLeft()
	case in.Has(core.ActionRight):
		g.MoveRight()
	case in.Has(core.ActionDown):
		g.MoveDown()
	case in.Has(core.ActionRotate):
		g.Rotate()
	case in.Has(core.ActionHardDrop):
		g.HardDrop()
	}
}

// State reports the platform-visible status.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score,
		Level:    g.level,
		Lines:    g.lines,
		GameOver: g.state == StateGameOver,
		Paused:   g.state == StatePaused,
	}
}

// GhostY returns the row the current piece would land on if hard
// dropped now.
func (g *Game) GhostY() int {
	y := g.y
	for !g.board.Collides(g.current, g.rotation, g.x, y+1) {
		y++
	}
	return y
}

// NextPiece returns the piece shown in the preview box.
func (g *Game) NextPiece() PieceType {
	return g.next
}

// SessionHighScore returns the best score reached since the process
// started, including the run in progress.
func (g *Game) SessionHighScore() int {
	return g.sessionHigh
}

// lockAndClear fixes the current piece into the board, removes full
// rows, applies scoring and leveling, and spawns the next piece.
func (g *Game) lockAndClear() int {
	g.board.Lock(g.current, g.rotation, g.x, g.y)
	cleared := g.board.ClearFullLines()
	if cleared > 0 {
		g.lines += cleared
		g.addScore(g.tuning.LineClearScore(cleared) * g.level)
		g.level = 1 + g.lines/g.tuning.Leveling.LinesPerLevel
	}
	g.clearedThisStep += cleared
	g.SpawnNext()
	return cleared
}

func (g *Game) grounded() bool {
	return g.board.Collides(g.current, g.rotation, g.x, g.y+1)
}

// refreshGround clears the lock delay after a sideways move or rotation
// that left the piece free to fall again.
func (g *Game) refreshGround() {
	if !g.grounded() {
		g.onGround = false
		g.lockTimer = 0
	}
}

func (g *Game) addScore(points int) {
	g.score += points
	if g.score > g.sessionHigh {
		g.sessionHigh = g.score
	}
}

func (g *Game) randomPiece() PieceType {
	return PieceType(g.rng.Intn(PieceCount))
}

func (g *Game) clampLevel(level int) int {
	return core.Clamp(level, g.tuning.Leveling.MinStartLevel, g.tuning.Leveling.MaxStartLevel)
}
