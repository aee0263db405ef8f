package tetris

// GameStateType identifies which screen the game is on.
type GameStateType string

const (
	StateStartScreen GameStateType = "start_screen"
	StatePlaying     GameStateType = "playing"
	StatePaused      GameStateType = "paused"
	StateGameOver    GameStateType = "game_over"
)

// Snapshot captures the full game state for tests and debugging.
type Snapshot struct {
	State         GameStateType
	Board         [BoardHeight][BoardWidth]int
	Current       PieceType
	Rotation      RotationState
	X, Y          int
	Next          PieceType
	Score         int
	Level         int
	Lines         int
	SessionHigh   int
	SelectedLevel int
	GravityTimer  float64
	LockTimer     float64
	OnGround      bool
}

// Snapshot returns a copy of the current game state.
func (g *Game) Snapshot() Snapshot {
	return Snapshot{
		State:         g.state,
		Board:         g.board.cells,
		Current:       g.current,
		Rotation:      g.rotation,
		X:             g.x,
		Y:             g.y,
		Next:          g.next,
		Score:         g.score,
		Level:         g.level,
		Lines:         g.lines,
		SessionHigh:   g.sessionHigh,
		SelectedLevel: g.selectedLevel,
		GravityTimer:  g.gravityTimer,
		LockTimer:     g.lockTimer,
		OnGround:      g.onGround,
	}
}
