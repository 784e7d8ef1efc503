package t2048

// StateLabel names the phase of a game.
type StateLabel string

const (
	StatePlaying  StateLabel = "playing"
	StateGameOver StateLabel = "game_over"
	StateWin      StateLabel = "win"
)

// Label returns the phase of the game.
func (s State) Label() StateLabel {
	switch {
	case s.Won:
		return StateWin
	case s.GameOver:
		return StateGameOver
	default:
		return StatePlaying
	}
}

// Snapshot captures the observable game state for determinism checks and replay.
type Snapshot struct {
	Moves   int
	Score   int
	Best    int
	Board   [BoardSize][BoardSize]int
	MaxTile int
	State   StateLabel
}

// Snapshot returns the current game snapshot.
func (e *Engine) Snapshot() Snapshot {
	return Snapshot{
		Moves:   e.moves,
		Score:   e.state.Score,
		Best:    e.state.BestScore,
		Board:   e.state.Board.Values(),
		MaxTile: MaxTile(e.state.Board),
		State:   e.state.Label(),
	}
}
