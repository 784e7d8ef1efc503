package t2048

import "math/rand"

// Settings configures an Engine.
type Settings struct {
	WinTile    int     // Tile value that wins the game
	Spawn4Prob float64 // Probability of spawning 4 instead of 2 (0.0-1.0)
	StartTiles int     // Tiles spawned by Initialize
	Seed       int64   // RNG seed
	BestScore  int     // Best score carried over from earlier sessions
}

// DefaultSettings returns the classic rules: win at 2048, 10% fours, two
// starting tiles.
func DefaultSettings() Settings {
	return Settings{
		WinTile:    DefaultWinTile,
		Spawn4Prob: 0.10,
		StartTiles: 2,
	}
}

// State is a snapshot of the game. It is returned by value, so callers can
// keep or modify it without affecting the engine.
type State struct {
	Board     Board
	Score     int
	BestScore int
	GameOver  bool
	Won       bool
}

// Over reports whether the game accepts no further moves.
func (s State) Over() bool {
	return s.GameOver || s.Won
}

// Engine owns the game state and applies moves to it.
// It is not safe for concurrent use.
type Engine struct {
	settings Settings
	rng      *rand.Rand
	nextID   uint64
	moves    int
	state    State
}

// NewEngine creates an engine and starts its first game.
func NewEngine(s Settings) *Engine {
	def := DefaultSettings()
	if s.WinTile <= 0 {
		s.WinTile = def.WinTile
	}
	if s.StartTiles <= 0 {
		s.StartTiles = def.StartTiles
	}
	if s.Spawn4Prob < 0 || s.Spawn4Prob > 1 {
		s.Spawn4Prob = def.Spawn4Prob
	}

	e := &Engine{
		settings: s,
		rng:      rand.New(rand.NewSource(s.Seed)),
	}
	e.state.BestScore = max(s.BestScore, 0)
	e.Initialize()
	return e
}

// Settings returns the settings the engine was created with.
func (e *Engine) Settings() Settings {
	return e.settings
}

// Initialize discards the current board and starts a new game.
// The best score is kept.
func (e *Engine) Initialize() State {
	e.moves = 0
	e.state = State{BestScore: e.state.BestScore}

	for range e.settings.StartTiles {
		e.spawn(&e.state.Board)
	}

	return e.state
}

// Move slides the board in the given direction. When no line changes, or the
// game is already over or won, the state is left untouched. Otherwise the
// merge score is added, one tile is spawned and the terminal flags are
// recomputed. The best score is never changed here.
func (e *Engine) Move(dir Direction) State {
	if e.state.Over() {
		return e.state
	}

	res := Slide(e.state.Board, dir)
	if !res.Changed {
		return e.state
	}

	board := res.Board
	e.spawn(&board)

	e.state.Board = board
	e.state.Score += res.Score
	e.state.GameOver = IsGameOver(board)
	e.state.Won = HasWon(board, e.settings.WinTile)
	e.moves++

	return e.state
}

// State returns the current game state.
func (e *Engine) State() State {
	return e.state
}

// Moves returns the number of accepted moves in the current game.
func (e *Engine) Moves() int {
	return e.moves
}

// SetBestScore raises the best score. Lower values are ignored.
func (e *Engine) SetBestScore(score int) {
	if score > e.state.BestScore {
		e.state.BestScore = score
	}
}

// spawn adds one random tile with a fresh ID.
func (e *Engine) spawn(board *Board) {
	if _, ok := spawnTile(board, e.rng, e.settings.Spawn4Prob, e.nextID+1); ok {
		e.nextID++
	}
}
