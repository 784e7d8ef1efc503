package tui

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/vovakirdan/tui-2048/internal/bestscore"
	"github.com/vovakirdan/tui-2048/internal/config"
	"github.com/vovakirdan/tui-2048/internal/core"
	"github.com/vovakirdan/tui-2048/internal/storage"
	"github.com/vovakirdan/tui-2048/internal/t2048"
)

// DefaultScreenshotDir is where ctrl+s writes screen dumps.
const DefaultScreenshotDir = "~/.t2048/screenshots"

var errScreenshotsDisabled = errors.New("tui: screenshots are disabled")

// GameRecorder stores finished games.
type GameRecorder interface {
	SaveGame(rec storage.GameRecord) (int64, error)
}

// ModelOptions configures a Model.
type ModelOptions struct {
	Settings      t2048.Settings     // Seed 0 picks a time-based seed
	Tracker       *bestscore.Tracker // nil keeps the best score in memory
	Recorder      GameRecorder       // nil disables game history
	Logger        *log.Logger        // nil discards log output
	Width         int
	Height        int
	ScreenshotDir string
	NoScreenshots bool
}

// Model is the Bubble Tea model for a game of 2048.
type Model struct {
	engine        *t2048.Engine
	tracker       *bestscore.Tracker
	recorder      GameRecorder
	logger        *log.Logger
	screen        *core.Screen
	keys          KeyMap
	help          help.Model
	width         int
	height        int
	runID         string
	recorded      bool // Whether the current game has been handed to the recorder
	quitting      bool
	status        string
	screenshotDir string // Empty disables screenshots
}

// NewModel creates a model and starts the first game.
func NewModel(opts ModelOptions) Model {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	tracker := opts.Tracker
	if tracker == nil {
		tracker = bestscore.New(bestscore.NewMemoryStore(), logger)
	}

	settings := opts.Settings
	if settings.Seed == 0 {
		settings.Seed = time.Now().UnixNano()
	}
	settings.BestScore = tracker.Best()

	dir := opts.ScreenshotDir
	if dir == "" {
		dir = DefaultScreenshotDir
	}
	if opts.NoScreenshots {
		dir = ""
	}

	h := help.New()
	h.Width = opts.Width

	m := Model{
		engine:        t2048.NewEngine(settings),
		tracker:       tracker,
		recorder:      opts.Recorder,
		logger:        logger,
		screen:        core.NewScreen(opts.Width, opts.Height),
		keys:          DefaultKeyMap(),
		help:          h,
		width:         opts.Width,
		height:        opts.Height,
		runID:         uuid.NewString(),
		screenshotDir: dir,
	}
	m.layout()

	m.logger.Debug("game started", "run", m.runID, "seed", settings.Seed)
	return m
}

// Init implements tea.Model. The game is turn based, so nothing ticks.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.layout()
		return m, nil
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action := m.keys.Action(msg)

	switch action {
	case core.ActionQuit:
		m.quitting = true
		return m, tea.Quit

	case core.ActionNewGame:
		m.newGame()

	case core.ActionHelp:
		m.help.ShowAll = !m.help.ShowAll
		m.layout()

	case core.ActionScreenshot:
		path, err := m.saveScreenshot()
		if err != nil {
			m.logger.Warn("screenshot failed", "error", err)
			m.status = "Screenshot failed"
		} else {
			m.logger.Info("screenshot saved", "path", path)
			m.status = "Saved " + filepath.Base(path)
		}

	default:
		if dir, ok := Direction(action); ok {
			m.move(dir)
		}
	}

	return m, nil
}

// move forwards a direction to the engine while the game is running.
func (m *Model) move(dir t2048.Direction) {
	if m.engine.State().Over() {
		return
	}

	before := m.engine.Moves()
	st := m.engine.Move(dir)
	if m.engine.Moves() == before {
		return
	}
	m.status = ""

	best, raised := m.tracker.Observe(st.Score)
	m.engine.SetBestScore(best)
	if raised {
		m.logger.Debug("new best score", "score", best)
	}

	if st.Over() {
		m.recordGame()
	}
}

// recordGame hands a finished game to the recorder, once per game.
func (m *Model) recordGame() {
	if m.recorded {
		return
	}
	m.recorded = true

	st := m.engine.State()
	m.logger.Info("game finished",
		"run", m.runID,
		"state", st.Label(),
		"score", st.Score,
		"moves", m.engine.Moves(),
	)

	if m.recorder == nil || st.Score == 0 {
		return
	}

	rec := storage.GameRecord{
		RunID:   m.runID,
		Score:   st.Score,
		MaxTile: t2048.MaxTile(st.Board),
		Moves:   m.engine.Moves(),
		Won:     st.Won,
		Seed:    m.engine.Settings().Seed,
	}
	if _, err := m.recorder.SaveGame(rec); err != nil {
		m.logger.Warn("could not save game", "run", m.runID, "error", err)
	}
}

// newGame discards the board and starts over with the stored best score.
func (m *Model) newGame() {
	m.engine.Initialize()
	m.engine.SetBestScore(m.tracker.Best())
	m.runID = uuid.NewString()
	m.recorded = false
	m.status = ""

	m.logger.Debug("game started", "run", m.runID)
}

// layout sizes the board screen to leave room for the help bar.
func (m *Model) layout() {
	helpH := lipgloss.Height(m.help.View(m.keys))
	m.screen.Resize(m.width, max(m.height-helpH, 0))
}

// saveScreenshot writes the current board to a text file and returns its path.
func (m *Model) saveScreenshot() (string, error) {
	if m.screenshotDir == "" {
		return "", errScreenshotsDisabled
	}
	m.render()

	dir := config.ExpandHome(m.screenshotDir)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("tui: cannot create screenshot directory: %w", err)
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("t2048_%s.txt", timestamp))

	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		return "", fmt.Errorf("tui: cannot write screenshot: %w", err)
	}
	return path, nil
}

// render draws the game into the screen buffer.
func (m Model) render() {
	t2048.Render(m.screen, m.engine.State(), t2048.RenderOptions{
		WinTile: m.engine.Settings().WinTile,
		Moves:   m.engine.Moves(),
		Footer:  m.status,
	})
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.render()
	return RenderScreen(m.screen) + "\n" + m.help.View(m.keys)
}

// State returns the current game state.
func (m Model) State() t2048.State {
	return m.engine.State()
}

// Moves returns the accepted moves in the current game.
func (m Model) Moves() int {
	return m.engine.Moves()
}

// RunID identifies the current game.
func (m Model) RunID() string {
	return m.runID
}

// IsQuitting returns true if the user asked to quit.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// Run starts the Bubble Tea program with a new model.
func Run(opts ModelOptions) error {
	p := tea.NewProgram(
		NewModel(opts),
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}
