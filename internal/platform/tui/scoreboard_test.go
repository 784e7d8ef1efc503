package tui

import (
	"errors"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-2048/internal/storage"
)

type fakeSource struct {
	games []storage.GameRecord
	stats *storage.Stats
	err   error
}

func (f fakeSource) TopGames(int) ([]storage.GameRecord, error) {
	return f.games, f.err
}

func (f fakeSource) GetStats() (*storage.Stats, error) {
	return f.stats, f.err
}

func TestGameRows(t *testing.T) {
	when := time.Date(2026, 3, 14, 15, 9, 0, 0, time.UTC)
	rows := GameRows([]storage.GameRecord{
		{Score: 20480, MaxTile: 2048, Moves: 950, Won: true, CreatedAt: when},
		{Score: 300, MaxTile: 64, Moves: 80},
	})

	if len(rows) != 2 {
		t.Fatalf("got %d rows, want 2", len(rows))
	}

	want := []string{"#1", "20480", "2048", "950", "yes", "Mar 14 15:09"}
	for i, cell := range rows[0] {
		if cell != want[i] {
			t.Errorf("row 0 col %d = %q, want %q", i, cell, want[i])
		}
	}
	if rows[1][0] != "#2" || rows[1][4] != "" || rows[1][5] != "" {
		t.Errorf("row 1 = %v", rows[1])
	}
}

func TestScoreboardView(t *testing.T) {
	src := fakeSource{
		games: []storage.GameRecord{{Score: 500, MaxTile: 64, Moves: 120}},
		stats: &storage.Stats{GamesCount: 3, Wins: 1, BestTile: 2048, AvgScore: 400},
	}
	m := NewScoreboardModel(src, 80, 24)

	view := m.View()
	for _, want := range []string{"2048 HIGH SCORES", "Games: 3", "Wins: 1", "Best tile: 2048", "500"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}
}

func TestScoreboardEmptyAndError(t *testing.T) {
	empty := NewScoreboardModel(fakeSource{stats: &storage.Stats{}}, 80, 24)
	if !strings.Contains(empty.View(), "No games recorded yet") {
		t.Error("empty history should show a placeholder")
	}

	broken := NewScoreboardModel(fakeSource{err: errors.New("no such table")}, 80, 24)
	if !strings.Contains(broken.View(), "Could not load scores") {
		t.Error("load failure should be shown")
	}

	none := NewScoreboardModel(nil, 80, 24)
	if !strings.Contains(none.View(), "No games recorded yet") {
		t.Error("nil source should show a placeholder")
	}
}

func TestScoreboardQuit(t *testing.T) {
	m := NewScoreboardModel(fakeSource{}, 80, 24)

	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	sm := next.(ScoreboardModel)

	if !sm.IsQuitting() || cmd == nil {
		t.Error("esc should close the scoreboard")
	}
	if sm.View() != "" {
		t.Error("View should be empty after quitting")
	}
}
