package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-2048/internal/config"
	"github.com/vovakirdan/tui-2048/internal/storage"
)

// setupApp points the global state at a temporary config and database.
func setupApp(t *testing.T) string {
	t.Helper()

	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "config.yaml")
	if err := os.WriteFile(cfgPath, []byte("log:\n  level: warn\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	flagConfig = cfgPath
	flagDBPath = filepath.Join(dir, "t2048.db")
	flagLogLevel = ""
	t.Cleanup(func() {
		flagConfig, flagDBPath, flagLogLevel = "", "", ""
	})

	if err := loadApp(rootCmd, nil); err != nil {
		t.Fatalf("loadApp() failed: %v", err)
	}
	return dir
}

func TestLoadAppOverrides(t *testing.T) {
	dir := setupApp(t)

	if appConfig.Storage.DBPath != filepath.Join(dir, "t2048.db") {
		t.Errorf("DBPath = %q, --db should override", appConfig.Storage.DBPath)
	}
	if appLogger.GetLevel() != log.WarnLevel {
		t.Errorf("logger level = %v, want warn", appLogger.GetLevel())
	}

	flagLogLevel = "loud"
	if err := loadApp(rootCmd, nil); !errors.Is(err, config.ErrInvalid) {
		t.Errorf("bad --log-level = %v, want ErrInvalid", err)
	}
}

func TestPrintScores(t *testing.T) {
	setupApp(t)

	store, err := openStore()
	if err != nil {
		t.Fatalf("openStore() failed: %v", err)
	}
	defer store.Close()

	var empty bytes.Buffer
	if err := printScores(&empty, store, 10); err != nil {
		t.Fatalf("printScores() failed: %v", err)
	}
	if !strings.Contains(empty.String(), "No games recorded yet.") {
		t.Errorf("empty output = %q", empty.String())
	}

	store.SaveGame(storage.GameRecord{Score: 4000, MaxTile: 256, Moves: 300})
	store.SaveGame(storage.GameRecord{Score: 25000, MaxTile: 2048, Moves: 1100, Won: true})
	store.Set("bestScore", "25000")

	var out bytes.Buffer
	if err := printScores(&out, store, 10); err != nil {
		t.Fatalf("printScores() failed: %v", err)
	}

	text := out.String()
	for _, want := range []string{"High Scores - 2048", "25000", "4000", "yes", "Best: 25000", "Games: 2  Wins: 1  Best tile: 2048"} {
		if !strings.Contains(text, want) {
			t.Errorf("output missing %q:\n%s", want, text)
		}
	}
	if strings.Index(text, "25000") > strings.Index(text, "4000") {
		t.Error("games should be listed best first")
	}
}

func TestResetBest(t *testing.T) {
	setupApp(t)

	store, err := openStore()
	if err != nil {
		t.Fatal(err)
	}
	store.Set("bestScore", "512")
	store.SaveGame(storage.GameRecord{Score: 512})
	store.Close()

	var out bytes.Buffer
	resetBestCmd.SetOut(&out)
	flagResetHistory = true
	t.Cleanup(func() { flagResetHistory = false })

	if err := runResetBest(resetBestCmd, nil); err != nil {
		t.Fatalf("runResetBest() failed: %v", err)
	}
	if !strings.Contains(out.String(), "was 512") {
		t.Errorf("output = %q", out.String())
	}

	store, err = openStore()
	if err != nil {
		t.Fatal(err)
	}
	defer store.Close()

	if v, _, _ := store.Get("bestScore"); v != "0" {
		t.Errorf("best score = %q, want 0", v)
	}
	if games, _ := store.TopGames(10); len(games) != 0 {
		t.Errorf("history has %d games, want 0", len(games))
	}
}

func TestServeConfigFlags(t *testing.T) {
	setupApp(t)

	flagSeed = 7
	flagSSHAddr = ":2222"
	t.Cleanup(func() {
		flagSeed, flagSSHAddr = 0, ""
	})

	cfg := serveConfig()
	if cfg.Settings.Seed != 7 {
		t.Errorf("Settings.Seed = %d, --seed should reach serve", cfg.Settings.Seed)
	}
	if cfg.Address != ":2222" {
		t.Errorf("Address = %q, want :2222", cfg.Address)
	}
	if cfg.MaxSessionsPerIP != appConfig.Server.MaxSessionsPerIP {
		t.Errorf("MaxSessionsPerIP = %d, unset flag should keep config value", cfg.MaxSessionsPerIP)
	}
}
