package tui

import (
	"net"
	"sync"
	"testing"
	"time"

	"github.com/vovakirdan/tui-2048/internal/config"
)

func TestSessionLimiter(t *testing.T) {
	l := NewSessionLimiter(2)

	if !l.Acquire("10.0.0.1") || !l.Acquire("10.0.0.1") {
		t.Fatal("first two sessions should be accepted")
	}
	if l.Acquire("10.0.0.1") {
		t.Error("third session from the same address should be refused")
	}
	if !l.Acquire("10.0.0.2") {
		t.Error("other addresses have their own limit")
	}

	l.Release("10.0.0.1")
	if l.Active("10.0.0.1") != 1 {
		t.Errorf("Active = %d, want 1", l.Active("10.0.0.1"))
	}
	if !l.Acquire("10.0.0.1") {
		t.Error("released slot should be reusable")
	}

	l.Release("10.0.0.2")
	if _, ok := l.counts["10.0.0.2"]; ok {
		t.Error("idle addresses should be forgotten")
	}
}

func TestSessionLimiterUnlimited(t *testing.T) {
	l := NewSessionLimiter(0)
	for range 100 {
		if !l.Acquire("10.0.0.1") {
			t.Fatal("limit 0 should accept every session")
		}
	}
}

func TestSessionLimiterConcurrent(t *testing.T) {
	l := NewSessionLimiter(5)

	var wg sync.WaitGroup
	var mu sync.Mutex
	accepted := 0
	for range 50 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if l.Acquire("10.0.0.1") {
				mu.Lock()
				accepted++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	if accepted != 5 {
		t.Errorf("accepted %d sessions, want 5", accepted)
	}
}

func TestRemoteIP(t *testing.T) {
	tcp := &net.TCPAddr{IP: net.ParseIP("192.168.1.7"), Port: 51234}
	if got := remoteIP(tcp); got != "192.168.1.7" {
		t.Errorf("remoteIP = %q, want 192.168.1.7", got)
	}
}

func TestServerConfigFrom(t *testing.T) {
	cfg := config.Default()
	cfg.Server.Address = ":2222"
	cfg.Server.IdleTimeout = time.Minute
	cfg.Game.WinTile = 1024

	sc := ServerConfigFrom(cfg, 0)
	if sc.Address != ":2222" || sc.IdleTimeout != time.Minute || sc.MaxSessionsPerIP != 2 {
		t.Errorf("ServerConfigFrom = %+v", sc)
	}
	if sc.Settings.WinTile != 1024 || sc.Settings.Seed != 0 {
		t.Errorf("Settings = %+v, want win tile 1024 and random seed", sc.Settings)
	}

	if seeded := ServerConfigFrom(cfg, 42); seeded.Settings.Seed != 42 {
		t.Errorf("Settings.Seed = %d, want 42", seeded.Settings.Seed)
	}
}

func TestNewSSHServer(t *testing.T) {
	dir := t.TempDir()
	cfg := SSHServerConfig{
		Address:     "127.0.0.1:0",
		HostKeyPath: dir + "/keys/host_key",
		IdleTimeout: time.Minute,
	}

	srv, err := NewSSHServer(cfg, nil, nil, nil)
	if err != nil {
		t.Fatalf("NewSSHServer() failed: %v", err)
	}
	if srv.Addr() != "127.0.0.1:0" {
		t.Errorf("Addr = %q", srv.Addr())
	}
}
