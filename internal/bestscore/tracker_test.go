package bestscore

import (
	"errors"
	"sync"
	"testing"
)

// failingStore returns errors for every call.
type failingStore struct {
	getErr error
	setErr error
	sets   int
}

func (f *failingStore) Get(string) (string, bool, error) {
	return "", false, f.getErr
}

func (f *failingStore) Set(string, string) error {
	f.sets++
	return f.setErr
}

func TestLoad(t *testing.T) {
	tests := []struct {
		name   string
		stored string
		set    bool
		want   int
	}{
		{"missing", "", false, 0},
		{"valid", "2048", true, 2048},
		{"not a number", "lots", true, 0},
		{"negative", "-10", true, 0},
		{"empty string", "", true, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := NewMemoryStore()
			if tt.set {
				store.Set(Key, tt.stored)
			}

			tr := New(store, nil)
			if got := tr.Load(); got != tt.want {
				t.Errorf("Load() = %d, want %d", got, tt.want)
			}
			if got := tr.Best(); got != tt.want {
				t.Errorf("Best() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestLoadReadError(t *testing.T) {
	tr := New(&failingStore{getErr: errors.New("disk on fire")}, nil)

	if got := tr.Load(); got != 0 {
		t.Errorf("Load() with read error = %d, want 0", got)
	}
}

func TestObserveWritesThrough(t *testing.T) {
	store := NewMemoryStore()
	store.Set(Key, "100")
	tr := New(store, nil)

	if best, raised := tr.Observe(50); raised || best != 100 {
		t.Errorf("Observe(50) = %d, %v; want 100, false", best, raised)
	}
	if best, raised := tr.Observe(100); raised || best != 100 {
		t.Errorf("Observe(100) = %d, %v; want 100, false", best, raised)
	}

	best, raised := tr.Observe(120)
	if !raised || best != 120 {
		t.Errorf("Observe(120) = %d, %v; want 120, true", best, raised)
	}

	if v, _, _ := store.Get(Key); v != "120" {
		t.Errorf("stored best = %q, want 120", v)
	}

	// A fresh tracker over the same store sees the record
	if got := New(store, nil).Load(); got != 120 {
		t.Errorf("reloaded best = %d, want 120", got)
	}
}

func TestObserveWriteFailureStillAdvances(t *testing.T) {
	fs := &failingStore{setErr: errors.New("read-only")}
	tr := New(fs, nil)

	best, raised := tr.Observe(64)
	if !raised || best != 64 {
		t.Errorf("Observe(64) = %d, %v; want 64, true", best, raised)
	}
	if fs.sets != 1 {
		t.Errorf("store.Set called %d times, want 1", fs.sets)
	}

	if _, raised := tr.Observe(32); raised {
		t.Error("lower score should not raise the best")
	}
	if fs.sets != 1 {
		t.Errorf("store.Set called %d times, want 1", fs.sets)
	}
}

func TestReset(t *testing.T) {
	store := NewMemoryStore()
	tr := New(store, nil)
	tr.Observe(500)

	if err := tr.Reset(); err != nil {
		t.Fatalf("Reset() failed: %v", err)
	}
	if tr.Best() != 0 {
		t.Errorf("Best() after Reset = %d, want 0", tr.Best())
	}
	if got := New(store, nil).Load(); got != 0 {
		t.Errorf("stored best after Reset = %d, want 0", got)
	}
}

func TestObserveConcurrent(t *testing.T) {
	store := NewMemoryStore()
	tr := New(store, nil)

	var wg sync.WaitGroup
	for i := 1; i <= 50; i++ {
		wg.Add(1)
		go func(score int) {
			defer wg.Done()
			tr.Observe(score * 10)
		}(i)
	}
	wg.Wait()

	if tr.Best() != 500 {
		t.Errorf("Best() = %d, want 500", tr.Best())
	}
	if v, _, _ := store.Get(Key); v != "500" {
		t.Errorf("stored best = %q, want 500", v)
	}
}
