package prefabs

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestWatcherReportsPrefabChanges(t *testing.T) {
	dir := t.TempDir()
	w, err := NewWatcher(dir)
	if err != nil {
		t.Fatal(err)
	}
	defer w.Close()

	if err := os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}
	target := filepath.Join(dir, "player.yaml")
	if err := os.WriteFile(target, []byte("walk_speed: 6\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	deadline := time.After(2 * time.Second)
	for {
		select {
		case name := <-w.Events:
			if filepath.Ext(name) == ".txt" {
				t.Fatalf("unexpected event for %s", name)
			}
			if name == target {
				return
			}
		case <-deadline:
			t.Fatal("no event for the changed prefab")
		}
	}
}

func TestWatcherCloseIsIdempotent(t *testing.T) {
	w, err := NewWatcher(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	if err := w.Close(); err != nil {
		t.Fatal(err)
	}
	if err := w.Close(); err != nil {
		t.Fatal(err)
	}
	if got := w.Drain(); len(got) != 0 {
		t.Fatalf("drain after close = %v", got)
	}

	var nilWatcher *Watcher
	if nilWatcher.Drain() != nil || nilWatcher.Close() != nil {
		t.Fatal("nil watcher should be inert")
	}
}

func TestIsSpecFile(t *testing.T) {
	tests := map[string]bool{
		"a.yaml":  true,
		"a.YML":   true,
		"a.tengo": false,
		"a.json":  false,
	}
	for in, want := range tests {
		if got := isSpecFile(in); got != want {
			t.Errorf("isSpecFile(%q) = %v, want %v", in, got, want)
		}
	}
}
