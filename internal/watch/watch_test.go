package watch

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestWatcherReportsWrites(t *testing.T) {
	dir := t.TempDir()
	data := filepath.Join(dir, "nodes.txt")
	other := filepath.Join(dir, "other.txt")
	if err := os.WriteFile(data, []byte("0 3\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	w, err := New(20 * time.Millisecond)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	defer w.Close()
	if err := w.Add("data", data); err != nil {
		t.Fatalf("Add failed: %v", err)
	}

	if err := os.WriteFile(other, []byte("ignored"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(data, []byte("0 3\n0 1\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	select {
	case c := <-w.Changes():
		if c.Role != "data" {
			t.Errorf("expected role data, got %q", c.Role)
		}
		if filepath.Base(c.Path) != "nodes.txt" {
			t.Errorf("expected nodes.txt, got %s", c.Path)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for change")
	}
}

func TestWatcherCloseTwice(t *testing.T) {
	w, err := New(20 * time.Millisecond)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Errorf("expected second Close to be a no-op, got %v", err)
	}
	select {
	case <-w.Done():
	default:
		t.Error("expected Done to be closed")
	}
}
