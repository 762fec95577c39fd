package workspace

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func waitFor(t *testing.T, what string, check func() bool) {
	t.Helper()
	deadline := time.Now().Add(5 * time.Second)
	for time.Now().Before(deadline) {
		if check() {
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatalf("timed out waiting for %s", what)
}

func TestFileWatcherRescansChangedFiles(t *testing.T) {
	root := t.TempDir()
	dir := filepath.Join(root, "debian")
	if err := os.MkdirAll(dir, 0755); err != nil {
		t.Fatal(err)
	}
	path := filepath.Join(dir, "control")
	if err := os.WriteFile(path, []byte("Source: foo\n"), 0644); err != nil {
		t.Fatal(err)
	}

	w := New(root)
	watcher := NewFileWatcher(w)
	watcher.pollInterval = 10 * time.Millisecond
	watcher.Start()
	defer watcher.Stop()

	waitFor(t, "initial scan", func() bool {
		return w.File(path) != nil
	})

	if err := os.WriteFile(path, []byte("Source: bar\n"), 0644); err != nil {
		t.Fatal(err)
	}
	// Push the mtime forward in case the filesystem clock is too coarse
	// to distinguish the two writes.
	future := time.Now().Add(time.Hour)
	if err := os.Chtimes(path, future, future); err != nil {
		t.Fatal(err)
	}

	waitFor(t, "rescan after modify", func() bool {
		file := w.File(path)
		return file != nil && bytes.Contains(file.Content, []byte("bar"))
	})

	if err := os.Remove(path); err != nil {
		t.Fatal(err)
	}

	waitFor(t, "removal from cache", func() bool {
		return w.File(path) == nil
	})
}
