package watcher

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"
)

func TestIsPDF(t *testing.T) {
	tests := []struct {
		path string
		want bool
	}{
		{"/drop/edital.pdf", true},
		{"/drop/edital.PDF", true},
		{"/drop/edital.Pdf", true},
		{"/drop/notes.txt", false},
		{"/drop/edital", false},
		{"/drop/edital.pdf.part", false},
	}
	for _, tt := range tests {
		if got := isPDF(tt.path); got != tt.want {
			t.Errorf("isPDF(%q) = %v, want %v", tt.path, got, tt.want)
		}
	}
}

func TestWatcher_reportsNewPDFAfterDebounce(t *testing.T) {
	dir := t.TempDir()

	var got []string
	var mu sync.Mutex
	onPDF := func(path string) {
		mu.Lock()
		got = append(got, path)
		mu.Unlock()
	}

	w := NewWatcher([]string{dir}, true, onPDF, WithDebounce(100*time.Millisecond))
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	if err := w.Start(ctx); err != nil {
		t.Fatal(err)
	}
	defer w.Stop()

	if err := writeFile(filepath.Join(dir, "edital.pdf"), "%PDF-"); err != nil {
		t.Fatal(err)
	}
	if err := writeFile(filepath.Join(dir, "readme.txt"), "ignored"); err != nil {
		t.Fatal(err)
	}

	time.Sleep(400 * time.Millisecond)
	mu.Lock()
	defer mu.Unlock()
	if len(got) < 1 {
		t.Fatalf("expected at least one callback, got %v", got)
	}
	for _, p := range got {
		if !strings.HasSuffix(p, "edital.pdf") {
			t.Errorf("unexpected path reported: %q", p)
		}
	}
}

func TestWatcher_removeCancelsPendingCallback(t *testing.T) {
	dir := t.TempDir()

	var got []string
	var mu sync.Mutex
	onPDF := func(path string) {
		mu.Lock()
		got = append(got, path)
		mu.Unlock()
	}

	w := NewWatcher([]string{dir}, false, onPDF, WithDebounce(300*time.Millisecond))
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	if err := w.Start(ctx); err != nil {
		t.Fatal(err)
	}
	defer w.Stop()

	path := filepath.Join(dir, "gone.pdf")
	if err := writeFile(path, "%PDF-"); err != nil {
		t.Fatal(err)
	}
	// Remove before the debounce fires.
	time.Sleep(50 * time.Millisecond)
	if err := os.Remove(path); err != nil {
		t.Fatal(err)
	}

	time.Sleep(500 * time.Millisecond)
	mu.Lock()
	defer mu.Unlock()
	if len(got) != 0 {
		t.Errorf("removed file should not be reported, got %v", got)
	}
}

func TestWatcher_SyncExistingFiles_reportsPresentPDFs(t *testing.T) {
	dir := t.TempDir()
	if err := writeFile(filepath.Join(dir, "old.pdf"), "%PDF-"); err != nil {
		t.Fatal(err)
	}
	if err := writeFile(filepath.Join(dir, "skip.txt"), "x"); err != nil {
		t.Fatal(err)
	}

	var got []string
	var mu sync.Mutex
	onPDF := func(path string) {
		mu.Lock()
		got = append(got, path)
		mu.Unlock()
	}
	w := NewWatcher([]string{dir}, true, onPDF)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	if err := w.Start(ctx); err != nil {
		t.Fatal(err)
	}
	defer w.Stop()
	w.SyncExistingFiles()

	mu.Lock()
	defer mu.Unlock()
	if len(got) != 1 || !strings.HasSuffix(got[0], "old.pdf") {
		t.Errorf("expected one existing PDF, got %v", got)
	}
}

func TestWatcher_Start_createsMissingRootDirectory(t *testing.T) {
	base := t.TempDir()
	root := filepath.Join(base, "drop", "editais")

	w := NewWatcher([]string{root}, true, nil)
	if err := w.Start(context.Background()); err != nil {
		t.Fatal(err)
	}
	if _, err := os.Stat(root); err != nil {
		t.Errorf("root directory should exist after Start: %v", err)
	}
}

func TestWatcher_newSubdirectoryIsPickedUp(t *testing.T) {
	dir := t.TempDir()

	var got []string
	var mu sync.Mutex
	onPDF := func(path string) {
		mu.Lock()
		got = append(got, path)
		mu.Unlock()
	}

	w := NewWatcher([]string{dir}, true, onPDF, WithDebounce(100*time.Millisecond))
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	if err := w.Start(ctx); err != nil {
		t.Fatal(err)
	}
	defer w.Stop()

	sub := filepath.Join(dir, "lote-07")
	if err := os.MkdirAll(sub, 0755); err != nil {
		t.Fatal(err)
	}
	if err := writeFile(filepath.Join(sub, "edital.pdf"), "%PDF-"); err != nil {
		t.Fatal(err)
	}

	time.Sleep(800 * time.Millisecond)
	mu.Lock()
	defer mu.Unlock()
	found := false
	for _, p := range got {
		if strings.HasSuffix(p, "edital.pdf") {
			found = true
		}
	}
	if !found {
		t.Errorf("expected edital.pdf in new subdirectory to be reported, got %v", got)
	}
}

func TestWatcher_Directories(t *testing.T) {
	dirs := []string{t.TempDir(), t.TempDir()}
	w := NewWatcher(dirs, false, nil)
	got := w.Directories()
	if len(got) != 2 || got[0] != dirs[0] || got[1] != dirs[1] {
		t.Errorf("Directories() = %v, want %v", got, dirs)
	}
}

func writeFile(path, content string) error {
	return os.WriteFile(path, []byte(content), 0600)
}
