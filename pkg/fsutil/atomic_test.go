package fsutil_test

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/yaklabco/mdconv/pkg/fsutil"
)

func TestWriteAtomic(t *testing.T) {
	t.Parallel()

	t.Run("writes and overwrites", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		path := filepath.Join(dir, "out.html")
		ctx := context.Background()

		if err := fsutil.WriteAtomic(ctx, path, []byte("<p>one</p>\n"), 0644); err != nil {
			t.Fatalf("WriteAtomic() error = %v", err)
		}
		if err := fsutil.WriteAtomic(ctx, path, []byte("<p>two</p>\n"), 0644); err != nil {
			t.Fatalf("WriteAtomic() overwrite error = %v", err)
		}

		got, err := os.ReadFile(path)
		if err != nil {
			t.Fatalf("read back: %v", err)
		}
		if string(got) != "<p>two</p>\n" {
			t.Errorf("content = %q, want %q", got, "<p>two</p>\n")
		}
	})

	t.Run("uses default mode when zero", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		path := filepath.Join(dir, "out.html")

		if err := fsutil.WriteAtomic(context.Background(), path, []byte("x"), 0); err != nil {
			t.Fatalf("WriteAtomic() error = %v", err)
		}

		stat, err := os.Stat(path)
		if err != nil {
			t.Fatalf("stat: %v", err)
		}
		if stat.Mode().Perm() != fsutil.DefaultFileMode {
			t.Errorf("mode = %o, want %o", stat.Mode().Perm(), fsutil.DefaultFileMode)
		}
	})

	t.Run("respects context cancellation", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		path := filepath.Join(dir, "out.html")

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		if err := fsutil.WriteAtomic(ctx, path, []byte("x"), 0644); err == nil {
			t.Fatal("expected error for cancelled context")
		}
		if _, err := os.Stat(path); !os.IsNotExist(err) {
			t.Error("file should not have been created")
		}
	})

	t.Run("cleans up temp file on error", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		path := filepath.Join(dir, "missing-parent", "out.html")

		if err := fsutil.WriteAtomic(context.Background(), path, []byte("x"), 0644); err == nil {
			t.Fatal("expected error for invalid path")
		}

		entries, err := os.ReadDir(dir)
		if err != nil {
			t.Fatalf("readdir: %v", err)
		}
		for _, entry := range entries {
			if strings.Contains(entry.Name(), ".tmp.") {
				t.Errorf("temp file left behind: %s", entry.Name())
			}
		}
	})
}

func TestWriteAtomicIfChanged(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "out.html")
	ctx := context.Background()

	changed, err := fsutil.WriteAtomicIfChanged(ctx, path, []byte("<p>a</p>\n"), 0644)
	if err != nil {
		t.Fatalf("WriteAtomicIfChanged() error = %v", err)
	}
	if !changed {
		t.Error("expected changed = true for new file")
	}

	changed, err = fsutil.WriteAtomicIfChanged(ctx, path, []byte("<p>a</p>\n"), 0644)
	if err != nil {
		t.Fatalf("WriteAtomicIfChanged() error = %v", err)
	}
	if changed {
		t.Error("expected changed = false for identical content")
	}

	changed, err = fsutil.WriteAtomicIfChanged(ctx, path, []byte("<p>b</p>\n"), 0644)
	if err != nil {
		t.Fatalf("WriteAtomicIfChanged() error = %v", err)
	}
	if !changed {
		t.Error("expected changed = true for different content")
	}

	got, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read back: %v", err)
	}
	if string(got) != "<p>b</p>\n" {
		t.Errorf("content = %q, want %q", got, "<p>b</p>\n")
	}
}
