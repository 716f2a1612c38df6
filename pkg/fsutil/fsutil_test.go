package fsutil_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/yaklabco/mdconv/pkg/fsutil"
)

func TestReadFile(t *testing.T) {
	t.Parallel()

	t.Run("reads file content", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		path := filepath.Join(dir, "doc.md")
		content := []byte("# hello\n")

		if err := os.WriteFile(path, content, 0644); err != nil {
			t.Fatalf("setup: %v", err)
		}

		got, err := fsutil.ReadFile(context.Background(), path)
		if err != nil {
			t.Fatalf("ReadFile() error = %v", err)
		}
		if string(got) != string(content) {
			t.Errorf("content = %q, want %q", got, content)
		}
	})

	t.Run("categorizes missing file", func(t *testing.T) {
		t.Parallel()

		_, err := fsutil.ReadFile(context.Background(), "/nonexistent/path/doc.md")
		if !errors.Is(err, fsutil.ErrNotFound) {
			t.Fatalf("error = %v, want ErrNotFound", err)
		}
	})

	t.Run("categorizes directory", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		_, err := fsutil.ReadFile(context.Background(), dir)
		if !errors.Is(err, fsutil.ErrIsDirectory) {
			t.Fatalf("error = %v, want ErrIsDirectory", err)
		}
	})

	t.Run("respects context cancellation", func(t *testing.T) {
		t.Parallel()

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		if _, err := fsutil.ReadFile(ctx, "anypath"); err == nil {
			t.Fatal("expected error for cancelled context")
		}
	})
}

func TestEnsureDir(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	nested := filepath.Join(dir, "out", "deep")

	if err := fsutil.EnsureDir(nested); err != nil {
		t.Fatalf("EnsureDir() error = %v", err)
	}

	stat, err := os.Stat(nested)
	if err != nil {
		t.Fatalf("stat: %v", err)
	}
	if !stat.IsDir() {
		t.Error("expected a directory")
	}

	// Idempotent.
	if err := fsutil.EnsureDir(nested); err != nil {
		t.Errorf("EnsureDir() second call error = %v", err)
	}
}

func TestReplaceExt(t *testing.T) {
	t.Parallel()

	tests := []struct {
		path string
		ext  string
		want string
	}{
		{path: "doc.md", ext: ".html", want: "doc.html"},
		{path: "dir/doc.markdown", ext: ".html", want: "dir/doc.html"},
		{path: "noext", ext: ".html", want: "noext.html"},
		{path: "a.b.md", ext: ".html", want: "a.b.html"},
	}

	for _, testCase := range tests {
		if got := fsutil.ReplaceExt(testCase.path, testCase.ext); got != testCase.want {
			t.Errorf("ReplaceExt(%q, %q) = %q, want %q",
				testCase.path, testCase.ext, got, testCase.want)
		}
	}
}
