// SPDX-License-Identifier: MIT

package walk

import (
	"os"
	"path/filepath"
	"testing"
)

func mustWriteFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("MkdirAll: %v", err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
}

func TestWalkBasic(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	mustWriteFile(t, filepath.Join(dir, "a.txt"), "a")
	mustWriteFile(t, filepath.Join(dir, "sub", "b.txt"), "b")

	listing, err := Walk(dir, Options{})
	if err != nil {
		t.Fatalf("Walk: %v", err)
	}

	if len(listing) != 2 {
		t.Fatalf("got %d entries, want 2: %+v", len(listing), listing)
	}
	if listing[0].Path != "a.txt" || listing[1].Path != "sub/b.txt" {
		t.Fatalf("got paths %q, %q, want lexicographic a.txt, sub/b.txt", listing[0].Path, listing[1].Path)
	}
	if *listing[0].ID != 0 || *listing[1].ID != 1 {
		t.Fatalf("got ids %d, %d, want dense 0, 1", *listing[0].ID, *listing[1].ID)
	}
}

func TestWalkHiddenDefaultExcluded(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	mustWriteFile(t, filepath.Join(dir, "a.txt"), "a")
	mustWriteFile(t, filepath.Join(dir, ".hidden"), "h")
	mustWriteFile(t, filepath.Join(dir, ".git", "config"), "c")

	listing, err := Walk(dir, Options{})
	if err != nil {
		t.Fatalf("Walk: %v", err)
	}
	if len(listing) != 1 || listing[0].Path != "a.txt" {
		t.Fatalf("got %+v, want only a.txt", listing)
	}

	listing, err = Walk(dir, Options{Hidden: true})
	if err != nil {
		t.Fatalf("Walk: %v", err)
	}
	if len(listing) != 3 {
		t.Fatalf("got %d entries with --hidden, want 3: %+v", len(listing), listing)
	}
}

func TestWalkGitIgnore(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	mustWriteFile(t, filepath.Join(dir, "keep.txt"), "k")
	mustWriteFile(t, filepath.Join(dir, "build", "out.bin"), "o")
	mustWriteFile(t, filepath.Join(dir, ".gitignore"), "build/\n")

	listing, err := Walk(dir, Options{})
	if err != nil {
		t.Fatalf("Walk: %v", err)
	}
	if len(listing) != 1 || listing[0].Path != "keep.txt" {
		t.Fatalf("got %+v, want only keep.txt", listing)
	}

	listing, err = Walk(dir, Options{NoGitIgnore: true})
	if err != nil {
		t.Fatalf("Walk: %v", err)
	}
	if len(listing) != 2 {
		t.Fatalf("got %d entries with --no-git-ignore, want 2: %+v", len(listing), listing)
	}
}

func TestWalkDeterministic(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	mustWriteFile(t, filepath.Join(dir, "z.txt"), "z")
	mustWriteFile(t, filepath.Join(dir, "a.txt"), "a")
	mustWriteFile(t, filepath.Join(dir, "m", "n.txt"), "n")

	first, err := Walk(dir, Options{})
	if err != nil {
		t.Fatalf("Walk: %v", err)
	}
	second, err := Walk(dir, Options{})
	if err != nil {
		t.Fatalf("Walk: %v", err)
	}

	if !first.Equal(second) {
		t.Fatalf("two walks diverged: %+v vs %+v", first, second)
	}
}
