package cliutil

import (
	"os"
	"path/filepath"
	"testing"
)

func TestUniquePathReturnsRequestedWhenFree(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "scene.ppm")
	got, err := UniquePath(path)
	if err != nil {
		t.Fatalf("UniquePath() err = %v", err)
	}
	if got != path {
		t.Errorf("UniquePath() = %q, want %q", got, path)
	}
}

func TestUniquePathAppendsSuffixOnCollision(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "scene.ppm")
	if err := os.WriteFile(path, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}
	got, err := UniquePath(path)
	if err != nil {
		t.Fatalf("UniquePath() err = %v", err)
	}
	want := filepath.Join(dir, "scene (1).ppm")
	if got != want {
		t.Errorf("UniquePath() = %q, want %q", got, want)
	}
}

func TestUniquePathRetriesPastMultipleCollisions(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "scene.ppm")
	for _, p := range []string{
		path,
		filepath.Join(dir, "scene (1).ppm"),
		filepath.Join(dir, "scene (2).ppm"),
	} {
		if err := os.WriteFile(p, []byte("x"), 0o644); err != nil {
			t.Fatal(err)
		}
	}
	got, err := UniquePath(path)
	if err != nil {
		t.Fatalf("UniquePath() err = %v", err)
	}
	want := filepath.Join(dir, "scene (3).ppm")
	if got != want {
		t.Errorf("UniquePath() = %q, want %q", got, want)
	}
}
