package app

import (
	"os"
	"path/filepath"
	"testing"

	infrafs "tidyext/internal/infra/fs"
)

// Covers the full relocation pipeline against the real filesystem: discovery,
// destination creation, moves, and idempotence of a second run.
func TestRelocateEndToEnd(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"a.mov", "b.MOV", "c.txt"} {
		if err := os.WriteFile(filepath.Join(dir, name), []byte("content"), 0o644); err != nil {
			t.Fatalf("write %s: %v", name, err)
		}
	}

	filesystem := infrafs.OSFS{}
	scanner := Scanner{FS: filesystem}
	mover := Mover{FS: filesystem}

	matches, err := scanner.Discover(dir, "mov")
	if err != nil {
		t.Fatalf("discover: %v", err)
	}
	if len(matches) != 2 {
		t.Fatalf("expected 2 matches, got %d", len(matches))
	}

	dest, created, err := mover.EnsureDestination(dir, "mov")
	if err != nil {
		t.Fatalf("ensure destination: %v", err)
	}
	if !created {
		t.Fatalf("expected destination to be created")
	}

	report := mover.MoveAll(matches, dest)
	if report.Moved != 2 {
		t.Fatalf("expected 2 moved, got %d", report.Moved)
	}

	for _, name := range []string{"a.mov", "b.MOV"} {
		if _, err := os.Stat(filepath.Join(dest, name)); err != nil {
			t.Fatalf("expected %s in destination: %v", name, err)
		}
	}
	if _, err := os.Stat(filepath.Join(dir, "c.txt")); err != nil {
		t.Fatalf("expected c.txt untouched: %v", err)
	}

	// A second run finds nothing; the destination directory itself is not a
	// candidate.
	again, err := scanner.Discover(dir, "mov")
	if err != nil {
		t.Fatalf("second discover: %v", err)
	}
	if len(again) != 0 {
		t.Fatalf("expected no matches on second run, got %d", len(again))
	}

	_, createdAgain, err := mover.EnsureDestination(dir, "mov")
	if err != nil {
		t.Fatalf("expected existing destination to be accepted: %v", err)
	}
	if createdAgain {
		t.Fatalf("destination should not be created twice")
	}
}
