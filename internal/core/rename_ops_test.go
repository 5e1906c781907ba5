package core

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/renamekit/renamekit/internal/log"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to create test file: %v", err)
	}
}

func TestCommitRename(t *testing.T) {
	dir := t.TempDir()
	oldPath := filepath.Join(dir, "a.txt")
	writeFile(t, oldPath, "content")

	res := CommitRename(oldPath, "b.txt", Options{})
	if res.Status != StatusRenamed {
		t.Fatalf("CommitRename status = %v, want StatusRenamed (err: %v)", res.Status, res.Err)
	}
	if _, err := os.Stat(filepath.Join(dir, "b.txt")); err != nil {
		t.Error("renamed file should exist")
	}
	if _, err := os.Stat(oldPath); err == nil {
		t.Error("original file should be gone")
	}
}

func TestCommitRenameNoChange(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "same.txt")
	writeFile(t, path, "x")

	res := CommitRename(path, "same.txt", Options{})
	if res.Status != StatusNoChange {
		t.Errorf("CommitRename status = %v, want StatusNoChange", res.Status)
	}
	if _, err := os.Stat(path); err != nil {
		t.Error("file should be untouched")
	}
}

func TestCommitRenameCollision(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "src.txt")
	dst := filepath.Join(dir, "dst.txt")
	writeFile(t, src, "src")
	writeFile(t, dst, "dst")

	res := CommitRename(src, "dst.txt", Options{})
	if res.Status != StatusFailed {
		t.Fatalf("CommitRename status = %v, want StatusFailed", res.Status)
	}
	var collision *CollisionError
	if !errors.As(res.Err, &collision) {
		t.Errorf("CommitRename err = %v, want CollisionError", res.Err)
	}
	// Both files stay as they were.
	for _, p := range []string{src, dst} {
		if _, err := os.Stat(p); err != nil {
			t.Errorf("file %s should be untouched after collision", p)
		}
	}
}

func TestCommitRenameMissingSource(t *testing.T) {
	dir := t.TempDir()

	res := CommitRename(filepath.Join(dir, "ghost.txt"), "b.txt", Options{})
	if res.Status != StatusFailed {
		t.Fatalf("CommitRename status = %v, want StatusFailed", res.Status)
	}
	var notFound *NotFoundError
	if !errors.As(res.Err, &notFound) {
		t.Errorf("CommitRename err = %v, want NotFoundError", res.Err)
	}
}

func TestCommitRenameSkipsDirectory(t *testing.T) {
	dir := t.TempDir()
	sub := filepath.Join(dir, "subdir")
	if err := os.Mkdir(sub, 0755); err != nil {
		t.Fatal(err)
	}

	res := CommitRename(sub, "renamed", Options{})
	if res.Status != StatusSkipped {
		t.Errorf("CommitRename status = %v, want StatusSkipped", res.Status)
	}
}

func TestCommitRenameDryRun(t *testing.T) {
	dir := t.TempDir()
	oldPath := filepath.Join(dir, "a.txt")
	writeFile(t, oldPath, "x")

	res := CommitRename(oldPath, "b.txt", Options{DryRun: true})
	if res.Status != StatusRenamed {
		t.Fatalf("CommitRename status = %v, want StatusRenamed", res.Status)
	}
	if _, err := os.Stat(oldPath); err != nil {
		t.Error("dry run must not touch the filesystem")
	}
	if _, err := os.Stat(filepath.Join(dir, "b.txt")); err == nil {
		t.Error("dry run must not create the target")
	}
}

func TestCommitRenameBackup(t *testing.T) {
	dir := t.TempDir()
	oldPath := filepath.Join(dir, "a.txt")
	writeFile(t, oldPath, "precious")

	res := CommitRename(oldPath, "b.txt", Options{Backup: true})
	if res.Status != StatusRenamed {
		t.Fatalf("CommitRename status = %v, want StatusRenamed (err: %v)", res.Status, res.Err)
	}
	data, err := os.ReadFile(oldPath + ".bak")
	if err != nil {
		t.Fatalf("backup file missing: %v", err)
	}
	if string(data) != "precious" {
		t.Errorf("backup content = %q, want %q", data, "precious")
	}
}

func TestCommitRenameJournals(t *testing.T) {
	dir := t.TempDir()
	oldPath := filepath.Join(dir, "a.txt")
	writeFile(t, oldPath, "x")

	logPath := filepath.Join(dir, "renames.log")
	j, err := log.Open(logPath)
	if err != nil {
		t.Fatal(err)
	}
	defer j.Close()

	res := CommitRename(oldPath, "b.txt", Options{Journal: j})
	if res.Status != StatusRenamed {
		t.Fatalf("CommitRename status = %v, want StatusRenamed", res.Status)
	}

	entries, err := log.ReadEntries(logPath)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 {
		t.Fatalf("journal has %d entries, want 1", len(entries))
	}
	if entries[0].OldPath != oldPath || entries[0].NewPath != filepath.Join(dir, "b.txt") {
		t.Errorf("journal entry = %+v, want old %s → new %s", entries[0], oldPath, filepath.Join(dir, "b.txt"))
	}
}

func TestTallyAdd(t *testing.T) {
	t.Parallel()
	var tally Tally
	for _, s := range []Status{StatusRenamed, StatusRenamed, StatusNoChange, StatusSkipped, StatusFailed} {
		tally.Add(Result{Status: s})
	}
	want := Tally{Renamed: 2, Unchanged: 1, Skipped: 1, Failed: 1}
	if tally != want {
		t.Errorf("Tally = %+v, want %+v", tally, want)
	}
}
