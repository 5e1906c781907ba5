package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/renamekit/renamekit/internal/config"
	"github.com/renamekit/renamekit/internal/core"
)

func writeMediaFile(t *testing.T, path string) {
	t.Helper()
	if err := os.WriteFile(path, []byte("data"), 0644); err != nil {
		t.Fatalf("writeMediaFile(%q): %v", path, err)
	}
}

func TestSequentialNumberingAdvancesPastCanonicalName(t *testing.T) {
	dir := t.TempDir()
	first := filepath.Join(dir, "Epic Movie (2023) - Part 1.mp4")
	second := filepath.Join(dir, "raw.mp4")
	writeMediaFile(t, first)
	writeMediaFile(t, second)

	f := mediaCmd.Flags()
	for flag, value := range map[string]string{
		"name":       "Epic Movie",
		"year":       "2023",
		"part":       "1",
		"no-extract": "true",
	} {
		if err := f.Set(flag, value); err != nil {
			t.Fatalf("set --%s: %v", flag, err)
		}
	}

	cfg := config.DefaultConfig()
	opts := core.Options{}
	nextEpisode := mediaFlags.episode
	nextPart := mediaFlags.part

	// The first file already carries its sequential name. It must still
	// consume number 1, or the second file collides with it.
	res := mediaRenameOne(mediaCmd, cfg, first, &nextEpisode, &nextPart, opts)
	if res.Status != core.StatusNoChange {
		t.Fatalf("first file status = %v (err %v), want StatusNoChange", res.Status, res.Err)
	}
	if nextPart != 2 {
		t.Fatalf("nextPart after canonical file = %d, want 2", nextPart)
	}

	res = mediaRenameOne(mediaCmd, cfg, second, &nextEpisode, &nextPart, opts)
	if res.Status != core.StatusRenamed {
		t.Fatalf("second file status = %v (err %v), want StatusRenamed", res.Status, res.Err)
	}
	want := filepath.Join(dir, "Epic Movie (2023) - Part 2.mp4")
	if res.NewPath != want {
		t.Errorf("second file renamed to %q, want %q", res.NewPath, want)
	}
	if _, err := os.Stat(want); err != nil {
		t.Errorf("renamed file missing: %v", err)
	}

	// A failing file must not consume a number.
	res = mediaRenameOne(mediaCmd, cfg, filepath.Join(dir, "missing.mp4"), &nextEpisode, &nextPart, opts)
	if res.Status != core.StatusFailed {
		t.Fatalf("missing file status = %v, want StatusFailed", res.Status)
	}
	if nextPart != 3 {
		t.Errorf("nextPart after failure = %d, want 3", nextPart)
	}
}
