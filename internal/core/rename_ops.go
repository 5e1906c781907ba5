package core

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/renamekit/renamekit/internal/log"
)

// Status is the lifecycle outcome of one file's rename attempt.
type Status int

const (
	StatusRenamed  Status = iota // filesystem rename committed
	StatusNoChange               // target name equals source name; nothing done
	StatusSkipped                // file not eligible (wrong type); not an error
	StatusFailed                 // validation or filesystem failure
)

// Result reports what happened to a single file.
type Result struct {
	OldPath string
	NewPath string
	Status  Status
	Err     error
}

// Options configures how renames are committed.
type Options struct {
	DryRun  bool
	Backup  bool
	Journal *log.Journal // nil disables journaling
}

// Tally aggregates a batch. One failing file never stops its siblings;
// the caller turns Failed > 0 into the process exit status.
type Tally struct {
	Renamed   int
	Unchanged int
	Skipped   int
	Failed    int
}

// Add folds one result into the tally.
func (t *Tally) Add(r Result) {
	switch r.Status {
	case StatusRenamed:
		t.Renamed++
	case StatusNoChange:
		t.Unchanged++
	case StatusSkipped:
		t.Skipped++
	case StatusFailed:
		t.Failed++
	}
}

// CommitRename renames the file at oldPath to newName within its
// directory. The sequence per file is validate, then back up when
// requested, then rename, then append to the journal. Any validation
// failure marks this file failed without touching the filesystem, and a
// dry run stops right after validation.
func CommitRename(oldPath, newName string, opts Options) Result {
	newPath := filepath.Join(filepath.Dir(oldPath), newName)
	res := Result{OldPath: oldPath, NewPath: newPath}

	info, err := os.Lstat(oldPath)
	if err != nil {
		res.Status = StatusFailed
		res.Err = &NotFoundError{Path: oldPath}
		return res
	}
	if info.IsDir() || !info.Mode().IsRegular() {
		res.Status = StatusSkipped
		res.Err = &UnsupportedTypeError{Path: oldPath}
		return res
	}

	if oldPath == newPath {
		res.Status = StatusNoChange
		return res
	}

	// Renames never overwrite: an occupied target fails this file only.
	if _, err := os.Stat(newPath); err == nil {
		res.Status = StatusFailed
		res.Err = &CollisionError{Path: newPath}
		return res
	}

	if opts.DryRun {
		res.Status = StatusRenamed
		return res
	}

	if opts.Backup {
		if err := copyFile(oldPath, oldPath+".bak"); err != nil {
			res.Status = StatusFailed
			res.Err = fmt.Errorf("backup failed: %w", err)
			return res
		}
	}

	if err := os.Rename(oldPath, newPath); err != nil {
		res.Status = StatusFailed
		res.Err = fmt.Errorf("rename failed: %w", err)
		return res
	}

	// Journal after the rename so the log only ever records commits
	// that really happened.
	if opts.Journal != nil {
		if err := opts.Journal.Record(oldPath, newPath); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
		}
	}

	res.Status = StatusRenamed
	return res
}

func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.Create(dst)
	if err != nil {
		return err
	}
	defer out.Close()

	if _, err := io.Copy(out, in); err != nil {
		return err
	}
	return out.Sync()
}
