package log

import (
	"fmt"
	"log/slog"
	"os"
)

// UndoResult tallies one undo replay. Skipped entries failed the
// filesystem precondition; they are neither successes nor hard
// failures.
type UndoResult struct {
	Undone  int
	Skipped int
	Failed  int
}

// Undo replays the journal at logPath in reverse commit order, renaming
// each entry's new path back to its old path. Chained renames (a→b then
// b→c) unwind correctly only in reverse order, which is why the order is
// not configurable.
//
// An entry is acted on only when its new path still exists and its old
// path does not. Entries failing either check are skipped and logged at
// debug level; an undo never overwrites a file it did not create.
func Undo(logPath string, logger *slog.Logger) (UndoResult, error) {
	if logger == nil {
		logger = slog.Default()
	}

	entries, err := ReadEntries(logPath)
	if err != nil {
		return UndoResult{}, err
	}
	if len(entries) == 0 {
		return UndoResult{}, fmt.Errorf("no rename entries found in %s", logPath)
	}

	var res UndoResult
	for i := len(entries) - 1; i >= 0; i-- {
		e := entries[i]

		if _, err := os.Stat(e.NewPath); err != nil {
			logger.Debug("skipping undo entry: renamed file missing", "path", e.NewPath)
			res.Skipped++
			continue
		}
		if _, err := os.Stat(e.OldPath); err == nil {
			logger.Debug("skipping undo entry: original path occupied", "path", e.OldPath)
			res.Skipped++
			continue
		}

		if err := os.Rename(e.NewPath, e.OldPath); err != nil {
			logger.Warn("undo rename failed", "from", e.NewPath, "to", e.OldPath, "error", err)
			res.Failed++
			continue
		}
		res.Undone++
	}

	return res, nil
}
