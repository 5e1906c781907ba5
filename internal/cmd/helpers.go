package cmd

import (
	"bufio"
	"fmt"
	"io"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/renamekit/renamekit/internal/config"
	"github.com/renamekit/renamekit/internal/core"
	renamelog "github.com/renamekit/renamekit/internal/log"
)

// openJournal resolves where committed renames should be recorded. An
// explicit --log path always wins; otherwise the config decides whether
// and where to journal. Dry runs never open a journal because nothing
// commits.
func openJournal(cfg *config.Config, explicitPath string, dryRun bool) (*renamelog.Journal, error) {
	if dryRun {
		return nil, nil
	}
	path := explicitPath
	if path == "" {
		if !cfg.Log.Enabled {
			return nil, nil
		}
		p, err := cfg.JournalPath()
		if err != nil {
			return nil, err
		}
		path = p
	}
	j, err := renamelog.Open(path)
	if err != nil {
		return nil, err
	}
	slog.Debug("journaling renames", "path", path)
	return j, nil
}

// confirm asks the user to approve one rename. Anything but an explicit
// yes declines.
func confirm(in io.Reader, out io.Writer, oldName, newName string) bool {
	fmt.Fprintf(out, "rename %s → %s? [y/N] ", oldName, newName)
	reader := bufio.NewReader(in)
	line, err := reader.ReadString('\n')
	if err != nil {
		return false
	}
	switch strings.ToLower(strings.TrimSpace(line)) {
	case "y", "yes":
		return true
	}
	return false
}

// batchError converts a tally into the command's exit condition: any
// per-file failure makes the whole run exit non-zero, but only after
// every file has been attempted.
func batchError(t core.Tally, total int) error {
	if t.Failed == 0 {
		return nil
	}
	return fmt.Errorf("%d of %d files failed", t.Failed, total)
}

// splitName separates a filename into its stem and extension (extension
// keeps no dot; empty when the file has none).
func splitName(path string) (stem, ext string) {
	base := filepath.Base(path)
	e := filepath.Ext(base)
	if e == "" || e == base {
		return base, ""
	}
	return strings.TrimSuffix(base, e), strings.TrimPrefix(e, ".")
}
