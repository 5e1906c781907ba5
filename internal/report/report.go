// Package report renders per-file rename outcomes and batch tallies to
// the console. It is plain sequential output, not a TUI: one styled line
// per file, one summary line per batch.
package report

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
	"github.com/renamekit/renamekit/internal/core"
)

var (
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#2ecc71"))
	warnStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#f39c12"))
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#ef233c"))
	mutedStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#8d99ae"))
	boldStyle    = lipgloss.NewStyle().Bold(true)
)

// Reporter writes rename results as they happen. The source-name column
// is padded to width so the arrows line up; padding is display-width
// aware because media names routinely carry wide characters.
type Reporter struct {
	w      io.Writer
	width  int
	DryRun bool
}

// New returns a reporter writing to w. nameWidth is the column width for
// the old name; pass 0 to disable alignment.
func New(w io.Writer, nameWidth int) *Reporter {
	return &Reporter{w: w, width: nameWidth}
}

// ColumnWidth computes the display width needed to align the given
// names, capped so one pathological name cannot blow up the layout.
func ColumnWidth(names []string) int {
	const maxColumn = 60
	width := 0
	for _, n := range names {
		if w := runewidth.StringWidth(n); w > width {
			width = w
		}
	}
	if width > maxColumn {
		width = maxColumn
	}
	return width
}

// File prints one styled line for a single file's result.
func (r *Reporter) File(res core.Result) {
	old := runewidth.FillRight(baseOf(res.OldPath), r.width)

	switch res.Status {
	case core.StatusRenamed:
		mark := successStyle.Render("✓")
		if r.DryRun {
			mark = mutedStyle.Render("~")
		}
		fmt.Fprintf(r.w, "%s %s → %s\n", mark, old, baseOf(res.NewPath))
	case core.StatusNoChange:
		fmt.Fprintf(r.w, "%s %s %s\n", mutedStyle.Render("="), old, mutedStyle.Render("no changes needed"))
	case core.StatusSkipped:
		fmt.Fprintf(r.w, "%s %s %s\n", warnStyle.Render("-"), old, warnStyle.Render("skipped: "+reason(res)))
	case core.StatusFailed:
		fmt.Fprintf(r.w, "%s %s %s\n", errorStyle.Render("✗"), old, errorStyle.Render(reason(res)))
	}
}

// Summary prints the end-of-batch tally.
func (r *Reporter) Summary(t core.Tally) {
	verb := "renamed"
	if r.DryRun {
		verb = "would rename"
	}
	parts := []string{fmt.Sprintf("%d %s", t.Renamed, verb)}
	if t.Unchanged > 0 {
		parts = append(parts, fmt.Sprintf("%d unchanged", t.Unchanged))
	}
	if t.Skipped > 0 {
		parts = append(parts, fmt.Sprintf("%d skipped", t.Skipped))
	}
	if t.Failed > 0 {
		parts = append(parts, errorStyle.Render(fmt.Sprintf("%d failed", t.Failed)))
	}
	fmt.Fprintln(r.w, boldStyle.Render(strings.Join(parts, ", ")))
}

func reason(res core.Result) string {
	if res.Err != nil {
		return res.Err.Error()
	}
	return "unknown"
}

func baseOf(path string) string {
	return filepath.Base(path)
}
