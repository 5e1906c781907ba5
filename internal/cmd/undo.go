package cmd

import (
	"fmt"
	"log/slog"

	renamelog "github.com/renamekit/renamekit/internal/log"
	"github.com/spf13/cobra"
)

var undoCmd = &cobra.Command{
	Use:   "undo <logfile>",
	Short: "Undo renames recorded in a journal file",
	Long: `Replay a rename journal in reverse, restoring original names.

Each entry is applied only when the renamed file still exists and the
original path is free; entries that no longer match the filesystem are
skipped rather than treated as failures, so a partially undone or
externally modified batch can be replayed safely.`,
	Args: cobra.ExactArgs(1),
	RunE: runUndoCommand,
}

func runUndoCommand(cmd *cobra.Command, args []string) error {
	res, err := renamelog.Undo(args[0], slog.Default())
	if err != nil {
		return err
	}

	fmt.Printf("Undo complete: %d restored, %d skipped, %d failed\n", res.Undone, res.Skipped, res.Failed)
	if res.Failed > 0 {
		return fmt.Errorf("%d undo operations failed", res.Failed)
	}
	return nil
}

func init() {
	rootCmd.AddCommand(undoCmd)
}
