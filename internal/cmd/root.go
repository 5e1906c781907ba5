package cmd

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "renamekit",
	Short: "A tool for renaming files in bulk",
	Long: `renamekit renames files according to declarative rules.

Media mode recovers season, episode, and title information from existing
filenames and rebuilds them into a canonical form. Transform mode runs a
fixed pipeline of find/replace, regex, custom transform, prefix, suffix,
case, and template stages over any batch of files.

Every committed rename is appended to a journal file that the undo
command can replay in reverse to restore the previous names.`,
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		level := slog.LevelInfo
		if verbose {
			level = slog.LevelDebug
		}
		slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
	},
}

var verbose bool

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
}
