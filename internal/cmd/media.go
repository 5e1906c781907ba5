package cmd

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/renamekit/renamekit/internal/config"
	"github.com/renamekit/renamekit/internal/core"
	"github.com/renamekit/renamekit/internal/media"
	"github.com/renamekit/renamekit/internal/report"
	"github.com/spf13/cobra"
)

var mediaCmd = &cobra.Command{
	Use:   "media [files...]",
	Short: "Rename media files into a canonical form",
	Long: `Rebuild media filenames from structured fields.

Season, episode, and title information is recovered from each filename
unless extraction is disabled, in which case the --episode or --part
start value increments by one per file. Extracted numbers take
precedence over the flags while extraction is on, because a per-file
match is more specific than a batch-wide value.`,
	Example: `  renamekit media --name 'My Show' --year 2023 --season 1 *.mkv
  renamekit media --name 'Epic Movie' --year 2023 --part 1 --no-extract part1.mp4 part2.mp4`,
	Args: cobra.MinimumNArgs(1),
	RunE: runMediaCommand,
}

var mediaFlags struct {
	name      string
	year      int
	season    int
	episode   int
	part      int
	noExtract bool
	noNumbers bool
	dryRun    bool
	logPath   string
}

func init() {
	f := mediaCmd.Flags()
	f.StringVar(&mediaFlags.name, "name", "", "Show or movie name (required)")
	f.IntVarP(&mediaFlags.year, "year", "y", 0, "Release year")
	f.IntVarP(&mediaFlags.season, "season", "s", 0, "Season number")
	f.IntVarP(&mediaFlags.episode, "episode", "e", 0, "Episode number, or the starting number when extraction is off")
	f.IntVarP(&mediaFlags.part, "part", "p", 0, "Part number, or the starting number when extraction is off")
	f.BoolVar(&mediaFlags.noExtract, "no-extract", false, "Disable filename extraction entirely; number files sequentially")
	f.BoolVar(&mediaFlags.noNumbers, "no-extract-numbers", false, "Keep extracting titles but ignore extracted season/episode numbers")
	f.BoolVarP(&mediaFlags.dryRun, "dry-run", "n", false, "Show what would happen without renaming")
	f.StringVar(&mediaFlags.logPath, "log", "", "Journal file for committed renames")

	_ = mediaCmd.MarkFlagRequired("name")
	rootCmd.AddCommand(mediaCmd)
}

func runMediaCommand(cmd *cobra.Command, args []string) error {
	flags := cmd.Flags()
	if flags.Changed("part") && flags.Changed("episode") {
		return &core.ValidationError{Msg: "--part and --episode are mutually exclusive"}
	}
	if mediaFlags.year != 0 && (mediaFlags.year < 1800 || mediaFlags.year > 2200) {
		return &core.ValidationError{Msg: fmt.Sprintf("implausible year %d", mediaFlags.year)}
	}

	cfg, err := config.Load()
	if err != nil {
		return err
	}
	journal, err := openJournal(cfg, mediaFlags.logPath, mediaFlags.dryRun)
	if err != nil {
		return err
	}
	if journal != nil {
		defer journal.Close()
	}

	names := make([]string, len(args))
	for i, f := range args {
		names[i] = filepath.Base(f)
	}
	rep := report.New(os.Stdout, report.ColumnWidth(names))
	rep.DryRun = mediaFlags.dryRun

	opts := core.Options{DryRun: mediaFlags.dryRun, Journal: journal}

	// Running counters for sequential numbering mode.
	nextEpisode := mediaFlags.episode
	nextPart := mediaFlags.part

	tally := core.Tally{}
	for _, path := range args {
		res := mediaRenameOne(cmd, cfg, path, &nextEpisode, &nextPart, opts)
		rep.File(res)
		tally.Add(res)
	}

	rep.Summary(tally)
	return batchError(tally, len(args))
}

// mediaRenameOne resolves and commits the canonical name for one file.
// In sequential numbering mode nextEpisode/nextPart advance once the
// file holds its number, whether the rename committed or the name was
// already canonical; failures and skips do not consume a number.
func mediaRenameOne(cmd *cobra.Command, cfg *config.Config, path string, nextEpisode, nextPart *int, opts core.Options) core.Result {
	if _, err := os.Stat(path); err != nil {
		return core.Result{OldPath: path, Status: core.StatusFailed, Err: &core.NotFoundError{Path: path}}
	}
	base := filepath.Base(path)
	if !mediaEligible(cfg, base) {
		slog.Warn("skipping unrecognized extension", "file", base)
		return core.Result{OldPath: path, Status: core.StatusSkipped, Err: &core.UnsupportedTypeError{Path: path}}
	}

	flags := cmd.Flags()
	desc := media.Descriptor{Name: mediaFlags.name}
	if flags.Changed("year") {
		desc.Year = mediaFlags.year
		desc.HasYear = true
	}
	if flags.Changed("season") {
		desc.Season = mediaFlags.season
		desc.HasSeason = true
	}

	sequential := mediaFlags.noExtract
	if sequential {
		if flags.Changed("part") {
			desc.Part = *nextPart
			desc.HasPart = true
		} else if flags.Changed("episode") {
			desc.Episode = *nextEpisode
			desc.HasEpisode = true
		}
	} else {
		if flags.Changed("part") {
			desc.Part = mediaFlags.part
			desc.HasPart = true
		}
		if flags.Changed("episode") {
			desc.Episode = mediaFlags.episode
			desc.HasEpisode = true
		}

		ex := media.Extract(base)
		if mediaFlags.noNumbers {
			ex.HasSeason = false
			ex.HasEpisode = false
		}
		// Extraction overrides the flags for season/episode but never
		// touches an explicit part.
		if desc.HasPart {
			ex.HasSeason = false
			ex.HasEpisode = false
		}
		desc = desc.Merge(ex)
	}

	_, ext := splitName(path)
	newName := media.Build(desc, ext)
	res := core.CommitRename(path, newName, opts)

	if sequential && (res.Status == core.StatusRenamed || res.Status == core.StatusNoChange) {
		*nextEpisode++
		*nextPart++
	}
	return res
}

// mediaEligible reports whether base has an extension media mode will
// touch: the built-in video and subtitle lists plus any configured
// extras.
func mediaEligible(cfg *config.Config, base string) bool {
	if media.IsVideo(base) || media.IsSubtitle(base) {
		return true
	}
	ext := filepath.Ext(base)
	for _, extra := range cfg.Media.ExtraExtensions {
		if ext == extra {
			return true
		}
	}
	return false
}
