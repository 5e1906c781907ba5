package cmd

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/renamekit/renamekit/internal/config"
	"github.com/renamekit/renamekit/internal/core"
	"github.com/renamekit/renamekit/internal/rename"
	"github.com/renamekit/renamekit/internal/report"
	"github.com/spf13/cobra"
)

var transformCmd = &cobra.Command{
	Use:   "transform",
	Short: "Rename files through the transformation pipeline",
	Long: `Apply an ordered pipeline of transformation stages to filenames.

Stages always run in a fixed order: find/replace, regex, custom
transform, prefix, suffix, case conversion. A template, when given,
replaces the pipeline's output entirely. Select a single file with
--file or a whole directory with --dir plus an optional glob --pattern.`,
	Example: `  renamekit transform --dir ./photos --pattern '*.jpg' --transform date
  renamekit transform --file notes.txt --prefix 'NEW_' --find '_' --replace-with '-'
  renamekit transform --dir . --template '{basename}_{counter}.{extension}' --dry-run`,
	RunE: runTransformCommand,
}

var transformFlags struct {
	find           string
	replaceWith    string
	pattern        string
	patternReplace string
	transform      string
	prefix         string
	suffix         string
	caseMode       string
	template       string

	file      string
	dir       string
	glob      string
	recursive bool

	dryRun      bool
	backup      bool
	interactive bool
	logPath     string
	profile     string
}

func init() {
	f := transformCmd.Flags()
	f.StringVar(&transformFlags.find, "find", "", "Literal text to replace")
	f.StringVar(&transformFlags.replaceWith, "replace-with", "", "Replacement for --find text")
	f.StringVar(&transformFlags.pattern, "regex", "", "Regex pattern to replace")
	f.StringVar(&transformFlags.patternReplace, "regex-replace", "", "Replacement for --regex, \\1 references capture groups")
	f.StringVar(&transformFlags.transform, "transform", "", "Custom transform: date, datetime, counter, random, hash, parsedate")
	f.StringVar(&transformFlags.prefix, "prefix", "", "Text prepended to the name")
	f.StringVar(&transformFlags.suffix, "suffix", "", "Text inserted before the extension")
	f.StringVar(&transformFlags.caseMode, "case", "", "Case conversion: upper, lower, title")
	f.StringVar(&transformFlags.template, "template", "", "Template for the final name, e.g. '{basename}_{counter}.{extension}'")

	f.StringVar(&transformFlags.file, "file", "", "Single file to rename")
	f.StringVar(&transformFlags.dir, "dir", "", "Directory to process as a batch")
	f.StringVar(&transformFlags.glob, "pattern", "", "Glob filter for batch selection (default *)")
	f.BoolVarP(&transformFlags.recursive, "recursive", "r", false, "Recurse into subdirectories")

	f.BoolVarP(&transformFlags.dryRun, "dry-run", "n", false, "Show what would happen without renaming")
	f.BoolVarP(&transformFlags.backup, "backup", "b", false, "Copy each file to <name>.bak before renaming")
	f.BoolVarP(&transformFlags.interactive, "interactive", "i", false, "Confirm each rename")
	f.StringVar(&transformFlags.logPath, "log", "", "Journal file for committed renames")
	f.StringVar(&transformFlags.profile, "profile", "", "Named rule profile from the config file")

	rootCmd.AddCommand(transformCmd)
}

func runTransformCommand(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	rule, err := resolveRule(cmd, cfg)
	if err != nil {
		return err
	}

	files, err := selectTransformFiles()
	if err != nil {
		return err
	}
	if len(files) == 0 {
		fmt.Println("No files matched.")
		return nil
	}

	journal, err := openJournal(cfg, transformFlags.logPath, transformFlags.dryRun)
	if err != nil {
		return err
	}
	if journal != nil {
		defer journal.Close()
	}

	names := make([]string, len(files))
	for i, f := range files {
		names[i] = filepath.Base(f)
	}
	rep := report.New(os.Stdout, report.ColumnWidth(names))
	rep.DryRun = transformFlags.dryRun

	pipeline := rename.NewPipeline(slog.Default())
	opts := core.Options{
		DryRun:  transformFlags.dryRun,
		Backup:  transformFlags.backup,
		Journal: journal,
	}

	tally := core.Tally{}
	for _, path := range files {
		oldName := filepath.Base(path)
		newName := pipeline.Apply(oldName, rule, path)

		if newName == oldName {
			res := core.Result{OldPath: path, NewPath: path, Status: core.StatusNoChange}
			rep.File(res)
			tally.Add(res)
			continue
		}
		if transformFlags.interactive && !confirm(os.Stdin, os.Stdout, oldName, newName) {
			res := core.Result{OldPath: path, Status: core.StatusSkipped, Err: fmt.Errorf("declined")}
			rep.File(res)
			tally.Add(res)
			continue
		}

		res := core.CommitRename(path, newName, opts)
		rep.File(res)
		tally.Add(res)
	}

	rep.Summary(tally)
	return batchError(tally, len(files))
}

// resolveRule builds the pipeline rule from the selected profile (when
// any) overlaid with explicitly set flags. Flags win field by field.
func resolveRule(cmd *cobra.Command, cfg *config.Config) (rename.Rule, error) {
	rule := rename.Rule{}
	if transformFlags.profile != "" {
		p, ok := cfg.Profiles[transformFlags.profile]
		if !ok {
			return rule, &core.ValidationError{Msg: fmt.Sprintf("unknown profile %q", transformFlags.profile)}
		}
		rule = p.Rule()
	}

	flags := cmd.Flags()
	if flags.Changed("find") {
		rule.Find = transformFlags.find
	}
	if flags.Changed("replace-with") {
		rule.ReplaceWith = transformFlags.replaceWith
	}
	if flags.Changed("regex") {
		rule.Pattern = transformFlags.pattern
	}
	if flags.Changed("regex-replace") {
		rule.PatternReplace = transformFlags.patternReplace
	}
	if flags.Changed("transform") {
		rule.Transform = transformFlags.transform
	}
	if flags.Changed("prefix") {
		rule.Prefix = transformFlags.prefix
	}
	if flags.Changed("suffix") {
		rule.Suffix = transformFlags.suffix
	}
	if flags.Changed("case") {
		rule.Case = rename.CaseMode(transformFlags.caseMode)
	}
	if flags.Changed("template") {
		rule.Template = transformFlags.template
	}

	if rule.Empty() {
		return rule, &core.ValidationError{Msg: "no transformation stages given; see --help"}
	}
	if rule.Case != "" && !rename.ValidCaseMode(string(rule.Case)) {
		return rule, &core.ValidationError{Msg: fmt.Sprintf("invalid case mode %q (want upper, lower, or title)", rule.Case)}
	}
	return rule, nil
}

func selectTransformFiles() ([]string, error) {
	hasFile := transformFlags.file != ""
	hasDir := transformFlags.dir != ""

	switch {
	case hasFile && hasDir:
		return nil, &core.ValidationError{Msg: "--file and --dir are mutually exclusive"}
	case hasFile:
		if transformFlags.glob != "" || transformFlags.recursive {
			return nil, &core.ValidationError{Msg: "--pattern and --recursive require --dir"}
		}
		path, err := core.SelectFile(transformFlags.file)
		if err != nil {
			return nil, err
		}
		return []string{path}, nil
	case hasDir:
		return core.SelectBatch(transformFlags.dir, transformFlags.glob, transformFlags.recursive)
	default:
		return nil, &core.ValidationError{Msg: "either --file or --dir is required"}
	}
}
