package rename

import (
	"log/slog"
	"regexp"
	"strings"
	"time"

	"github.com/patrickmn/go-cache"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Pipeline applies transformation rules to filenames. It owns the
// mutable state the stages need: the counters, the content-hash cache,
// and the clock and randomness hooks that tests override.
type Pipeline struct {
	Counters *Counters

	// Clock and Rand are overridable for deterministic tests.
	Clock func() time.Time
	Rand  func(n int) string

	hashCache *cache.Cache
	titleCase cases.Caser
	logger    *slog.Logger
}

// NewPipeline returns a pipeline with fresh counters. A nil logger
// falls back to slog.Default.
func NewPipeline(logger *slog.Logger) *Pipeline {
	if logger == nil {
		logger = slog.Default()
	}
	return &Pipeline{
		Counters:  &Counters{},
		Clock:     time.Now,
		Rand:      randomString,
		hashCache: cache.New(10*time.Minute, 30*time.Minute),
		titleCase: cases.Title(language.English, cases.NoLower),
		logger:    logger,
	}
}

// Apply runs every configured stage of rule against name in the fixed
// order replace → regex → custom transform → prefix → suffix → case.
// sourcePath is the file the name belongs to; only the hash transform
// reads it.
//
// A non-empty template replaces the accumulated result outright. The
// earlier stages still execute first, and their side effects (counter
// increments in particular) happen even when the template discards
// their text.
func (p *Pipeline) Apply(name string, rule Rule, sourcePath string) string {
	result := name

	if rule.Find != "" {
		result = strings.ReplaceAll(result, rule.Find, rule.ReplaceWith)
	}
	if rule.Pattern != "" {
		result = p.regexReplace(result, rule.Pattern, rule.PatternReplace)
	}
	if rule.Transform != "" {
		result = p.customTransform(result, rule.Transform, sourcePath)
	}
	if rule.Prefix != "" {
		result = rule.Prefix + result
	}
	if rule.Suffix != "" {
		result = insertBeforeExt(result, rule.Suffix)
	}
	if rule.Case != CaseNone {
		result = p.convertCase(result, rule.Case)
	}
	if rule.Template != "" {
		result = p.expandTemplate(rule.Template, result)
	}

	return result
}

// backrefRe finds \1-style back-references in a replacement string.
var backrefRe = regexp.MustCompile(`\\(\d+)`)

// regexReplace substitutes all matches of pattern in name. The
// replacement may reference capture groups as \1, \2, and so on. An
// invalid pattern degrades to returning the input unchanged.
func (p *Pipeline) regexReplace(name, pattern, replacement string) string {
	re, err := regexp.Compile(pattern)
	if err != nil {
		p.logger.Warn("invalid regex pattern, name left unchanged", "pattern", pattern, "error", err)
		return name
	}

	// Escape any literal $ first, then rewrite \N into Go's ${N} form.
	repl := strings.ReplaceAll(replacement, "$", "$$")
	repl = backrefRe.ReplaceAllStringFunc(repl, func(m string) string {
		return "${" + m[1:] + "}"
	})

	return re.ReplaceAllString(name, repl)
}

// convertCase applies mode to the whole name, extension included.
func (p *Pipeline) convertCase(name string, mode CaseMode) string {
	switch mode {
	case CaseUpper:
		return strings.ToUpper(name)
	case CaseLower:
		return strings.ToLower(name)
	case CaseTitle:
		return p.titleCase.String(name)
	default:
		p.logger.Warn("unknown case mode, name left unchanged", "mode", string(mode))
		return name
	}
}

// insertBeforeExt inserts text immediately before the last extension
// separator, or appends it when the name has no extension.
func insertBeforeExt(name, text string) string {
	if i := strings.LastIndex(name, "."); i >= 0 {
		return name[:i] + text + name[i:]
	}
	return name + text
}

// splitExt splits a name into base and extension (without the dot).
func splitExt(name string) (base, ext string) {
	if i := strings.LastIndex(name, "."); i >= 0 {
		return name[:i], name[i+1:]
	}
	return name, ""
}
