package media

import (
	"path/filepath"
	"regexp"
	"strconv"
	"strings"
)

// Filename parsing utilities.
//
// This file consolidates the regular expressions and helpers used to
// recover season, episode, and title information from existing file
// names. Parsing is deliberately tolerant: community naming conventions
// vary wildly, so each field is tried against an ordered list of pattern
// families and the first match wins. A field that matches nothing stays
// absent; callers must never substitute zero for a missing value.
var (
	// seasonEpisodeRe matches combined forms: S01E02, s1e2.
	seasonEpisodeRe = regexp.MustCompile(`(?i)\bs(\d+)[\s._-]*e(\d+)`)

	// seasonWordRe matches "Season 3" / "season03".
	seasonWordRe = regexp.MustCompile(`(?i)\bseason[\s._-]*(\d+)\b`)

	// partRe matches "Part 2" / "part2".
	partRe = regexp.MustCompile(`(?i)\bpart[\s._-]*(\d+)\b`)

	// episodeWordRe matches "Episode 5", "Ep 5", "Ep.5".
	episodeWordRe = regexp.MustCompile(`(?i)\b(?:episode|ep)\.?[\s._-]*(\d+)\b`)

	// episodeMarkerRe matches a bare E-number marker: E05, e5.
	episodeMarkerRe = regexp.MustCompile(`(?i)\be(\d+)\b`)

	// bracketNumberRe matches a bracketed index: [12].
	bracketNumberRe = regexp.MustCompile(`\[(\d+)\]`)

	// parenNumberRe matches a parenthesized index: (12).
	parenNumberRe = regexp.MustCompile(`\((\d+)\)`)

	// digitRunRe finds runs of digits for the last-resort episode guess.
	digitRunRe = regexp.MustCompile(`\d+`)

	// videoRe matches video file extensions recognized in media mode.
	videoRe = regexp.MustCompile(`(?i)\.(mp4|mkv|avi|mov|wmv|flv|webm|mpeg|mpg|m4v|3gp|vob|ts|mts|m2ts|rmvb|divx)$`)

	// subtitleRe matches subtitle file extensions.
	subtitleRe = regexp.MustCompile(`(?i)\.(srt|sub|idx|ass|ssa|smi|vtt)$`)

	// wordSepRe collapses underscore/hyphen separators inside extracted titles.
	wordSepRe = regexp.MustCompile(`[_-]+`)
)

// titlePatterns are tried strictly in order; the first family that
// matches supplies the title and later families are never considered,
// even when they would also match.
var titlePatterns = []*regexp.Regexp{
	// (1) "Part N - Title"
	regexp.MustCompile(`(?i)\bpart[\s._]*\d+\s*-\s*(.+)$`),
	// (2) "...E05_Title" / "...E05 Title"
	regexp.MustCompile(`(?i)\be\d+[_ ]+([^-].*)$`),
	// (3) generic "Prefix - Title", split on the first spaced hyphen
	regexp.MustCompile(`^.+?\s+-\s+(.+)$`),
	// (4) "Episode 5 - Title" / "Ep 5-Title"
	regexp.MustCompile(`(?i)\b(?:episode|ep)\.?[\s._]*\d+\s*[-_]\s*(.+)$`),
	// (5) "S01E05 - Title" / "S01E05_Title"
	regexp.MustCompile(`(?i)\bs\d+e\d+\s*[-_]+\s*(.+)$`),
	// (6) "[12] Title"
	regexp.MustCompile(`^\[\d+\]\s*(.+)$`),
	// (7) "(12) Title"
	regexp.MustCompile(`^\(\d+\)\s*(.+)$`),
}

// plainPrefixTitleRe is the final title fallback: "Prefix_Title" or
// "Prefix Title", applied only when the name carries no digits at all so
// numbered episode files are never misread as free-form titles.
var plainPrefixTitleRe = regexp.MustCompile(`^[^_ ]+[_ ](.+)$`)

// Extraction holds the fields recovered from a filename. Each numeric
// field is paired with a presence flag; absence means the pattern
// families matched nothing, not zero.
type Extraction struct {
	Season     int
	HasSeason  bool
	Episode    int
	HasEpisode bool
	Title      string
}

// IsVideo reports whether filename has a recognized video extension.
func IsVideo(filename string) bool {
	return videoRe.MatchString(filename)
}

// IsSubtitle reports whether filename has a recognized subtitle extension.
func IsSubtitle(filename string) bool {
	return subtitleRe.MatchString(filename)
}

// Extract recovers season, episode, and title information from a
// filename. It is a pure function over the base name: directory and
// extension are stripped before any pattern runs. The three fields are
// searched independently, so the title can come from a different pattern
// family than the episode number.
func Extract(filename string) Extraction {
	base := baseName(filename)

	ex := Extraction{}
	ex.Season, ex.HasSeason = extractSeason(base)
	ex.Episode, ex.HasEpisode = extractEpisode(base)
	ex.Title = extractTitle(base)
	return ex
}

// baseName strips the directory and extension from a path.
func baseName(path string) string {
	name := filepath.Base(path)
	if ext := filepath.Ext(name); ext != "" && ext != name {
		name = strings.TrimSuffix(name, ext)
	}
	return name
}

func extractSeason(base string) (int, bool) {
	return firstIntFromRegexps(base, seasonEpisodeRe, seasonWordRe)
}

func extractEpisode(base string) (int, bool) {
	if n, ok := firstIntFromRegexps(base, partRe, episodeWordRe); ok {
		return n, true
	}
	// SxxEyy yields the episode half.
	if m := seasonEpisodeRe.FindStringSubmatch(base); len(m) >= 3 {
		if n, err := strconv.Atoi(m[2]); err == nil {
			return n, true
		}
	}
	if n, ok := firstIntFromRegexps(base, episodeMarkerRe, bracketNumberRe, parenNumberRe); ok {
		return n, true
	}
	// Last resort: the final run of digits bounded by non-digits.
	runs := digitRunRe.FindAllString(base, -1)
	if len(runs) == 0 {
		return 0, false
	}
	n, err := strconv.Atoi(runs[len(runs)-1])
	if err != nil {
		return 0, false
	}
	return n, true
}

func extractTitle(base string) string {
	for _, re := range titlePatterns {
		if m := re.FindStringSubmatch(base); len(m) >= 2 {
			return cleanTitle(m[1])
		}
	}
	// Plain "Prefix_Title" only when no numeric or episode markers exist.
	if !strings.ContainsAny(base, "0123456789") {
		if m := plainPrefixTitleRe.FindStringSubmatch(base); len(m) >= 2 {
			return cleanTitle(m[1])
		}
	}
	return ""
}

// cleanTitle trims an extracted title and folds separator characters
// into single spaces.
func cleanTitle(title string) string {
	title = wordSepRe.ReplaceAllString(title, " ")
	return strings.Join(strings.Fields(title), " ")
}

// firstIntFromRegexps returns the first captured integer across the
// given patterns, checked in order.
func firstIntFromRegexps(input string, regexps ...*regexp.Regexp) (int, bool) {
	for _, re := range regexps {
		m := re.FindStringSubmatch(input)
		if len(m) < 2 {
			continue
		}
		for _, g := range m[1:] {
			if g == "" {
				continue
			}
			if n, err := strconv.Atoi(g); err == nil {
				return n, true
			}
		}
	}
	return 0, false
}
