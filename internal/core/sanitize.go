package core

import (
	"strings"
)

// fallbackName is returned when sanitization strips a name down to nothing.
const fallbackName = "video"

// widthMap folds full-width punctuation and smart quotes down to their
// ASCII equivalents before the character filter runs. Characters whose
// ASCII form is itself disallowed (e.g. ？ → ?) are still mapped first so
// the filter treats them uniformly.
var widthMap = map[rune]rune{
	'？': '?',
	'！': '!',
	'：': ':',
	'；': ';',
	'，': ',',
	'（': '(',
	'）': ')',
	'．': '.',
	'　': ' ',
	'－': '-',
	'–': '-',
	'—': '-',
	'‘': '\'',
	'’': '\'',
	'“': '"',
	'”': '"',
}

// allowedRune reports whether r may appear in a sanitized name. The
// allowed set is deliberately narrow so names survive every filesystem
// and sync tool we care about.
func allowedRune(r rune) bool {
	switch {
	case r >= 'A' && r <= 'Z':
		return true
	case r >= 'a' && r <= 'z':
		return true
	case r >= '0' && r <= '9':
		return true
	case r == ' ' || r == '(' || r == ')' || r == '.' || r == '-':
		return true
	}
	return false
}

// Sanitize normalizes text into a cross-platform-safe filename component.
// It is total and idempotent: applying it twice yields the same result.
// An input that sanitizes to nothing yields the literal fallback "video".
func Sanitize(text string) string {
	var b strings.Builder
	b.Grow(len(text))

	lastSpace := false
	lastHyphen := false
	for _, r := range text {
		if mapped, ok := widthMap[r]; ok {
			r = mapped
		}
		// Control characters and anything outside the safe set vanish.
		if r < 32 || r == 127 || !allowedRune(r) {
			continue
		}
		if r == ' ' {
			if lastSpace {
				continue
			}
			lastSpace = true
			lastHyphen = false
			b.WriteRune(' ')
			continue
		}
		if r == '-' {
			if lastHyphen {
				continue
			}
			lastHyphen = true
			lastSpace = false
			b.WriteRune('-')
			continue
		}
		lastSpace = false
		lastHyphen = false
		b.WriteRune(r)
	}

	result := strings.Trim(b.String(), " .")
	if result == "" {
		return fallbackName
	}
	return result
}
