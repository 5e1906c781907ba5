package rename

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io"
	"math/rand"
	"os"
	"regexp"
	"strconv"
	"time"

	"github.com/patrickmn/go-cache"
)

// Custom transform kinds accepted by the transform stage.
const (
	TransformDate      = "date"
	TransformDateTime  = "datetime"
	TransformCounter   = "counter"
	TransformRandom    = "random"
	TransformHash      = "hash"
	TransformParseDate = "parsedate"
)

// ValidTransform reports whether kind names a supported custom transform.
func ValidTransform(kind string) bool {
	switch kind {
	case TransformDate, TransformDateTime, TransformCounter, TransformRandom, TransformHash, TransformParseDate:
		return true
	}
	return false
}

// longDateRe locates a written-out "Month D, YYYY" date, matched
// case-insensitively on the month name.
var longDateRe = regexp.MustCompile(`(?i)\b(january|february|march|april|may|june|july|august|september|october|november|december)\s+(\d{1,2}),\s*(\d{4})\b`)

var monthNumbers = map[string]time.Month{
	"january": time.January, "february": time.February, "march": time.March,
	"april": time.April, "may": time.May, "june": time.June,
	"july": time.July, "august": time.August, "september": time.September,
	"october": time.October, "november": time.November, "december": time.December,
}

// customTransform dispatches one custom transform kind. Every kind
// except parsedate appends a suffix before the extension; parsedate
// substitutes the matched date in place. An unknown kind logs a warning
// and returns the input unchanged.
func (p *Pipeline) customTransform(name, kind, sourcePath string) string {
	switch kind {
	case TransformDate:
		return insertBeforeExt(name, "_"+p.Clock().Format("20060102"))
	case TransformDateTime:
		return insertBeforeExt(name, "_"+p.Clock().Format("20060102_150405"))
	case TransformCounter:
		return insertBeforeExt(name, fmt.Sprintf("_%03d", p.Counters.NextTransform()))
	case TransformRandom:
		return insertBeforeExt(name, "_"+p.Rand(4))
	case TransformHash:
		return insertBeforeExt(name, "_"+p.contentHash(sourcePath))
	case TransformParseDate:
		return replaceLongDate(name)
	default:
		p.logger.Warn("unknown transform kind, name left unchanged", "kind", kind)
		return name
	}
}

// contentHash returns the first 8 hex characters of the SHA-256 of the
// file at path, or the literal "hash" when the file cannot be read.
// Results are cached per path for the lifetime of the pipeline so a
// batch applying several rules to one file hashes it only once.
func (p *Pipeline) contentHash(path string) string {
	if v, ok := p.hashCache.Get(path); ok {
		return v.(string)
	}

	f, err := os.Open(path)
	if err != nil {
		p.logger.Debug("hash transform falling back to literal", "path", path, "error", err)
		return "hash"
	}
	defer f.Close()

	h := sha256.New()
	if _, err := io.Copy(h, f); err != nil {
		p.logger.Debug("hash transform falling back to literal", "path", path, "error", err)
		return "hash"
	}

	sum := hex.EncodeToString(h.Sum(nil))[:8]
	p.hashCache.Set(path, sum, cache.DefaultExpiration)
	return sum
}

// replaceLongDate rewrites the first "Month D, YYYY" occurrence as
// YYMMDD. Unlike the appending transforms this substitutes in place,
// and a name without a matching date passes through untouched.
func replaceLongDate(name string) string {
	m := longDateRe.FindStringSubmatchIndex(name)
	if m == nil {
		return name
	}

	month := monthNumbers[lowerASCII(name[m[2]:m[3]])]
	day, _ := strconv.Atoi(name[m[4]:m[5]])
	year, _ := strconv.Atoi(name[m[6]:m[7]])

	compact := fmt.Sprintf("%02d%02d%02d", year%100, int(month), day)
	return name[:m[0]] + compact + name[m[1]:]
}

func lowerASCII(s string) string {
	b := []byte(s)
	for i, c := range b {
		if c >= 'A' && c <= 'Z' {
			b[i] = c + 32
		}
	}
	return string(b)
}

const randAlphabet = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// randomString returns n random alphanumeric characters.
func randomString(n int) string {
	b := make([]byte, n)
	for i := range b {
		b[i] = randAlphabet[rand.Intn(len(randAlphabet))]
	}
	return string(b)
}
