package media

import (
	"fmt"
	"strings"

	"github.com/renamekit/renamekit/internal/core"
)

// Descriptor carries the structured fields a media filename is built
// from. Numeric fields are paired with presence flags: a zero value with
// the flag unset renders nothing.
type Descriptor struct {
	Name       string // show or movie name
	Year       int
	HasYear    bool
	Season     int
	HasSeason  bool
	Episode    int
	HasEpisode bool
	Part       int
	HasPart    bool
	Title      string // episode title
}

// Merge overlays extraction results onto d. Explicit values win over
// extracted ones, except season and episode numbers: when extraction is
// live those are taken from the filename even if the caller supplied
// them, because the per-file pattern match is more specific than a
// batch-wide flag.
func (d Descriptor) Merge(ex Extraction) Descriptor {
	if ex.HasSeason {
		d.Season = ex.Season
		d.HasSeason = true
	}
	if ex.HasEpisode {
		d.Episode = ex.Episode
		d.HasEpisode = true
	}
	if d.Title == "" && ex.Title != "" {
		d.Title = ex.Title
	}
	return d
}

// Build composes the descriptor into a canonical filename. The middle
// segment precedence is part, then season+episode, then episode alone.
// The assembled string is sanitized as a whole before the extension goes
// on, so separators introduced by concatenation can never leak through.
func Build(d Descriptor, ext string) string {
	var b strings.Builder
	b.WriteString(core.Sanitize(d.Name))

	if d.HasYear {
		fmt.Fprintf(&b, " (%d)", d.Year)
	}

	switch {
	case d.HasPart:
		fmt.Fprintf(&b, " - Part %d", d.Part)
	case d.HasSeason && d.HasEpisode:
		fmt.Fprintf(&b, " - S%02dE%02d", d.Season, d.Episode)
	case d.HasEpisode:
		fmt.Fprintf(&b, " - E%02d", d.Episode)
	}

	if d.Title != "" {
		b.WriteString(" - ")
		b.WriteString(core.Sanitize(d.Title))
	}

	name := core.Sanitize(b.String())
	if ext == "" {
		return name
	}
	return name + "." + strings.TrimPrefix(ext, ".")
}
