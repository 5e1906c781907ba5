// Package log implements the append-only rename journal and its undo
// replay. Each committed rename becomes one UTF-8 text line; the journal
// is flushed per commit so an interrupted batch always leaves a log that
// is a true prefix of what actually happened on disk.
package log

import (
	"bufio"
	"fmt"
	"os"
	"strings"
	"time"
)

// renameMarker separates the timestamp from the path fields on a
// journal line. Lines not carrying it belong to someone else and are
// ignored by the reader.
const renameMarker = " RENAME: "

// pathSeparator sits between the quoted old and new paths.
const pathSeparator = "' → '"

// Entry is one committed rename.
type Entry struct {
	Timestamp time.Time
	OldPath   string
	NewPath   string
}

// Journal appends rename entries to a log file. Writes go straight
// through to the file descriptor, one line per commit, so no entry is
// ever lost to buffering.
type Journal struct {
	path string
	f    *os.File
}

// Open opens (creating if needed) the journal at path for appending.
func Open(path string) (*Journal, error) {
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return nil, fmt.Errorf("failed to open journal %s: %w", path, err)
	}
	return &Journal{path: path, f: f}, nil
}

// Record appends one rename entry. Called only at commit time; dry runs
// never reach the journal.
func (j *Journal) Record(oldPath, newPath string) error {
	line := FormatLine(Entry{Timestamp: time.Now(), OldPath: oldPath, NewPath: newPath})
	if _, err := j.f.WriteString(line + "\n"); err != nil {
		return fmt.Errorf("failed to append journal entry: %w", err)
	}
	return nil
}

// Path returns the journal file location.
func (j *Journal) Path() string { return j.path }

// Close releases the underlying file.
func (j *Journal) Close() error {
	if j.f == nil {
		return nil
	}
	err := j.f.Close()
	j.f = nil
	return err
}

// FormatLine renders an entry in the journal's line format:
//
//	<RFC3339 timestamp> RENAME: '<oldPath>' → '<newPath>'
func FormatLine(e Entry) string {
	return fmt.Sprintf("%s%s'%s' → '%s'", e.Timestamp.Format(time.RFC3339), renameMarker, e.OldPath, e.NewPath)
}

// ParseLine decodes one journal line. It is a dedicated field scanner,
// not a regex over free text: the line must carry the rename marker and
// both quoted paths or it is rejected. Foreign lines return ok=false.
func ParseLine(line string) (Entry, bool) {
	markerIdx := strings.Index(line, renameMarker)
	if markerIdx < 0 {
		return Entry{}, false
	}

	ts, err := time.Parse(time.RFC3339, line[:markerIdx])
	if err != nil {
		return Entry{}, false
	}

	rest := line[markerIdx+len(renameMarker):]
	if len(rest) < 2 || !strings.HasPrefix(rest, "'") || !strings.HasSuffix(rest, "'") {
		return Entry{}, false
	}
	inner := rest[1 : len(rest)-1]

	// An old path may itself contain the separator sequence; the last
	// occurrence is the field boundary.
	sepIdx := strings.LastIndex(inner, pathSeparator)
	if sepIdx < 0 {
		return Entry{}, false
	}

	e := Entry{
		Timestamp: ts,
		OldPath:   inner[:sepIdx],
		NewPath:   inner[sepIdx+len(pathSeparator):],
	}
	if e.OldPath == "" || e.NewPath == "" {
		return Entry{}, false
	}
	return e, true
}

// ReadEntries parses every rename entry from the journal at path, in
// commit order. Lines that are not rename entries are skipped silently.
func ReadEntries(path string) ([]Entry, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read journal %s: %w", path, err)
	}
	defer f.Close()

	var entries []Entry
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		if e, ok := ParseLine(scanner.Text()); ok {
			entries = append(entries, e)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to scan journal %s: %w", path, err)
	}
	return entries, nil
}
