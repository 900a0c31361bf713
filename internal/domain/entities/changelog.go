package entities

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
)

// AnchorLine is the literal heading whose position determines where new
// sections are inserted. It must exist for generation to run.
const AnchorLine = "# Change Log"

const changelogFileMode = 0o644

// ErrAnchorMissing is returned when an existing changelog has no anchor line.
// The run must abort before any write rather than silently corrupt the file.
var ErrAnchorMissing = fmt.Errorf("changelog anchor line %q not found", AnchorLine)

// Changelog is the persisted changelog document as an ordered line sequence.
// It is a value: editing operations return a new document.
type Changelog struct {
	Lines []string
}

// Section is one changelog section built for a single release: a version
// label plus the (already rewritten) commit lines. Inserting it never mutates
// existing sections of the target document.
type Section struct {
	Version string   // version label without "v" prefix, e.g. "1.2.0"
	Entries []string // bullet lines, e.g. "- fixed the thing [GH-1](...)"
}

// Render returns the lines this section contributes to the document:
// a blank line, the version header, a blank line, then the entries.
func (s Section) Render() []string {
	header := "## v" + strings.TrimPrefix(s.Version, "v")
	lines := make([]string, 0, len(s.Entries)+3)
	lines = append(lines, "", header, "")
	return append(lines, s.Entries...)
}

// LoadChangelog reads the changelog from path. An absent file is not an
// error: it returns a zero document and false, and callers must skip
// generation instead of failing.
func LoadChangelog(path string) (Changelog, bool, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return Changelog{}, false, nil
	}
	if err != nil {
		return Changelog{}, false, fmt.Errorf("failed to read changelog %q: %w", path, err)
	}

	content := strings.TrimSuffix(string(data), "\n")
	return Changelog{Lines: strings.Split(content, "\n")}, true, nil
}

// InsertSection returns a new document with the section block inserted
// directly after the anchor line, shifting all subsequent lines down. Prior
// sections are never rewritten or removed. A missing anchor fails fast with
// ErrAnchorMissing.
func InsertSection(doc Changelog, section Section) (Changelog, error) {
	anchorIdx := anchorIndex(doc.Lines)
	if anchorIdx < 0 {
		return Changelog{}, ErrAnchorMissing
	}

	return Changelog{Lines: insertLines(doc.Lines, anchorIdx+1, section.Render())}, nil
}

// SaveChangelog writes the full line sequence back to path, newline-joined
// with a single trailing newline, replacing the previous content entirely.
func SaveChangelog(doc Changelog, path string) error {
	content := strings.Join(doc.Lines, "\n") + "\n"
	if err := os.WriteFile(path, []byte(content), changelogFileMode); err != nil {
		return fmt.Errorf("failed to write changelog %q: %w", path, err)
	}
	return nil
}

// anchorIndex returns the zero-based index of the line exactly equal to the
// anchor text, or -1 if not found.
func anchorIndex(lines []string) int {
	for i, line := range lines {
		if line == AnchorLine {
			return i
		}
	}
	return -1
}

// insertLines inserts extra lines into slice at the given index.
func insertLines(lines []string, at int, extra []string) []string {
	result := make([]string, 0, len(lines)+len(extra))
	result = append(result, lines[:at]...)
	result = append(result, extra...)
	result = append(result, lines[at:]...)
	return result
}
