package entities

import (
	"fmt"
	"regexp"
	"strings"
)

// ReferenceMatch is one detected issue/PR reference inside a commit line:
// the byte span of the whole token and the ticket digits it carries.
type ReferenceMatch struct {
	Start  int
	End    int
	Ticket string
}

// ReferenceMatcher detects issue/PR reference tokens in a line of text.
// It is an interface so the token grammar can be swapped and the splice
// logic tested independently of any particular grammar.
type ReferenceMatcher interface {
	Match(line string) []ReferenceMatch
}

// issuePattern matches "#<digits>" tokens embedded in arbitrary text,
// capturing the digits.
var issuePattern = regexp.MustCompile(`#(\d+)`)

// IssueReferenceMatcher recognizes GitHub-style "#<digits>" references.
type IssueReferenceMatcher struct {
	pattern *regexp.Regexp
}

// NewIssueReferenceMatcher creates the default "#<digits>" matcher.
func NewIssueReferenceMatcher() *IssueReferenceMatcher {
	return &IssueReferenceMatcher{pattern: issuePattern}
}

// Match returns every reference token in the line, in order of appearance.
func (m *IssueReferenceMatcher) Match(line string) []ReferenceMatch {
	indexes := m.pattern.FindAllStringSubmatchIndex(line, -1)
	if len(indexes) == 0 {
		return nil
	}

	matches := make([]ReferenceMatch, 0, len(indexes))
	for _, idx := range indexes {
		matches = append(matches, ReferenceMatch{
			Start:  idx[0],
			End:    idx[1],
			Ticket: line[idx[2]:idx[3]],
		})
	}
	return matches
}

// RewriteReferences replaces each reference token in the line with a markdown
// link "[GH-<n>](<linkBaseURL>/<n>)". The line is split into alternating
// literal/match segments; only match segments are replaced, every literal
// segment is preserved byte-for-byte. A line with no reference is returned
// unchanged.
func RewriteReferences(line string, matcher ReferenceMatcher, linkBaseURL string) string {
	matches := matcher.Match(line)
	if len(matches) == 0 {
		return line
	}

	base := strings.TrimSuffix(linkBaseURL, "/")

	var builder strings.Builder
	last := 0
	for _, match := range matches {
		builder.WriteString(line[last:match.Start])
		fmt.Fprintf(&builder, "[GH-%s](%s/%s)", match.Ticket, base, match.Ticket)
		last = match.End
	}
	builder.WriteString(line[last:])

	return builder.String()
}
