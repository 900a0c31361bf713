package entities

import (
	"sort"
	"strings"

	"golang.org/x/mod/semver"
)

// ReleaseTag is a release marker: a git tag carrying the recognized release
// prefix (e.g. "draft/1.2.0") whose remainder parses as a semantic version.
type ReleaseTag struct {
	Raw     string // full tag name, e.g. "draft/1.2.0"
	Version string // canonical semver with "v" prefix, e.g. "v1.2.0"
}

// ParseReleaseTag parses a raw tag name into a ReleaseTag. It returns false
// when the tag does not carry the prefix or the remainder is not a valid
// semantic version; such tags are excluded from ordering, never an error.
func ParseReleaseTag(raw, prefix string) (ReleaseTag, bool) {
	if !strings.HasPrefix(raw, prefix) {
		return ReleaseTag{}, false
	}

	version := strings.TrimPrefix(raw, prefix)
	if !strings.HasPrefix(version, "v") {
		version = "v" + version
	}
	if !semver.IsValid(version) {
		return ReleaseTag{}, false
	}

	return ReleaseTag{Raw: raw, Version: version}, true
}

// FilterReleaseTags keeps only the tags carrying the recognized prefix with a
// parsable semantic version, sorted descending by semver precedence. The sort
// is stable, so repeated runs over the same input produce the same order.
func FilterReleaseTags(raw []string, prefix string) []ReleaseTag {
	tags := make([]ReleaseTag, 0, len(raw))
	for _, name := range raw {
		if tag, ok := ParseReleaseTag(name, prefix); ok {
			tags = append(tags, tag)
		}
	}

	sort.SliceStable(tags, func(i, j int) bool {
		return semver.Compare(tags[i].Version, tags[j].Version) > 0
	})

	return tags
}

// LatestRelease returns the highest-precedence release tag, or false when the
// filtered set is empty. A false result signals "no prior release": history
// must then be computed from the repository's full reachable history.
func LatestRelease(tags []ReleaseTag) (ReleaseTag, bool) {
	if len(tags) == 0 {
		return ReleaseTag{}, false
	}
	return tags[0], true
}
