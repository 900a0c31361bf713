package entities

import "regexp"

// descriptorVersionPattern matches the first <version> element of the plugin
// descriptor XML.
var descriptorVersionPattern = regexp.MustCompile(`(<version>)([^<]*)(</version>)`)

// SyncDescriptorVersion rewrites the first <version> element of the plugin
// descriptor content to the given version. The manifest is the source of
// truth; the descriptor only mirrors it. It returns the updated content and
// whether anything changed. Content without a <version> element is returned
// unchanged.
func SyncDescriptorVersion(content, version string) (string, bool) {
	loc := descriptorVersionPattern.FindStringSubmatchIndex(content)
	if loc == nil {
		return content, false
	}

	// loc[4]:loc[5] is the span of the current version text.
	updated := content[:loc[4]] + version + content[loc[5]:]
	return updated, updated != content
}
