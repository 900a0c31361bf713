package entities

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
)

// Manifest is the package metadata the generator needs: the current version
// string and the issue-tracker base URL used to rewrite references.
type Manifest struct {
	Version    string
	TrackerURL string
}

// rawManifest mirrors the manifest file fields loosely: "bugs" and
// "repository" may each be a plain string or an object with a "url" field.
type rawManifest struct {
	Version    string          `json:"version"`
	Bugs       json.RawMessage `json:"bugs"`
	Repository json.RawMessage `json:"repository"`
}

// LoadManifest reads the package manifest from path. The manifest is
// required: an absent or malformed file aborts the run.
func LoadManifest(path string) (Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Manifest{}, fmt.Errorf("failed to read manifest %q: %w", path, err)
	}

	var raw rawManifest
	if unmarshalErr := json.Unmarshal(data, &raw); unmarshalErr != nil {
		return Manifest{}, fmt.Errorf("failed to parse manifest %q: %w", path, unmarshalErr)
	}

	if raw.Version == "" {
		return Manifest{}, fmt.Errorf("manifest %q has no version field", path)
	}

	tracker := trackerURL(raw)
	if tracker == "" {
		return Manifest{}, fmt.Errorf(
			"manifest %q has no issue tracker URL (bugs or repository field)", path,
		)
	}

	return Manifest{Version: raw.Version, TrackerURL: tracker}, nil
}

// trackerURL resolves the issue-tracker base URL: the "bugs" URL when
// present, otherwise the "repository" URL with "/issues" appended.
func trackerURL(raw rawManifest) string {
	if url := urlField(raw.Bugs); url != "" {
		return strings.TrimSuffix(url, "/")
	}

	if url := urlField(raw.Repository); url != "" {
		url = strings.TrimSuffix(strings.TrimSuffix(url, "/"), ".git")
		return url + "/issues"
	}

	return ""
}

// urlField decodes a field that is either a plain URL string or an object
// carrying a "url" key.
func urlField(raw json.RawMessage) string {
	if len(raw) == 0 {
		return ""
	}

	var asString string
	if err := json.Unmarshal(raw, &asString); err == nil {
		return asString
	}

	var asObject struct {
		URL string `json:"url"`
	}
	if err := json.Unmarshal(raw, &asObject); err == nil {
		return asObject.URL
	}

	return ""
}
