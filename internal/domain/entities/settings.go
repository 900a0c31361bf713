package entities

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Default locations of the release artifacts, relative to the repository root.
const (
	DefaultChangelogPath  = "CHANGELOG.md"
	DefaultManifestPath   = "package.json"
	DefaultDescriptorPath = "plugin.xml"
	DefaultTagPrefix      = "draft/"
	DefaultRemote         = "origin"
)

// StageSettings gates the mutating pipeline stages that run after changelog
// generation. Every stage defaults to disabled: a plain run only generates.
type StageSettings struct {
	UpdateManifest bool `yaml:"update_manifest"`
	CommitChanges  bool `yaml:"commit_changes"`
	CreateTag      bool `yaml:"create_tag"`
	PushTags       bool `yaml:"push_tags"`
}

// Settings is the top-level configuration for autorelease.
type Settings struct {
	ChangelogPath  string        `yaml:"changelog_path"`
	ManifestPath   string        `yaml:"manifest_path"`
	DescriptorPath string        `yaml:"descriptor_path"`
	TagPrefix      string        `yaml:"tag_prefix"`
	Remote         string        `yaml:"remote"`
	Stages         StageSettings `yaml:"stages"`
}

// DefaultSettings returns the settings used when no config file exists.
func DefaultSettings() *Settings {
	return &Settings{
		ChangelogPath:  DefaultChangelogPath,
		ManifestPath:   DefaultManifestPath,
		DescriptorPath: DefaultDescriptorPath,
		TagPrefix:      DefaultTagPrefix,
		Remote:         DefaultRemote,
		Stages:         StageSettings{},
	}
}

// NewSettings reads and parses a configuration file. Fields missing from the
// file keep their defaults.
func NewSettings(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %q: %w", path, err)
	}

	settings := DefaultSettings()
	if unmarshalErr := yaml.Unmarshal(data, settings); unmarshalErr != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", unmarshalErr)
	}

	if validateErr := validate(settings); validateErr != nil {
		return nil, validateErr
	}

	return settings, nil
}

// FindConfigFile searches for a configuration file in standard locations.
// Returns the path to the first file found or an error if none is found.
func FindConfigFile() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		homeDir = ""
	}

	locations := []string{
		".",
		".config",
		"configs",
	}
	if homeDir != "" {
		locations = append(
			locations,
			homeDir,
			filepath.Join(homeDir, ".config"),
		)
	}

	patterns := []string{
		".autorelease.yaml",
		".autorelease.yml",
		"autorelease.yaml",
		"autorelease.yml",
	}

	for _, loc := range locations {
		for _, pat := range patterns {
			p := filepath.Join(loc, pat)
			if _, statErr := os.Stat(p); statErr == nil {
				return p, nil
			}
		}
	}

	return "", errors.New("config file not found in default locations")
}

// validate checks for required configuration values.
func validate(settings *Settings) error {
	if settings.ChangelogPath == "" {
		return errors.New("changelog_path must not be empty")
	}
	if settings.ManifestPath == "" {
		return errors.New("manifest_path must not be empty")
	}
	if settings.TagPrefix == "" {
		return errors.New("tag_prefix must not be empty")
	}
	if settings.Remote == "" {
		return errors.New("remote must not be empty")
	}
	return nil
}
