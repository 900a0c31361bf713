//go:build integration || unit || test

package entitybuilders //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"github.com/rios0rios0/autorelease/internal/domain/entities"
	testkit "github.com/rios0rios0/testkit/pkg/test"
)

// SettingsBuilder helps create test settings with a fluent interface.
type SettingsBuilder struct {
	*testkit.BaseBuilder
	changelogPath  string
	manifestPath   string
	descriptorPath string
	tagPrefix      string
	remote         string
	stages         entities.StageSettings
}

// NewSettingsBuilder creates a new settings builder with sensible defaults.
func NewSettingsBuilder() *SettingsBuilder {
	return &SettingsBuilder{
		BaseBuilder:    testkit.NewBaseBuilder(),
		changelogPath:  entities.DefaultChangelogPath,
		manifestPath:   entities.DefaultManifestPath,
		descriptorPath: entities.DefaultDescriptorPath,
		tagPrefix:      entities.DefaultTagPrefix,
		remote:         entities.DefaultRemote,
		stages:         entities.StageSettings{},
	}
}

// WithChangelogPath sets the changelog path.
func (b *SettingsBuilder) WithChangelogPath(path string) *SettingsBuilder {
	b.changelogPath = path
	return b
}

// WithManifestPath sets the manifest path.
func (b *SettingsBuilder) WithManifestPath(path string) *SettingsBuilder {
	b.manifestPath = path
	return b
}

// WithDescriptorPath sets the descriptor path.
func (b *SettingsBuilder) WithDescriptorPath(path string) *SettingsBuilder {
	b.descriptorPath = path
	return b
}

// WithTagPrefix sets the release tag prefix.
func (b *SettingsBuilder) WithTagPrefix(prefix string) *SettingsBuilder {
	b.tagPrefix = prefix
	return b
}

// WithRemote sets the push remote.
func (b *SettingsBuilder) WithRemote(remote string) *SettingsBuilder {
	b.remote = remote
	return b
}

// WithStages sets the stage gating.
func (b *SettingsBuilder) WithStages(stages entities.StageSettings) *SettingsBuilder {
	b.stages = stages
	return b
}

// Build creates the settings (satisfies testkit.Builder interface).
func (b *SettingsBuilder) Build() interface{} {
	return b.BuildSettings()
}

// BuildSettings creates the settings with a concrete return type.
func (b *SettingsBuilder) BuildSettings() *entities.Settings {
	return &entities.Settings{
		ChangelogPath:  b.changelogPath,
		ManifestPath:   b.manifestPath,
		DescriptorPath: b.descriptorPath,
		TagPrefix:      b.tagPrefix,
		Remote:         b.remote,
		Stages:         b.stages,
	}
}

// Reset clears the builder state, allowing it to be reused.
func (b *SettingsBuilder) Reset() testkit.Builder {
	b.BaseBuilder.Reset()
	b.changelogPath = entities.DefaultChangelogPath
	b.manifestPath = entities.DefaultManifestPath
	b.descriptorPath = entities.DefaultDescriptorPath
	b.tagPrefix = entities.DefaultTagPrefix
	b.remote = entities.DefaultRemote
	b.stages = entities.StageSettings{}
	return b
}

// Clone creates a deep copy of the SettingsBuilder.
func (b *SettingsBuilder) Clone() testkit.Builder {
	return &SettingsBuilder{
		BaseBuilder:    b.BaseBuilder.Clone().(*testkit.BaseBuilder),
		changelogPath:  b.changelogPath,
		manifestPath:   b.manifestPath,
		descriptorPath: b.descriptorPath,
		tagPrefix:      b.tagPrefix,
		remote:         b.remote,
		stages:         b.stages,
	}
}
