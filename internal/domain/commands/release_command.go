package commands

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/autorelease/internal/domain/entities"
	"github.com/rios0rios0/autorelease/internal/domain/repositories"
)

const descriptorFileMode = 0o644

// Release is the interface for the full release pipeline command.
type Release interface {
	Execute(ctx context.Context, settings *entities.Settings, opts ReleaseOptions) error
}

// ReleaseOptions holds runtime options for a single release run.
type ReleaseOptions struct {
	RepoDir string
	DryRun  bool
}

// releaseState carries the data the stages share within one run.
type releaseState struct {
	settings *entities.Settings
	repoDir  string
	manifest entities.Manifest
	gitRepo  repositories.GitRepository
}

// releaseStage is one named, gated step of the release pipeline.
type releaseStage struct {
	name    string
	enabled func(entities.StageSettings) bool
	run     func(ctx context.Context, state *releaseState) error
}

// ReleaseCommand runs the changelog generation followed by the mutating
// release stages, each gated by configuration and executed in a fixed order.
type ReleaseCommand struct {
	generate   Generate
	gitFactory repositories.GitFactory
}

// NewReleaseCommand creates a new ReleaseCommand.
func NewReleaseCommand(generate Generate, gitFactory repositories.GitFactory) *ReleaseCommand {
	return &ReleaseCommand{
		generate:   generate,
		gitFactory: gitFactory,
	}
}

// Execute runs generation and then every enabled stage in order. The first
// failing stage aborts the run.
func (it *ReleaseCommand) Execute(
	ctx context.Context,
	settings *entities.Settings,
	opts ReleaseOptions,
) error {
	result, err := it.generate.Execute(ctx, settings, GenerateOptions(opts))
	if err != nil {
		return err
	}
	if result.Skipped {
		return nil
	}

	repoDir, absErr := filepath.Abs(opts.RepoDir)
	if absErr != nil {
		return fmt.Errorf("invalid path: %w", absErr)
	}

	gitRepo, gitErr := it.gitFactory(repoDir)
	if gitErr != nil {
		return gitErr
	}

	state := &releaseState{
		settings: settings,
		repoDir:  repoDir,
		manifest: result.Manifest,
		gitRepo:  gitRepo,
	}

	for _, stage := range it.stages() {
		if !stage.enabled(settings.Stages) {
			logger.Debugf("Stage %q disabled, skipping.", stage.name)
			continue
		}
		if opts.DryRun {
			logger.Infof("[dry-run] would run stage %q.", stage.name)
			continue
		}

		logger.Infof("Running stage: %s", stage.name)
		if stageErr := stage.run(ctx, state); stageErr != nil {
			return fmt.Errorf("stage %q: %w", stage.name, stageErr)
		}
	}

	return nil
}

// stages returns the pipeline in execution order.
func (it *ReleaseCommand) stages() []releaseStage {
	return []releaseStage{
		{
			name:    "update-manifest",
			enabled: func(s entities.StageSettings) bool { return s.UpdateManifest },
			run:     it.runUpdateManifest,
		},
		{
			name:    "commit-changes",
			enabled: func(s entities.StageSettings) bool { return s.CommitChanges },
			run:     it.runCommitChanges,
		},
		{
			name:    "create-tag",
			enabled: func(s entities.StageSettings) bool { return s.CreateTag },
			run:     it.runCreateTag,
		},
		{
			name:    "push-tags",
			enabled: func(s entities.StageSettings) bool { return s.PushTags },
			run:     it.runPushTags,
		},
	}
}

// runUpdateManifest syncs the plugin descriptor version to the manifest
// version. A repository without a descriptor file skips the stage.
func (it *ReleaseCommand) runUpdateManifest(_ context.Context, state *releaseState) error {
	path := filepath.Join(state.repoDir, state.settings.DescriptorPath)

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		logger.Debugf("No descriptor at %s, skipping sync.", path)
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to read descriptor %q: %w", path, err)
	}

	updated, changed := entities.SyncDescriptorVersion(string(data), state.manifest.Version)
	if !changed {
		logger.Debugf("Descriptor already at version %s.", state.manifest.Version)
		return nil
	}

	if writeErr := os.WriteFile(path, []byte(updated), descriptorFileMode); writeErr != nil {
		return fmt.Errorf("failed to write descriptor %q: %w", path, writeErr)
	}
	logger.Infof("Synced descriptor version to %s.", state.manifest.Version)

	return nil
}

func (it *ReleaseCommand) runCommitChanges(ctx context.Context, state *releaseState) error {
	message := fmt.Sprintf("chore(release): updated changelog for v%s",
		strings.TrimPrefix(state.manifest.Version, "v"))
	return state.gitRepo.CommitAll(ctx, message)
}

func (it *ReleaseCommand) runCreateTag(ctx context.Context, state *releaseState) error {
	name := state.settings.TagPrefix + strings.TrimPrefix(state.manifest.Version, "v")
	return state.gitRepo.CreateTag(ctx, name)
}

func (it *ReleaseCommand) runPushTags(ctx context.Context, state *releaseState) error {
	return state.gitRepo.Push(ctx, state.settings.Remote, true)
}
