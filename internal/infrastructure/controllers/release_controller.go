package controllers

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rios0rios0/autorelease/internal/domain/commands"
	"github.com/rios0rios0/autorelease/internal/domain/entities"
)

// ReleaseController handles the "release" subcommand and the root invocation:
// changelog generation followed by the configured release stages.
type ReleaseController struct {
	command commands.Release
}

// NewReleaseController creates a new ReleaseController.
func NewReleaseController(command commands.Release) *ReleaseController {
	return &ReleaseController{command: command}
}

// GetBind returns the Cobra command metadata for the release controller.
func (it *ReleaseController) GetBind() entities.ControllerBind {
	return entities.ControllerBind{
		Use:   "release",
		Short: "Run the full release post-processing pipeline",
		Long: `Run the full release post-processing pipeline.

Generates the changelog section first, then runs the mutating stages in
order: update-manifest, commit-changes, create-tag, push-tags. Every stage
is disabled by default and must be enabled in the configuration file.`,
	}
}

// Execute runs the release pipeline once.
func (it *ReleaseController) Execute(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	settings, opts, err := resolveRun(cmd, args)
	if err != nil {
		return err
	}

	if execErr := it.command.Execute(ctx, settings, commands.ReleaseOptions(opts)); execErr != nil {
		return fmt.Errorf("release failed: %w", execErr)
	}

	return nil
}
