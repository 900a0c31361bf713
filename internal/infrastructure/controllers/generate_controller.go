package controllers

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rios0rios0/autorelease/internal/domain/commands"
	"github.com/rios0rios0/autorelease/internal/domain/entities"
)

// GenerateController handles the "generate" subcommand: it derives the next
// changelog section and merges it into the changelog, nothing else.
type GenerateController struct {
	command commands.Generate
}

// NewGenerateController creates a new GenerateController.
func NewGenerateController(command commands.Generate) *GenerateController {
	return &GenerateController{command: command}
}

// GetBind returns the Cobra command metadata for the generate controller.
func (it *GenerateController) GetBind() entities.ControllerBind {
	return entities.ControllerBind{
		Use:   "generate",
		Short: "Generate the changelog section for the next release",
		Long: `Generate the next changelog section from the commit history.

Resolves the most recent release tag, collects the commit subjects since it,
rewrites issue references into tracker links, and inserts the section into
the changelog directly below its anchor heading. No other release step runs.`,
	}
}

// Execute runs the changelog generation once.
func (it *GenerateController) Execute(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	settings, opts, err := resolveRun(cmd, args)
	if err != nil {
		return err
	}

	if _, execErr := it.command.Execute(ctx, settings, commands.GenerateOptions(opts)); execErr != nil {
		return fmt.Errorf("changelog generation failed: %w", execErr)
	}

	return nil
}
