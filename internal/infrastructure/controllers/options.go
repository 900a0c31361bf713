package controllers

import (
	logger "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/rios0rios0/autorelease/internal/domain/entities"
)

// runOptions mirrors the runtime options every command accepts.
type runOptions struct {
	RepoDir string
	DryRun  bool
}

// resolveRun reads the shared flags and the optional path argument, loads the
// settings, and raises the log level for verbose runs.
func resolveRun(cmd *cobra.Command, args []string) (*entities.Settings, runOptions, error) {
	configPath, _ := cmd.Flags().GetString("config")
	dryRun, _ := cmd.Flags().GetBool("dry-run")
	verbose, _ := cmd.Flags().GetBool("verbose")

	if verbose {
		logger.SetLevel(logger.DebugLevel)
	}

	repoDir := "."
	if len(args) > 0 {
		repoDir = args[0]
	}

	settings, err := loadSettings(configPath)
	if err != nil {
		return nil, runOptions{}, err
	}

	return settings, runOptions{
		RepoDir: repoDir,
		DryRun:  dryRun,
	}, nil
}

// loadSettings resolves the configuration: an explicit path must load, an
// auto-detected one is used when present, and defaults apply otherwise.
func loadSettings(configPath string) (*entities.Settings, error) {
	if configPath != "" {
		return entities.NewSettings(configPath)
	}

	found, err := entities.FindConfigFile()
	if err != nil {
		logger.Debug("No config file found, using defaults.")
		return entities.DefaultSettings(), nil
	}

	logger.Infof("Using config file: %s", found)
	return entities.NewSettings(found)
}
