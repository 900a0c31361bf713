package commands

import (
	"context"
	"fmt"
	"path/filepath"

	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/autorelease/internal/domain/entities"
	"github.com/rios0rios0/autorelease/internal/domain/repositories"
)

// Generate is the interface for the changelog generation command.
type Generate interface {
	Execute(
		ctx context.Context,
		settings *entities.Settings,
		opts GenerateOptions,
	) (*GenerateResult, error)
}

// GenerateOptions holds runtime options for a single generation run.
type GenerateOptions struct {
	RepoDir string
	DryRun  bool
}

// GenerateResult reports what a generation run produced, so the release
// pipeline can decide whether its later stages have anything to do.
type GenerateResult struct {
	Skipped     bool
	Section     entities.Section
	Manifest    entities.Manifest
	BaselineTag string // "" when the full history was used
}

// GenerateCommand derives the next changelog section from the commit history
// since the most recent release tag and merges it into the changelog file.
type GenerateCommand struct {
	gitFactory repositories.GitFactory
	matcher    entities.ReferenceMatcher
}

// NewGenerateCommand creates a new GenerateCommand.
func NewGenerateCommand(
	gitFactory repositories.GitFactory,
	matcher entities.ReferenceMatcher,
) *GenerateCommand {
	return &GenerateCommand{
		gitFactory: gitFactory,
		matcher:    matcher,
	}
}

// Execute runs the generation pipeline: resolve the baseline release tag,
// fetch the commit subjects since it, rewrite issue references, and insert
// the new section directly below the changelog anchor.
func (it *GenerateCommand) Execute(
	ctx context.Context,
	settings *entities.Settings,
	opts GenerateOptions,
) (*GenerateResult, error) {
	repoDir, err := filepath.Abs(opts.RepoDir)
	if err != nil {
		return nil, fmt.Errorf("invalid path: %w", err)
	}

	changelogPath := filepath.Join(repoDir, settings.ChangelogPath)
	doc, exists, loadErr := entities.LoadChangelog(changelogPath)
	if loadErr != nil {
		return nil, loadErr
	}
	if !exists {
		logger.Infof("No changelog at %s, skipping generation.", changelogPath)
		return &GenerateResult{Skipped: true}, nil
	}

	manifest, manifestErr := entities.LoadManifest(
		filepath.Join(repoDir, settings.ManifestPath),
	)
	if manifestErr != nil {
		return nil, manifestErr
	}
	logger.Debugf("Manifest version: %s, tracker: %s", manifest.Version, manifest.TrackerURL)

	gitRepo, gitErr := it.gitFactory(repoDir)
	if gitErr != nil {
		return nil, gitErr
	}

	baseline, baselineErr := it.resolveBaseline(ctx, gitRepo, settings.TagPrefix)
	if baselineErr != nil {
		return nil, baselineErr
	}

	lines, historyErr := gitRepo.CommitSubjectsSince(ctx, baseline)
	if historyErr != nil {
		return nil, historyErr
	}
	if len(lines) == 0 {
		logger.Info("No commits since the last release, nothing to generate.")
		return &GenerateResult{Skipped: true, Manifest: manifest, BaselineTag: baseline}, nil
	}

	entries := make([]string, 0, len(lines))
	for _, line := range lines {
		entries = append(entries, entities.RewriteReferences(line, it.matcher, manifest.TrackerURL))
	}

	section := entities.Section{Version: manifest.Version, Entries: entries}

	updated, insertErr := entities.InsertSection(doc, section)
	if insertErr != nil {
		return nil, insertErr
	}

	if opts.DryRun {
		logger.Infof("[dry-run] would insert section:\n%s", sectionPreview(section))
		return &GenerateResult{Section: section, Manifest: manifest, BaselineTag: baseline}, nil
	}

	if saveErr := entities.SaveChangelog(updated, changelogPath); saveErr != nil {
		return nil, saveErr
	}
	logger.Infof("Inserted section v%s with %d entries into %s.",
		manifest.Version, len(entries), settings.ChangelogPath)

	return &GenerateResult{Section: section, Manifest: manifest, BaselineTag: baseline}, nil
}

// resolveBaseline picks the highest release tag carrying the prefix, or the
// empty string when there is no prior release (full-history mode).
func (it *GenerateCommand) resolveBaseline(
	ctx context.Context,
	gitRepo repositories.GitRepository,
	prefix string,
) (string, error) {
	tags, err := gitRepo.ListTags(ctx)
	if err != nil {
		return "", err
	}

	releases := entities.FilterReleaseTags(tags, prefix)
	latest, ok := entities.LatestRelease(releases)
	if !ok {
		logger.Infof("No prior %q release tag found, using the full history.", prefix)
		return "", nil
	}

	logger.Infof("Last release: %s", latest.Raw)
	return latest.Raw, nil
}

// sectionPreview renders a section for dry-run logging.
func sectionPreview(section entities.Section) string {
	preview := ""
	for _, line := range section.Render() {
		preview += line + "\n"
	}
	return preview
}
