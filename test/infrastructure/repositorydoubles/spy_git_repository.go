//go:build integration || unit || test

// Package repositorydoubles provides test doubles (spies, stubs, dummies) for
// repository interfaces. These are hand-crafted implementations — no mock frameworks.
package repositorydoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"context"

	"github.com/rios0rios0/autorelease/internal/domain/repositories"
)

// SpyGitRepository implements repositories.GitRepository as a configurable spy.
// Configure the response fields for the methods your test exercises, then
// inspect the call-tracking fields to verify behavior.
type SpyGitRepository struct {
	// --- ListTags ---
	Tags        []string
	ListTagsErr error

	// --- CommitSubjectsSince ---
	Subjects    []string
	SubjectsErr error
	// spy: baselines that were requested ("" means full history)
	RequestedBaselines []string

	// --- CommitAll ---
	CommitErr error
	// spy: messages that were committed
	CommitMessages []string

	// --- CreateTag ---
	CreateTagErr error
	// spy: tag names that were created
	CreatedTags []string

	// --- Push ---
	PushErr error
	// spy: remotes that were pushed to
	PushedRemotes []string
	// spy: followTags values per push
	PushedFollowTags []bool
}

var _ repositories.GitRepository = (*SpyGitRepository)(nil)

func (r *SpyGitRepository) ListTags(_ context.Context) ([]string, error) {
	if r.ListTagsErr != nil {
		return nil, r.ListTagsErr
	}
	return r.Tags, nil
}

func (r *SpyGitRepository) CommitSubjectsSince(
	_ context.Context,
	baseline string,
) ([]string, error) {
	r.RequestedBaselines = append(r.RequestedBaselines, baseline)
	if r.SubjectsErr != nil {
		return nil, r.SubjectsErr
	}
	return r.Subjects, nil
}

func (r *SpyGitRepository) CommitAll(_ context.Context, message string) error {
	if r.CommitErr != nil {
		return r.CommitErr
	}
	r.CommitMessages = append(r.CommitMessages, message)
	return nil
}

func (r *SpyGitRepository) CreateTag(_ context.Context, name string) error {
	if r.CreateTagErr != nil {
		return r.CreateTagErr
	}
	r.CreatedTags = append(r.CreatedTags, name)
	return nil
}

func (r *SpyGitRepository) Push(_ context.Context, remote string, followTags bool) error {
	if r.PushErr != nil {
		return r.PushErr
	}
	r.PushedRemotes = append(r.PushedRemotes, remote)
	r.PushedFollowTags = append(r.PushedFollowTags, followTags)
	return nil
}

// Factory returns a repositories.GitFactory that always hands out this spy.
func (r *SpyGitRepository) Factory() repositories.GitFactory {
	return func(_ string) (repositories.GitRepository, error) {
		return r, nil
	}
}
