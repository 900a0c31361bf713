package repositories

import (
	"context"
)

// GitRepository abstracts the local version-control collaborator: tag
// enumeration, commit history range queries, and the mutating release
// operations (commit, tag creation, push).
type GitRepository interface {
	// ListTags returns the short names of all tags in the repository.
	ListTags(ctx context.Context) ([]string, error)

	// CommitSubjectsSince returns one "- "-prefixed commit subject per commit
	// over the half-open range (baseline, HEAD], newest first. An empty
	// baseline covers the entire history reachable from HEAD. An unreachable
	// baseline is a fatal error.
	CommitSubjectsSince(ctx context.Context, baseline string) ([]string, error)

	// CommitAll stages every change in the worktree and commits it.
	CommitAll(ctx context.Context, message string) error

	// CreateTag creates a lightweight tag with the given name at HEAD.
	CreateTag(ctx context.Context, name string) error

	// Push pushes the current branch to the remote, following tags when
	// requested. An already-up-to-date remote is not an error.
	Push(ctx context.Context, remote string, followTags bool) error
}

// GitFactory opens the repository rooted at dir.
type GitFactory func(dir string) (GitRepository, error)
