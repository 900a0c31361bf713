package gitrepo

import (
	"context"
	"errors"
	"fmt"
	"strings"

	git "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/object"

	"github.com/rios0rios0/autorelease/internal/domain/repositories"
)

// LocalGitRepository implements repositories.GitRepository on top of go-git,
// operating on a repository already present on disk.
type LocalGitRepository struct {
	repo *git.Repository
	dir  string
}

var _ repositories.GitRepository = (*LocalGitRepository)(nil)

// Open opens the git repository rooted at dir. It satisfies
// repositories.GitFactory.
func Open(dir string) (repositories.GitRepository, error) {
	repo, err := git.PlainOpen(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to open git repository at %q: %w", dir, err)
	}
	return &LocalGitRepository{repo: repo, dir: dir}, nil
}

// ListTags returns the short names of all tags, lightweight and annotated.
func (r *LocalGitRepository) ListTags(_ context.Context) ([]string, error) {
	iter, err := r.repo.Tags()
	if err != nil {
		return nil, fmt.Errorf("failed to list tags: %w", err)
	}
	defer iter.Close()

	var tags []string
	forErr := iter.ForEach(func(ref *plumbing.Reference) error {
		tags = append(tags, ref.Name().Short())
		return nil
	})
	if forErr != nil {
		return nil, fmt.Errorf("failed to iterate tags: %w", forErr)
	}

	return tags, nil
}

// CommitSubjectsSince walks the history from HEAD, newest first, excluding
// the baseline commit and all of its ancestors (half-open range, matching
// "git log baseline..HEAD"). Commits on merged side branches that are not
// reachable from the baseline are kept. Each subject is returned prefixed
// with "- ".
func (r *LocalGitRepository) CommitSubjectsSince(
	_ context.Context,
	baseline string,
) ([]string, error) {
	head, err := r.repo.Head()
	if err != nil {
		return nil, fmt.Errorf("failed to resolve HEAD: %w", err)
	}

	excluded := make(map[plumbing.Hash]bool)
	if baseline != "" {
		excluded, err = r.ancestry(baseline)
		if err != nil {
			return nil, err
		}
	}

	//nolint:exhaustruct // walk everything reachable from HEAD
	iter, logErr := r.repo.Log(&git.LogOptions{
		From:  head.Hash(),
		Order: git.LogOrderCommitterTime,
	})
	if logErr != nil {
		return nil, fmt.Errorf("failed to read history: %w", logErr)
	}
	defer iter.Close()

	var subjects []string
	forErr := iter.ForEach(func(commit *object.Commit) error {
		if excluded[commit.Hash] {
			return nil
		}
		subjects = append(subjects, "- "+subjectLine(commit.Message))
		return nil
	})
	if forErr != nil {
		return nil, fmt.Errorf("failed to walk history: %w", forErr)
	}

	return subjects, nil
}

// ancestry resolves the revision and returns the set of its commit hash and
// every ancestor hash.
func (r *LocalGitRepository) ancestry(revision string) (map[plumbing.Hash]bool, error) {
	start, err := r.resolveCommit(revision)
	if err != nil {
		return nil, err
	}

	//nolint:exhaustruct // walk everything reachable from the revision
	iter, logErr := r.repo.Log(&git.LogOptions{From: start})
	if logErr != nil {
		return nil, fmt.Errorf("failed to read history of %q: %w", revision, logErr)
	}
	defer iter.Close()

	hashes := make(map[plumbing.Hash]bool)
	forErr := iter.ForEach(func(commit *object.Commit) error {
		hashes[commit.Hash] = true
		return nil
	})
	if forErr != nil {
		return nil, fmt.Errorf("failed to walk history of %q: %w", revision, forErr)
	}

	return hashes, nil
}

// CommitAll stages the whole worktree and commits it.
func (r *LocalGitRepository) CommitAll(_ context.Context, message string) error {
	worktree, err := r.repo.Worktree()
	if err != nil {
		return fmt.Errorf("failed to open worktree: %w", err)
	}

	if _, addErr := worktree.Add("."); addErr != nil {
		return fmt.Errorf("failed to stage changes: %w", addErr)
	}

	//nolint:exhaustruct // author/committer fall back to the git config
	if _, commitErr := worktree.Commit(message, &git.CommitOptions{}); commitErr != nil {
		return fmt.Errorf("failed to commit: %w", commitErr)
	}

	return nil
}

// CreateTag creates a lightweight tag at HEAD.
func (r *LocalGitRepository) CreateTag(_ context.Context, name string) error {
	head, err := r.repo.Head()
	if err != nil {
		return fmt.Errorf("failed to resolve HEAD: %w", err)
	}

	if _, tagErr := r.repo.CreateTag(name, head.Hash(), nil); tagErr != nil {
		return fmt.Errorf("failed to create tag %q: %w", name, tagErr)
	}

	return nil
}

// Push pushes the current branch to the remote, optionally following tags.
func (r *LocalGitRepository) Push(ctx context.Context, remote string, followTags bool) error {
	//nolint:exhaustruct // default refspecs push the current branch
	err := r.repo.PushContext(ctx, &git.PushOptions{
		RemoteName: remote,
		FollowTags: followTags,
	})
	if errors.Is(err, git.NoErrAlreadyUpToDate) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to push to %q: %w", remote, err)
	}

	return nil
}

// resolveCommit resolves a revision (tag name, branch, hash) to a commit
// hash, dereferencing annotated tags.
func (r *LocalGitRepository) resolveCommit(revision string) (plumbing.Hash, error) {
	hash, err := r.repo.ResolveRevision(plumbing.Revision(revision))
	if err != nil {
		return plumbing.ZeroHash, fmt.Errorf("failed to resolve %q: %w", revision, err)
	}

	if tag, tagErr := r.repo.TagObject(*hash); tagErr == nil {
		commit, commitErr := tag.Commit()
		if commitErr != nil {
			return plumbing.ZeroHash, fmt.Errorf(
				"failed to dereference tag %q: %w", revision, commitErr,
			)
		}
		return commit.Hash, nil
	}

	return *hash, nil
}

// subjectLine returns the first line of a commit message.
func subjectLine(message string) string {
	subject, _, _ := strings.Cut(message, "\n")
	return strings.TrimSpace(subject)
}
