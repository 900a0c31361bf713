//go:build unit

package gitrepo_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	git "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/object"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rios0rios0/autorelease/internal/infrastructure/repositories/gitrepo"
)

// testRepo drives a real repository on disk through go-git, without any git
// binary. Commit timestamps advance by one minute per signature so the
// committer-time ordering is deterministic.
type testRepo struct {
	t     *testing.T
	dir   string
	repo  *git.Repository
	clock time.Time
}

func initTestRepo(t *testing.T) *testRepo {
	t.Helper()

	dir := t.TempDir()
	repo, err := git.PlainInit(dir, false)
	require.NoError(t, err)

	return &testRepo{
		t:     t,
		dir:   dir,
		repo:  repo,
		clock: time.Date(2026, time.January, 1, 12, 0, 0, 0, time.UTC),
	}
}

func (r *testRepo) signature() *object.Signature {
	r.clock = r.clock.Add(time.Minute)
	return &object.Signature{
		Name:  "Test Author",
		Email: "author@example.com",
		When:  r.clock,
	}
}

// commit writes the given file content and commits it with the message.
func (r *testRepo) commit(message, file, content string) plumbing.Hash {
	r.t.Helper()
	return r.commitWith(message, file, content)
}

// commitWith writes the given file content and commits it with the message,
// overriding the parent commits when any are given (used to build branched
// and merged histories without a worktree checkout).
func (r *testRepo) commitWith(
	message, file, content string,
	parents ...plumbing.Hash,
) plumbing.Hash {
	r.t.Helper()

	require.NoError(r.t,
		os.WriteFile(filepath.Join(r.dir, file), []byte(content), 0o644))

	worktree, err := r.repo.Worktree()
	require.NoError(r.t, err)
	_, err = worktree.Add(file)
	require.NoError(r.t, err)

	hash, err := worktree.Commit(message, &git.CommitOptions{
		Author:  r.signature(),
		Parents: parents,
	})
	require.NoError(r.t, err)
	return hash
}

func (r *testRepo) tag(name string, hash plumbing.Hash) {
	r.t.Helper()
	_, err := r.repo.CreateTag(name, hash, nil)
	require.NoError(r.t, err)
}

func (r *testRepo) annotatedTag(name string, hash plumbing.Hash) {
	r.t.Helper()
	_, err := r.repo.CreateTag(name, hash, &git.CreateTagOptions{
		Tagger:  r.signature(),
		Message: "release " + name,
	})
	require.NoError(r.t, err)
}

func TestOpen(t *testing.T) {
	t.Parallel()

	t.Run("should fail on a directory without a repository", func(t *testing.T) {
		t.Parallel()

		// given
		dir := t.TempDir()

		// when
		_, err := gitrepo.Open(dir)

		// then
		assert.Error(t, err)
	})
}

func TestListTags(t *testing.T) {
	t.Parallel()

	t.Run("should return short names of lightweight and annotated tags", func(t *testing.T) {
		t.Parallel()

		// given
		fixture := initTestRepo(t)
		hash := fixture.commit("initial commit", "file.txt", "one")
		fixture.tag("draft/1.0.0", hash)
		fixture.annotatedTag("draft/1.1.0", hash)

		repo, err := gitrepo.Open(fixture.dir)
		require.NoError(t, err)

		// when
		tags, listErr := repo.ListTags(context.Background())

		// then
		require.NoError(t, listErr)
		assert.ElementsMatch(t, []string{"draft/1.0.0", "draft/1.1.0"}, tags)
	})

	t.Run("should return an empty list for a repository without tags", func(t *testing.T) {
		t.Parallel()

		// given
		fixture := initTestRepo(t)
		fixture.commit("initial commit", "file.txt", "one")

		repo, err := gitrepo.Open(fixture.dir)
		require.NoError(t, err)

		// when
		tags, listErr := repo.ListTags(context.Background())

		// then
		require.NoError(t, listErr)
		assert.Empty(t, tags)
	})
}

func TestCommitSubjectsSince(t *testing.T) {
	t.Parallel()

	t.Run("should return prefixed subjects newest first since the baseline", func(t *testing.T) {
		t.Parallel()

		// given
		fixture := initTestRepo(t)
		base := fixture.commit("initial commit", "file.txt", "one")
		fixture.tag("draft/1.0.0", base)
		fixture.commit("second change", "file.txt", "two")
		fixture.commit("third change (#7)", "file.txt", "three")

		repo, err := gitrepo.Open(fixture.dir)
		require.NoError(t, err)

		// when
		subjects, histErr := repo.CommitSubjectsSince(context.Background(), "draft/1.0.0")

		// then
		require.NoError(t, histErr)
		assert.Equal(t, []string{"- third change (#7)", "- second change"}, subjects)
	})

	t.Run("should keep merged side-branch commits not reachable from the baseline", func(t *testing.T) {
		t.Parallel()

		// given
		fixture := initTestRepo(t)
		root := fixture.commit("initial commit", "file.txt", "one")
		side := fixture.commitWith("feature work", "feature.txt", "feature", root)
		released := fixture.commitWith("second change", "file.txt", "two", root)
		fixture.tag("draft/1.0.0", released)
		mainline := fixture.commitWith("third change", "file.txt", "three", released)
		fixture.commitWith("merge feature branch", "merge.txt", "merged", mainline, side)

		repo, err := gitrepo.Open(fixture.dir)
		require.NoError(t, err)

		// when
		subjects, histErr := repo.CommitSubjectsSince(context.Background(), "draft/1.0.0")

		// then
		require.NoError(t, histErr)
		assert.Equal(t,
			[]string{"- merge feature branch", "- third change", "- feature work"},
			subjects)
	})

	t.Run("should cover the full history when the baseline is empty", func(t *testing.T) {
		t.Parallel()

		// given
		fixture := initTestRepo(t)
		fixture.commit("initial commit", "file.txt", "one")
		fixture.commit("second change", "file.txt", "two")

		repo, err := gitrepo.Open(fixture.dir)
		require.NoError(t, err)

		// when
		subjects, histErr := repo.CommitSubjectsSince(context.Background(), "")

		// then
		require.NoError(t, histErr)
		assert.Equal(t, []string{"- second change", "- initial commit"}, subjects)
	})

	t.Run("should keep only the first line of a multi-line message", func(t *testing.T) {
		t.Parallel()

		// given
		fixture := initTestRepo(t)
		fixture.commit("subject line\n\nbody paragraph", "file.txt", "one")

		repo, err := gitrepo.Open(fixture.dir)
		require.NoError(t, err)

		// when
		subjects, histErr := repo.CommitSubjectsSince(context.Background(), "")

		// then
		require.NoError(t, histErr)
		assert.Equal(t, []string{"- subject line"}, subjects)
	})

	t.Run("should dereference an annotated tag baseline", func(t *testing.T) {
		t.Parallel()

		// given
		fixture := initTestRepo(t)
		base := fixture.commit("initial commit", "file.txt", "one")
		fixture.annotatedTag("draft/1.0.0", base)
		fixture.commit("after the release", "file.txt", "two")

		repo, err := gitrepo.Open(fixture.dir)
		require.NoError(t, err)

		// when
		subjects, histErr := repo.CommitSubjectsSince(context.Background(), "draft/1.0.0")

		// then
		require.NoError(t, histErr)
		assert.Equal(t, []string{"- after the release"}, subjects)
	})

	t.Run("should fail on an unreachable baseline", func(t *testing.T) {
		t.Parallel()

		// given
		fixture := initTestRepo(t)
		fixture.commit("initial commit", "file.txt", "one")

		repo, err := gitrepo.Open(fixture.dir)
		require.NoError(t, err)

		// when
		_, histErr := repo.CommitSubjectsSince(context.Background(), "draft/9.9.9")

		// then
		assert.Error(t, histErr)
	})
}

func TestCommitAllAndCreateTag(t *testing.T) {
	t.Parallel()

	t.Run("should commit worktree changes and tag HEAD", func(t *testing.T) {
		t.Parallel()

		// given
		fixture := initTestRepo(t)
		fixture.commit("initial commit", "file.txt", "one")

		// commits through the wrapper read the author from the repo config
		cfg, err := fixture.repo.Config()
		require.NoError(t, err)
		cfg.User.Name = "Test Author"
		cfg.User.Email = "author@example.com"
		require.NoError(t, fixture.repo.SetConfig(cfg))

		require.NoError(t,
			os.WriteFile(filepath.Join(fixture.dir, "CHANGELOG.md"), []byte("# Change Log\n"), 0o644))

		repo, openErr := gitrepo.Open(fixture.dir)
		require.NoError(t, openErr)

		// when
		commitErr := repo.CommitAll(context.Background(), "chore(release): updated changelog for v1.2.0")
		tagErr := repo.CreateTag(context.Background(), "draft/1.2.0")

		// then
		require.NoError(t, commitErr)
		require.NoError(t, tagErr)

		subjects, histErr := repo.CommitSubjectsSince(context.Background(), "")
		require.NoError(t, histErr)
		assert.Equal(t, "- chore(release): updated changelog for v1.2.0", subjects[0])

		tags, listErr := repo.ListTags(context.Background())
		require.NoError(t, listErr)
		assert.Contains(t, tags, "draft/1.2.0")
	})

	t.Run("should fail to tag an existing name", func(t *testing.T) {
		t.Parallel()

		// given
		fixture := initTestRepo(t)
		hash := fixture.commit("initial commit", "file.txt", "one")
		fixture.tag("draft/1.0.0", hash)

		repo, err := gitrepo.Open(fixture.dir)
		require.NoError(t, err)

		// when
		tagErr := repo.CreateTag(context.Background(), "draft/1.0.0")

		// then
		assert.Error(t, tagErr)
	})
}
