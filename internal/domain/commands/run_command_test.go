//go:build unit

package commands_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rios0rios0/repocatalog/internal/domain/commands"
	"github.com/rios0rios0/repocatalog/internal/domain/entities"
	"github.com/rios0rios0/repocatalog/internal/domain/repositories"
	"github.com/rios0rios0/repocatalog/test/domain/entitybuilders"
	doubles "github.com/rios0rios0/repocatalog/test/infrastructure/repositorydoubles"
)

type runFixture struct {
	workspace  *doubles.StubWorkspaceRepository
	providers  *doubles.StubProviderRepository
	listing    *doubles.SpyListingRepository
	statements *doubles.SpyStatementRepository
	summaries  *doubles.SpySummaryRepository
	hasher     *doubles.StubHasherRepository
	chunkSize  int
}

func newRunFixture(repos ...entities.Repository) *runFixture {
	return &runFixture{
		workspace:  &doubles.StubWorkspaceRepository{Repositories: repos, Files: map[string][]string{}},
		providers:  &doubles.StubProviderRepository{},
		listing:    &doubles.SpyListingRepository{},
		statements: &doubles.SpyStatementRepository{},
		summaries:  &doubles.SpySummaryRepository{},
		hasher:     &doubles.StubHasherRepository{Digest: "h1:stub="},
	}
}

func (f *runFixture) command() *commands.RunCommand {
	cmd := commands.NewRunCommand(
		f.workspace, f.providers, f.listing, f.statements, f.summaries,
		func(chunkSize int) repositories.HasherRepository {
			f.chunkSize = chunkSize
			return f.hasher
		},
	)
	cmd.SetClock(func() time.Time { return time.Date(2026, 10, 15, 9, 30, 0, 0, time.FixedZone("X", 3600)) })
	return cmd
}

func TestRunCommandExecute(t *testing.T) {
	t.Parallel()

	t.Run("should prepare both output directories before discovery", func(t *testing.T) {
		t.Parallel()

		// given
		fixture := newRunFixture()
		settings := entitybuilders.NewSettingsBuilder().WithOutputDirectory("out").BuildSettings()

		// when
		_, err := fixture.command().Execute(context.Background(), settings, commands.RunOptions{})

		// then
		require.NoError(t, err)
		assert.Equal(t, []string{settings.ListingDirectory()}, fixture.listing.PreparedDirs)
		assert.Equal(t, []string{settings.StatementDirectory()}, fixture.statements.PreparedDirs)
		assert.Equal(t, settings.RepoDirectory, fixture.workspace.DiscoverRoot)
	})

	t.Run("should hash every relevant file and write both outputs", func(t *testing.T) {
		t.Parallel()

		// given
		repo := entitybuilders.NewRepositoryBuilder().WithProvider("").WithPath("/repos/acme/widgets").BuildRepository()
		fixture := newRunFixture(repo)
		fixture.workspace.Files[repo.Path] = []string{
			"/repos/acme/widgets/src/main.x",
			"/repos/acme/widgets/README.md",
		}
		settings := entitybuilders.NewSettingsBuilder().WithHashChunkSize(1024).BuildSettings()

		// when
		summary, err := fixture.command().Execute(context.Background(), settings, commands.RunOptions{})

		// then
		require.NoError(t, err)
		assert.Equal(t, 1024, fixture.chunkSize)
		assert.Equal(t, settings.Filters, fixture.workspace.LastFilters)
		assert.Equal(t, fixture.workspace.Files[repo.Path], fixture.hasher.HashedPaths)

		require.Len(t, fixture.listing.Calls, 1)
		require.Len(t, fixture.statements.Calls, 1)
		records := fixture.statements.Calls[0].Records
		require.Len(t, records, 2)
		assert.Equal(t, "src/main.x", records[0].RelativePath)
		assert.Equal(t, ".x", records[0].Extension)
		assert.Equal(t, "main.x", records[0].Filename)
		assert.Equal(t, "hash-of-/repos/acme/widgets/src/main.x", records[0].Hash)
		assert.Equal(t, records, fixture.listing.Calls[0].Records)
		assert.Equal(t, "h1:stub=", fixture.statements.Calls[0].Digest)
		assert.Equal(t, settings.ListingDirectory(), fixture.listing.Calls[0].Dir)
		assert.Equal(t, settings.StatementDirectory(), fixture.statements.Calls[0].Dir)

		require.Len(t, summary.Repositories, 1)
		assert.Equal(t, 2, summary.Repositories[0].Files)
		assert.Equal(t, "h1:stub=", summary.Repositories[0].Digest)
		assert.Equal(t, time.Date(2026, 10, 15, 8, 30, 0, 0, time.UTC), summary.GeneratedAt)
		assert.Same(t, summary, fixture.summaries.Summary)
		assert.Equal(t, settings.SummaryPath(), fixture.summaries.Path)
	})

	t.Run("should use the resolved provider and fall back to the configured one", func(t *testing.T) {
		t.Parallel()

		// given
		resolved := entitybuilders.NewRepositoryBuilder().WithName("resolved").WithPath("/r/a/resolved").BuildRepository()
		fallback := entitybuilders.NewRepositoryBuilder().WithName("fallback").WithPath("/r/a/fallback").BuildRepository()
		fixture := newRunFixture(resolved, fallback)
		fixture.providers.Providers = map[string]string{resolved.Path: "gitlab"}
		settings := entitybuilders.NewSettingsBuilder().WithProvider("bitbucket").BuildSettings()

		// when
		_, err := fixture.command().Execute(context.Background(), settings, commands.RunOptions{})

		// then
		require.NoError(t, err)
		require.Len(t, fixture.statements.Calls, 2)
		assert.Equal(t, "gitlab", fixture.statements.Calls[0].Repo.Provider)
		assert.Equal(t, "bitbucket", fixture.statements.Calls[1].Repo.Provider)
	})

	t.Run("should keep processing after a repository fails and report it", func(t *testing.T) {
		t.Parallel()

		// given
		broken := entitybuilders.NewRepositoryBuilder().WithName("broken").WithPath("/r/acme/broken").BuildRepository()
		healthy := entitybuilders.NewRepositoryBuilder().WithName("healthy").WithPath("/r/acme/healthy").BuildRepository()
		fixture := newRunFixture(broken, healthy)
		walkErr := errors.New("permission denied")
		fixture.workspace.ListErrs = map[string]error{broken.Path: walkErr}
		settings := entitybuilders.NewSettingsBuilder().BuildSettings()

		// when
		summary, err := fixture.command().Execute(context.Background(), settings, commands.RunOptions{})

		// then
		require.ErrorIs(t, err, walkErr)
		assert.Contains(t, err.Error(), "acme/broken")
		require.Len(t, fixture.listing.Calls, 1)
		assert.Equal(t, "healthy", fixture.listing.Calls[0].Repo.Name)
		require.Len(t, summary.Failures, 1)
		assert.Equal(t, "acme/broken", summary.Failures[0].Repository)
		assert.True(t, summary.Failed())
		assert.NotNil(t, fixture.summaries.Summary)
	})

	t.Run("should stop at the first failure with FailFast", func(t *testing.T) {
		t.Parallel()

		// given
		broken := entitybuilders.NewRepositoryBuilder().WithName("broken").WithPath("/r/acme/broken").BuildRepository()
		healthy := entitybuilders.NewRepositoryBuilder().WithName("healthy").WithPath("/r/acme/healthy").BuildRepository()
		fixture := newRunFixture(broken, healthy)
		fixture.workspace.ListErrs = map[string]error{broken.Path: errors.New("boom")}
		settings := entitybuilders.NewSettingsBuilder().BuildSettings()

		// when
		_, err := fixture.command().Execute(context.Background(), settings, commands.RunOptions{FailFast: true})

		// then
		require.Error(t, err)
		assert.Empty(t, fixture.listing.Calls)
		assert.Len(t, fixture.workspace.ListedRepos, 1)
	})

	t.Run("should write nothing for a repository whose file cannot be hashed", func(t *testing.T) {
		t.Parallel()

		// given
		repo := entitybuilders.NewRepositoryBuilder().WithPath("/r/acme/widgets").BuildRepository()
		fixture := newRunFixture(repo)
		fixture.workspace.Files[repo.Path] = []string{"/r/acme/widgets/a.x", "/r/acme/widgets/b.x"}
		hashErr := errors.New("unreadable")
		fixture.hasher.HashErrs = map[string]error{"/r/acme/widgets/b.x": hashErr}
		settings := entitybuilders.NewSettingsBuilder().BuildSettings()

		// when
		_, err := fixture.command().Execute(context.Background(), settings, commands.RunOptions{})

		// then
		require.ErrorIs(t, err, hashErr)
		assert.Empty(t, fixture.listing.Calls)
		assert.Empty(t, fixture.statements.Calls)
	})

	t.Run("should still write outputs when the tree digest fails", func(t *testing.T) {
		t.Parallel()

		// given
		repo := entitybuilders.NewRepositoryBuilder().WithPath("/r/acme/widgets").BuildRepository()
		fixture := newRunFixture(repo)
		fixture.hasher.DigestErr = errors.New("newline in file name")
		settings := entitybuilders.NewSettingsBuilder().BuildSettings()

		// when
		_, err := fixture.command().Execute(context.Background(), settings, commands.RunOptions{})

		// then
		require.NoError(t, err)
		require.Len(t, fixture.statements.Calls, 1)
		assert.Empty(t, fixture.statements.Calls[0].Digest)
	})

	t.Run("should return error when discovery fails", func(t *testing.T) {
		t.Parallel()

		// given
		fixture := newRunFixture()
		discoverErr := errors.New("no such directory")
		fixture.workspace.DiscoverErr = discoverErr
		settings := entitybuilders.NewSettingsBuilder().BuildSettings()

		// when
		summary, err := fixture.command().Execute(context.Background(), settings, commands.RunOptions{})

		// then
		require.ErrorIs(t, err, discoverErr)
		assert.Nil(t, summary)
		assert.Nil(t, fixture.summaries.Summary)
	})

	t.Run("should return error when an output directory cannot be prepared", func(t *testing.T) {
		t.Parallel()

		// given
		fixture := newRunFixture()
		prepareErr := errors.New("read-only file system")
		fixture.statements.PrepareErr = prepareErr
		settings := entitybuilders.NewSettingsBuilder().BuildSettings()

		// when
		_, err := fixture.command().Execute(context.Background(), settings, commands.RunOptions{})

		// then
		require.ErrorIs(t, err, prepareErr)
		assert.Empty(t, fixture.workspace.DiscoverRoot)
	})

	t.Run("should stop before the next repository when the context is cancelled", func(t *testing.T) {
		t.Parallel()

		// given
		repo := entitybuilders.NewRepositoryBuilder().BuildRepository()
		fixture := newRunFixture(repo)
		settings := entitybuilders.NewSettingsBuilder().BuildSettings()
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		// when
		_, err := fixture.command().Execute(ctx, settings, commands.RunOptions{})

		// then
		require.ErrorIs(t, err, context.Canceled)
		assert.Empty(t, fixture.workspace.ListedRepos)
	})

	t.Run("should report a summary write failure", func(t *testing.T) {
		t.Parallel()

		// given
		fixture := newRunFixture()
		writeErr := errors.New("disk full")
		fixture.summaries.WriteErr = writeErr
		settings := entitybuilders.NewSettingsBuilder().BuildSettings()

		// when
		_, err := fixture.command().Execute(context.Background(), settings, commands.RunOptions{})

		// then
		require.ErrorIs(t, err, writeErr)
	})
}
