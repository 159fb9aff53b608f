package commands

import (
	"context"
	"errors"
	"fmt"
	"time"

	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/repocatalog/internal/domain/entities"
	"github.com/rios0rios0/repocatalog/internal/domain/repositories"
	infraRepos "github.com/rios0rios0/repocatalog/internal/infrastructure/repositories"
)

// Run is the interface for the run command (catalog generation).
type Run interface {
	Execute(ctx context.Context, settings *entities.Settings, opts RunOptions) (*entities.RunSummary, error)
}

// RunOptions holds runtime options for a single run.
type RunOptions struct {
	Verbose  bool
	FailFast bool // Stop at the first failing repository instead of collecting failures
}

// RunCommand orchestrates the catalog flow:
// discover repositories -> list relevant files -> hash -> write listing and statements.
type RunCommand struct {
	workspace     repositories.WorkspaceRepository
	providers     repositories.ProviderRepository
	listing       repositories.ListingRepository
	statements    repositories.StatementRepository
	summaries     repositories.SummaryRepository
	hasherFactory infraRepos.HasherFactory
	now           func() time.Time
}

// NewRunCommand creates a new RunCommand with the given repositories.
func NewRunCommand(
	workspace repositories.WorkspaceRepository,
	providers repositories.ProviderRepository,
	listing repositories.ListingRepository,
	statements repositories.StatementRepository,
	summaries repositories.SummaryRepository,
	hasherFactory infraRepos.HasherFactory,
) *RunCommand {
	return &RunCommand{
		workspace:     workspace,
		providers:     providers,
		listing:       listing,
		statements:    statements,
		summaries:     summaries,
		hasherFactory: hasherFactory,
		now:           time.Now,
	}
}

// Execute processes every repository under settings.RepoDirectory, one at a
// time. A failing repository does not stop the others unless FailFast is set;
// all failures are returned joined once the run is over.
func (it *RunCommand) Execute(
	ctx context.Context,
	settings *entities.Settings,
	runOpts RunOptions,
) (*entities.RunSummary, error) {
	if runOpts.Verbose {
		logger.SetLevel(logger.DebugLevel)
	}

	if err := it.listing.Prepare(settings.ListingDirectory()); err != nil {
		return nil, err
	}
	if err := it.statements.Prepare(settings.StatementDirectory()); err != nil {
		return nil, err
	}

	repos, err := it.workspace.DiscoverRepositories(settings.RepoDirectory)
	if err != nil {
		return nil, err
	}
	logger.Infof("Found %d repositories in %q", len(repos), settings.RepoDirectory)

	hasher := it.hasherFactory(settings.HashChunkSize)
	summary := &entities.RunSummary{
		GeneratedAt: it.now().UTC(),
		RepoRoot:    settings.RepoDirectory,
	}

	var failures []error
	for _, repo := range repos {
		if ctxErr := ctx.Err(); ctxErr != nil {
			failures = append(failures, ctxErr)
			break
		}

		repo.Provider = resolveProvider(it.providers, repo, settings.Provider)

		repoSummary, processErr := it.processRepository(repo, settings, hasher)
		if processErr != nil {
			logger.Errorf("Failed to process %s: %v", repo.FullName(), processErr)
			summary.Failures = append(summary.Failures, entities.FailureSummary{
				Repository: repo.FullName(),
				Error:      processErr.Error(),
			})
			failures = append(failures, fmt.Errorf("%s: %w", repo.FullName(), processErr))
			if runOpts.FailFast {
				break
			}
			continue
		}

		logger.Infof("[%s] %s: %d relevant files", repo.Provider, repo.FullName(), repoSummary.Files)
		summary.Repositories = append(summary.Repositories, repoSummary)
	}

	if writeErr := it.summaries.Write(settings.SummaryPath(), summary); writeErr != nil {
		failures = append(failures, writeErr)
	}

	logger.Infof(
		"Run complete: %d repos written, %d failed",
		len(summary.Repositories), len(summary.Failures),
	)
	return summary, errors.Join(failures...)
}

// processRepository hashes every relevant file before writing anything, so a
// read failure leaves no half-written outputs behind.
func (it *RunCommand) processRepository(
	repo entities.Repository,
	settings *entities.Settings,
	hasher repositories.HasherRepository,
) (entities.RepositorySummary, error) {
	paths, err := it.workspace.ListRelevantFiles(repo, settings.Filters)
	if err != nil {
		return entities.RepositorySummary{}, err
	}

	records := make([]entities.FileRecord, 0, len(paths))
	relativePaths := make([]string, 0, len(paths))
	for _, path := range paths {
		hash, hashErr := hasher.HashFile(path)
		if hashErr != nil {
			return entities.RepositorySummary{}, hashErr
		}

		record, recordErr := entities.NewFileRecord(repo, path, hash)
		if recordErr != nil {
			return entities.RepositorySummary{}, recordErr
		}
		records = append(records, record)
		relativePaths = append(relativePaths, record.RelativePath)
	}

	digest, digestErr := hasher.TreeDigest(repo.Path, relativePaths)
	if digestErr != nil {
		logger.Warnf("Skipping tree digest of %s: %v", repo.FullName(), digestErr)
		digest = ""
	}

	listingPath, err := it.listing.Write(settings.ListingDirectory(), repo, records)
	if err != nil {
		return entities.RepositorySummary{}, err
	}

	statementPath, err := it.statements.Write(settings.StatementDirectory(), repo, digest, records)
	if err != nil {
		return entities.RepositorySummary{}, err
	}

	return entities.RepositorySummary{
		Provider:     repo.Provider,
		Organization: repo.Organization,
		Name:         repo.Name,
		Files:        len(records),
		Digest:       digest,
		Listing:      listingPath,
		Statements:   statementPath,
	}, nil
}

// resolveProvider falls back to the configured provider when the clone has no
// recognizable origin remote.
func resolveProvider(
	providers repositories.ProviderRepository,
	repo entities.Repository,
	fallback string,
) string {
	if provider, ok := providers.ResolveProvider(repo.Path); ok {
		return provider
	}
	logger.Debugf("Using default provider %q for %s", fallback, repo.FullName())
	return fallback
}
