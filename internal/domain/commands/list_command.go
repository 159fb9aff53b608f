package commands

import (
	"context"

	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/repocatalog/internal/domain/entities"
	"github.com/rios0rios0/repocatalog/internal/domain/repositories"
)

// List is the interface for the list command (discovery only).
type List interface {
	Execute(ctx context.Context, settings *entities.Settings) ([]ListedRepository, error)
}

// ListedRepository is one accepted repository with its relevant file count.
type ListedRepository struct {
	Repository entities.Repository
	Files      int
	Err        error // Set when the repository could not be walked
}

// ListCommand discovers repositories the same way RunCommand does, without
// hashing or writing anything.
type ListCommand struct {
	workspace repositories.WorkspaceRepository
	providers repositories.ProviderRepository
}

// NewListCommand creates a new ListCommand.
func NewListCommand(
	workspace repositories.WorkspaceRepository,
	providers repositories.ProviderRepository,
) *ListCommand {
	return &ListCommand{workspace: workspace, providers: providers}
}

// Execute returns every accepted repository in discovery order.
func (it *ListCommand) Execute(
	ctx context.Context,
	settings *entities.Settings,
) ([]ListedRepository, error) {
	repos, err := it.workspace.DiscoverRepositories(settings.RepoDirectory)
	if err != nil {
		return nil, err
	}

	listed := make([]ListedRepository, 0, len(repos))
	for _, repo := range repos {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return listed, ctxErr
		}

		repo.Provider = resolveProvider(it.providers, repo, settings.Provider)

		files, walkErr := it.workspace.ListRelevantFiles(repo, settings.Filters)
		if walkErr != nil {
			logger.Warnf("Cannot walk %s: %v", repo.FullName(), walkErr)
		}
		listed = append(listed, ListedRepository{
			Repository: repo,
			Files:      len(files),
			Err:        walkErr,
		})
	}

	return listed, nil
}
