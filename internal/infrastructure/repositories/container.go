package repositories

import (
	"go.uber.org/dig"

	domainRepos "github.com/rios0rios0/repocatalog/internal/domain/repositories"
	fsRepo "github.com/rios0rios0/repocatalog/internal/infrastructure/repositories/filesystem"
	gitRepo "github.com/rios0rios0/repocatalog/internal/infrastructure/repositories/git"
	hashRepo "github.com/rios0rios0/repocatalog/internal/infrastructure/repositories/hashing"
	listRepo "github.com/rios0rios0/repocatalog/internal/infrastructure/repositories/listing"
	sqlRepo "github.com/rios0rios0/repocatalog/internal/infrastructure/repositories/surrealql"
	sumRepo "github.com/rios0rios0/repocatalog/internal/infrastructure/repositories/summary"
)

// HasherFactory builds a hasher for a chunk size only known once settings are loaded.
type HasherFactory func(chunkSize int) domainRepos.HasherRepository

// NewHasherFactory returns the SHA-256 hasher factory.
func NewHasherFactory() HasherFactory {
	return func(chunkSize int) domainRepos.HasherRepository {
		return hashRepo.NewHasherRepository(chunkSize)
	}
}

// RegisterProviders registers all repository providers with the DIG container.
func RegisterProviders(container *dig.Container) error {
	providers := []any{
		NewHasherFactory,
		func() domainRepos.WorkspaceRepository { return fsRepo.NewWorkspaceRepository() },
		func() domainRepos.ProviderRepository { return gitRepo.NewProviderRepository() },
		func() domainRepos.ListingRepository { return listRepo.NewListingRepository() },
		func() domainRepos.StatementRepository { return sqlRepo.NewStatementRepository() },
		func() domainRepos.SummaryRepository { return sumRepo.NewSummaryRepository() },
	}

	for _, provider := range providers {
		if err := container.Provide(provider); err != nil {
			return err
		}
	}

	return nil
}
