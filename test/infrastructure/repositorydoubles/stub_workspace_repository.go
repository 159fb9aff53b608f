//go:build integration || unit || test

package repositorydoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"github.com/rios0rios0/repocatalog/internal/domain/entities"
	"github.com/rios0rios0/repocatalog/internal/domain/repositories"
)

// StubWorkspaceRepository implements repositories.WorkspaceRepository with canned answers.
type StubWorkspaceRepository struct {
	// --- DiscoverRepositories ---
	Repositories []entities.Repository
	DiscoverErr  error
	DiscoverRoot string

	// --- ListRelevantFiles ---
	Files       map[string][]string // keyed by Repository.Path
	ListErrs    map[string]error    // keyed by Repository.Path
	ListedRepos []entities.Repository
	LastFilters entities.FileFilters
}

var _ repositories.WorkspaceRepository = (*StubWorkspaceRepository)(nil)

func (s *StubWorkspaceRepository) DiscoverRepositories(root string) ([]entities.Repository, error) {
	s.DiscoverRoot = root
	return s.Repositories, s.DiscoverErr
}

func (s *StubWorkspaceRepository) ListRelevantFiles(
	repo entities.Repository,
	filters entities.FileFilters,
) ([]string, error) {
	s.ListedRepos = append(s.ListedRepos, repo)
	s.LastFilters = filters
	if err := s.ListErrs[repo.Path]; err != nil {
		return nil, err
	}
	return s.Files[repo.Path], nil
}
