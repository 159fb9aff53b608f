//go:build integration || unit || test

package repositorydoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"github.com/rios0rios0/repocatalog/internal/domain/repositories"
)

// StubProviderRepository resolves providers from a map keyed by repository path.
type StubProviderRepository struct {
	Providers map[string]string
}

var _ repositories.ProviderRepository = (*StubProviderRepository)(nil)

func (s *StubProviderRepository) ResolveProvider(repoPath string) (string, bool) {
	provider, ok := s.Providers[repoPath]
	return provider, ok
}
