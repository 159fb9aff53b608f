//go:build integration || unit || test

package repositorydoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"github.com/rios0rios0/repocatalog/internal/domain/repositories"
)

// StubHasherRepository returns "hash-of-<path>" unless an error is configured.
type StubHasherRepository struct {
	HashErrs    map[string]error // keyed by path
	Digest      string
	DigestErr   error
	HashedPaths []string
}

var _ repositories.HasherRepository = (*StubHasherRepository)(nil)

func (s *StubHasherRepository) HashFile(path string) (string, error) {
	s.HashedPaths = append(s.HashedPaths, path)
	if err := s.HashErrs[path]; err != nil {
		return "", err
	}
	return "hash-of-" + path, nil
}

func (s *StubHasherRepository) TreeDigest(_ string, _ []string) (string, error) {
	return s.Digest, s.DigestErr
}
