//go:build integration || unit || test

package repositorydoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"path/filepath"

	"github.com/rios0rios0/repocatalog/internal/domain/entities"
	"github.com/rios0rios0/repocatalog/internal/domain/repositories"
)

// WriteCall records a single invocation of a writer.
type WriteCall struct {
	Dir     string
	Repo    entities.Repository
	Digest  string
	Records []entities.FileRecord
}

// SpyListingRepository implements repositories.ListingRepository without touching the disk.
type SpyListingRepository struct {
	PreparedDirs []string
	PrepareErr   error
	WriteErr     error
	Calls        []WriteCall
}

var _ repositories.ListingRepository = (*SpyListingRepository)(nil)

func (s *SpyListingRepository) Prepare(dir string) error {
	s.PreparedDirs = append(s.PreparedDirs, dir)
	return s.PrepareErr
}

func (s *SpyListingRepository) Write(
	dir string,
	repo entities.Repository,
	records []entities.FileRecord,
) (string, error) {
	s.Calls = append(s.Calls, WriteCall{Dir: dir, Repo: repo, Records: records})
	if s.WriteErr != nil {
		return "", s.WriteErr
	}
	return filepath.Join(dir, repo.OutputStem()+".txt"), nil
}

// SpyStatementRepository implements repositories.StatementRepository without touching the disk.
type SpyStatementRepository struct {
	PreparedDirs []string
	PrepareErr   error
	WriteErr     error
	Calls        []WriteCall
}

var _ repositories.StatementRepository = (*SpyStatementRepository)(nil)

func (s *SpyStatementRepository) Prepare(dir string) error {
	s.PreparedDirs = append(s.PreparedDirs, dir)
	return s.PrepareErr
}

func (s *SpyStatementRepository) Write(
	dir string,
	repo entities.Repository,
	digest string,
	records []entities.FileRecord,
) (string, error) {
	s.Calls = append(s.Calls, WriteCall{Dir: dir, Repo: repo, Digest: digest, Records: records})
	if s.WriteErr != nil {
		return "", s.WriteErr
	}
	return filepath.Join(dir, repo.OutputStem()+".surql"), nil
}

// SpySummaryRepository captures the summary instead of writing it.
type SpySummaryRepository struct {
	Path     string
	Summary  *entities.RunSummary
	WriteErr error
}

var _ repositories.SummaryRepository = (*SpySummaryRepository)(nil)

func (s *SpySummaryRepository) Write(path string, summary *entities.RunSummary) error {
	s.Path = path
	s.Summary = summary
	return s.WriteErr
}
