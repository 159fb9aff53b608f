package listing

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"

	"github.com/rios0rios0/repocatalog/internal/domain/entities"
	"github.com/rios0rios0/repocatalog/internal/domain/repositories"
)

const (
	extension = ".txt"
	dirPerm   = 0o755
)

// ListingRepository writes one walk path per line.
type ListingRepository struct{}

var _ repositories.ListingRepository = (*ListingRepository)(nil)

// NewListingRepository creates a new ListingRepository.
func NewListingRepository() *ListingRepository {
	return &ListingRepository{}
}

// Prepare creates dir if it does not exist.
func (it *ListingRepository) Prepare(dir string) error {
	if err := os.MkdirAll(dir, dirPerm); err != nil {
		return fmt.Errorf("failed to create listing directory %q: %w", dir, err)
	}
	return nil
}

// Write truncates and rewrites the listing of repo.
func (it *ListingRepository) Write(
	dir string,
	repo entities.Repository,
	records []entities.FileRecord,
) (string, error) {
	path := filepath.Join(dir, repo.OutputStem()+extension)

	file, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("failed to create %q: %w", path, err)
	}

	writer := bufio.NewWriter(file)
	for _, record := range records {
		if _, err = fmt.Fprintln(writer, record.Path); err != nil {
			break
		}
	}
	if err == nil {
		err = writer.Flush()
	}
	if closeErr := file.Close(); err == nil {
		err = closeErr
	}
	if err != nil {
		return "", fmt.Errorf("failed to write %q: %w", path, err)
	}

	return path, nil
}
