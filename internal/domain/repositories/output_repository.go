package repositories

import (
	"github.com/rios0rios0/repocatalog/internal/domain/entities"
)

// ListingRepository writes the plain path listing of a repository.
type ListingRepository interface {
	// Prepare creates the output directory if it does not exist.
	Prepare(dir string) error

	// Write (over)writes <dir>/<org>_<repo>.txt and returns its path.
	Write(dir string, repo entities.Repository, records []entities.FileRecord) (string, error)
}

// StatementRepository writes the SurrealQL record-creation script of a repository.
type StatementRepository interface {
	// Prepare creates the output directory if it does not exist.
	Prepare(dir string) error

	// Write (over)writes <dir>/<org>_<repo>.surql and returns its path.
	Write(dir string, repo entities.Repository, digest string, records []entities.FileRecord) (string, error)
}

// SummaryRepository persists the report of a run.
type SummaryRepository interface {
	Write(path string, summary *entities.RunSummary) error
}
