package entities

import (
	"fmt"
	"path/filepath"
)

// GitMarker is the directory that turns a folder into a repository.
const GitMarker = ".git"

// Repository identifies one cloned repository under the workspace root.
type Repository struct {
	Provider     string // Hosting provider (e.g. "github"), part of the composite key
	Organization string // First directory level under the workspace root
	Name         string // Second directory level under the workspace root
	Path         string // Directory holding the clone
}

// Key returns the composite key components: provider, organization, name.
func (r Repository) Key() []string {
	return []string{r.Provider, r.Organization, r.Name}
}

// FullName returns "org/name" for logging.
func (r Repository) FullName() string {
	return r.Organization + "/" + r.Name
}

// OutputStem returns the base name shared by every output file of the repository.
func (r Repository) OutputStem() string {
	return fmt.Sprintf("%s_%s", r.Organization, r.Name)
}

// FileRecord holds the metadata emitted for a single relevant file.
type FileRecord struct {
	Path         string // Path as produced by the walk (repository path joined)
	RelativePath string // Slash-separated path relative to the repository root
	Extension    string
	Filename     string
	Hash         string // Hex SHA-256 of the file content
}

// NewFileRecord builds the record of a walked file given its content hash.
func NewFileRecord(repo Repository, path, hash string) (FileRecord, error) {
	rel, err := filepath.Rel(repo.Path, path)
	if err != nil {
		return FileRecord{}, fmt.Errorf("failed to relativize %q: %w", path, err)
	}

	base := filepath.Base(path)
	return FileRecord{
		Path:         path,
		RelativePath: filepath.ToSlash(rel),
		Extension:    Extension(base),
		Filename:     base,
		Hash:         hash,
	}, nil
}
