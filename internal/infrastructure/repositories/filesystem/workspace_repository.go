package filesystem

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/repocatalog/internal/domain/entities"
	"github.com/rios0rios0/repocatalog/internal/domain/repositories"
)

// WorkspaceRepository reads clones from the local file system.
type WorkspaceRepository struct{}

var _ repositories.WorkspaceRepository = (*WorkspaceRepository)(nil)

// NewWorkspaceRepository creates a new WorkspaceRepository.
func NewWorkspaceRepository() *WorkspaceRepository {
	return &WorkspaceRepository{}
}

// DiscoverRepositories walks two directory levels under root (<org>/<repo>)
// and keeps the candidates that hold a .git directory.
func (it *WorkspaceRepository) DiscoverRepositories(root string) ([]entities.Repository, error) {
	orgs, err := os.ReadDir(root)
	if err != nil {
		return nil, fmt.Errorf("failed to read repo directory %q: %w", root, err)
	}

	var repos []entities.Repository
	for _, org := range orgs {
		if !isDir(root, org) {
			continue
		}

		orgPath := filepath.Join(root, org.Name())
		candidates, readErr := os.ReadDir(orgPath)
		if readErr != nil {
			logger.Warnf("Skipping organization %s: %v", orgPath, readErr)
			continue
		}

		for _, candidate := range candidates {
			if !isDir(orgPath, candidate) {
				continue
			}

			repoPath := filepath.Join(orgPath, candidate.Name())
			if !hasGitMarker(repoPath) {
				logger.Debugf("Skipping %s: no %s directory", repoPath, entities.GitMarker)
				continue
			}

			repos = append(repos, entities.Repository{
				Organization: org.Name(),
				Name:         candidate.Name(),
				Path:         repoPath,
			})
		}
	}

	return repos, nil
}

// ListRelevantFiles walks the repository in lexical order. Filters apply to
// the path relative to the repository, so directory names above it never
// exclude anything. Excluded folders are pruned without being read.
// Only regular files are listed; a symlink is kept when it points at one.
func (it *WorkspaceRepository) ListRelevantFiles(
	repo entities.Repository,
	filters entities.FileFilters,
) ([]string, error) {
	var files []string

	// The trailing separator makes WalkDir resolve a symlinked clone root.
	root := repo.Path + string(filepath.Separator)
	err := filepath.WalkDir(root, func(path string, entry fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}

		if entry.IsDir() {
			if path != root && filters.ExcludesFolder(entry.Name()) {
				return filepath.SkipDir
			}
			return nil
		}

		if !isRegularFile(path, entry) {
			logger.Debugf("Skipping %s: not a regular file", path)
			return nil
		}

		rel, relErr := filepath.Rel(repo.Path, path)
		if relErr != nil {
			return relErr
		}

		if filters.Relevant(rel) {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to walk %q: %w", repo.Path, err)
	}

	return files, nil
}

// isDir follows symlinks so that linked organizations and clones are kept.
func isDir(parent string, entry fs.DirEntry) bool {
	if entry.IsDir() {
		return true
	}
	if entry.Type()&fs.ModeSymlink == 0 {
		return false
	}

	info, err := os.Stat(filepath.Join(parent, entry.Name()))
	return err == nil && info.IsDir()
}

// isRegularFile never follows a symlink into a directory, so linked folders
// and special files (FIFOs, sockets, devices) stay out of the listing.
func isRegularFile(path string, entry fs.DirEntry) bool {
	if entry.Type().IsRegular() {
		return true
	}
	if entry.Type()&fs.ModeSymlink == 0 {
		return false
	}

	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}

func hasGitMarker(repoPath string) bool {
	info, err := os.Stat(filepath.Join(repoPath, entities.GitMarker))
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			logger.Warnf("Cannot inspect %s: %v", repoPath, err)
		}
		return false
	}
	return info.IsDir()
}
