package repositories

import (
	"github.com/rios0rios0/repocatalog/internal/domain/entities"
)

// WorkspaceRepository abstracts the directory tree holding the clones.
type WorkspaceRepository interface {
	// DiscoverRepositories lists every <org>/<repo> directory under root that
	// holds a .git directory, in lexical order. Provider is left empty.
	DiscoverRepositories(root string) ([]entities.Repository, error)

	// ListRelevantFiles walks the repository and returns the paths of the
	// files that survive the filters, in walk order.
	ListRelevantFiles(repo entities.Repository, filters entities.FileFilters) ([]string, error)
}
