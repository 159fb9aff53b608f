//go:build unit

package entities_test

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rios0rios0/repocatalog/internal/domain/entities"
	"github.com/rios0rios0/repocatalog/test/domain/entitybuilders"
)

func TestRepository(t *testing.T) {
	t.Parallel()

	t.Run("should expose the composite key in provider, organization, name order", func(t *testing.T) {
		t.Parallel()

		// given
		repo := entitybuilders.NewRepositoryBuilder().WithProvider("gitlab").BuildRepository()

		// when
		key := repo.Key()

		// then
		assert.Equal(t, []string{"gitlab", "acme", "widgets"}, key)
		assert.Equal(t, "acme/widgets", repo.FullName())
		assert.Equal(t, "acme_widgets", repo.OutputStem())
	})
}

func TestNewFileRecord(t *testing.T) {
	t.Parallel()

	t.Run("should derive relative path, extension and filename", func(t *testing.T) {
		t.Parallel()

		// given
		root := filepath.Join("cloned_repos", "acme", "widgets")
		repo := entitybuilders.NewRepositoryBuilder().WithPath(root).BuildRepository()
		path := filepath.Join(root, "src", "main.x")

		// when
		record, err := entities.NewFileRecord(repo, path, "abc123")

		// then
		require.NoError(t, err)
		assert.Equal(t, path, record.Path)
		assert.Equal(t, "src/main.x", record.RelativePath)
		assert.Equal(t, ".x", record.Extension)
		assert.Equal(t, "main.x", record.Filename)
		assert.Equal(t, "abc123", record.Hash)
	})

	t.Run("should return error when path cannot be made relative", func(t *testing.T) {
		t.Parallel()

		// given
		repo := entitybuilders.NewRepositoryBuilder().WithPath("relative/root").BuildRepository()

		// when
		_, err := entities.NewFileRecord(repo, string(filepath.Separator)+filepath.Join("abs", "file.x"), "h")

		// then
		require.Error(t, err)
	})
}
