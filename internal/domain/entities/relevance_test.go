//go:build unit

package entities_test

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/rios0rios0/repocatalog/internal/domain/entities"
)

func TestIsRelevant(t *testing.T) {
	t.Parallel()

	extensions := []string{".o", ".lock"}
	filenames := []string{"LICENSE", "package-lock.json"}
	folders := []string{"node_modules", "build", ".git"}

	t.Run("should keep a file that matches no list", func(t *testing.T) {
		t.Parallel()

		// given
		path := filepath.Join("src", "main.x")

		// when
		result := entities.IsRelevant(path, extensions, filenames, folders)

		// then
		assert.True(t, result)
	})

	t.Run("should reject a file under an excluded folder at any depth", func(t *testing.T) {
		t.Parallel()

		// given
		paths := []string{
			filepath.Join("node_modules", "left-pad", "index.js"),
			filepath.Join("web", "node_modules", "index.js"),
			filepath.Join("a", "b", "c", "build", "main.x"),
		}

		for _, path := range paths {
			// when
			result := entities.IsRelevant(path, extensions, filenames, folders)

			// then
			assert.False(t, result, path)
		}
	})

	t.Run("should reject an excluded folder even when extension and filename lists are empty", func(t *testing.T) {
		t.Parallel()

		// given
		path := filepath.Join("build", "main.x")

		// when
		result := entities.IsRelevant(path, nil, nil, folders)

		// then
		assert.False(t, result)
	})

	t.Run("should only match whole folder names", func(t *testing.T) {
		t.Parallel()

		// given
		path := filepath.Join("builder", "rebuild", "main.x")

		// when
		result := entities.IsRelevant(path, extensions, filenames, folders)

		// then
		assert.True(t, result)
	})

	t.Run("should not treat the file name itself as a folder segment", func(t *testing.T) {
		t.Parallel()

		// given
		path := filepath.Join("docs", "build")

		// when
		result := entities.IsRelevant(path, extensions, filenames, folders)

		// then
		assert.True(t, result)
	})

	t.Run("should reject an excluded filename", func(t *testing.T) {
		t.Parallel()

		// given
		path := filepath.Join("web", "package-lock.json")

		// when
		result := entities.IsRelevant(path, extensions, filenames, folders)

		// then
		assert.False(t, result)
	})

	t.Run("should reject an excluded extension even when the filename is not excluded", func(t *testing.T) {
		t.Parallel()

		// given
		path := filepath.Join("lib", "out.o")

		// when
		result := entities.IsRelevant(path, extensions, filenames, folders)

		// then
		assert.False(t, result)
	})

	t.Run("should compare names case-sensitively", func(t *testing.T) {
		t.Parallel()

		// given
		path := filepath.Join("Build", "OUT.O")

		// when
		result := entities.IsRelevant(path, extensions, filenames, folders)

		// then
		assert.True(t, result)
	})
}

func TestFileFiltersRelevant(t *testing.T) {
	t.Parallel()

	t.Run("should apply the receiver lists", func(t *testing.T) {
		t.Parallel()

		// given
		filters := entities.FileFilters{
			Extensions: []string{".lock"},
			Filenames:  []string{"Makefile"},
			Folders:    []string{"vendor"},
		}

		// when / then
		assert.False(t, filters.Relevant("Cargo.lock"))
		assert.False(t, filters.Relevant("Makefile"))
		assert.False(t, filters.Relevant(filepath.Join("vendor", "x.go")))
		assert.True(t, filters.Relevant(filepath.Join("cmd", "main.go")))
		assert.True(t, filters.ExcludesFolder("vendor"))
		assert.False(t, filters.ExcludesFolder("cmd"))
	})
}

func TestExtension(t *testing.T) {
	t.Parallel()

	cases := map[string]string{
		"main.go":        ".go",
		"archive.tar.gz": ".gz",
		"Makefile":       "",
		".gitignore":     "",
		"..hidden":       "",
		".eslintrc.json": ".json",
		"trailing.":      ".",
		"yarn.lock":      ".lock",
	}

	for name, expected := range cases {
		t.Run("should return the extension of "+name, func(t *testing.T) {
			t.Parallel()

			// when
			result := entities.Extension(name)

			// then
			assert.Equal(t, expected, result)
		})
	}
}
