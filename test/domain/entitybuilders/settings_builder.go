//go:build integration || unit || test

package entitybuilders //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"slices"

	"github.com/rios0rios0/repocatalog/internal/domain/entities"
	testkit "github.com/rios0rios0/testkit/pkg/test"
)

// SettingsBuilder helps create test settings with a fluent interface.
type SettingsBuilder struct {
	*testkit.BaseBuilder
	repoDirectory   string
	outputDirectory string
	hashChunkSize   int
	provider        string
	extensions      []string
	filenames       []string
	folders         []string
}

// NewSettingsBuilder creates a new settings builder with sensible defaults.
func NewSettingsBuilder() *SettingsBuilder {
	b := &SettingsBuilder{BaseBuilder: testkit.NewBaseBuilder()}
	b.defaults()
	return b
}

func (b *SettingsBuilder) defaults() {
	b.repoDirectory = "/repos"
	b.outputDirectory = "/output"
	b.hashChunkSize = entities.DefaultHashChunkSize
	b.provider = entities.DefaultProvider
	b.extensions = []string{".o", ".lock"}
	b.filenames = []string{"LICENSE"}
	b.folders = []string{".git", "node_modules", "build"}
}

// WithRepoDirectory sets the workspace root.
func (b *SettingsBuilder) WithRepoDirectory(dir string) *SettingsBuilder {
	b.repoDirectory = dir
	return b
}

// WithOutputDirectory sets the output root.
func (b *SettingsBuilder) WithOutputDirectory(dir string) *SettingsBuilder {
	b.outputDirectory = dir
	return b
}

// WithHashChunkSize sets the hash read buffer size.
func (b *SettingsBuilder) WithHashChunkSize(size int) *SettingsBuilder {
	b.hashChunkSize = size
	return b
}

// WithProvider sets the fallback provider.
func (b *SettingsBuilder) WithProvider(provider string) *SettingsBuilder {
	b.provider = provider
	return b
}

// WithExtensions sets the excluded extensions.
func (b *SettingsBuilder) WithExtensions(extensions ...string) *SettingsBuilder {
	b.extensions = extensions
	return b
}

// WithFilenames sets the excluded file names.
func (b *SettingsBuilder) WithFilenames(filenames ...string) *SettingsBuilder {
	b.filenames = filenames
	return b
}

// WithFolders sets the excluded folder names.
func (b *SettingsBuilder) WithFolders(folders ...string) *SettingsBuilder {
	b.folders = folders
	return b
}

// Build creates the settings (satisfies testkit.Builder interface).
func (b *SettingsBuilder) Build() interface{} {
	return b.BuildSettings()
}

// BuildSettings creates the settings with a concrete return type.
func (b *SettingsBuilder) BuildSettings() *entities.Settings {
	return &entities.Settings{
		RepoDirectory:   b.repoDirectory,
		OutputDirectory: b.outputDirectory,
		HashChunkSize:   b.hashChunkSize,
		Provider:        b.provider,
		Filters: entities.FileFilters{
			Extensions: slices.Clone(b.extensions),
			Filenames:  slices.Clone(b.filenames),
			Folders:    slices.Clone(b.folders),
		},
	}
}

// Reset clears the builder state, allowing it to be reused.
func (b *SettingsBuilder) Reset() testkit.Builder {
	b.BaseBuilder.Reset()
	b.defaults()
	return b
}

// Clone creates a deep copy of the SettingsBuilder.
func (b *SettingsBuilder) Clone() testkit.Builder {
	return &SettingsBuilder{
		BaseBuilder:     b.BaseBuilder.Clone().(*testkit.BaseBuilder),
		repoDirectory:   b.repoDirectory,
		outputDirectory: b.outputDirectory,
		hashChunkSize:   b.hashChunkSize,
		provider:        b.provider,
		extensions:      slices.Clone(b.extensions),
		filenames:       slices.Clone(b.filenames),
		folders:         slices.Clone(b.folders),
	}
}
