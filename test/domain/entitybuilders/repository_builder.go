//go:build integration || unit || test

package entitybuilders //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"github.com/rios0rios0/repocatalog/internal/domain/entities"
	testkit "github.com/rios0rios0/testkit/pkg/test"
)

// RepositoryBuilder helps create test repositories with a fluent interface.
type RepositoryBuilder struct {
	*testkit.BaseBuilder
	provider     string
	organization string
	name         string
	path         string
}

// NewRepositoryBuilder creates a new repository builder with sensible defaults.
func NewRepositoryBuilder() *RepositoryBuilder {
	return &RepositoryBuilder{
		BaseBuilder:  testkit.NewBaseBuilder(),
		provider:     "github",
		organization: "acme",
		name:         "widgets",
		path:         "/repos/acme/widgets",
	}
}

// WithProvider sets the provider name.
func (b *RepositoryBuilder) WithProvider(provider string) *RepositoryBuilder {
	b.provider = provider
	return b
}

// WithOrganization sets the organization.
func (b *RepositoryBuilder) WithOrganization(organization string) *RepositoryBuilder {
	b.organization = organization
	return b
}

// WithName sets the repository name.
func (b *RepositoryBuilder) WithName(name string) *RepositoryBuilder {
	b.name = name
	return b
}

// WithPath sets the clone directory.
func (b *RepositoryBuilder) WithPath(path string) *RepositoryBuilder {
	b.path = path
	return b
}

// Build creates the repository (satisfies testkit.Builder interface).
func (b *RepositoryBuilder) Build() interface{} {
	return b.BuildRepository()
}

// BuildRepository creates the repository with a concrete return type.
func (b *RepositoryBuilder) BuildRepository() entities.Repository {
	return entities.Repository{
		Provider:     b.provider,
		Organization: b.organization,
		Name:         b.name,
		Path:         b.path,
	}
}

// Reset clears the builder state, allowing it to be reused.
func (b *RepositoryBuilder) Reset() testkit.Builder {
	b.BaseBuilder.Reset()
	b.provider = "github"
	b.organization = "acme"
	b.name = "widgets"
	b.path = "/repos/acme/widgets"
	return b
}

// Clone creates a deep copy of the RepositoryBuilder.
func (b *RepositoryBuilder) Clone() testkit.Builder {
	return &RepositoryBuilder{
		BaseBuilder:  b.BaseBuilder.Clone().(*testkit.BaseBuilder),
		provider:     b.provider,
		organization: b.organization,
		name:         b.name,
		path:         b.path,
	}
}
