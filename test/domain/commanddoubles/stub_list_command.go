//go:build integration || unit || test

package commanddoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"context"

	"github.com/rios0rios0/repocatalog/internal/domain/commands"
	"github.com/rios0rios0/repocatalog/internal/domain/entities"
)

// StubListCommand is a stub implementation of commands.List.
type StubListCommand struct {
	ExecuteCallCount int
	ExecuteErr       error
	Listed           []commands.ListedRepository
	LastSettings     *entities.Settings
}

var _ commands.List = (*StubListCommand)(nil)

func (s *StubListCommand) Execute(
	_ context.Context,
	settings *entities.Settings,
) ([]commands.ListedRepository, error) {
	s.ExecuteCallCount++
	s.LastSettings = settings
	return s.Listed, s.ExecuteErr
}
