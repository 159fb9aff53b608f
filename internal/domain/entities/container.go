package entities

import (
	"go.uber.org/dig"
)

// RegisterProviders registers all entity providers with the DIG container.
// Settings themselves need a config file path, so only the loader is provided;
// controllers resolve the path and call it.
func RegisterProviders(container *dig.Container) error {
	return container.Provide(func() SettingsLoader {
		return NewSettings
	})
}
