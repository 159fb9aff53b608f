package internal

import (
	"github.com/rios0rios0/repocatalog/internal/domain/entities"
	"github.com/rios0rios0/repocatalog/internal/infrastructure/controllers"
)

// AppInternal exposes the wired controllers to the entrypoint.
type AppInternal struct {
	controllers   []entities.Controller
	runController *controllers.RunController
}

// NewAppInternal creates the AppInternal from the aggregated controllers.
func NewAppInternal(
	all *[]entities.Controller,
	runController *controllers.RunController,
) *AppInternal {
	return &AppInternal{controllers: *all, runController: runController}
}

// GetControllers returns every controller, one per subcommand.
func (it *AppInternal) GetControllers() []entities.Controller {
	return it.controllers
}

// GetRunController returns the controller executed by the bare root command.
func (it *AppInternal) GetRunController() *controllers.RunController {
	return it.runController
}
