package controllers

import (
	"context"

	logger "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/rios0rios0/repocatalog/internal/domain/commands"
	"github.com/rios0rios0/repocatalog/internal/domain/entities"
)

// RunController handles the "run" subcommand, also used by the bare root command.
type RunController struct {
	command commands.Run
	loader  entities.SettingsLoader
}

// NewRunController creates a new RunController.
func NewRunController(command commands.Run, loader entities.SettingsLoader) *RunController {
	return &RunController{command: command, loader: loader}
}

// GetBind returns the Cobra command metadata for the run controller.
func (it *RunController) GetBind() entities.ControllerBind {
	return entities.ControllerBind{
		Use:   "run",
		Short: "Generate path listings and SurrealQL scripts",
		Long: `Walk every <org>/<repo> clone under the repo directory, filter out
irrelevant files and write, per repository:

  <output>/repos/<org>_<repo>.txt    relevant file paths, one per line
  <output>/surql/<org>_<repo>.surql  one CREATE statement per relevant file

A summary of the run is written to <output>/summary.yaml.`,
	}
}

// Execute runs the catalog generation.
func (it *RunController) Execute(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	verbose, _ := cmd.Flags().GetBool("verbose")
	failFast, _ := cmd.Flags().GetBool("fail-fast")

	settings, err := loadSettings(cmd, it.loader)
	if err != nil {
		logger.Error(err)
		return err
	}

	logger.Info("Starting repocatalog run...")

	if _, runErr := it.command.Execute(ctx, settings, commands.RunOptions{
		Verbose:  verbose,
		FailFast: failFast,
	}); runErr != nil {
		logger.Errorf("Run failed: %v", runErr)
		return runErr
	}
	return nil
}

// AddFlags adds the run-specific flags to the given Cobra command.
func (it *RunController) AddFlags(cmd *cobra.Command) {
	cmd.Flags().Bool("fail-fast", false, "Stop at the first repository that fails")
}
