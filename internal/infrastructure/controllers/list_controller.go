package controllers

import (
	"context"
	"fmt"

	logger "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/rios0rios0/repocatalog/internal/domain/commands"
	"github.com/rios0rios0/repocatalog/internal/domain/entities"
)

// ListController handles the "list" subcommand.
type ListController struct {
	command commands.List
	loader  entities.SettingsLoader
}

// NewListController creates a new ListController.
func NewListController(command commands.List, loader entities.SettingsLoader) *ListController {
	return &ListController{command: command, loader: loader}
}

// GetBind returns the Cobra command metadata for the list controller.
func (it *ListController) GetBind() entities.ControllerBind {
	return entities.ControllerBind{
		Use:   "list",
		Short: "List the repositories that would be cataloged",
		Long: `Discover repositories the same way "run" does and print each one with
its provider and number of relevant files. Nothing is written.`,
	}
}

// Execute prints one line per accepted repository.
func (it *ListController) Execute(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	if verbose, _ := cmd.Flags().GetBool("verbose"); verbose {
		logger.SetLevel(logger.DebugLevel)
	}

	settings, err := loadSettings(cmd, it.loader)
	if err != nil {
		logger.Error(err)
		return err
	}

	listed, err := it.command.Execute(ctx, settings)
	if err != nil {
		logger.Errorf("List failed: %v", err)
		return err
	}

	out := cmd.OutOrStdout()
	for _, item := range listed {
		if item.Err != nil {
			_, _ = fmt.Fprintf(out, "%s\t%s\terror: %v\n",
				item.Repository.Provider, item.Repository.FullName(), item.Err)
			continue
		}
		_, _ = fmt.Fprintf(out, "%s\t%s\t%d files\n",
			item.Repository.Provider, item.Repository.FullName(), item.Files)
	}
	return nil
}
