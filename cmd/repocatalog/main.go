package main

import (
	"os"

	logger "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/rios0rios0/repocatalog/internal"
	"github.com/rios0rios0/repocatalog/internal/infrastructure/controllers"
)

func buildRootCommand(runController *controllers.RunController) *cobra.Command {
	//nolint:exhaustruct // Minimal Command initialization with required fields only
	cmd := &cobra.Command{
		Use:   "repocatalog",
		Short: "Catalog cloned repositories into path listings and SurrealQL scripts",
		Long: `Walks a directory of cloned repositories laid out as <org>/<repo>/.git,
filters out irrelevant files by folder, filename and extension, and writes
a path listing plus a SurrealQL record-creation script per repository.

Running without a subcommand is the same as "repocatalog run".`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(command *cobra.Command, args []string) error {
			return runController.Execute(command, args)
		},
	}

	// Global persistent flags
	cmd.PersistentFlags().StringP("config", "c", "",
		"Path to config file, INI or HCL (default: auto-detect, then config.ini)")
	cmd.PersistentFlags().BoolP("verbose", "v", false,
		"Enable verbose output")
	runController.AddFlags(cmd)

	return cmd
}

func addSubcommands(rootCmd *cobra.Command, appContext *internal.AppInternal) {
	for _, controller := range appContext.GetControllers() {
		bind := controller.GetBind()
		ctrl := controller // capture for closure
		//nolint:exhaustruct // Minimal Command initialization with required fields only
		subCmd := &cobra.Command{
			Use:   bind.Use,
			Short: bind.Short,
			Long:  bind.Long,
			Args:  cobra.NoArgs,
			RunE: func(command *cobra.Command, arguments []string) error {
				return ctrl.Execute(command, arguments)
			},
		}

		// Add controller-specific flags
		if rc, ok := ctrl.(*controllers.RunController); ok {
			rc.AddFlags(subCmd)
		}

		rootCmd.AddCommand(subCmd)
	}
}

func main() {
	//nolint:exhaustruct // Minimal TextFormatter initialization with required fields only
	logger.SetFormatter(&logger.TextFormatter{
		ForceColors:   true,
		FullTimestamp: true,
	})
	if os.Getenv("DEBUG") == "true" {
		logger.SetLevel(logger.DebugLevel)
	}

	// Inject controllers via DIG
	appContext := injectAppContext()
	cobraRoot := buildRootCommand(appContext.GetRunController())
	addSubcommands(cobraRoot, appContext)

	if err := cobraRoot.Execute(); err != nil {
		os.Exit(1)
	}
}
