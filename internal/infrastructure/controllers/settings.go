package controllers

import (
	"fmt"

	logger "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/rios0rios0/repocatalog/internal/domain/entities"
)

// loadSettings resolves the config path from the --config flag, falling back
// to auto-detection and then to entities.DefaultConfigFile.
func loadSettings(cmd *cobra.Command, loader entities.SettingsLoader) (*entities.Settings, error) {
	cfgPath, _ := cmd.Flags().GetString("config")
	if cfgPath == "" {
		found, err := entities.FindConfigFile()
		if err != nil {
			logger.Debugf("%v, using %s", err, entities.DefaultConfigFile)
			found = entities.DefaultConfigFile
		}
		cfgPath = found
	}

	logger.Infof("Using config file: %s", cfgPath)

	settings, err := loader(cfgPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	return settings, nil
}
