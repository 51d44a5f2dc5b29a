package main

import (
	"github.com/caarlos0/env/v7"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/SalesforceBrainz/sfmc-devtools-copado/internal/cli"
	"github.com/SalesforceBrainz/sfmc-devtools-copado/internal/config"
	"github.com/SalesforceBrainz/sfmc-devtools-copado/internal/errors"
	"github.com/SalesforceBrainz/sfmc-devtools-copado/internal/exec"
	"github.com/SalesforceBrainz/sfmc-devtools-copado/internal/fs"
	"github.com/SalesforceBrainz/sfmc-devtools-copado/internal/logging"
)

var (
	service cli.Service

	initializationErrors []error

	rootCmd = &cobra.Command{
		Use:               "mcdev-copado",
		Short:             "Helpers around the mcdev CLI for Copado jobs",
		Long:          descriptionRoot,
		SilenceErrors: true, // Errors are manually printed in 'main'
		SilenceUsage:  true, // Disables usage text on error
	}
)

func init() {
	rootCmd.PersistentPreRunE = initCLIService

	pf := rootCmd.PersistentFlags()

	pf.String("config-file-path", "", "path to the persisted mcdev configuration file (overrides $configFilePath)")
	pf.String("mcdev-version", "", "mcdev version or #branch to install (overrides $mcdevVersion)")
	pf.Bool("install-mcdev-locally", false, "install mcdev into the job workspace (overrides $installMcdevLocally)")
	pf.Bool("debug", false, "enable debug output")

	for _, name := range []string{"config-file-path", "mcdev-version", "install-mcdev-locally", "debug"} {
		if err := viper.BindPFlag(name, pf.Lookup(name)); err != nil {
			initializationErrors = append(initializationErrors, err)
		}
	}

	rootCmd.CompletionOptions.DisableDefaultCmd = true
}

// initCLIService assembles the central configuration (environment variables from the Copado job container, overridden
// by any explicitly set flags) and constructs the main service with its collaborators.
func initCLIService(cmd *cobra.Command, _ []string) error {
	if len(initializationErrors) > 0 {
		return errors.NewInternalError("unable to initialize the command line interface: %v", initializationErrors)
	}

	var central config.Central
	if err := env.Parse(&central); err != nil {
		return errors.NewConfigurationError("unable to parse the environment: %s", err)
	}

	pf := rootCmd.PersistentFlags()
	if pf.Changed("config-file-path") {
		central.ConfigFilePath = viper.GetString("config-file-path")
	}
	if pf.Changed("mcdev-version") {
		central.McdevVersion = viper.GetString("mcdev-version")
	}
	if pf.Changed("install-mcdev-locally") {
		central.InstallMcdevLocally = viper.GetBool("install-mcdev-locally")
	}
	if pf.Changed("debug") {
		central.Debug = viper.GetBool("debug")
	}

	var logger logging.Logger = logging.NewProductionLogger()
	if central.Debug {
		logger = logging.NewDebugLogger()
	}

	service = cli.Service{
		Config:     central,
		FileSystem: fs.Local{},
		Log:        logger,
		TaskRunner: exec.Local{},
	}

	return nil
}
