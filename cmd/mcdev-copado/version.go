package main

import (
	"github.com/spf13/cobra"

	mcdevcopado "github.com/SalesforceBrainz/sfmc-devtools-copado"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version of this helper",
	RunE: func(_ *cobra.Command, _ []string) error {
		service.Log.Infof("%s", mcdevcopado.Version)
		return nil
	},
}
