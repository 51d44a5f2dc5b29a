package main

import (
	"github.com/spf13/cobra"
)

var installCmd = &cobra.Command{
	Use:   "install",
	Short: "Install the configured mcdev version into the job workspace",
	RunE: func(cmd *cobra.Command, _ []string) error {
		return service.InstallMcdev(cmd.Context())
	},
}
