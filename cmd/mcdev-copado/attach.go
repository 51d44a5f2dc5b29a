package main

import (
	"github.com/spf13/cobra"
)

var (
	attachDestDir string

	attachCmd = &cobra.Command{
		Use:   "attach <pattern> [<pattern> ...]",
		Short: "Collect mcdev artifacts for attachment to the job record",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := service.CopyArtifacts(args, attachDestDir)
			return err
		},
	}
)

func init() {
	attachCmd.Flags().StringVar(&attachDestDir, "dest-dir", "attachments",
		"directory that the host platform attaches files from")
}
