package main

import (
	"github.com/spf13/cobra"

	"github.com/SalesforceBrainz/sfmc-devtools-copado/internal/cli"
	"github.com/SalesforceBrainz/sfmc-devtools-copado/internal/errors"
)

var (
	execPreMessage   string
	execPostMessage  string
	execReturnStatus bool

	execCmd = &cobra.Command{
		Use:   "exec [flags] -- <command> [<command> ...]",
		Short: "Run one or more shell commands as a single step",
		Long:  descriptionExec,
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			command := cli.Command(args)

			if !execReturnStatus {
				return service.ExecCommand(cmd.Context(), execPreMessage, command, execPostMessage)
			}

			status := service.ExecCommandReturnStatus(cmd.Context(), execPreMessage, command, execPostMessage)
			switch {
			case status.Unknown:
				return errors.NewSystemError("command %q did not report an exit status", command.Line())
			case status.Code != 0:
				return errors.NewExecutionError(status.Code, "command %q failed with exit status %d", command.Line(), status.Code)
			}

			return nil
		},
	}
)

func init() {
	execCmd.Flags().StringVar(&execPreMessage, "pre-message", "", "message to emit at progress level before running")
	execCmd.Flags().StringVar(&execPostMessage, "post-message", "", "message to emit after a successful run")
	execCmd.Flags().BoolVar(&execReturnStatus, "return-status", false,
		"report failures through the exit code only, without escalating log output")
}
