package main

import (
	"github.com/spf13/cobra"
)

var resolveCmd = &cobra.Command{
	Use:   "resolve <credential-name> <mid>",
	Short: "Resolve the deployment target business unit for a credential and MID",
	Long:  descriptionResolve,
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		target, err := service.ResolveBusinessUnit(args[0], args[1])
		if err != nil {
			return err
		}

		if target == "" {
			service.Log.Warnf("no business unit mapping available for credential %q", args[0])
			return nil
		}

		service.Log.Infof("%s", target)
		return nil
	},
}
