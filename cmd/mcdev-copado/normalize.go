package main

import (
	"encoding/json"

	"github.com/spf13/cobra"

	"github.com/SalesforceBrainz/sfmc-devtools-copado/internal/envvars"
	"github.com/SalesforceBrainz/sfmc-devtools-copado/internal/errors"
)

var (
	normalizeOutputPath string

	normalizeCmd = &cobra.Command{
		Use:   "normalize <file>",
		Short: "Normalize a Copado environment variable payload into plain mappings",
		Long:  descriptionNormalize,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := service.FileSystem.ReadFile(args[0])
			if err != nil {
				return errors.NewSystemError("unable to read %q: %s", args[0], err)
			}

			var vars map[string]any
			if err := json.Unmarshal(data, &vars); err != nil {
				return errors.NewInputError("unable to parse %q: %s", args[0], err)
			}

			if err := envvars.Normalize(vars); err != nil {
				return errors.WithStack(err)
			}

			if normalizeOutputPath != "" {
				return service.SaveJSONFile(normalizeOutputPath, vars, true)
			}

			formatted, err := json.MarshalIndent(vars, "", "    ")
			if err != nil {
				return errors.NewSystemError("unable to serialize normalized variables: %s", err)
			}

			service.Log.Infof("%s", formatted)
			return nil
		},
	}
)

func init() {
	normalizeCmd.Flags().StringVarP(&normalizeOutputPath, "output", "o", "",
		"write the normalized payload to this file instead of printing it")
}
