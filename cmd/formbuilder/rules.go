package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-formbuilder/pkg/form"
)

func rulesCmd(a *app) *cobra.Command {
	var (
		src    sourceFlags
		format string
	)

	cmd := &cobra.Command{
		Use:   "rules",
		Short: "Print the validation rules declared by a form",
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := a.log()
			def, kind, settings, err := src.load(cmd.Context(), logger)
			if err != nil {
				return err
			}
			rules, err := form.New(kind, def, form.WithSettings(settings), form.WithLogger(logger)).Rules()
			if err != nil {
				return err
			}

			switch format {
			case "json":
				enc := json.NewEncoder(a.stdout)
				enc.SetIndent("", "  ")
				return enc.Encode(rules)
			case "yaml":
				enc := yaml.NewEncoder(a.stdout)
				enc.SetIndent(2)
				if err := enc.Encode(rules); err != nil {
					return err
				}
				return enc.Close()
			default:
				return fmt.Errorf("unknown format %q (want json or yaml)", format)
			}
		},
	}

	src.register(cmd)
	cmd.Flags().StringVar(&format, "format", "json", "Output format (json, yaml)")
	return cmd
}
