package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"topiray/views/theme"
)

func newValidateCmd() *cobra.Command {
	var preset string

	cmd := &cobra.Command{
		Use:   "validate FILE...",
		Short: "Check that override files decode and produce a complete theme",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			base, err := theme.Lookup(preset)
			if err != nil {
				return err
			}
			failed := 0
			for _, path := range args {
				overrides, err := theme.LoadOverridesFile(path)
				if err == nil {
					err = theme.Validate(theme.Merge(base, overrides))
				}
				if err != nil {
					failed++
					fmt.Fprintf(cmd.ErrOrStderr(), "%s: %v\n", path, err)
					continue
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s: ok\n", path)
			}
			if failed > 0 {
				return fmt.Errorf("%d of %d override files invalid", failed, len(args))
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&preset, "preset", "p", theme.PresetLight, "Preset the overrides are merged onto")

	return cmd
}
