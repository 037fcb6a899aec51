package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"topiray/views/theme"
)

func newCSSCmd() *cobra.Command {
	flags := &themeFlags{}
	var selector string

	cmd := &cobra.Command{
		Use:   "css",
		Short: "Print the custom properties of a theme as a style sheet",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := flags.resolve()
			if err != nil {
				return err
			}
			_, err = fmt.Fprint(cmd.OutOrStdout(), theme.NewStyleSheet(cfg).CSS(selector))
			return err
		},
	}
	flags.register(cmd)
	cmd.Flags().StringVar(&selector, "selector", ":root", "Selector the properties are declared on")

	return cmd
}

func newKeysCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "keys",
		Short: "List every published custom property",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, key := range theme.Keys() {
				if _, err := fmt.Fprintln(cmd.OutOrStdout(), key); err != nil {
					return err
				}
			}
			return nil
		},
	}
}

// newExportCmd prints a complete theme as an override document, a starting
// point for brand files.
func newExportCmd() *cobra.Command {
	flags := &themeFlags{}

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Print a theme as a YAML override document",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := flags.resolve()
			if err != nil {
				return err
			}
			data, err := theme.MarshalOverrides(theme.Overrides(cfg))
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(data)
			return err
		},
	}
	flags.register(cmd)

	return cmd
}
