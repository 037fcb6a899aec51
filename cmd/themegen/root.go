package main

import (
	"github.com/spf13/cobra"

	"topiray/views/theme"
)

type themeFlags struct {
	preset    string
	overrides string
}

func (f *themeFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.preset, "preset", "p", theme.PresetLight, "Base preset (light or dark)")
	cmd.Flags().StringVarP(&f.overrides, "overrides", "o", "", "YAML file with overrides applied on top of the preset")
}

// resolve merges the optional override file onto the chosen preset and
// validates the result.
func (f *themeFlags) resolve() (theme.Config, error) {
	base, err := theme.Lookup(f.preset)
	if err != nil {
		return theme.Config{}, err
	}
	if f.overrides == "" {
		return base, nil
	}
	overrides, err := theme.LoadOverridesFile(f.overrides)
	if err != nil {
		return theme.Config{}, err
	}
	merged := theme.Merge(base, overrides)
	if err := theme.Validate(merged); err != nil {
		return theme.Config{}, err
	}
	return merged, nil
}

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "themegen",
		Short:         "Render and validate Topiray auth screen themes",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.AddCommand(newCSSCmd())
	cmd.AddCommand(newKeysCmd())
	cmd.AddCommand(newExportCmd())
	cmd.AddCommand(newValidateCmd())
	cmd.AddCommand(newPreviewCmd())

	return cmd
}
