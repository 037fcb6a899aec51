package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"topiray/views/theme"
)

var colorPrefixes = []string{
	"--" + theme.Namespace + "-color-",
	"--" + theme.Namespace + "-input-",
	"--" + theme.Namespace + "-button-",
}

func isColorKey(key string) bool {
	for _, prefix := range colorPrefixes {
		if strings.HasPrefix(key, prefix) {
			return true
		}
	}
	return false
}

func newPreviewCmd() *cobra.Command {
	flags := &themeFlags{}

	cmd := &cobra.Command{
		Use:   "preview",
		Short: "Show the color roles of a theme as terminal swatches",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := flags.resolve()
			if err != nil {
				return err
			}

			r := lipgloss.NewRenderer(cmd.OutOrStdout())
			title := r.NewStyle().Bold(true).MarginBottom(1)
			key := r.NewStyle().Width(36)
			value := r.NewStyle().Faint(true)

			lines := []string{title.Render("Theme " + theme.NormalizePreset(flags.preset))}
			for _, d := range theme.NewStyleSheet(cfg).Declarations() {
				if !isColorKey(d.Key) {
					continue
				}
				swatch := r.NewStyle().Background(lipgloss.Color(d.Value)).Render("    ")
				lines = append(lines, lipgloss.JoinHorizontal(lipgloss.Top, swatch, " ", key.Render(d.Key), value.Render(d.Value)))
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), lipgloss.JoinVertical(lipgloss.Left, lines...))
			return err
		},
	}
	flags.register(cmd)

	return cmd
}
