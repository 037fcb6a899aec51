package layout

import (
	"context"
	"io"

	"github.com/a-h/templ"

	"topiray/views/components"
	"topiray/views/internal/markup"
	"topiray/views/theme"
)

// ThemeFieldName is the form field ThemeSwitcher posts the chosen preset in.
const ThemeFieldName = "theme"

// ThemeSwitcherProps configures ThemeSwitcher.
type ThemeSwitcherProps struct {
	Action    string
	Current   string
	Label     string
	IsLoading bool
	ClassName string
}

// ThemeSwitcher renders a preset picker that posts to Action.
func ThemeSwitcher(p ThemeSwitcherProps) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		cfg, err := theme.From(ctx)
		if err != nil {
			return err
		}
		label := p.Label
		if label == "" {
			label = "Theme"
		}
		current := theme.NormalizePreset(p.Current)

		m := markup.New(w)
		m.Raw("<form").Attr("method", "post").URL("action", p.Action)
		m.Attr("class", markup.Classes("topiray-theme-switcher", components.ThemeClasses(cfg), p.ClassName)).Raw(">")
		m.Raw("<label").Attr("for", "topiray-theme-select").Attr("class", "topiray-label").Raw(">").Text(label).Close("label")
		m.Raw("<select").Attr("id", "topiray-theme-select").Attr("name", ThemeFieldName).Attr("class", "topiray-select")
		m.Flag("disabled", p.IsLoading).Raw(">")
		for _, opt := range theme.Options() {
			m.Raw("<option").Attr("value", opt.Value).AttrIf("title", opt.Description)
			m.Flag("selected", opt.Value == current).Raw(">")
			m.Text(opt.Label).Close("option")
		}
		m.Close("select")
		m.Component(ctx, components.Button(components.ButtonProps{
			Label:       "Apply",
			LoadingText: "Applying...",
			Type:        "submit",
			Variant:     components.ButtonSecondary,
			Size:        components.ButtonSmall,
			IsLoading:   p.IsLoading,
		}))
		m.Close("form")
		return m.Err()
	})
}
