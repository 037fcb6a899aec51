package components

import (
	"context"
	"io"

	"github.com/a-h/templ"

	"topiray/views/internal/markup"
	"topiray/views/theme"
)

// AuthCard frames a screen in a themed surface.
func AuthCard(className string, child templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		cfg, err := theme.From(ctx)
		if err != nil {
			return err
		}
		m := markup.New(w)
		m.Open("div", markup.Classes("topiray-card", ThemeClasses(cfg), className))
		m.Component(ctx, child)
		m.Close("div")
		return m.Err()
	})
}
