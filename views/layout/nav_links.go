package layout

import (
	"context"
	"io"

	"github.com/a-h/templ"

	"topiray/views/internal/markup"
	"topiray/views/theme"
)

// NavLinksProps configures NavLinksLayout.
type NavLinksProps struct {
	Middle    templ.Component
	Right     templ.Component
	ClassName string
}

// NavLinksLayout centers Middle and pins Right to the trailing edge. The
// right slot is omitted when empty.
func NavLinksLayout(p NavLinksProps) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := theme.From(ctx); err != nil {
			return err
		}
		m := markup.New(w)
		m.Open("div", markup.Classes("topiray-nav-links", p.ClassName))
		m.Open("div", "topiray-nav-links__content")
		m.Open("div", "topiray-nav-links__middle").Component(ctx, p.Middle).Close("div")
		if p.Right != nil {
			m.Open("div", "topiray-nav-links__right").Component(ctx, p.Right).Close("div")
		}
		m.Close("div").Close("div")
		return m.Err()
	})
}
