package components

import (
	"context"
	"io"

	"github.com/a-h/templ"

	"topiray/views/internal/markup"
	"topiray/views/theme"
)

// DefaultBackRoute is the fallback target of BackArrow.
const DefaultBackRoute = "/signup"

// BackArrowProps configures BackArrow.
type BackArrowProps struct {
	FallbackRoute string
	Disabled      bool
	ClassName     string
	IconClassName string
}

const arrowLeftIcon = `<svg xmlns="http://www.w3.org/2000/svg" width="24" height="24" viewBox="0 0 24 24" fill="none" stroke="currentColor" stroke-width="2" stroke-linecap="round" stroke-linejoin="round"><path d="m12 19-7-7 7-7"/><path d="M19 12H5"/></svg>`

// BackArrow renders a link back to FallbackRoute. Whether it appears at all
// is decided by the screens through Customization.ShowBackArrow.
func BackArrow(p BackArrowProps) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		cfg, err := theme.From(ctx)
		if err != nil {
			return err
		}
		route := p.FallbackRoute
		if route == "" {
			route = DefaultBackRoute
		}
		class := markup.Classes("topiray-back-arrow", markup.When(p.Disabled, "topiray-back-arrow--disabled"), ThemeClasses(cfg), p.ClassName)

		m := markup.New(w)
		if p.Disabled {
			m.Raw("<span").Attr("class", class).Attr("aria-disabled", "true").Raw(">")
		} else {
			m.Raw("<a").URL("href", route).Attr("class", class).Attr("aria-label", "Go back").Raw(">")
		}
		m.Open("span", markup.Classes("topiray-back-arrow__icon", p.IconClassName)).Raw(arrowLeftIcon).Close("span")
		if p.Disabled {
			m.Close("span")
		} else {
			m.Close("a")
		}
		return m.Err()
	})
}
