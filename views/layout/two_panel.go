package layout

import (
	"context"
	"io"
	"strings"

	"github.com/a-h/templ"

	"topiray/views/internal/markup"
	"topiray/views/theme"
)

// TwoPanelProps configures TwoPanelLayout.
type TwoPanelProps struct {
	// LeftContent replaces the branded fallback of the left pane.
	LeftContent         templ.Component
	RightContent        templ.Component
	LeftBackgroundImage string
	LogoSrc             string
	ClassName           string
}

// TwoPanelLayout splits the page into a decorative left pane and a content
// pane. Without LeftContent the left pane shows the brand logo, when logos
// are enabled, followed by the theme's LeftPanelContent.
func TwoPanelLayout(p TwoPanelProps) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		cfg, err := theme.From(ctx)
		if err != nil {
			return err
		}
		background := p.LeftBackgroundImage
		if background == "" {
			background = cfg.Customization.BackgroundImage
		}

		m := markup.New(w)
		m.Open("div", markup.Classes("topiray-two-panel", p.ClassName))
		m.Open("div", "topiray-two-panel__left")
		m.Raw("<div").Attr("class", "topiray-two-panel__background")
		if background != "" {
			m.Attr("style", backgroundStyle(background))
		}
		m.Raw(">")
		m.Open("div", "topiray-two-panel__left-content")
		if p.LeftContent != nil {
			m.Component(ctx, p.LeftContent)
		} else {
			logo := p.LogoSrc
			if logo == "" {
				logo = cfg.Brand.Logo
			}
			if logo != "" && cfg.Customization.ShowLogo {
				m.Raw("<img").Attr("class", "topiray-two-panel__logo").Attr("alt", cfg.Brand.Alt()).URL("src", logo).Raw(">")
			}
			m.Component(ctx, cfg.Customization.LeftPanelContent)
		}
		m.Raw(`<div class="topiray-two-panel__blur"></div>`)
		m.Close("div").Close("div").Close("div")
		m.Open("div", "topiray-two-panel__right")
		m.Component(ctx, p.RightContent)
		m.Close("div")
		m.Close("div")
		return m.Err()
	})
}

// cssURLEscaper percent-encodes what could end a quoted url() argument.
var cssURLEscaper = strings.NewReplacer(
	"'", "%27",
	"\"", "%22",
	"(", "%28",
	")", "%29",
	"\\", "%5C",
	"\n", "%0A",
	"\r", "%0D",
	" ", "%20",
)

func backgroundStyle(src string) string {
	return "background-image: url('" + cssURLEscaper.Replace(string(templ.URL(src))) + "')"
}
