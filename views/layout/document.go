// Package layout holds the page shells the auth screens are placed in.
package layout

import (
	"context"
	"io"

	"github.com/a-h/templ"

	"topiray/views/internal/markup"
	"topiray/views/theme"
)

// DocumentProps configures Document.
type DocumentProps struct {
	Title       string
	Lang        string
	Stylesheets []string
	Scripts     []string
	BodyClass   string
}

// Document renders a full HTML page around body. The theme's custom
// properties are published in the head, ahead of the host style sheets that
// consume them.
func Document(p DocumentProps, body templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := theme.StyleSheetFrom(ctx); err != nil {
			return err
		}
		lang := p.Lang
		if lang == "" {
			lang = "en"
		}

		m := markup.New(w)
		m.Raw("<!doctype html><html").Attr("lang", lang).Raw(">")
		m.Raw(`<head><meta charset="utf-8"><meta name="viewport" content="width=device-width, initial-scale=1">`)
		m.Open("title", "").Text(p.Title).Close("title")
		m.Component(ctx, theme.Style())
		for _, href := range p.Stylesheets {
			m.Raw(`<link rel="stylesheet"`).URL("href", href).Raw(">")
		}
		for _, src := range p.Scripts {
			m.Raw("<script").URL("src", src).Raw(" defer></script>")
		}
		m.Raw("</head>")
		m.Open("body", markup.Classes("topiray", p.BodyClass))
		m.Component(ctx, body)
		m.Raw("</body></html>")
		return m.Err()
	})
}
