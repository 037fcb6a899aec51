package components

import (
	"context"
	"io"

	"github.com/a-h/templ"

	"topiray/views/internal/markup"
	"topiray/views/theme"
)

// AlertType selects the state color of an alert.
type AlertType string

const (
	AlertSuccess AlertType = "success"
	AlertError   AlertType = "error"
	AlertWarning AlertType = "warning"
	AlertInfo    AlertType = "info"
)

// AlertProps configures AlertMessage. Dismissible alerts link to DismissURL.
type AlertProps struct {
	Message     string
	Type        AlertType
	Dismissible bool
	DismissURL  string
	ClassName   string
}

// AlertMessage renders a status message. An empty message renders nothing.
func AlertMessage(p AlertProps) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		cfg, err := theme.From(ctx)
		if err != nil {
			return err
		}
		if p.Message == "" {
			return nil
		}
		kind := p.Type
		if kind == "" {
			kind = AlertInfo
		}
		role := "status"
		if kind == AlertError || kind == AlertWarning {
			role = "alert"
		}

		m := markup.New(w)
		m.Raw("<div").
			Attr("class", markup.Classes("topiray-alert", "topiray-alert--"+string(kind), ThemeClasses(cfg), p.ClassName)).
			Attr("role", role).
			Raw(">")
		m.Open("span", "topiray-alert__message").Text(p.Message).Close("span")
		if p.Dismissible && p.DismissURL != "" {
			m.Raw("<a").URL("href", p.DismissURL).Attr("class", "topiray-alert__close").Attr("aria-label", "Dismiss").Raw(">&times;</a>")
		}
		m.Close("div")
		return m.Err()
	})
}
