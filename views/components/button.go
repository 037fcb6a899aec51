package components

import (
	"context"
	"io"

	"github.com/a-h/templ"

	"topiray/views/internal/markup"
	"topiray/views/theme"
)

// ButtonVariant selects the color role of a button.
type ButtonVariant string

const (
	ButtonPrimary   ButtonVariant = "primary"
	ButtonSecondary ButtonVariant = "secondary"
	ButtonSocial    ButtonVariant = "social"
)

// ButtonSize selects the padding and font scale of a button.
type ButtonSize string

const (
	ButtonSmall  ButtonSize = "sm"
	ButtonMedium ButtonSize = "md"
	ButtonLarge  ButtonSize = "lg"
)

// ButtonProps configures Button. A non-empty Href renders a link styled as a button.
type ButtonProps struct {
	Label        string
	Variant      ButtonVariant
	Size         ButtonSize
	Type         string
	Name         string
	Value        string
	Href         string
	FullWidth    bool
	Disabled     bool
	IsLoading    bool
	LoadingText  string
	Icon         templ.Component
	IconPosition string
	ClassName    string
}

// ThemeClasses returns the structural classes driven by the global customization flags.
func ThemeClasses(cfg theme.Config) string {
	return markup.Classes(
		markup.When(cfg.Customization.RoundedCorners, "topiray-rounded"),
		markup.When(cfg.Customization.Animations, "topiray-animated"),
	)
}

func buttonClass(cfg theme.Config, p ButtonProps) string {
	variant := p.Variant
	if variant == "" {
		variant = ButtonPrimary
	}
	size := p.Size
	if size == "" {
		size = ButtonMedium
	}
	return markup.Classes(
		"topiray-button",
		"topiray-button--"+string(variant),
		"topiray-button--"+string(size),
		markup.When(p.FullWidth, "topiray-button--full"),
		markup.When(p.IsLoading, "topiray-button--loading"),
		markup.When(p.Disabled || p.IsLoading, "topiray-button--disabled"),
		ThemeClasses(cfg),
		p.ClassName,
	)
}

// Button renders a themed button. While loading it is disabled and shows
// LoadingText in place of its label.
func Button(p ButtonProps) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		cfg, err := theme.From(ctx)
		if err != nil {
			return err
		}
		m := markup.New(w)
		disabled := p.Disabled || p.IsLoading

		if p.Href != "" && !disabled {
			m.Raw("<a").URL("href", p.Href).Attr("class", buttonClass(cfg, p)).Raw(">")
			writeButtonContent(ctx, m, p)
			m.Close("a")
			return m.Err()
		}

		kind := p.Type
		if kind == "" {
			kind = "button"
		}
		m.Raw("<button").Attr("type", kind).Attr("class", buttonClass(cfg, p))
		m.AttrIf("name", p.Name).AttrIf("value", p.Value)
		m.Flag("disabled", disabled)
		m.Flag(`aria-busy="true"`, p.IsLoading)
		m.Raw(">")
		writeButtonContent(ctx, m, p)
		m.Close("button")
		return m.Err()
	})
}

func writeButtonContent(ctx context.Context, m *markup.Writer, p ButtonProps) {
	if p.IsLoading {
		m.Raw(`<span class="topiray-spinner" aria-hidden="true"></span>`)
		label := p.LoadingText
		if label == "" {
			label = p.Label
		}
		m.Open("span", "topiray-button__label").Text(label).Close("span")
		return
	}
	iconRight := p.IconPosition == "right"
	if p.Icon != nil && !iconRight {
		m.Open("span", "topiray-button__icon").Component(ctx, p.Icon).Close("span")
	}
	m.Open("span", "topiray-button__label").Text(p.Label).Close("span")
	if p.Icon != nil && iconRight {
		m.Open("span", "topiray-button__icon").Component(ctx, p.Icon).Close("span")
	}
}
