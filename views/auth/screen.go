// Package auth renders the authentication screens. Each screen posts to a
// host-supplied URL; the host performs the actual work and re-renders the
// screen with IsLoading or an Alert as needed.
package auth

import (
	"context"

	"topiray/views/components"
	"topiray/views/internal/markup"
	"topiray/views/theme"
)

// Form field names posted by the screens.
const (
	FieldEmail           = "email"
	FieldPassword        = "password"
	FieldConfirmPassword = "confirm_password"
	FieldAccountType     = "account_type"
	FieldToken           = "token"
	FieldDigit           = "digit"
	FieldCode            = "code"
)

const (
	// DefaultPasswordBackRoute is where the password screens' back arrow points.
	DefaultPasswordBackRoute = "/signin"
	// DefaultVerifyEmailBackRoute is where the verify email back arrow points.
	DefaultVerifyEmailBackRoute = "/signup"
	// DefaultTwoFactorSetupBackRoute is where the two-factor setup back arrow points.
	DefaultTwoFactorSetupBackRoute = "/accountstatus"
	// DefaultTwoFactorVerifyBackRoute is where the verification back arrow points.
	DefaultTwoFactorVerifyBackRoute = "/twofactor"
)

func orDefault(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}

func openScreen(m *markup.Writer, cfg theme.Config, name, className string) {
	m.Open("div", markup.Classes("topiray-auth", "topiray-auth--"+name, components.ThemeClasses(cfg), className))
}

func openForm(m *markup.Writer, action, className string) {
	m.Raw("<form").Attr("method", "post").URL("action", action).Attr("class", markup.Classes("topiray-form", className)).Raw(">")
}

// writeFormHeader renders the title row shared by sign-in and sign-up.
func writeFormHeader(m *markup.Writer, cfg theme.Config, title, logoSrc string) {
	if !cfg.Customization.ShowFormHeader {
		return
	}
	m.Open("div", "topiray-auth__header")
	m.Open("div", "topiray-auth__title-container").Open("b", "topiray-auth__title").Text(title).Close("b").Close("div")
	logo := orDefault(logoSrc, cfg.Brand.SecondaryLogo)
	if logo != "" && cfg.Customization.ShowLogo {
		m.Raw("<img").Attr("class", "topiray-auth__logo").Attr("alt", cfg.Brand.Alt()).URL("src", logo).Raw(">")
	}
	m.Close("div")
}

func writeTitle(m *markup.Writer, title, description string) {
	m.Open("div", "topiray-auth__title-container").Open("b", "topiray-auth__title").Text(title).Close("b").Close("div")
	if description != "" {
		m.Open("div", "topiray-auth__description").Text(description).Close("div")
	}
}

func writeBackArrow(ctx context.Context, m *markup.Writer, cfg theme.Config, route string, disabled bool) {
	if !cfg.Customization.ShowBackArrow {
		return
	}
	m.Open("div", "topiray-auth__back")
	m.Component(ctx, components.BackArrow(components.BackArrowProps{FallbackRoute: route, Disabled: disabled}))
	m.Close("div")
}

type inputProps struct {
	Type         string
	Name         string
	Placeholder  string
	Value        string
	Autocomplete string
	Required     bool
	Disabled     bool
}

func writeInput(m *markup.Writer, p inputProps) {
	m.Raw("<input").Attr("class", "topiray-input").Attr("type", p.Type).Attr("name", p.Name)
	m.AttrIf("placeholder", p.Placeholder).AttrIf("value", p.Value).AttrIf("autocomplete", p.Autocomplete)
	m.Flag("required", p.Required).Flag("disabled", p.Disabled)
	m.Raw(">")
}

func writeDivider(m *markup.Writer, caption string) {
	m.Open("div", "topiray-divider")
	m.Raw(`<div class="topiray-divider__line"></div>`)
	m.Open("div", "topiray-divider__text").Open("span", "topiray-caption").Text(caption).Close("span").Close("div")
	m.Raw(`<div class="topiray-divider__line"></div>`)
	m.Close("div")
}

func writeLink(m *markup.Writer, href, label string, disabled bool) {
	if disabled || href == "" {
		m.Raw("<span").Attr("class", "topiray-link topiray-link--disabled").Attr("aria-disabled", "true").Raw(">").Text(label).Close("span")
		return
	}
	m.Raw("<a").Attr("class", "topiray-link").URL("href", href).Raw(">").Text(label).Close("a")
}
