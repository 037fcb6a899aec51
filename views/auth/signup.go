package auth

import (
	"context"
	"io"
	"strings"

	"github.com/a-h/templ"

	"topiray/views/components"
	"topiray/views/internal/markup"
	"topiray/views/theme"
)

// AccountType is a selectable kind of account on the sign-up screen.
type AccountType struct {
	Label string
	Icon  templ.Component
}

const (
	building2Icon = `<svg xmlns="http://www.w3.org/2000/svg" width="24" height="24" viewBox="0 0 24 24" fill="none" stroke="currentColor" stroke-width="2" stroke-linecap="round" stroke-linejoin="round"><path d="M6 22V4a2 2 0 0 1 2-2h8a2 2 0 0 1 2 2v18Z"/><path d="M6 12H4a2 2 0 0 0-2 2v6a2 2 0 0 0 2 2h2"/><path d="M18 9h2a2 2 0 0 1 2 2v9a2 2 0 0 1-2 2h-2"/><path d="M10 6h4"/><path d="M10 10h4"/><path d="M10 14h4"/><path d="M10 18h4"/></svg>`
	userIcon      = `<svg xmlns="http://www.w3.org/2000/svg" width="24" height="24" viewBox="0 0 24 24" fill="none" stroke="currentColor" stroke-width="2" stroke-linecap="round" stroke-linejoin="round"><path d="M19 21v-2a4 4 0 0 0-4-4H9a4 4 0 0 0-4 4v2"/><circle cx="12" cy="7" r="4"/></svg>`
)

// DefaultAccountTypes returns the Business and Individual account types.
func DefaultAccountTypes() []AccountType {
	return []AccountType{
		{Label: "Business", Icon: templ.Raw(building2Icon)},
		{Label: "Individual", Icon: templ.Raw(userIcon)},
	}
}

func accountTypesOrDefault(types []AccountType) []AccountType {
	if types == nil {
		return DefaultAccountTypes()
	}
	return types
}

// SignUpProps configures SignUp.
type SignUpProps struct {
	Action       string
	SignInURL    string
	SocialAction string
	LogoSrc      string
	// AccountTypes lists the selectable account types; nil selects the
	// defaults and an empty slice disables the choice.
	AccountTypes []AccountType
	// AccountType is the preselected label. The first type is used when empty.
	AccountType   string
	AuthProviders []components.AuthProvider
	Email         string
	Alert         components.AlertProps
	IsLoading     bool
	ClassName     string
}

// SignUp renders the account creation screen. The account type selector is
// only shown when there is more than one type to choose from.
func SignUp(p SignUpProps) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		cfg, err := theme.From(ctx)
		if err != nil {
			return err
		}
		types := accountTypesOrDefault(p.AccountTypes)
		selected := selectedAccountType(types, p.AccountType)

		m := markup.New(w)
		openScreen(m, cfg, "signup", p.ClassName)
		writeFormHeader(m, cfg, "Create your account", p.LogoSrc)
		m.Component(ctx, components.AlertMessage(p.Alert))

		openForm(m, p.Action, "")
		switch {
		case len(types) > 1:
			writeAccountTypes(ctx, m, cfg, types, selected, p.IsLoading)
		case len(types) == 1:
			m.Raw(`<input type="hidden"`).Attr("name", FieldAccountType).Attr("value", types[0].Label).Raw(">")
		}
		writeInput(m, inputProps{Type: "email", Name: FieldEmail, Placeholder: "Email", Value: p.Email, Autocomplete: "email", Required: true, Disabled: p.IsLoading})
		writeInput(m, inputProps{Type: "password", Name: FieldPassword, Placeholder: "Password", Autocomplete: "new-password", Required: true, Disabled: p.IsLoading})
		m.Component(ctx, components.Button(components.ButtonProps{
			Label:       "Create Account",
			LoadingText: "Creating account...",
			Type:        "submit",
			FullWidth:   true,
			IsLoading:   p.IsLoading,
		}))
		m.Close("form")

		if cfg.Customization.ShowSocialLogin {
			writeDivider(m, "or sign up with")
			m.Component(ctx, components.SocialLoginButtons(components.SocialLoginProps{
				Action:    p.SocialAction,
				Providers: p.AuthProviders,
				IsLoading: p.IsLoading,
			}))
		}

		m.Open("div", "topiray-auth__footer")
		m.Open("div", "topiray-auth__footer-row")
		m.Open("span", "topiray-caption").Text("Already have an account? ").Close("span")
		writeLink(m, p.SignInURL, "Sign in", p.IsLoading)
		m.Close("div")
		m.Close("div")

		m.Close("div")
		return m.Err()
	})
}

func selectedAccountType(types []AccountType, label string) string {
	for _, t := range types {
		if strings.EqualFold(t.Label, label) {
			return t.Label
		}
	}
	if len(types) > 0 {
		return types[0].Label
	}
	return ""
}

func writeAccountTypes(ctx context.Context, m *markup.Writer, cfg theme.Config, types []AccountType, selected string, disabled bool) {
	m.Raw("<fieldset").Attr("class", "topiray-account-types").Raw(">")
	m.Raw(`<legend class="topiray-visually-hidden">Account type</legend>`)
	for _, t := range types {
		checked := t.Label == selected
		class := markup.Classes("topiray-account-type", markup.When(checked, "topiray-account-type--selected"), components.ThemeClasses(cfg))
		m.Open("label", class)
		m.Raw(`<input type="radio"`).Attr("name", FieldAccountType).Attr("value", t.Label)
		m.Flag("checked", checked).Flag("disabled", disabled).Raw(">")
		if t.Icon != nil {
			m.Open("span", "topiray-account-type__icon").Component(ctx, t.Icon).Close("span")
		}
		m.Open("b", "topiray-account-type__text").Text(t.Label).Close("b")
		m.Close("label")
	}
	m.Raw("</fieldset>")
}
