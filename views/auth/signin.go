package auth

import (
	"context"
	"io"

	"github.com/a-h/templ"

	"topiray/views/components"
	"topiray/views/internal/markup"
	"topiray/views/theme"
)

// SignInProps configures SignIn.
type SignInProps struct {
	Action            string
	ForgotPasswordURL string
	SignUpURL         string
	SocialAction      string
	LogoSrc           string
	// AuthProviders lists the social providers; nil selects all of them.
	AuthProviders []components.AuthProvider
	Email         string
	Alert         components.AlertProps
	IsLoading     bool
	ClassName     string
}

// SignIn renders the email and password sign-in screen.
func SignIn(p SignInProps) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		cfg, err := theme.From(ctx)
		if err != nil {
			return err
		}
		m := markup.New(w)
		openScreen(m, cfg, "signin", p.ClassName)
		writeFormHeader(m, cfg, "Sign in", p.LogoSrc)
		m.Component(ctx, components.AlertMessage(p.Alert))

		openForm(m, p.Action, "")
		writeInput(m, inputProps{Type: "email", Name: FieldEmail, Placeholder: "Email", Value: p.Email, Autocomplete: "email", Required: true, Disabled: p.IsLoading})
		writeInput(m, inputProps{Type: "password", Name: FieldPassword, Placeholder: "Password", Autocomplete: "current-password", Required: true, Disabled: p.IsLoading})
		m.Component(ctx, components.Button(components.ButtonProps{
			Label:       "Continue",
			LoadingText: "Signing in...",
			Type:        "submit",
			FullWidth:   true,
			IsLoading:   p.IsLoading,
		}))
		m.Close("form")

		if cfg.Customization.ShowSocialLogin {
			writeDivider(m, "or sign in with")
			m.Component(ctx, components.SocialLoginButtons(components.SocialLoginProps{
				Action:    p.SocialAction,
				Providers: p.AuthProviders,
				IsLoading: p.IsLoading,
			}))
		}

		m.Open("div", "topiray-auth__footer")
		m.Open("div", "topiray-auth__footer-row")
		writeLink(m, p.ForgotPasswordURL, "Forgot Password?", p.IsLoading)
		m.Close("div")
		m.Open("div", "topiray-auth__footer-row")
		m.Open("span", "topiray-caption").Text("Don't have an account? ").Close("span")
		writeLink(m, p.SignUpURL, "Sign up", p.IsLoading)
		m.Close("div")
		m.Close("div")

		m.Close("div")
		return m.Err()
	})
}
