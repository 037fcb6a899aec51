package auth

import (
	"context"
	"io"

	"github.com/a-h/templ"

	"topiray/views/components"
	"topiray/views/internal/markup"
	"topiray/views/theme"
)

// DefaultResetPasswordDescription is shown by ResetPassword when no
// description is given.
const DefaultResetPasswordDescription = "Enter your new password below. Make sure it's secure and at least 8 characters long."

// ForgottenPasswordProps configures ForgottenPassword.
type ForgottenPasswordProps struct {
	Action    string
	BackRoute string
	Email     string
	Alert     components.AlertProps
	IsLoading bool
	ClassName string
}

// ForgottenPassword asks for the email address a reset link is sent to.
func ForgottenPassword(p ForgottenPasswordProps) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		cfg, err := theme.From(ctx)
		if err != nil {
			return err
		}
		m := markup.New(w)
		openScreen(m, cfg, "forgot-password", p.ClassName)
		openForm(m, p.Action, "")
		writeBackArrow(ctx, m, cfg, orDefault(p.BackRoute, DefaultPasswordBackRoute), p.IsLoading)
		writeTitle(m, "Forgot your password?", "Enter your email address associated to your account and we will send you a one time link to reset your password.")
		m.Component(ctx, components.AlertMessage(p.Alert))
		writeInput(m, inputProps{Type: "email", Name: FieldEmail, Placeholder: "Email", Value: p.Email, Autocomplete: "email", Required: true, Disabled: p.IsLoading})
		m.Component(ctx, components.Button(components.ButtonProps{
			Label:       "Reset Password",
			LoadingText: "Sending...",
			Type:        "submit",
			FullWidth:   true,
			IsLoading:   p.IsLoading,
		}))
		m.Close("form")
		m.Close("div")
		return m.Err()
	})
}

// ResetPasswordProps configures ResetPassword. Token is carried through the
// form untouched so the host can identify the reset request.
type ResetPasswordProps struct {
	Action      string
	Token       string
	BackRoute   string
	Description string
	Alert       components.AlertProps
	IsLoading   bool
	ClassName   string
}

// ResetPassword asks for a new password and its confirmation.
func ResetPassword(p ResetPasswordProps) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		cfg, err := theme.From(ctx)
		if err != nil {
			return err
		}
		m := markup.New(w)
		openScreen(m, cfg, "reset-password", p.ClassName)
		openForm(m, p.Action, "")
		writeBackArrow(ctx, m, cfg, orDefault(p.BackRoute, DefaultPasswordBackRoute), p.IsLoading)
		writeTitle(m, "Reset your password", orDefault(p.Description, DefaultResetPasswordDescription))
		m.Component(ctx, components.AlertMessage(p.Alert))
		if p.Token != "" {
			m.Raw(`<input type="hidden"`).Attr("name", FieldToken).Attr("value", p.Token).Raw(">")
		}
		writeInput(m, inputProps{Type: "password", Name: FieldPassword, Placeholder: "New Password", Autocomplete: "new-password", Required: true, Disabled: p.IsLoading})
		writeInput(m, inputProps{Type: "password", Name: FieldConfirmPassword, Placeholder: "Confirm Password", Autocomplete: "new-password", Required: true, Disabled: p.IsLoading})
		m.Component(ctx, components.Button(components.ButtonProps{
			Label:       "Reset Password",
			LoadingText: "Resetting...",
			Type:        "submit",
			FullWidth:   true,
			IsLoading:   p.IsLoading,
		}))
		m.Close("form")
		m.Close("div")
		return m.Err()
	})
}
