package auth

import (
	"context"
	"io"

	"github.com/a-h/templ"

	"topiray/views/components"
	"topiray/views/internal/markup"
	"topiray/views/theme"
)

// VerifyEmailProps configures VerifyEmail. Action receives the "check my
// inbox" submission and ResendAction the resend request.
type VerifyEmailProps struct {
	Action       string
	ResendAction string
	Email        string
	BackRoute    string
	Alert        components.AlertProps
	IsLoading    bool
	ClassName    string
}

// VerifyEmail tells the user where the verification link was sent.
func VerifyEmail(p VerifyEmailProps) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		cfg, err := theme.From(ctx)
		if err != nil {
			return err
		}
		m := markup.New(w)
		openScreen(m, cfg, "verify-email", p.ClassName)
		writeBackArrow(ctx, m, cfg, orDefault(p.BackRoute, DefaultVerifyEmailBackRoute), p.IsLoading)
		writeTitle(m, "Verify your email", "")
		m.Component(ctx, components.AlertMessage(p.Alert))

		m.Open("div", "topiray-auth__description")
		m.Raw("<span>We sent a verification email to </span>")
		m.Open("b", "").Text(orDefault(p.Email, "[your email]")).Close("b")
		m.Raw("<span>. Please tap the link inside that email to continue.</span>")
		m.Close("div")

		openForm(m, p.Action, "")
		m.Component(ctx, components.Button(components.ButtonProps{
			Label:     "Check my inbox",
			Type:      "submit",
			FullWidth: true,
			Disabled:  p.IsLoading,
		}))
		m.Close("form")

		openForm(m, p.ResendAction, "")
		if p.Email != "" {
			m.Raw(`<input type="hidden"`).Attr("name", FieldEmail).Attr("value", p.Email).Raw(">")
		}
		m.Component(ctx, components.Button(components.ButtonProps{
			Label:       "Resend Email",
			LoadingText: "Sending...",
			Type:        "submit",
			Variant:     components.ButtonSecondary,
			FullWidth:   true,
			IsLoading:   p.IsLoading,
		}))
		m.Close("form")

		m.Close("div")
		return m.Err()
	})
}
