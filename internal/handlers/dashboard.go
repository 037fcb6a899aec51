package handlers

import (
	"net/http"

	"github.com/a-h/templ"

	applog "topiray/internal/log"
	"topiray/models"
	"topiray/views/components"
	"topiray/views/layout"
)

// Dashboard renders the account overview once a user is authenticated.
func Dashboard(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet && r.Method != http.MethodHead {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	user, err := loadCurrentUser(r)
	if err != nil {
		applog.Error(r.Context(), "unable to load current user for dashboard", "error", err)
		redirectToLogin(w, r)
		return
	}
	message, notice := popFlash(r)

	renderScreen(w, r, "Account", group(
		layout.NavLinksLayout(layout.NavLinksProps{
			Middle: text("span", "topiray-caption", "Signed in as "+user.Email),
			Right:  components.Button(components.ButtonProps{Label: "Sign out", Href: "/logout", Variant: components.ButtonSecondary, Size: components.ButtonSmall}),
		}),
		components.AlertMessage(alert(message, notice)),
		text("h1", "topiray-auth__title", "Your account"),
		verificationStatus(user),
		twoFactorStatus(user),
	))
}

func verificationStatus(user *models.User) templ.Component {
	if user.EmailVerified() {
		return text("p", "topiray-caption", "Email address verified.")
	}
	return group(
		components.AlertMessage(components.AlertProps{
			Message: "Please verify your email address.",
			Type:    components.AlertWarning,
		}),
		components.Button(components.ButtonProps{Label: "Verify email", Href: verifyEmailPath, Variant: components.ButtonSecondary, FullWidth: true}),
	)
}

func twoFactorStatus(user *models.User) templ.Component {
	if user.TwoFactorEnabled {
		return text("p", "topiray-caption", "Two-factor authentication is on.")
	}
	return components.Button(components.ButtonProps{Label: "Set up two-factor authentication", Href: twoFactorPath, FullWidth: true})
}
