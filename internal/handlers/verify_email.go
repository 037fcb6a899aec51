package handlers

import (
	"errors"
	"net/http"
	"time"

	"gorm.io/gorm"

	applog "topiray/internal/log"
	"topiray/models"
	"topiray/views/auth"
	"topiray/views/components"
)

const verifyEmailPath = "/verify-email"

func sendVerification(r *http.Request, user *models.User) error {
	if database == nil {
		return gorm.ErrInvalidDB
	}
	token, err := randomToken()
	if err != nil {
		return err
	}
	if err := database.WithContext(r.Context()).Model(user).Update("verification_token", token).Error; err != nil {
		return err
	}
	deliverLink(r, "email-verification", user.Email, verifyEmailPath, token)
	return nil
}

func renderVerifyEmail(w http.ResponseWriter, r *http.Request, a components.AlertProps) {
	email := ""
	if sessionManager != nil {
		email = sessionManager.GetString(r.Context(), sessionUserEmailKey)
	}
	renderScreen(w, r, "Verify email", auth.VerifyEmail(auth.VerifyEmailProps{
		Action:       verifyEmailPath,
		ResendAction: verifyEmailPath + "/resend",
		Email:        email,
		Alert:        a,
	}))
}

// VerifyEmail confirms verification links and renders the verify email
// screen. Its form submission checks whether the link was already followed.
func VerifyEmail(w http.ResponseWriter, r *http.Request) {
	applog.Debug(r.Context(), "handling verify email request", "method", r.Method)

	switch r.Method {
	case http.MethodGet, http.MethodHead:
		if token := r.URL.Query().Get(auth.FieldToken); token != "" {
			confirmEmail(w, r, token)
			return
		}
		message, notice := popFlash(r)
		renderVerifyEmail(w, r, alert(message, notice))
	case http.MethodPost:
		user, err := loadCurrentUser(r)
		if err != nil {
			applog.Debug(r.Context(), "verify email check without account", "error", err)
			redirectToLogin(w, r)
			return
		}
		if user.EmailVerified() {
			redirectToApp(w, r)
			return
		}
		renderVerifyEmail(w, r, components.AlertProps{
			Message: "We haven't seen your confirmation yet. Open the link in the email to continue.",
			Type:    components.AlertInfo,
		})
	default:
		w.WriteHeader(http.StatusMethodNotAllowed)
	}
}

func confirmEmail(w http.ResponseWriter, r *http.Request, token string) {
	if database == nil {
		http.Error(w, "verification not available", http.StatusServiceUnavailable)
		return
	}
	user := &models.User{}
	err := database.WithContext(r.Context()).Where("verification_token = ?", token).First(user).Error
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			applog.Error(r.Context(), "failed to load user for verification", "error", err)
		}
		renderVerifyEmail(w, r, alert("This verification link is invalid or was already used.", ""))
		return
	}
	now := time.Now().UTC()
	if err := database.WithContext(r.Context()).Model(user).Updates(map[string]any{
		"email_verified_at":  now,
		"verification_token": "",
	}).Error; err != nil {
		applog.Error(r.Context(), "failed to mark email verified", "error", err)
		renderVerifyEmail(w, r, alert("We couldn't verify your email right now. Please try again.", ""))
		return
	}
	applog.Info(r.Context(), "email verified", "userID", user.ID)
	putNotice(r, "Your email address is verified.")
	if ActiveSession(r) {
		redirectToApp(w, r)
		return
	}
	redirectToLogin(w, r)
}

// ResendVerification issues a fresh verification link for the signed in user.
func ResendVerification(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	user, err := loadCurrentUser(r)
	if err != nil {
		applog.Debug(r.Context(), "resend verification without account", "error", err)
		redirectToLogin(w, r)
		return
	}
	if user.EmailVerified() {
		redirectToApp(w, r)
		return
	}
	if err := sendVerification(r, user); err != nil {
		applog.Error(r.Context(), "failed to resend verification", "error", err)
		renderVerifyEmail(w, r, alert("We couldn't send the email right now. Please try again.", ""))
		return
	}
	renderVerifyEmail(w, r, alert("", "Verification email sent."))
}
