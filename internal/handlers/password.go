package handlers

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	applog "topiray/internal/log"
	"topiray/models"
	"topiray/views/auth"
	"topiray/views/components"
)

const (
	resetPasswordPath = "/reset-password"
	resetTokenTTL     = time.Hour
)

const resetRequestedNotice = "If an account exists for that email, a reset link is on its way."

// ForgotPassword renders the forgotten password screen and issues reset links.
func ForgotPassword(w http.ResponseWriter, r *http.Request) {
	applog.Debug(r.Context(), "handling forgot password request", "method", r.Method)

	render := func(email string, a components.AlertProps) {
		renderScreen(w, r, "Forgot password", auth.ForgottenPassword(auth.ForgottenPasswordProps{
			Action: "/forgot-password",
			Email:  email,
			Alert:  a,
		}))
	}

	switch r.Method {
	case http.MethodGet, http.MethodHead:
		render("", components.AlertProps{})
	case http.MethodPost:
		if database == nil {
			http.Error(w, "password reset not available", http.StatusServiceUnavailable)
			return
		}
		if err := r.ParseForm(); err != nil {
			http.Error(w, "invalid form submission", http.StatusBadRequest)
			return
		}
		email, err := auth.ParseEmail(r.PostForm)
		if err != nil {
			var fieldErr *auth.FieldError
			if errors.As(err, &fieldErr) {
				render(r.PostFormValue(auth.FieldEmail), alert(fieldErr.Message, ""))
				return
			}
			http.Error(w, "invalid form submission", http.StatusBadRequest)
			return
		}

		user, err := findUserByEmail(r, email)
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			applog.Debug(r.Context(), "password reset requested for unknown email")
		case err != nil:
			applog.Error(r.Context(), "failed to load user for password reset", "error", err)
			render(email, alert("We couldn't process your request right now. Please try again.", ""))
			return
		default:
			if err := issueResetToken(r, user); err != nil {
				applog.Error(r.Context(), "failed to issue reset token", "error", err)
				render(email, alert("We couldn't process your request right now. Please try again.", ""))
				return
			}
		}
		render("", alert("", resetRequestedNotice))
	default:
		w.WriteHeader(http.StatusMethodNotAllowed)
	}
}

func issueResetToken(r *http.Request, user *models.User) error {
	token, err := randomToken()
	if err != nil {
		return err
	}
	expires := time.Now().UTC().Add(resetTokenTTL)
	if err := database.WithContext(r.Context()).Model(user).Updates(map[string]any{
		"reset_token":            token,
		"reset_token_expires_at": expires,
	}).Error; err != nil {
		return err
	}
	deliverLink(r, "password-reset", user.Email, resetPasswordPath, token)
	return nil
}

func findUserByResetToken(r *http.Request, token string) (*models.User, error) {
	if strings.TrimSpace(token) == "" {
		return nil, gorm.ErrRecordNotFound
	}
	user := &models.User{}
	err := database.WithContext(r.Context()).
		Where("reset_token = ? AND reset_token_expires_at > ?", token, time.Now().UTC()).
		First(user).Error
	if err != nil {
		return nil, err
	}
	return user, nil
}

// ResetPassword renders the new password screen for a reset link and stores
// the new password.
func ResetPassword(w http.ResponseWriter, r *http.Request) {
	applog.Debug(r.Context(), "handling reset password request", "method", r.Method)

	render := func(token string, a components.AlertProps) {
		renderScreen(w, r, "Reset password", auth.ResetPassword(auth.ResetPasswordProps{
			Action: resetPasswordPath,
			Token:  token,
			Alert:  a,
		}))
	}
	const invalidLink = "This reset link is invalid or has expired. Request a new one."

	if database == nil {
		http.Error(w, "password reset not available", http.StatusServiceUnavailable)
		return
	}

	switch r.Method {
	case http.MethodGet, http.MethodHead:
		token := r.URL.Query().Get(auth.FieldToken)
		if _, err := findUserByResetToken(r, token); err != nil {
			applog.Debug(r.Context(), "reset link rejected", "error", err)
			render("", alert(invalidLink, ""))
			return
		}
		render(token, components.AlertProps{})
	case http.MethodPost:
		if err := r.ParseForm(); err != nil {
			http.Error(w, "invalid form submission", http.StatusBadRequest)
			return
		}
		token := r.PostFormValue(auth.FieldToken)
		user, err := findUserByResetToken(r, token)
		if err != nil {
			render("", alert(invalidLink, ""))
			return
		}
		password, err := auth.ParseNewPassword(r.PostForm)
		if err != nil {
			var fieldErr *auth.FieldError
			if errors.As(err, &fieldErr) {
				render(token, alert(fieldErr.Message, ""))
				return
			}
			http.Error(w, "invalid form submission", http.StatusBadRequest)
			return
		}
		hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
		if err != nil {
			applog.Error(r.Context(), "failed to hash new password", "error", err)
			render(token, alert("We couldn't reset your password right now. Please try again.", ""))
			return
		}
		if err := database.WithContext(r.Context()).Model(user).Updates(map[string]any{
			"password_hash":          string(hashed),
			"reset_token":            "",
			"reset_token_expires_at": nil,
		}).Error; err != nil {
			applog.Error(r.Context(), "failed to store new password", "error", err)
			render(token, alert("We couldn't reset your password right now. Please try again.", ""))
			return
		}
		applog.Info(r.Context(), "password reset completed", "userID", user.ID)
		putNotice(r, "Your password has been reset. Sign in with your new password.")
		redirectToLogin(w, r)
	default:
		w.WriteHeader(http.StatusMethodNotAllowed)
	}
}
