package handlers

import (
	"errors"
	"net/http"
	"strings"

	applog "topiray/internal/log"
	"topiray/views/auth"
	"topiray/views/components"
)

func signInProps(email string, a components.AlertProps) auth.SignInProps {
	return auth.SignInProps{
		Action:            signInPath,
		ForgotPasswordURL: "/forgot-password",
		SignUpURL:         "/signup",
		SocialAction:      "/auth/social",
		Email:             email,
		Alert:             a,
	}
}

// SignIn renders the sign-in screen and processes sign-in submissions.
func SignIn(w http.ResponseWriter, r *http.Request) {
	applog.Debug(r.Context(), "handling sign in request", "method", r.Method, "htmx", isHTMX(r))

	switch r.Method {
	case http.MethodGet, http.MethodHead:
		if ActiveSession(r) {
			applog.Debug(r.Context(), "active session detected, redirecting to app")
			redirectToApp(w, r)
			return
		}
		message, notice := popFlash(r)
		applog.Debug(r.Context(), "rendering sign in form", "messagePresent", message != "", "noticePresent", notice != "")
		renderScreen(w, r, "Sign in", auth.SignIn(signInProps("", alert(message, notice))))
	case http.MethodPost:
		if sessionManager == nil || database == nil {
			applog.Debug(r.Context(), "authentication dependencies unavailable", "hasSession", sessionManager != nil, "hasDatabase", database != nil)
			http.Error(w, "authentication not available", http.StatusServiceUnavailable)
			return
		}
		if err := r.ParseForm(); err != nil {
			applog.Debug(r.Context(), "failed to parse sign in form", "error", err)
			http.Error(w, "invalid form submission", http.StatusBadRequest)
			return
		}
		email := strings.TrimSpace(r.PostFormValue(auth.FieldEmail))

		submission, err := auth.ParseSignIn(r.PostForm)
		if err != nil {
			var fieldErr *auth.FieldError
			if !errors.As(err, &fieldErr) {
				applog.Error(r.Context(), "unexpected sign in parse error", "error", err)
				http.Error(w, "invalid form submission", http.StatusBadRequest)
				return
			}
			applog.Debug(r.Context(), "sign in form rejected", "field", fieldErr.Field)
			renderScreen(w, r, "Sign in", auth.SignIn(signInProps(email, alert(fieldErr.Message, ""))))
			return
		}

		if !authenticate(w, r, submission.Email, submission.Password) {
			applog.Debug(r.Context(), "authentication failed", "email", strings.ToLower(submission.Email))
			message := sessionManager.PopString(r.Context(), sessionLoginMessageKey)
			if message == "" {
				message = "We were unable to sign you in. Please try again."
			}
			renderScreen(w, r, "Sign in", auth.SignIn(signInProps(submission.Email, alert(message, ""))))
			return
		}

		applog.Debug(r.Context(), "authentication succeeded", "email", strings.ToLower(submission.Email))
		redirectToApp(w, r)
	default:
		applog.Debug(r.Context(), "method not allowed for sign in", "method", r.Method)
		w.WriteHeader(http.StatusMethodNotAllowed)
	}
}
