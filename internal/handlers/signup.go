package handlers

import (
	"errors"
	"net/http"
	"strings"

	"gorm.io/gorm"

	applog "topiray/internal/log"
	"topiray/views/auth"
	"topiray/views/components"
)

func signUpProps(email, accountType string, a components.AlertProps) auth.SignUpProps {
	return auth.SignUpProps{
		Action:       "/signup",
		SignInURL:    signInPath,
		SocialAction: "/auth/social",
		AccountType:  accountType,
		Email:        email,
		Alert:        a,
	}
}

// Signup displays the account creation screen and processes new registrations.
func Signup(w http.ResponseWriter, r *http.Request) {
	applog.Debug(r.Context(), "handling signup request", "method", r.Method, "htmx", isHTMX(r))

	switch r.Method {
	case http.MethodGet, http.MethodHead:
		if ActiveSession(r) {
			applog.Debug(r.Context(), "active session detected during signup, redirecting to app")
			redirectToApp(w, r)
			return
		}
		message, notice := popFlash(r)
		renderScreen(w, r, "Create account", auth.SignUp(signUpProps("", "", alert(message, notice))))
	case http.MethodPost:
		if sessionManager == nil || database == nil {
			applog.Debug(r.Context(), "registration dependencies unavailable", "hasSession", sessionManager != nil, "hasDatabase", database != nil)
			http.Error(w, "registration not available", http.StatusServiceUnavailable)
			return
		}
		if err := r.ParseForm(); err != nil {
			applog.Debug(r.Context(), "failed to parse signup form", "error", err)
			http.Error(w, "invalid form submission", http.StatusBadRequest)
			return
		}
		email := strings.TrimSpace(r.PostFormValue(auth.FieldEmail))
		requestedType := r.PostFormValue(auth.FieldAccountType)
		fail := func(message string) {
			renderScreen(w, r, "Create account", auth.SignUp(signUpProps(email, requestedType, alert(message, ""))))
		}

		submission, err := auth.ParseSignUp(r.PostForm, nil)
		if err != nil {
			var fieldErr *auth.FieldError
			if errors.As(err, &fieldErr) {
				applog.Debug(r.Context(), "signup form rejected", "field", fieldErr.Field)
				fail(fieldErr.Message)
				return
			}
			http.Error(w, "invalid form submission", http.StatusBadRequest)
			return
		}
		if _, err := findUserByEmail(r, submission.Email); err == nil {
			applog.Debug(r.Context(), "signup attempted with existing email", "email", strings.ToLower(submission.Email))
			fail("An account with that email already exists.")
			return
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			applog.Error(r.Context(), "failed to check existing user", "error", err)
			fail("We couldn't create your account right now. Please try again.")
			return
		}

		user, err := createUser(r, submission.Email, "", submission.Password, submission.AccountType)
		if err != nil {
			applog.Error(r.Context(), "failed to create user", "error", err)
			fail("We couldn't create your account right now. Please try again.")
			return
		}

		applog.Debug(r.Context(), "user created via signup", "userID", user.ID, "email", user.Email, "accountType", user.AccountType)

		if err := sendVerification(r, user); err != nil {
			applog.Error(r.Context(), "failed to issue verification link", "error", err)
		}

		if err := establishSession(r, user); err != nil {
			applog.Error(r.Context(), "failed to establish session after signup", "error", err)
			fail("We couldn't sign you in after creating your account. Please try again.")
			return
		}

		applog.Debug(r.Context(), "signup completed successfully", "userID", user.ID)
		redirectTo(w, r, verifyEmailPath)
	default:
		applog.Debug(r.Context(), "method not allowed for signup", "method", r.Method)
		w.WriteHeader(http.StatusMethodNotAllowed)
	}
}
