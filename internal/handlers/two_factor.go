package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/pquerna/otp/totp"

	applog "topiray/internal/log"
	"topiray/views/auth"
)

const (
	twoFactorPath         = "/two-factor"
	twoFactorVerifyPath   = "/two-factor/verify"
	twoFactorCompletePath = "/two-factor/complete"

	backupCodeCount  = 12
	backupCodeLength = 6
)

var issuer = "Topiray"

// ConfigureIssuer sets the issuer shown by authenticator apps.
func ConfigureIssuer(name string) {
	if strings.TrimSpace(name) != "" {
		issuer = strings.TrimSpace(name)
	}
}

// TwoFactorSetup starts authenticator enrollment for the signed in user.
func TwoFactorSetup(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet && r.Method != http.MethodHead {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	user, err := loadCurrentUser(r)
	if err != nil {
		applog.Error(r.Context(), "unable to load user for two-factor setup", "error", err)
		redirectToLogin(w, r)
		return
	}

	key, err := totp.Generate(totp.GenerateOpts{Issuer: issuer, AccountName: user.Email})
	if err != nil {
		applog.Error(r.Context(), "failed to generate totp secret", "error", err)
		http.Error(w, "unable to start two-factor setup", http.StatusInternalServerError)
		return
	}
	sessionManager.Put(r.Context(), sessionPendingTOTPKey, key.Secret())
	applog.Debug(r.Context(), "two-factor enrollment started", "userID", user.ID)

	renderScreen(w, r, "Two-factor authentication", auth.TwoFactorSetup(auth.TwoFactorSetupProps{
		NextURL:   twoFactorVerifyPath,
		CancelURL: appPath,
		BackRoute: appPath,
		QRCodeURI: key.URL(),
		SharedKey: key.Secret(),
	}))
}

// TwoFactorVerify checks the first code from the authenticator app and
// enables two-factor authentication on success.
func TwoFactorVerify(w http.ResponseWriter, r *http.Request) {
	if sessionManager == nil || database == nil {
		http.Error(w, "two-factor setup not available", http.StatusServiceUnavailable)
		return
	}
	secret := sessionManager.GetString(r.Context(), sessionPendingTOTPKey)
	if secret == "" {
		applog.Debug(r.Context(), "no pending two-factor enrollment")
		redirectTo(w, r, twoFactorPath)
		return
	}

	render := func(code, message string) {
		renderScreen(w, r, "Verify code", auth.TwoFactorSetupEnterVerification(auth.TwoFactorVerifyProps{
			Action:    twoFactorVerifyPath,
			BackRoute: twoFactorPath,
			Code:      code,
			Error:     message,
		}))
	}

	switch r.Method {
	case http.MethodGet, http.MethodHead:
		render("", "")
	case http.MethodPost:
		if err := r.ParseForm(); err != nil {
			http.Error(w, "invalid form submission", http.StatusBadRequest)
			return
		}
		code, err := auth.ParseVerificationCode(r.PostForm)
		if err != nil {
			var fieldErr *auth.FieldError
			if errors.As(err, &fieldErr) {
				render("", fieldErr.Message)
				return
			}
			http.Error(w, "invalid form submission", http.StatusBadRequest)
			return
		}
		if !totp.Validate(code, secret) {
			applog.Debug(r.Context(), "two-factor code rejected")
			render("", "That code didn't match. Check your authenticator app and try again.")
			return
		}

		user, err := loadCurrentUser(r)
		if err != nil {
			applog.Error(r.Context(), "unable to load user for two-factor verification", "error", err)
			redirectToLogin(w, r)
			return
		}
		if err := database.WithContext(r.Context()).Model(user).Updates(map[string]any{
			"two_factor_secret":  secret,
			"two_factor_enabled": true,
		}).Error; err != nil {
			applog.Error(r.Context(), "failed to enable two-factor", "error", err)
			render(code, "We couldn't enable two-factor authentication right now. Please try again.")
			return
		}

		codes, err := newBackupCodes(backupCodeCount, backupCodeLength)
		if err != nil {
			applog.Error(r.Context(), "failed to generate backup codes", "error", err)
			http.Error(w, "unable to generate backup codes", http.StatusInternalServerError)
			return
		}
		sessionManager.Remove(r.Context(), sessionPendingTOTPKey)
		sessionManager.Put(r.Context(), sessionBackupCodesKey, strings.Join(codes, "\n"))
		applog.Info(r.Context(), "two-factor enabled", "userID", user.ID)
		redirectTo(w, r, twoFactorCompletePath)
	default:
		w.WriteHeader(http.StatusMethodNotAllowed)
	}
}

// TwoFactorComplete shows the backup codes once, right after enrollment.
func TwoFactorComplete(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet && r.Method != http.MethodHead {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	if sessionManager == nil {
		redirectToLogin(w, r)
		return
	}
	codes := sessionManager.PopString(r.Context(), sessionBackupCodesKey)
	if codes == "" {
		applog.Debug(r.Context(), "no backup codes to show")
		redirectToApp(w, r)
		return
	}
	renderScreen(w, r, "Two-factor enabled", auth.TwoFactorSetupComplete(auth.TwoFactorCompleteProps{
		DoneURL:     appPath,
		BackupCodes: strings.Split(codes, "\n"),
	}))
}
