package handlers

import (
	"encoding/json"
	"net/http"
	"net/url"
	"strings"

	applog "topiray/internal/log"
	"topiray/models"
	"topiray/views/layout"
)

type preferencesResponse struct {
	Theme string `json:"theme"`
}

// UpdateTheme stores the chosen preset in the session and, for signed in
// users, on the account.
func UpdateTheme(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		applog.Debug(r.Context(), "theme update with unsupported method", "method", r.Method)
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	if err := r.ParseForm(); err != nil {
		applog.Error(r.Context(), "failed to parse preferences form", "error", err)
		http.Error(w, "invalid form submission", http.StatusBadRequest)
		return
	}

	value := strings.TrimSpace(r.FormValue(layout.ThemeFieldName))
	if !models.ValidTheme(value) {
		applog.Debug(r.Context(), "received invalid theme selection", "value", value)
		http.Error(w, "invalid theme selection", http.StatusBadRequest)
		return
	}
	preset := models.NormalizeTheme(value)

	if id, ok := currentUserID(r); ok && database != nil {
		applog.Debug(r.Context(), "updating user theme", "userID", id, "theme", preset)
		if err := database.WithContext(r.Context()).Model(&models.User{}).Where("id = ?", id).Update("theme", preset).Error; err != nil {
			applog.Error(r.Context(), "failed to persist theme preference", "error", err)
			http.Error(w, "failed to save preferences", http.StatusInternalServerError)
			return
		}
	}

	setSessionTheme(r, preset)

	if strings.Contains(r.Header.Get("Accept"), "application/json") {
		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(preferencesResponse{Theme: preset}); err != nil {
			applog.Error(r.Context(), "failed to encode preferences response", "error", err)
		}
		return
	}
	redirectTo(w, r, returnPath(r))
}

// returnPath sends the user back to the page the switcher was on. Only
// local paths are honoured.
func returnPath(r *http.Request) string {
	ref, err := url.Parse(r.Referer())
	if err != nil || ref.Path == "" || !strings.HasPrefix(ref.Path, "/") || strings.HasPrefix(ref.Path, "//") {
		return signInPath
	}
	if ref.Host != "" && ref.Host != r.Host {
		return signInPath
	}
	return ref.Path
}
