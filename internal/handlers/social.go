package handlers

import (
	"net/http"

	applog "topiray/internal/log"
	"topiray/views/components"
)

// SocialLogin receives the provider chosen on the sign-in and sign-up
// screens. No identity provider is wired into the demo, so the choice is
// acknowledged and the user is sent back to sign in.
func SocialLogin(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form submission", http.StatusBadRequest)
		return
	}
	provider, ok := components.ParseAuthProvider(r.PostFormValue("provider"))
	if !ok {
		applog.Debug(r.Context(), "unknown social provider", "provider", r.PostFormValue("provider"))
		http.Error(w, "unknown provider", http.StatusBadRequest)
		return
	}
	applog.Info(r.Context(), "social sign in requested", "provider", string(provider))
	putNotice(r, provider.Label()+" sign in is not configured for this demo.")
	redirectToLogin(w, r)
}
