package handlers

import "net/http"

// Home sends visitors to the app when signed in and to sign in otherwise.
func Home(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	if ActiveSession(r) {
		http.Redirect(w, r, appPath, http.StatusFound)
		return
	}
	http.Redirect(w, r, signInPath, http.StatusFound)
}
