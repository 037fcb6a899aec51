// Package theme defines the typed theme schema of the auth screens, the
// merge used to derive custom themes from presets, and the provider that
// publishes the active theme as CSS custom properties.
//
// Integration example:
//
//	overrides, err := theme.LoadOverridesFile("brand.yaml")
//	if err != nil {
//		return err
//	}
//	cfg := theme.Merge(theme.Resolve(user.Theme), overrides)
//	body := auth.SignIn(auth.SignInProps{Action: "/signin"})
//	page, err := theme.Provide(cfg, layout.Document(layout.DocumentProps{Title: "Sign in"}, body))
//	if err != nil {
//		return err
//	}
//	return page.Render(r.Context(), w)
//
// Document places Style in the page head. Components read the active theme
// with From and fail with ErrNoProvider when rendered outside a provider.
package theme
