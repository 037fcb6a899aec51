package server

import (
	"context"
	"net/http"

	"topiray/internal/handlers"
	applog "topiray/internal/log"
	"topiray/views/assets"
)

func newRouter() http.Handler {
	mux := http.NewServeMux()
	applog.Debug(context.Background(), "registering http routes")
	mux.HandleFunc("/healthz", handlers.Health)
	applog.Debug(context.Background(), "route registered", "path", "/healthz")
	mux.HandleFunc("/signin", handlers.SignIn)
	applog.Debug(context.Background(), "route registered", "path", "/signin")
	mux.HandleFunc("/signup", handlers.Signup)
	applog.Debug(context.Background(), "route registered", "path", "/signup")
	mux.HandleFunc("/forgot-password", handlers.ForgotPassword)
	mux.HandleFunc("/reset-password", handlers.ResetPassword)
	applog.Debug(context.Background(), "route registered", "path", "/forgot-password")
	mux.HandleFunc("/verify-email", handlers.VerifyEmail)
	mux.HandleFunc("/verify-email/resend", handlers.ResendVerification)
	applog.Debug(context.Background(), "route registered", "path", "/verify-email")
	mux.HandleFunc("/auth/social", handlers.SocialLogin)
	applog.Debug(context.Background(), "route registered", "path", "/auth/social")
	mux.HandleFunc("/logout", handlers.Logout)
	applog.Debug(context.Background(), "route registered", "path", "/logout")
	mux.Handle("/two-factor", handlers.RequireAuthentication(http.HandlerFunc(handlers.TwoFactorSetup)))
	mux.Handle("/two-factor/verify", handlers.RequireAuthentication(http.HandlerFunc(handlers.TwoFactorVerify)))
	mux.Handle("/two-factor/complete", handlers.RequireAuthentication(http.HandlerFunc(handlers.TwoFactorComplete)))
	applog.Debug(context.Background(), "route registered", "path", "/two-factor", "protected", true)
	mux.Handle("/app", handlers.RequireAuthentication(http.HandlerFunc(handlers.Dashboard)))
	applog.Debug(context.Background(), "route registered", "path", "/app", "protected", true)
	mux.HandleFunc("/preferences/theme", handlers.UpdateTheme)
	applog.Debug(context.Background(), "route registered", "path", "/preferences/theme")
	mux.HandleFunc("/theme.css", handlers.ThemeStylesheet)
	applog.Debug(context.Background(), "route registered", "path", "/theme.css")
	mux.HandleFunc("/", handlers.Home)
	applog.Debug(context.Background(), "route registered", "path", "/")
	mux.Handle("/assets/", http.StripPrefix("/assets/", assets.Handler()))
	applog.Debug(context.Background(), "route registered", "path", "/assets/", "static", true)
	return mux
}
