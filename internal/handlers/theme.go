package handlers

import (
	"context"
	"fmt"
	"io"
	"net/http"

	"github.com/a-h/templ"

	applog "topiray/internal/log"
	"topiray/models"
	"topiray/views/components"
	"topiray/views/layout"
	"topiray/views/theme"
)

const stylesheetPath = "/assets/topiray.css"

// themeSet holds one validated provider per preset, each with the host
// overrides applied.
type themeSet struct {
	fallback  string
	providers map[string]*theme.Provider
}

var themes = mustThemeSet(theme.PresetLight, theme.PartialConfig{})

var welcomePanel = templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
	_, err := io.WriteString(w, `<div class="topiray-welcome"><h2>Welcome to Topiray</h2><p>Sign in to manage your account, security and appearance.</p></div>`)
	return err
})

func newThemeSet(preset string, overrides theme.PartialConfig) (*themeSet, error) {
	if !theme.ValidPreset(preset) {
		return nil, fmt.Errorf("%w: %q", theme.ErrUnknownPreset, preset)
	}
	set := &themeSet{
		fallback:  theme.NormalizePreset(preset),
		providers: make(map[string]*theme.Provider),
	}
	for _, option := range theme.Options() {
		cfg := theme.Merge(theme.Resolve(option.Value), overrides)
		if cfg.Customization.LeftPanelContent == nil {
			cfg.Customization.LeftPanelContent = welcomePanel
		}
		provider, err := theme.NewProvider(&cfg)
		if err != nil {
			return nil, fmt.Errorf("build %s theme: %w", option.Value, err)
		}
		set.providers[option.Value] = provider
	}
	return set, nil
}

func mustThemeSet(preset string, overrides theme.PartialConfig) *themeSet {
	set, err := newThemeSet(preset, overrides)
	if err != nil {
		panic(err)
	}
	return set
}

func (s *themeSet) provider(name string) *theme.Provider {
	if models.ValidTheme(name) {
		if p, ok := s.providers[models.NormalizeTheme(name)]; ok {
			return p
		}
	}
	return s.providers[s.fallback]
}

// ConfigureTheme selects the default preset and applies overrides to every
// preset. Every resulting theme is validated before it is installed.
func ConfigureTheme(preset string, overrides theme.PartialConfig) error {
	set, err := newThemeSet(preset, overrides)
	if err != nil {
		return err
	}
	themes = set
	applog.Debug(context.Background(), "theme presets configured", "default", set.fallback, "presets", len(set.providers))
	return nil
}

// loadCurrentUserTheme resolves the preset for the request: the session
// choice first, then the stored user preference, then the configured default.
func loadCurrentUserTheme(r *http.Request) string {
	fallback := themes.fallback
	if sessionManager == nil {
		return fallback
	}
	if value := sessionManager.GetString(r.Context(), sessionUserThemeKey); models.ValidTheme(value) {
		return models.NormalizeTheme(value)
	}

	id, ok := currentUserID(r)
	if !ok || database == nil {
		return fallback
	}
	user := &models.User{}
	if err := database.WithContext(r.Context()).Select("id", "theme").First(user, id).Error; err != nil {
		applog.Debug(r.Context(), "unable to load theme preference", "userID", id, "error", err)
		return fallback
	}
	if !models.ValidTheme(user.Theme) {
		return fallback
	}
	preset := models.NormalizeTheme(user.Theme)
	setSessionTheme(r, preset)
	return preset
}

func setSessionTheme(r *http.Request, preset string) {
	if sessionManager == nil {
		return
	}
	sessionManager.Put(r.Context(), sessionUserThemeKey, preset)
}

// ThemeStylesheet serves the custom properties of the request's theme.
func ThemeStylesheet(w http.ResponseWriter, r *http.Request) {
	preset := loadCurrentUserTheme(r)
	applog.Debug(r.Context(), "serving theme stylesheet", "theme", preset)
	themes.provider(preset).ServeHTTP(w, r)
}

func group(children ...templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		for _, child := range children {
			if child == nil {
				continue
			}
			if err := child.Render(ctx, w); err != nil {
				return err
			}
		}
		return nil
	})
}

func text(tag, class, value string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		open := "<" + tag
		if class != "" {
			open += ` class="` + templ.EscapeString(class) + `"`
		}
		_, err := io.WriteString(w, open+">"+templ.EscapeString(value)+"</"+tag+">")
		return err
	})
}

// renderScreen writes screen with the request's theme. HTMX requests get the
// bare screen; everything else gets the full two panel page.
func renderScreen(w http.ResponseWriter, r *http.Request, title string, screen templ.Component) {
	preset := loadCurrentUserTheme(r)
	ctx := applog.WithAttrs(r.Context(), "theme", preset)

	body := screen
	if !isHTMX(r) {
		applog.Debug(ctx, "rendering full page", "title", title)
		body = layout.Document(layout.DocumentProps{
			Title:       title + " | Topiray",
			Stylesheets: []string{stylesheetPath},
		}, layout.TwoPanelLayout(layout.TwoPanelProps{
			RightContent: group(
				components.AuthCard("", screen),
				layout.ThemeSwitcher(layout.ThemeSwitcherProps{Action: "/preferences/theme", Current: preset, ClassName: "topiray-theme-switcher--footer"}),
			),
		}))
	} else {
		applog.Debug(ctx, "rendering HTMX partial", "title", title)
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := themes.provider(preset).Wrap(body).Render(ctx, w); err != nil {
		applog.Error(ctx, "failed to render screen", "title", title, "error", err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func alert(message, notice string) components.AlertProps {
	if message != "" {
		return components.AlertProps{Message: message, Type: components.AlertError}
	}
	return components.AlertProps{Message: notice, Type: components.AlertSuccess}
}
