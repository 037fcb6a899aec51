package components

import (
	"context"
	"io"
	"strings"

	"github.com/a-h/templ"

	"topiray/views/internal/markup"
	"topiray/views/theme"
)

// AuthProvider identifies a third-party sign-in provider.
type AuthProvider string

const (
	ProviderApple    AuthProvider = "apple"
	ProviderGoogle   AuthProvider = "google"
	ProviderFacebook AuthProvider = "facebook"
)

// DefaultAuthProviders returns the providers shown when none are configured.
func DefaultAuthProviders() []AuthProvider {
	return []AuthProvider{ProviderApple, ProviderGoogle, ProviderFacebook}
}

// ParseAuthProvider maps a submitted value to a known provider.
func ParseAuthProvider(value string) (AuthProvider, bool) {
	switch p := AuthProvider(strings.ToLower(strings.TrimSpace(value))); p {
	case ProviderApple, ProviderGoogle, ProviderFacebook:
		return p, true
	default:
		return "", false
	}
}

// Label returns the display name of the provider.
func (p AuthProvider) Label() string {
	switch p {
	case ProviderApple:
		return "Apple"
	case ProviderGoogle:
		return "Google"
	case ProviderFacebook:
		return "Facebook"
	default:
		return string(p)
	}
}

// SocialLoginProps configures SocialLoginButtons. Each button posts its
// provider as the "provider" field to Action.
type SocialLoginProps struct {
	Action      string
	Providers   []AuthProvider
	IsLoading   bool
	ShowLabels  bool
	Orientation string
	ClassName   string
}

// SocialLoginButtons renders one submit button per provider.
func SocialLoginButtons(p SocialLoginProps) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		cfg, err := theme.From(ctx)
		if err != nil {
			return err
		}
		providers := p.Providers
		if providers == nil {
			providers = DefaultAuthProviders()
		}
		if len(providers) == 0 {
			return nil
		}
		orientation := p.Orientation
		if orientation != "vertical" {
			orientation = "horizontal"
		}

		m := markup.New(w)
		m.Raw("<form").Attr("method", "post").URL("action", p.Action).
			Attr("class", markup.Classes("topiray-social", "topiray-social--"+orientation, ThemeClasses(cfg), p.ClassName)).
			Raw(">")
		for _, provider := range providers {
			label := provider.Label()
			if p.ShowLabels {
				label = "Continue with " + label
			}
			m.Component(ctx, Button(ButtonProps{
				Label:     label,
				Variant:   ButtonSocial,
				Type:      "submit",
				Name:      "provider",
				Value:     string(provider),
				Disabled:  p.IsLoading,
				ClassName: "topiray-social__button topiray-social__button--" + string(provider),
			}))
		}
		m.Close("form")
		return m.Err()
	})
}
