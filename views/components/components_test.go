package components

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/a-h/templ"

	"topiray/views/theme"
)

func render(t *testing.T, cfg theme.Config, c templ.Component) string {
	t.Helper()
	var buf bytes.Buffer
	if err := c.Render(theme.WithConfig(context.Background(), cfg), &buf); err != nil {
		t.Fatalf("render component: %v", err)
	}
	return buf.String()
}

func TestComponentsRequireProvider(t *testing.T) {
	t.Parallel()

	components := map[string]templ.Component{
		"button":    Button(ButtonProps{Label: "Go"}),
		"alert":     AlertMessage(AlertProps{Message: "hi"}),
		"backArrow": BackArrow(BackArrowProps{}),
		"social":    SocialLoginButtons(SocialLoginProps{Action: "/auth/social"}),
		"card":      AuthCard("", nil),
	}
	for name, c := range components {
		err := c.Render(context.Background(), &bytes.Buffer{})
		if !errors.Is(err, theme.ErrNoProvider) {
			t.Fatalf("%s: expected ErrNoProvider, got %v", name, err)
		}
	}
}

func TestButtonLoadingState(t *testing.T) {
	t.Parallel()

	out := render(t, theme.Default(), Button(ButtonProps{
		Label:       "Continue",
		LoadingText: "Signing in...",
		Type:        "submit",
		IsLoading:   true,
		FullWidth:   true,
	}))
	for _, token := range []string{`type="submit"`, " disabled", "Signing in...", "topiray-button--full", "topiray-button--loading"} {
		if !strings.Contains(out, token) {
			t.Fatalf("expected output to contain %q: %s", token, out)
		}
	}
	if strings.Contains(out, "Continue") {
		t.Fatalf("expected loading text to replace label: %s", out)
	}
}

func TestButtonCustomizationClasses(t *testing.T) {
	t.Parallel()

	out := render(t, theme.Default(), Button(ButtonProps{Label: "Go", ClassName: "host-class"}))
	if !strings.Contains(out, "topiray-rounded") || !strings.Contains(out, "topiray-animated") {
		t.Fatalf("expected rounded and animated classes: %s", out)
	}
	if !strings.Contains(out, "host-class") {
		t.Fatalf("expected host class escape hatch: %s", out)
	}

	square := theme.CreateCustom(theme.PartialConfig{Customization: &theme.PartialCustomization{
		RoundedCorners: theme.Bool(false),
		Animations:     theme.Bool(false),
	}})
	out = render(t, square, Button(ButtonProps{Label: "Go"}))
	if strings.Contains(out, "topiray-rounded") || strings.Contains(out, "topiray-animated") {
		t.Fatalf("expected flags to remove classes: %s", out)
	}
}

func TestButtonHrefRendersLink(t *testing.T) {
	t.Parallel()

	out := render(t, theme.Default(), Button(ButtonProps{Label: "Sign up", Href: "/signup", Variant: ButtonSecondary}))
	if !strings.HasPrefix(out, "<a") || !strings.Contains(out, `href="/signup"`) {
		t.Fatalf("expected link button: %s", out)
	}
	if !strings.Contains(out, "topiray-button--secondary") {
		t.Fatalf("expected secondary variant class: %s", out)
	}
}

func TestAlertMessage(t *testing.T) {
	t.Parallel()

	if out := render(t, theme.Default(), AlertMessage(AlertProps{})); out != "" {
		t.Fatalf("expected empty alert to render nothing, got %q", out)
	}

	out := render(t, theme.Default(), AlertMessage(AlertProps{
		Message:     "<bad> input",
		Type:        AlertError,
		Dismissible: true,
		DismissURL:  "/signin",
	}))
	if !strings.Contains(out, `role="alert"`) || !strings.Contains(out, "topiray-alert--error") {
		t.Fatalf("expected error alert markup: %s", out)
	}
	if !strings.Contains(out, "&lt;bad&gt; input") {
		t.Fatalf("expected message to be escaped: %s", out)
	}
	if !strings.Contains(out, `href="/signin"`) {
		t.Fatalf("expected dismiss link: %s", out)
	}
}

func TestBackArrow(t *testing.T) {
	t.Parallel()

	out := render(t, theme.Default(), BackArrow(BackArrowProps{}))
	if !strings.Contains(out, `href="/signup"`) {
		t.Fatalf("expected default fallback route: %s", out)
	}

	out = render(t, theme.Default(), BackArrow(BackArrowProps{FallbackRoute: "/twofactor", Disabled: true}))
	if strings.Contains(out, "href=") || !strings.Contains(out, `aria-disabled="true"`) {
		t.Fatalf("expected disabled arrow without link: %s", out)
	}
}

func TestSocialLoginButtons(t *testing.T) {
	t.Parallel()

	out := render(t, theme.Default(), SocialLoginButtons(SocialLoginProps{Action: "/auth/social", ShowLabels: true}))
	for _, provider := range DefaultAuthProviders() {
		if !strings.Contains(out, `value="`+string(provider)+`"`) {
			t.Fatalf("expected %s button: %s", provider, out)
		}
	}
	if !strings.Contains(out, "Continue with Google") {
		t.Fatalf("expected labelled buttons: %s", out)
	}

	out = render(t, theme.Default(), SocialLoginButtons(SocialLoginProps{Providers: []AuthProvider{}}))
	if out != "" {
		t.Fatalf("expected no markup for empty provider list, got %q", out)
	}
}

func TestParseAuthProvider(t *testing.T) {
	t.Parallel()

	tests := []struct {
		value string
		want  AuthProvider
		ok    bool
	}{
		{"google", ProviderGoogle, true},
		{" Apple ", ProviderApple, true},
		{"FACEBOOK", ProviderFacebook, true},
		{"myspace", "", false},
	}
	for _, tt := range tests {
		got, ok := ParseAuthProvider(tt.value)
		if got != tt.want || ok != tt.ok {
			t.Fatalf("ParseAuthProvider(%q) = %q, %t; want %q, %t", tt.value, got, ok, tt.want, tt.ok)
		}
	}
}

func TestAuthCardWrapsChild(t *testing.T) {
	t.Parallel()

	child := templ.Raw("<p>inner</p>")
	out := render(t, theme.Default(), AuthCard("wide", child))
	if !strings.Contains(out, `class="topiray-card topiray-rounded topiray-animated wide"`) || !strings.Contains(out, "<p>inner</p>") {
		t.Fatalf("unexpected card markup: %s", out)
	}
}
