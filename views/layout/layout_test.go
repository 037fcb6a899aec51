package layout

import (
	"bytes"
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/a-h/templ"

	"topiray/views/theme"
)

func static(html string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		_, err := io.WriteString(w, html)
		return err
	})
}

func render(t *testing.T, cfg theme.Config, c templ.Component) string {
	t.Helper()
	var buf bytes.Buffer
	if err := c.Render(theme.WithConfig(context.Background(), cfg), &buf); err != nil {
		t.Fatalf("render layout: %v", err)
	}
	return buf.String()
}

func TestLayoutsRequireProvider(t *testing.T) {
	t.Parallel()

	layouts := map[string]templ.Component{
		"document": Document(DocumentProps{Title: "x"}, nil),
		"twoPanel": TwoPanelLayout(TwoPanelProps{}),
		"navLinks": NavLinksLayout(NavLinksProps{}),
		"switcher": ThemeSwitcher(ThemeSwitcherProps{Action: "/preferences/theme"}),
	}
	for name, c := range layouts {
		if err := c.Render(context.Background(), &bytes.Buffer{}); !errors.Is(err, theme.ErrNoProvider) {
			t.Fatalf("%s: expected ErrNoProvider, got %v", name, err)
		}
	}
}

func TestDocumentPublishesThemeInHead(t *testing.T) {
	t.Parallel()

	out := render(t, theme.Dark(), Document(DocumentProps{
		Title:       "Sign in",
		Stylesheets: []string{"/static/topiray.css"},
	}, static("<main>content</main>")))

	if !strings.HasPrefix(out, "<!doctype html>") {
		t.Fatalf("expected doctype first: %s", out)
	}
	if !strings.Contains(out, "<title>Sign in</title>") {
		t.Fatalf("expected document title to be rendered: %s", out)
	}
	style := strings.Index(out, `<style id="topiray-theme">`)
	link := strings.Index(out, `href="/static/topiray.css"`)
	head := strings.Index(out, "</head>")
	if style < 0 || link < style || head < link {
		t.Fatalf("expected theme style before host style sheets inside head: %s", out)
	}
	if !strings.Contains(out, "--topiray-color-background: #111827;") {
		t.Fatalf("expected dark background token: %s", out)
	}
	if !strings.Contains(out, "<main>content</main></body></html>") {
		t.Fatalf("expected body content: %s", out)
	}
}

func TestTwoPanelFallbackUsesBrand(t *testing.T) {
	t.Parallel()

	cfg := theme.CreateCustom(theme.PartialConfig{
		Brand: &theme.PartialBrand{Logo: theme.String("/brand.svg"), LogoAlt: theme.String("Acme")},
		Customization: &theme.PartialCustomization{
			BackgroundImage: theme.String("/bg.jpg"),
		},
	})
	cfg.Customization.LeftPanelContent = static("<p>Welcome back</p>")

	out := render(t, cfg, TwoPanelLayout(TwoPanelProps{RightContent: static("<form></form>")}))
	for _, token := range []string{`src="/brand.svg"`, `alt="Acme"`, "<p>Welcome back</p>", "url(&#39;/bg.jpg&#39;)", "<form></form>"} {
		if !strings.Contains(out, token) {
			t.Fatalf("expected output to contain %q: %s", token, out)
		}
	}
	if strings.Index(out, "/brand.svg") > strings.Index(out, "Welcome back") {
		t.Fatalf("expected logo before left panel content: %s", out)
	}
}

func TestTwoPanelLeftContentReplacesFallback(t *testing.T) {
	t.Parallel()

	cfg := theme.CreateCustom(theme.PartialConfig{Brand: &theme.PartialBrand{Logo: theme.String("/brand.svg")}})
	cfg.Customization.LeftPanelContent = static("<p>fallback</p>")

	out := render(t, cfg, TwoPanelLayout(TwoPanelProps{
		LeftContent:         static("<p>custom</p>"),
		LeftBackgroundImage: "/hero.png",
	}))
	if strings.Contains(out, "fallback") || strings.Contains(out, "/brand.svg") {
		t.Fatalf("expected explicit left content to replace fallback: %s", out)
	}
	if !strings.Contains(out, "<p>custom</p>") || !strings.Contains(out, "/hero.png") {
		t.Fatalf("expected custom content and prop background: %s", out)
	}
}

func TestTwoPanelBackgroundStaysInsideURL(t *testing.T) {
	t.Parallel()

	out := render(t, theme.Default(), TwoPanelLayout(TwoPanelProps{
		LeftBackgroundImage: "/a.png');color:red;x('",
	}))
	if !strings.Contains(out, "/a.png%27%29;color:red;x%28%27") {
		t.Fatalf("expected quote and parens to be percent-encoded: %s", out)
	}
	if strings.Contains(out, "&#39;);color") || strings.Contains(out, "');color") {
		t.Fatalf("expected background url to stay quoted: %s", out)
	}
}

func TestTwoPanelHidesLogoWhenDisabled(t *testing.T) {
	t.Parallel()

	cfg := theme.CreateCustom(theme.PartialConfig{Customization: &theme.PartialCustomization{ShowLogo: theme.Bool(false)}})
	out := render(t, cfg, TwoPanelLayout(TwoPanelProps{LogoSrc: "/logo.png"}))
	if strings.Contains(out, "<img") {
		t.Fatalf("expected no logo when logos are disabled: %s", out)
	}
	if strings.Contains(out, "style=") {
		t.Fatalf("expected no background style without an image: %s", out)
	}
}

func TestNavLinksOmitsEmptyRightSlot(t *testing.T) {
	t.Parallel()

	out := render(t, theme.Default(), NavLinksLayout(NavLinksProps{Middle: static("<a>Docs</a>")}))
	if !strings.Contains(out, "<a>Docs</a>") || strings.Contains(out, "topiray-nav-links__right") {
		t.Fatalf("unexpected nav markup: %s", out)
	}

	out = render(t, theme.Default(), NavLinksLayout(NavLinksProps{Right: static("<a>Sign in</a>"), ClassName: "top"}))
	if !strings.Contains(out, "topiray-nav-links__right") || !strings.Contains(out, `class="topiray-nav-links top"`) {
		t.Fatalf("expected right slot and host class: %s", out)
	}
}

func TestThemeSwitcherSelectsCurrentPreset(t *testing.T) {
	t.Parallel()

	out := render(t, theme.Default(), ThemeSwitcher(ThemeSwitcherProps{Action: "/preferences/theme", Current: "Dark"}))
	if !strings.Contains(out, `action="/preferences/theme"`) || !strings.Contains(out, `name="theme"`) {
		t.Fatalf("expected form posting the theme field: %s", out)
	}
	if !strings.Contains(out, `<option value="dark" title="Slate surfaces with sky blue accents." selected>Dark</option>`) {
		t.Fatalf("expected dark preset to be selected: %s", out)
	}
	if strings.Index(out, ">Dark<") > strings.Index(out, ">Light<") {
		t.Fatalf("expected options sorted by label: %s", out)
	}
}
