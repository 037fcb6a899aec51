package theme

import (
	"context"
	"io"
	"fmt"
	"net/http"
	"strings"
	"sync/atomic"

	"github.com/a-h/templ"
)

// StyleElementID is the id of the style element rendered by Style.
const StyleElementID = Namespace + "-theme"

// Snapshot pairs an active theme with the style sheet derived from it.
type Snapshot struct {
	Config     Config
	StyleSheet StyleSheet
	Version    uint64
}

// Provider owns the active theme of a render tree and publishes it to the
// style sheet channel. Each Set replaces the whole snapshot in one atomic
// store, so readers observe either the previous or the next theme in full.
// The zero value publishes the light preset until the first Set.
type Provider struct {
	current atomic.Pointer[Snapshot]
}

var defaultSnapshot = Snapshot{Config: defaultTheme, StyleSheet: NewStyleSheet(defaultTheme)}

func (p *Provider) load() *Snapshot {
	if snap := p.current.Load(); snap != nil {
		return snap
	}
	return &defaultSnapshot
}

// NewProvider builds a provider for c, or for the default preset when c is nil.
func NewProvider(c *Config) (*Provider, error) {
	initial := defaultTheme
	if c != nil {
		initial = *c
	}
	p := &Provider{}
	if err := p.Set(initial); err != nil {
		return nil, err
	}
	return p, nil
}

// Set validates c and republishes every custom property from it.
func (p *Provider) Set(c Config) error {
	if err := Validate(c); err != nil {
		return err
	}
	next := &Snapshot{Config: c, StyleSheet: NewStyleSheet(c)}
	for {
		prev := p.current.Load()
		next.Version = 1
		if prev != nil {
			next.Version = prev.Version + 1
		}
		if p.current.CompareAndSwap(prev, next) {
			return nil
		}
	}
}

// Snapshot returns the active theme and its style sheet.
func (p *Provider) Snapshot() Snapshot {
	return *p.load()
}

// Config returns the active theme.
func (p *Provider) Config() Config {
	return p.load().Config
}

// Version counts the successful Set calls, starting at 1 for the initial
// theme. A zero Provider reports 0.
func (p *Provider) Version() uint64 {
	return p.load().Version
}

// StyleSheet returns the published style sheet.
func (p *Provider) StyleSheet() StyleSheet {
	return p.load().StyleSheet
}

// Wrap renders child with the active theme and its style sheet injected into
// the context. Both come from one snapshot, so a concurrent Set never mixes
// two themes within a render. Place Style in the document head to publish
// the custom properties.
func (p *Provider) Wrap(child templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if child == nil {
			return nil
		}
		snap := p.Snapshot()
		return child.Render(withSnapshot(ctx, snap.Config, snap.StyleSheet), w)
	})
}

// Style renders the custom properties published by the enclosing provider
// as a style element. A sheet with a value that could close the declaration
// or the element is refused with a *ValidationError and nothing is written.
func Style() templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		sheet, err := StyleSheetFrom(ctx)
		if err != nil {
			return err
		}
		return writeStyleElement(w, sheet)
	})
}

// Provide is a one-shot provider for a single render: it validates c and
// wraps child with it.
func Provide(c Config, child templ.Component) (templ.Component, error) {
	p, err := NewProvider(&c)
	if err != nil {
		return nil, err
	}
	return p.Wrap(child), nil
}

// ServeHTTP serves the published custom properties as a style sheet.
func (p *Provider) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet, http.MethodHead:
	default:
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	w.Header().Set("Content-Type", "text/css; charset=utf-8")
	w.Header().Set("Cache-Control", "no-cache")
	if r.Method == http.MethodHead {
		return
	}
	_, _ = io.WriteString(w, p.StyleSheet().CSS(":root"))
}

func checkStyleSheet(sheet StyleSheet) error {
	for _, d := range sheet.decls {
		if strings.ContainsAny(d.Value, unsafeTokenChars) {
			return &ValidationError{
				Field:   d.Key,
				Message: fmt.Sprintf("value %q contains characters not allowed in a style token", d.Value),
			}
		}
	}
	return nil
}

func writeStyleElement(w io.Writer, sheet StyleSheet) error {
	if err := checkStyleSheet(sheet); err != nil {
		return err
	}
	if _, err := io.WriteString(w, `<style id="`+StyleElementID+`">`); err != nil {
		return err
	}
	if _, err := io.WriteString(w, sheet.CSS(":root")); err != nil {
		return err
	}
	_, err := io.WriteString(w, "</style>")
	return err
}
