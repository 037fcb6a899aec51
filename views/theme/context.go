package theme

import "context"

type contextKey struct{}

type injected struct {
	config Config
	sheet  StyleSheet
}

// WithConfig returns a context carrying c, and the style sheet derived from
// it, for descendant components.
func WithConfig(ctx context.Context, c Config) context.Context {
	return withSnapshot(ctx, c, NewStyleSheet(c))
}

func withSnapshot(ctx context.Context, c Config, sheet StyleSheet) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}
	return context.WithValue(ctx, contextKey{}, injected{config: c, sheet: sheet})
}

func lookup(ctx context.Context) (injected, bool) {
	if ctx == nil {
		return injected{}, false
	}
	v, ok := ctx.Value(contextKey{}).(injected)
	return v, ok
}

// From returns the theme injected into ctx. There is no implicit fallback:
// a context without a provider yields ErrNoProvider.
func From(ctx context.Context) (Config, error) {
	v, ok := lookup(ctx)
	if !ok {
		return Config{}, ErrNoProvider
	}
	return v.config, nil
}

// MustFrom is like From but panics when no provider populated ctx.
func MustFrom(ctx context.Context) Config {
	c, err := From(ctx)
	if err != nil {
		panic(err)
	}
	return c
}

// StyleSheetFrom returns the style sheet published alongside the injected theme.
func StyleSheetFrom(ctx context.Context) (StyleSheet, error) {
	v, ok := lookup(ctx)
	if !ok {
		return StyleSheet{}, ErrNoProvider
	}
	return v.sheet, nil
}
