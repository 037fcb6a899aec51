package theme

import "strings"

// Namespace prefixes every custom property published by the provider.
const Namespace = "topiray"

// Declaration is one custom property of the style sheet.
type Declaration struct {
	Key   string
	Value string
}

// StyleSheet is the key to value styling channel derived from a Config.
// Keys are stable: external style sheets are authored against them.
type StyleSheet struct {
	decls []Declaration
	index map[string]int
}

type leaf struct {
	key string
	get func(Config) string
}

func prop(name string) string {
	return "--" + Namespace + "-" + name
}

var leaves = []leaf{
	{prop("color-primary"), func(c Config) string { return c.Colors.Primary }},
	{prop("color-secondary"), func(c Config) string { return c.Colors.Secondary }},
	{prop("color-tertiary"), func(c Config) string { return c.Colors.Tertiary }},
	{prop("color-background"), func(c Config) string { return c.Colors.Background }},
	{prop("color-surface"), func(c Config) string { return c.Colors.Surface }},
	{prop("color-text"), func(c Config) string { return c.Colors.Text }},
	{prop("color-text-secondary"), func(c Config) string { return c.Colors.TextSecondary }},
	{prop("color-border"), func(c Config) string { return c.Colors.Border }},
	{prop("color-success"), func(c Config) string { return c.Colors.Success }},
	{prop("color-warning"), func(c Config) string { return c.Colors.Warning }},
	{prop("color-error"), func(c Config) string { return c.Colors.Error }},
	{prop("color-info"), func(c Config) string { return c.Colors.Info }},
	{prop("color-hover"), func(c Config) string { return c.Colors.Hover }},
	{prop("color-active"), func(c Config) string { return c.Colors.Active }},
	{prop("color-disabled"), func(c Config) string { return c.Colors.Disabled }},

	{prop("input-background"), func(c Config) string { return c.Colors.InputBackground }},
	{prop("input-border"), func(c Config) string { return c.Colors.InputBorder }},
	{prop("input-text"), func(c Config) string { return c.Colors.InputText }},
	{prop("input-placeholder"), func(c Config) string { return c.Colors.InputPlaceholder }},

	{prop("button-primary"), func(c Config) string { return c.Colors.ButtonPrimary }},
	{prop("button-primary-text"), func(c Config) string { return c.Colors.ButtonPrimaryText }},
	{prop("button-secondary"), func(c Config) string { return c.Colors.ButtonSecondary }},
	{prop("button-secondary-text"), func(c Config) string { return c.Colors.ButtonSecondaryText }},
	{prop("button-social"), func(c Config) string { return c.Colors.ButtonSocial }},
	{prop("button-social-text"), func(c Config) string { return c.Colors.ButtonSocialText }},

	{prop("spacing-xs"), func(c Config) string { return c.Components.Spacing.XS }},
	{prop("spacing-sm"), func(c Config) string { return c.Components.Spacing.SM }},
	{prop("spacing-md"), func(c Config) string { return c.Components.Spacing.MD }},
	{prop("spacing-lg"), func(c Config) string { return c.Components.Spacing.LG }},
	{prop("spacing-xl"), func(c Config) string { return c.Components.Spacing.XL }},

	{prop("radius-sm"), func(c Config) string { return c.Components.BorderRadius.SM }},
	{prop("radius-md"), func(c Config) string { return c.Components.BorderRadius.MD }},
	{prop("radius-lg"), func(c Config) string { return c.Components.BorderRadius.LG }},
	{prop("radius-xl"), func(c Config) string { return c.Components.BorderRadius.XL }},

	{prop("font-family"), func(c Config) string { return c.Components.Typography.FontFamily }},
	{prop("font-size-xs"), func(c Config) string { return c.Components.Typography.FontSize.XS }},
	{prop("font-size-sm"), func(c Config) string { return c.Components.Typography.FontSize.SM }},
	{prop("font-size-md"), func(c Config) string { return c.Components.Typography.FontSize.MD }},
	{prop("font-size-lg"), func(c Config) string { return c.Components.Typography.FontSize.LG }},
	{prop("font-size-xl"), func(c Config) string { return c.Components.Typography.FontSize.XL }},
	{prop("font-size-xxl"), func(c Config) string { return c.Components.Typography.FontSize.XXL }},
	{prop("font-weight-normal"), func(c Config) string { return c.Components.Typography.FontWeight.Normal }},
	{prop("font-weight-medium"), func(c Config) string { return c.Components.Typography.FontWeight.Medium }},
	{prop("font-weight-semibold"), func(c Config) string { return c.Components.Typography.FontWeight.Semibold }},
	{prop("font-weight-bold"), func(c Config) string { return c.Components.Typography.FontWeight.Bold }},
	{prop("line-height-tight"), func(c Config) string { return c.Components.Typography.LineHeight.Tight }},
	{prop("line-height-normal"), func(c Config) string { return c.Components.Typography.LineHeight.Normal }},
	{prop("line-height-relaxed"), func(c Config) string { return c.Components.Typography.LineHeight.Relaxed }},

	{prop("shadow-sm"), func(c Config) string { return c.Components.Shadows.SM }},
	{prop("shadow-md"), func(c Config) string { return c.Components.Shadows.MD }},
	{prop("shadow-lg"), func(c Config) string { return c.Components.Shadows.LG }},
	{prop("shadow-xl"), func(c Config) string { return c.Components.Shadows.XL }},

	{prop("transition-fast"), func(c Config) string { return c.Components.Transitions.Fast }},
	{prop("transition-normal"), func(c Config) string { return c.Components.Transitions.Normal }},
	{prop("transition-slow"), func(c Config) string { return c.Components.Transitions.Slow }},
}

// Keys lists every published custom property in declaration order.
func Keys() []string {
	keys := make([]string, len(leaves))
	for i, l := range leaves {
		keys[i] = l.key
	}
	return keys
}

// NewStyleSheet derives the full set of custom properties from c.
func NewStyleSheet(c Config) StyleSheet {
	decls := make([]Declaration, len(leaves))
	index := make(map[string]int, len(leaves))
	for i, l := range leaves {
		decls[i] = Declaration{Key: l.key, Value: l.get(c)}
		index[l.key] = i
	}
	return StyleSheet{decls: decls, index: index}
}

// Len returns the number of declarations.
func (s StyleSheet) Len() int {
	return len(s.decls)
}

// Get returns the value published under key.
func (s StyleSheet) Get(key string) (string, bool) {
	i, ok := s.index[key]
	if !ok {
		return "", false
	}
	return s.decls[i].Value, true
}

// Declarations returns a copy of the ordered declarations.
func (s StyleSheet) Declarations() []Declaration {
	out := make([]Declaration, len(s.decls))
	copy(out, s.decls)
	return out
}

// Map returns a fresh key to value map.
func (s StyleSheet) Map() map[string]string {
	out := make(map[string]string, len(s.decls))
	for _, d := range s.decls {
		out[d.Key] = d.Value
	}
	return out
}

// Equal reports whether both sheets publish identical declarations.
func (s StyleSheet) Equal(other StyleSheet) bool {
	if len(s.decls) != len(other.decls) {
		return false
	}
	for i := range s.decls {
		if s.decls[i] != other.decls[i] {
			return false
		}
	}
	return true
}

// CSS renders the sheet as a single rule. An empty selector targets :root.
func (s StyleSheet) CSS(selector string) string {
	if strings.TrimSpace(selector) == "" {
		selector = ":root"
	}
	var b strings.Builder
	b.WriteString(selector)
	b.WriteString(" {\n")
	for _, d := range s.decls {
		b.WriteString("  ")
		b.WriteString(d.Key)
		b.WriteString(": ")
		b.WriteString(d.Value)
		b.WriteString(";\n")
	}
	b.WriteString("}\n")
	return b.String()
}
