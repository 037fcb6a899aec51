package theme

import (
	"fmt"
	"sort"
	"strings"
)

// Option represents a selectable preset exposed to the UI.
type Option struct {
	Value       string
	Label       string
	Description string
}

const (
	// PresetLight is the baseline palette and the fallback preset.
	PresetLight = "light"
	// PresetDark is derived from the light preset by a colors-only override.
	PresetDark = "dark"

	presetDefaultAlias = "default"
)

var defaultTheme = Config{
	Colors: Colors{
		Primary:       "#3B82F6",
		Secondary:     "#6B7280",
		Tertiary:      "#9CA3AF",
		Background:    "#FFFFFF",
		Surface:       "#F8FAFC",
		Text:          "#1F2937",
		TextSecondary: "#6B7280",
		Border:        "#E5E7EB",

		Success: "#10B981",
		Warning: "#F59E0B",
		Error:   "#EF4444",
		Info:    "#3B82F6",

		Hover:    "#F3F4F6",
		Active:   "#E5E7EB",
		Disabled: "#D1D5DB",

		InputBackground:  "#FFFFFF",
		InputBorder:      "#D1D5DB",
		InputText:        "#1F2937",
		InputPlaceholder: "#9CA3AF",

		ButtonPrimary:       "#3B82F6",
		ButtonPrimaryText:   "#FFFFFF",
		ButtonSecondary:     "#F3F4F6",
		ButtonSecondaryText: "#1F2937",
		ButtonSocial:        "#4B5563",
		ButtonSocialText:    "#FFFFFF",
	},
	Components: Components{
		Spacing: Spacing{XS: "4px", SM: "8px", MD: "16px", LG: "24px", XL: "32px"},
		BorderRadius: BorderRadius{
			SM: "4px", MD: "8px", LG: "12px", XL: "16px",
		},
		Typography: Typography{
			FontFamily: "Inter, system-ui, -apple-system, sans-serif",
			FontSize:   FontSize{XS: "12px", SM: "14px", MD: "16px", LG: "18px", XL: "20px", XXL: "24px"},
			FontWeight: FontWeight{Normal: "400", Medium: "500", Semibold: "600", Bold: "700"},
			LineHeight: LineHeight{Tight: "1.25", Normal: "1.5", Relaxed: "1.75"},
		},
		Shadows: Shadows{
			SM: "0 1px 2px 0 rgba(0, 0, 0, 0.05)",
			MD: "0 4px 6px -1px rgba(0, 0, 0, 0.1), 0 2px 4px -1px rgba(0, 0, 0, 0.06)",
			LG: "0 10px 15px -3px rgba(0, 0, 0, 0.1), 0 4px 6px -2px rgba(0, 0, 0, 0.05)",
			XL: "0 20px 25px -5px rgba(0, 0, 0, 0.1), 0 10px 10px -5px rgba(0, 0, 0, 0.04)",
		},
		Transitions: Transitions{Fast: "0.1s ease", Normal: "0.2s ease", Slow: "0.3s ease"},
	},
	Brand: Brand{LogoAlt: "Logo"},
	Customization: Customization{
		RoundedCorners:  true,
		Animations:      true,
		ShowFormHeader:  true,
		ShowSocialLogin: true,
		ShowBackArrow:   true,
		ShowLogo:        true,
	},
}

var darkOverrides = PartialConfig{
	Colors: &PartialColors{
		Primary:       String("#60A5FA"),
		Secondary:     String("#9CA3AF"),
		Background:    String("#111827"),
		Surface:       String("#1F2937"),
		Text:          String("#F9FAFB"),
		TextSecondary: String("#D1D5DB"),
		Border:        String("#374151"),

		Hover:    String("#374151"),
		Active:   String("#4B5563"),
		Disabled: String("#6B7280"),

		InputBackground:  String("#1F2937"),
		InputBorder:      String("#4B5563"),
		InputText:        String("#F9FAFB"),
		InputPlaceholder: String("#9CA3AF"),

		ButtonPrimary:       String("#60A5FA"),
		ButtonPrimaryText:   String("#111827"),
		ButtonSecondary:     String("#374151"),
		ButtonSecondaryText: String("#F9FAFB"),
		ButtonSocial:        String("#4B5563"),
		ButtonSocialText:    String("#F9FAFB"),
	},
}

var darkTheme = Merge(defaultTheme, darkOverrides)

var catalogue = map[string]Config{
	PresetLight: defaultTheme,
	PresetDark:  darkTheme,
}

var options = []Option{
	{Value: PresetDark, Label: "Dark", Description: "Slate surfaces with sky blue accents."},
	{Value: PresetLight, Label: "Light", Description: "Neutral white canvas with blue accents."},
}

// Default returns the baseline preset.
func Default() Config {
	return defaultTheme
}

// Dark returns the dark preset.
func Dark() Config {
	return darkTheme
}

// CreateCustom merges overrides onto the default preset.
func CreateCustom(overrides PartialConfig) Config {
	return Merge(defaultTheme, overrides)
}

func normalize(name string) string {
	key := strings.ToLower(strings.TrimSpace(name))
	if key == presetDefaultAlias {
		return PresetLight
	}
	return key
}

// Lookup returns the preset registered under name.
func Lookup(name string) (Config, error) {
	if value, ok := catalogue[normalize(name)]; ok {
		return value, nil
	}
	return Config{}, fmt.Errorf("%w: %q", ErrUnknownPreset, name)
}

// Resolve returns the preset registered under name, falling back to the light preset.
func Resolve(name string) Config {
	if value, ok := catalogue[normalize(name)]; ok {
		return value
	}
	return defaultTheme
}

// NormalizePreset returns the canonical preset name, or PresetLight when name is unknown.
func NormalizePreset(name string) string {
	key := normalize(name)
	if _, ok := catalogue[key]; ok {
		return key
	}
	return PresetLight
}

// ValidPreset reports whether name refers to a registered preset.
func ValidPreset(name string) bool {
	_, ok := catalogue[normalize(name)]
	return ok
}

// Options exposes the presets sorted by label for rendering in a form control.
func Options() []Option {
	out := make([]Option, len(options))
	copy(out, options)
	sort.Slice(out, func(i, j int) bool {
		return out[i].Label < out[j].Label
	})
	return out
}
