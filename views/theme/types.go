package theme

import "github.com/a-h/templ"

// Colors maps every named color role used by the auth screens to a CSS color token.
type Colors struct {
	Primary       string `yaml:"primary" validate:"required,csstoken"`
	Secondary     string `yaml:"secondary" validate:"required,csstoken"`
	Tertiary      string `yaml:"tertiary" validate:"required,csstoken"`
	Background    string `yaml:"background" validate:"required,csstoken"`
	Surface       string `yaml:"surface" validate:"required,csstoken"`
	Text          string `yaml:"text" validate:"required,csstoken"`
	TextSecondary string `yaml:"textSecondary" validate:"required,csstoken"`
	Border        string `yaml:"border" validate:"required,csstoken"`

	Success string `yaml:"success" validate:"required,csstoken"`
	Warning string `yaml:"warning" validate:"required,csstoken"`
	Error   string `yaml:"error" validate:"required,csstoken"`
	Info    string `yaml:"info" validate:"required,csstoken"`

	Hover    string `yaml:"hover" validate:"required,csstoken"`
	Active   string `yaml:"active" validate:"required,csstoken"`
	Disabled string `yaml:"disabled" validate:"required,csstoken"`

	InputBackground  string `yaml:"inputBackground" validate:"required,csstoken"`
	InputBorder      string `yaml:"inputBorder" validate:"required,csstoken"`
	InputText        string `yaml:"inputText" validate:"required,csstoken"`
	InputPlaceholder string `yaml:"inputPlaceholder" validate:"required,csstoken"`

	ButtonPrimary       string `yaml:"buttonPrimary" validate:"required,csstoken"`
	ButtonPrimaryText   string `yaml:"buttonPrimaryText" validate:"required,csstoken"`
	ButtonSecondary     string `yaml:"buttonSecondary" validate:"required,csstoken"`
	ButtonSecondaryText string `yaml:"buttonSecondaryText" validate:"required,csstoken"`
	ButtonSocial        string `yaml:"buttonSocial" validate:"required,csstoken"`
	ButtonSocialText    string `yaml:"buttonSocialText" validate:"required,csstoken"`
}

// Spacing is the spacing scale.
type Spacing struct {
	XS string `yaml:"xs" validate:"required,csstoken"`
	SM string `yaml:"sm" validate:"required,csstoken"`
	MD string `yaml:"md" validate:"required,csstoken"`
	LG string `yaml:"lg" validate:"required,csstoken"`
	XL string `yaml:"xl" validate:"required,csstoken"`
}

// BorderRadius is the corner radius scale.
type BorderRadius struct {
	SM string `yaml:"sm" validate:"required,csstoken"`
	MD string `yaml:"md" validate:"required,csstoken"`
	LG string `yaml:"lg" validate:"required,csstoken"`
	XL string `yaml:"xl" validate:"required,csstoken"`
}

type FontSize struct {
	XS  string `yaml:"xs" validate:"required,csstoken"`
	SM  string `yaml:"sm" validate:"required,csstoken"`
	MD  string `yaml:"md" validate:"required,csstoken"`
	LG  string `yaml:"lg" validate:"required,csstoken"`
	XL  string `yaml:"xl" validate:"required,csstoken"`
	XXL string `yaml:"xxl" validate:"required,csstoken"`
}

type FontWeight struct {
	Normal   string `yaml:"normal" validate:"required,csstoken"`
	Medium   string `yaml:"medium" validate:"required,csstoken"`
	Semibold string `yaml:"semibold" validate:"required,csstoken"`
	Bold     string `yaml:"bold" validate:"required,csstoken"`
}

type LineHeight struct {
	Tight   string `yaml:"tight" validate:"required,csstoken"`
	Normal  string `yaml:"normal" validate:"required,csstoken"`
	Relaxed string `yaml:"relaxed" validate:"required,csstoken"`
}

// Typography groups the font family with its size, weight and line-height scales.
type Typography struct {
	FontFamily string     `yaml:"fontFamily" validate:"required,csstoken"`
	FontSize   FontSize   `yaml:"fontSize"`
	FontWeight FontWeight `yaml:"fontWeight"`
	LineHeight LineHeight `yaml:"lineHeight"`
}

type Shadows struct {
	SM string `yaml:"sm" validate:"required,csstoken"`
	MD string `yaml:"md" validate:"required,csstoken"`
	LG string `yaml:"lg" validate:"required,csstoken"`
	XL string `yaml:"xl" validate:"required,csstoken"`
}

type Transitions struct {
	Fast   string `yaml:"fast" validate:"required,csstoken"`
	Normal string `yaml:"normal" validate:"required,csstoken"`
	Slow   string `yaml:"slow" validate:"required,csstoken"`
}

// Components holds the non-color design tokens.
type Components struct {
	Spacing      Spacing      `yaml:"spacing"`
	BorderRadius BorderRadius `yaml:"borderRadius"`
	Typography   Typography   `yaml:"typography"`
	Shadows      Shadows      `yaml:"shadows"`
	Transitions  Transitions  `yaml:"transitions"`
}

// Brand carries optional brand assets. Empty fields mean the asset is absent.
// Brand values only reach HTML attributes, where they are escaped, so they
// are not held to the style token rule.
type Brand struct {
	Logo          string `yaml:"logo"`
	LogoAlt       string `yaml:"logoAlt"`
	PrimaryLogo   string `yaml:"primaryLogo"`
	SecondaryLogo string `yaml:"secondaryLogo"`
}

// Alt returns the logo alt text, falling back to "Logo".
func (b Brand) Alt() string {
	if b.LogoAlt != "" {
		return b.LogoAlt
	}
	return "Logo"
}

// Customization holds the flags that decide which structural elements render.
type Customization struct {
	RoundedCorners bool `yaml:"roundedCorners"`
	Animations     bool `yaml:"animations"`

	ShowFormHeader  bool `yaml:"showFormHeader"`
	ShowSocialLogin bool `yaml:"showSocialLogin"`
	ShowBackArrow   bool `yaml:"showBackArrow"`

	ShowLogo        bool   `yaml:"showLogo"`
	BackgroundImage string `yaml:"backgroundImage" validate:"omitempty,csstoken"`

	// LeftPanelContent is host-owned markup rendered in the left pane of
	// the two panel layout when no explicit left content is given.
	LeftPanelContent templ.Component `yaml:"-" validate:"-"`
}

// Config is a complete theme. It is a plain value: copies never alias each
// other except for the host-owned LeftPanelContent component.
type Config struct {
	Colors        Colors        `yaml:"colors"`
	Components    Components    `yaml:"components"`
	Brand         Brand         `yaml:"brand"`
	Customization Customization `yaml:"customization"`
}
