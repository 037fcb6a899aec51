package theme

import "github.com/a-h/templ"

// PartialConfig is a theme fragment used as a merge override. A nil pointer
// marks the key as absent; a non-nil pointer replaces the base value, even
// when it points at an empty string or false.
type PartialConfig struct {
	Colors        *PartialColors        `yaml:"colors,omitempty"`
	Components    *PartialComponents    `yaml:"components,omitempty"`
	Brand         *PartialBrand         `yaml:"brand,omitempty"`
	Customization *PartialCustomization `yaml:"customization,omitempty"`
}

type PartialColors struct {
	Primary       *string `yaml:"primary,omitempty"`
	Secondary     *string `yaml:"secondary,omitempty"`
	Tertiary      *string `yaml:"tertiary,omitempty"`
	Background    *string `yaml:"background,omitempty"`
	Surface       *string `yaml:"surface,omitempty"`
	Text          *string `yaml:"text,omitempty"`
	TextSecondary *string `yaml:"textSecondary,omitempty"`
	Border        *string `yaml:"border,omitempty"`

	Success *string `yaml:"success,omitempty"`
	Warning *string `yaml:"warning,omitempty"`
	Error   *string `yaml:"error,omitempty"`
	Info    *string `yaml:"info,omitempty"`

	Hover    *string `yaml:"hover,omitempty"`
	Active   *string `yaml:"active,omitempty"`
	Disabled *string `yaml:"disabled,omitempty"`

	InputBackground  *string `yaml:"inputBackground,omitempty"`
	InputBorder      *string `yaml:"inputBorder,omitempty"`
	InputText        *string `yaml:"inputText,omitempty"`
	InputPlaceholder *string `yaml:"inputPlaceholder,omitempty"`

	ButtonPrimary       *string `yaml:"buttonPrimary,omitempty"`
	ButtonPrimaryText   *string `yaml:"buttonPrimaryText,omitempty"`
	ButtonSecondary     *string `yaml:"buttonSecondary,omitempty"`
	ButtonSecondaryText *string `yaml:"buttonSecondaryText,omitempty"`
	ButtonSocial        *string `yaml:"buttonSocial,omitempty"`
	ButtonSocialText    *string `yaml:"buttonSocialText,omitempty"`
}

type PartialComponents struct {
	Spacing      *PartialSpacing      `yaml:"spacing,omitempty"`
	BorderRadius *PartialBorderRadius `yaml:"borderRadius,omitempty"`
	Typography   *PartialTypography   `yaml:"typography,omitempty"`
	Shadows      *PartialShadows      `yaml:"shadows,omitempty"`
	Transitions  *PartialTransitions  `yaml:"transitions,omitempty"`
}

type PartialSpacing struct {
	XS *string `yaml:"xs,omitempty"`
	SM *string `yaml:"sm,omitempty"`
	MD *string `yaml:"md,omitempty"`
	LG *string `yaml:"lg,omitempty"`
	XL *string `yaml:"xl,omitempty"`
}

type PartialBorderRadius struct {
	SM *string `yaml:"sm,omitempty"`
	MD *string `yaml:"md,omitempty"`
	LG *string `yaml:"lg,omitempty"`
	XL *string `yaml:"xl,omitempty"`
}

type PartialTypography struct {
	FontFamily *string            `yaml:"fontFamily,omitempty"`
	FontSize   *PartialFontSize   `yaml:"fontSize,omitempty"`
	FontWeight *PartialFontWeight `yaml:"fontWeight,omitempty"`
	LineHeight *PartialLineHeight `yaml:"lineHeight,omitempty"`
}

type PartialFontSize struct {
	XS  *string `yaml:"xs,omitempty"`
	SM  *string `yaml:"sm,omitempty"`
	MD  *string `yaml:"md,omitempty"`
	LG  *string `yaml:"lg,omitempty"`
	XL  *string `yaml:"xl,omitempty"`
	XXL *string `yaml:"xxl,omitempty"`
}

type PartialFontWeight struct {
	Normal   *string `yaml:"normal,omitempty"`
	Medium   *string `yaml:"medium,omitempty"`
	Semibold *string `yaml:"semibold,omitempty"`
	Bold     *string `yaml:"bold,omitempty"`
}

type PartialLineHeight struct {
	Tight   *string `yaml:"tight,omitempty"`
	Normal  *string `yaml:"normal,omitempty"`
	Relaxed *string `yaml:"relaxed,omitempty"`
}

type PartialShadows struct {
	SM *string `yaml:"sm,omitempty"`
	MD *string `yaml:"md,omitempty"`
	LG *string `yaml:"lg,omitempty"`
	XL *string `yaml:"xl,omitempty"`
}

type PartialTransitions struct {
	Fast   *string `yaml:"fast,omitempty"`
	Normal *string `yaml:"normal,omitempty"`
	Slow   *string `yaml:"slow,omitempty"`
}

type PartialBrand struct {
	Logo          *string `yaml:"logo,omitempty"`
	LogoAlt       *string `yaml:"logoAlt,omitempty"`
	PrimaryLogo   *string `yaml:"primaryLogo,omitempty"`
	SecondaryLogo *string `yaml:"secondaryLogo,omitempty"`
}

type PartialCustomization struct {
	RoundedCorners  *bool   `yaml:"roundedCorners,omitempty"`
	Animations      *bool   `yaml:"animations,omitempty"`
	ShowFormHeader  *bool   `yaml:"showFormHeader,omitempty"`
	ShowSocialLogin *bool   `yaml:"showSocialLogin,omitempty"`
	ShowBackArrow   *bool   `yaml:"showBackArrow,omitempty"`
	ShowLogo        *bool   `yaml:"showLogo,omitempty"`
	BackgroundImage *string `yaml:"backgroundImage,omitempty"`

	LeftPanelContent templ.Component `yaml:"-"`
}

// String returns a pointer to s for use in overrides.
func String(s string) *string { return &s }

// Bool returns a pointer to b for use in overrides.
func Bool(b bool) *bool { return &b }

// Overrides lifts a complete theme into a fragment where every key is present.
// Merging it onto any base yields c.
func Overrides(c Config) PartialConfig {
	col := c.Colors
	cmp := c.Components
	typo := cmp.Typography
	return PartialConfig{
		Colors: &PartialColors{
			Primary:             String(col.Primary),
			Secondary:           String(col.Secondary),
			Tertiary:            String(col.Tertiary),
			Background:          String(col.Background),
			Surface:             String(col.Surface),
			Text:                String(col.Text),
			TextSecondary:       String(col.TextSecondary),
			Border:              String(col.Border),
			Success:             String(col.Success),
			Warning:             String(col.Warning),
			Error:               String(col.Error),
			Info:                String(col.Info),
			Hover:               String(col.Hover),
			Active:              String(col.Active),
			Disabled:            String(col.Disabled),
			InputBackground:     String(col.InputBackground),
			InputBorder:         String(col.InputBorder),
			InputText:           String(col.InputText),
			InputPlaceholder:    String(col.InputPlaceholder),
			ButtonPrimary:       String(col.ButtonPrimary),
			ButtonPrimaryText:   String(col.ButtonPrimaryText),
			ButtonSecondary:     String(col.ButtonSecondary),
			ButtonSecondaryText: String(col.ButtonSecondaryText),
			ButtonSocial:        String(col.ButtonSocial),
			ButtonSocialText:    String(col.ButtonSocialText),
		},
		Components: &PartialComponents{
			Spacing: &PartialSpacing{
				XS: String(cmp.Spacing.XS), SM: String(cmp.Spacing.SM), MD: String(cmp.Spacing.MD),
				LG: String(cmp.Spacing.LG), XL: String(cmp.Spacing.XL),
			},
			BorderRadius: &PartialBorderRadius{
				SM: String(cmp.BorderRadius.SM), MD: String(cmp.BorderRadius.MD),
				LG: String(cmp.BorderRadius.LG), XL: String(cmp.BorderRadius.XL),
			},
			Typography: &PartialTypography{
				FontFamily: String(typo.FontFamily),
				FontSize: &PartialFontSize{
					XS: String(typo.FontSize.XS), SM: String(typo.FontSize.SM), MD: String(typo.FontSize.MD),
					LG: String(typo.FontSize.LG), XL: String(typo.FontSize.XL), XXL: String(typo.FontSize.XXL),
				},
				FontWeight: &PartialFontWeight{
					Normal: String(typo.FontWeight.Normal), Medium: String(typo.FontWeight.Medium),
					Semibold: String(typo.FontWeight.Semibold), Bold: String(typo.FontWeight.Bold),
				},
				LineHeight: &PartialLineHeight{
					Tight: String(typo.LineHeight.Tight), Normal: String(typo.LineHeight.Normal),
					Relaxed: String(typo.LineHeight.Relaxed),
				},
			},
			Shadows: &PartialShadows{
				SM: String(cmp.Shadows.SM), MD: String(cmp.Shadows.MD),
				LG: String(cmp.Shadows.LG), XL: String(cmp.Shadows.XL),
			},
			Transitions: &PartialTransitions{
				Fast: String(cmp.Transitions.Fast), Normal: String(cmp.Transitions.Normal),
				Slow: String(cmp.Transitions.Slow),
			},
		},
		Brand: &PartialBrand{
			Logo:          String(c.Brand.Logo),
			LogoAlt:       String(c.Brand.LogoAlt),
			PrimaryLogo:   String(c.Brand.PrimaryLogo),
			SecondaryLogo: String(c.Brand.SecondaryLogo),
		},
		Customization: &PartialCustomization{
			RoundedCorners:   Bool(c.Customization.RoundedCorners),
			Animations:       Bool(c.Customization.Animations),
			ShowFormHeader:   Bool(c.Customization.ShowFormHeader),
			ShowSocialLogin:  Bool(c.Customization.ShowSocialLogin),
			ShowBackArrow:    Bool(c.Customization.ShowBackArrow),
			ShowLogo:         Bool(c.Customization.ShowLogo),
			BackgroundImage:  String(c.Customization.BackgroundImage),
			LeftPanelContent: c.Customization.LeftPanelContent,
		},
	}
}
