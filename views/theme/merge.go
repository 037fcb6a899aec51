package theme

// Merge derives a complete theme from base by applying every key present in
// overrides. Branches recurse, leaves replace. Absent keys keep the base value.
// Merge never mutates its arguments and is safe for concurrent use.
func Merge(base Config, overrides PartialConfig) Config {
	out := base
	if overrides.Colors != nil {
		out.Colors = mergeColors(base.Colors, overrides.Colors)
	}
	if overrides.Components != nil {
		out.Components = mergeComponents(base.Components, overrides.Components)
	}
	if overrides.Brand != nil {
		out.Brand = mergeBrand(base.Brand, overrides.Brand)
	}
	if overrides.Customization != nil {
		out.Customization = mergeCustomization(base.Customization, overrides.Customization)
	}
	return out
}

func pick(dst *string, src *string) {
	if src != nil {
		*dst = *src
	}
}

func pickBool(dst *bool, src *bool) {
	if src != nil {
		*dst = *src
	}
}

func mergeColors(base Colors, o *PartialColors) Colors {
	pick(&base.Primary, o.Primary)
	pick(&base.Secondary, o.Secondary)
	pick(&base.Tertiary, o.Tertiary)
	pick(&base.Background, o.Background)
	pick(&base.Surface, o.Surface)
	pick(&base.Text, o.Text)
	pick(&base.TextSecondary, o.TextSecondary)
	pick(&base.Border, o.Border)
	pick(&base.Success, o.Success)
	pick(&base.Warning, o.Warning)
	pick(&base.Error, o.Error)
	pick(&base.Info, o.Info)
	pick(&base.Hover, o.Hover)
	pick(&base.Active, o.Active)
	pick(&base.Disabled, o.Disabled)
	pick(&base.InputBackground, o.InputBackground)
	pick(&base.InputBorder, o.InputBorder)
	pick(&base.InputText, o.InputText)
	pick(&base.InputPlaceholder, o.InputPlaceholder)
	pick(&base.ButtonPrimary, o.ButtonPrimary)
	pick(&base.ButtonPrimaryText, o.ButtonPrimaryText)
	pick(&base.ButtonSecondary, o.ButtonSecondary)
	pick(&base.ButtonSecondaryText, o.ButtonSecondaryText)
	pick(&base.ButtonSocial, o.ButtonSocial)
	pick(&base.ButtonSocialText, o.ButtonSocialText)
	return base
}

func mergeComponents(base Components, o *PartialComponents) Components {
	if o.Spacing != nil {
		base.Spacing = mergeSpacing(base.Spacing, o.Spacing)
	}
	if o.BorderRadius != nil {
		base.BorderRadius = mergeBorderRadius(base.BorderRadius, o.BorderRadius)
	}
	if o.Typography != nil {
		base.Typography = mergeTypography(base.Typography, o.Typography)
	}
	if o.Shadows != nil {
		base.Shadows = mergeShadows(base.Shadows, o.Shadows)
	}
	if o.Transitions != nil {
		base.Transitions = mergeTransitions(base.Transitions, o.Transitions)
	}
	return base
}

func mergeSpacing(base Spacing, o *PartialSpacing) Spacing {
	pick(&base.XS, o.XS)
	pick(&base.SM, o.SM)
	pick(&base.MD, o.MD)
	pick(&base.LG, o.LG)
	pick(&base.XL, o.XL)
	return base
}

func mergeBorderRadius(base BorderRadius, o *PartialBorderRadius) BorderRadius {
	pick(&base.SM, o.SM)
	pick(&base.MD, o.MD)
	pick(&base.LG, o.LG)
	pick(&base.XL, o.XL)
	return base
}

func mergeTypography(base Typography, o *PartialTypography) Typography {
	pick(&base.FontFamily, o.FontFamily)
	if o.FontSize != nil {
		base.FontSize = mergeFontSize(base.FontSize, o.FontSize)
	}
	if o.FontWeight != nil {
		base.FontWeight = mergeFontWeight(base.FontWeight, o.FontWeight)
	}
	if o.LineHeight != nil {
		base.LineHeight = mergeLineHeight(base.LineHeight, o.LineHeight)
	}
	return base
}

func mergeFontSize(base FontSize, o *PartialFontSize) FontSize {
	pick(&base.XS, o.XS)
	pick(&base.SM, o.SM)
	pick(&base.MD, o.MD)
	pick(&base.LG, o.LG)
	pick(&base.XL, o.XL)
	pick(&base.XXL, o.XXL)
	return base
}

func mergeFontWeight(base FontWeight, o *PartialFontWeight) FontWeight {
	pick(&base.Normal, o.Normal)
	pick(&base.Medium, o.Medium)
	pick(&base.Semibold, o.Semibold)
	pick(&base.Bold, o.Bold)
	return base
}

func mergeLineHeight(base LineHeight, o *PartialLineHeight) LineHeight {
	pick(&base.Tight, o.Tight)
	pick(&base.Normal, o.Normal)
	pick(&base.Relaxed, o.Relaxed)
	return base
}

func mergeShadows(base Shadows, o *PartialShadows) Shadows {
	pick(&base.SM, o.SM)
	pick(&base.MD, o.MD)
	pick(&base.LG, o.LG)
	pick(&base.XL, o.XL)
	return base
}

func mergeTransitions(base Transitions, o *PartialTransitions) Transitions {
	pick(&base.Fast, o.Fast)
	pick(&base.Normal, o.Normal)
	pick(&base.Slow, o.Slow)
	return base
}

func mergeBrand(base Brand, o *PartialBrand) Brand {
	pick(&base.Logo, o.Logo)
	pick(&base.LogoAlt, o.LogoAlt)
	pick(&base.PrimaryLogo, o.PrimaryLogo)
	pick(&base.SecondaryLogo, o.SecondaryLogo)
	return base
}

func mergeCustomization(base Customization, o *PartialCustomization) Customization {
	pickBool(&base.RoundedCorners, o.RoundedCorners)
	pickBool(&base.Animations, o.Animations)
	pickBool(&base.ShowFormHeader, o.ShowFormHeader)
	pickBool(&base.ShowSocialLogin, o.ShowSocialLogin)
	pickBool(&base.ShowBackArrow, o.ShowBackArrow)
	pickBool(&base.ShowLogo, o.ShowLogo)
	pick(&base.BackgroundImage, o.BackgroundImage)
	if o.LeftPanelContent != nil {
		base.LeftPanelContent = o.LeftPanelContent
	}
	return base
}
