package theme

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		overrides PartialConfig
		field     string
	}{
		{"complete", PartialConfig{}, ""},
		{"missing color", PartialConfig{Colors: &PartialColors{InputBorder: String("")}}, "config.colors.inputborder"},
		{"missing spacing", PartialConfig{Components: &PartialComponents{Spacing: &PartialSpacing{XL: String("")}}}, "config.components.spacing.xl"},
		{"unsafe token", PartialConfig{Colors: &PartialColors{Text: String("#fff; color: red")}}, "config.colors.text"},
		{"brand punctuation allowed", PartialConfig{Brand: &PartialBrand{
			LogoAlt: String("Acme; Inc."),
			Logo:    String("https://cdn.example.com/logo.png?v=1;w=200"),
		}}, ""},
		{"unsafe background image", PartialConfig{Customization: &PartialCustomization{BackgroundImage: String("x);}</style>")}}, "config.customization.backgroundimage"},
		{"empty brand allowed", PartialConfig{Brand: &PartialBrand{Logo: String("")}}, ""},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			err := Validate(Merge(Default(), tt.overrides))
			if tt.field == "" {
				require.NoError(t, err)
				return
			}
			var verr *ValidationError
			require.True(t, errors.As(err, &verr), "got %v", err)
			assert.Equal(t, tt.field, verr.Field)
			assert.Contains(t, verr.Error(), tt.field)
		})
	}
}

func TestValidateZeroConfig(t *testing.T) {
	t.Parallel()

	assert.Error(t, Validate(Config{}))
}
