package theme

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadOverrides(t *testing.T) {
	t.Parallel()

	doc := `
colors:
  primary: "#9333ea"
components:
  typography:
    fontWeight:
      bold: "800"
brand:
  logo: /assets/logo.svg
  logoAlt: ""
customization:
  showSocialLogin: false
`
	o, err := LoadOverrides(strings.NewReader(doc))
	require.NoError(t, err)

	merged := Merge(Default(), o)
	assert.Equal(t, "#9333ea", merged.Colors.Primary)
	assert.Equal(t, Default().Colors.Secondary, merged.Colors.Secondary)
	assert.Equal(t, "800", merged.Components.Typography.FontWeight.Bold)
	assert.Equal(t, "400", merged.Components.Typography.FontWeight.Normal)
	assert.Equal(t, "/assets/logo.svg", merged.Brand.Logo)
	assert.Equal(t, "", merged.Brand.LogoAlt)
	assert.False(t, merged.Customization.ShowSocialLogin)
	assert.True(t, merged.Customization.ShowLogo)
	assert.Nil(t, o.Components.Spacing)
}

func TestLoadOverridesEmptyDocument(t *testing.T) {
	t.Parallel()

	o, err := LoadOverrides(strings.NewReader(""))
	require.NoError(t, err)
	assert.Equal(t, Default(), Merge(Default(), o))
}

func TestLoadOverridesRejectsUnknownKeys(t *testing.T) {
	t.Parallel()

	_, err := LoadOverrides(strings.NewReader("colors:\n  primray: \"#fff\"\n"))
	require.Error(t, err)

	var perr *ParseError
	require.True(t, errors.As(err, &perr))
	assert.Equal(t, 2, perr.Line)
}

func TestLoadOverridesFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "brand.yaml")
	require.NoError(t, os.WriteFile(path, []byte("colors:\n  background: \"#000000\"\n"), 0o600))

	o, err := LoadOverridesFile(path)
	require.NoError(t, err)
	assert.Equal(t, "#000000", Merge(Default(), o).Colors.Background)

	_, err = LoadOverridesFile(filepath.Join(t.TempDir(), "missing.yaml"))
	var perr *ParseError
	require.True(t, errors.As(err, &perr))
}

func TestMarshalOverridesRoundTripsFullTheme(t *testing.T) {
	t.Parallel()

	data, err := MarshalOverrides(Overrides(Dark()))
	require.NoError(t, err)

	o, err := LoadOverrides(strings.NewReader(string(data)))
	require.NoError(t, err)
	assert.Equal(t, Dark(), Merge(Default(), o))
}
