package mdpaint

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestThemeByName(t *testing.T) {
	expected := []string{
		"default",
		"dracula",
		"nord",
		"solarized-dark",
		"github-light",
		"mono",
	}
	for _, name := range expected {
		_, ok := ThemeByName(name)
		assert.True(t, ok, "expected theme %q to be available", name)
	}
	assert.ElementsMatch(t, expected, AvailableThemes())
	assert.IsNonDecreasing(t, AvailableThemes())

	theme, ok := ThemeByName("  NORD ")
	require.True(t, ok)
	assert.Equal(t, "nord", theme.Name())

	theme, ok = ThemeByName("")
	require.True(t, ok)
	assert.Equal(t, "default", theme.Name())

	_, ok = ThemeByName("nope")
	assert.False(t, ok)
}

func TestBuiltinThemesResolve(t *testing.T) {
	for _, name := range AvailableThemes() {
		t.Run(name, func(t *testing.T) {
			theme, ok := ThemeByName(name)
			require.True(t, ok)
			s, err := StyleSetForTheme(theme)
			require.NoError(t, err)
			require.GreaterOrEqual(t, s.HeadingLevels(), 1)
			assert.NotNil(t, s.CodeBlock().Highlighter)
		})
	}
}

func TestDefaultThemeMatchesDefaults(t *testing.T) {
	s, err := StyleSetForTheme(DefaultTheme())
	require.NoError(t, err)
	d := DefaultStyleSet()
	assert.Equal(t, d.Heading(1).Style, s.Heading(1).Style)
	assert.Equal(t, d.Paragraph(), s.Paragraph())
	assert.Equal(t, d.UnorderedList(), s.UnorderedList())
	assert.Equal(t, d.BlockQuote(), s.BlockQuote())
	assert.Equal(t, d.Rule(), s.Rule())
}

func TestMonoThemeUsesAttributesOnly(t *testing.T) {
	theme, ok := ThemeByName("mono")
	require.True(t, ok)
	s, err := StyleSetForTheme(theme)
	require.NoError(t, err)
	assert.False(t, s.Heading(1).Style.Fg.IsSet())
	assert.Equal(t, AttrBold, s.Heading(1).Style.Attrs)
	assert.False(t, s.Paragraph().Style.Fg.IsSet())
	assert.Equal(t, AttrReverse, s.Code().Style.Attrs)
}

func TestNewTheme(t *testing.T) {
	theme := NewTheme("custom", StyleConfig{Margin: intPtr(0)})
	assert.Equal(t, "custom", theme.Name())
	s, err := StyleSetForTheme(theme)
	require.NoError(t, err)
	assert.Equal(t, 0, s.MarginUnit())
}
