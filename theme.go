package mdpaint

import (
	"sort"
	"strings"

	"pkt.systems/mdpaint/internal/palette"
)

// Theme is a named style configuration.
type Theme interface {
	Name() string
	Config() StyleConfig
}

type theme struct {
	name   string
	config StyleConfig
}

func (t theme) Name() string        { return t.name }
func (t theme) Config() StyleConfig { return t.config }

// NewTheme returns a Theme from a StyleConfig.
func NewTheme(name string, cfg StyleConfig) Theme {
	return theme{name: name, config: cfg}
}

// StyleSetForTheme resolves a theme into a StyleSet.
func StyleSetForTheme(t Theme) (*StyleSet, error) {
	return NewStyleSet(t.Config())
}

func str(s string) *string { return &s }

func colorRule(fg string, attrs ...string) RuleConfig {
	r := RuleConfig{Fg: str(fg)}
	if len(attrs) > 0 {
		r.Attrs = attrs
	}
	return r
}

func configFromPalette(p palette.Palette) StyleConfig {
	cfg := StyleConfig{
		Paragraph:     colorRule(p.Paragraph),
		UnorderedList: colorRule(p.List),
		OrderedList:   colorRule(p.List),
		BlockQuote:    colorRule(p.Quote),
		Code:          RuleConfig{Fg: str(p.CodeFg), Bg: str(p.CodeBg)},
		Rule:          colorRule(p.Rule),
		CodeBlock:     CodeBlockConfig{Theme: str(p.CodeTheme)},
	}
	for _, h := range p.Headings {
		cfg.Headings = append(cfg.Headings, colorRule(h, "bold"))
	}
	return cfg
}

func monoConfig() StyleConfig {
	cfg := configFromPalette(palette.PaletteMono)
	cfg.Code.Attrs = []string{"reverse"}
	cfg.BlockQuote.Attrs = []string{"italic"}
	cfg.Rule.Attrs = []string{"faint"}
	return cfg
}

var builtinThemes = map[string]Theme{
	"default":        theme{name: "default", config: configFromPalette(palette.PaletteDefault)},
	"dracula":        theme{name: "dracula", config: configFromPalette(palette.PaletteDracula)},
	"nord":           theme{name: "nord", config: configFromPalette(palette.PaletteNord)},
	"solarized-dark": theme{name: "solarized-dark", config: configFromPalette(palette.PaletteSolarizedDark)},
	"github-light":   theme{name: "github-light", config: configFromPalette(palette.PaletteGithubLight)},
	"mono":           theme{name: "mono", config: monoConfig()},
}

// AvailableThemes returns the names of built-in themes.
func AvailableThemes() []string {
	names := make([]string, 0, len(builtinThemes))
	for name := range builtinThemes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ThemeByName returns a built-in theme by name.
func ThemeByName(name string) (Theme, bool) {
	if name == "" {
		return builtinThemes["default"], true
	}
	normalized := strings.ToLower(strings.TrimSpace(name))
	theme, ok := builtinThemes[normalized]
	return theme, ok
}

// DefaultTheme returns the default built-in theme.
func DefaultTheme() Theme {
	return builtinThemes["default"]
}
