package mdpaint

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// Defaults applied to every rule a StyleConfig leaves unset.
const (
	DefaultCodeBlockWidth = 80
	DefaultCodeTheme      = "monokai"
	DefaultRuleWidth      = 80
	DefaultMarginUnit     = 2

	DefaultBulletGlyph  = "✧"
	DefaultOrderedGlyph = "."
	DefaultQuoteGlyph   = "┃"
	DefaultRuleGlyph    = "─"
)

// RuleConfig configures one style rule. Nil fields keep the kind's default.
type RuleConfig struct {
	Fg    *string  `yaml:"fg,omitempty"`
	Bg    *string  `yaml:"bg,omitempty"`
	Attrs []string `yaml:"attrs,omitempty"`
	Glyph *string  `yaml:"glyph,omitempty"`
	Width *int     `yaml:"width,omitempty"`
}

// CodeBlockConfig configures code block rendering.
type CodeBlockConfig struct {
	Width *int    `yaml:"width,omitempty"`
	Theme *string `yaml:"theme,omitempty"`
	// Highlighter replaces the chroma highlighter built from Theme.
	Highlighter Highlighter `yaml:"-"`
}

// StyleConfig is the optional-field description of a StyleSet. Anything
// left unset resolves to the documented default of its kind:
//
//	headings        yellow, bold (one entry shared by all levels)
//	paragraph       white
//	unordered_list  white, glyph "✧"
//	ordered_list    white, glyph "."
//	block_quote     white, glyph "┃"
//	code            blue background
//	code_block      width 80, chroma theme "monokai"
//	rule            dark grey, glyph "─", width 80
//	default         terminal defaults
//	margin          2 columns per indentation level
type StyleConfig struct {
	Headings      []RuleConfig    `yaml:"headings,omitempty"`
	Paragraph     RuleConfig      `yaml:"paragraph,omitempty"`
	UnorderedList RuleConfig      `yaml:"unordered_list,omitempty"`
	OrderedList   RuleConfig      `yaml:"ordered_list,omitempty"`
	BlockQuote    RuleConfig      `yaml:"block_quote,omitempty"`
	Code          RuleConfig      `yaml:"code,omitempty"`
	CodeBlock     CodeBlockConfig `yaml:"code_block,omitempty"`
	Rule          RuleConfig      `yaml:"rule,omitempty"`
	Default       RuleConfig      `yaml:"default,omitempty"`
	Margin        *int            `yaml:"margin,omitempty"`
}

func defaultHeadingRule() StyleRule {
	return StyleRule{Style: Style{Fg: Yellow, Attrs: AttrBold}}
}

// ParseStyleConfig decodes a YAML style configuration. Unknown keys are
// rejected. Empty input yields the zero configuration.
func ParseStyleConfig(data []byte) (StyleConfig, error) {
	var cfg StyleConfig
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil {
		if errors.Is(err, io.EOF) {
			return StyleConfig{}, nil
		}
		return StyleConfig{}, fmt.Errorf("parse style config: %w", err)
	}
	return cfg, nil
}

// LoadStyleConfig reads a YAML style configuration file.
func LoadStyleConfig(path string) (StyleConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return StyleConfig{}, fmt.Errorf("load style config: %w", err)
	}
	cfg, err := ParseStyleConfig(data)
	if err != nil {
		return StyleConfig{}, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Merge returns c with every field set in o applied on top.
func (c StyleConfig) Merge(o StyleConfig) StyleConfig {
	out := c
	if o.Headings != nil {
		out.Headings = make([]RuleConfig, len(o.Headings))
		for i, h := range o.Headings {
			if i < len(c.Headings) {
				out.Headings[i] = c.Headings[i].merge(h)
				continue
			}
			out.Headings[i] = h
		}
	}
	out.Paragraph = c.Paragraph.merge(o.Paragraph)
	out.UnorderedList = c.UnorderedList.merge(o.UnorderedList)
	out.OrderedList = c.OrderedList.merge(o.OrderedList)
	out.BlockQuote = c.BlockQuote.merge(o.BlockQuote)
	out.Code = c.Code.merge(o.Code)
	out.Rule = c.Rule.merge(o.Rule)
	out.Default = c.Default.merge(o.Default)
	if o.CodeBlock.Width != nil {
		out.CodeBlock.Width = o.CodeBlock.Width
	}
	if o.CodeBlock.Theme != nil {
		out.CodeBlock.Theme = o.CodeBlock.Theme
	}
	if o.CodeBlock.Highlighter != nil {
		out.CodeBlock.Highlighter = o.CodeBlock.Highlighter
	}
	if o.Margin != nil {
		out.Margin = o.Margin
	}
	return out
}

func (r RuleConfig) merge(o RuleConfig) RuleConfig {
	if o.Fg != nil {
		r.Fg = o.Fg
	}
	if o.Bg != nil {
		r.Bg = o.Bg
	}
	if o.Attrs != nil {
		r.Attrs = o.Attrs
	}
	if o.Glyph != nil {
		r.Glyph = o.Glyph
	}
	if o.Width != nil {
		r.Width = o.Width
	}
	return r
}

// resolve applies the set fields of r on top of def.
func (r RuleConfig) resolve(def StyleRule) (StyleRule, error) {
	out := def
	if r.Fg != nil {
		c, err := ParseColor(*r.Fg)
		if err != nil {
			return StyleRule{}, err
		}
		out.Style.Fg = c
	}
	if r.Bg != nil {
		c, err := ParseColor(*r.Bg)
		if err != nil {
			return StyleRule{}, err
		}
		out.Style.Bg = c
	}
	if r.Attrs != nil {
		a, err := ParseAttrs(r.Attrs)
		if err != nil {
			return StyleRule{}, err
		}
		out.Style.Attrs = a
	}
	if r.Glyph != nil {
		out.Glyph = *r.Glyph
	}
	if r.Width != nil {
		if *r.Width < 0 {
			return StyleRule{}, fmt.Errorf("%w: negative width %d", ErrInvalidStyle, *r.Width)
		}
		out.Width = *r.Width
	}
	return out, nil
}

// NewStyleSet resolves cfg against the default rules.
func NewStyleSet(cfg StyleConfig) (*StyleSet, error) {
	s := &StyleSet{margin: DefaultMarginUnit}
	var err error

	if len(cfg.Headings) == 0 {
		s.headings = []StyleRule{defaultHeadingRule()}
	} else {
		s.headings = make([]StyleRule, len(cfg.Headings))
		for i, h := range cfg.Headings {
			if s.headings[i], err = h.resolve(defaultHeadingRule()); err != nil {
				return nil, fmt.Errorf("heading %d: %w", i+1, err)
			}
		}
	}

	rules := []struct {
		name string
		dst  *StyleRule
		cfg  RuleConfig
		def  StyleRule
	}{
		{"paragraph", &s.paragraph, cfg.Paragraph, StyleRule{Style: Style{Fg: White}}},
		{"unordered_list", &s.unordered, cfg.UnorderedList, StyleRule{Style: Style{Fg: White}, Glyph: DefaultBulletGlyph}},
		{"ordered_list", &s.ordered, cfg.OrderedList, StyleRule{Style: Style{Fg: White}, Glyph: DefaultOrderedGlyph}},
		{"block_quote", &s.quote, cfg.BlockQuote, StyleRule{Style: Style{Fg: White}, Glyph: DefaultQuoteGlyph}},
		{"code", &s.code, cfg.Code, StyleRule{Style: Style{Bg: Blue}}},
		{"rule", &s.rule, cfg.Rule, StyleRule{Style: Style{Fg: DarkGrey}, Glyph: DefaultRuleGlyph, Width: DefaultRuleWidth}},
		{"default", &s.fallback, cfg.Default, StyleRule{}},
	}
	for _, r := range rules {
		if *r.dst, err = r.cfg.resolve(r.def); err != nil {
			return nil, fmt.Errorf("%s: %w", r.name, err)
		}
	}

	s.codeBlock.Width = DefaultCodeBlockWidth
	if w := cfg.CodeBlock.Width; w != nil {
		if *w < 0 {
			return nil, fmt.Errorf("code_block: %w: negative width %d", ErrInvalidStyle, *w)
		}
		s.codeBlock.Width = *w
	}
	switch {
	case cfg.CodeBlock.Highlighter != nil:
		s.codeBlock.Highlighter = cfg.CodeBlock.Highlighter
	case cfg.CodeBlock.Theme != nil:
		s.codeBlock.Highlighter = NewChromaHighlighter(*cfg.CodeBlock.Theme)
	default:
		s.codeBlock.Highlighter = NewChromaHighlighter(DefaultCodeTheme)
	}

	if m := cfg.Margin; m != nil {
		if *m < 0 {
			return nil, fmt.Errorf("margin: %w: negative margin %d", ErrInvalidStyle, *m)
		}
		s.margin = *m
	}
	return s, nil
}

// DefaultStyleSet returns the style set with every rule at its default.
func DefaultStyleSet() *StyleSet {
	s, err := NewStyleSet(StyleConfig{})
	if err != nil {
		panic(err)
	}
	return s
}
