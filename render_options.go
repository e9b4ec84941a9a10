package mdpaint

import (
	"fmt"
	"strings"

	"github.com/yuin/goldmark"
	"go.uber.org/zap"
)

// RenderOption configures rendering behavior.
type RenderOption func(*renderConfig)

// SoftBreakMode selects what a soft line break renders as.
type SoftBreakMode uint8

const (
	// SoftBreakSpace joins soft-wrapped lines with a single space.
	SoftBreakSpace SoftBreakMode = iota
	// SoftBreakNewline keeps the source line breaks.
	SoftBreakNewline
)

// ParseSoftBreakMode parses "space" or "newline".
func ParseSoftBreakMode(s string) (SoftBreakMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "space":
		return SoftBreakSpace, nil
	case "newline", "nl":
		return SoftBreakNewline, nil
	default:
		return SoftBreakSpace, fmt.Errorf("soft break mode %q: expected space|newline", s)
	}
}

type renderConfig struct {
	logger        *zap.Logger
	softBreak     SoftBreakMode
	strictGrammar bool
	color         bool
	frontMatter   bool
	markdown      goldmark.Markdown
}

func newRenderConfig(opts []RenderOption) renderConfig {
	cfg := renderConfig{
		color:       true,
		frontMatter: true,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	if cfg.logger == nil {
		cfg.logger = zap.NewNop()
	}
	if cfg.markdown == nil {
		cfg.markdown = goldmark.New()
	}
	return cfg
}

// WithLogger sets the logger receiving diagnostics about tolerated input
// anomalies.
func WithLogger(l *zap.Logger) RenderOption {
	return func(cfg *renderConfig) {
		cfg.logger = l
	}
}

// WithSoftBreak selects how soft line breaks render.
func WithSoftBreak(mode SoftBreakMode) RenderOption {
	return func(cfg *renderConfig) {
		cfg.softBreak = mode
	}
}

// WithStrictGrammar makes an unknown code block grammar fail the render
// instead of falling back to plain text.
func WithStrictGrammar(enabled bool) RenderOption {
	return func(cfg *renderConfig) {
		cfg.strictGrammar = enabled
	}
}

// WithColor enables or disables escape sequences in the output.
func WithColor(enabled bool) RenderOption {
	return func(cfg *renderConfig) {
		cfg.color = enabled
	}
}

// WithFrontMatter controls whether front matter at the start of the input
// is stripped before parsing.
func WithFrontMatter(strip bool) RenderOption {
	return func(cfg *renderConfig) {
		cfg.frontMatter = strip
	}
}

// WithMarkdown replaces the goldmark instance used to parse the input.
func WithMarkdown(md goldmark.Markdown) RenderOption {
	return func(cfg *renderConfig) {
		cfg.markdown = md
	}
}
