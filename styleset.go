package mdpaint

import (
	"strconv"
	"strings"

	"github.com/muesli/reflow/ansi"
	"github.com/muesli/reflow/indent"
	"github.com/muesli/reflow/padding"
)

// StyleRule is the resolved style of one structural kind.
type StyleRule struct {
	Style Style
	// Glyph is the bullet, marker suffix, quote bar or rule character.
	Glyph string
	// Width is the rule length in glyphs.
	Width int
}

// CodeBlockRule owns the highlighting resources of fenced and indented
// code blocks.
type CodeBlockRule struct {
	// Width is the column every code line is right-padded to.
	Width       int
	Highlighter Highlighter
}

// StyleSet resolves one style rule per structural kind.
//
// A StyleSet is immutable once built and may be shared by sequential
// renders.
type StyleSet struct {
	headings  []StyleRule
	paragraph StyleRule
	unordered StyleRule
	ordered   StyleRule
	quote     StyleRule
	code      StyleRule
	codeBlock CodeBlockRule
	rule      StyleRule
	fallback  StyleRule
	margin    int
}

// Heading returns the rule for a heading level. Levels past the end of the
// table use its last entry, levels below 1 use the first.
func (s *StyleSet) Heading(level int) StyleRule {
	idx := level - 1
	if idx >= len(s.headings) {
		idx = len(s.headings) - 1
	}
	if idx < 0 {
		idx = 0
	}
	return s.headings[idx]
}

// HeadingLevels returns the number of configured heading rules.
func (s *StyleSet) HeadingLevels() int { return len(s.headings) }

// Paragraph returns the paragraph rule.
func (s *StyleSet) Paragraph() StyleRule { return s.paragraph }

// UnorderedList returns the bullet list rule.
func (s *StyleSet) UnorderedList() StyleRule { return s.unordered }

// OrderedList returns the ordered list rule.
func (s *StyleSet) OrderedList() StyleRule { return s.ordered }

// BlockQuote returns the block quote rule.
func (s *StyleSet) BlockQuote() StyleRule { return s.quote }

// Code returns the inline code rule.
func (s *StyleSet) Code() StyleRule { return s.code }

// CodeBlock returns the code block rule.
func (s *StyleSet) CodeBlock() CodeBlockRule { return s.codeBlock }

// Rule returns the thematic rule style.
func (s *StyleSet) Rule() StyleRule { return s.rule }

// Default returns the rule for text without dedicated styling.
func (s *StyleSet) Default() StyleRule { return s.fallback }

// MarginUnit returns the number of columns per indentation level.
func (s *StyleSet) MarginUnit() int { return s.margin }

func (s *StyleSet) marginOf(indentation int) string {
	return strings.Repeat(" ", indentation*s.margin)
}

// ruleFor returns the rule styling text inside b.
func (s *StyleSet) ruleFor(b Block) StyleRule {
	switch b.Kind {
	case KindParagraph:
		return s.paragraph
	case KindHeading:
		return s.Heading(b.Level)
	case KindBlockQuote:
		return s.quote
	case KindList:
		if b.Ordered {
			return s.ordered
		}
		return s.unordered
	case KindCodeBlock:
		return s.code
	case KindListItem, KindEmphasis, KindStrong, KindStrikethrough, KindThematicRule, KindOther:
		return s.fallback
	}
	return s.fallback
}

// Resolve returns the fragments for a text run at the current position:
// the structural prefix when a new visual line starts, then the text in the
// rule of the enclosing kind layered with the active modifiers. It never
// mutates ctx.
func (s *StyleSet) Resolve(text string, ctx *RenderContext) []Fragment {
	b := ctx.textBlock()
	rule := s.ruleFor(b)
	frags := s.Prefix(ctx)
	return append(frags, StyledFragment(text, rule.Style.With(ctx.Modifiers())))
}

// ResolveCode returns the fragments for an inline code span. The span is
// styled by the code rule whatever the enclosing kind.
func (s *StyleSet) ResolveCode(text string, ctx *RenderContext) []Fragment {
	frags := s.Prefix(ctx)
	return append(frags, StyledFragment(text, s.code.Style.With(ctx.Modifiers())))
}

// Prefix returns the structural adornment preceding the first text of a
// visual line, or nothing when the line is already under way.
func (s *StyleSet) Prefix(ctx *RenderContext) []Fragment {
	if !ctx.StartOfLine() {
		return nil
	}
	b := ctx.textBlock()
	margin := s.marginOf(ctx.Indentation())
	switch b.Kind {
	case KindBlockQuote:
		return appendPlain(nil, margin, StyledFragment(s.quote.Glyph+" ", s.quote.Style))
	case KindList:
		rule := s.ruleFor(b)
		marker := s.marker(b, ctx.Counter())
		if !ctx.MarkerPending() {
			hang := strings.Repeat(" ", ansi.PrintableRuneWidth(marker)+1)
			return appendPlain(nil, margin+hang)
		}
		lead := margin
		if !ctx.AtColumnZero() {
			lead = "\n" + margin
		}
		return appendPlain(nil, lead, StyledFragment(marker+" ", rule.Style))
	case KindParagraph, KindHeading, KindCodeBlock, KindListItem, KindEmphasis, KindStrong, KindStrikethrough, KindThematicRule, KindOther:
		return appendPlain(nil, margin)
	}
	return appendPlain(nil, margin)
}

func (s *StyleSet) marker(b Block, counter int) string {
	if b.Ordered {
		return strconv.Itoa(counter) + s.ordered.Glyph
	}
	return s.unordered.Glyph
}

// RuleLine returns the fragments drawing a thematic rule.
func (s *StyleSet) RuleLine() []Fragment {
	line := "  " + strings.Repeat(s.rule.Glyph, s.rule.Width)
	return []Fragment{StyledFragment(line, s.rule.Style), PlainFragment("\n")}
}

// CodeLines renders the physical lines of a code block. Each line is
// right-padded to the code block width, highlighted with the current
// grammar and indented by the current margin. The colors are applied by the
// highlighter, so every line is returned as a plain fragment.
func (s *StyleSet) CodeLines(text string, ctx *RenderContext, p painter) ([]Fragment, error) {
	lines := splitLines(text)
	frags := make([]Fragment, 0, len(lines))
	width := uint(max(s.codeBlock.Width, 0))
	lead := uint(ctx.Indentation() * s.margin)
	for _, line := range lines {
		padded := padding.String(expandTabs(line, codeTabWidth), width)
		spans, err := s.codeBlock.Highlighter.Highlight(ctx.Grammar(), padded)
		if err != nil {
			return nil, err
		}
		var b strings.Builder
		for _, span := range spans {
			b.WriteString(p.paint(span.Text, span.Style))
		}
		out := b.String()
		if lead > 0 {
			out = indent.String(out, lead)
		}
		frags = append(frags, PlainFragment(out+"\n"))
	}
	return frags, nil
}

// codeTabWidth is the tab stop interval inside code blocks.
const codeTabWidth = 4

// expandTabs replaces tabs with spaces up to the next tab stop so padding
// measures the line as the terminal displays it.
func expandTabs(line string, tabWidth int) string {
	if !strings.Contains(line, "\t") {
		return line
	}
	var b strings.Builder
	col := 0
	for _, r := range line {
		if r == '\t' {
			n := tabWidth - col%tabWidth
			b.WriteString(strings.Repeat(" ", n))
			col += n
			continue
		}
		b.WriteRune(r)
		col += ansi.PrintableRuneWidth(string(r))
	}
	return b.String()
}

func splitLines(text string) []string {
	if text == "" {
		return nil
	}
	text = strings.TrimSuffix(text, "\n")
	lines := strings.Split(text, "\n")
	for i, l := range lines {
		lines[i] = strings.TrimSuffix(l, "\r")
	}
	return lines
}

func appendPlain(frags []Fragment, text string, rest ...Fragment) []Fragment {
	if text != "" {
		frags = append(frags, PlainFragment(text))
	}
	return append(frags, rest...)
}
