package mdpaint

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHeadingLevelsClampToTable(t *testing.T) {
	s, err := NewStyleSet(StyleConfig{Headings: []RuleConfig{
		{Fg: str("red")},
		{Fg: str("green")},
	}})
	require.NoError(t, err)
	require.Equal(t, 2, s.HeadingLevels())

	assert.Equal(t, Red, s.Heading(1).Style.Fg)
	assert.Equal(t, Green, s.Heading(2).Style.Fg)
	assert.Equal(t, Green, s.Heading(6).Style.Fg)
	assert.Equal(t, Green, s.Heading(1000).Style.Fg)
	assert.Equal(t, Red, s.Heading(0).Style.Fg)
	assert.Equal(t, AttrBold, s.Heading(1).Style.Attrs, "unset attributes keep the heading default")
}

func TestDefaultStyleSet(t *testing.T) {
	s := DefaultStyleSet()
	assert.Equal(t, Yellow, s.Heading(3).Style.Fg)
	assert.Equal(t, White, s.Paragraph().Style.Fg)
	assert.Equal(t, DefaultBulletGlyph, s.UnorderedList().Glyph)
	assert.Equal(t, DefaultOrderedGlyph, s.OrderedList().Glyph)
	assert.Equal(t, DefaultQuoteGlyph, s.BlockQuote().Glyph)
	assert.Equal(t, Blue, s.Code().Style.Bg)
	assert.Equal(t, DarkGrey, s.Rule().Style.Fg)
	assert.Equal(t, DefaultRuleWidth, s.Rule().Width)
	assert.Equal(t, DefaultCodeBlockWidth, s.CodeBlock().Width)
	assert.True(t, s.Default().Style.IsZero())
	assert.Equal(t, DefaultMarginUnit, s.MarginUnit())

	h, ok := s.CodeBlock().Highlighter.(*ChromaHighlighter)
	require.True(t, ok)
	assert.Equal(t, DefaultCodeTheme, h.Theme())
}

func TestResolveDoesNotMutateContext(t *testing.T) {
	s := testStyles(t, nil)
	ctx := NewRenderContext()
	ctx.push(OrderedList(5)).counter = 5
	ctx.SetIndentation(1)
	ctx.Enter(ListItem())
	ctx.markerPending = true
	ctx.AddModifier(ModBold)
	before := *ctx
	depth := ctx.Depth()

	frags := s.Resolve("item", ctx)

	assert.Equal(t, before.startOfLine, ctx.StartOfLine())
	assert.Equal(t, before.markerPending, ctx.MarkerPending())
	assert.Equal(t, before.indentation, ctx.Indentation())
	assert.Equal(t, before.modifiers, ctx.Modifiers())
	assert.Equal(t, depth, ctx.Depth())
	assert.Equal(t, 5, ctx.Counter())
	assert.Equal(t, "  5. item", fragmentText(frags))
}

func TestResolveLayersModifiers(t *testing.T) {
	s := DefaultStyleSet()
	ctx := NewRenderContext()
	ctx.Enter(Paragraph())
	ctx.SetStartOfLine(false)
	ctx.AddModifier(ModBold)
	ctx.AddModifier(ModUnderline)

	frags := s.Resolve("x", ctx)
	require.Len(t, frags, 1)
	assert.True(t, frags[0].Styled)
	assert.Equal(t, White, frags[0].Style.Fg)
	assert.Equal(t, AttrBold|AttrUnderline, frags[0].Style.Attrs)
}

func TestResolveCodeIgnoresBlockRule(t *testing.T) {
	s := DefaultStyleSet()
	ctx := NewRenderContext()
	ctx.Enter(Heading(1))
	ctx.SetStartOfLine(false)

	frags := s.ResolveCode("x", ctx)
	require.Len(t, frags, 1)
	assert.Equal(t, s.Code().Style, frags[0].Style)
}

func TestPrefix(t *testing.T) {
	s := testStyles(t, nil)

	t.Run("mid line", func(t *testing.T) {
		ctx := NewRenderContext()
		ctx.Enter(BlockQuote())
		ctx.SetStartOfLine(false)
		assert.Empty(t, s.Prefix(ctx))
	})

	t.Run("quote", func(t *testing.T) {
		ctx := NewRenderContext()
		ctx.Enter(BlockQuote())
		ctx.Enter(Paragraph())
		assert.Equal(t, "┃ ", fragmentText(s.Prefix(ctx)))
	})

	t.Run("bullet after text", func(t *testing.T) {
		ctx := NewRenderContext()
		ctx.push(BulletList())
		ctx.SetIndentation(2)
		ctx.Enter(ListItem())
		ctx.markerPending = true
		ctx.noteEmitted("previous")
		assert.Equal(t, "\n    ✧ ", fragmentText(s.Prefix(ctx)))
	})

	t.Run("continuation", func(t *testing.T) {
		ctx := NewRenderContext()
		ctx.push(OrderedList(10)).counter = 10
		ctx.SetIndentation(1)
		ctx.Enter(ListItem())
		assert.Equal(t, "  "+"    ", fragmentText(s.Prefix(ctx)))
	})

	t.Run("paragraph margin", func(t *testing.T) {
		ctx := NewRenderContext()
		ctx.SetIndentation(2)
		ctx.Enter(Paragraph())
		assert.Equal(t, "    ", fragmentText(s.Prefix(ctx)))
	})
}

func TestRuleLine(t *testing.T) {
	s := testStyles(t, nil)
	frags := s.RuleLine()
	require.Len(t, frags, 2)
	assert.Equal(t, "  ──────────", frags[0].Text)
	assert.True(t, frags[0].Styled)
	assert.Equal(t, PlainFragment("\n"), frags[1])
}

func TestCodeLinesPadsAndIndents(t *testing.T) {
	h := newFakeHighlighter("Go")
	s := testStyles(t, h)
	ctx := NewRenderContext()
	ctx.SetIndentation(1)
	ctx.SetGrammar("Go")

	frags, err := s.CodeLines("a := 1\r\nb\n", ctx, painter{})
	require.NoError(t, err)
	assert.Equal(t, "  a := 1    \n  b         \n", fragmentText(frags))
	assert.Equal(t, []string{"Go", "Go"}, h.calls)
}

func TestCodeLinesLongLineIsNotTruncated(t *testing.T) {
	s := testStyles(t, nil)
	ctx := NewRenderContext()
	frags, err := s.CodeLines("0123456789abc", ctx, painter{})
	require.NoError(t, err)
	assert.Equal(t, "0123456789abc\n", fragmentText(frags))
}

func TestCodeLinesUnknownGrammar(t *testing.T) {
	s := testStyles(t, nil)
	ctx := NewRenderContext()
	ctx.SetGrammar("Cobol")
	_, err := s.CodeLines("x", ctx, painter{})
	require.ErrorIs(t, err, ErrUnknownGrammar)
}

func TestCodeLinesExpandsTabs(t *testing.T) {
	s := testStyles(t, nil)
	ctx := NewRenderContext()
	frags, err := s.CodeLines("\tx\ty\n", ctx, painter{})
	require.NoError(t, err)
	assert.Equal(t, "    x   y \n", fragmentText(frags))
}

func TestExpandTabs(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"", ""},
		{"abc", "abc"},
		{"\t", "    "},
		{"ab\tc", "ab  c"},
		{"abcd\te", "abcd    e"},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.want, expandTabs(tc.in, 4), "%q", tc.in)
	}
}
