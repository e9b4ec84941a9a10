package mdpaint

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

// fakeHighlighter knows a fixed set of grammars and returns every line as a
// single unstyled span.
type fakeHighlighter struct {
	grammars map[string]bool
	calls    []string
}

func newFakeHighlighter(grammars ...string) *fakeHighlighter {
	h := &fakeHighlighter{grammars: map[string]bool{PlainTextGrammar: true}}
	for _, g := range grammars {
		h.grammars[g] = true
	}
	return h
}

func (h *fakeHighlighter) Supports(grammar string) bool { return h.grammars[grammar] }

func (h *fakeHighlighter) Highlight(grammar, line string) ([]Span, error) {
	h.calls = append(h.calls, grammar)
	if !h.grammars[grammar] {
		return nil, &GrammarError{Grammar: grammar}
	}
	return []Span{{Text: line}}, nil
}

func intPtr(n int) *int { return &n }

// testStyles returns the default style set with a fake highlighter and
// short code and rule widths.
func testStyles(t *testing.T, h Highlighter) *StyleSet {
	t.Helper()
	if h == nil {
		h = newFakeHighlighter("Go", "Python")
	}
	s, err := NewStyleSet(StyleConfig{
		CodeBlock: CodeBlockConfig{Width: intPtr(10), Highlighter: h},
		Rule:      RuleConfig{Width: intPtr(10)},
	})
	require.NoError(t, err)
	return s
}

func renderPlain(t *testing.T, src string, opts ...RenderOption) string {
	t.Helper()
	out, err := RenderString(src, testStyles(t, nil), append([]RenderOption{WithColor(false)}, opts...)...)
	require.NoError(t, err)
	return out
}

// dispatchPlain feeds events to a fresh dispatcher and returns the
// concatenated fragment text.
func dispatchPlain(t *testing.T, styles *StyleSet, events []Event, opts ...RenderOption) (string, *EventDispatcher) {
	t.Helper()
	d, err := NewEventDispatcher(styles, append([]RenderOption{WithColor(false)}, opts...)...)
	require.NoError(t, err)
	require.NoError(t, d.DispatchAll(events))
	return fragmentText(d.Fragments()), d
}

func fragmentText(frags []Fragment) string {
	var b strings.Builder
	for _, f := range frags {
		b.WriteString(f.Text)
	}
	return b.String()
}
