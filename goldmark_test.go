package mdpaint

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
)

func TestParseEventsParagraph(t *testing.T) {
	events, err := ParseEvents(nil, []byte("# Title\n\nHello *world* and **more**.\n"))
	require.NoError(t, err)
	want := []Event{
		StartEvent(Heading(1)),
		TextEvent("Title"),
		EndEvent(Heading(1)),
		StartEvent(Paragraph()),
		TextEvent("Hello "),
		StartEvent(Emphasis()),
		TextEvent("world"),
		EndEvent(Emphasis()),
		TextEvent(" and "),
		StartEvent(Strong()),
		TextEvent("more"),
		EndEvent(Strong()),
		TextEvent("."),
		EndEvent(Paragraph()),
	}
	assert.Equal(t, want, events)
}

func TestParseEventsLists(t *testing.T) {
	events, err := ParseEvents(goldmark.New(), []byte("3. a\n4. b\n"))
	require.NoError(t, err)
	want := []Event{
		StartEvent(OrderedList(3)),
		StartEvent(ListItem()),
		TextEvent("a"),
		EndEvent(ListItem()),
		StartEvent(ListItem()),
		TextEvent("b"),
		EndEvent(ListItem()),
		EndEvent(OrderedList(3)),
	}
	assert.Equal(t, want, events)
}

func TestParseEventsBreaks(t *testing.T) {
	events, err := ParseEvents(nil, []byte("a\nb  \nc\n"))
	require.NoError(t, err)
	want := []Event{
		StartEvent(Paragraph()),
		TextEvent("a"),
		SoftBreakEvent(),
		TextEvent("b"),
		HardBreakEvent(),
		TextEvent("c"),
		EndEvent(Paragraph()),
	}
	assert.Equal(t, want, events)
}

func TestParseEventsCode(t *testing.T) {
	events, err := ParseEvents(nil, []byte("Use `go test`.\n\n```go run\nx := 1\ny := 2\n```\n\n    indented\n"))
	require.NoError(t, err)
	want := []Event{
		StartEvent(Paragraph()),
		TextEvent("Use "),
		CodeEvent("go test"),
		TextEvent("."),
		EndEvent(Paragraph()),
		StartEvent(FencedCode("go run")),
		TextEvent("x := 1\ny := 2\n"),
		EndEvent(FencedCode("go run")),
		StartEvent(IndentedCode()),
		TextEvent("indented\n"),
		EndEvent(IndentedCode()),
	}
	assert.Equal(t, want, events)
}

func TestParseEventsQuoteRuleAndHTML(t *testing.T) {
	events, err := ParseEvents(nil, []byte("> q\n\n---\n\n<div>\nraw\n</div>\n"))
	require.NoError(t, err)
	require.GreaterOrEqual(t, len(events), 7)
	assert.Equal(t, []Event{
		StartEvent(BlockQuote()),
		StartEvent(Paragraph()),
		TextEvent("q"),
		EndEvent(Paragraph()),
		EndEvent(BlockQuote()),
		RuleEvent(),
	}, events[:6])
	assert.Equal(t, EventHTML, events[6].Kind)
	assert.Contains(t, events[6].Text, "<div>")
}

func TestParseEventsLinksRenderAsText(t *testing.T) {
	events, err := ParseEvents(nil, []byte("[site](https://example.com) <https://go.dev>\n"))
	require.NoError(t, err)
	want := []Event{
		StartEvent(Paragraph()),
		StartEvent(Other()),
		TextEvent("site"),
		EndEvent(Other()),
		TextEvent(" "),
		TextEvent("https://go.dev"),
		EndEvent(Paragraph()),
	}
	assert.Equal(t, want, events)
}

func TestWalkMarkdownStopsOnError(t *testing.T) {
	boom := errors.New("boom")
	var seen int
	err := WalkMarkdown(nil, []byte("# a\n\nb\n"), func(Event) error {
		seen++
		if seen == 2 {
			return boom
		}
		return nil
	})
	require.ErrorIs(t, err, boom)
	assert.Equal(t, 2, seen)
}

func TestParseEventsUnescapesText(t *testing.T) {
	events, err := ParseEvents(nil, []byte("\\*a\\* &amp; `\\*`"))
	require.NoError(t, err)
	var text, code strings.Builder
	for _, ev := range events {
		switch ev.Kind {
		case EventText:
			text.WriteString(ev.Text)
		case EventCode:
			code.WriteString(ev.Text)
		}
	}
	assert.Equal(t, "*a* & ", text.String())
	assert.Equal(t, "\\*", code.String())
}

func TestParseEventsStrikethrough(t *testing.T) {
	md := goldmark.New(goldmark.WithExtensions(extension.Strikethrough))
	events, err := ParseEvents(md, []byte("~~x~~"))
	require.NoError(t, err)
	assert.Equal(t, []Event{
		StartEvent(Paragraph()),
		StartEvent(Strikethrough()),
		TextEvent("x"),
		EndEvent(Strikethrough()),
		EndEvent(Paragraph()),
	}, events)
}
