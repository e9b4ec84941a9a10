package mdpaint

import (
	"bytes"

	"github.com/yuin/goldmark"
	gmast "github.com/yuin/goldmark/ast"
	extast "github.com/yuin/goldmark/extension/ast"
	"github.com/yuin/goldmark/text"
	"github.com/yuin/goldmark/util"
)

// WalkMarkdown parses src with md and calls fn with the structural events
// of the document in order. Walking stops at the first error fn returns.
func WalkMarkdown(md goldmark.Markdown, src []byte, fn func(Event) error) error {
	if md == nil {
		md = goldmark.New()
	}
	root := md.Parser().Parse(text.NewReader(src))
	return gmast.Walk(root, func(n gmast.Node, entering bool) (gmast.WalkStatus, error) {
		return walkNode(n, entering, src, fn)
	})
}

// ParseEvents returns the event stream of src.
func ParseEvents(md goldmark.Markdown, src []byte) ([]Event, error) {
	var events []Event
	err := WalkMarkdown(md, src, func(ev Event) error {
		events = append(events, ev)
		return nil
	})
	return events, err
}

func walkNode(n gmast.Node, entering bool, src []byte, fn func(Event) error) (gmast.WalkStatus, error) {
	switch node := n.(type) {
	case *gmast.Document, *gmast.TextBlock:
		return gmast.WalkContinue, nil

	case *gmast.Text:
		if !entering {
			return gmast.WalkContinue, nil
		}
		value := node.Segment.Value(src)
		if !node.IsRaw() {
			value = unescapeText(value)
		}
		if err := fn(TextEvent(string(value))); err != nil {
			return gmast.WalkStop, err
		}
		switch {
		case node.HardLineBreak():
			return walkEmit(fn, HardBreakEvent())
		case node.SoftLineBreak():
			return walkEmit(fn, SoftBreakEvent())
		}
		return gmast.WalkContinue, nil

	case *gmast.String:
		if !entering {
			return gmast.WalkContinue, nil
		}
		value := node.Value
		if !node.IsRaw() && !node.IsCode() {
			value = unescapeText(value)
		}
		return walkEmit(fn, TextEvent(string(value)))

	case *gmast.CodeSpan:
		if !entering {
			return gmast.WalkContinue, nil
		}
		var b bytes.Buffer
		for c := node.FirstChild(); c != nil; c = c.NextSibling() {
			switch t := c.(type) {
			case *gmast.Text:
				b.Write(t.Segment.Value(src))
			case *gmast.String:
				b.Write(t.Value)
			}
		}
		if _, err := walkEmit(fn, CodeEvent(b.String())); err != nil {
			return gmast.WalkStop, err
		}
		return gmast.WalkSkipChildren, nil

	case *gmast.AutoLink:
		if !entering {
			return gmast.WalkContinue, nil
		}
		return walkEmit(fn, TextEvent(string(node.Label(src))))

	case *gmast.ThematicBreak:
		if !entering {
			return gmast.WalkContinue, nil
		}
		return walkEmit(fn, RuleEvent())

	case *gmast.HTMLBlock:
		if !entering {
			return gmast.WalkContinue, nil
		}
		var b bytes.Buffer
		writeLines(&b, node.Lines(), src)
		if node.HasClosure() {
			b.Write(node.ClosureLine.Value(src))
		}
		return walkEmit(fn, HTMLEvent(b.String()))

	case *gmast.RawHTML:
		if !entering {
			return gmast.WalkContinue, nil
		}
		var b bytes.Buffer
		writeLines(&b, node.Segments, src)
		if _, err := walkEmit(fn, HTMLEvent(b.String())); err != nil {
			return gmast.WalkStop, err
		}
		return gmast.WalkSkipChildren, nil

	case *gmast.FencedCodeBlock:
		var info string
		if node.Info != nil {
			info = string(node.Info.Segment.Value(src))
		}
		return walkCode(fn, FencedCode(info), node.Lines(), src, entering)

	case *gmast.CodeBlock:
		return walkCode(fn, IndentedCode(), node.Lines(), src, entering)
	}

	block := blockOf(n)
	if entering {
		return walkEmit(fn, StartEvent(block))
	}
	return walkEmit(fn, EndEvent(block))
}

// blockOf maps container nodes to blocks. Links, images and unknown nodes
// become Other so their children still render as text.
func blockOf(n gmast.Node) Block {
	switch node := n.(type) {
	case *gmast.Paragraph:
		return Paragraph()
	case *gmast.Heading:
		return Heading(node.Level)
	case *gmast.Blockquote:
		return BlockQuote()
	case *gmast.List:
		if node.IsOrdered() {
			return OrderedList(node.Start)
		}
		return BulletList()
	case *gmast.ListItem:
		return ListItem()
	case *gmast.Emphasis:
		if node.Level >= 2 {
			return Strong()
		}
		return Emphasis()
	case *extast.Strikethrough:
		return Strikethrough()
	}
	return Other()
}

func walkCode(fn func(Event) error, block Block, lines *text.Segments, src []byte, entering bool) (gmast.WalkStatus, error) {
	if !entering {
		return walkEmit(fn, EndEvent(block))
	}
	if err := fn(StartEvent(block)); err != nil {
		return gmast.WalkStop, err
	}
	var b bytes.Buffer
	writeLines(&b, lines, src)
	if b.Len() > 0 {
		if err := fn(TextEvent(b.String())); err != nil {
			return gmast.WalkStop, err
		}
	}
	return gmast.WalkContinue, nil
}

// unescapeText resolves backslash escapes and entity references of inline
// text. Code span content never goes through it.
func unescapeText(b []byte) []byte {
	b = util.UnescapePunctuations(b)
	b = util.ResolveNumericReferences(b)
	return util.ResolveEntityNames(b)
}

func writeLines(b *bytes.Buffer, lines *text.Segments, src []byte) {
	if lines == nil {
		return
	}
	for i := 0; i < lines.Len(); i++ {
		seg := lines.At(i)
		b.Write(seg.Value(src))
	}
}

func walkEmit(fn func(Event) error, ev Event) (gmast.WalkStatus, error) {
	if err := fn(ev); err != nil {
		return gmast.WalkStop, err
	}
	return gmast.WalkContinue, nil
}
