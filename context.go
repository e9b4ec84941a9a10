package mdpaint

import "math"

// Modifier is an inline style flag active over a nested span of text.
type Modifier uint8

const (
	ModBold Modifier = 1 << iota
	ModUnderline
	ModCrossedOut
)

// Has reports whether all flags of m are set.
func (s Modifier) Has(m Modifier) bool { return s&m == m }

type frame struct {
	block Block
	// counter is the number of the next item of an ordered list.
	counter int
	// savedIndent is restored when a list or code block closes.
	savedIndent int
}

// RenderContext owns the mutable traversal state of a single render.
//
// One context flows through a render and is discarded when it ends. It is
// not safe for concurrent use.
type RenderContext struct {
	stack         []frame
	indentation   int
	grammar       string
	modifiers     Modifier
	startOfLine   bool
	atColumnZero  bool
	markerPending bool
}

// NewRenderContext returns the context for a fresh document.
func NewRenderContext() *RenderContext {
	return &RenderContext{
		stack:        make([]frame, 0, 16),
		grammar:      PlainTextGrammar,
		startOfLine:  true,
		atColumnZero: true,
	}
}

// Kind returns the innermost open structural kind, or KindOther at document
// level.
func (c *RenderContext) Kind() Kind {
	return c.Block().Kind
}

// Block returns the innermost open block.
func (c *RenderContext) Block() Block {
	if len(c.stack) == 0 {
		return Other()
	}
	return c.stack[len(c.stack)-1].block
}

// Depth returns the number of open blocks.
func (c *RenderContext) Depth() int { return len(c.stack) }

// Enter opens a block and makes it the current kind.
func (c *RenderContext) Enter(b Block) {
	c.push(b)
}

// Leave closes the innermost open block of the given kind together with
// anything still open inside it. It reports false when no such block is open.
func (c *RenderContext) Leave(k Kind) (Block, bool) {
	f, ok := c.pop(k)
	return f.block, ok
}

func (c *RenderContext) push(b Block) *frame {
	c.stack = append(c.stack, frame{block: b, savedIndent: c.indentation})
	return &c.stack[len(c.stack)-1]
}

func (c *RenderContext) pop(k Kind) (frame, bool) {
	for i := len(c.stack) - 1; i >= 0; i-- {
		if c.stack[i].block.Kind == k {
			f := c.stack[i]
			c.stack = c.stack[:i]
			return f, true
		}
	}
	return frame{}, false
}

// Indentation returns the nesting depth used as the left margin multiplier.
func (c *RenderContext) Indentation() int { return c.indentation }

// SetIndentation sets the indentation. Negative values are clamped to zero
// and reported by the return value.
func (c *RenderContext) SetIndentation(n int) (clamped bool) {
	if n < 0 {
		c.indentation = 0
		return true
	}
	c.indentation = n
	return false
}

// Grammar returns the highlighting grammar of the current code block.
func (c *RenderContext) Grammar() string { return c.grammar }

// SetGrammar sets the highlighting grammar of the current code block.
func (c *RenderContext) SetGrammar(name string) { c.grammar = name }

// Modifiers returns the set of active inline modifiers.
func (c *RenderContext) Modifiers() Modifier { return c.modifiers }

// AddModifier activates m. Adding an active modifier changes nothing.
func (c *RenderContext) AddModifier(m Modifier) { c.modifiers |= m }

// RemoveModifier deactivates m and reports whether it was active.
func (c *RenderContext) RemoveModifier(m Modifier) bool {
	active := c.modifiers.Has(m)
	c.modifiers &^= m
	return active
}

// StartOfLine reports whether the next emission begins a new visual line.
func (c *RenderContext) StartOfLine() bool { return c.startOfLine }

// SetStartOfLine sets the start-of-line flag.
func (c *RenderContext) SetStartOfLine(v bool) { c.startOfLine = v }

// AtColumnZero reports whether the output emitted so far ends a physical
// line.
func (c *RenderContext) AtColumnZero() bool { return c.atColumnZero }

// MarkerPending reports whether a list item opened without its marker
// having been emitted yet.
func (c *RenderContext) MarkerPending() bool { return c.markerPending }

// list returns the innermost open list.
func (c *RenderContext) list() *frame {
	for i := len(c.stack) - 1; i >= 0; i-- {
		if c.stack[i].block.Kind == KindList {
			return &c.stack[i]
		}
	}
	return nil
}

// Counter returns the number of the next item of the innermost ordered
// list, or 0 outside one.
func (c *RenderContext) Counter() int {
	if l := c.list(); l != nil && l.block.Ordered {
		return l.counter
	}
	return 0
}

// advanceCounter moves the innermost ordered list to its next item. It
// reports false when the counter is saturated.
func (c *RenderContext) advanceCounter() bool {
	l := c.list()
	if l == nil || !l.block.Ordered {
		return true
	}
	if l.counter == math.MaxInt {
		return false
	}
	l.counter++
	return true
}

// textBlock returns the block whose style rule applies to text at the
// current position. Paragraphs and list items defer to an enclosing block
// quote or list.
func (c *RenderContext) textBlock() Block {
	n := len(c.stack)
	if n == 0 {
		return Other()
	}
	top := c.stack[n-1].block
	if top.Kind != KindParagraph && top.Kind != KindListItem {
		return top
	}
	for i := n - 2; i >= 0; i-- {
		b := c.stack[i].block
		if b.Kind == KindBlockQuote || b.Kind == KindList {
			return b
		}
		if b.Kind != KindListItem {
			break
		}
	}
	if top.Kind == KindListItem {
		return Other()
	}
	return top
}

func (c *RenderContext) noteEmitted(text string) {
	if text == "" {
		return
	}
	c.atColumnZero = text[len(text)-1] == '\n'
}
