package mdpaint

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"
)

// PlainTextGrammar names the grammar used for indented code blocks and for
// fenced blocks without an info string.
const PlainTextGrammar = "Plain Text"

// ErrUnknownGrammar reports a highlighting grammar the highlighter does not
// know.
var ErrUnknownGrammar = errors.New("unknown highlighting grammar")

// GrammarError carries the name of an unknown grammar.
type GrammarError struct {
	Grammar string
}

func (e *GrammarError) Error() string {
	return fmt.Sprintf("%v %q", ErrUnknownGrammar, e.Grammar)
}

func (e *GrammarError) Unwrap() error { return ErrUnknownGrammar }

// Span is a highlighted run of a code line.
type Span struct {
	Style Style
	Text  string
}

// Highlighter colors single lines of code for a named grammar.
type Highlighter interface {
	// Supports reports whether grammar can be highlighted.
	Supports(grammar string) bool
	// Highlight splits line, which carries no trailing newline, into styled
	// spans that concatenate back to line. Unknown grammars yield an error
	// wrapping ErrUnknownGrammar.
	Highlight(grammar, line string) ([]Span, error)
}

// ChromaHighlighter highlights code with chroma lexers and a chroma style.
type ChromaHighlighter struct {
	style *chroma.Style
	bg    Color

	mu      sync.Mutex
	lexers  map[string]chroma.Lexer
	entries map[chroma.TokenType]Style
}

// NewChromaHighlighter returns a highlighter for the named chroma style.
// Unknown style names fall back to chroma's default style.
func NewChromaHighlighter(theme string) *ChromaHighlighter {
	st := styles.Get(theme)
	h := &ChromaHighlighter{
		style:   st,
		lexers:  make(map[string]chroma.Lexer),
		entries: make(map[chroma.TokenType]Style),
	}
	if bg := st.Get(chroma.Background).Background; bg.IsSet() {
		h.bg = RGB(bg.Red(), bg.Green(), bg.Blue())
	}
	return h
}

// Theme returns the name of the chroma style in use.
func (h *ChromaHighlighter) Theme() string { return h.style.Name }

// Supports reports whether a lexer exists for grammar.
func (h *ChromaHighlighter) Supports(grammar string) bool {
	return h.lexer(grammar) != nil
}

// Highlight tokenises line and maps every token to a style.
func (h *ChromaHighlighter) Highlight(grammar, line string) ([]Span, error) {
	lexer := h.lexer(grammar)
	if lexer == nil {
		return nil, &GrammarError{Grammar: grammar}
	}
	it, err := lexer.Tokenise(nil, line+"\n")
	if err != nil {
		return nil, fmt.Errorf("highlight %s: %w", grammar, err)
	}
	tokens := it.Tokens()
	spans := make([]Span, 0, len(tokens))
	for _, tok := range tokens {
		if tok.Value == "" {
			continue
		}
		spans = append(spans, Span{Style: h.styleFor(tok.Type), Text: tok.Value})
	}
	return trimTrailingNewline(spans), nil
}

func (h *ChromaHighlighter) lexer(grammar string) chroma.Lexer {
	h.mu.Lock()
	defer h.mu.Unlock()
	if l, ok := h.lexers[grammar]; ok {
		return l
	}
	var l chroma.Lexer
	if grammar == PlainTextGrammar {
		l = lexers.Fallback
	} else {
		l = lexers.Get(grammar)
	}
	if l != nil {
		l = chroma.Coalesce(l)
	}
	h.lexers[grammar] = l
	return l
}

func (h *ChromaHighlighter) styleFor(tt chroma.TokenType) Style {
	h.mu.Lock()
	defer h.mu.Unlock()
	if st, ok := h.entries[tt]; ok {
		return st
	}
	entry := h.style.Get(tt)
	st := Style{Bg: h.bg}
	if entry.Colour.IsSet() {
		st.Fg = RGB(entry.Colour.Red(), entry.Colour.Green(), entry.Colour.Blue())
	}
	if entry.Background.IsSet() {
		st.Bg = RGB(entry.Background.Red(), entry.Background.Green(), entry.Background.Blue())
	}
	if entry.Bold == chroma.Yes {
		st.Attrs |= AttrBold
	}
	if entry.Italic == chroma.Yes {
		st.Attrs |= AttrItalic
	}
	if entry.Underline == chroma.Yes {
		st.Attrs |= AttrUnderline
	}
	h.entries[tt] = st
	return st
}

func trimTrailingNewline(spans []Span) []Span {
	for len(spans) > 0 {
		last := &spans[len(spans)-1]
		if !strings.HasSuffix(last.Text, "\n") {
			break
		}
		last.Text = strings.TrimSuffix(last.Text, "\n")
		if last.Text != "" {
			break
		}
		spans = spans[:len(spans)-1]
	}
	return spans
}
