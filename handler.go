package mdpaint

import (
	"errors"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// capitalizeGrammar derives a grammar name from a fence info string: its
// first word with the first letter upper-cased, or the plain text grammar.
func capitalizeGrammar(info string) string {
	fields := strings.Fields(info)
	if len(fields) == 0 {
		return PlainTextGrammar
	}
	return cases.Title(language.Und, cases.NoLower).String(fields[0])
}

// blockHandler implements the start, end and text behavior of every
// structural kind. Start only updates the context; adornments are emitted
// lazily by the first text of a visual line.
type blockHandler struct {
	styles    *StyleSet
	paint     painter
	log       *zap.Logger
	strict    bool
	breakMode SoftBreakMode
	out       *[]Fragment
}

func (h *blockHandler) start(ctx *RenderContext, b Block) error {
	switch b.Kind {
	case KindParagraph:
		ctx.Enter(b)
		// A line already under way, such as one opened by a list marker,
		// continues.
		ctx.SetStartOfLine(ctx.StartOfLine() || ctx.AtColumnZero())
	case KindHeading:
		marked := h.openMarker(ctx)
		ctx.Enter(b)
		ctx.SetStartOfLine(!marked)
	case KindBlockQuote:
		marked := h.openMarker(ctx)
		ctx.Enter(b)
		if marked {
			quote := h.styles.BlockQuote()
			h.emit(ctx, StyledFragment(quote.Glyph+" ", quote.Style))
		}
		ctx.SetStartOfLine(!marked)
	case KindCodeBlock:
		grammar, err := h.resolveGrammar(b)
		if err != nil {
			return err
		}
		h.openMarker(ctx)
		ctx.Enter(b)
		ctx.SetIndentation(ctx.Indentation() + 1)
		ctx.SetGrammar(grammar)
		ctx.SetStartOfLine(true)
	case KindList:
		if ctx.list() != nil {
			h.log.Debug("nested list", zap.Int("indentation", ctx.Indentation()+1))
		}
		h.openMarker(ctx)
		f := ctx.push(b)
		if b.Ordered {
			f.counter = max(b.Start, 0)
		}
		ctx.SetIndentation(ctx.Indentation() + 1)
		ctx.SetStartOfLine(true)
	case KindListItem:
		ctx.Enter(b)
		ctx.SetStartOfLine(true)
		ctx.markerPending = true
	case KindEmphasis:
		ctx.AddModifier(ModUnderline)
	case KindStrong:
		ctx.AddModifier(ModBold)
	case KindStrikethrough:
		ctx.AddModifier(ModCrossedOut)
	case KindThematicRule:
		h.rule(ctx)
	case KindOther:
	}
	return nil
}

func (h *blockHandler) end(ctx *RenderContext, b Block) {
	switch b.Kind {
	case KindParagraph, KindHeading:
		h.leave(ctx, b.Kind)
		h.emit(ctx, PlainFragment("\n\n"))
		ctx.SetStartOfLine(true)
	case KindCodeBlock:
		if f, ok := h.leave(ctx, b.Kind); ok {
			ctx.SetIndentation(f.savedIndent)
		} else {
			h.outdent(ctx)
		}
		ctx.SetGrammar(PlainTextGrammar)
		h.emit(ctx, PlainFragment("\n"))
		ctx.SetStartOfLine(true)
	case KindBlockQuote:
		h.leave(ctx, b.Kind)
		h.emit(ctx, PlainFragment("\n"))
		ctx.SetStartOfLine(true)
	case KindList:
		if f, ok := h.leave(ctx, b.Kind); ok {
			ctx.SetIndentation(f.savedIndent)
		} else {
			h.outdent(ctx)
		}
		h.emit(ctx, PlainFragment("\n"))
		ctx.SetStartOfLine(true)
	case KindListItem:
		h.leave(ctx, b.Kind)
		ctx.markerPending = false
		if !ctx.advanceCounter() {
			h.log.Debug("ordered list counter saturated", zap.Int("counter", ctx.Counter()))
		}
	case KindEmphasis:
		if !ctx.RemoveModifier(ModUnderline) {
			h.log.Debug("emphasis closed while inactive")
		}
	case KindStrong:
		if !ctx.RemoveModifier(ModBold) {
			h.log.Debug("strong closed while inactive")
		}
	case KindStrikethrough:
		if !ctx.RemoveModifier(ModCrossedOut) {
			h.log.Debug("strikethrough closed while inactive")
		}
	case KindThematicRule, KindOther:
	}
}

// openMarker draws the pending marker of a list item whose first child is
// not text. It reports whether a marker was drawn.
func (h *blockHandler) openMarker(ctx *RenderContext) bool {
	if !ctx.markerPending || ctx.Kind() != KindListItem {
		return false
	}
	ctx.SetStartOfLine(true)
	h.emit(ctx, h.styles.Prefix(ctx)...)
	ctx.markerPending = false
	ctx.SetStartOfLine(false)
	return true
}

func (h *blockHandler) leave(ctx *RenderContext, k Kind) (frame, bool) {
	f, ok := ctx.pop(k)
	if !ok {
		h.log.Debug("end without matching start", zap.Stringer("kind", k))
	}
	return f, ok
}

func (h *blockHandler) outdent(ctx *RenderContext) {
	if ctx.SetIndentation(ctx.Indentation() - 1) {
		h.log.Debug("indentation underflow clamped")
	}
}

func (h *blockHandler) resolveGrammar(b Block) (string, error) {
	grammar := PlainTextGrammar
	if b.Fenced {
		grammar = capitalizeGrammar(b.Info)
	}
	if h.styles.codeBlock.Highlighter.Supports(grammar) {
		return grammar, nil
	}
	if h.strict {
		return "", &GrammarError{Grammar: grammar}
	}
	h.log.Debug("unknown grammar, using plain text", zap.String("grammar", grammar))
	return PlainTextGrammar, nil
}

func (h *blockHandler) text(ctx *RenderContext, text string) error {
	if text == "" {
		return nil
	}
	if ctx.Kind() == KindCodeBlock {
		return h.codeText(ctx, text)
	}
	h.inline(ctx, h.styles.Resolve(text, ctx))
	return nil
}

func (h *blockHandler) codeText(ctx *RenderContext, text string) error {
	frags, err := h.styles.CodeLines(text, ctx, h.paint)
	if errors.Is(err, ErrUnknownGrammar) && !h.strict && ctx.Grammar() != PlainTextGrammar {
		h.log.Debug("highlighting failed, using plain text", zap.String("grammar", ctx.Grammar()), zap.Error(err))
		ctx.SetGrammar(PlainTextGrammar)
		frags, err = h.styles.CodeLines(text, ctx, h.paint)
	}
	if err != nil {
		return err
	}
	if !ctx.AtColumnZero() {
		h.emit(ctx, PlainFragment("\n"))
	}
	h.emit(ctx, frags...)
	ctx.SetStartOfLine(true)
	return nil
}

func (h *blockHandler) code(ctx *RenderContext, text string) {
	if text == "" {
		return
	}
	h.inline(ctx, h.styles.ResolveCode(text, ctx))
}

// inline emits the fragments of a text run and marks the visual line as
// under way.
func (h *blockHandler) inline(ctx *RenderContext, frags []Fragment) {
	if ctx.StartOfLine() && ctx.textBlock().Kind == KindList {
		ctx.markerPending = false
	}
	h.emit(ctx, frags...)
	ctx.SetStartOfLine(false)
}

func (h *blockHandler) softBreak(ctx *RenderContext) {
	if h.breakMode == SoftBreakNewline {
		h.emit(ctx, PlainFragment("\n"))
		ctx.SetStartOfLine(true)
		return
	}
	h.emit(ctx, StyledFragment(" ", h.styles.fallback.Style))
}

func (h *blockHandler) hardBreak(ctx *RenderContext) {
	h.emit(ctx, PlainFragment("\n"))
	ctx.SetStartOfLine(true)
}

func (h *blockHandler) rule(ctx *RenderContext) {
	h.openMarker(ctx)
	h.emit(ctx, h.styles.RuleLine()...)
	ctx.SetStartOfLine(true)
}

func (h *blockHandler) emit(ctx *RenderContext, frags ...Fragment) {
	for _, f := range frags {
		if f.Text == "" {
			continue
		}
		*h.out = append(*h.out, f)
		ctx.noteEmitted(f.Text)
	}
}
