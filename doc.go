// Package mdpaint renders Markdown to styled terminal text.
//
// Rendering is a single pass over a stream of structural events: block and
// inline starts and ends, text runs, code spans, line breaks and rules. An
// EventDispatcher routes each event to a block handler that tracks the
// open blocks, indentation, inline modifiers and list counters in a
// RenderContext, and asks a StyleSet for the fragments to emit. Structural
// adornments such as bullets, quote bars and indentation are emitted lazily
// with the first text of each visual line, never on block start.
//
// Events come from goldmark (WalkMarkdown) or from any other source that
// builds them with StartEvent, TextEvent and friends. Fenced code blocks are
// highlighted line by line with chroma.
//
// Example:
//
//	err := mdpaint.Render(mdpaint.RenderRequest{
//		Reader: strings.NewReader("# Hello\n\nMarkdown in, *color* out.\n"),
//		Writer: os.Stdout,
//		Theme:  mdpaint.DefaultTheme(),
//	})
//	if err != nil {
//		log.Fatal(err)
//	}
//
// Styles are configured with a StyleConfig, either built in code, loaded
// from YAML with LoadStyleConfig, or taken from a named Theme. Unset fields
// fall back to the defaults of their kind.
package mdpaint
