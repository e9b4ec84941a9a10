package mdpaint

import (
	"bytes"
	"fmt"
	"io"

	"go.uber.org/zap"
)

// RenderRequest configures Render.
type RenderRequest struct {
	Reader io.Reader
	Writer io.Writer
	// Styles takes precedence over Theme. With neither set the default
	// theme is used.
	Styles  *StyleSet
	Theme   Theme
	Options []RenderOption
}

// Render reads a Markdown document from req.Reader and writes it to
// req.Writer as styled terminal text.
func Render(req RenderRequest) error {
	if req.Reader == nil {
		return fmt.Errorf("render: reader is nil")
	}
	if req.Writer == nil {
		return fmt.Errorf("render: writer is nil")
	}
	styles, err := requestStyles(req)
	if err != nil {
		return fmt.Errorf("render: %w", err)
	}
	src, err := io.ReadAll(req.Reader)
	if err != nil {
		return fmt.Errorf("render: read: %w", err)
	}
	cfg := newRenderConfig(req.Options)
	d, err := renderSource(src, styles, cfg, req.Options)
	if err != nil {
		return err
	}
	if err := d.Flush(NewTerminalSink(req.Writer, cfg.color)); err != nil {
		return fmt.Errorf("render: write: %w", err)
	}
	return nil
}

// RenderString renders src with styles and returns the output text.
func RenderString(src string, styles *StyleSet, opts ...RenderOption) (string, error) {
	var out bytes.Buffer
	err := Render(RenderRequest{
		Reader:  bytes.NewReader([]byte(src)),
		Writer:  &out,
		Styles:  styles,
		Options: opts,
	})
	return out.String(), err
}

// RenderFragments renders src with styles and returns the fragment
// sequence instead of writing it.
func RenderFragments(src []byte, styles *StyleSet, opts ...RenderOption) ([]Fragment, error) {
	if styles == nil {
		return nil, ErrNilStyleSet
	}
	d, err := renderSource(src, styles, newRenderConfig(opts), opts)
	if err != nil {
		return nil, err
	}
	var buf FragmentBuffer
	if err := d.Flush(&buf); err != nil {
		return nil, err
	}
	return buf.Fragments, nil
}

func renderSource(src []byte, styles *StyleSet, cfg renderConfig, opts []RenderOption) (*EventDispatcher, error) {
	if err := ValidateInput(src); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	if cfg.frontMatter {
		if stripped := stripFrontMatter(src); len(stripped) != len(src) {
			cfg.logger.Debug("front matter stripped", zap.Int("bytes", len(src)-len(stripped)))
			src = stripped
		}
	}
	d, err := NewEventDispatcher(styles, opts...)
	if err != nil {
		return nil, err
	}
	if err := WalkMarkdown(cfg.markdown, src, d.Dispatch); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return d, nil
}

func requestStyles(req RenderRequest) (*StyleSet, error) {
	if req.Styles != nil {
		return req.Styles, nil
	}
	theme := req.Theme
	if theme == nil {
		theme = DefaultTheme()
	}
	return StyleSetForTheme(theme)
}
