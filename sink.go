package mdpaint

import (
	"bufio"
	"io"
)

// Sink receives rendered fragments in document order.
type Sink interface {
	WriteFragment(Fragment) error
	Flush() error
}

// TerminalSink writes fragments to a terminal, turning styled fragments into
// escape sequences when color is enabled.
type TerminalSink struct {
	w     *bufio.Writer
	paint painter
}

// NewTerminalSink returns a sink writing to w.
func NewTerminalSink(w io.Writer, color bool) *TerminalSink {
	return &TerminalSink{w: bufio.NewWriterSize(w, 32*1024), paint: painter{enabled: color}}
}

// WriteFragment writes one fragment.
func (s *TerminalSink) WriteFragment(f Fragment) error {
	text := f.Text
	if f.Styled {
		text = s.paint.paint(text, f.Style)
	}
	_, err := s.w.WriteString(text)
	return err
}

// Flush flushes buffered output.
func (s *TerminalSink) Flush() error {
	return s.w.Flush()
}

// FragmentBuffer is a Sink that keeps the fragments it receives.
type FragmentBuffer struct {
	Fragments []Fragment
}

func (b *FragmentBuffer) WriteFragment(f Fragment) error {
	b.Fragments = append(b.Fragments, f)
	return nil
}

func (b *FragmentBuffer) Flush() error { return nil }

// String returns the concatenated text of the kept fragments.
func (b *FragmentBuffer) String() string {
	n := 0
	for _, f := range b.Fragments {
		n += len(f.Text)
	}
	out := make([]byte, 0, n)
	for _, f := range b.Fragments {
		out = append(out, f.Text...)
	}
	return string(out)
}
