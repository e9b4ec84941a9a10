package mdpaint

// Fragment is the atomic unit of output: plain text, or text with a
// resolved style. Fragments are emitted in document order and never merged
// across structural boundaries.
type Fragment struct {
	Text   string
	Style  Style
	Styled bool
}

// PlainFragment returns an unstyled fragment.
func PlainFragment(text string) Fragment { return Fragment{Text: text} }

// StyledFragment returns a fragment rendered with style.
func StyledFragment(text string, style Style) Fragment {
	return Fragment{Text: text, Style: style, Styled: true}
}
