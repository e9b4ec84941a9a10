package mdpaint

import "strconv"

// Kind classifies a structural construct of the document.
type Kind uint8

const (
	KindOther Kind = iota
	KindParagraph
	KindHeading
	KindCodeBlock
	KindBlockQuote
	KindList
	KindListItem
	KindEmphasis
	KindStrong
	KindThematicRule
	KindStrikethrough
)

var kindNames = [...]string{
	KindOther:         "other",
	KindParagraph:     "paragraph",
	KindHeading:       "heading",
	KindCodeBlock:     "code_block",
	KindBlockQuote:    "block_quote",
	KindList:          "list",
	KindListItem:      "list_item",
	KindEmphasis:      "emphasis",
	KindStrong:        "strong",
	KindThematicRule:  "thematic_rule",
	KindStrikethrough: "strikethrough",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "kind(" + strconv.Itoa(int(k)) + ")"
}

// Block is a structural construct together with its per-kind payload.
type Block struct {
	Kind Kind
	// Level is the 1-based heading level.
	Level int
	// Info is the fence info string of a code block. It is empty for
	// indented code blocks.
	Info   string
	Fenced bool
	// Ordered lists number their items starting at Start.
	Ordered bool
	Start   int
}

// Paragraph returns a paragraph block.
func Paragraph() Block { return Block{Kind: KindParagraph} }

// Heading returns a heading block of the given level.
func Heading(level int) Block { return Block{Kind: KindHeading, Level: level} }

// FencedCode returns a fenced code block with the given info string.
func FencedCode(info string) Block { return Block{Kind: KindCodeBlock, Info: info, Fenced: true} }

// IndentedCode returns an indented code block.
func IndentedCode() Block { return Block{Kind: KindCodeBlock} }

// BlockQuote returns a block quote.
func BlockQuote() Block { return Block{Kind: KindBlockQuote} }

// BulletList returns an unordered list.
func BulletList() Block { return Block{Kind: KindList} }

// OrderedList returns an ordered list whose first item is numbered start.
func OrderedList(start int) Block { return Block{Kind: KindList, Ordered: true, Start: start} }

// ListItem returns a list item.
func ListItem() Block { return Block{Kind: KindListItem} }

// Emphasis returns an emphasis span.
func Emphasis() Block { return Block{Kind: KindEmphasis} }

// Strong returns a strong emphasis span.
func Strong() Block { return Block{Kind: KindStrong} }

// Strikethrough returns a struck-through span.
func Strikethrough() Block { return Block{Kind: KindStrikethrough} }

// ThematicRule returns a thematic rule block.
func ThematicRule() Block { return Block{Kind: KindThematicRule} }

// Other returns a construct without dedicated styling, such as a link.
func Other() Block { return Block{Kind: KindOther} }
