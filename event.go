package mdpaint

import "strconv"

// EventKind classifies a structural document event.
type EventKind uint8

const (
	EventStart EventKind = iota
	EventEnd
	EventText
	EventCode
	EventSoftBreak
	EventHardBreak
	EventRule
	// EventHTML carries raw HTML. It has no terminal styling and is ignored.
	EventHTML
)

var eventNames = [...]string{
	EventStart:     "start",
	EventEnd:       "end",
	EventText:      "text",
	EventCode:      "code",
	EventSoftBreak: "soft_break",
	EventHardBreak: "hard_break",
	EventRule:      "rule",
	EventHTML:      "html",
}

func (k EventKind) String() string {
	if int(k) < len(eventNames) {
		return eventNames[k]
	}
	return "event(" + strconv.Itoa(int(k)) + ")"
}

// Event is one item of the structural event stream.
type Event struct {
	Kind  EventKind
	Block Block
	Text  string
}

// StartEvent opens b.
func StartEvent(b Block) Event { return Event{Kind: EventStart, Block: b} }

// EndEvent closes b.
func EndEvent(b Block) Event { return Event{Kind: EventEnd, Block: b} }

// TextEvent is a literal text run.
func TextEvent(text string) Event { return Event{Kind: EventText, Text: text} }

// CodeEvent is an inline code span.
func CodeEvent(text string) Event { return Event{Kind: EventCode, Text: text} }

// SoftBreakEvent is a soft line break.
func SoftBreakEvent() Event { return Event{Kind: EventSoftBreak} }

// HardBreakEvent is a hard line break.
func HardBreakEvent() Event { return Event{Kind: EventHardBreak} }

// RuleEvent is a thematic rule.
func RuleEvent() Event { return Event{Kind: EventRule} }

// HTMLEvent is raw inline or block HTML.
func HTMLEvent(html string) Event { return Event{Kind: EventHTML, Text: html} }
