package mdpaint

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/fatih/color"
)

// ErrInvalidStyle reports an unparsable color or attribute name.
var ErrInvalidStyle = errors.New("invalid style")

type colorKind uint8

const (
	colorNone colorKind = iota
	colorANSI
	colorRGB
)

// Color is a terminal color: unset, one of the 16 ANSI colors or 24-bit RGB.
type Color struct {
	kind    colorKind
	index   uint8
	r, g, b uint8
}

// ANSI color indexes 8-15 are the bright variants.
var (
	Black         = Color{kind: colorANSI, index: 0}
	Red           = Color{kind: colorANSI, index: 1}
	Green         = Color{kind: colorANSI, index: 2}
	Yellow        = Color{kind: colorANSI, index: 3}
	Blue          = Color{kind: colorANSI, index: 4}
	Magenta       = Color{kind: colorANSI, index: 5}
	Cyan          = Color{kind: colorANSI, index: 6}
	White         = Color{kind: colorANSI, index: 7}
	DarkGrey      = Color{kind: colorANSI, index: 8}
	BrightRed     = Color{kind: colorANSI, index: 9}
	BrightGreen   = Color{kind: colorANSI, index: 10}
	BrightYellow  = Color{kind: colorANSI, index: 11}
	BrightBlue    = Color{kind: colorANSI, index: 12}
	BrightMagenta = Color{kind: colorANSI, index: 13}
	BrightCyan    = Color{kind: colorANSI, index: 14}
	BrightWhite   = Color{kind: colorANSI, index: 15}
)

var colorNames = map[string]Color{
	"black":          Black,
	"red":            Red,
	"green":          Green,
	"yellow":         Yellow,
	"blue":           Blue,
	"magenta":        Magenta,
	"cyan":           Cyan,
	"white":          White,
	"dark-grey":      DarkGrey,
	"dark-gray":      DarkGrey,
	"darkgrey":       DarkGrey,
	"darkgray":       DarkGrey,
	"grey":           DarkGrey,
	"gray":           DarkGrey,
	"bright-black":   DarkGrey,
	"bright-red":     BrightRed,
	"bright-green":   BrightGreen,
	"bright-yellow":  BrightYellow,
	"bright-blue":    BrightBlue,
	"bright-magenta": BrightMagenta,
	"bright-cyan":    BrightCyan,
	"bright-white":   BrightWhite,
}

var ansiNames = [...]string{
	"black", "red", "green", "yellow", "blue", "magenta", "cyan", "white",
	"dark-grey", "bright-red", "bright-green", "bright-yellow",
	"bright-blue", "bright-magenta", "bright-cyan", "bright-white",
}

// RGB returns a 24-bit color.
func RGB(r, g, b uint8) Color { return Color{kind: colorRGB, r: r, g: g, b: b} }

// IsSet reports whether the color is not the terminal default.
func (c Color) IsSet() bool { return c.kind != colorNone }

func (c Color) String() string {
	switch c.kind {
	case colorANSI:
		if int(c.index) < len(ansiNames) {
			return ansiNames[c.index]
		}
		return "ansi" + strconv.Itoa(int(c.index))
	case colorRGB:
		return fmt.Sprintf("#%02x%02x%02x", c.r, c.g, c.b)
	}
	return "none"
}

// ParseColor parses a color name or a "#rrggbb" value. The empty string,
// "none" and "default" yield the unset color.
func ParseColor(s string) (Color, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	name = strings.ReplaceAll(name, "_", "-")
	switch name {
	case "", "none", "default":
		return Color{}, nil
	}
	if strings.HasPrefix(name, "#") {
		hex := name[1:]
		if len(hex) != 6 {
			return Color{}, fmt.Errorf("%w: color %q", ErrInvalidStyle, s)
		}
		v, err := strconv.ParseUint(hex, 16, 32)
		if err != nil {
			return Color{}, fmt.Errorf("%w: color %q", ErrInvalidStyle, s)
		}
		return RGB(uint8(v>>16), uint8(v>>8), uint8(v)), nil
	}
	if c, ok := colorNames[name]; ok {
		return c, nil
	}
	return Color{}, fmt.Errorf("%w: color %q", ErrInvalidStyle, s)
}

// Attr is a set of text decoration flags.
type Attr uint8

const (
	AttrBold Attr = 1 << iota
	AttrFaint
	AttrItalic
	AttrUnderline
	AttrReverse
	AttrCrossedOut
)

var attrNames = map[string]Attr{
	"bold":          AttrBold,
	"faint":         AttrFaint,
	"dim":           AttrFaint,
	"italic":        AttrItalic,
	"underline":     AttrUnderline,
	"underlined":    AttrUnderline,
	"reverse":       AttrReverse,
	"crossed-out":   AttrCrossedOut,
	"strikethrough": AttrCrossedOut,
}

// ParseAttrs parses attribute names such as "bold" or "underline".
func ParseAttrs(names []string) (Attr, error) {
	var a Attr
	for _, n := range names {
		v, ok := attrNames[strings.ToLower(strings.TrimSpace(n))]
		if !ok {
			return 0, fmt.Errorf("%w: attribute %q", ErrInvalidStyle, n)
		}
		a |= v
	}
	return a, nil
}

// Style is a resolved terminal style.
type Style struct {
	Fg    Color
	Bg    Color
	Attrs Attr
}

// IsZero reports whether the style leaves the terminal defaults untouched.
func (s Style) IsZero() bool { return s == Style{} }

// With layers the inline modifiers onto the style.
func (s Style) With(m Modifier) Style {
	if m.Has(ModBold) {
		s.Attrs |= AttrBold
	}
	if m.Has(ModUnderline) {
		s.Attrs |= AttrUnderline
	}
	if m.Has(ModCrossedOut) {
		s.Attrs |= AttrCrossedOut
	}
	return s
}

func (s Style) attributes() []color.Attribute {
	attrs := make([]color.Attribute, 0, 4)
	for _, a := range [...]struct {
		flag Attr
		attr color.Attribute
	}{
		{AttrBold, color.Bold},
		{AttrFaint, color.Faint},
		{AttrItalic, color.Italic},
		{AttrUnderline, color.Underline},
		{AttrReverse, color.ReverseVideo},
		{AttrCrossedOut, color.CrossedOut},
	} {
		if s.Attrs&a.flag != 0 {
			attrs = append(attrs, a.attr)
		}
	}
	if s.Fg.kind == colorANSI {
		attrs = append(attrs, ansiAttribute(s.Fg.index, color.FgBlack, color.FgHiBlack))
	}
	if s.Bg.kind == colorANSI {
		attrs = append(attrs, ansiAttribute(s.Bg.index, color.BgBlack, color.BgHiBlack))
	}
	return attrs
}

func ansiAttribute(index uint8, base, bright color.Attribute) color.Attribute {
	if index >= 8 {
		return bright + color.Attribute(index-8)
	}
	return base + color.Attribute(index)
}

// painter turns styled text into escape sequences. Every painted run ends
// with its own reset so attributes never leak into the next run.
type painter struct {
	enabled bool
}

func (p painter) paint(text string, s Style) string {
	if !p.enabled || text == "" || s.IsZero() {
		return text
	}
	c := color.New(s.attributes()...)
	if s.Fg.kind == colorRGB {
		c.AddRGB(int(s.Fg.r), int(s.Fg.g), int(s.Fg.b))
	}
	if s.Bg.kind == colorRGB {
		c.AddBgRGB(int(s.Bg.r), int(s.Bg.g), int(s.Bg.b))
	}
	c.EnableColor()
	return c.Sprint(text)
}
