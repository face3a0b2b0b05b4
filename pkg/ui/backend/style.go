package backend

// Color is a terminal color. Non-negative values below 256 index the
// palette; values with the RGB bit set encode 24-bit color.
type Color int32

const (
	ColorDefault Color = -1
	ColorBlack   Color = 0
	ColorRed     Color = 1
	ColorGreen   Color = 2
	ColorYellow  Color = 3
	ColorBlue    Color = 4
	ColorMagenta Color = 5
	ColorCyan    Color = 6
	ColorWhite   Color = 7

	ColorBrightBlack   Color = 8
	ColorBrightRed     Color = 9
	ColorBrightGreen   Color = 10
	ColorBrightYellow  Color = 11
	ColorBrightBlue    Color = 12
	ColorBrightMagenta Color = 13
	ColorBrightCyan    Color = 14
	ColorBrightWhite   Color = 15
)

const rgbBit = 0x01000000

// ColorRGB packs 8-bit channels into a true color.
func ColorRGB(r, g, b uint8) Color {
	return Color(int32(r)<<16 | int32(g)<<8 | int32(b) | rgbBit)
}

// IsRGB reports whether the color is a true color rather than a
// palette index.
func (c Color) IsRGB() bool {
	return c&rgbBit != 0
}

// RGB unpacks the channels of a true color; palette colors yield
// zeros.
func (c Color) RGB() (r, g, b uint8) {
	if !c.IsRGB() {
		return 0, 0, 0
	}
	return uint8((c >> 16) & 0xFF), uint8((c >> 8) & 0xFF), uint8(c & 0xFF)
}

// AttrMask is a bit set of text attributes.
type AttrMask uint32

const (
	AttrBold AttrMask = 1 << iota
	AttrBlink
	AttrReverse
	AttrUnderline
	AttrDim
	AttrItalic
	AttrStrikeThrough
)

// Style is an immutable foreground/background/attribute triple. The
// with-methods return modified copies, so styles compose fluently:
//
//	DefaultStyle().Foreground(ColorCyan).Bold(true)
type Style struct {
	fg    Color
	bg    Color
	attrs AttrMask
}

// DefaultStyle uses the terminal's own colors with no attributes.
func DefaultStyle() Style {
	return Style{fg: ColorDefault, bg: ColorDefault}
}

// Foreground returns the style with a new foreground color.
func (s Style) Foreground(c Color) Style {
	s.fg = c
	return s
}

// Background returns the style with a new background color.
func (s Style) Background(c Color) Style {
	s.bg = c
	return s
}

func (s Style) setAttr(a AttrMask, on bool) Style {
	if on {
		s.attrs |= a
	} else {
		s.attrs &^= a
	}
	return s
}

// Bold toggles the bold attribute.
func (s Style) Bold(on bool) Style { return s.setAttr(AttrBold, on) }

// Italic toggles the italic attribute.
func (s Style) Italic(on bool) Style { return s.setAttr(AttrItalic, on) }

// Dim toggles the dim attribute.
func (s Style) Dim(on bool) Style { return s.setAttr(AttrDim, on) }

// Underline toggles the underline attribute.
func (s Style) Underline(on bool) Style { return s.setAttr(AttrUnderline, on) }

// Reverse toggles reverse video.
func (s Style) Reverse(on bool) Style { return s.setAttr(AttrReverse, on) }

// Blink toggles the blink attribute.
func (s Style) Blink(on bool) Style { return s.setAttr(AttrBlink, on) }

// StrikeThrough toggles the strikethrough attribute.
func (s Style) StrikeThrough(on bool) Style { return s.setAttr(AttrStrikeThrough, on) }

// Attributes returns the attribute bits.
func (s Style) Attributes() AttrMask { return s.attrs }

// FG returns the foreground color.
func (s Style) FG() Color { return s.fg }

// BG returns the background color.
func (s Style) BG() Color { return s.bg }

// Decompose splits the style into its parts.
func (s Style) Decompose() (fg, bg Color, attrs AttrMask) {
	return s.fg, s.bg, s.attrs
}
