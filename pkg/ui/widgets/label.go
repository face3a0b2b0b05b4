package widgets

import (
	"strings"

	"github.com/mattn/go-runewidth"
	"github.com/odvcencio/dockyard/pkg/ui/backend"
	"github.com/odvcencio/dockyard/pkg/ui/runtime"
)

// Alignment controls horizontal placement of single-line text.
type Alignment int

const (
	AlignLeft Alignment = iota
	AlignCenter
	AlignRight
)

// Label is a single-line text widget.
type Label struct {
	Base
	text      string
	style     backend.Style
	alignment Alignment
}

// NewLabel creates a new label.
func NewLabel(text string) *Label {
	return &Label{
		text:  text,
		style: backend.DefaultStyle(),
	}
}

// SetText updates the displayed text.
func (l *Label) SetText(text string) {
	if l.text != text {
		l.text = text
		l.Invalidate()
	}
}

// Text returns the current text.
func (l *Label) Text() string {
	return l.text
}

// WithStyle sets the style and returns for chaining.
func (l *Label) WithStyle(style backend.Style) *Label {
	l.style = style
	return l
}

// WithAlignment sets the alignment and returns for chaining.
func (l *Label) WithAlignment(a Alignment) *Label {
	l.alignment = a
	return l
}

// Measure returns one row at the text's display width.
func (l *Label) Measure(constraints runtime.Constraints) runtime.Size {
	return constraints.Constrain(runtime.Size{
		Width:  runewidth.StringWidth(l.text),
		Height: 1,
	})
}

// Render draws the label.
func (l *Label) Render(ctx runtime.RenderContext) {
	b := l.bounds
	if b.Width == 0 || b.Height == 0 {
		return
	}

	text := truncate(l.text, b.Width)
	x := b.X
	switch l.alignment {
	case AlignCenter:
		x += (b.Width - runewidth.StringWidth(text)) / 2
	case AlignRight:
		x += b.Width - runewidth.StringWidth(text)
	}
	ctx.Buffer.SetString(x, b.Y, text, l.style)
}

// Text is a multi-line text display widget.
type Text struct {
	Base
	text  string
	style backend.Style
	lines []string
}

// NewText creates a new text widget.
func NewText(text string) *Text {
	return &Text{
		text:  text,
		style: backend.DefaultStyle(),
		lines: strings.Split(text, "\n"),
	}
}

// SetText updates the displayed text.
func (t *Text) SetText(text string) {
	t.text = text
	t.lines = strings.Split(text, "\n")
	t.Invalidate()
}

// WithStyle sets the style and returns for chaining.
func (t *Text) WithStyle(style backend.Style) *Text {
	t.style = style
	return t
}

// Measure returns the size needed to display the text.
func (t *Text) Measure(constraints runtime.Constraints) runtime.Size {
	maxWidth := 0
	for _, line := range t.lines {
		if w := runewidth.StringWidth(line); w > maxWidth {
			maxWidth = w
		}
	}

	height := len(t.lines)
	if height == 0 {
		height = 1
	}

	return constraints.Constrain(runtime.Size{
		Width:  maxWidth,
		Height: height,
	})
}

// Render draws the text.
func (t *Text) Render(ctx runtime.RenderContext) {
	b := t.bounds
	if b.Width == 0 || b.Height == 0 {
		return
	}

	for i, line := range t.lines {
		if i >= b.Height {
			break
		}
		ctx.Buffer.SetString(b.X, b.Y+i, truncate(line, b.Width), t.style)
	}
}
