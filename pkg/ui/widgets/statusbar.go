package widgets

import (
	"github.com/mattn/go-runewidth"
	"github.com/odvcencio/dockyard/pkg/ui/backend"
	"github.com/odvcencio/dockyard/pkg/ui/runtime"
)

// StatusBar is a one-row bar with left- and right-aligned segments.
type StatusBar struct {
	Base
	left  string
	right string
	style backend.Style
}

// NewStatusBar creates an empty status bar.
func NewStatusBar() *StatusBar {
	return &StatusBar{style: backend.DefaultStyle()}
}

// WithStyle sets the bar style and returns for chaining.
func (s *StatusBar) WithStyle(style backend.Style) *StatusBar {
	s.style = style
	return s
}

// SetLeft updates the left segment.
func (s *StatusBar) SetLeft(text string) {
	if s.left != text {
		s.left = text
		s.Invalidate()
	}
}

// SetRight updates the right segment.
func (s *StatusBar) SetRight(text string) {
	if s.right != text {
		s.right = text
		s.Invalidate()
	}
}

// Measure returns full width, one row.
func (s *StatusBar) Measure(constraints runtime.Constraints) runtime.Size {
	return constraints.Constrain(runtime.Size{
		Width:  constraints.MaxWidth,
		Height: 1,
	})
}

// Render draws the bar. The right segment wins space when the two
// segments overlap.
func (s *StatusBar) Render(ctx runtime.RenderContext) {
	b := s.bounds
	if b.Width == 0 || b.Height == 0 {
		return
	}

	ctx.Buffer.Fill(runtime.Rect{X: b.X, Y: b.Y, Width: b.Width, Height: 1}, ' ', s.style)

	right := truncate(s.right, b.Width)
	rightWidth := runewidth.StringWidth(right)

	leftRoom := b.Width - rightWidth
	if rightWidth > 0 {
		leftRoom-- // keep one space between segments
	}
	left := truncate(s.left, max(0, leftRoom))

	ctx.Buffer.SetString(b.X+1, b.Y, left, s.style)
	if rightWidth > 0 {
		ctx.Buffer.SetString(b.X+b.Width-rightWidth-1, b.Y, right, s.style)
	}
}
