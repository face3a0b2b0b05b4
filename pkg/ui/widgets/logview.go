package widgets

import (
	"github.com/odvcencio/dockyard/pkg/ui/backend"
	"github.com/odvcencio/dockyard/pkg/ui/runtime"
	"github.com/odvcencio/dockyard/pkg/ui/terminal"
)

const defaultLogCapacity = 500

// LogView shows a scrollable tail of appended lines. It follows the
// newest line until the user scrolls up, and resumes following when
// scrolled back to the bottom.
type LogView struct {
	FocusableBase
	lines    []string
	capacity int
	offset   int // lines scrolled up from the tail
	style    backend.Style
}

// NewLogView creates a log view with the default capacity.
func NewLogView() *LogView {
	return &LogView{
		capacity: defaultLogCapacity,
		style:    backend.DefaultStyle(),
	}
}

// WithStyle sets the text style and returns for chaining.
func (l *LogView) WithStyle(style backend.Style) *LogView {
	l.style = style
	return l
}

// SetCapacity bounds the retained line count.
func (l *LogView) SetCapacity(n int) {
	if n > 0 {
		l.capacity = n
		l.trim()
	}
}

// Append adds a line, evicting the oldest beyond capacity.
func (l *LogView) Append(line string) {
	l.lines = append(l.lines, line)
	l.trim()
	l.Invalidate()
}

// Len returns the number of retained lines.
func (l *LogView) Len() int {
	return len(l.lines)
}

func (l *LogView) trim() {
	if over := len(l.lines) - l.capacity; over > 0 {
		l.lines = l.lines[over:]
		if l.offset > len(l.lines) {
			l.offset = len(l.lines)
		}
	}
}

// ScrollUp moves the view toward older lines.
func (l *LogView) ScrollUp(n int) {
	visible := l.bounds.Height
	maxOffset := max(0, len(l.lines)-visible)
	l.offset = min(l.offset+n, maxOffset)
	l.Invalidate()
}

// ScrollDown moves the view toward the tail.
func (l *LogView) ScrollDown(n int) {
	l.offset = max(0, l.offset-n)
	l.Invalidate()
}

// Following reports whether the view is pinned to the newest line.
func (l *LogView) Following() bool {
	return l.offset == 0
}

// Measure returns whatever space is offered.
func (l *LogView) Measure(constraints runtime.Constraints) runtime.Size {
	return constraints.Constrain(runtime.Size{
		Width:  constraints.MaxWidth,
		Height: min(constraints.MaxHeight, max(1, len(l.lines))),
	})
}

// Render draws the visible window of lines.
func (l *LogView) Render(ctx runtime.RenderContext) {
	b := l.bounds
	if b.Width == 0 || b.Height == 0 {
		return
	}

	end := len(l.lines) - l.offset
	start := max(0, end-b.Height)

	for i, line := range l.lines[start:end] {
		ctx.Buffer.SetString(b.X, b.Y+i, truncate(line, b.Width), l.style)
	}
}

// HandleMessage processes scroll input.
func (l *LogView) HandleMessage(msg runtime.Message) runtime.HandleResult {
	switch msg := msg.(type) {
	case runtime.KeyMsg:
		switch msg.Key {
		case terminal.KeyUp:
			l.ScrollUp(1)
			return runtime.Handled()
		case terminal.KeyDown:
			l.ScrollDown(1)
			return runtime.Handled()
		case terminal.KeyPageUp:
			l.ScrollUp(max(1, l.bounds.Height-1))
			return runtime.Handled()
		case terminal.KeyPageDown:
			l.ScrollDown(max(1, l.bounds.Height-1))
			return runtime.Handled()
		}
	case runtime.MouseMsg:
		if !l.bounds.Contains(msg.X, msg.Y) {
			return runtime.Unhandled()
		}
		switch msg.Button {
		case runtime.MouseWheelUp:
			l.ScrollUp(3)
			return runtime.Handled()
		case runtime.MouseWheelDown:
			l.ScrollDown(3)
			return runtime.Handled()
		}
	}
	return runtime.Unhandled()
}
