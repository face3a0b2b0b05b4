// Package backend abstracts the terminal the dock renders into. The
// tcell implementation drives real terminals; the sim implementation
// captures frames in memory so layout and rendering tests can assert
// on exact cell content.
package backend

import "github.com/odvcencio/dockyard/pkg/ui/terminal"

// Backend is the terminal surface the runtime draws on and reads
// events from.
type Backend interface {
	// Init claims the terminal: alternate screen, raw mode, mouse
	// reporting.
	Init() error

	// Fini restores the terminal to its pre-Init state.
	Fini()

	// Size reports the current terminal dimensions.
	Size() (width, height int)

	// SetContent writes one cell. comb carries combining runes and may
	// be nil.
	SetContent(x, y int, mainc rune, comb []rune, style Style)

	// Show flushes buffered cell writes to the terminal.
	Show()

	// Clear blanks the terminal.
	Clear()

	// HideCursor and ShowCursor toggle cursor visibility;
	// SetCursorPos moves it.
	HideCursor()
	ShowCursor()
	SetCursorPos(x, y int)

	// PollEvent blocks for the next input event, returning nil once
	// the backend is shutting down.
	PollEvent() terminal.Event

	// PostEvent injects an event into the input queue.
	PostEvent(ev terminal.Event) error

	// Beep rings the terminal bell.
	Beep()

	// Sync forces a full repaint on the next Show.
	Sync()
}

// RenderTarget is the write-only slice of Backend handed to rendering
// code.
type RenderTarget interface {
	Size() (width, height int)
	SetContent(x, y int, mainc rune, comb []rune, style Style)
}

// SubTarget clips and translates writes into a rectangular region of a
// parent target.
type SubTarget struct {
	parent  RenderTarget
	offsetX int
	offsetY int
	width   int
	height  int
}

// NewSubTarget restricts parent to the w×h region at (x, y).
func NewSubTarget(parent RenderTarget, x, y, w, h int) *SubTarget {
	return &SubTarget{
		parent:  parent,
		offsetX: x,
		offsetY: y,
		width:   w,
		height:  h,
	}
}

// Size reports the region dimensions.
func (s *SubTarget) Size() (width, height int) {
	return s.width, s.height
}

// SetContent writes a cell in region coordinates, dropping writes that
// fall outside.
func (s *SubTarget) SetContent(x, y int, mainc rune, comb []rune, style Style) {
	if x < 0 || x >= s.width || y < 0 || y >= s.height {
		return
	}
	s.parent.SetContent(s.offsetX+x, s.offsetY+y, mainc, comb, style)
}
