// Package sim provides an in-memory terminal backend for testing.
// It wraps tcell's SimulationScreen so tests can inject input events
// and assert on rendered frames without a real terminal.
package sim

import (
	"sync"

	"github.com/odvcencio/dockyard/pkg/ui/backend"
	"github.com/odvcencio/dockyard/pkg/ui/backend/tcell"
	"github.com/odvcencio/dockyard/pkg/ui/terminal"
	tcellv2 "github.com/gdamore/tcell/v2"
)

// Backend is a testable backend using tcell's simulation screen.
type Backend struct {
	*tcell.Backend
	screen tcellv2.SimulationScreen
	mu     sync.Mutex
}

// New creates a new simulation backend with the given dimensions.
func New(width, height int) *Backend {
	screen := tcellv2.NewSimulationScreen("")
	screen.SetSize(width, height)

	return &Backend{
		Backend: tcell.NewWithScreen(screen),
		screen:  screen,
	}
}

// Resize changes the simulation screen size.
func (s *Backend) Resize(width, height int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.screen.SetSize(width, height)
}

// InjectKey injects a key event into the simulation.
func (s *Backend) InjectKey(key terminal.Key, r rune) {
	s.PostEvent(terminal.KeyEvent{Key: key, Rune: r})
}

// InjectKeyRune injects a regular character keypress.
func (s *Backend) InjectKeyRune(r rune) {
	s.InjectKey(terminal.KeyRune, r)
}

// InjectKeyString injects a string as a sequence of key events.
func (s *Backend) InjectKeyString(str string) {
	for _, r := range str {
		s.InjectKeyRune(r)
	}
}

// InjectMouse injects a mouse event at the given position.
func (s *Backend) InjectMouse(x, y int, button terminal.MouseButton, action terminal.MouseAction) {
	s.PostEvent(terminal.MouseEvent{X: x, Y: y, Button: button, Action: action})
}

// InjectClick injects a left-button press followed by a release.
func (s *Backend) InjectClick(x, y int) {
	s.InjectMouse(x, y, terminal.MouseLeft, terminal.MousePress)
	s.InjectMouse(x, y, terminal.MouseLeft, terminal.MouseRelease)
}

// InjectDrag injects a left-button drag from one position to another.
func (s *Backend) InjectDrag(fromX, fromY, toX, toY int) {
	s.InjectMouse(fromX, fromY, terminal.MouseLeft, terminal.MousePress)
	s.InjectMouse(toX, toY, terminal.MouseLeft, terminal.MouseMove)
	s.InjectMouse(toX, toY, terminal.MouseLeft, terminal.MouseRelease)
}

// InjectResize injects a resize event.
func (s *Backend) InjectResize(width, height int) {
	s.mu.Lock()
	s.screen.SetSize(width, height)
	s.mu.Unlock()
	s.PostEvent(terminal.ResizeEvent{Width: width, Height: height})
}

// Ensure Backend implements backend.Backend
var _ backend.Backend = (*Backend)(nil)
