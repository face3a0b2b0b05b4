package runtime

import (
	"time"

	"github.com/odvcencio/dockyard/pkg/ui/terminal"
)

// Message is an event delivered to widgets: terminal input, frame
// ticks, or anything posted from a background goroutine.
type Message interface {
	isMessage()
}

// KeyMsg is a key press.
type KeyMsg struct {
	Key   terminal.Key
	Rune  rune
	Alt   bool
	Ctrl  bool
	Shift bool
}

func (KeyMsg) isMessage() {}

// ResizeMsg announces new terminal dimensions.
type ResizeMsg struct {
	Width  int
	Height int
}

func (ResizeMsg) isMessage() {}

// MouseMsg is a mouse press, release, or motion.
type MouseMsg struct {
	X, Y   int
	Button MouseButton
	Action MouseAction
	Alt    bool
	Ctrl   bool
	Shift  bool
}

func (MouseMsg) isMessage() {}

// PasteMsg carries bracketed-paste text as a single message.
type PasteMsg struct {
	Text string
}

func (PasteMsg) isMessage() {}

// TickMsg fires once per frame while the app has a tick rate; dock
// animations advance on it.
type TickMsg struct {
	Time time.Time
}

func (TickMsg) isMessage() {}

// MouseButton mirrors terminal.MouseButton at the message layer.
type MouseButton int

const (
	MouseNone MouseButton = iota
	MouseLeft
	MouseMiddle
	MouseRight
	MouseWheelUp
	MouseWheelDown
)

// MouseAction mirrors terminal.MouseAction at the message layer.
type MouseAction int

const (
	MousePress MouseAction = iota
	MouseRelease
	MouseMove
)
