// Package terminal defines the raw input events a backend produces.
// The runtime converts these into messages before widgets see them.
package terminal

// Event is a single piece of terminal input.
type Event interface {
	eventMarker()
}

// KeyEvent is a key press with its modifier state.
type KeyEvent struct {
	Key   Key
	Rune  rune
	Alt   bool
	Ctrl  bool
	Shift bool
}

func (KeyEvent) eventMarker() {}

// ResizeEvent reports the new terminal dimensions.
type ResizeEvent struct {
	Width  int
	Height int
}

func (ResizeEvent) eventMarker() {}

// MouseEvent is a press, release, or motion at a cell position.
type MouseEvent struct {
	X, Y   int
	Button MouseButton
	Action MouseAction
	Alt    bool
	Ctrl   bool
	Shift  bool
}

func (MouseEvent) eventMarker() {}

// PasteEvent carries the full text of a bracketed paste.
type PasteEvent struct {
	Text string
}

func (PasteEvent) eventMarker() {}

// MouseButton names the button a mouse event refers to. Wheel ticks
// are modeled as buttons.
type MouseButton int

const (
	MouseNone MouseButton = iota
	MouseLeft
	MouseMiddle
	MouseRight
	MouseWheelUp
	MouseWheelDown
)

// MouseAction is the kind of mouse transition.
type MouseAction int

const (
	MousePress MouseAction = iota
	MouseRelease
	MouseMove
)

// Key identifies non-character keys. KeyRune means the event carries a
// printable rune instead.
type Key int

const (
	KeyNone Key = iota
	KeyRune
	KeyEnter
	KeyBackspace
	KeyTab
	KeyEscape
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyHome
	KeyEnd
	KeyPageUp
	KeyPageDown
	KeyDelete
	KeyInsert
	KeyF1
	KeyF2
	KeyF3
	KeyF4
	KeyF5
	KeyF6
	KeyF7
	KeyF8
	KeyF9
	KeyF10
	KeyF11
	KeyF12
	KeyCtrlB
	KeyCtrlC
	KeyCtrlD
	KeyCtrlF
	KeyCtrlP
	KeyCtrlZ
)
