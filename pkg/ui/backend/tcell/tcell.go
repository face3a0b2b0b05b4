// Package tcell drives real terminals through gdamore/tcell. Besides
// translating styles, keys, and mouse state, it reassembles bracketed
// pastes into single events and turns tcell's raw button masks into
// press/move/release transitions so drag interactions work upstream.
package tcell

import (
	"strings"

	"github.com/gdamore/tcell/v2"

	"github.com/odvcencio/dockyard/pkg/ui/backend"
	"github.com/odvcencio/dockyard/pkg/ui/terminal"
)

// Backend implements backend.Backend on a tcell screen.
type Backend struct {
	screen tcell.Screen

	inPaste     bool
	pasteBuffer strings.Builder

	// lastButtons distinguishes motion from presses; tcell reports
	// only the current mask.
	lastButtons tcell.ButtonMask
}

// New allocates a backend on the process terminal.
func New() (*Backend, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	return &Backend{screen: screen}, nil
}

// NewWithScreen wraps an existing screen, typically a tcell simulation
// screen in tests.
func NewWithScreen(screen tcell.Screen) *Backend {
	return &Backend{screen: screen}
}

func (b *Backend) Init() error {
	if err := b.screen.Init(); err != nil {
		return err
	}
	b.screen.EnableMouse()
	b.screen.EnablePaste()
	return nil
}

func (b *Backend) Fini() {
	b.screen.Fini()
}

func (b *Backend) Size() (width, height int) {
	return b.screen.Size()
}

func (b *Backend) SetContent(x, y int, mainc rune, comb []rune, style backend.Style) {
	b.screen.SetContent(x, y, mainc, comb, toTcellStyle(style))
}

func (b *Backend) Show() {
	b.screen.Show()
}

func (b *Backend) Clear() {
	b.screen.Clear()
}

func (b *Backend) HideCursor() {
	b.screen.HideCursor()
}

// ShowCursor is a no-op; tcell reveals the cursor when its position is
// set.
func (b *Backend) ShowCursor() {}

func (b *Backend) SetCursorPos(x, y int) {
	b.screen.ShowCursor(x, y)
}

// PollEvent blocks for the next event. Key events between paste start
// and paste end markers are folded into one PasteEvent.
func (b *Backend) PollEvent() terminal.Event {
	for {
		ev := b.screen.PollEvent()
		if ev == nil {
			return nil
		}

		switch e := ev.(type) {
		case *tcell.EventPaste:
			if e.Start() {
				b.inPaste = true
				b.pasteBuffer.Reset()
				continue
			}
			b.inPaste = false
			text := b.pasteBuffer.String()
			b.pasteBuffer.Reset()
			if text != "" {
				return terminal.PasteEvent{Text: text}
			}
			continue

		case *tcell.EventKey:
			if b.inPaste {
				switch e.Key() {
				case tcell.KeyRune:
					b.pasteBuffer.WriteRune(e.Rune())
				case tcell.KeyEnter:
					b.pasteBuffer.WriteRune('\n')
				case tcell.KeyTab:
					b.pasteBuffer.WriteRune('\t')
				}
				continue
			}
			mods := e.Modifiers()
			return terminal.KeyEvent{
				Key:   toKey(e.Key()),
				Rune:  e.Rune(),
				Alt:   mods&tcell.ModAlt != 0,
				Ctrl:  mods&tcell.ModCtrl != 0,
				Shift: mods&tcell.ModShift != 0,
			}

		case *tcell.EventResize:
			w, h := e.Size()
			return terminal.ResizeEvent{Width: w, Height: h}

		case *tcell.EventMouse:
			return b.mouseEvent(e)
		}
	}
}

// mouseEvent classifies the transition from the previous button mask:
// a new button is a press, the same held button is a move (drag), a
// cleared mask is either a release or hover motion.
func (b *Backend) mouseEvent(e *tcell.EventMouse) terminal.Event {
	x, y := e.Position()
	buttons := e.Buttons()
	prev := b.lastButtons
	b.lastButtons = buttons

	mods := e.Modifiers()
	out := terminal.MouseEvent{
		X:     x,
		Y:     y,
		Alt:   mods&tcell.ModAlt != 0,
		Ctrl:  mods&tcell.ModCtrl != 0,
		Shift: mods&tcell.ModShift != 0,
	}

	switch {
	case buttons&(tcell.WheelUp|tcell.WheelDown) != 0:
		// Wheel ticks are instantaneous presses.
		out.Button = toMouseButton(buttons)
		out.Action = terminal.MousePress
		b.lastButtons = prev
	case buttons == tcell.ButtonNone && prev != tcell.ButtonNone:
		out.Button = toMouseButton(prev)
		out.Action = terminal.MouseRelease
	case buttons == tcell.ButtonNone:
		out.Button = terminal.MouseNone
		out.Action = terminal.MouseMove
	case buttons == prev:
		out.Button = toMouseButton(buttons)
		out.Action = terminal.MouseMove
	default:
		out.Button = toMouseButton(buttons)
		out.Action = terminal.MousePress
	}
	return out
}

// PostEvent injects an event into tcell's queue. Only resizes have a
// tcell equivalent; everything else tests post straight to the app.
func (b *Backend) PostEvent(ev terminal.Event) error {
	if e, ok := ev.(terminal.ResizeEvent); ok {
		return b.screen.PostEvent(tcell.NewEventResize(e.Width, e.Height))
	}
	return nil
}

func (b *Backend) Beep() {
	b.screen.Beep()
}

func (b *Backend) Sync() {
	b.screen.Sync()
}

func toTcellStyle(s backend.Style) tcell.Style {
	fg, bg, attrs := s.Decompose()
	style := tcell.StyleDefault.
		Foreground(toTcellColor(fg)).
		Background(toTcellColor(bg))

	for _, m := range []struct {
		attr  backend.AttrMask
		apply func(tcell.Style) tcell.Style
	}{
		{backend.AttrBold, func(s tcell.Style) tcell.Style { return s.Bold(true) }},
		{backend.AttrItalic, func(s tcell.Style) tcell.Style { return s.Italic(true) }},
		{backend.AttrUnderline, func(s tcell.Style) tcell.Style { return s.Underline(true) }},
		{backend.AttrDim, func(s tcell.Style) tcell.Style { return s.Dim(true) }},
		{backend.AttrBlink, func(s tcell.Style) tcell.Style { return s.Blink(true) }},
		{backend.AttrReverse, func(s tcell.Style) tcell.Style { return s.Reverse(true) }},
		{backend.AttrStrikeThrough, func(s tcell.Style) tcell.Style { return s.StrikeThrough(true) }},
	} {
		if attrs&m.attr != 0 {
			style = m.apply(style)
		}
	}
	return style
}

func toTcellColor(c backend.Color) tcell.Color {
	if c == backend.ColorDefault {
		return tcell.ColorDefault
	}
	if c.IsRGB() {
		r, g, b := c.RGB()
		return tcell.NewRGBColor(int32(r), int32(g), int32(b))
	}
	return tcell.PaletteColor(int(c))
}

var keyTable = map[tcell.Key]terminal.Key{
	tcell.KeyRune:       terminal.KeyRune,
	tcell.KeyUp:         terminal.KeyUp,
	tcell.KeyDown:       terminal.KeyDown,
	tcell.KeyRight:      terminal.KeyRight,
	tcell.KeyLeft:       terminal.KeyLeft,
	tcell.KeyPgUp:       terminal.KeyPageUp,
	tcell.KeyPgDn:       terminal.KeyPageDown,
	tcell.KeyHome:       terminal.KeyHome,
	tcell.KeyEnd:        terminal.KeyEnd,
	tcell.KeyInsert:     terminal.KeyInsert,
	tcell.KeyDelete:     terminal.KeyDelete,
	tcell.KeyBackspace:  terminal.KeyBackspace,
	tcell.KeyBackspace2: terminal.KeyBackspace,
	tcell.KeyTab:        terminal.KeyTab,
	tcell.KeyEnter:      terminal.KeyEnter,
	tcell.KeyEscape:     terminal.KeyEscape,
	tcell.KeyCtrlB:      terminal.KeyCtrlB,
	tcell.KeyCtrlC:      terminal.KeyCtrlC,
	tcell.KeyCtrlD:      terminal.KeyCtrlD,
	tcell.KeyCtrlF:      terminal.KeyCtrlF,
	tcell.KeyCtrlP:      terminal.KeyCtrlP,
	tcell.KeyCtrlZ:      terminal.KeyCtrlZ,
	tcell.KeyF1:         terminal.KeyF1,
	tcell.KeyF2:         terminal.KeyF2,
	tcell.KeyF3:         terminal.KeyF3,
	tcell.KeyF4:         terminal.KeyF4,
	tcell.KeyF5:         terminal.KeyF5,
	tcell.KeyF6:         terminal.KeyF6,
	tcell.KeyF7:         terminal.KeyF7,
	tcell.KeyF8:         terminal.KeyF8,
	tcell.KeyF9:         terminal.KeyF9,
	tcell.KeyF10:        terminal.KeyF10,
	tcell.KeyF11:        terminal.KeyF11,
	tcell.KeyF12:        terminal.KeyF12,
}

func toKey(k tcell.Key) terminal.Key {
	if mapped, ok := keyTable[k]; ok {
		return mapped
	}
	return terminal.KeyNone
}

func toMouseButton(buttons tcell.ButtonMask) terminal.MouseButton {
	switch {
	case buttons&tcell.WheelUp != 0:
		return terminal.MouseWheelUp
	case buttons&tcell.WheelDown != 0:
		return terminal.MouseWheelDown
	case buttons&tcell.Button1 != 0:
		return terminal.MouseLeft
	case buttons&tcell.Button2 != 0:
		return terminal.MouseMiddle
	case buttons&tcell.Button3 != 0:
		return terminal.MouseRight
	default:
		return terminal.MouseNone
	}
}

var _ backend.Backend = (*Backend)(nil)
