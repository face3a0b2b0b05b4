package terminal

import "testing"

func TestKeyConstants_AreDistinct(t *testing.T) {
	keys := []Key{
		KeyNone, KeyRune, KeyEnter, KeyBackspace, KeyTab, KeyEscape,
		KeyUp, KeyDown, KeyLeft, KeyRight, KeyHome, KeyEnd,
		KeyPageUp, KeyPageDown, KeyDelete, KeyInsert,
		KeyF1, KeyF2, KeyF3, KeyF4, KeyF5, KeyF6,
		KeyF7, KeyF8, KeyF9, KeyF10, KeyF11, KeyF12,
		KeyCtrlB, KeyCtrlC, KeyCtrlD, KeyCtrlF, KeyCtrlP, KeyCtrlZ,
	}

	seen := make(map[Key]bool, len(keys))
	for _, k := range keys {
		if seen[k] {
			t.Errorf("key constant %d defined twice", k)
		}
		seen[k] = true
	}
}

func TestEvents_SatisfyInterface(t *testing.T) {
	for i, ev := range []Event{
		KeyEvent{Key: KeyEnter},
		ResizeEvent{Width: 80, Height: 24},
		MouseEvent{X: 3, Y: 1, Button: MouseLeft, Action: MousePress},
		PasteEvent{Text: "part layout"},
	} {
		if ev == nil {
			t.Errorf("event %d is nil", i)
		}
	}
}

func TestKeyEvent_CarriesModifiers(t *testing.T) {
	ev := KeyEvent{Key: KeyRune, Rune: 'd', Alt: true, Shift: true}

	if ev.Key != KeyRune || ev.Rune != 'd' {
		t.Errorf("key = %v/%c, want KeyRune/'d'", ev.Key, ev.Rune)
	}
	if !ev.Alt || ev.Ctrl || !ev.Shift {
		t.Errorf("modifiers = alt:%v ctrl:%v shift:%v", ev.Alt, ev.Ctrl, ev.Shift)
	}
}

func TestMouseEvent_CarriesTransition(t *testing.T) {
	ev := MouseEvent{X: 42, Y: 7, Button: MouseLeft, Action: MouseMove}

	if ev.X != 42 || ev.Y != 7 {
		t.Errorf("position = %d,%d, want 42,7", ev.X, ev.Y)
	}
	if ev.Button != MouseLeft || ev.Action != MouseMove {
		t.Errorf("button/action = %v/%v", ev.Button, ev.Action)
	}
}

func TestResizeEvent_CarriesDimensions(t *testing.T) {
	ev := ResizeEvent{Width: 120, Height: 40}
	if ev.Width != 120 || ev.Height != 40 {
		t.Errorf("resize = %d×%d, want 120×40", ev.Width, ev.Height)
	}
}
