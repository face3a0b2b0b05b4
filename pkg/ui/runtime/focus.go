package runtime

// FocusScope tracks keyboard focus among the focusable widgets of one
// layer. Overlays get their own scope, so a modal menu traps Tab
// traversal until it closes.
type FocusScope struct {
	order   []Focusable
	focused int
}

// NewFocusScope returns an empty scope with nothing focused.
func NewFocusScope() *FocusScope {
	return &FocusScope{focused: -1}
}

// Register adds a widget to the traversal order. Registering twice is a
// no-op. The first focusable widget to register gains focus.
func (f *FocusScope) Register(w Focusable) {
	for _, existing := range f.order {
		if existing == w {
			return
		}
	}
	f.order = append(f.order, w)
	if f.focused == -1 && w.CanFocus() {
		f.focused = len(f.order) - 1
		w.Focus()
	}
}

// Unregister removes a widget. When the focused widget leaves, focus
// falls to the first remaining focusable widget.
func (f *FocusScope) Unregister(w Focusable) {
	for i, existing := range f.order {
		if existing != w {
			continue
		}
		switch {
		case f.focused == i:
			w.Blur()
			f.focused = -1
		case f.focused > i:
			f.focused--
		}
		f.order = append(f.order[:i], f.order[i+1:]...)
		if f.focused == -1 && len(f.order) > 0 {
			f.FocusFirst()
		}
		return
	}
}

// Current returns the focused widget, or nil.
func (f *FocusScope) Current() Focusable {
	if f.focused >= 0 && f.focused < len(f.order) {
		return f.order[f.focused]
	}
	return nil
}

// SetFocus moves focus to w if it is registered and focusable.
func (f *FocusScope) SetFocus(w Focusable) bool {
	for i, existing := range f.order {
		if existing == w && w.CanFocus() {
			return f.focusAt(i)
		}
	}
	return false
}

// FocusFirst focuses the first widget that accepts focus.
func (f *FocusScope) FocusFirst() bool {
	for i, w := range f.order {
		if w.CanFocus() {
			return f.focusAt(i)
		}
	}
	return false
}

// FocusLast focuses the last widget that accepts focus.
func (f *FocusScope) FocusLast() bool {
	for i := len(f.order) - 1; i >= 0; i-- {
		if f.order[i].CanFocus() {
			return f.focusAt(i)
		}
	}
	return false
}

// FocusNext advances focus, wrapping past the end.
func (f *FocusScope) FocusNext() bool {
	n := len(f.order)
	if n == 0 {
		return false
	}
	start := f.focused
	for i := 1; i <= n; i++ {
		idx := (start + i + n) % n
		if f.order[idx].CanFocus() {
			return f.focusAt(idx)
		}
	}
	return false
}

// FocusPrev moves focus backwards, wrapping past the start.
func (f *FocusScope) FocusPrev() bool {
	n := len(f.order)
	if n == 0 {
		return false
	}
	start := f.focused
	if start < 0 {
		start = n
	}
	for i := 1; i <= n; i++ {
		idx := (start - i + 2*n) % n
		if f.order[idx].CanFocus() {
			return f.focusAt(idx)
		}
	}
	return false
}

// ClearFocus blurs the focused widget and leaves nothing focused.
func (f *FocusScope) ClearFocus() {
	if f.focused >= 0 && f.focused < len(f.order) {
		f.order[f.focused].Blur()
	}
	f.focused = -1
}

// Count reports how many widgets are registered.
func (f *FocusScope) Count() int {
	return len(f.order)
}

func (f *FocusScope) focusAt(i int) bool {
	if i == f.focused {
		return false
	}
	if f.focused >= 0 && f.focused < len(f.order) {
		f.order[f.focused].Blur()
	}
	f.focused = i
	f.order[i].Focus()
	return true
}
